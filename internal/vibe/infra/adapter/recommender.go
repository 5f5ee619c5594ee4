package adapter

import (
	"context"

	"github.com/vibevapes/storefront/internal/ai/gemini"
	catalogdomain "github.com/vibevapes/storefront/internal/catalog/domain"
	vibeapp "github.com/vibevapes/storefront/internal/vibe/app"
)

// GeminiRecommender adapts the Gemini client to the quiz's Recommender port.
type GeminiRecommender struct {
	client *gemini.Client
}

func NewGeminiRecommender(client *gemini.Client) *GeminiRecommender {
	return &GeminiRecommender{client: client}
}

func (r *GeminiRecommender) Recommend(ctx context.Context, answers [3]string, products []catalogdomain.Product) (vibeapp.Recommendation, error) {
	rec, err := r.client.VibeRecommendation(ctx, answers, products)
	if err != nil {
		return vibeapp.Recommendation{}, err
	}
	return vibeapp.Recommendation{Product: rec.Product, Reason: rec.Reason}, nil
}

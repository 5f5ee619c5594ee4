// Package gemini is the storefront's boundary to the generative-language
// provider. Two operations are exposed: flavor descriptions, which degrade
// to a fixed fallback on any failure, and vibe recommendations, which fail
// loudly so the caller can offer a retry.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	catalogdomain "github.com/vibevapes/storefront/internal/catalog/domain"
	"golang.org/x/sync/errgroup"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Fallback texts kept from the original storefront.
const (
	fallbackNoKey   = "A descrição da IA não está disponível. Por favor, configure sua chave de API."
	fallbackOffline = "Oops! As vibes do sabor estão offline no momento. Tente novamente."
)

var (
	ErrNoAPIKey       = errors.New("gemini: api key not configured")
	ErrUnknownProduct = errors.New("gemini: recommended product not in catalog")
)

type Recommendation struct {
	Product catalogdomain.Product
	Reason  string
}

type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

type Option func(*Client)

// WithBaseURL points the client at a different endpoint; used in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func NewClient(apiKey, model string, log *slog.Logger, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GenerateFlavorDescription asks the model for a short hype description of
// the product. It never fails: missing credentials or provider errors
// produce a fixed fallback string instead.
func (c *Client) GenerateFlavorDescription(ctx context.Context, productName string, flavors []string) string {
	if c.apiKey == "" {
		return fallbackNoKey
	}

	prompt := fmt.Sprintf(`Crie uma descrição de sabor legal, jovem e empolgante para um cigarro eletrônico em português do Brasil. O tom deve ser impactante e moderno, como algo que você veria nas redes sociais. Use emojis.

Nome do Produto: %s
Sabores Principais: %s

Gere uma descrição de cerca de 2-3 frases curtas.`, productName, strings.Join(flavors, ", "))

	text, err := c.generate(ctx, prompt, false)
	if err != nil {
		c.log.Error("flavor description failed", slog.String("product", productName), slog.Any("err", err))
		return fallbackOffline
	}
	return text
}

// DescribeAll generates a description per product, a few at a time, and
// returns them keyed by product id. Individual failures fall back like
// GenerateFlavorDescription does, so the map is always complete.
func (c *Client) DescribeAll(ctx context.Context, products []catalogdomain.Product) map[int]string {
	out := make([]string, len(products))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for idx := range products {
		idx := idx
		g.Go(func() error {
			p := products[idx]
			out[idx] = c.GenerateFlavorDescription(ctx, p.Name, p.Flavors)
			return nil
		})
	}
	_ = g.Wait()

	descriptions := make(map[int]string, len(products))
	for i, p := range products {
		descriptions[p.ID] = out[i]
	}
	return descriptions
}

// VibeRecommendation turns three quiz answers into exactly one product from
// the supplied catalog plus a short rationale. Unlike descriptions this
// surfaces every failure: missing key, provider errors, unparseable output
// and ids that match nothing in the catalog.
func (c *Client) VibeRecommendation(ctx context.Context, answers [3]string, products []catalogdomain.Product) (Recommendation, error) {
	if c.apiKey == "" {
		return Recommendation{}, ErrNoAPIKey
	}

	var sb strings.Builder
	for _, p := range products {
		fmt.Fprintf(&sb, "- id %d: %s (sabores: %s)\n", p.ID, p.Name, strings.Join(p.Flavors, ", "))
	}

	prompt := fmt.Sprintf(`Você é um especialista em vapes da loja VibeVapes. Com base nas respostas de um quiz de vibe, recomende exatamente um produto do catálogo abaixo.

Respostas do quiz:
1. %s
2. %s
3. %s

Catálogo:
%s
Responda em JSON com os campos "recommendedProductId" (número) e "reason" (uma frase curta em português explicando a escolha).`,
		answers[0], answers[1], answers[2], sb.String())

	text, err := c.generate(ctx, prompt, true)
	if err != nil {
		return Recommendation{}, err
	}

	var parsed struct {
		RecommendedProductID int    `json:"recommendedProductId"`
		Reason               string `json:"reason"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return Recommendation{}, fmt.Errorf("gemini: unparseable recommendation %q: %w", text, err)
	}

	for _, p := range products {
		if p.ID == parsed.RecommendedProductID {
			return Recommendation{Product: p, Reason: parsed.Reason}, nil
		}
	}
	return Recommendation{}, fmt.Errorf("%w: id %d", ErrUnknownProduct, parsed.RecommendedProductID)
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// generate runs one generateContent call and returns the first candidate's
// text. asJSON constrains the model to emit a JSON document.
func (c *Client) generate(ctx context.Context, prompt string, asJSON bool) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if asJSON {
		reqBody.GenerationConfig = &generationConfig{ResponseMIMEType: "application/json"}
	}

	raw, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("gemini: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini: empty response")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

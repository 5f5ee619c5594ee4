// Package static holds the built-in product catalog. The storefront ships
// with a fixed set of products; there is no catalog backend.
package static

import (
	"context"

	"github.com/vibevapes/storefront/internal/catalog/app"
	"github.com/vibevapes/storefront/internal/catalog/domain"
)

type Repo struct {
	products []domain.Product
}

func NewRepo() *Repo {
	return &Repo{products: seed()}
}

func (r *Repo) Get(_ context.Context, id int) (domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, app.ErrNotFound
}

func (r *Repo) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func brl(cents int64) domain.Money {
	return domain.Money{Currency: "BRL", Amount: cents}
}

func seed() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "Cosmic Mango",
			Price:       brl(2499),
			ImageURL:    "https://picsum.photos/seed/mango/500/500",
			Flavors:     []string{"manga madura", "maracujá", "um toque de citrus"},
			Color:       domain.ColorCyan,
			Description: "Uma viagem tropical com o doce da manga madura e o toque cítrico do maracujá. Perfeito para relaxar e sentir a brisa.",
		},
		{
			ID:          2,
			Name:        "Cyber Grape",
			Price:       brl(2250),
			ImageURL:    "https://picsum.photos/seed/grape/500/500",
			Flavors:     []string{"uva caramelizada", "frutas silvestres", "um final refrescante"},
			Color:       domain.ColorPurple,
			Description: "Sinta a intensidade da uva caramelizada misturada com o frescor das frutas silvestres. Uma experiência futurista e inesquecível.",
		},
		{
			ID:          3,
			Name:        "Glacial Mint",
			Price:       brl(1999),
			ImageURL:    "https://picsum.photos/seed/mint/500/500",
			Flavors:     []string{"menta ártica", "hortelã doce", "uma explosão gelada"},
			Color:       domain.ColorCyan,
			Description: "Uma explosão de frescor que combina menta ártica e hortelã doce. Sinta o poder do gelo em cada puff.",
		},
		{
			ID:          4,
			Name:        "Neon Berry",
			Price:       brl(2500),
			ImageURL:    "https://picsum.photos/seed/berry/500/500",
			Flavors:     []string{"framboesa azul elétrica", "morango", "raspas de limão"},
			Color:       domain.ColorPink,
			Description: "A energia contagiante da framboesa azul elétrica e do morango fresco, com um final cítrico que acende seus sentidos.",
		},
		{
			ID:          5,
			Name:        "Stardust Peach",
			Price:       brl(2375),
			ImageURL:    "https://picsum.photos/seed/peach/500/500",
			Flavors:     []string{"pêssego suculento", "damasco", "um toque de baunilha"},
			Color:       domain.ColorPurple,
			Description: "A doçura suculenta do pêssego e do damasco com uma nota suave de baunilha. Um sabor delicado e celestial.",
		},
		{
			ID:          6,
			Name:        "Fusion Fizz",
			Price:       brl(2650),
			ImageURL:    "https://picsum.photos/seed/fizz/500/500",
			Flavors:     []string{"cola de cereja", "cítricos espumantes", "uma sensação efervescente"},
			Color:       domain.ColorPink,
			Description: "A nostalgia da cola de cereja com a vibração dos cítricos espumantes. Um sabor que borbulha e surpreende.",
		},
	}
}

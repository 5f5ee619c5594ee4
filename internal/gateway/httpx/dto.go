package httpx

import (
	"time"

	cartdomain "github.com/vibevapes/storefront/internal/cart/domain"
	catalogdomain "github.com/vibevapes/storefront/internal/catalog/domain"
	orderdomain "github.com/vibevapes/storefront/internal/order/domain"
)

type ProductResponse struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	ImageURL    string   `json:"imageUrl"`
	Flavors     []string `json:"flavors"`
	Color       string   `json:"color"`
	Description string   `json:"description"`
}

type CartLineResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Total    float64         `json:"total"`
}

type CartResponse struct {
	Lines     []CartLineResponse `json:"lines"`
	ItemCount int                `json:"itemCount"`
	Total     float64            `json:"total"`
	Open      bool               `json:"open"`
}

type AddCartItemRequest struct {
	ProductID int `json:"productId"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type OrderResponse struct {
	ID       string             `json:"id"`
	Date     string             `json:"date"`
	Items    []CartLineResponse `json:"items"`
	Total    float64            `json:"total"`
	Customer CustomerResponse   `json:"customer"`
}

type CustomerResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type DescriptionResponse struct {
	ProductID   int    `json:"productId"`
	Description string `json:"description"`
}

type AnswerRequest struct {
	Answer string `json:"answer"`
}

type StageResponse struct {
	Stage string `json:"stage"`
}

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func mapProduct(p catalogdomain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price.Float(),
		Currency:    p.Price.Currency,
		ImageURL:    p.ImageURL,
		Flavors:     p.Flavors,
		Color:       string(p.Color),
		Description: p.Description,
	}
}

func mapProducts(ps []catalogdomain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, mapProduct(p))
	}
	return out
}

func mapLines(lines []cartdomain.Line) []CartLineResponse {
	out := make([]CartLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, CartLineResponse{
			Product:  mapProduct(l.Product),
			Quantity: l.Quantity,
			Total:    l.Total().Float(),
		})
	}
	return out
}

func mapOrder(o orderdomain.Order) OrderResponse {
	return OrderResponse{
		ID:    o.ID,
		Date:  o.Date.Format(time.RFC3339Nano),
		Items: mapLines(o.Items),
		Total: o.Total.Float(),
		Customer: CustomerResponse{
			Name:    o.Customer.Name,
			Address: o.Customer.Address,
		},
	}
}

func mapOrders(orders []orderdomain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, mapOrder(o))
	}
	return out
}

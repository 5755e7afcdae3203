package catalog

import (
	"context"

	"github.com/ecom/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductResponse is a product in API responses
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *int64          `json:"category_id,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
}

// ListFilter narrows product listings
type ListFilter struct {
	CategoryID *int64 `form:"category_id"`
}

// Service provides read access to the product catalog
type Service struct {
	products catalog.Repository
}

// NewService creates a new catalog service
func NewService(products catalog.Repository) *Service {
	return &Service{products: products}
}

// Get loads a single product
func (s *Service) Get(ctx context.Context, id int64) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// List returns products, optionally filtered by category
func (s *Service) List(ctx context.Context, filter ListFilter) ([]ProductResponse, error) {
	products, err := s.products.FindAll(ctx, filter.CategoryID)
	if err != nil {
		return nil, err
	}
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out, nil
}

func toProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		ImageURL:    p.ImageURL,
	}
}

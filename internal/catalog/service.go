package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Service handles catalog business logic.
type Service struct {
	repo        Repository
	placeholder string
}

// NewService builds a Service. placeholder is the image path used for
// products created without one.
func NewService(repo Repository, placeholder string) *Service {
	return &Service{repo: repo, placeholder: placeholder}
}

// List returns all products in insertion order.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

// Get returns a single product by id.
func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	return s.repo.Get(ctx, id)
}

// Create inserts a new product. Image falls back to the placeholder and SKU
// is generated when the client supplies none.
func (s *Service) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	if err := validateCreate(req); err != nil {
		return Product{}, err
	}
	product := Product{
		SKU:         req.SKU,
		Name:        req.Name,
		Price:       *req.Price,
		Image:       req.Image,
		Description: req.Description,
	}
	if product.SKU == "" {
		product.SKU = uuid.NewString()
	}
	if product.Image == "" {
		product.Image = s.placeholder
	}
	return s.repo.Create(ctx, product)
}

// Update applies the provided fields to an existing product and returns the
// post-update representation. Absent fields retain their prior values.
func (s *Service) Update(ctx context.Context, id int64, req UpdateProductRequest) (Product, error) {
	if err := validateUpdate(req); err != nil {
		return Product{}, err
	}
	product, err := s.repo.Get(ctx, id)
	if err != nil {
		return Product{}, err
	}
	if req.SKU != nil {
		product.SKU = *req.SKU
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	return s.repo.Update(ctx, id, product)
}

// Delete removes a product by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

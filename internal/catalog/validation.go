package catalog

import (
	"fmt"
	"strings"

	"github.com/stride-commerce/stride/internal/platform/httpx"
)

func validateCreate(req CreateProductRequest) error {
	if strings.TrimSpace(req.Name) == "" || req.Price == nil {
		return fmt.Errorf("name and price are required: %w", httpx.ErrValidation)
	}
	return nil
}

func validateUpdate(req UpdateProductRequest) error {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return fmt.Errorf("name must not be empty: %w", httpx.ErrValidation)
	}
	return nil
}

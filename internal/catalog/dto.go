package catalog

// CreateProductRequest is the direct-insert creation payload. Price is a
// pointer so a missing field is distinguishable from zero.
type CreateProductRequest struct {
	SKU         string   `json:"sku"`
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
}

// UpdateProductRequest carries a partial update; nil fields keep their
// stored values.
type UpdateProductRequest struct {
	SKU         *string  `json:"sku"`
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
}

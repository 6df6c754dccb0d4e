package dto

import "time"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
	MinStock int    `json:"min_stock"`
}

// UpdateProductRequest entrada para actualizar un producto. El código no se modifica.
type UpdateProductRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	MinStock *int    `json:"min_stock"`
}

// ProductResponse salida de un producto con su stock total (suma de lotes).
type ProductResponse struct {
	ID         string    `json:"id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	MinStock   int       `json:"min_stock"`
	TotalStock int       `json:"total_stock"`
	LowStock   bool      `json:"low_stock"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name string `json:"name"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCostCenterRequest entrada para crear un centro de costo.
type CreateCostCenterRequest struct {
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// CostCenterResponse salida de un centro de costo.
type CostCenterResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateClassificationRequest entrada para crear una clasificación.
type CreateClassificationRequest struct {
	Name string `json:"name"`
}

// ClassificationResponse salida de una clasificación.
type ClassificationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

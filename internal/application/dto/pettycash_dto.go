package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PettyCashRequest body para crear o actualizar un gasto de caja chica.
type PettyCashRequest struct {
	Date           string          `json:"date"` // YYYY-MM-DD
	Amount         decimal.Decimal `json:"amount"`
	Responsible    string          `json:"responsible"`
	Description    string          `json:"description"`
	DocumentNumber string          `json:"document_number,omitempty"`
	DocumentType   string          `json:"document_type,omitempty"` // por defecto BOLETA
}

// PettyCashResponse gasto con su IVA recuperable.
type PettyCashResponse struct {
	ID             string          `json:"id"`
	Date           string          `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	AmountLabel    string          `json:"amount_label"`
	RecoverableVAT decimal.Decimal `json:"recoverable_vat"`
	Responsible    string          `json:"responsible"`
	Description    string          `json:"description"`
	DocumentNumber string          `json:"document_number,omitempty"`
	DocumentType   string          `json:"document_type"`
	CreatedAt      time.Time       `json:"created_at"`
}

// PettyCashListResponse listado paginado con el total gastado.
type PettyCashListResponse struct {
	Items []PettyCashResponse `json:"items"`
	Page  PageResponse        `json:"page"`
	Total decimal.Decimal     `json:"total"`
}

// MonthlyTotalDTO total de un mes ("2025-03").
type MonthlyTotalDTO struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// PettyCashSummaryResponse resumen mensual de caja chica.
type PettyCashSummaryResponse struct {
	Months []MonthlyTotalDTO `json:"months"`
	Total  decimal.Decimal   `json:"total"`
}

// TrainClassifierResponse resultado de entrenar el clasificador.
type TrainClassifierResponse struct {
	Samples   int       `json:"samples"`
	Classes   []string  `json:"classes"`
	TrainedAt time.Time `json:"trained_at"`
}

// SuggestDocumentTypeRequest body para sugerir el tipo de documento.
type SuggestDocumentTypeRequest struct {
	Description string `json:"description"`
}

// SuggestDocumentTypeResponse sugerencia; DocumentType vacío si no hay modelo entrenado.
type SuggestDocumentTypeResponse struct {
	DocumentType string  `json:"document_type"`
	Probability  float64 `json:"probability"`
}

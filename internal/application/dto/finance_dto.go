package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntryRequest body para crear o actualizar un registro financiero.
// El IVA no se recibe: se calcula según el tipo de documento.
type LedgerEntryRequest struct {
	Date             string          `json:"date"` // YYYY-MM-DD
	DocumentNumber   string          `json:"document_number"`
	DocumentType     string          `json:"document_type"`
	GrossAmount      decimal.Decimal `json:"gross_amount"`
	Description      string          `json:"description"`
	Status           string          `json:"status"`
	Detail           string          `json:"detail"`
	CompanyID        string          `json:"company_id,omitempty"`
	CostCenterID     string          `json:"cost_center_id,omitempty"`
	ClassificationID string          `json:"classification_id,omitempty"`
}

// LedgerEntryResponse salida de un registro financiero.
type LedgerEntryResponse struct {
	ID                 string          `json:"id"`
	Date               string          `json:"date"`
	DocumentNumber     string          `json:"document_number"`
	DocumentType       string          `json:"document_type"`
	GrossAmount        decimal.Decimal `json:"gross_amount"`
	VAT                decimal.Decimal `json:"vat"`
	NetAmount          decimal.Decimal `json:"net_amount"`
	Description        string          `json:"description"`
	Status             string          `json:"status"`
	Detail             string          `json:"detail"`
	CompanyID          string          `json:"company_id,omitempty"`
	CompanyName        string          `json:"company_name,omitempty"`
	CostCenterID       string          `json:"cost_center_id,omitempty"`
	CostCenterName     string          `json:"cost_center_name,omitempty"`
	ClassificationID   string          `json:"classification_id,omitempty"`
	ClassificationName string          `json:"classification_name,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// LedgerListQuery filtros del listado tal como llegan en la query string.
// Min/Max aceptan separadores de miles ("1.000.000"); si no son numéricos se ignoran.
type LedgerListQuery struct {
	CompanyID        string `query:"empresa"`
	CostCenterID     string `query:"centro"`
	ClassificationID string `query:"clasificacion"`
	Min              string `query:"min_costo"`
	Max              string `query:"max_costo"`
	From             string `query:"fecha_inicio"`
	To               string `query:"fecha_fin"`
	Order            string `query:"orden"`
	Page             int    `query:"page"`
	PerPage          int    `query:"per_page"`
}

// LedgerListResponse página de registros más la serie diaria del conjunto filtrado.
type LedgerListResponse struct {
	Items []LedgerEntryResponse `json:"items"`
	Page  PageResponse          `json:"page"`
	Chart []ChartPoint          `json:"chart"`
}

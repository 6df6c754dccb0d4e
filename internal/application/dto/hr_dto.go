package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkerRequest body para crear o actualizar un trabajador.
type WorkerRequest struct {
	CompanyID       string          `json:"company_id"`
	Name            string          `json:"name"`
	RUT             string          `json:"rut"`
	Position        string          `json:"position"`
	HiredOn         string          `json:"hired_on,omitempty"`      // YYYY-MM-DD
	TerminatedOn    string          `json:"terminated_on,omitempty"` // YYYY-MM-DD
	SeveranceAmount decimal.Decimal `json:"severance_amount"`
}

// WorkerResponse trabajador con su tiempo de servicio.
type WorkerResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	Name            string          `json:"name"`
	RUT             string          `json:"rut"`
	Position        string          `json:"position"`
	HiredOn         *string         `json:"hired_on,omitempty"`
	TerminatedOn    *string         `json:"terminated_on,omitempty"`
	SeveranceAmount decimal.Decimal `json:"severance_amount"`
	Active          bool            `json:"active"`
	ServiceTime     string          `json:"service_time"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CompanyHeadcountDTO dotación de una empresa.
type CompanyHeadcountDTO struct {
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
	Active      int    `json:"active"`
	Terminated  int    `json:"terminated"`
}

// PositionHeadcountDTO dotación por empresa y cargo.
type PositionHeadcountDTO struct {
	CompanyName string `json:"company_name"`
	Position    string `json:"position"`
	Total       int    `json:"total"`
	Active      int    `json:"active"`
	Terminated  int    `json:"terminated"`
}

// HRDashboardDTO dashboard de recursos humanos.
type HRDashboardDTO struct {
	CompanyID        string                 `json:"company_id,omitempty"`
	Companies        []CompanyHeadcountDTO  `json:"companies"`
	Positions        []PositionHeadcountDTO `json:"positions"`
	SeveranceByMonth []MonthlyTotalDTO      `json:"severance_by_month"`
	TotalSeverance   decimal.Decimal        `json:"total_severance"`
}

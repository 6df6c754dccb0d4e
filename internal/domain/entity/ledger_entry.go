package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerStatusRegistered estado inicial de un registro (ventas y altas sin estado).
const LedgerStatusRegistered = "REGISTRADO"

// LedgerEntry registro financiero ("Ingreso"): monto bruto con IVA incluido y el IVA calculado.
// CompanyID, CostCenterID y ClassificationID vacíos significan "sin asignar".
type LedgerEntry struct {
	ID               string
	Date             time.Time
	DocumentNumber   string
	DocumentType     string // FACTURA, BOLETA, NOTA_DEBITO, NOTA_CREDITO, VENTA, ...
	GrossAmount      decimal.Decimal
	VAT              decimal.Decimal
	Description      string
	Status           string
	Detail           string
	CompanyID        string
	CostCenterID     string
	ClassificationID string
	CreatedAt        time.Time
}

// LedgerEntryView es el registro con los nombres de sus catálogos resueltos (listados).
type LedgerEntryView struct {
	LedgerEntry
	CompanyName        string
	CostCenterName     string
	ClassificationName string
}

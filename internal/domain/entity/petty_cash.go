package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento aceptados en caja chica.
const (
	PettyCashDocFactura = "FACTURA"
	PettyCashDocBoleta  = "BOLETA"
	PettyCashDocPeaje   = "PEAJE"
	PettyCashDocVale    = "VALE"
	PettyCashDocOtro    = "OTRO"
)

// PettyCashDocumentTypes lista los tipos válidos, en el orden en que se muestran.
var PettyCashDocumentTypes = []string{
	PettyCashDocFactura, PettyCashDocBoleta, PettyCashDocPeaje, PettyCashDocVale, PettyCashDocOtro,
}

// PettyCashExpense gasto rendido en caja chica (monto total, IVA incluido).
type PettyCashExpense struct {
	ID             string
	Date           time.Time
	Amount         decimal.Decimal
	Responsible    string
	Description    string
	DocumentNumber string
	DocumentType   string
	CreatedAt      time.Time
}

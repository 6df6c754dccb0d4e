package dto

import "github.com/shopspring/decimal"

// CreateLotRequest body para POST /api/inventory/lots.
type CreateLotRequest struct {
	ProductID      string `json:"product_id"`
	LotNumber      string `json:"lot_number"`
	ManufacturedOn string `json:"manufactured_on,omitempty"` // YYYY-MM-DD
	ExpiresOn      string `json:"expires_on"`                // YYYY-MM-DD
	Quantity       int    `json:"quantity"`
}

// LotResponse lote con su estado de vencimiento calculado a la fecha de hoy.
type LotResponse struct {
	ID              string  `json:"id"`
	ProductID       string  `json:"product_id"`
	LotNumber       string  `json:"lot_number"`
	ManufacturedOn  *string `json:"manufactured_on,omitempty"`
	ExpiresOn       string  `json:"expires_on"`
	Quantity        int     `json:"quantity"`
	DaysUntilExpiry int     `json:"days_until_expiry"`
	Status          string  `json:"status"` // EXPIRED, NEAR_EXPIRY, OK
}

// ProductStockDTO producto con sus lotes ordenados por vencimiento.
type ProductStockDTO struct {
	Product ProductResponse `json:"product"`
	Lots    []LotResponse   `json:"lots"`
}

// InventoryOverviewResponse vista general del inventario perecible.
type InventoryOverviewResponse struct {
	Items         []ProductStockDTO `json:"items"`
	LowStockCount int               `json:"low_stock_count"`
	GeneratedOn   string            `json:"generated_on"`
}

// WithdrawStockRequest body para POST /api/inventory/withdrawals.
type WithdrawStockRequest struct {
	ProductID  string          `json:"product_id"`
	Quantity   int             `json:"quantity"`
	SaleAmount decimal.Decimal `json:"sale_amount"`
}

// LotEffectDTO efecto de la salida sobre un lote.
type LotEffectDTO struct {
	LotID     string `json:"lot_id"`
	LotNumber string `json:"lot_number"`
	Taken     int    `json:"taken"`
	Remaining int    `json:"remaining"`
	Deleted   bool   `json:"deleted"`
}

// WithdrawStockResponse resultado de una salida de stock confirmada.
type WithdrawStockResponse struct {
	ProductID      string         `json:"product_id"`
	ProductName    string         `json:"product_name"`
	Quantity       int            `json:"quantity"`
	Lots           []LotEffectDTO `json:"lots"`
	LedgerEntryID  string         `json:"ledger_entry_id"`
	RemainingStock int            `json:"remaining_stock"`
}

// InsufficientStockResponse cuerpo del 409 cuando no alcanza el stock.
type InsufficientStockResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Available int    `json:"available"`
	Requested int    `json:"requested"`
}

// ExpiringLotDTO lote vencido o por vencer, para la alerta.
type ExpiringLotDTO struct {
	ProductID       string `json:"product_id"`
	ProductCode     string `json:"product_code"`
	ProductName     string `json:"product_name"`
	LotNumber       string `json:"lot_number"`
	ExpiresOn       string `json:"expires_on"`
	Quantity        int    `json:"quantity"`
	DaysUntilExpiry int    `json:"days_until_expiry"`
	Status          string `json:"status"`
}

// LowStockDTO producto con stock total bajo su mínimo.
type LowStockDTO struct {
	ProductID  string `json:"product_id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	TotalStock int    `json:"total_stock"`
	MinStock   int    `json:"min_stock"`
}

// ExpiryAlertDTO contenido de la alerta de vencimientos.
type ExpiryAlertDTO struct {
	GeneratedOn string           `json:"generated_on"`
	Lots        []ExpiringLotDTO `json:"lots"`
	LowStock    []LowStockDTO    `json:"low_stock"`
}

// Empty indica que no hay nada que alertar.
func (a ExpiryAlertDTO) Empty() bool {
	return len(a.Lots) == 0 && len(a.LowStock) == 0
}

// ExpiryAlertSentResponse resultado de POST /api/inventory/alerts/send.
type ExpiryAlertSentResponse struct {
	Sent     bool `json:"sent"`
	Lots     int  `json:"lots"`
	LowStock int  `json:"low_stock"`
}

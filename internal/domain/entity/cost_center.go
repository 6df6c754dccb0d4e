package entity

import "time"

// CostCenter centro de costo al que se imputan los movimientos.
type CostCenter struct {
	ID        string
	Name      string // único
	Code      string // opcional
	CreatedAt time.Time
}

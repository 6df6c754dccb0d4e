package entity

import "time"

// Classification clasificación contable de un movimiento (Insumos, Arriendo, ...).
type Classification struct {
	ID        string
	Name      string // único
	CreatedAt time.Time
}

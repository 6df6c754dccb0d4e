package entity

import "time"

// Product representa un producto perecible. El stock total es la suma de sus lotes.
type Product struct {
	ID        string
	Code      string // código único
	Name      string
	Category  string
	MinStock  int // umbral de stock mínimo para alertas
	CreatedAt time.Time
	UpdatedAt time.Time
}

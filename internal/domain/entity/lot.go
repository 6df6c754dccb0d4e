package entity

import "time"

// Lot es una partida de un producto con su propio vencimiento y cantidad (nunca negativa).
// Un lote que llega a cero se elimina; no se guardan lotes vacíos.
type Lot struct {
	ID             string
	ProductID      string
	LotNumber      string
	ManufacturedOn *time.Time // opcional
	ExpiresOn      time.Time
	Quantity       int
	CreatedAt      time.Time
}

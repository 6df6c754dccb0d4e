package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Worker trabajador de una empresa del grupo. Sin fecha de finiquito = activo.
type Worker struct {
	ID              string
	CompanyID       string
	Name            string
	RUT             string // normalizado: 12.345.678-5
	Position        string
	HiredOn         *time.Time
	TerminatedOn    *time.Time
	SeveranceAmount decimal.Decimal
	CreatedAt       time.Time
}

// Active indica si el trabajador no tiene finiquito.
func (w *Worker) Active() bool {
	return w.TerminatedOn == nil
}

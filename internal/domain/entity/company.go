package entity

import "time"

// Company representa una empresa del grupo (Samka SPA, Maquehue SPA, ...). Nombre único.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

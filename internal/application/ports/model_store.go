package ports

import (
	"context"

	"github.com/samka/gestion-api/internal/domain/classifier"
)

// ModelStore persiste el modelo del clasificador de caja chica.
// Load devuelve (nil, nil) si todavía no hay un modelo guardado.
type ModelStore interface {
	Save(ctx context.Context, m *classifier.Model) error
	Load(ctx context.Context) (*classifier.Model, error)
}

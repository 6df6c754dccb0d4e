// Package modelstore guarda el modelo del clasificador de caja chica en disco.
package modelstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/samka/gestion-api/internal/application/ports"
	"github.com/samka/gestion-api/internal/domain/classifier"
)

var _ ports.ModelStore = (*FileStore)(nil)

// FileStore serializa el modelo como JSON en una ruta fija.
type FileStore struct {
	path string
}

// NewFileStore construye el store sobre la ruta configurada (CLASSIFIER_MODEL_PATH).
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save escribe en un temporal del mismo directorio y lo renombra, para no dejar un modelo a medias.
func (s *FileStore) Save(_ context.Context, m *classifier.Model) error {
	if m == nil {
		return errors.New("modelstore: modelo nil")
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("modelstore: crear directorio: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".model-*.json")
	if err != nil {
		return fmt.Errorf("modelstore: temporal: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := json.NewEncoder(tmp).Encode(m); err != nil {
		tmp.Close()
		return fmt.Errorf("modelstore: serializar: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("modelstore: cerrar temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("modelstore: renombrar: %w", err)
	}
	return nil
}

// Load lee el modelo; (nil, nil) si el archivo no existe. Un modelo con dimensiones
// inconsistentes se rechaza como error de lectura.
func (s *FileStore) Load(_ context.Context) (*classifier.Model, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("modelstore: abrir: %w", err)
	}
	defer f.Close()

	var m classifier.Model
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return nil, fmt.Errorf("modelstore: leer %s: %w", s.path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("modelstore: modelo inválido en %s: %w", s.path, err)
	}
	return &m, nil
}

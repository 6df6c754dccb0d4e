package classifier

import (
	"strings"
	"sync"

	"github.com/samka/gestion-api/internal/domain"
)

// Handle referencia compartida al modelo vigente. Se crea vacía y se carga explícitamente
// (entrenamiento o lectura desde almacenamiento); las predicciones sin modelo fallan con
// domain.ErrModelNotTrained.
type Handle struct {
	mu    sync.RWMutex
	model *Model
}

// NewHandle crea un handle sin modelo.
func NewHandle() *Handle {
	return &Handle{}
}

// Set reemplaza el modelo vigente.
func (h *Handle) Set(m *Model) {
	h.mu.Lock()
	h.model = m
	h.mu.Unlock()
}

// Model devuelve el modelo vigente o nil.
func (h *Handle) Model() *Model {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.model
}

// Ready indica si hay un modelo cargado.
func (h *Handle) Ready() bool {
	return h.Model() != nil
}

// Predict clasifica el texto con el modelo vigente.
func (h *Handle) Predict(text string) (Prediction, error) {
	m := h.Model()
	if m == nil {
		return Prediction{}, domain.ErrModelNotTrained
	}
	if strings.TrimSpace(text) == "" {
		return Prediction{}, domain.ErrInvalidInput
	}
	return m.Predict(text), nil
}

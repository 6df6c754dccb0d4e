package classifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samka/gestion-api/internal/domain"
)

func trainingSet() []Sample {
	return []Sample{
		{"Peaje autopista central", "PEAJE"},
		{"Pago peaje ruta 5 sur", "PEAJE"},
		{"Peaje costanera norte", "PEAJE"},
		{"Compra de almuerzo en restaurante", "BOLETA"},
		{"Café y almuerzo reunión", "BOLETA"},
		{"Almuerzo equipo terreno", "BOLETA"},
		{"Factura combustible camioneta", "FACTURA"},
		{"Combustible copec factura", "FACTURA"},
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"cafe", "reunion", "ruta", "10"}, Tokenize("Café, REUNIÓN a ruta-10!"))
	assert.Empty(t, Tokenize("  a . ; "))
}

func TestTrain_MuyPocosRegistros(t *testing.T) {
	_, err := Train(trainingSet()[:4], time.Now())
	assert.ErrorIs(t, err, domain.ErrNotEnoughSamples)
}

func TestTrainAndPredict(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m, err := Train(trainingSet(), now)
	require.NoError(t, err)

	assert.Equal(t, []string{"BOLETA", "FACTURA", "PEAJE"}, m.Classes)
	assert.Equal(t, 8, m.Samples)
	assert.Equal(t, now, m.TrainedAt)

	assert.Equal(t, "PEAJE", m.Predict("peaje autopista").Label)
	assert.Equal(t, "BOLETA", m.Predict("almuerzo con cliente").Label)
	assert.Equal(t, "FACTURA", m.Predict("COMBUSTIBLE").Label)

	p := m.Predict("peaje")
	assert.Greater(t, p.Probability, 0.4)
	assert.LessOrEqual(t, p.Probability, 1.0)
}

func TestPredict_SinPalabrasConocidasUsaPrior(t *testing.T) {
	m, err := Train(trainingSet(), time.Now())
	require.NoError(t, err)
	// BOLETA y PEAJE empatan en prior (3 de 8); el orden alfabético decide.
	assert.Equal(t, "BOLETA", m.Predict("xyz").Label)
}

func TestHandle(t *testing.T) {
	h := NewHandle()
	assert.False(t, h.Ready())
	_, err := h.Predict("peaje")
	assert.ErrorIs(t, err, domain.ErrModelNotTrained)

	m, err := Train(trainingSet(), time.Now())
	require.NoError(t, err)
	h.Set(m)
	assert.True(t, h.Ready())

	p, err := h.Predict("peaje ruta")
	require.NoError(t, err)
	assert.Equal(t, "PEAJE", p.Label)

	_, err = h.Predict("   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestModel_Validate(t *testing.T) {
	m, err := Train(trainingSet(), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	assert.Error(t, (&Model{}).Validate())

	m.FeatureLogProb[1] = m.FeatureLogProb[1][:1]
	assert.Error(t, m.Validate())
}

package modelstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samka/gestion-api/internal/domain/classifier"
)

func TestFileStore_LoadSinArchivo(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "no-existe.json"))
	m, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestFileStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "modelo.json")
	s := NewFileStore(path)

	samples := []classifier.Sample{
		{Text: "peaje ruta 68", Label: "PEAJE"},
		{Text: "peaje autopista", Label: "PEAJE"},
		{Text: "almuerzo terreno", Label: "BOLETA"},
		{Text: "almuerzo equipo", Label: "BOLETA"},
		{Text: "factura combustible", Label: "FACTURA"},
	}
	trained, err := classifier.Train(samples, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, trained))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, trained.Classes, loaded.Classes)
	assert.Equal(t, trained.Samples, loaded.Samples)
	assert.True(t, trained.TrainedAt.Equal(loaded.TrainedAt))
	assert.Equal(t, "PEAJE", loaded.Predict("peaje").Label)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no deben quedar temporales")
}

func TestFileStore_ArchivoCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modelo.json")
	require.NoError(t, os.WriteFile(path, []byte("{no es json"), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	assert.Error(t, err)
}

func TestFileStore_ModeloInconsistente(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"vacío", `{}`},
		{"idf corto", `{"vocabulary":{"peaje":0,"ruta":1},"idf":[1],"classes":["PEAJE"],"class_log_prior":[0],"feature_log_prob":[[-0.5,-0.9]]}`},
		{"fila irregular", `{"vocabulary":{"peaje":0,"ruta":1},"idf":[1,1],"classes":["PEAJE","BOLETA"],"class_log_prior":[-0.7,-0.7],"feature_log_prob":[[-0.5,-0.9],[-0.5]]}`},
		{"índice fuera de rango", `{"vocabulary":{"peaje":0,"ruta":5},"idf":[1,1],"classes":["PEAJE"],"class_log_prior":[0],"feature_log_prob":[[-0.5,-0.9]]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "modelo.json")
			require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o644))

			m, err := NewFileStore(path).Load(context.Background())
			assert.Error(t, err)
			assert.Nil(t, m)
		})
	}
}

// Package classifier implementa un clasificador de texto Naive Bayes multinomial sobre
// pesos tf-idf, usado para sugerir el tipo de documento de un gasto a partir de su descripción.
package classifier

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/samka/gestion-api/internal/domain"
)

// MinSamples cantidad mínima de ejemplos para entrenar.
const MinSamples = 5

// smoothing suavizado de Laplace (alpha).
const smoothing = 1.0

// Sample ejemplo de entrenamiento: texto y etiqueta.
type Sample struct {
	Text  string
	Label string
}

// Model parámetros entrenados; serializable a JSON.
type Model struct {
	Vocabulary     map[string]int `json:"vocabulary"`
	IDF            []float64      `json:"idf"`
	Classes        []string       `json:"classes"`
	ClassLogPrior  []float64      `json:"class_log_prior"`
	FeatureLogProb [][]float64    `json:"feature_log_prob"`
	Samples        int            `json:"samples"`
	TrainedAt      time.Time      `json:"trained_at"`
}

// Prediction etiqueta sugerida y su probabilidad posterior.
type Prediction struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

// Train ajusta el modelo. Devuelve domain.ErrNotEnoughSamples con menos de MinSamples ejemplos.
func Train(samples []Sample, now time.Time) (*Model, error) {
	if len(samples) < MinSamples {
		return nil, fmt.Errorf("%w: se necesitan al menos %d registros, hay %d", domain.ErrNotEnoughSamples, MinSamples, len(samples))
	}

	docs := make([][]string, len(samples))
	vocabSet := make(map[string]struct{})
	classSet := make(map[string]struct{})
	for i, s := range samples {
		docs[i] = Tokenize(s.Text)
		for _, tok := range docs[i] {
			vocabSet[tok] = struct{}{}
		}
		classSet[s.Label] = struct{}{}
	}

	m := &Model{
		Vocabulary: make(map[string]int, len(vocabSet)),
		Samples:    len(samples),
		TrainedAt:  now,
	}
	terms := make([]string, 0, len(vocabSet))
	for tok := range vocabSet {
		terms = append(terms, tok)
	}
	sort.Strings(terms)
	for i, tok := range terms {
		m.Vocabulary[tok] = i
	}
	for c := range classSet {
		m.Classes = append(m.Classes, c)
	}
	sort.Strings(m.Classes)
	classIdx := make(map[string]int, len(m.Classes))
	for i, c := range m.Classes {
		classIdx[c] = i
	}

	// idf suavizado: ln((1+n)/(1+df)) + 1
	nFeatures := len(terms)
	df := make([]int, nFeatures)
	for _, doc := range docs {
		seen := make(map[int]bool)
		for _, tok := range doc {
			j := m.Vocabulary[tok]
			if !seen[j] {
				seen[j] = true
				df[j]++
			}
		}
	}
	n := float64(len(docs))
	m.IDF = make([]float64, nFeatures)
	for j := range df {
		m.IDF[j] = math.Log((1+n)/(1+float64(df[j]))) + 1
	}

	featureCount := make([][]float64, len(m.Classes))
	for c := range featureCount {
		featureCount[c] = make([]float64, nFeatures)
	}
	classCount := make([]float64, len(m.Classes))
	for i, doc := range docs {
		c := classIdx[samples[i].Label]
		classCount[c]++
		for j, w := range m.weights(doc) {
			featureCount[c][j] += w
		}
	}

	m.ClassLogPrior = make([]float64, len(m.Classes))
	m.FeatureLogProb = make([][]float64, len(m.Classes))
	for c := range m.Classes {
		m.ClassLogPrior[c] = math.Log(classCount[c] / n)
		total := 0.0
		for _, v := range featureCount[c] {
			total += v
		}
		denom := total + smoothing*float64(nFeatures)
		m.FeatureLogProb[c] = make([]float64, nFeatures)
		for j, v := range featureCount[c] {
			m.FeatureLogProb[c][j] = math.Log((v + smoothing) / denom)
		}
	}
	return m, nil
}

// Validate revisa que las dimensiones del modelo sean coherentes entre sí.
// Un modelo leído de disco debe pasar por aquí antes de usarse para predecir.
func (m *Model) Validate() error {
	nClasses, nFeatures := len(m.Classes), len(m.Vocabulary)
	switch {
	case nClasses == 0:
		return errors.New("modelo sin clases")
	case len(m.ClassLogPrior) != nClasses:
		return fmt.Errorf("class_log_prior: %d valores para %d clases", len(m.ClassLogPrior), nClasses)
	case len(m.FeatureLogProb) != nClasses:
		return fmt.Errorf("feature_log_prob: %d filas para %d clases", len(m.FeatureLogProb), nClasses)
	case len(m.IDF) != nFeatures:
		return fmt.Errorf("idf: %d valores para %d términos", len(m.IDF), nFeatures)
	}
	for c, row := range m.FeatureLogProb {
		if len(row) != nFeatures {
			return fmt.Errorf("feature_log_prob[%d]: %d valores para %d términos", c, len(row), nFeatures)
		}
	}
	for tok, j := range m.Vocabulary {
		if j < 0 || j >= nFeatures {
			return fmt.Errorf("vocabulario: índice %d fuera de rango para %q", j, tok)
		}
	}
	return nil
}

// weights vector tf-idf normalizado (L2) de un documento tokenizado; términos fuera del vocabulario se ignoran.
func (m *Model) weights(tokens []string) map[int]float64 {
	w := make(map[int]float64)
	for _, tok := range tokens {
		if j, ok := m.Vocabulary[tok]; ok {
			w[j]++
		}
	}
	norm := 0.0
	for j, tf := range w {
		w[j] = tf * m.IDF[j]
		norm += w[j] * w[j]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for j := range w {
			w[j] /= norm
		}
	}
	return w
}

// Predict devuelve la clase más probable para el texto.
func (m *Model) Predict(text string) Prediction {
	x := m.weights(Tokenize(text))
	scores := make([]float64, len(m.Classes))
	best := 0
	for c := range m.Classes {
		s := m.ClassLogPrior[c]
		for j, v := range x {
			s += v * m.FeatureLogProb[c][j]
		}
		scores[c] = s
		if s > scores[best] {
			best = c
		}
	}
	// softmax estable
	sum := 0.0
	for _, s := range scores {
		sum += math.Exp(s - scores[best])
	}
	return Prediction{Label: m.Classes[best], Probability: 1 / sum}
}

package pettycash

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samka/gestion-api/internal/application/dto"
	"github.com/samka/gestion-api/internal/domain"
	"github.com/samka/gestion-api/internal/domain/classifier"
	"github.com/samka/gestion-api/internal/domain/entity"
	"github.com/samka/gestion-api/internal/domain/repository"
)

type memRepo struct {
	items map[string]entity.PettyCashExpense
}

func newMemRepo() *memRepo { return &memRepo{items: map[string]entity.PettyCashExpense{}} }

func (m *memRepo) Create(_ context.Context, e *entity.PettyCashExpense) error {
	m.items[e.ID] = *e
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id string) (*entity.PettyCashExpense, error) {
	e, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (m *memRepo) Update(_ context.Context, e *entity.PettyCashExpense) error {
	m.items[e.ID] = *e
	return nil
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

func (m *memRepo) List(ctx context.Context, _, _ int) ([]*entity.PettyCashExpense, error) {
	return m.ListAll(ctx)
}

func (m *memRepo) ListAll(context.Context) ([]*entity.PettyCashExpense, error) {
	out := make([]*entity.PettyCashExpense, 0, len(m.items))
	for _, e := range m.items {
		e := e
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (m *memRepo) MonthlyTotals(context.Context) ([]repository.PeriodTotal, error) {
	byMonth := map[time.Time]decimal.Decimal{}
	for _, e := range m.items {
		k := time.Date(e.Date.Year(), e.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		byMonth[k] = byMonth[k].Add(e.Amount)
	}
	out := make([]repository.PeriodTotal, 0, len(byMonth))
	for k, v := range byMonth {
		out = append(out, repository.PeriodTotal{Period: k, Total: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period.Before(out[j].Period) })
	return out, nil
}

func (m *memRepo) Total(context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range m.items {
		total = total.Add(e.Amount)
	}
	return total, nil
}

type memStore struct {
	saved *classifier.Model
}

func (s *memStore) Save(_ context.Context, m *classifier.Model) error {
	s.saved = m
	return nil
}

func (s *memStore) Load(context.Context) (*classifier.Model, error) {
	return s.saved, nil
}

func TestCreate_BoletaPorDefectoEIVARecuperable(t *testing.T) {
	uc := NewUseCase(newMemRepo())

	out, err := uc.Create(context.Background(), dto.PettyCashRequest{
		Date: "2025-03-02", Amount: decimal.NewFromInt(7000), Responsible: "Ana", Description: "Almuerzo",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PettyCashDocBoleta, out.DocumentType)
	assert.Equal(t, "1118", out.RecoverableVAT.String())
	assert.Equal(t, "$7.000", out.AmountLabel)

	out, err = uc.Create(context.Background(), dto.PettyCashRequest{
		Date: "2025-03-02", Amount: decimal.NewFromInt(3500), Responsible: "Ana", Description: "Peaje", DocumentType: "peaje",
	})
	require.NoError(t, err)
	assert.True(t, out.RecoverableVAT.IsZero(), "peaje no tiene IVA recuperable")
}

func TestCreate_Validaciones(t *testing.T) {
	uc := NewUseCase(newMemRepo())
	ctx := context.Background()
	base := dto.PettyCashRequest{Date: "2025-03-02", Amount: decimal.NewFromInt(1000), Responsible: "Ana", Description: "x"}

	bad := base
	bad.DocumentType = "TICKET"
	_, err := uc.Create(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad = base
	bad.Amount = decimal.Zero
	_, err = uc.Create(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad = base
	bad.Responsible = " "
	_, err = uc.Create(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSummary(t *testing.T) {
	repo := newMemRepo()
	uc := NewUseCase(repo)
	ctx := context.Background()
	for _, r := range []dto.PettyCashRequest{
		{Date: "2025-02-10", Amount: decimal.NewFromInt(1000), Responsible: "Ana", Description: "a"},
		{Date: "2025-03-01", Amount: decimal.NewFromInt(2000), Responsible: "Ana", Description: "b"},
		{Date: "2025-03-31", Amount: decimal.NewFromInt(500), Responsible: "Ana", Description: "c"},
	} {
		_, err := uc.Create(ctx, r)
		require.NoError(t, err)
	}

	s, err := uc.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, s.Months, 2)
	assert.Equal(t, "2025-02", s.Months[0].Month)
	assert.Equal(t, "2500", s.Months[1].Total.String())
	assert.Equal(t, "3500", s.Total.String())
}

func seedTraining(t *testing.T, uc *UseCase) {
	t.Helper()
	rows := []struct{ desc, doc string }{
		{"Peaje autopista central", "PEAJE"},
		{"Pago peaje ruta 5 sur", "PEAJE"},
		{"Peaje costanera norte", "PEAJE"},
		{"Almuerzo equipo terreno", "BOLETA"},
		{"Café y almuerzo reunión", "BOLETA"},
		{"Factura combustible camioneta", "FACTURA"},
	}
	for _, r := range rows {
		_, err := uc.Create(context.Background(), dto.PettyCashRequest{
			Date: "2025-03-02", Amount: decimal.NewFromInt(1000), Responsible: "Ana", Description: r.desc, DocumentType: r.doc,
		})
		require.NoError(t, err)
	}
}

func TestClassifier_SinModeloDevuelveVacio(t *testing.T) {
	cu := NewClassifierUseCase(newMemRepo(), &memStore{}, classifier.NewHandle(), zerolog.Nop())

	out, err := cu.Suggest(context.Background(), dto.SuggestDocumentTypeRequest{Description: "peaje"})
	require.NoError(t, err)
	assert.Empty(t, out.DocumentType)

	loaded, err := cu.LoadFromStore(context.Background())
	require.NoError(t, err)
	assert.False(t, loaded)
}

func TestClassifier_EntrenaGuardaYSugiere(t *testing.T) {
	repo := newMemRepo()
	seedTraining(t, NewUseCase(repo))
	store := &memStore{}
	handle := classifier.NewHandle()
	cu := NewClassifierUseCase(repo, store, handle, zerolog.Nop())

	res, err := cu.Train(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, res.Samples)
	assert.ElementsMatch(t, []string{"BOLETA", "FACTURA", "PEAJE"}, res.Classes)
	require.NotNil(t, store.saved)
	assert.True(t, handle.Ready())

	out, err := cu.Suggest(context.Background(), dto.SuggestDocumentTypeRequest{Description: "peaje ruta"})
	require.NoError(t, err)
	assert.Equal(t, "PEAJE", out.DocumentType)

	// Un handle nuevo recupera el modelo guardado.
	other := classifier.NewHandle()
	cu2 := NewClassifierUseCase(repo, store, other, zerolog.Nop())
	loaded, err := cu2.LoadFromStore(context.Background())
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.True(t, other.Ready())
}

func TestClassifier_PocosDatos(t *testing.T) {
	repo := newMemRepo()
	cu := NewClassifierUseCase(repo, &memStore{}, classifier.NewHandle(), zerolog.Nop())
	_, err := cu.Train(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotEnoughSamples)

	_, err = cu.Suggest(context.Background(), dto.SuggestDocumentTypeRequest{Description: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

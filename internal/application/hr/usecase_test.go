package hr

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samka/gestion-api/internal/application/dto"
	"github.com/samka/gestion-api/internal/domain"
	"github.com/samka/gestion-api/internal/domain/entity"
	"github.com/samka/gestion-api/internal/domain/repository"
)

type memWorkers struct {
	items map[string]entity.Worker
}

func (m *memWorkers) Create(_ context.Context, w *entity.Worker) error {
	m.items[w.ID] = *w
	return nil
}

func (m *memWorkers) GetByID(_ context.Context, id string) (*entity.Worker, error) {
	w, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (m *memWorkers) Update(_ context.Context, w *entity.Worker) error {
	m.items[w.ID] = *w
	return nil
}

func (m *memWorkers) List(_ context.Context, f repository.WorkerFilter) ([]*entity.Worker, error) {
	var out []*entity.Worker
	for _, w := range m.items {
		if f.CompanyID == "" || w.CompanyID == f.CompanyID {
			w := w
			out = append(out, &w)
		}
	}
	return out, nil
}

func (m *memWorkers) HeadcountByCompany(context.Context) ([]repository.CompanyHeadcount, error) {
	return []repository.CompanyHeadcount{{CompanyID: "c1", CompanyName: "Samka SPA", Active: 2, Terminated: 1}}, nil
}

func (m *memWorkers) HeadcountByPosition(context.Context, repository.WorkerFilter) ([]repository.PositionHeadcount, error) {
	return []repository.PositionHeadcount{{CompanyName: "Samka SPA", Position: "Operario", Total: 3, Active: 2, Terminated: 1}}, nil
}

func (m *memWorkers) SeveranceByMonth(context.Context, repository.WorkerFilter) ([]repository.MonthlySeverance, error) {
	return []repository.MonthlySeverance{
		{Month: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(500000)},
		{Month: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(250000)},
	}, nil
}

type oneCompany struct{}

func (oneCompany) Create(context.Context, *entity.Company) error { return nil }
func (oneCompany) GetByID(_ context.Context, id string) (*entity.Company, error) {
	if id != "c1" {
		return nil, nil
	}
	return &entity.Company{ID: "c1", Name: "Samka SPA"}, nil
}
func (oneCompany) GetByName(context.Context, string) (*entity.Company, error) { return nil, nil }
func (oneCompany) List(context.Context) ([]*entity.Company, error)            { return nil, nil }

func newUC() *WorkerUseCase {
	return NewWorkerUseCase(&memWorkers{items: map[string]entity.Worker{}}, oneCompany{})
}

func TestCreate_NormalizaRUTYCalculaServicio(t *testing.T) {
	uc := newUC()

	out, err := uc.Create(context.Background(), dto.WorkerRequest{
		CompanyID: "c1", Name: "Juan Pérez", RUT: "12345678-5", Position: "Operario",
		HiredOn: "2020-01-15", TerminatedOn: "2022-03-20", SeveranceAmount: decimal.NewFromInt(800000),
	})
	require.NoError(t, err)
	assert.Equal(t, "12.345.678-5", out.RUT)
	assert.False(t, out.Active)
	assert.Equal(t, "2 años, 2 meses, 5 días", out.ServiceTime)

	active, err := uc.Create(context.Background(), dto.WorkerRequest{
		CompanyID: "c1", Name: "Ana", RUT: "11.111.111-1", HiredOn: "2024-05-01",
	})
	require.NoError(t, err)
	assert.True(t, active.Active)
	assert.Equal(t, "-", active.ServiceTime)
}

func TestCreate_Validaciones(t *testing.T) {
	uc := newUC()
	ctx := context.Background()
	cases := map[string]dto.WorkerRequest{
		"rut inválido":        {CompanyID: "c1", Name: "X", RUT: "12345678-9"},
		"sin empresa":         {Name: "X", RUT: "12345678-5"},
		"empresa inexistente": {CompanyID: "c9", Name: "X", RUT: "12345678-5"},
		"finiquito antes":     {CompanyID: "c1", Name: "X", RUT: "12345678-5", HiredOn: "2024-01-01", TerminatedOn: "2023-01-01"},
		"finiquito negativo":  {CompanyID: "c1", Name: "X", RUT: "12345678-5", SeveranceAmount: decimal.NewFromInt(-1)},
		"fecha mal escrita":   {CompanyID: "c1", Name: "X", RUT: "12345678-5", HiredOn: "01-01-2024"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestDashboard(t *testing.T) {
	uc := newUC()
	d, err := uc.Dashboard(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, d.Companies[0].Active)
	assert.Equal(t, "Operario", d.Positions[0].Position)
	require.Len(t, d.SeveranceByMonth, 2)
	assert.Equal(t, "2024-11", d.SeveranceByMonth[0].Month)
	assert.Equal(t, "750000", d.TotalSeverance.String())
}

package finance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samka/gestion-api/internal/domain"
	"github.com/samka/gestion-api/internal/domain/repository"
)

type stubAnalytics struct {
	granularity string
	err         error
}

func (s *stubAnalytics) GetKPIs(context.Context, repository.PeriodFilter) (repository.FinanceKPIs, error) {
	return repository.FinanceKPIs{
		Total:   decimal.NewFromInt(1234567),
		Count:   3,
		Average: decimal.RequireFromString("411522.33"),
	}, s.err
}

func (s *stubAnalytics) GetTotalsByCompany(_ context.Context, _ repository.PeriodFilter, limit int) ([]repository.NamedTotal, error) {
	return []repository.NamedTotal{{Name: "Samka", Total: decimal.NewFromInt(1000000)}, {Name: "", Total: decimal.NewFromInt(234567)}}, nil
}

func (s *stubAnalytics) GetTotalsByClassification(context.Context, repository.PeriodFilter) ([]repository.NamedTotal, error) {
	return []repository.NamedTotal{{Name: "", Total: decimal.NewFromInt(5)}}, nil
}

func (s *stubAnalytics) GetEvolution(_ context.Context, _ repository.PeriodFilter, granularity string) ([]repository.PeriodTotal, error) {
	s.granularity = granularity
	return []repository.PeriodTotal{{Period: time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(10)}}, nil
}

func (s *stubAnalytics) AvailableYears(context.Context) ([]int, error) {
	return []int{2025, 2024}, nil
}

func TestDashboard_PorMesEsDiario(t *testing.T) {
	repo := &stubAnalytics{}
	uc := NewDashboardUseCase(repo)

	d, err := uc.GetDashboard(context.Background(), 2025, 3)
	require.NoError(t, err)
	assert.Equal(t, repository.GranularityDay, repo.granularity)
	assert.Equal(t, "07/03", d.Evolution[0].Label)
	assert.Equal(t, int64(411522), d.KPIs.Average)
	assert.Equal(t, "$1.234.567", d.KPIs.TotalLabel)
	assert.Equal(t, "Sin Empresa", d.ByCompany[1].Label)
	assert.Equal(t, "Sin Clasif.", d.ByClassification[0].Label)
	assert.Equal(t, []int{2025, 2024}, d.AvailableYears)
}

func TestDashboard_SinMesEsMensual(t *testing.T) {
	repo := &stubAnalytics{}
	uc := NewDashboardUseCase(repo)

	d, err := uc.GetDashboard(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, repository.GranularityMonth, repo.granularity)
	assert.Equal(t, "Mar 2025", d.Evolution[0].Label)
}

func TestDashboard_Errores(t *testing.T) {
	uc := NewDashboardUseCase(&stubAnalytics{})
	_, err := uc.GetDashboard(context.Background(), 2025, 13)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	boom := errors.New("boom")
	uc = NewDashboardUseCase(&stubAnalytics{err: boom})
	_, err = uc.GetDashboard(context.Background(), 2025, 0)
	assert.ErrorIs(t, err, boom)
}

package finance

import (
	"context"
	"fmt"

	"github.com/samka/gestion-api/internal/application/dto"
	"github.com/samka/gestion-api/internal/domain"
	"github.com/samka/gestion-api/internal/domain/repository"
	"github.com/samka/gestion-api/pkg/clp"
)

const (
	dashboardTopCompanies = 10
	noClassificationLabel = "Sin Clasif."
	noCompanyLabel        = "Sin Empresa"
	evolutionDayLayout    = "02/01"
	evolutionMonthLayout  = "Jan 2006"
)

// DashboardUseCase genera el dashboard financiero filtrado por año y mes opcionales.
//
// Fuente de datos: FinanceAnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.FinanceAnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.FinanceAnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetDashboard construye el FinanceDashboardDTO. year y month en 0 significan "todos".
// Con mes la evolución es diaria ("dd/mm"); sin mes es mensual ("Jan 2025").
//
// Las cinco consultas corren en paralelo.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, year, month int) (*dto.FinanceDashboardDTO, error) {
	if month < 0 || month > 12 || year < 0 {
		return nil, domain.ErrInvalidInput
	}
	f := repository.PeriodFilter{Year: year, Month: month}
	granularity, layout := repository.GranularityMonth, evolutionMonthLayout
	if month > 0 {
		granularity, layout = repository.GranularityDay, evolutionDayLayout
	}

	type kpisResult struct {
		kpis repository.FinanceKPIs
		err  error
	}
	type namedResult struct {
		totals []repository.NamedTotal
		err    error
	}
	type periodResult struct {
		totals []repository.PeriodTotal
		err    error
	}
	type yearsResult struct {
		years []int
		err   error
	}

	kpisCh := make(chan kpisResult, 1)
	companyCh := make(chan namedResult, 1)
	classCh := make(chan namedResult, 1)
	evolCh := make(chan periodResult, 1)
	yearsCh := make(chan yearsResult, 1)

	go func() {
		k, err := uc.analyticsRepo.GetKPIs(ctx, f)
		kpisCh <- kpisResult{k, err}
	}()
	go func() {
		t, err := uc.analyticsRepo.GetTotalsByCompany(ctx, f, dashboardTopCompanies)
		companyCh <- namedResult{t, err}
	}()
	go func() {
		t, err := uc.analyticsRepo.GetTotalsByClassification(ctx, f)
		classCh <- namedResult{t, err}
	}()
	go func() {
		t, err := uc.analyticsRepo.GetEvolution(ctx, f, granularity)
		evolCh <- periodResult{t, err}
	}()
	go func() {
		y, err := uc.analyticsRepo.AvailableYears(ctx)
		yearsCh <- yearsResult{y, err}
	}()

	kpis := <-kpisCh
	companies := <-companyCh
	classes := <-classCh
	evol := <-evolCh
	years := <-yearsCh

	if kpis.err != nil {
		return nil, fmt.Errorf("dashboard: kpis: %w", kpis.err)
	}
	if companies.err != nil {
		return nil, fmt.Errorf("dashboard: por empresa: %w", companies.err)
	}
	if classes.err != nil {
		return nil, fmt.Errorf("dashboard: por clasificación: %w", classes.err)
	}
	if evol.err != nil {
		return nil, fmt.Errorf("dashboard: evolución: %w", evol.err)
	}
	if years.err != nil {
		return nil, fmt.Errorf("dashboard: años: %w", years.err)
	}

	average := kpis.kpis.Average.Truncate(0)
	out := &dto.FinanceDashboardDTO{
		Year:  year,
		Month: month,
		KPIs: dto.FinanceKPIsDTO{
			Total:        kpis.kpis.Total.IntPart(),
			Count:        kpis.kpis.Count,
			Average:      average.IntPart(),
			TotalLabel:   "$" + clp.Format(kpis.kpis.Total),
			AverageLabel: "$" + clp.Format(average),
		},
		ByCompany:        namedPoints(companies.totals, noCompanyLabel),
		ByClassification: namedPoints(classes.totals, noClassificationLabel),
		Evolution:        make([]dto.ChartPoint, 0, len(evol.totals)),
		AvailableYears:   years.years,
	}
	for _, p := range evol.totals {
		out.Evolution = append(out.Evolution, dto.ChartPoint{Label: p.Period.Format(layout), Total: p.Total.IntPart()})
	}
	if out.AvailableYears == nil {
		out.AvailableYears = []int{}
	}
	return out, nil
}

func namedPoints(totals []repository.NamedTotal, emptyLabel string) []dto.ChartPoint {
	out := make([]dto.ChartPoint, 0, len(totals))
	for _, t := range totals {
		label := t.Name
		if label == "" {
			label = emptyLabel
		}
		out = append(out, dto.ChartPoint{Label: label, Total: t.Total.IntPart()})
	}
	return out
}

package dto

// FinanceKPIsDTO indicadores del período.
type FinanceKPIsDTO struct {
	Total        int64  `json:"total"`
	Count        int    `json:"count"`
	Average      int64  `json:"average"`
	TotalLabel   string `json:"total_label"` // "$1.234.567"
	AverageLabel string `json:"average_label"`
}

// FinanceDashboardDTO dashboard financiero filtrado por año y mes opcionales.
type FinanceDashboardDTO struct {
	Year             int            `json:"year,omitempty"`
	Month            int            `json:"month,omitempty"`
	KPIs             FinanceKPIsDTO `json:"kpis"`
	ByCompany        []ChartPoint   `json:"by_company"`
	ByClassification []ChartPoint   `json:"by_classification"`
	Evolution        []ChartPoint   `json:"evolution"`
	AvailableYears   []int          `json:"available_years"`
}

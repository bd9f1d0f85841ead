package output

import (
	"github.com/policyworth/pwgo/internal/domain"
	"github.com/shopspring/decimal"
)

// ChartData is the series form the dashboard's composition chart consumes:
// one base/adjusted pair per service, plus the four-way breakdown of total
// economic impact (multiplied savings and the three tax streams).
type ChartData struct {
	Services    []ServiceSeries `json:"services"`
	Composition []ChartSlice    `json:"composition"`
}

// ServiceSeries is one service's savings pair, in ranked order.
type ServiceSeries struct {
	Service       domain.ServiceCode `json:"service"`
	Label         string             `json:"label"`
	SavedBase     decimal.Decimal    `json:"savedBase"`
	SavedAdjusted decimal.Decimal    `json:"savedAdjusted"`
}

// ChartSlice is one segment of the impact composition.
type ChartSlice struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// BuildChartData derives chart series from a report result.
func BuildChartData(result *domain.ReportResult) ChartData {
	data := ChartData{
		Services: make([]ServiceSeries, 0, len(result.RankedServices)),
		Composition: []ChartSlice{
			{Label: "Multiplied Savings", Value: result.MultipliedSavings},
			{Label: "Federal Taxes", Value: result.Taxes.Federal},
			{Label: "State Taxes", Value: result.Taxes.State},
			{Label: "Local Taxes", Value: result.Taxes.Local},
		},
	}
	for _, svc := range result.RankedServices {
		agg := result.PerService[svc]
		data.Services = append(data.Services, ServiceSeries{
			Service:       svc,
			Label:         svc.DisplayName(),
			SavedBase:     agg.SavedBase,
			SavedAdjusted: agg.SavedAdjusted,
		})
	}
	return data
}

package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/policyworth/pwgo/internal/domain"
)

// CSVFormatter flattens the report into the export layout the dashboard
// uses: a metric/value block for the top-level totals, a blank row, then
// one row per selected service in ranked order.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *domain.ReportResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	metrics := [][]string{
		{"Metric", "Value"},
		{"From", result.Range.From.Format("2006-01-02")},
		{"To", result.Range.To.Format("2006-01-02")},
		{"Period", result.Range.Label},
		{"Clients total", strconv.Itoa(result.ClientsTotal)},
		{"Yes", strconv.Itoa(result.YesTotal)},
		{"No", strconv.Itoa(result.NoTotal)},
		{"Taxpayer savings", result.TaxpayerSavingsBase.StringFixed(2)},
		{"Multiplied savings", result.MultipliedSavings.StringFixed(2)},
		{"Federal taxes", result.Taxes.Federal.StringFixed(2)},
		{"State taxes", result.Taxes.State.StringFixed(2)},
		{"Local taxes", result.Taxes.Local.StringFixed(2)},
		{"Economic impact", result.EconomicImpact.StringFixed(2)},
	}
	for _, row := range metrics {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	if err := w.Write([]string{""}); err != nil {
		return nil, err
	}
	if err := w.Write([]string{"Service", "Yes", "No", "SavedBase", "SavedAdjusted"}); err != nil {
		return nil, err
	}
	for _, svc := range result.RankedServices {
		agg := result.PerService[svc]
		row := []string{
			svc.DisplayName(),
			strconv.Itoa(agg.Yes),
			strconv.Itoa(agg.No),
			agg.SavedBase.StringFixed(2),
			agg.SavedAdjusted.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/policyworth/pwgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *domain.ReportResult {
	d := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
	return &domain.ReportResult{
		Range: domain.DateRange{
			From:     time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
			To:       time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
			Label:    "Year 2023",
			Fraction: decimal.NewFromInt(1),
		},
		ClientsTotal: 12,
		YesTotal:     10,
		NoTotal:      2,
		PerService: map[domain.ServiceCode]domain.ServiceAggregate{
			domain.ServiceCaseManagement: {
				Service: domain.ServiceCaseManagement, Yes: 10, No: 2,
				SavedBase: d(560000), SavedAdjusted: d(840000),
			},
			domain.ServiceHomeDeliveredMeals: {
				Service: domain.ServiceHomeDeliveredMeals,
			},
		},
		TaxpayerSavingsBase: d(560000),
		MultipliedSavings:   d(840000),
		Taxes: domain.TaxBreakdown{
			Federal: d(231000), State: d(36750), Local: d(9450),
		},
		EconomicImpact: d(1117200),
		StateShare:     d(504000),
		FederalShare:   d(336000),
		RankedServices: []domain.ServiceCode{
			domain.ServiceCaseManagement,
			domain.ServiceHomeDeliveredMeals,
		},
		Narratives: map[domain.ServiceCode]string{
			domain.ServiceCaseManagement:     "Case management services helped 10 seniors avoid premature institutional placement.",
			domain.ServiceHomeDeliveredMeals: "No clients received Home-Delivered Meals during this period.",
		},
		Warnings: []string{"stateSplitShare + federalSplitShare is 1.1, expected 1.0; shares reported as configured"},
		Notes: domain.ReportNotes{
			EntriesMatched:     3,
			DistinctLocations:  2,
			DefaultedLocations: 1,
			SkippedNoLocation:  1,
		},
	}
}

func TestGetFormatterByName(t *testing.T) {
	assert.Equal(t, "console", GetFormatterByName("console").Name())
	assert.Equal(t, "csv", GetFormatterByName("csv").Name())
	assert.Equal(t, "json", GetFormatterByName("json").Name())
	assert.Nil(t, GetFormatterByName("xml"))
	assert.Nil(t, GetFormatterByName(""))
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(sampleResult())
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "ECONOMIC IMPACT REPORT")
	assert.Contains(t, text, "Period: Year 2023 (2023-01-01 to 2023-12-31)")
	assert.Contains(t, text, "Clients:            12 (yes 10 / no 2)")
	assert.Contains(t, text, "Taxpayer Savings:   $560000.00")
	assert.Contains(t, text, "Economic Impact:    $1117200.00")
	assert.Contains(t, text, "$560000.00 Saved - Case Management")
	assert.Contains(t, text, "No clients received Home-Delivered Meals")
	assert.Contains(t, text, "3 entries across 2 location(s)")
	assert.Contains(t, text, "1 location(s) using default institutional cost")
	assert.Contains(t, text, "1 record(s) skipped for missing location")
	assert.Contains(t, text, "WARNING: stateSplitShare")

	// ranked order: case management line precedes home-delivered meals
	assert.Less(t, strings.Index(text, "Case Management "), strings.Index(text, "Home-Delivered Meals "))
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(string(out)))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Metric", "Value"}, rows[0])
	assert.Equal(t, []string{"From", "2023-01-01"}, rows[1])
	assert.Equal(t, []string{"Economic impact", "1117200.00"}, rows[12])

	header := -1
	for i, row := range rows {
		if len(row) > 0 && row[0] == "Service" {
			header = i
			break
		}
	}
	require.Greater(t, header, 0, "service section header present")
	assert.Equal(t, []string{"Service", "Yes", "No", "SavedBase", "SavedAdjusted"}, rows[header])
	assert.Equal(t, []string{"Case Management", "10", "2", "560000.00", "840000.00"}, rows[header+1])
	assert.Equal(t, []string{"Home-Delivered Meals", "0", "0", "0.00", "0.00"}, rows[header+2])
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	var decoded domain.ReportResult
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.True(t, decoded.EconomicImpact.Equal(decimal.NewFromInt(1117200)))
	assert.Equal(t, "Year 2023", decoded.Range.Label)
	assert.Len(t, decoded.RankedServices, 2)
	assert.Equal(t, 10, decoded.PerService[domain.ServiceCaseManagement].Yes)
}

func TestBuildChartData(t *testing.T) {
	data := BuildChartData(sampleResult())

	require.Len(t, data.Services, 2)
	assert.Equal(t, domain.ServiceCaseManagement, data.Services[0].Service)
	assert.Equal(t, "Case Management", data.Services[0].Label)
	assert.True(t, data.Services[0].SavedAdjusted.Equal(decimal.NewFromInt(840000)))

	require.Len(t, data.Composition, 4)
	assert.Equal(t, "Multiplied Savings", data.Composition[0].Label)
	sum := decimal.Zero
	for _, slice := range data.Composition {
		sum = sum.Add(slice.Value)
	}
	assert.True(t, sum.Equal(decimal.NewFromInt(1117200)), "composition slices sum to the impact")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "27.50%", FormatPercentage(decimal.NewFromFloat(0.275)))
	assert.Equal(t, "42", FormatCount(42))
}

package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/policyworth/pwgo/internal/domain"
)

// ConsoleFormatter renders the full report as plain text for terminal
// display.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.ReportResult) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintln(buf, "=================================================================")
	fmt.Fprintln(buf, "ECONOMIC IMPACT REPORT")
	fmt.Fprintln(buf, "=================================================================")
	fmt.Fprintf(buf, "Period: %s (%s to %s)\n", result.Range.Label,
		result.Range.From.Format("2006-01-02"), result.Range.To.Format("2006-01-02"))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "TOTALS")
	fmt.Fprintln(buf, "------")
	fmt.Fprintf(buf, "Clients:            %d (yes %d / no %d)\n", result.ClientsTotal, result.YesTotal, result.NoTotal)
	fmt.Fprintf(buf, "Taxpayer Savings:   %s\n", FormatCurrency(result.TaxpayerSavingsBase))
	fmt.Fprintf(buf, "Multiplied Savings: %s\n", FormatCurrency(result.MultipliedSavings))
	fmt.Fprintf(buf, "Federal Taxes:      %s\n", FormatCurrency(result.Taxes.Federal))
	fmt.Fprintf(buf, "State Taxes:        %s\n", FormatCurrency(result.Taxes.State))
	fmt.Fprintf(buf, "Local Taxes:        %s\n", FormatCurrency(result.Taxes.Local))
	fmt.Fprintf(buf, "Economic Impact:    %s\n", FormatCurrency(result.EconomicImpact))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "PER SERVICE (ranked by base savings)")
	fmt.Fprintln(buf, strings.Repeat("-", 65))
	for _, svc := range result.RankedServices {
		agg := result.PerService[svc]
		fmt.Fprintf(buf, "%-22s yes %-6d no %-6d saved %s (adjusted %s)\n",
			svc.DisplayName(), agg.Yes, agg.No,
			FormatCurrency(agg.SavedBase), FormatCurrency(agg.SavedAdjusted))
	}
	fmt.Fprintln(buf)

	top := result.TopServices(2)
	if len(top) > 0 {
		fmt.Fprintln(buf, "HEADLINE SERVICES")
		fmt.Fprintln(buf, "-----------------")
		for _, svc := range top {
			agg := result.PerService[svc]
			fmt.Fprintf(buf, "%s Saved - %s\n", FormatCurrency(agg.SavedBase), svc.DisplayName())
		}
		fmt.Fprintln(buf)
	}

	fmt.Fprintln(buf, "SERVICE IMPACT SUMMARIES")
	fmt.Fprintln(buf, "------------------------")
	for _, svc := range result.RankedServices {
		fmt.Fprintf(buf, "%s: %s\n", svc.DisplayName(), result.Narratives[svc])
	}
	fmt.Fprintln(buf)

	fmt.Fprintf(buf, "Report covers %d entries across %d location(s)",
		result.Notes.EntriesMatched, result.Notes.DistinctLocations)
	if result.Notes.DefaultedLocations > 0 {
		fmt.Fprintf(buf, "; %d location(s) using default institutional cost", result.Notes.DefaultedLocations)
	}
	if result.Notes.SkippedNoLocation > 0 {
		fmt.Fprintf(buf, "; %d record(s) skipped for missing location", result.Notes.SkippedNoLocation)
	}
	fmt.Fprintln(buf, ".")

	for _, w := range result.Warnings {
		fmt.Fprintf(buf, "WARNING: %s\n", w)
	}

	return buf.Bytes(), nil
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/policyworth/pwgo/internal/config"
	"github.com/policyworth/pwgo/internal/domain"
	"github.com/policyworth/pwgo/internal/output"
	"github.com/policyworth/pwgo/internal/report"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements report.Logger using the standard log package.
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "pwgo",
	Short: "Economic impact report engine CLI",
	Long:  "Turns service-delivery tallies into a quantified economic impact report",
}

var reportCmd = &cobra.Command{
	Use:   "report [input-file]",
	Short: "Run an economic impact report over a tally input file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		spec, err := periodSpecFromFlags(cmd)
		if err != nil {
			return err
		}

		selected, err := servicesFromFlag(cmd)
		if err != nil {
			return err
		}

		engine := report.NewEngine()
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			engine.SetLogger(simpleCLILogger{})
		}

		result, err := engine.Run(cmd.Context(), spec, selected, input.Params,
			input.Tallies, report.MapLookup(input.CostTable()))
		if err != nil {
			return err
		}

		formatName, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(formatName)
		if f == nil {
			return fmt.Errorf("unsupported format: %s", formatName)
		}
		data, err := f.Format(result)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a report input file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}
		// Exercise the parameter gate too, so one run reports the full
		// set of configuration problems.
		if _, _, err := config.ResolveParams(input.Params); err != nil {
			return err
		}
		fmt.Printf("Input file %s is valid (%d tallies, %d county costs)\n",
			args[0], len(input.Tallies), len(input.CountyCosts))
		return nil
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "pwgo %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// periodSpecFromFlags builds the period spec the flags describe. The
// default is the current quarter, matching the dashboard's initial view.
func periodSpecFromFlags(cmd *cobra.Command) (domain.PeriodSpec, error) {
	periodType, _ := cmd.Flags().GetString("period")
	year, _ := cmd.Flags().GetInt("year")
	quarter, _ := cmd.Flags().GetInt("quarter")
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if quarter == 0 {
		quarter = (int(now.Month())-1)/3 + 1
	}

	switch domain.PeriodType(periodType) {
	case domain.PeriodQuarter:
		return domain.QuarterPeriod(year, quarter), nil
	case domain.PeriodYear:
		return domain.YearPeriod(year), nil
	case domain.PeriodYearToDate:
		return domain.YearToDatePeriod(), nil
	case domain.PeriodCustom:
		fromStr, _ := cmd.Flags().GetString("from")
		toStr, _ := cmd.Flags().GetString("to")
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return domain.PeriodSpec{}, fmt.Errorf("invalid --from date %q: %w", fromStr, err)
		}
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return domain.PeriodSpec{}, fmt.Errorf("invalid --to date %q: %w", toStr, err)
		}
		return domain.CustomPeriod(from, to), nil
	default:
		return domain.PeriodSpec{}, fmt.Errorf("unknown period type %q (quarter, year, ytd, custom)", periodType)
	}
}

// servicesFromFlag parses the --services list; empty means all services.
func servicesFromFlag(cmd *cobra.Command) ([]domain.ServiceCode, error) {
	raw, _ := cmd.Flags().GetString("services")
	if strings.TrimSpace(raw) == "" {
		return domain.AllServices(), nil
	}
	var selected []domain.ServiceCode
	for _, part := range strings.Split(raw, ",") {
		code, err := domain.ParseServiceCode(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		selected = append(selected, code)
	}
	return selected, nil
}

func main() {
	reportCmd.Flags().String("period", "quarter", "Period type: quarter, year, ytd, custom")
	reportCmd.Flags().Int("year", 0, "Report year (defaults to current year)")
	reportCmd.Flags().Int("quarter", 0, "Quarter 1-4 (defaults to current quarter)")
	reportCmd.Flags().String("from", "", "Custom period start (YYYY-MM-DD)")
	reportCmd.Flags().String("to", "", "Custom period end (YYYY-MM-DD)")
	reportCmd.Flags().String("services", "", "Comma-separated service codes (defaults to all)")
	reportCmd.Flags().String("format", "console", "Output format: console, csv, json")
	reportCmd.Flags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

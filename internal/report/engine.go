package report

import (
	"context"
	"fmt"
	"time"

	"github.com/policyworth/pwgo/internal/config"
	"github.com/policyworth/pwgo/internal/domain"
)

// Engine runs economic impact reports. It holds no per-run state, so one
// Engine may serve concurrent invocations; every cache it uses lives and
// dies inside a single Run call.
type Engine struct {
	Logger Logger

	// Now anchors YearToDate period resolution and defaults to time.Now.
	// It is the engine's only time dependency; aggregation and the
	// calculators never read the clock.
	Now func() time.Time
}

// NewEngine creates a report engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}, Now: time.Now}
}

// SetLogger replaces the engine's logger; nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
}

// Run executes one report: resolve the period, gate the configuration,
// aggregate the tallies against concurrently fetched cost baselines, then
// derive taxes, ranking, and narratives into a single immutable result.
// Fatal problems (bad configuration, bad period, empty selection) return
// with no partial result; soft conditions surface as warnings and notes on
// the result.
func (e *Engine) Run(ctx context.Context, spec domain.PeriodSpec, selected []domain.ServiceCode, rawParams domain.RawParams, records []domain.TallyRecord, lookup CostLookup) (*domain.ReportResult, error) {
	params, warnings, err := config.ResolveParams(rawParams)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		e.Logger.Warnf("%s", w)
	}

	selected = dedupeServices(selected)
	if len(selected) == 0 {
		return nil, newValidationError("at least one service must be selected")
	}

	rng, err := ResolvePeriod(spec, e.now())
	if err != nil {
		return nil, err
	}
	e.Logger.Debugf("resolved period %s: %s to %s (fraction %s)",
		rng.Label, rng.From.Format("2006-01-02"), rng.To.Format("2006-01-02"), rng.Fraction.String())

	matched, locations, skipped := filterRecords(records, selected, rng)

	baselines, err := fetchBaselines(ctx, lookup, locations, params.DefaultInstitutionalYearlyCost)
	if err != nil {
		return nil, fmt.Errorf("cost baseline fetch aborted: %w", err)
	}
	if baselines.defaulted > 0 {
		e.Logger.Infof("%d of %d locations using default institutional cost", baselines.defaulted, len(locations))
	}

	agg := aggregateRecords(matched, selected, baselines, rng.Fraction)
	savedBase, multiplied := agg.applyMultiplier(params.TaxpayerMultiplier)
	alloc := allocateTaxes(multiplied, params)

	perService := agg.snapshot()
	ranked := rankServices(selected, perService)

	totalTax := alloc.Taxes.Total()
	narratives := make(map[domain.ServiceCode]string, len(selected))
	for _, svc := range selected {
		bucket := perService[svc]
		narratives[svc] = Narrative(svc, bucket.Yes, bucket.SavedBase, allocatedImpact(bucket, multiplied, totalTax))
	}

	return &domain.ReportResult{
		Range:               rng,
		ClientsTotal:        agg.clientsTotal,
		YesTotal:            agg.yesTotal,
		NoTotal:             agg.noTotal,
		PerService:          perService,
		TaxpayerSavingsBase: savedBase,
		MultipliedSavings:   multiplied,
		Taxes:               alloc.Taxes,
		EconomicImpact:      alloc.EconomicImpact,
		StateShare:          alloc.StateShare,
		FederalShare:        alloc.FederalShare,
		RankedServices:      ranked,
		Narratives:          narratives,
		Warnings:            warnings,
		Notes: domain.ReportNotes{
			EntriesMatched:     len(matched),
			DistinctLocations:  len(locations),
			DefaultedLocations: baselines.defaulted,
			SkippedNoLocation:  skipped,
		},
	}, nil
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// dedupeServices drops repeated selections while preserving the caller's
// order, which the ranker's tie-break depends on.
func dedupeServices(selected []domain.ServiceCode) []domain.ServiceCode {
	seen := make(map[domain.ServiceCode]bool, len(selected))
	out := selected[:0:0]
	for _, svc := range selected {
		if seen[svc] {
			continue
		}
		seen[svc] = true
		out = append(out, svc)
	}
	return out
}

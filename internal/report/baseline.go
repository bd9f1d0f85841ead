package report

import (
	"context"
	"sync"

	"github.com/policyworth/pwgo/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// CostLookup fetches the institutional-cost record for one location. It is
// supplied by the reference-data collaborator and may be backed by a remote
// store; the engine issues at most one call per distinct location per run.
type CostLookup func(ctx context.Context, loc domain.LocationKey) (domain.LocationCostRecord, error)

// MapLookup adapts a pre-fetched cost table to a CostLookup.
func MapLookup(table map[domain.LocationKey]domain.LocationCostRecord) CostLookup {
	return func(_ context.Context, loc domain.LocationKey) (domain.LocationCostRecord, error) {
		return table[loc], nil
	}
}

// baselineTable memoizes the resolved yearly institutional cost per
// location for one invocation. It is built once, read during aggregation,
// and discarded with the run.
type baselineTable struct {
	defaultCost decimal.Decimal
	costs       map[domain.LocationKey]decimal.Decimal
	defaulted   int
}

// fetchBaselines resolves every distinct location concurrently and waits
// for all lookups before returning. A failed or empty lookup resolves to
// the configured default cost and is counted, never propagated; only
// context cancellation aborts the fan-in.
func fetchBaselines(ctx context.Context, lookup CostLookup, locations []domain.LocationKey, defaultCost decimal.Decimal) (*baselineTable, error) {
	table := &baselineTable{
		defaultCost: defaultCost,
		costs:       make(map[domain.LocationKey]decimal.Decimal, len(locations)),
	}
	if lookup == nil {
		table.defaulted = len(locations)
		return table, nil
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for _, loc := range locations {
		loc := loc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := lookup(ctx, loc)
			cost, ok := usableCost(rec, err)

			mu.Lock()
			defer mu.Unlock()
			if ok {
				table.costs[loc] = cost
			} else {
				table.defaulted++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return table, nil
}

// usableCost reports whether the lookup produced a finite non-negative
// yearly cost. Anything else means "use the default".
func usableCost(rec domain.LocationCostRecord, err error) (decimal.Decimal, bool) {
	if err != nil || rec.YearlyInstitutionalCost == nil {
		return decimal.Decimal{}, false
	}
	if rec.YearlyInstitutionalCost.IsNegative() {
		return decimal.Decimal{}, false
	}
	return *rec.YearlyInstitutionalCost, true
}

// yearly returns the resolved yearly institutional cost for a location,
// falling back to the configured default.
func (bt *baselineTable) yearly(loc domain.LocationKey) decimal.Decimal {
	if cost, ok := bt.costs[loc]; ok {
		return cost
	}
	return bt.defaultCost
}

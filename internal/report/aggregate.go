package report

import (
	"github.com/policyworth/pwgo/internal/domain"
	"github.com/shopspring/decimal"
)

// aggregation is the fold state for one run: per-service buckets plus the
// run-level counters. Buckets exist for every selected service so that a
// service with no matching records still reports all-zero aggregates.
type aggregation struct {
	perService   map[domain.ServiceCode]*domain.ServiceAggregate
	yesTotal     int
	noTotal      int
	clientsTotal int
}

// filterRecords retains records dated inside the range whose service is in
// the selection, collecting the distinct locations they reference in
// first-seen order. Records without a usable location cannot be priced and
// are skipped and counted.
func filterRecords(records []domain.TallyRecord, selected []domain.ServiceCode, rng domain.DateRange) (matched []domain.TallyRecord, locations []domain.LocationKey, skipped int) {
	inSelection := make(map[domain.ServiceCode]bool, len(selected))
	for _, svc := range selected {
		inSelection[svc] = true
	}

	seen := make(map[domain.LocationKey]bool)
	for _, rec := range records {
		if !inSelection[rec.Service] || !rng.Contains(rec.Date) {
			continue
		}
		if !rec.HasLocation() {
			skipped++
			continue
		}
		matched = append(matched, rec)
		loc := rec.Location()
		if !seen[loc] {
			seen[loc] = true
			locations = append(locations, loc)
		}
	}
	return matched, locations, skipped
}

// aggregateRecords folds the matched records into service buckets. Per
// record the avoided yearly cost is the institutional baseline minus the
// program cost, clamped at zero, and the base savings contribution is
// yesCount x avoided x periodFraction. Pure sums, so record order and
// batching cannot change the totals.
func aggregateRecords(matched []domain.TallyRecord, selected []domain.ServiceCode, baselines *baselineTable, fraction decimal.Decimal) *aggregation {
	agg := &aggregation{
		perService: make(map[domain.ServiceCode]*domain.ServiceAggregate, len(selected)),
	}
	for _, svc := range selected {
		agg.perService[svc] = &domain.ServiceAggregate{Service: svc}
	}

	for _, rec := range matched {
		bucket := agg.perService[rec.Service]

		agg.yesTotal += rec.YesCount
		agg.noTotal += rec.NoCount
		agg.clientsTotal += rec.YesCount + rec.NoCount
		bucket.Yes += rec.YesCount
		bucket.No += rec.NoCount

		avoidedPerYear := baselines.yearly(rec.Location()).Sub(rec.YearlyProgramCost)
		if avoidedPerYear.IsNegative() {
			continue
		}
		saved := decimal.NewFromInt(int64(rec.YesCount)).Mul(avoidedPerYear).Mul(fraction)
		bucket.SavedBase = bucket.SavedBase.Add(saved)
	}

	return agg
}

// applyMultiplier sets each bucket's multiplier-adjusted savings and
// returns the run totals. Both figures are clamped at zero.
func (agg *aggregation) applyMultiplier(multiplier decimal.Decimal) (savedBase, multiplied decimal.Decimal) {
	for _, bucket := range agg.perService {
		if bucket.SavedBase.IsNegative() {
			bucket.SavedBase = decimal.Zero
		}
		bucket.SavedAdjusted = bucket.SavedBase.Mul(multiplier)
		if bucket.SavedAdjusted.IsNegative() {
			bucket.SavedAdjusted = decimal.Zero
		}
		savedBase = savedBase.Add(bucket.SavedBase)
		multiplied = multiplied.Add(bucket.SavedAdjusted)
	}
	return savedBase, multiplied
}

// snapshot copies the buckets into the immutable per-service map handed to
// the result.
func (agg *aggregation) snapshot() map[domain.ServiceCode]domain.ServiceAggregate {
	out := make(map[domain.ServiceCode]domain.ServiceAggregate, len(agg.perService))
	for svc, bucket := range agg.perService {
		out[svc] = *bucket
	}
	return out
}

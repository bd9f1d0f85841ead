package report

import (
	"fmt"
	"time"

	"github.com/policyworth/pwgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Period fractions prorate yearly baselines against a 365-day year, leap
// years included, so a full leap year weighs 366/365.
const daysPerYear = 365

var decimalDaysPerYear = decimal.NewFromInt(daysPerYear)

// ResolvePeriod turns a period spec into a concrete inclusive date range
// with its fractional-year weight. now anchors the YearToDate variant and
// is ignored by the others.
func ResolvePeriod(spec domain.PeriodSpec, now time.Time) (domain.DateRange, error) {
	var from, to time.Time
	var label string

	switch spec.Type {
	case domain.PeriodQuarter:
		if spec.Quarter < 1 || spec.Quarter > 4 {
			return domain.DateRange{}, newValidationError("quarter must be 1..4, got %d", spec.Quarter)
		}
		startMonth := time.Month(3*(spec.Quarter-1) + 1)
		from = time.Date(spec.Year, startMonth, 1, 0, 0, 0, 0, time.UTC)
		// Day zero of the following month is the last day of the quarter's
		// third month; time.Date normalizes it, which handles month length
		// and leap years.
		to = time.Date(spec.Year, startMonth+3, 0, 0, 0, 0, 0, time.UTC)
		label = fmt.Sprintf("Q%d %d", spec.Quarter, spec.Year)

	case domain.PeriodYear:
		from = time.Date(spec.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to = time.Date(spec.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
		label = fmt.Sprintf("Year %d", spec.Year)

	case domain.PeriodYearToDate:
		from = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		to = midnightUTC(now)
		label = fmt.Sprintf("YTD %d", now.Year())

	case domain.PeriodCustom:
		if spec.From.IsZero() || spec.To.IsZero() {
			return domain.DateRange{}, newValidationError("custom period requires both from and to dates")
		}
		from = midnightUTC(spec.From)
		to = midnightUTC(spec.To)
		if from.After(to) {
			return domain.DateRange{}, newValidationError("custom period from %s is after to %s",
				from.Format("2006-01-02"), to.Format("2006-01-02"))
		}
		label = "Custom"

	default:
		return domain.DateRange{}, newValidationError("unknown period type %q", spec.Type)
	}

	days := daysInclusive(from, to)
	return domain.DateRange{
		From:     from,
		To:       to,
		Label:    label,
		Fraction: decimal.NewFromInt(int64(days)).Div(decimalDaysPerYear),
	}, nil
}

// daysInclusive counts calendar days with both endpoints included, so a
// one-day range counts as 1.
func daysInclusive(from, to time.Time) int {
	from = midnightUTC(from)
	to = midnightUTC(to)
	return int(to.Sub(from)/(24*time.Hour)) + 1
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

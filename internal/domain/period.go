package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodType selects which variant of a PeriodSpec is active.
type PeriodType string

const (
	PeriodQuarter    PeriodType = "quarter"
	PeriodYear       PeriodType = "year"
	PeriodYearToDate PeriodType = "ytd"
	PeriodCustom     PeriodType = "custom"
)

// PeriodSpec is the caller's reporting window request. Exactly one variant
// is active, chosen by Type: Quarter uses Year+Quarter, Year uses Year,
// YearToDate is anchored to the invocation date, Custom uses From/To
// verbatim.
type PeriodSpec struct {
	Type    PeriodType `yaml:"type" json:"type"`
	Year    int        `yaml:"year,omitempty" json:"year,omitempty"`
	Quarter int        `yaml:"quarter,omitempty" json:"quarter,omitempty"`
	From    time.Time  `yaml:"from,omitempty" json:"from,omitempty"`
	To      time.Time  `yaml:"to,omitempty" json:"to,omitempty"`
}

// QuarterPeriod selects calendar quarter q (1..4) of a year.
func QuarterPeriod(year, q int) PeriodSpec {
	return PeriodSpec{Type: PeriodQuarter, Year: year, Quarter: q}
}

// YearPeriod selects a full calendar year.
func YearPeriod(year int) PeriodSpec {
	return PeriodSpec{Type: PeriodYear, Year: year}
}

// YearToDatePeriod selects Jan 1 of the invocation year through today.
func YearToDatePeriod() PeriodSpec {
	return PeriodSpec{Type: PeriodYearToDate}
}

// CustomPeriod selects an explicit inclusive date range.
func CustomPeriod(from, to time.Time) PeriodSpec {
	return PeriodSpec{Type: PeriodCustom, From: from, To: to}
}

// DateRange is a resolved, inclusive reporting window. Fraction is the
// window's length as a share of a 365-day year and prorates yearly cost
// baselines to the period.
type DateRange struct {
	From     time.Time       `json:"from"`
	To       time.Time       `json:"to"`
	Label    string          `json:"label"`
	Fraction decimal.Decimal `json:"fraction"`
}

// Contains reports whether t falls inside the range, endpoints included.
// Comparison is by calendar date, ignoring the time of day.
func (r DateRange) Contains(t time.Time) bool {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(r.From) && !d.After(r.To)
}

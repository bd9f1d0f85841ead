package domain

import "github.com/shopspring/decimal"

// ServiceAggregate holds the per-service totals for one report run.
// SavedBase is the unmultiplied avoided cost; SavedAdjusted is SavedBase
// scaled by the taxpayer multiplier. Both are clamped to zero or above.
type ServiceAggregate struct {
	Service       ServiceCode     `json:"service"`
	Yes           int             `json:"yes"`
	No            int             `json:"no"`
	SavedBase     decimal.Decimal `json:"savedBase"`
	SavedAdjusted decimal.Decimal `json:"savedAdjusted"`
}

// TaxBreakdown is the three-way tax revenue derived from multiplied savings.
type TaxBreakdown struct {
	Federal decimal.Decimal `json:"federal"`
	State   decimal.Decimal `json:"state"`
	Local   decimal.Decimal `json:"local"`
}

// Total returns federal + state + local tax revenue.
func (t TaxBreakdown) Total() decimal.Decimal {
	return t.Federal.Add(t.State).Add(t.Local)
}

// ReportNotes carries informational counts about the run. None of these
// indicate failure; they make the totals explainable.
type ReportNotes struct {
	EntriesMatched     int `json:"entriesMatched"`
	DistinctLocations  int `json:"distinctLocations"`
	DefaultedLocations int `json:"defaultedLocations"`
	SkippedNoLocation  int `json:"skippedNoLocation"`
}

// ReportResult is the complete outcome of one report invocation. It is
// assembled once and never mutated afterward; a re-run returns a new value.
type ReportResult struct {
	Range        DateRange `json:"range"`
	ClientsTotal int       `json:"clientsTotal"`
	YesTotal     int       `json:"yesTotal"`
	NoTotal      int       `json:"noTotal"`

	PerService map[ServiceCode]ServiceAggregate `json:"perService"`

	TaxpayerSavingsBase decimal.Decimal `json:"taxpayerSavingsBase"`
	MultipliedSavings   decimal.Decimal `json:"multipliedSavings"`
	Taxes               TaxBreakdown    `json:"taxes"`
	EconomicImpact      decimal.Decimal `json:"economicImpact"`

	// Informational splits of multiplied savings; not part of EconomicImpact.
	StateShare   decimal.Decimal `json:"stateShare"`
	FederalShare decimal.Decimal `json:"federalShare"`

	RankedServices []ServiceCode          `json:"rankedServices"`
	Narratives     map[ServiceCode]string `json:"narratives"`

	Warnings []string    `json:"warnings,omitempty"`
	Notes    ReportNotes `json:"notes"`
}

// TaxRevenue returns the total tax revenue generated across all levels.
func (r *ReportResult) TaxRevenue() decimal.Decimal {
	return r.Taxes.Total()
}

// ROI is total economic impact per dollar of base savings, zero when no
// base savings were generated.
func (r *ReportResult) ROI() decimal.Decimal {
	if r.TaxpayerSavingsBase.IsZero() {
		return decimal.Zero
	}
	return r.EconomicImpact.Div(r.TaxpayerSavingsBase)
}

// TopServices returns the first n ranked services (fewer when fewer were
// selected), for headline callouts.
func (r *ReportResult) TopServices(n int) []ServiceCode {
	if n > len(r.RankedServices) {
		n = len(r.RankedServices)
	}
	return r.RankedServices[:n]
}

package report

import (
	"github.com/policyworth/pwgo/internal/domain"
	"github.com/shopspring/decimal"
)

// taxAllocation carries the tax revenue derived from multiplied savings
// plus the informational state/federal splits.
type taxAllocation struct {
	Taxes          domain.TaxBreakdown
	EconomicImpact decimal.Decimal
	StateShare     decimal.Decimal
	FederalShare   decimal.Decimal
}

// allocateTaxes computes tax revenue from the multiplier-adjusted savings.
// The ordering matters: savings are multiplied first, then taxed, and the
// economic impact is the multiplied savings plus all three tax streams.
// The split shares are informational views of the multiplied savings and
// are not part of the impact figure.
func allocateTaxes(multiplied decimal.Decimal, params domain.Params) taxAllocation {
	taxes := domain.TaxBreakdown{
		Federal: multiplied.Mul(params.FederalTaxRate),
		State:   multiplied.Mul(params.StateTaxRate),
		Local:   multiplied.Mul(params.LocalTaxRate),
	}
	return taxAllocation{
		Taxes:          taxes,
		EconomicImpact: multiplied.Add(taxes.Total()),
		StateShare:     multiplied.Mul(params.StateSplitShare),
		FederalShare:   multiplied.Mul(params.FederalSplitShare),
	}
}

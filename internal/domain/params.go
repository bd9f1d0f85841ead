package domain

import "github.com/shopspring/decimal"

// RawParams is the parameter set as delivered by the administrator-managed
// configuration collaborator: parameter name to arbitrary value. Values may
// be numbers or numeric strings; anything else fails the configuration gate.
type RawParams map[string]any

// Params is the validated, typed parameter set the calculators run on.
// Every field is required; there are no fallback defaults.
type Params struct {
	DefaultInstitutionalYearlyCost decimal.Decimal
	TaxpayerMultiplier             decimal.Decimal
	FederalTaxRate                 decimal.Decimal
	StateTaxRate                   decimal.Decimal
	LocalTaxRate                   decimal.Decimal
	StateSplitShare                decimal.Decimal
	FederalSplitShare              decimal.Decimal
}

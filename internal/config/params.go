package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/policyworth/pwgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Parameter keys the calculators require. All must be present and numeric;
// there are no fallback defaults.
const (
	KeyDefaultInstitutionalYearlyCost = "defaultInstitutionalYearlyCost"
	KeyTaxpayerMultiplier             = "taxpayerMultiplier"
	KeyFederalTaxRate                 = "federalTaxRate"
	KeyStateTaxRate                   = "stateTaxRate"
	KeyLocalTaxRate                   = "localTaxRate"
	KeyStateSplitShare                = "stateSplitShare"
	KeyFederalSplitShare              = "federalSplitShare"
)

// RequiredParamKeys lists every key the gate checks, in report order.
var RequiredParamKeys = []string{
	KeyDefaultInstitutionalYearlyCost,
	KeyTaxpayerMultiplier,
	KeyFederalTaxRate,
	KeyStateTaxRate,
	KeyLocalTaxRate,
	KeyStateSplitShare,
	KeyFederalSplitShare,
}

// splitShareEpsilon bounds how far stateSplitShare + federalSplitShare may
// drift from 1.0 before a warning is attached to the run.
var splitShareEpsilon = decimal.NewFromFloat(1e-3)

// ConfigurationError reports every missing or non-numeric required
// parameter in one message, so an administrator can fix the whole set from
// a single failure.
type ConfigurationError struct {
	Missing []string
	Invalid []string
}

func (e *ConfigurationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing required parameters: %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, fmt.Sprintf("non-numeric parameters: %s", strings.Join(e.Invalid, ", ")))
	}
	if len(parts) == 0 {
		return "invalid configuration"
	}
	return "invalid configuration: " + strings.Join(parts, "; ")
}

// ResolveParams validates the raw parameter map and returns the typed
// parameter set. It fails closed: any missing or non-numeric required key
// aborts with a ConfigurationError naming all of them. A split-share sum
// away from 1.0 is returned as a warning, never an error.
func ResolveParams(raw domain.RawParams) (domain.Params, []string, error) {
	cfgErr := &ConfigurationError{}
	values := make(map[string]decimal.Decimal, len(RequiredParamKeys))

	for _, key := range RequiredParamKeys {
		v, ok := raw[key]
		if !ok || v == nil {
			cfgErr.Missing = append(cfgErr.Missing, key)
			continue
		}
		d, ok := toDecimal(v)
		if !ok {
			cfgErr.Invalid = append(cfgErr.Invalid, key)
			continue
		}
		values[key] = d
	}

	if len(cfgErr.Missing) > 0 || len(cfgErr.Invalid) > 0 {
		sort.Strings(cfgErr.Missing)
		sort.Strings(cfgErr.Invalid)
		return domain.Params{}, nil, cfgErr
	}

	params := domain.Params{
		DefaultInstitutionalYearlyCost: values[KeyDefaultInstitutionalYearlyCost],
		TaxpayerMultiplier:             values[KeyTaxpayerMultiplier],
		FederalTaxRate:                 values[KeyFederalTaxRate],
		StateTaxRate:                   values[KeyStateTaxRate],
		LocalTaxRate:                   values[KeyLocalTaxRate],
		StateSplitShare:                values[KeyStateSplitShare],
		FederalSplitShare:              values[KeyFederalSplitShare],
	}

	var warnings []string
	shareSum := params.StateSplitShare.Add(params.FederalSplitShare)
	if shareSum.Sub(decimal.NewFromInt(1)).Abs().GreaterThan(splitShareEpsilon) {
		warnings = append(warnings, fmt.Sprintf(
			"stateSplitShare + federalSplitShare is %s, expected 1.0; shares reported as configured",
			shareSum.String()))
	}

	return params, warnings, nil
}

// toDecimal normalizes the value shapes a parameter store can deliver:
// native numbers, decimals, and numeric strings.
func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int32:
		return decimal.NewFromInt32(n), true
	case int64:
		return decimal.NewFromInt(n), true
	case float32:
		return decimal.NewFromFloat32(n), true
	case float64:
		return decimal.NewFromFloat(n), true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return decimal.Decimal{}, false
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	default:
		return decimal.Decimal{}, false
	}
}

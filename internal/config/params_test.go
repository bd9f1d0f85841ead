package config

import (
	"testing"

	"github.com/policyworth/pwgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRawParams() domain.RawParams {
	return domain.RawParams{
		KeyDefaultInstitutionalYearlyCost: 68000,
		KeyTaxpayerMultiplier:             1.5,
		KeyFederalTaxRate:                 0.275,
		KeyStateTaxRate:                   0.04375,
		KeyLocalTaxRate:                   0.01125,
		KeyStateSplitShare:                0.6,
		KeyFederalSplitShare:              0.4,
	}
}

func TestResolveParams_Valid(t *testing.T) {
	params, warnings, err := ResolveParams(fullRawParams())
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.True(t, params.DefaultInstitutionalYearlyCost.Equal(decimal.NewFromInt(68000)))
	assert.True(t, params.TaxpayerMultiplier.Equal(decimal.NewFromFloat(1.5)))
	assert.True(t, params.FederalTaxRate.Equal(decimal.NewFromFloat(0.275)))
	assert.True(t, params.StateSplitShare.Equal(decimal.NewFromFloat(0.6)))
}

func TestResolveParams_AllMissingKeysReported(t *testing.T) {
	raw := fullRawParams()
	delete(raw, KeyTaxpayerMultiplier)
	delete(raw, KeyLocalTaxRate)
	raw[KeyFederalTaxRate] = nil

	_, _, err := ResolveParams(raw)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{KeyFederalTaxRate, KeyLocalTaxRate, KeyTaxpayerMultiplier}, cfgErr.Missing)
	assert.Contains(t, err.Error(), KeyTaxpayerMultiplier)
	assert.Contains(t, err.Error(), KeyLocalTaxRate)
	assert.Contains(t, err.Error(), KeyFederalTaxRate)
}

func TestResolveParams_NonNumericReported(t *testing.T) {
	raw := fullRawParams()
	raw[KeyStateTaxRate] = "not a number"
	raw[KeyFederalSplitShare] = []string{"0.4"}

	_, _, err := ResolveParams(raw)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Empty(t, cfgErr.Missing)
	assert.Equal(t, []string{KeyFederalSplitShare, KeyStateTaxRate}, cfgErr.Invalid)
}

func TestResolveParams_NumericStrings(t *testing.T) {
	raw := domain.RawParams{
		KeyDefaultInstitutionalYearlyCost: "68000",
		KeyTaxpayerMultiplier:             " 1.5 ",
		KeyFederalTaxRate:                 "0.275",
		KeyStateTaxRate:                   "0.04375",
		KeyLocalTaxRate:                   "0.01125",
		KeyStateSplitShare:                "0.6",
		KeyFederalSplitShare:              "0.4",
	}

	params, warnings, err := ResolveParams(raw)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.True(t, params.TaxpayerMultiplier.Equal(decimal.NewFromFloat(1.5)))
	assert.True(t, params.DefaultInstitutionalYearlyCost.Equal(decimal.NewFromInt(68000)))
}

func TestResolveParams_EmptyStringInvalid(t *testing.T) {
	raw := fullRawParams()
	raw[KeyStateSplitShare] = "  "

	_, _, err := ResolveParams(raw)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{KeyStateSplitShare}, cfgErr.Invalid)
}

func TestResolveParams_SplitShareWarning(t *testing.T) {
	raw := fullRawParams()
	raw[KeyStateSplitShare] = 0.7

	params, warnings, err := ResolveParams(raw)
	require.NoError(t, err, "mismatched shares are a warning, not an error")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "1.1")
	assert.True(t, params.StateSplitShare.Equal(decimal.NewFromFloat(0.7)), "shares kept as configured")
}

func TestResolveParams_SplitShareWithinEpsilon(t *testing.T) {
	raw := fullRawParams()
	raw[KeyStateSplitShare] = 0.6004
	raw[KeyFederalSplitShare] = 0.4

	_, warnings, err := ResolveParams(raw)
	require.NoError(t, err)
	assert.Empty(t, warnings, "drift inside the tolerance passes silently")
}

func TestResolveParams_DecimalValuesPassThrough(t *testing.T) {
	raw := fullRawParams()
	raw[KeyTaxpayerMultiplier] = decimal.NewFromFloat(2.25)

	params, _, err := ResolveParams(raw)
	require.NoError(t, err)
	assert.True(t, params.TaxpayerMultiplier.Equal(decimal.NewFromFloat(2.25)))
}

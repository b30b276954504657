package taxdata

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

func TestStateMarginalRate_NoTaxStates(t *testing.T) {
	for _, code := range []string{"TX", "FL", "WA", "NV", "WY"} {
		rate := StateMarginalRate(decimal.NewFromInt(480000), domain.FilingMarriedJointly, code, 2025)
		assert.True(t, rate.IsZero(), "%s has no income tax", code)
	}
}

func TestStateMarginalRate_FlatState(t *testing.T) {
	rate := StateMarginalRate(decimal.NewFromInt(480000), domain.FilingMarriedJointly, "IL", 2025)

	assert.True(t, rate.Equal(decimal.NewFromFloat(4.95)))
}

func TestStateMarginalRate_CaliforniaBrackets(t *testing.T) {
	married := StateMarginalRate(decimal.NewFromInt(480000), domain.FilingMarriedJointly, "CA", 2025)
	single := StateMarginalRate(decimal.NewFromInt(480000), domain.FilingSingle, "CA", 2025)
	millionaire := StateMarginalRate(decimal.NewFromInt(3000000), domain.FilingMarriedJointly, "CA", 2025)

	assert.True(t, married.Equal(decimal.NewFromFloat(9.3)), "480k joint sits in the wide 9.3%% bracket")
	assert.True(t, single.Equal(decimal.NewFromFloat(11.3)), "480k single is two brackets higher")
	assert.True(t, millionaire.Equal(decimal.NewFromFloat(13.3)))
}

func TestStateMarginalRate_EffectiveStateReportsTopRate(t *testing.T) {
	rate := StateMarginalRate(decimal.NewFromInt(100000), domain.FilingSingle, "VA", 2025)

	assert.True(t, rate.Equal(decimal.NewFromFloat(5.75)))
}

func TestStateMarginalRate_UnknownStateIsZero(t *testing.T) {
	rate := StateMarginalRate(decimal.NewFromInt(100000), domain.FilingSingle, "ZZ", 2025)

	assert.True(t, rate.IsZero())
}

func TestStateStandardDeduction(t *testing.T) {
	ca := StateStandardDeduction("CA", domain.FilingMarriedJointly, 2025)
	assert.True(t, ca.Equal(decimal.NewFromInt(11080)))

	il := StateStandardDeduction("IL", domain.FilingMarriedJointly, 2025)
	assert.True(t, il.IsZero(), "Illinois has no standard deduction")

	tx := StateStandardDeduction("TX", domain.FilingMarriedJointly, 2025)
	assert.True(t, tx.IsZero())
}

func TestStateStandardDeduction_NearestYearFallback(t *testing.T) {
	// CA tables stop at 2026; far-future requests use the closest year.
	future := StateStandardDeduction("CA", domain.FilingMarriedJointly, 2040)

	assert.True(t, future.Equal(decimal.NewFromInt(11412)))
}

func TestEstimateStateTax_NoTaxState(t *testing.T) {
	tax := EstimateStateTax(decimal.NewFromInt(480000), domain.FilingMarriedJointly, "TX", 2025)

	assert.True(t, tax.IsZero())
}

func TestEstimateStateTax_FlatState(t *testing.T) {
	// Illinois: no standard deduction, 200000 * 4.95%.
	tax := EstimateStateTax(decimal.NewFromInt(200000), domain.FilingMarriedJointly, "IL", 2025)

	assert.True(t, tax.Equal(decimal.NewFromInt(9900)))
}

func TestEstimateStateTax_MassachusettsSurtax(t *testing.T) {
	// 1.2M * 5% plus 4% on the 200k above the millionaire threshold.
	tax := EstimateStateTax(decimal.NewFromInt(1200000), domain.FilingSingle, "MA", 2025)

	assert.True(t, tax.Equal(decimal.NewFromInt(68000)))
}

func TestEstimateStateTax_CaliforniaProgressive(t *testing.T) {
	tax := EstimateStateTax(decimal.NewFromInt(480000), domain.FilingMarriedJointly, "CA", 2025)

	// 480000 less the 11080 deduction, accumulated through the 9.3% bracket.
	assert.InDelta(t, 36694.0, tax.InexactFloat64(), 1.0)
}

func TestEstimateStateTax_EffectiveCurveInterpolates(t *testing.T) {
	// Missouri married at 150000: taxable 120800 sits between the 100k and
	// 200k anchors, so the rate interpolates between 4.0 and 4.6.
	tax := EstimateStateTax(decimal.NewFromInt(150000), domain.FilingMarriedJointly, "MO", 2025)

	assert.InDelta(t, 4983.0, tax.InexactFloat64(), 1.0)
}

func TestEstimateStateTax_EffectiveCurveBelowFirstAnchor(t *testing.T) {
	// Arkansas single at 27340: taxable 25000 is half the first anchor, so
	// the rate scales to half of 3.2%.
	tax := EstimateStateTax(decimal.NewFromInt(27340), domain.FilingSingle, "AR", 2025)

	assert.True(t, tax.Equal(decimal.NewFromInt(400)))
}

func TestEstimateStateTax_ZeroIncome(t *testing.T) {
	tax := EstimateStateTax(decimal.Zero, domain.FilingSingle, "CA", 2025)

	assert.True(t, tax.IsZero())
}

func TestHomesteadSavings(t *testing.T) {
	price := decimal.NewFromInt(800000)
	rate := decimal.NewFromFloat(1.1)

	ca := HomesteadSavings("CA", price, rate)
	assert.InDelta(t, 77.0, ca.InexactFloat64(), 0.01, "7000 assessed-value exemption at 1.1%%")

	ar := HomesteadSavings("AR", price, rate)
	assert.True(t, ar.Equal(decimal.NewFromInt(350)), "Arkansas pays a flat credit")

	nv := HomesteadSavings("NV", price, rate)
	assert.True(t, nv.IsZero(), "Equity protection does not reduce the tax bill")

	co := HomesteadSavings("CO", price, rate)
	assert.True(t, co.IsZero(), "No exemption, no savings")
}

func TestHomesteadSavings_ExemptionCappedAtPrice(t *testing.T) {
	// Texas exempts 100k of value; a 60k property only shelters 60k.
	savings := HomesteadSavings("TX", decimal.NewFromInt(60000), decimal.NewFromFloat(1.6))

	assert.InDelta(t, 960.0, savings.InexactFloat64(), 0.01)
}

func TestStateConfig_CoversEveryStateCode(t *testing.T) {
	codes := StateCodes()
	require.NotEmpty(t, codes)

	for _, code := range codes {
		_, ok := StateConfig(code)
		assert.True(t, ok, "Config missing for %s", code)
		_, ok = MetaFor(code)
		assert.True(t, ok, "Metadata missing for %s", code)
	}
	assert.GreaterOrEqual(t, len(codes), 51, "All states plus DC")
}

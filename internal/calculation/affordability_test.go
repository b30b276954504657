package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

func standardAffordabilityInput() AffordabilityInput {
	return AffordabilityInput{
		AnnualIncome:       decimal.NewFromInt(480000),
		InterestRate:       decimal.NewFromFloat(6.5),
		LoanTerm:           30,
		PropertyTaxRate:    decimal.NewFromFloat(1.1),
		Insurance:          decimal.NewFromInt(2400),
		HOA:                decimal.Zero,
		PMIRate:            decimal.NewFromFloat(0.5),
		Maintenance:        decimal.NewFromInt(1),
		Utilities:          decimal.NewFromInt(300),
		DownPaymentPercent: decimal.NewFromInt(20),
		DownPaymentMode:    domain.DownPaymentPercent,
	}
}

func TestCalculateAffordability_HighIncome(t *testing.T) {
	result := CalculateAffordability(standardAffordabilityInput())

	assert.False(t, result.UsingFallback)
	assert.InDelta(t, 11200.0, result.TargetPITI.InexactFloat64(), 0.01, "28%% of $40k gross monthly")
	assert.InDelta(t, 1572000.0, result.MaxPurchasePrice.InexactFloat64(), 1000.0,
		"Max price should land near $1.572M")
}

func TestCalculateAffordability_FallbackIncome(t *testing.T) {
	in := standardAffordabilityInput()
	in.AnnualIncome = decimal.Zero

	result := CalculateAffordability(in)

	assert.True(t, result.UsingFallback, "Zero income should trip the fallback")
	assert.InDelta(t, 12500.0, result.GrossMonthly.InexactFloat64(), 0.01, "$150k fallback spread monthly")
}

func TestCalculateAffordability_MoreIncomeBuysMore(t *testing.T) {
	low := standardAffordabilityInput()
	low.AnnualIncome = decimal.NewFromInt(120000)
	high := standardAffordabilityInput()
	high.AnnualIncome = decimal.NewFromInt(300000)

	lowResult := CalculateAffordability(low)
	highResult := CalculateAffordability(high)

	assert.True(t, highResult.MaxPurchasePrice.GreaterThan(lowResult.MaxPurchasePrice),
		"Higher income should afford a higher price")
}

func TestCalculateAffordability_FixedAmountMode(t *testing.T) {
	in := standardAffordabilityInput()
	in.DownPaymentMode = domain.DownPaymentAmount
	in.DownPaymentAmount = decimal.NewFromInt(100000)

	result := CalculateAffordability(in)

	assert.True(t, result.MaxPurchasePrice.GreaterThanOrEqual(decimal.NewFromInt(50000)))
	assert.True(t, result.MaxPurchasePrice.LessThanOrEqual(decimal.NewFromInt(10000000)))
}

func TestCalculateAffordability_ResultRoundedToThousand(t *testing.T) {
	result := CalculateAffordability(standardAffordabilityInput())

	assert.True(t, result.MaxPurchasePrice.Mod(decimal.NewFromInt(1000)).IsZero(),
		"Price should be rounded to the nearest $1,000")
}

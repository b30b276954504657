package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func californiaTaxInput(t *testing.T) TaxBenefitsInput {
	t.Helper()
	loan := decimal.NewFromInt(640000)
	rate := decimal.NewFromFloat(6.5)
	year1 := Year1Interest(loan, rate, MonthlyPayment(loan, rate, 30), decimal.Zero)

	return TaxBenefitsInput{
		TotalInterestYear1:  year1,
		EffectiveLoanAmount: loan,
		PurchasePrice:       decimal.NewFromInt(800000),
		PropertyTaxRate:     decimal.NewFromFloat(1.1),
		StateIncomeTax:      decimal.NewFromInt(30000),
		AnnualIncome:        decimal.NewFromInt(480000),
		FederalTaxRate:      decimal.NewFromInt(24),
		StateTaxRate:        decimal.NewFromFloat(9.3),
		StandardDeduction:   decimal.NewFromInt(31500),
		SALTCap:             decimal.NewFromInt(40000),
		HomesteadSavings:    decimal.Zero,
	}
}

func TestCalculateTaxBenefits_CaliforniaItemizes(t *testing.T) {
	result := CalculateTaxBenefits(californiaTaxInput(t))

	assert.True(t, result.ShouldItemize, "Interest plus capped SALT should clear the standard deduction")
	assert.InDelta(t, 80189.0, result.ItemizedWithHome.InexactFloat64(), 100.0)
	assert.InDelta(t, 38800.0, result.DeductibleSALT.InexactFloat64(), 0.01,
		"30k state tax + 8.8k property tax stays under the 40k cap")
	assert.True(t, result.FederalSavings.GreaterThan(decimal.Zero))
	assert.True(t, result.StateSavings.GreaterThan(decimal.Zero))
}

func TestCalculateTaxBenefits_RatesExposedAsDecimals(t *testing.T) {
	result := CalculateTaxBenefits(californiaTaxInput(t))

	assert.InDelta(t, 0.24, result.FederalRate.InexactFloat64(), 0.0001)
	assert.InDelta(t, 0.093, result.StateRate.InexactFloat64(), 0.0001)
}

func TestCalculateTaxBenefits_SALTCapBinds(t *testing.T) {
	in := californiaTaxInput(t)
	in.SALTCap = decimal.NewFromInt(10000)

	result := CalculateTaxBenefits(in)

	assert.True(t, result.DeductibleSALT.Equal(decimal.NewFromInt(10000)))
	assert.True(t, result.DeductiblePropertyTax.IsZero(),
		"State income tax alone exhausts a 10k cap")
	assert.True(t, result.DeductibleStateIncome.Equal(decimal.NewFromInt(10000)))
}

func TestCalculateTaxBenefits_InterestCappedAt750k(t *testing.T) {
	in := californiaTaxInput(t)
	in.EffectiveLoanAmount = decimal.NewFromInt(1000000)
	rate := decimal.NewFromFloat(6.5)
	in.TotalInterestYear1 = Year1Interest(in.EffectiveLoanAmount, rate,
		MonthlyPayment(in.EffectiveLoanAmount, rate, 30), decimal.Zero)

	result := CalculateTaxBenefits(in)

	assert.True(t, result.DeductibleLoanAmount.Equal(decimal.NewFromInt(750000)))
	assert.True(t, result.DeductibleInterest.LessThan(in.TotalInterestYear1),
		"Only three quarters of the interest is deductible on a $1M loan")
}

func TestCalculateTaxBenefits_StandardDeductionWins(t *testing.T) {
	in := californiaTaxInput(t)
	in.EffectiveLoanAmount = decimal.NewFromInt(50000)
	in.TotalInterestYear1 = decimal.NewFromInt(3200)
	in.StateIncomeTax = decimal.NewFromInt(2000)
	in.PropertyTaxRate = decimal.NewFromFloat(0.5)
	in.PurchasePrice = decimal.NewFromInt(200000)

	result := CalculateTaxBenefits(in)

	assert.False(t, result.ShouldItemize)
	assert.True(t, result.FederalSavings.IsZero(), "No benefit when the standard deduction wins")
	assert.True(t, result.StateSavings.IsZero())
}

func TestCalculateTaxBenefits_ZeroLoan(t *testing.T) {
	in := californiaTaxInput(t)
	in.EffectiveLoanAmount = decimal.Zero
	in.TotalInterestYear1 = decimal.Zero

	result := CalculateTaxBenefits(in)

	assert.True(t, result.DeductibleInterest.IsZero(), "No loan means no interest deduction")
}

func TestCalculateTaxBenefits_HomesteadAlwaysCounts(t *testing.T) {
	in := californiaTaxInput(t)
	in.EffectiveLoanAmount = decimal.NewFromInt(50000)
	in.TotalInterestYear1 = decimal.NewFromInt(3200)
	in.StateIncomeTax = decimal.NewFromInt(2000)
	in.HomesteadSavings = decimal.NewFromInt(77)

	result := CalculateTaxBenefits(in)

	assert.False(t, result.ShouldItemize)
	assert.True(t, result.TotalAnnualSavings.Equal(decimal.NewFromInt(77)),
		"Homestead savings apply even without itemizing")
}

package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func standardPITIInput() PITIInput {
	return PITIInput{
		PurchasePrice:      decimal.NewFromInt(800000),
		InterestRate:       decimal.NewFromFloat(6.5),
		LoanTerm:           30,
		PropertyTaxRate:    decimal.NewFromFloat(1.1),
		MelloRoos:          decimal.Zero,
		Insurance:          decimal.NewFromInt(2400),
		HOA:                decimal.Zero,
		DownPaymentPercent: decimal.NewFromInt(20),
		PMIRate:            decimal.NewFromFloat(0.5),
		Maintenance:        decimal.NewFromInt(1),
		Utilities:          decimal.NewFromInt(300),
		ExtraMonthly:       decimal.Zero,
		LumpSum:            decimal.Zero,
	}
}

func TestCalculatePITI_TwentyPercentDown(t *testing.T) {
	result := CalculatePITI(standardPITIInput())

	assert.True(t, result.DownPayment.Equal(decimal.NewFromInt(160000)), "Down payment should be 20%% of price")
	assert.True(t, result.LoanAmount.Equal(decimal.NewFromInt(640000)), "Loan should be price minus down payment")
	assert.True(t, result.MonthlyPMI.IsZero(), "No PMI at 20%% down")
	assert.InDelta(t, 733.33, result.MonthlyPropertyTax.InexactFloat64(), 0.01, "1.1%% of 800k over 12 months")
	assert.InDelta(t, 200.0, result.MonthlyInsurance.InexactFloat64(), 0.001)
	assert.InDelta(t, 666.67, result.MonthlyMaintenance.InexactFloat64(), 0.01, "1%% of price per year")
}

func TestCalculatePITI_PMIBelowTwentyPercent(t *testing.T) {
	in := standardPITIInput()
	in.PurchasePrice = decimal.NewFromInt(400000)
	in.DownPaymentPercent = decimal.NewFromInt(10)

	result := CalculatePITI(in)

	assert.True(t, result.LoanAmount.Equal(decimal.NewFromInt(360000)))
	assert.InDelta(t, 150.0, result.MonthlyPMI.InexactFloat64(), 0.001, "360k loan at 0.5%%/yr is $150/mo")
}

func TestCalculatePITI_LumpSumReducesEffectiveLoan(t *testing.T) {
	in := standardPITIInput()
	in.LumpSum = decimal.NewFromInt(40000)

	result := CalculatePITI(in)

	assert.True(t, result.EffectiveLumpSum.Equal(decimal.NewFromInt(40000)))
	assert.True(t, result.EffectiveLoanAmount.Equal(decimal.NewFromInt(600000)))
	assert.True(t, result.MonthlyPI.LessThan(result.BaselineMonthlyPI),
		"Payment on the reduced balance should be below the baseline")
}

func TestCalculatePITI_LumpSumClampedToLoan(t *testing.T) {
	in := standardPITIInput()
	in.LumpSum = decimal.NewFromInt(2000000)

	result := CalculatePITI(in)

	assert.True(t, result.EffectiveLumpSum.Equal(result.LoanAmount), "Lump sum cannot exceed the loan")
	assert.True(t, result.EffectiveLoanAmount.IsZero())
	assert.True(t, result.MonthlyPI.IsZero(), "Zero balance means zero P&I")
}

func TestCalculatePITI_PMIChargedOnPreLumpSumLoan(t *testing.T) {
	// A lump sum big enough to push effective equity past 20% still leaves
	// PMI in place: removal requires lender action, not just a balance drop.
	in := standardPITIInput()
	in.PurchasePrice = decimal.NewFromInt(400000)
	in.DownPaymentPercent = decimal.NewFromInt(10)
	in.LumpSum = decimal.NewFromInt(100000)

	result := CalculatePITI(in)

	assert.InDelta(t, 150.0, result.MonthlyPMI.InexactFloat64(), 0.001,
		"PMI stays priced on the original 360k loan")
}

func TestCalculatePITI_BaselineEqualsMonthlyWithoutExtras(t *testing.T) {
	result := CalculatePITI(standardPITIInput())

	assert.True(t, result.BaselineMonthlyPI.Equal(result.MonthlyPI),
		"With no extra payments the baseline is the actual payment")
}

func TestCalculatePITI_TrueMonthlyCostIncludesEverything(t *testing.T) {
	in := standardPITIInput()
	in.ExtraMonthly = decimal.NewFromInt(500)

	result := CalculatePITI(in)

	expected := result.TotalPITI.
		Add(result.MonthlyMaintenance).
		Add(in.Utilities).
		Add(in.ExtraMonthly)
	assert.True(t, result.TrueMonthlyCost.Equal(expected),
		"True cost is PITI plus maintenance, utilities and extra principal")
}

package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

// mortgageInterestDeductionCap is the loan balance above which interest
// stops being deductible.
var mortgageInterestDeductionCap = decimal.NewFromInt(750000)

// TaxBenefitsInput feeds the year-one deduction analysis. The marginal
// rates arrive as percentages; the result converts them to decimals for
// downstream consumers.
type TaxBenefitsInput struct {
	TotalInterestYear1  decimal.Decimal
	EffectiveLoanAmount decimal.Decimal
	PurchasePrice       decimal.Decimal
	PropertyTaxRate     decimal.Decimal
	StateIncomeTax      decimal.Decimal // annual $
	AnnualIncome        decimal.Decimal
	FederalTaxRate      decimal.Decimal // marginal %
	StateTaxRate        decimal.Decimal // marginal %
	StandardDeduction   decimal.Decimal
	SALTCap             decimal.Decimal
	HomesteadSavings    decimal.Decimal
}

// CalculateTaxBenefits compares itemizing against the standard deduction
// for the first year of ownership and prices the difference at the
// marginal rates.
//
// The renter baseline itemizes only state income tax, capped at the SALT
// limit. When itemizing with the home does not clear the standard
// deduction there is no income-tax benefit at all; homestead savings apply
// regardless since they reduce property tax, not income tax.
func CalculateTaxBenefits(in TaxBenefitsInput) domain.TaxBenefitsResult {
	deductibleLoan := decimal.Min(in.EffectiveLoanAmount, mortgageInterestDeductionCap)
	deductibleInterest := decimal.Zero
	if in.EffectiveLoanAmount.GreaterThan(decimal.Zero) {
		deductibleInterest = in.TotalInterestYear1.Mul(deductibleLoan.Div(in.EffectiveLoanAmount))
	}

	annualPropertyTax := in.PurchasePrice.Mul(in.PropertyTaxRate).Div(hundred)

	totalSALT := in.StateIncomeTax.Add(annualPropertyTax)
	deductibleSALT := decimal.Min(totalSALT, in.SALTCap)

	// How much of the SALT cap is left for property tax after state income
	// tax claims its share.
	deductiblePropertyTax := decimal.Min(
		annualPropertyTax,
		decimal.Max(decimal.Zero, in.SALTCap.Sub(in.StateIncomeTax)),
	)
	deductibleStateIncome := deductibleSALT.Sub(deductiblePropertyTax)

	itemizedWithHome := deductibleInterest.Add(deductibleSALT)
	itemizedWithoutHome := decimal.Min(in.StateIncomeTax, in.SALTCap)

	shouldItemize := itemizedWithHome.GreaterThan(in.StandardDeduction)
	wouldItemizeWithoutHome := itemizedWithoutHome.GreaterThan(in.StandardDeduction)

	federalRate := in.FederalTaxRate.Div(hundred)
	stateRate := in.StateTaxRate.Div(hundred)

	federalSavings := decimal.Zero
	stateSavings := decimal.Zero
	if shouldItemize {
		deductionWithoutHome := in.StandardDeduction
		if wouldItemizeWithoutHome {
			deductionWithoutHome = itemizedWithoutHome
		}
		federalSavings = decimal.Max(decimal.Zero, itemizedWithHome.Sub(deductionWithoutHome)).Mul(federalRate)
		stateSavings = deductibleInterest.Mul(stateRate)
	}

	annualSavings := federalSavings.Add(stateSavings)
	totalAnnual := annualSavings.Add(in.HomesteadSavings)

	return domain.TaxBenefitsResult{
		DeductibleLoanAmount:    deductibleLoan,
		DeductibleInterest:      deductibleInterest,
		AnnualPropertyTax:       annualPropertyTax,
		TotalSALT:               totalSALT,
		DeductibleSALT:          deductibleSALT,
		DeductiblePropertyTax:   deductiblePropertyTax,
		DeductibleStateIncome:   deductibleStateIncome,
		SALTCap:                 in.SALTCap,
		ItemizedWithHome:        itemizedWithHome,
		ItemizedWithoutHome:     itemizedWithoutHome,
		StandardDeduction:       in.StandardDeduction,
		ShouldItemize:           shouldItemize,
		WouldItemizeWithoutHome: wouldItemizeWithoutHome,
		FederalSavings:          federalSavings,
		StateSavings:            stateSavings,
		HomesteadSavings:        in.HomesteadSavings,
		TotalAnnualSavings:      totalAnnual,
		MonthlySavings:          totalAnnual.Div(twelve),
		FederalRate:             federalRate,
		StateRate:               stateRate,
	}
}

package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

// pmiRequiredBelowPercent is the down payment threshold under which
// lenders require mortgage insurance.
var pmiRequiredBelowPercent = decimal.NewFromInt(20)

// PITIInput carries everything the monthly-cost breakdown needs. The down
// payment percent must already be resolved from the snapshot's mode.
type PITIInput struct {
	PurchasePrice      decimal.Decimal
	InterestRate       decimal.Decimal
	LoanTerm           int
	PropertyTaxRate    decimal.Decimal
	MelloRoos          decimal.Decimal // annual $
	Insurance          decimal.Decimal // annual $
	HOA                decimal.Decimal // monthly $
	DownPaymentPercent decimal.Decimal
	PMIRate            decimal.Decimal
	Maintenance        decimal.Decimal // annual % of price
	Utilities          decimal.Decimal // monthly $
	ExtraMonthly       decimal.Decimal
	LumpSum            decimal.Decimal
}

// CalculatePITI produces the monthly housing-cost breakdown. A lump sum is
// clamped to the loan amount and reduces the balance the P&I payment is
// computed on; the baseline P&I keeps the payment on the full loan for
// comparison whenever any extra payment is in play.
//
// PMI is charged on the pre-lump-sum loan amount whenever the down payment
// is under 20%, even if the lump sum would push the effective loan-to-value
// past the threshold.
func CalculatePITI(in PITIInput) domain.PITIResult {
	downPayment := in.PurchasePrice.Mul(in.DownPaymentPercent.Div(hundred))
	loanAmount := in.PurchasePrice.Sub(downPayment)

	effectiveLumpSum := decimal.Min(in.LumpSum, loanAmount)
	effectiveLoanAmount := loanAmount.Sub(effectiveLumpSum)

	monthlyPI := MonthlyPayment(effectiveLoanAmount, in.InterestRate, in.LoanTerm)

	baselineMonthlyPI := monthlyPI
	if effectiveLumpSum.GreaterThan(decimal.Zero) || in.ExtraMonthly.GreaterThan(decimal.Zero) {
		baselineMonthlyPI = MonthlyPayment(loanAmount, in.InterestRate, in.LoanTerm)
	}

	monthlyPropertyTax := in.PurchasePrice.Mul(in.PropertyTaxRate).Div(hundred).Div(twelve)
	monthlyMelloRoos := in.MelloRoos.Div(twelve)
	monthlyInsurance := in.Insurance.Div(twelve)

	monthlyPMI := decimal.Zero
	if in.DownPaymentPercent.LessThan(pmiRequiredBelowPercent) {
		monthlyPMI = loanAmount.Mul(in.PMIRate).Div(hundred).Div(twelve)
	}

	monthlyMaintenance := in.PurchasePrice.Mul(in.Maintenance).Div(hundred).Div(twelve)

	totalPITI := monthlyPI.
		Add(monthlyPropertyTax).
		Add(monthlyMelloRoos).
		Add(monthlyInsurance).
		Add(monthlyPMI).
		Add(in.HOA)

	trueMonthlyCost := totalPITI.
		Add(monthlyMaintenance).
		Add(in.Utilities).
		Add(in.ExtraMonthly)

	return domain.PITIResult{
		LoanAmount:          loanAmount,
		EffectiveLoanAmount: effectiveLoanAmount,
		EffectiveLumpSum:    effectiveLumpSum,
		DownPayment:         downPayment,
		DownPaymentPercent:  in.DownPaymentPercent,
		MonthlyPI:           monthlyPI,
		BaselineMonthlyPI:   baselineMonthlyPI,
		MonthlyPropertyTax:  monthlyPropertyTax,
		MonthlyMelloRoos:    monthlyMelloRoos,
		MonthlyInsurance:    monthlyInsurance,
		MonthlyPMI:          monthlyPMI,
		MonthlyHOA:          in.HOA,
		MonthlyMaintenance:  monthlyMaintenance,
		MonthlyUtilities:    in.Utilities,
		TotalPITI:           totalPITI,
		TrueMonthlyCost:     trueMonthlyCost,
	}
}

package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

// Closing cost parameters. Flat fees are dollars, rates apply to the loan
// or purchase price as noted per line item.
var (
	loanOriginationRate = decimal.NewFromFloat(0.0075)
	appraisalFee        = decimal.NewFromInt(600)
	creditReportFee     = decimal.NewFromInt(50)
	titleInsuranceRate  = decimal.NewFromFloat(0.003)
	escrowFeeRate       = decimal.NewFromFloat(0.002)
	recordingFees       = decimal.NewFromInt(200)
	notaryFees          = decimal.NewFromInt(200)
	homeInspectionFee   = decimal.NewFromInt(500)
	pestInspectionFee   = decimal.NewFromInt(150)
	hoaTransferFee      = decimal.NewFromInt(500)
	prepaidInterestDays = decimal.NewFromInt(15)
	daysPerYear         = decimal.NewFromInt(365)
	two                 = decimal.NewFromInt(2)
)

// UpfrontCostsInput feeds the closing-cost statement. Monthly tax and
// insurance come from the PITI breakdown so prepaid reserves agree with the
// monthly figures.
type UpfrontCostsInput struct {
	PurchasePrice      decimal.Decimal
	LoanAmount         decimal.Decimal // before lump sum
	DownPayment        decimal.Decimal
	EffectiveLumpSum   decimal.Decimal
	InterestRate       decimal.Decimal
	Insurance          decimal.Decimal // annual $
	MonthlyPropertyTax decimal.Decimal
	MonthlyInsurance   decimal.Decimal
	HOA                decimal.Decimal // monthly $
}

// CalculateUpfrontCosts itemizes closing costs in presentation order and
// totals the cash needed at closing: down payment, closing costs, escrow
// reserve and any lump sum principal payment.
func CalculateUpfrontCosts(in UpfrontCostsInput) domain.UpfrontCostsResult {
	items := []domain.ClosingCostItem{
		{Label: "Loan Origination (0.75%)", Amount: in.LoanAmount.Mul(loanOriginationRate)},
		{Label: "Appraisal Fee", Amount: appraisalFee},
		{Label: "Credit Report", Amount: creditReportFee},
		{Label: "Title Insurance", Amount: in.PurchasePrice.Mul(titleInsuranceRate)},
		{Label: "Escrow Fee", Amount: in.PurchasePrice.Mul(escrowFeeRate)},
		{Label: "Recording Fees", Amount: recordingFees},
		{Label: "Notary Fees", Amount: notaryFees},
		{Label: "Home Inspection", Amount: homeInspectionFee},
		{Label: "Pest Inspection", Amount: pestInspectionFee},
		{Label: "Prepaid Interest (15 days)", Amount: in.LoanAmount.Mul(in.InterestRate).Div(hundred).Div(daysPerYear).Mul(prepaidInterestDays)},
		{Label: "Prepaid Property Tax (2 mo)", Amount: in.MonthlyPropertyTax.Mul(two)},
		{Label: "Prepaid Insurance (12 mo)", Amount: in.Insurance},
	}
	if in.HOA.GreaterThan(decimal.Zero) {
		items = append(items, domain.ClosingCostItem{Label: "HOA Transfer Fee", Amount: hoaTransferFee})
	}

	totalClosingCosts := decimal.Zero
	for _, item := range items {
		totalClosingCosts = totalClosingCosts.Add(item.Amount)
	}

	escrowReserve := in.MonthlyPropertyTax.Mul(two).Add(in.MonthlyInsurance.Mul(two))
	totalCashNeeded := in.DownPayment.
		Add(totalClosingCosts).
		Add(escrowReserve).
		Add(in.EffectiveLumpSum)

	return domain.UpfrontCostsResult{
		Items:             items,
		TotalClosingCosts: totalClosingCosts,
		EscrowReserve:     escrowReserve,
		DownPayment:       in.DownPayment,
		LumpSum:           in.EffectiveLumpSum,
		TotalCashNeeded:   totalCashNeeded,
	}
}

package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

// Affordability search bounds and the front-end debt-to-income target.
var (
	affordabilityFloor   = 50000
	affordabilityCeiling = 10000000
	frontEndDTIRatio     = decimal.NewFromFloat(0.28)
	fallbackAnnualIncome = decimal.NewFromInt(150000)
)

// affordabilitySearchIterations bounds the binary search; 30 halvings of a
// $10M range resolve to under a dollar.
const affordabilitySearchIterations = 30

// AffordabilityInput drives the maximum-price search. In amount mode the
// down payment stays fixed in dollars as the candidate price moves; in
// percent mode it scales with the price.
type AffordabilityInput struct {
	AnnualIncome       decimal.Decimal
	InterestRate       decimal.Decimal
	LoanTerm           int
	PropertyTaxRate    decimal.Decimal
	Insurance          decimal.Decimal // annual $
	HOA                decimal.Decimal // monthly $
	PMIRate            decimal.Decimal
	Maintenance        decimal.Decimal // annual % of price
	Utilities          decimal.Decimal // monthly $
	DownPaymentPercent decimal.Decimal
	DownPaymentAmount  decimal.Decimal
	DownPaymentMode    domain.DownPaymentMode
}

// CalculateAffordability binary-searches for the highest purchase price
// whose full monthly carrying cost stays within 28% of gross monthly
// income. Non-positive income falls back to a $150k placeholder so the
// search still produces a usable figure. The result is clamped to the
// search range and rounded to the nearest $1,000.
func CalculateAffordability(in AffordabilityInput) domain.AffordabilityResult {
	usingFallback := !in.AnnualIncome.GreaterThan(decimal.Zero)
	income := in.AnnualIncome
	if usingFallback {
		income = fallbackAnnualIncome
	}
	grossMonthly := income.Div(twelve)
	targetPITI := grossMonthly.Mul(frontEndDTIRatio)

	lo := affordabilityFloor
	hi := affordabilityCeiling

	for i := 0; i < affordabilitySearchIterations; i++ {
		mid := (lo + hi + 1) / 2
		if monthlyCostAt(in, mid).LessThanOrEqual(targetPITI) {
			lo = mid
		} else {
			hi = mid
		}
	}

	rounded := ((lo + 500) / 1000) * 1000
	if rounded < affordabilityFloor {
		rounded = affordabilityFloor
	}
	if rounded > affordabilityCeiling {
		rounded = affordabilityCeiling
	}

	return domain.AffordabilityResult{
		MaxPurchasePrice: decimal.NewFromInt(int64(rounded)),
		TargetPITI:       targetPITI,
		GrossMonthly:     grossMonthly,
		UsingFallback:    usingFallback,
	}
}

// monthlyCostAt prices the full monthly carrying cost of a candidate
// purchase price: P&I, property tax, insurance, PMI, HOA, maintenance and
// utilities.
func monthlyCostAt(in AffordabilityInput, price int) decimal.Decimal {
	p := decimal.NewFromInt(int64(price))

	dp := p.Mul(in.DownPaymentPercent.Div(hundred))
	if in.DownPaymentMode == domain.DownPaymentAmount {
		dp = in.DownPaymentAmount
	}

	loan := p.Sub(dp)
	pi := MonthlyPayment(loan, in.InterestRate, in.LoanTerm)
	tax := p.Mul(in.PropertyTaxRate).Div(hundred).Div(twelve)
	ins := in.Insurance.Div(twelve)

	pmi := decimal.Zero
	dpPercent := dp.Div(p).Mul(hundred)
	if dpPercent.LessThan(pmiRequiredBelowPercent) {
		pmi = loan.Mul(in.PMIRate.Div(hundred)).Div(twelve)
	}

	maint := p.Mul(in.Maintenance).Div(hundred).Div(twelve)

	return pi.Add(tax).Add(ins).Add(pmi).Add(in.HOA).Add(maint).Add(in.Utilities)
}

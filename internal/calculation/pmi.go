package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

// PMI removal thresholds: servicers must cancel at 78% of the original
// purchase price, and borrowers may request cancellation at 80% of the
// current appraised value.
var (
	autoRemovalLTV    = decimal.NewFromFloat(0.78)
	requestRemovalLTV = decimal.NewFromInt(80)
	defaultPMIRate    = decimal.NewFromFloat(0.5)
)

// pmiTimelineHorizonMonths caps the simulation at 30 years.
const pmiTimelineHorizonMonths = 360

// PMITimelineInput projects when mortgage insurance falls off the loan.
type PMITimelineInput struct {
	LoanAmount         decimal.Decimal // before lump sum
	PurchasePrice      decimal.Decimal
	MonthlyPI          decimal.Decimal
	InterestRate       decimal.Decimal
	AppreciationRate   decimal.Decimal
	DownPaymentPercent decimal.Decimal
	ExtraMonthly       decimal.Decimal
	PMIRate            decimal.Decimal
}

// CalculatePMITimeline amortizes the loan month by month and records when
// each removal threshold is crossed. Auto removal tracks the balance
// against 78% of the original price; request removal tracks loan-to-value
// against the appreciating home value. A 20% down payment skips PMI
// entirely. A zero PMI rate falls back to the 0.5% default.
func CalculatePMITimeline(in PMITimelineInput) domain.PMITimelineResult {
	if in.DownPaymentPercent.GreaterThanOrEqual(pmiRequiredBelowPercent) {
		return domain.PMITimelineResult{
			HasPMI:              false,
			MonthlyPMI:          decimal.Zero,
			AutoRemovalYears:    "N/A",
			RequestRemovalYears: "N/A",
			TotalPMIPaid:        decimal.Zero,
			SavedByRequesting:   decimal.Zero,
		}
	}

	pmiRate := in.PMIRate
	if pmiRate.IsZero() {
		pmiRate = defaultPMIRate
	}
	monthlyRate := in.InterestRate.Div(hundred).Div(twelve)
	monthlyPMI := in.LoanAmount.Mul(pmiRate.Div(hundred)).Div(twelve)

	autoRemovalBalance := in.PurchasePrice.Mul(autoRemovalLTV)

	balance := in.LoanAmount
	month := 0
	totalPMIPaid := decimal.Zero
	var autoRemovalMonth, requestRemovalMonth *int

	for month < pmiTimelineHorizonMonths && balance.GreaterThan(decimal.Zero) {
		month++
		interest := balance.Mul(monthlyRate)
		basePrincipal := in.MonthlyPI.Sub(interest)
		extra := decimal.Min(in.ExtraMonthly, balance.Sub(basePrincipal))
		principal := decimal.Min(basePrincipal.Add(decimal.Max(extra, decimal.Zero)), balance)
		balance = decimal.Max(balance.Sub(principal), decimal.Zero)

		if balance.GreaterThan(autoRemovalBalance) {
			totalPMIPaid = totalPMIPaid.Add(monthlyPMI)
		}

		if autoRemovalMonth == nil && balance.LessThanOrEqual(autoRemovalBalance) {
			m := month
			autoRemovalMonth = &m
		}

		if requestRemovalMonth == nil {
			currentValue := compoundMonthly(in.PurchasePrice, in.AppreciationRate, month)
			currentLTV := balance.Div(currentValue).Mul(hundred)
			if currentLTV.LessThanOrEqual(requestRemovalLTV) {
				m := month
				requestRemovalMonth = &m
			}
		}

		if autoRemovalMonth != nil && requestRemovalMonth != nil {
			break
		}
	}

	savedByRequesting := decimal.Zero
	if autoRemovalMonth != nil && requestRemovalMonth != nil {
		monthsEarlier := int64(*autoRemovalMonth - *requestRemovalMonth)
		savedByRequesting = decimal.NewFromInt(monthsEarlier).Mul(monthlyPMI)
	}

	return domain.PMITimelineResult{
		HasPMI:              true,
		MonthlyPMI:          monthlyPMI,
		AutoRemovalMonth:    autoRemovalMonth,
		RequestRemovalMonth: requestRemovalMonth,
		AutoRemovalYears:    removalYears(autoRemovalMonth),
		RequestRemovalYears: removalYears(requestRemovalMonth),
		TotalPMIPaid:        totalPMIPaid,
		SavedByRequesting:   savedByRequesting,
	}
}

// removalYears renders a removal month as years with one decimal place, or
// "N/A" when the threshold was never reached.
func removalYears(month *int) string {
	if month == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", float64(*month)/12)
}

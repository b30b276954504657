package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

// projectionYears is the horizon of the wealth projection and the
// rent-versus-buy comparison.
const projectionYears = 10

// ScheduleInput drives the ten-year projection. Rates named *Rate are
// percentages; FederalRate and StateRate are decimals (0.24 means 24%)
// because they arrive from the tax benefit analysis, which exposes them
// that way.
type ScheduleInput struct {
	PurchasePrice       decimal.Decimal
	EffectiveLoanAmount decimal.Decimal
	EffectiveLumpSum    decimal.Decimal
	DownPayment         decimal.Decimal
	InterestRate        decimal.Decimal
	LoanTerm            int
	Appreciation        decimal.Decimal
	ExtraMonthly        decimal.Decimal
	MonthlyPI           decimal.Decimal

	LoanType      domain.LoanType
	ARMAdjustment decimal.Decimal
	ARMCap        decimal.Decimal

	DeductibleLoan          decimal.Decimal
	DeductibleSALT          decimal.Decimal
	StandardDeduction       decimal.Decimal
	ItemizedWithoutHome     decimal.Decimal
	WouldItemizeWithoutHome bool
	FederalRate             decimal.Decimal // decimal, e.g. 0.24
	StateRate               decimal.Decimal // decimal, e.g. 0.093
	HomesteadSavings        decimal.Decimal
}

// GenerateSchedule produces the year-by-year projection: amortization with
// optional ARM repricing, home value appreciation, equity accumulation and
// cumulative tax savings.
//
// After the ARM's fixed period the rate steps up by the adjustment each
// year until it hits the cap, and the payment is recast over the remaining
// term. Extra monthly principal is clamped so the balance never goes
// negative.
func GenerateSchedule(in ScheduleInput) []domain.AmortizationYear {
	schedule := make([]domain.AmortizationYear, 0, projectionYears)

	balance := in.EffectiveLoanAmount
	cumulativeTaxSavings := decimal.Zero

	isARM := in.LoanType.IsARM()
	armFixedYears := in.LoanType.FixedYears(in.LoanTerm)
	currentRate := in.InterestRate
	currentMonthlyPI := in.MonthlyPI

	for year := 1; year <= projectionYears; year++ {
		if isARM && year > armFixedYears {
			currentRate = decimal.Min(currentRate.Add(in.ARMAdjustment), in.ARMCap)
			remainingYears := in.LoanTerm - year + 1
			currentMonthlyPI = MonthlyPayment(decimal.Max(balance, decimal.Zero), currentRate, remainingYears)
		}

		monthlyRate := currentRate.Div(hundred).Div(twelve)
		yearInterest := decimal.Zero
		yearPrincipal := decimal.Zero

		for month := 1; month <= 12; month++ {
			if !balance.GreaterThan(decimal.Zero) {
				break
			}
			interestPayment := balance.Mul(monthlyRate)
			basePrincipal := currentMonthlyPI.Sub(interestPayment)
			extraPrincipal := decimal.Min(in.ExtraMonthly, balance.Sub(basePrincipal))
			principalPayment := decimal.Min(
				basePrincipal.Add(decimal.Max(extraPrincipal, decimal.Zero)),
				balance,
			)
			yearInterest = yearInterest.Add(interestPayment)
			yearPrincipal = yearPrincipal.Add(principalPayment)
			balance = decimal.Max(balance.Sub(principalPayment), decimal.Zero)
		}

		homeValue := compoundAnnual(in.PurchasePrice, in.Appreciation, year)
		appreciationGain := homeValue.Sub(in.PurchasePrice)
		equityFromPayments := in.EffectiveLoanAmount.Sub(balance).Add(in.EffectiveLumpSum)
		totalEquity := in.DownPayment.Add(equityFromPayments).Add(appreciationGain)

		yearTaxSavings := yearlyTaxSavings(in, yearInterest)
		cumulativeTaxSavings = cumulativeTaxSavings.Add(yearTaxSavings)

		schedule = append(schedule, domain.AmortizationYear{
			Year:                 year,
			InterestRate:         currentRate,
			MonthlyPayment:       currentMonthlyPI.Add(in.ExtraMonthly),
			PrincipalPaid:        yearPrincipal,
			InterestPaid:         yearInterest,
			RemainingBalance:     balance,
			HomeValue:            homeValue,
			EquityFromPayments:   equityFromPayments,
			AppreciationGain:     appreciationGain,
			TotalEquity:          totalEquity,
			TaxSavings:           yearTaxSavings,
			CumulativeTaxSavings: cumulativeTaxSavings,
			TotalWealthImpact:    totalEquity.Add(cumulativeTaxSavings),
		})
	}

	return schedule
}

// yearlyTaxSavings reruns the itemize-or-not decision for one projection
// year using that year's interest. Interest deductibility is prorated by
// the share of the loan under the deductible cap. The homestead savings is
// added whether or not itemizing wins.
func yearlyTaxSavings(in ScheduleInput, yearInterest decimal.Decimal) decimal.Decimal {
	deductibleInterest := decimal.Zero
	if in.EffectiveLoanAmount.GreaterThan(decimal.Zero) {
		cappedLoan := decimal.Min(in.DeductibleLoan, in.EffectiveLoanAmount)
		deductibleInterest = yearInterest.Mul(cappedLoan.Div(in.EffectiveLoanAmount))
	}

	itemizedWithHome := deductibleInterest.Add(in.DeductibleSALT)
	if !itemizedWithHome.GreaterThan(in.StandardDeduction) {
		return in.HomesteadSavings
	}

	deductionWithoutHome := in.StandardDeduction
	if in.WouldItemizeWithoutHome {
		deductionWithoutHome = in.ItemizedWithoutHome
	}
	federalSavings := decimal.Max(decimal.Zero, itemizedWithHome.Sub(deductionWithoutHome)).Mul(in.FederalRate)
	stateSavings := deductibleInterest.Mul(in.StateRate)

	return federalSavings.Add(stateSavings).Add(in.HomesteadSavings)
}

// Year1Interest sums the interest paid over the first twelve months of the
// effective loan, with extra monthly principal accelerating the balance
// rundown.
func Year1Interest(effectiveLoanAmount, interestRate, monthlyPI, extraMonthly decimal.Decimal) decimal.Decimal {
	balance := effectiveLoanAmount
	total := decimal.Zero
	monthlyRate := interestRate.Div(hundred).Div(twelve)

	for month := 1; month <= 12; month++ {
		if !balance.GreaterThan(decimal.Zero) {
			break
		}
		interestPayment := balance.Mul(monthlyRate)
		basePrincipal := monthlyPI.Sub(interestPayment)
		extraPrincipal := decimal.Min(extraMonthly, balance.Sub(basePrincipal))
		principalPayment := decimal.Min(
			basePrincipal.Add(decimal.Max(extraPrincipal, decimal.Zero)),
			balance,
		)
		total = total.Add(interestPayment)
		balance = decimal.Max(balance.Sub(principalPayment), decimal.Zero)
	}

	return total
}

package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

// payoffEpsilon treats residual balances under a cent as paid off.
var payoffEpsilon = decimal.NewFromFloat(0.01)

// ExtraPaymentsInput quantifies payoff acceleration. LoanAmount is the
// original loan before the lump sum; the effective balance is derived here
// so the clamp to the loan amount is applied consistently.
type ExtraPaymentsInput struct {
	LoanAmount   decimal.Decimal
	InterestRate decimal.Decimal
	LoanTerm     int
	ExtraMonthly decimal.Decimal
	LumpSum      decimal.Decimal
}

// CalculateExtraPayments simulates the loan twice, without and with the
// extra payments, and reports the interest and months saved. With no
// extras the baseline is still simulated so the payoff month count is
// exact, and the two counts agree.
func CalculateExtraPayments(in ExtraPaymentsInput) domain.ExtraPaymentsResult {
	effectiveLumpSum := decimal.Min(in.LumpSum, in.LoanAmount)
	effectiveLoanAmount := in.LoanAmount.Sub(effectiveLumpSum)
	hasExtras := in.ExtraMonthly.GreaterThan(decimal.Zero) || effectiveLumpSum.GreaterThan(decimal.Zero)

	baselineMonthlyPI := MonthlyPayment(in.LoanAmount, in.InterestRate, in.LoanTerm)
	baseInterest, baseMonths := simulateBaseline(in.LoanAmount, baselineMonthlyPI, in.InterestRate, in.LoanTerm)

	if !hasExtras {
		return domain.ExtraPaymentsResult{
			HasExtraPayments:      false,
			InterestSaved:         decimal.Zero,
			MonthsSaved:           0,
			OriginalMonths:        baseMonths,
			NewMonths:             baseMonths,
			OriginalTotalInterest: baseInterest,
			NewTotalInterest:      baseInterest,
		}
	}

	monthlyPI := MonthlyPayment(effectiveLoanAmount, in.InterestRate, in.LoanTerm)
	monthlyRate := in.InterestRate.Div(hundred).Div(twelve)

	balance := effectiveLoanAmount
	extraInterest := decimal.Zero
	extraMonths := 0
	maxMonths := in.LoanTerm * 12
	for balance.GreaterThan(payoffEpsilon) && extraMonths < maxMonths {
		extraMonths++
		interest := balance.Mul(monthlyRate)
		basePrincipal := monthlyPI.Sub(interest)
		extraPrincipal := decimal.Min(in.ExtraMonthly, balance.Sub(basePrincipal))
		totalPrincipal := decimal.Min(
			basePrincipal.Add(decimal.Max(extraPrincipal, decimal.Zero)),
			balance,
		)
		extraInterest = extraInterest.Add(interest)
		balance = decimal.Max(balance.Sub(totalPrincipal), decimal.Zero)
	}

	return domain.ExtraPaymentsResult{
		HasExtraPayments:      true,
		InterestSaved:         baseInterest.Sub(extraInterest),
		MonthsSaved:           baseMonths - extraMonths,
		OriginalMonths:        baseMonths,
		NewMonths:             extraMonths,
		OriginalTotalInterest: baseInterest,
		NewTotalInterest:      extraInterest,
	}
}

// simulateBaseline amortizes the original loan with no extra principal.
// The principal is not clamped to the balance here; the loop stops on the
// epsilon instead, matching the level-payment formula's natural payoff.
func simulateBaseline(loanAmount, monthlyPI, interestRate decimal.Decimal, loanTerm int) (decimal.Decimal, int) {
	monthlyRate := interestRate.Div(hundred).Div(twelve)
	balance := loanAmount
	totalInterest := decimal.Zero
	months := 0
	maxMonths := loanTerm * 12
	for balance.GreaterThan(payoffEpsilon) && months < maxMonths {
		months++
		interest := balance.Mul(monthlyRate)
		principal := monthlyPI.Sub(interest)
		totalInterest = totalInterest.Add(interest)
		balance = decimal.Max(balance.Sub(principal), decimal.Zero)
	}
	return totalInterest, months
}

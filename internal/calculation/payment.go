// Package calculation implements the recalculation pipeline: mortgage
// payment math, upfront costs, the ten-year wealth projection, tax benefit
// analysis, affordability search, rent-versus-buy comparison, extra payment
// modeling and the PMI removal timeline. Everything runs in decimal
// arithmetic; rate parameters are percentages (6.5 means 6.5% per year)
// throughout the package.
package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// MonthlyPayment returns the level monthly principal-and-interest payment
// for an amortizing loan. A zero rate degenerates to straight division of
// the principal across the term.
func MonthlyPayment(principal, annualRate decimal.Decimal, years int) decimal.Decimal {
	numPayments := decimal.NewFromInt(int64(years) * 12)
	if annualRate.IsZero() {
		return principal.Div(numPayments)
	}
	monthlyRate := annualRate.Div(hundred).Div(twelve)
	growth := one.Add(monthlyRate).Pow(numPayments)
	return principal.Mul(monthlyRate).Mul(growth).Div(growth.Sub(one))
}

// compoundMonthly returns base * (1 + annualRate/100)^(months/12). The
// fractional exponent forces a float round trip; the result feeds
// threshold comparisons, not running balances, so the precision loss is
// harmless.
func compoundMonthly(base, annualRate decimal.Decimal, months int) decimal.Decimal {
	growth := math.Pow(1+annualRate.InexactFloat64()/100, float64(months)/12)
	return base.Mul(decimal.NewFromFloat(growth))
}

// compoundAnnual returns base * (1 + annualRate/100)^years.
func compoundAnnual(base, annualRate decimal.Decimal, years int) decimal.Decimal {
	factor := one.Add(annualRate.Div(hundred)).Pow(decimal.NewFromInt(int64(years)))
	return base.Mul(factor)
}

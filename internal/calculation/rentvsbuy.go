package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

// RentVsBuyInput compares renting against the modeled purchase. EquityByYear
// is the total-equity column of the projection schedule, index 0 = year 1.
type RentVsBuyInput struct {
	RentAmount      decimal.Decimal // monthly $
	RentIncrease    decimal.Decimal // annual %
	InvestReturn    decimal.Decimal // annual %
	DownPayment     decimal.Decimal
	TrueMonthlyCost decimal.Decimal
	EquityByYear    []decimal.Decimal
}

// CalculateRentVsBuy runs the ten-year renter-versus-owner wealth race. The
// renter starts by investing the down payment, grows the portfolio at the
// investment return, and adds the yearly gap between owning cost and rent
// whenever owning costs more. The owner's wealth is the equity column of
// the projection. Break-even is the first year owner wealth pulls ahead;
// zero means it never does within the horizon.
//
// The owner's monthly cost is held constant across the horizon while rent
// escalates, which understates owner outflows in later years. Output
// figures are rounded to whole dollars.
func CalculateRentVsBuy(in RentVsBuyInput) domain.RentVsBuyResult {
	years := make([]domain.RentVsBuyYear, 0, projectionYears)

	cumulativeRent := decimal.Zero
	cumulativeBuy := decimal.Zero
	renterPortfolio := in.DownPayment
	breakEvenYear := 0

	growthFactor := one.Add(in.InvestReturn.Div(hundred))
	annualBuyCost := in.TrueMonthlyCost.Mul(twelve)

	for y := 1; y <= projectionYears; y++ {
		currentRent := compoundAnnual(in.RentAmount, in.RentIncrease, y-1)
		yearlyRent := currentRent.Mul(twelve)
		cumulativeRent = cumulativeRent.Add(yearlyRent)

		monthlySavings := decimal.Max(decimal.Zero, in.TrueMonthlyCost.Sub(currentRent))
		renterPortfolio = renterPortfolio.Mul(growthFactor).Add(monthlySavings.Mul(twelve))

		cumulativeBuy = cumulativeBuy.Add(annualBuyCost)

		buyerWealth := decimal.Zero
		if len(in.EquityByYear) > 0 {
			if y-1 < len(in.EquityByYear) {
				buyerWealth = in.EquityByYear[y-1]
			} else {
				buyerWealth = in.EquityByYear[len(in.EquityByYear)-1]
			}
		}

		if breakEvenYear == 0 && buyerWealth.GreaterThan(renterPortfolio) {
			breakEvenYear = y
		}

		years = append(years, domain.RentVsBuyYear{
			Year:              y,
			MonthlyRent:       currentRent.Round(2),
			AnnualRentCost:    yearlyRent.Round(0),
			AnnualBuyCost:     annualBuyCost.Round(0),
			CumulativeRent:    cumulativeRent.Round(0),
			CumulativeBuy:     cumulativeBuy.Round(0),
			RenterPortfolio:   renterPortfolio.Round(0),
			BuyerWealth:       buyerWealth.Round(0),
			NetBuyerAdvantage: buyerWealth.Round(0).Sub(renterPortfolio.Round(0)),
		})
	}

	return domain.RentVsBuyResult{
		Years:         years,
		BreakEvenYear: breakEvenYear,
		TotalRentCost: cumulativeRent.Round(0),
		TotalBuyCost:  cumulativeBuy.Round(0),
	}
}

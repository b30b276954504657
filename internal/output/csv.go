package output

import (
	"encoding/csv"
	"strconv"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

// GenerateCSVReport writes the ten-year schedule as CSV
func (rg *ReportGenerator) GenerateCSVReport(bundle *domain.ResultsBundle) error {
	writer := csv.NewWriter(rg.Writer)
	defer writer.Flush()

	header := []string{
		"Year", "Interest Rate", "Monthly Payment", "Principal Paid", "Interest Paid",
		"Remaining Balance", "Home Value", "Total Equity", "Tax Savings",
		"Cumulative Tax Savings", "Total Wealth Impact",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, year := range bundle.Schedule {
		row := []string{
			strconv.Itoa(year.Year),
			year.InterestRate.StringFixed(3),
			year.MonthlyPayment.StringFixed(2),
			year.PrincipalPaid.StringFixed(2),
			year.InterestPaid.StringFixed(2),
			year.RemainingBalance.StringFixed(2),
			year.HomeValue.StringFixed(2),
			year.TotalEquity.StringFixed(2),
			year.TaxSavings.StringFixed(2),
			year.CumulativeTaxSavings.StringFixed(2),
			year.TotalWealthImpact.StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return writer.Error()
}

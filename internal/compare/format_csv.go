package compare

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	// Write header
	header := []string{
		"Scenario",
		"Type",
		"Monthly PITI",
		"True Monthly Cost",
		"Cash to Close",
		"10yr Wealth",
		"Total Interest",
		"Payoff Months",
		"Break-even Year",
		"PMI Months",
		"PITI Diff from Base",
		"Cash Diff from Base",
		"Wealth Diff from Base",
		"Wealth % Change",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	// Write base scenario
	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	// Write alternative scenarios
	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		result.MonthlyPITI.StringFixed(2),
		result.TrueMonthlyCost.StringFixed(2),
		result.CashToClose.StringFixed(2),
		result.TenYearWealth.StringFixed(2),
		result.TotalInterest.StringFixed(2),
		formatInt(result.PayoffMonths),
		formatInt(result.BreakEvenYear),
		formatInt(result.PMIMonths),
		result.PITIDiffFromBase.StringFixed(2),
		result.CashDiffFromBase.StringFixed(2),
		result.WealthDiffFromBase.StringFixed(2),
		result.WealthPctFromBase.StringFixed(2),
	}
}

func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}

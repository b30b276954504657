package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("HOME PURCHASE SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	// Column widths
	nameWidth := 22
	numWidth := 14

	// Table header
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Monthly PITI",
		numWidth, "Cash to Close",
		numWidth, "10yr Wealth",
		numWidth, "Break-even"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	// Base scenario row
	base := compSet.BaseResult
	sb.WriteString(tf.formatRow(base, nameWidth, numWidth, true))

	// Alternative scenarios
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Comparison details (deltas from base)
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			if alt.Description != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", alt.Description))
			}

			pitiSymbol := tf.deltaSymbol(alt.PITIDiffFromBase)
			sb.WriteString(fmt.Sprintf("  Monthly PITI:     %s$%s\n",
				pitiSymbol, tf.formatDecimal(alt.PITIDiffFromBase.Abs())))

			cashSymbol := tf.deltaSymbol(alt.CashDiffFromBase)
			sb.WriteString(fmt.Sprintf("  Cash to Close:    %s$%s\n",
				cashSymbol, tf.formatDecimal(alt.CashDiffFromBase.Abs())))

			wealthSymbol := tf.deltaSymbol(alt.WealthDiffFromBase)
			sb.WriteString(fmt.Sprintf("  10-Year Wealth:   %s$%s (%s%%)\n",
				wealthSymbol,
				tf.formatDecimal(alt.WealthDiffFromBase.Abs()),
				alt.WealthPctFromBase.StringFixed(1)))

			if alt.PayoffMonthsDiff != 0 {
				payoffSymbol := "+"
				if alt.PayoffMonthsDiff < 0 {
					payoffSymbol = ""
				}
				sb.WriteString(fmt.Sprintf("  Payoff Timeline:  %s%d months\n",
					payoffSymbol, alt.PayoffMonthsDiff))
			}

			if !alt.InterestDiffFromBase.IsZero() {
				interestSymbol := tf.deltaSymbol(alt.InterestDiffFromBase.Neg()) // less interest is better
				sb.WriteString(fmt.Sprintf("  Interest Impact:  %s$%s\n",
					interestSymbol,
					tf.formatDecimal(alt.InterestDiffFromBase.Abs())))
			}
		}
		sb.WriteString("\n")
	}

	// Recommendations
	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("- %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	breakEvenStr := fmt.Sprintf("year %d", result.BreakEvenYear)
	if result.BreakEvenYear == 0 {
		breakEvenStr = "never"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, "$"+tf.formatDecimal(result.MonthlyPITI),
		numWidth, "$"+tf.formatDecimal(result.CashToClose),
		numWidth, "$"+tf.formatDecimal(result.TenYearWealth),
		numWidth, breakEvenStr)
}

// formatDecimal formats a decimal for display (in thousands/millions)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(10000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns a + or - symbol for deltas
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		wealthChange := "="
		if alt.WealthDiffFromBase.IsPositive() {
			wealthChange = fmt.Sprintf("+$%s", tf.formatDecimal(alt.WealthDiffFromBase))
		} else if alt.WealthDiffFromBase.IsNegative() {
			wealthChange = fmt.Sprintf("-$%s", tf.formatDecimal(alt.WealthDiffFromBase.Abs()))
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, wealthChange))
	}

	return sb.String()
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
	"github.com/hpgo/homebuyer-calculator/internal/tui/components"
	"github.com/hpgo/homebuyer-calculator/internal/tui/tuistyles"
)

// renderResultsScene renders the full analysis: headline cards, the ten-year
// wealth chart, and the narrative lines beneath it.
func renderResultsScene(bundle *domain.ResultsBundle) string {
	if bundle == nil {
		return InfoStyle.Render("No results yet. Adjust parameters first (press 'p').")
	}

	cards := []*components.MetricCard{
		components.NewMetricCard("Monthly PITI", FormatCurrency(bundle.PITI.TotalPITI)),
		components.NewMetricCard("True Monthly Cost", FormatCurrency(bundle.PITI.TrueMonthlyCost)).
			WithDescription("incl. maintenance"),
		components.NewMetricCard("Cash to Close", FormatCurrency(bundle.Upfront.TotalCashNeeded)),
	}
	if len(bundle.Schedule) > 0 {
		last := bundle.Schedule[len(bundle.Schedule)-1]
		cards = append(cards,
			components.NewMetricCard("10-Year Wealth", FormatCurrency(last.TotalWealthImpact)).
				WithDescription("equity + tax savings"))
	}

	grid := components.MetricGrid(cards, 4)
	chart := renderWealthChart(bundle)
	notes := renderResultNotes(bundle)

	return lipgloss.JoinVertical(lipgloss.Left, grid, "", chart, "", notes)
}

// renderWealthChart plots buyer wealth against the renter's portfolio.
func renderWealthChart(bundle *domain.ResultsBundle) string {
	years := bundle.RentVsBuy.Years
	if len(years) < 2 {
		return ""
	}

	buyer := make([]float64, len(years))
	renter := make([]float64, len(years))
	for i, y := range years {
		buyer[i] = y.BuyerWealth.InexactFloat64()
		renter[i] = y.RenterPortfolio.InexactFloat64()
	}

	return components.NewWealthChart("Buy vs Rent, 10 Years").
		AddSeries("Buyer wealth", buyer, tuistyles.ColorChartLine1).
		AddSeries("Renter portfolio", renter, tuistyles.ColorChartLine2).
		Render()
}

func renderResultNotes(bundle *domain.ResultsBundle) string {
	var lines []string

	if bundle.RentVsBuy.BreakEvenYear > 0 {
		lines = append(lines, fmt.Sprintf("Buying beats renting from year %d.",
			bundle.RentVsBuy.BreakEvenYear))
	} else {
		lines = append(lines, "Renting stays ahead over the ten-year window.")
	}

	if bundle.TaxBenefits.ShouldItemize {
		lines = append(lines, fmt.Sprintf("Itemizing saves %s per year over the standard deduction.",
			FormatCurrency(bundle.TaxBenefits.TotalAnnualSavings)))
	} else {
		lines = append(lines, "The standard deduction beats itemizing for these inputs.")
	}

	if bundle.PMITimeline.HasPMI {
		lines = append(lines, fmt.Sprintf("PMI of %s/mo drops off automatically after %s.",
			FormatCurrency(bundle.PMITimeline.MonthlyPMI),
			bundle.PMITimeline.AutoRemovalYears))
	}

	if bundle.ExtraPayments.HasExtraPayments {
		lines = append(lines, fmt.Sprintf("Extra payments save %s in interest and %d months.",
			FormatCurrency(bundle.ExtraPayments.InterestSaved),
			bundle.ExtraPayments.MonthsSaved))
	}

	prefix := "Affordability"
	if bundle.Affordability.UsingFallback {
		prefix = "Affordability (median income)"
	}
	lines = append(lines, fmt.Sprintf("%s: max purchase price around %s at a 28%% front-end ratio.",
		prefix, FormatCurrency(bundle.Affordability.MaxPurchasePrice)))

	style := lipgloss.NewStyle().Foreground(ColorMuted)
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(style.Render("- " + line))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

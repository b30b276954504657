package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

// ComparisonResult represents a single scenario with its headline metrics
type ComparisonResult struct {
	ScenarioName string                `json:"scenarioName"`
	Description  string                `json:"description"`
	Bundle       *domain.ResultsBundle `json:"-"`

	// Key Metrics
	MonthlyPITI     decimal.Decimal `json:"monthlyPITI"`
	TrueMonthlyCost decimal.Decimal `json:"trueMonthlyCost"`
	CashToClose     decimal.Decimal `json:"cashToClose"`
	TenYearWealth   decimal.Decimal `json:"tenYearWealth"`
	TotalInterest   decimal.Decimal `json:"totalInterest"`
	PayoffMonths    int             `json:"payoffMonths"`
	BreakEvenYear   int             `json:"breakEvenYear"` // 0 = never within the horizon
	PMIMonths       int             `json:"pmiMonths"`     // 0 = no PMI

	// Comparison to Base
	PITIDiffFromBase     decimal.Decimal `json:"pitiDiffFromBase"`
	CashDiffFromBase     decimal.Decimal `json:"cashDiffFromBase"`
	WealthDiffFromBase   decimal.Decimal `json:"wealthDiffFromBase"`
	WealthPctFromBase    decimal.Decimal `json:"wealthPctFromBase"`
	InterestDiffFromBase decimal.Decimal `json:"interestDiffFromBase"`
	PayoffMonthsDiff     int             `json:"payoffMonthsDiff"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath"`
}

// MetricsCalculator extracts headline metrics from result bundles
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for a result bundle
func (mc *MetricsCalculator) CalculateMetrics(name string, bundle *domain.ResultsBundle) ComparisonResult {
	result := ComparisonResult{
		ScenarioName:    name,
		Bundle:          bundle,
		MonthlyPITI:     bundle.PITI.TotalPITI,
		TrueMonthlyCost: bundle.PITI.TrueMonthlyCost,
		CashToClose:     bundle.Upfront.TotalCashNeeded,
		TotalInterest:   bundle.ExtraPayments.NewTotalInterest,
		PayoffMonths:    bundle.ExtraPayments.NewMonths,
		BreakEvenYear:   bundle.RentVsBuy.BreakEvenYear,
	}

	if n := len(bundle.Schedule); n > 0 {
		result.TenYearWealth = bundle.Schedule[n-1].TotalWealthImpact
	}

	if bundle.PMITimeline.HasPMI {
		if bundle.PMITimeline.AutoRemovalMonth != nil {
			result.PMIMonths = *bundle.PMITimeline.AutoRemovalMonth
		} else {
			result.PMIMonths = bundle.Inputs.LoanTerm * 12
		}
	}

	return result
}

// CalculateComparison computes delta metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.PITIDiffFromBase = scenario.MonthlyPITI.Sub(base.MonthlyPITI)
	scenario.CashDiffFromBase = scenario.CashToClose.Sub(base.CashToClose)
	scenario.WealthDiffFromBase = scenario.TenYearWealth.Sub(base.TenYearWealth)

	if !base.TenYearWealth.IsZero() {
		scenario.WealthPctFromBase = scenario.WealthDiffFromBase.
			Div(base.TenYearWealth).
			Mul(decimal.NewFromInt(100))
	}

	scenario.InterestDiffFromBase = scenario.TotalInterest.Sub(base.TotalInterest)
	scenario.PayoffMonthsDiff = scenario.PayoffMonths - base.PayoffMonths

	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	// Find best scenario by ten-year wealth
	bestWealth := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.TenYearWealth.GreaterThan(bestWealth.TenYearWealth) {
			bestWealth = alt
		}
	}

	if bestWealth != compSet.BaseResult {
		wealthDiff := bestWealth.TenYearWealth.Sub(compSet.BaseResult.TenYearWealth)
		recommendations = append(recommendations,
			"Best Wealth: "+bestWealth.ScenarioName+" builds $"+wealthDiff.StringFixed(0)+
				" more ten-year wealth than the base scenario")
	}

	// Find cheapest monthly carry
	lowestPITI := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.MonthlyPITI.LessThan(lowestPITI.MonthlyPITI) {
			lowestPITI = alt
		}
	}

	if lowestPITI != compSet.BaseResult {
		pitiSavings := compSet.BaseResult.MonthlyPITI.Sub(lowestPITI.MonthlyPITI)
		recommendations = append(recommendations,
			"Lowest Payment: "+lowestPITI.ScenarioName+" cuts the monthly payment by $"+
				pitiSavings.StringFixed(0))
	}

	// Find fastest payoff
	fastestPayoff := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.PayoffMonths > 0 && (fastestPayoff.PayoffMonths == 0 || alt.PayoffMonths < fastestPayoff.PayoffMonths) {
			fastestPayoff = alt
		}
	}

	if fastestPayoff != compSet.BaseResult {
		monthsSaved := compSet.BaseResult.PayoffMonths - fastestPayoff.PayoffMonths
		if monthsSaved > 0 {
			interestSaved := compSet.BaseResult.TotalInterest.Sub(fastestPayoff.TotalInterest)
			recommendations = append(recommendations,
				"Fastest Payoff: "+fastestPayoff.ScenarioName+" retires the loan "+
					formatMonthsAsYears(monthsSaved)+" sooner and saves $"+interestSaved.StringFixed(0)+" in interest")
		}
	}

	return recommendations
}

func formatMonthsAsYears(months int) string {
	years := months / 12
	rem := months % 12
	switch {
	case years == 0:
		return plural(rem, "month")
	case rem == 0:
		return plural(years, "year")
	default:
		return plural(years, "year") + " " + plural(rem, "month")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

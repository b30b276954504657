package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

// GenerateConsoleReport renders the full sectioned analysis: payment
// breakdown, upfront costs, tax benefits, the ten-year wealth schedule,
// rent-versus-buy, extra payments, the PMI timeline and affordability.
func (rg *ReportGenerator) GenerateConsoleReport(bundle *domain.ResultsBundle) error {
	w := rg.Writer
	inputs := bundle.Inputs

	fmt.Fprintln(w, strings.Repeat("=", 81))
	fmt.Fprintln(w, "HOME PURCHASE ANALYSIS")
	fmt.Fprintln(w, strings.Repeat("=", 81))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Purchase Price:  %s  (%s, %s County)\n",
		FormatWholeCurrency(inputs.PurchasePrice), inputs.State, inputs.County)
	fmt.Fprintf(w, "Loan:            %s at %s%% for %d years",
		FormatWholeCurrency(bundle.PITI.LoanAmount), inputs.InterestRate.String(), inputs.LoanTerm)
	if inputs.LoanType.IsARM() {
		fmt.Fprintf(w, " (%s/1 ARM)", inputs.LoanType)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Down Payment:    %s (%s%%)\n",
		FormatWholeCurrency(bundle.PITI.DownPayment), bundle.EffectiveDownPaymentPercent.StringFixed(1))
	if bundle.PITI.EffectiveLumpSum.GreaterThan(decimal.Zero) {
		fmt.Fprintf(w, "Lump Sum:        %s applied at closing\n", FormatWholeCurrency(bundle.PITI.EffectiveLumpSum))
	}
	fmt.Fprintln(w)

	rg.writeMonthlyBreakdown(bundle)
	rg.writeUpfrontCosts(bundle)
	rg.writeTaxBenefits(bundle)
	rg.writeSchedule(bundle)
	rg.writeRentVsBuy(bundle)
	rg.writeExtraPayments(bundle)
	rg.writePMITimeline(bundle)
	rg.writeAffordability(bundle)

	return nil
}

func (rg *ReportGenerator) writeMonthlyBreakdown(bundle *domain.ResultsBundle) {
	w := rg.Writer
	piti := bundle.PITI

	fmt.Fprintln(w, "MONTHLY PAYMENT BREAKDOWN")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "  Principal & Interest:   %12s\n", FormatCurrency(piti.MonthlyPI))
	fmt.Fprintf(w, "  Property Tax:           %12s\n", FormatCurrency(piti.MonthlyPropertyTax))
	if piti.MonthlyMelloRoos.GreaterThan(decimal.Zero) {
		fmt.Fprintf(w, "  Mello-Roos:             %12s\n", FormatCurrency(piti.MonthlyMelloRoos))
	}
	fmt.Fprintf(w, "  Insurance:              %12s\n", FormatCurrency(piti.MonthlyInsurance))
	if piti.MonthlyPMI.GreaterThan(decimal.Zero) {
		fmt.Fprintf(w, "  PMI:                    %12s\n", FormatCurrency(piti.MonthlyPMI))
	}
	if piti.MonthlyHOA.GreaterThan(decimal.Zero) {
		fmt.Fprintf(w, "  HOA:                    %12s\n", FormatCurrency(piti.MonthlyHOA))
	}
	fmt.Fprintf(w, "  TOTAL PITI:             %12s\n", FormatCurrency(piti.TotalPITI))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Maintenance:            %12s\n", FormatCurrency(piti.MonthlyMaintenance))
	fmt.Fprintf(w, "  Utilities:              %12s\n", FormatCurrency(piti.MonthlyUtilities))
	fmt.Fprintf(w, "  TRUE MONTHLY COST:      %12s\n", FormatCurrency(piti.TrueMonthlyCost))
	fmt.Fprintln(w)
}

func (rg *ReportGenerator) writeUpfrontCosts(bundle *domain.ResultsBundle) {
	w := rg.Writer
	upfront := bundle.Upfront

	fmt.Fprintln(w, "UPFRONT COSTS")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	for _, item := range upfront.Items {
		fmt.Fprintf(w, "  %-26s %12s\n", item.Label+":", FormatCurrency(item.Amount))
	}
	fmt.Fprintf(w, "  %-26s %12s\n", "Total Closing Costs:", FormatCurrency(upfront.TotalClosingCosts))
	fmt.Fprintf(w, "  %-26s %12s\n", "Escrow Reserve (2 mo):", FormatCurrency(upfront.EscrowReserve))
	fmt.Fprintf(w, "  %-26s %12s\n", "Down Payment:", FormatCurrency(upfront.DownPayment))
	if upfront.LumpSum.GreaterThan(decimal.Zero) {
		fmt.Fprintf(w, "  %-26s %12s\n", "Lump Sum Payment:", FormatCurrency(upfront.LumpSum))
	}
	fmt.Fprintf(w, "  %-26s %12s\n", "TOTAL CASH NEEDED:", FormatCurrency(upfront.TotalCashNeeded))
	fmt.Fprintln(w)
}

func (rg *ReportGenerator) writeTaxBenefits(bundle *domain.ResultsBundle) {
	w := rg.Writer
	tb := bundle.TaxBenefits

	fmt.Fprintln(w, "TAX BENEFITS (YEAR 1)")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "  Deductible Interest:    %12s\n", FormatCurrency(tb.DeductibleInterest))
	fmt.Fprintf(w, "  Deductible SALT:        %12s  (cap %s)\n",
		FormatCurrency(tb.DeductibleSALT), FormatWholeCurrency(tb.SALTCap))
	fmt.Fprintf(w, "  Itemized w/ Home:       %12s\n", FormatCurrency(tb.ItemizedWithHome))
	fmt.Fprintf(w, "  Standard Deduction:     %12s\n", FormatCurrency(tb.StandardDeduction))
	if tb.ShouldItemize {
		fmt.Fprintln(w, "  Itemizing beats the standard deduction.")
		fmt.Fprintf(w, "  Federal Savings:        %12s\n", FormatCurrency(tb.FederalSavings))
		fmt.Fprintf(w, "  State Savings:          %12s\n", FormatCurrency(tb.StateSavings))
	} else {
		fmt.Fprintln(w, "  The standard deduction wins; no itemization benefit.")
	}
	if tb.HomesteadSavings.GreaterThan(decimal.Zero) {
		fmt.Fprintf(w, "  Homestead Savings:      %12s\n", FormatCurrency(tb.HomesteadSavings))
	}
	fmt.Fprintf(w, "  TOTAL ANNUAL SAVINGS:   %12s  (%s/month)\n",
		FormatCurrency(tb.TotalAnnualSavings), FormatCurrency(tb.MonthlySavings))
	fmt.Fprintln(w)
}

func (rg *ReportGenerator) writeSchedule(bundle *domain.ResultsBundle) {
	w := rg.Writer

	fmt.Fprintln(w, "10-YEAR WEALTH PROJECTION")
	fmt.Fprintln(w, strings.Repeat("-", 81))
	fmt.Fprintf(w, "%4s %7s %12s %12s %12s %14s %14s\n",
		"Year", "Rate", "Principal", "Interest", "Balance", "Total Equity", "Wealth Impact")
	for _, year := range bundle.Schedule {
		fmt.Fprintf(w, "%4d %6s%% %12s %12s %12s %14s %14s\n",
			year.Year,
			year.InterestRate.StringFixed(2),
			FormatWholeCurrency(year.PrincipalPaid),
			FormatWholeCurrency(year.InterestPaid),
			FormatWholeCurrency(year.RemainingBalance),
			FormatWholeCurrency(year.TotalEquity),
			FormatWholeCurrency(year.TotalWealthImpact))
	}
	fmt.Fprintln(w)
}

func (rg *ReportGenerator) writeRentVsBuy(bundle *domain.ResultsBundle) {
	w := rg.Writer
	rvb := bundle.RentVsBuy

	fmt.Fprintln(w, "RENT VS BUY")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	if rvb.BreakEvenYear > 0 {
		fmt.Fprintf(w, "  Buying pulls ahead of renting in year %d.\n", rvb.BreakEvenYear)
	} else {
		fmt.Fprintln(w, "  Renting stays ahead for the full ten-year horizon.")
	}
	if n := len(rvb.Years); n > 0 {
		last := rvb.Years[n-1]
		fmt.Fprintf(w, "  Year %d owner wealth:    %12s\n", last.Year, FormatWholeCurrency(last.BuyerWealth))
		fmt.Fprintf(w, "  Year %d renter wealth:   %12s\n", last.Year, FormatWholeCurrency(last.RenterPortfolio))
		fmt.Fprintf(w, "  Net buyer advantage:     %12s\n", FormatWholeCurrency(last.NetBuyerAdvantage))
	}
	fmt.Fprintln(w)
}

func (rg *ReportGenerator) writeExtraPayments(bundle *domain.ResultsBundle) {
	w := rg.Writer
	ep := bundle.ExtraPayments

	if !ep.HasExtraPayments {
		return
	}

	fmt.Fprintln(w, "EXTRA PAYMENTS")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "  Payoff:                 %d months instead of %d\n", ep.NewMonths, ep.OriginalMonths)
	fmt.Fprintf(w, "  Time Saved:             %d months\n", ep.MonthsSaved)
	fmt.Fprintf(w, "  Interest Saved:         %12s\n", FormatCurrency(ep.InterestSaved))
	fmt.Fprintln(w)
}

func (rg *ReportGenerator) writePMITimeline(bundle *domain.ResultsBundle) {
	w := rg.Writer
	pmi := bundle.PMITimeline

	if !pmi.HasPMI {
		return
	}

	fmt.Fprintln(w, "PMI TIMELINE")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "  Monthly PMI:            %12s\n", FormatCurrency(pmi.MonthlyPMI))
	fmt.Fprintf(w, "  Automatic Removal:      %s years (78%% of original value)\n", pmi.AutoRemovalYears)
	fmt.Fprintf(w, "  Removal by Request:     %s years (80%% of appraised value)\n", pmi.RequestRemovalYears)
	fmt.Fprintf(w, "  Total PMI Paid:         %12s\n", FormatCurrency(pmi.TotalPMIPaid))
	if pmi.SavedByRequesting.GreaterThan(decimal.Zero) {
		fmt.Fprintf(w, "  Saved by Requesting:    %12s\n", FormatCurrency(pmi.SavedByRequesting))
	}
	fmt.Fprintln(w)
}

func (rg *ReportGenerator) writeAffordability(bundle *domain.ResultsBundle) {
	w := rg.Writer
	aff := bundle.Affordability

	fmt.Fprintln(w, "AFFORDABILITY")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	if aff.UsingFallback {
		fmt.Fprintln(w, "  No household income set; using a $150,000 fallback income.")
	}
	fmt.Fprintf(w, "  Gross Monthly Income:   %12s\n", FormatCurrency(aff.GrossMonthly))
	fmt.Fprintf(w, "  Target Housing Budget:  %12s  (28%% front-end)\n", FormatCurrency(aff.TargetPITI))
	fmt.Fprintf(w, "  MAX PURCHASE PRICE:     %12s\n", FormatWholeCurrency(aff.MaxPurchasePrice))
	fmt.Fprintln(w)
}

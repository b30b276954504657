package domain

import (
	"github.com/shopspring/decimal"
)

// PITIResult is the monthly housing-cost breakdown for a snapshot.
type PITIResult struct {
	LoanAmount          decimal.Decimal `json:"loan_amount"`           // before lump sum
	EffectiveLoanAmount decimal.Decimal `json:"effective_loan_amount"` // after lump sum
	DownPayment         decimal.Decimal `json:"down_payment"`
	MonthlyPI           decimal.Decimal `json:"monthly_pi"`
	BaselineMonthlyPI   decimal.Decimal `json:"baseline_monthly_pi"`
	MonthlyPropertyTax  decimal.Decimal `json:"monthly_property_tax"`
	MonthlyMelloRoos    decimal.Decimal `json:"monthly_mello_roos"`
	MonthlyInsurance    decimal.Decimal `json:"monthly_insurance"`
	MonthlyPMI          decimal.Decimal `json:"monthly_pmi"`
	MonthlyHOA          decimal.Decimal `json:"monthly_hoa"`
	MonthlyMaintenance  decimal.Decimal `json:"monthly_maintenance"`
	MonthlyUtilities    decimal.Decimal `json:"monthly_utilities"`
	TotalPITI           decimal.Decimal `json:"total_piti"`
	TrueMonthlyCost     decimal.Decimal `json:"true_monthly_cost"`
	EffectiveLumpSum    decimal.Decimal `json:"effective_lump_sum"`
	DownPaymentPercent  decimal.Decimal `json:"down_payment_percent"`
}

// ClosingCostItem is one labelled line of the upfront-cost statement. Order
// matters for display, so items live in a slice rather than a map.
type ClosingCostItem struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// UpfrontCostsResult itemizes the cash needed to close.
type UpfrontCostsResult struct {
	Items             []ClosingCostItem `json:"items"`
	TotalClosingCosts decimal.Decimal   `json:"total_closing_costs"`
	EscrowReserve     decimal.Decimal   `json:"escrow_reserve"`
	DownPayment       decimal.Decimal   `json:"down_payment"`
	LumpSum           decimal.Decimal   `json:"lump_sum"`
	TotalCashNeeded   decimal.Decimal   `json:"total_cash_needed"`
}

// AmortizationYear is one annual row of the projection schedule.
type AmortizationYear struct {
	Year                 int             `json:"year"`
	InterestRate         decimal.Decimal `json:"interest_rate"` // rate in effect, %
	MonthlyPayment       decimal.Decimal `json:"monthly_payment"`
	PrincipalPaid        decimal.Decimal `json:"principal_paid"` // this year
	InterestPaid         decimal.Decimal `json:"interest_paid"`  // this year
	RemainingBalance     decimal.Decimal `json:"remaining_balance"`
	HomeValue            decimal.Decimal `json:"home_value"`
	EquityFromPayments   decimal.Decimal `json:"equity_from_payments"`
	AppreciationGain     decimal.Decimal `json:"appreciation_gain"`
	TotalEquity          decimal.Decimal `json:"total_equity"`
	TaxSavings           decimal.Decimal `json:"tax_savings"` // this year
	CumulativeTaxSavings decimal.Decimal `json:"cumulative_tax_savings"`
	TotalWealthImpact    decimal.Decimal `json:"total_wealth_impact"`
}

// TaxBenefitsResult is the year-one deduction and savings analysis.
type TaxBenefitsResult struct {
	DeductibleLoanAmount    decimal.Decimal `json:"deductible_loan_amount"`
	DeductibleInterest      decimal.Decimal `json:"deductible_interest"`
	AnnualPropertyTax       decimal.Decimal `json:"annual_property_tax"`
	TotalSALT               decimal.Decimal `json:"total_salt"`
	DeductibleSALT          decimal.Decimal `json:"deductible_salt"`
	DeductiblePropertyTax   decimal.Decimal `json:"deductible_property_tax"`
	DeductibleStateIncome   decimal.Decimal `json:"deductible_state_income"`
	SALTCap                 decimal.Decimal `json:"salt_cap"`
	ItemizedWithHome        decimal.Decimal `json:"itemized_with_home"`
	ItemizedWithoutHome     decimal.Decimal `json:"itemized_without_home"`
	StandardDeduction       decimal.Decimal `json:"standard_deduction"`
	ShouldItemize           bool            `json:"should_itemize"`
	WouldItemizeWithoutHome bool            `json:"would_itemize_without_home"`
	FederalSavings          decimal.Decimal `json:"federal_savings"`
	StateSavings            decimal.Decimal `json:"state_savings"`
	HomesteadSavings        decimal.Decimal `json:"homestead_savings"`
	TotalAnnualSavings      decimal.Decimal `json:"total_annual_savings"`
	MonthlySavings          decimal.Decimal `json:"monthly_savings"`
	FederalRate             decimal.Decimal `json:"federal_rate"` // as a decimal, e.g. 0.35
	StateRate               decimal.Decimal `json:"state_rate"`   // as a decimal
}

// AffordabilityResult reports the largest affordable purchase price under
// the front-end debt-to-income test.
type AffordabilityResult struct {
	MaxPurchasePrice decimal.Decimal `json:"max_purchase_price"`
	TargetPITI       decimal.Decimal `json:"target_piti"`
	GrossMonthly     decimal.Decimal `json:"gross_monthly"`
	UsingFallback    bool            `json:"using_fallback"`
}

// RentVsBuyYear compares owner and renter wealth at the end of one year.
type RentVsBuyYear struct {
	Year              int             `json:"year"`
	MonthlyRent       decimal.Decimal `json:"monthly_rent"`
	AnnualRentCost    decimal.Decimal `json:"annual_rent_cost"`
	AnnualBuyCost     decimal.Decimal `json:"annual_buy_cost"`
	CumulativeRent    decimal.Decimal `json:"cumulative_rent"`
	CumulativeBuy     decimal.Decimal `json:"cumulative_buy"`
	RenterPortfolio   decimal.Decimal `json:"renter_portfolio"`
	BuyerWealth       decimal.Decimal `json:"buyer_wealth"`
	NetBuyerAdvantage decimal.Decimal `json:"net_buyer_advantage"`
}

// RentVsBuyResult is the ten-year renting-versus-owning comparison.
// BreakEvenYear is 0 when owning never pulls ahead within the horizon.
type RentVsBuyResult struct {
	Years         []RentVsBuyYear `json:"years"`
	BreakEvenYear int             `json:"break_even_year"`
	TotalRentCost decimal.Decimal `json:"total_rent_cost"` // over the full horizon
	TotalBuyCost  decimal.Decimal `json:"total_buy_cost"`
}

// ExtraPaymentsResult quantifies the payoff acceleration from extra
// principal. With no extra payments the saved figures are zero and the two
// month counts agree.
type ExtraPaymentsResult struct {
	HasExtraPayments      bool            `json:"has_extra_payments"`
	InterestSaved         decimal.Decimal `json:"interest_saved"`
	MonthsSaved           int             `json:"months_saved"`
	OriginalMonths        int             `json:"original_months"`
	NewMonths             int             `json:"new_months"`
	OriginalTotalInterest decimal.Decimal `json:"original_total_interest"`
	NewTotalInterest      decimal.Decimal `json:"new_total_interest"`
}

// PMITimelineResult projects how long mortgage insurance stays on the loan.
// Removal months are nil when the threshold is never reached in 30 years;
// the year strings render "N/A" in that case.
type PMITimelineResult struct {
	HasPMI               bool            `json:"has_pmi"`
	MonthlyPMI           decimal.Decimal `json:"monthly_pmi"`
	AutoRemovalMonth     *int            `json:"auto_removal_month"`
	RequestRemovalMonth  *int            `json:"request_removal_month"`
	AutoRemovalYears     string          `json:"auto_removal_years"`
	RequestRemovalYears  string          `json:"request_removal_years"`
	TotalPMIPaid         decimal.Decimal `json:"total_pmi_paid"`
	SavedByRequesting    decimal.Decimal `json:"saved_by_requesting"`
}

// ResultsBundle is everything the pipeline derives from one snapshot.
type ResultsBundle struct {
	Inputs InputSnapshot `json:"inputs"`

	PITI          PITIResult           `json:"piti"`
	Upfront       UpfrontCostsResult   `json:"upfront"`
	TaxBenefits   TaxBenefitsResult    `json:"tax_benefits"`
	Schedule      []AmortizationYear   `json:"schedule"`
	Affordability AffordabilityResult  `json:"affordability"`
	RentVsBuy     RentVsBuyResult      `json:"rent_vs_buy"`
	ExtraPayments ExtraPaymentsResult  `json:"extra_payments"`
	PMITimeline   PMITimelineResult    `json:"pmi_timeline"`

	// Intermediate figures the tax analysis was built from, surfaced for
	// reporting.
	Year1Interest               decimal.Decimal `json:"year1_interest"`
	FederalTaxRate              decimal.Decimal `json:"federal_tax_rate"` // marginal, %
	StateTaxRate                decimal.Decimal `json:"state_tax_rate"`   // marginal, %
	StateIncomeTax              decimal.Decimal `json:"state_income_tax"` // estimated annual $
	EffectiveDownPaymentPercent decimal.Decimal `json:"effective_down_payment_percent"`
}

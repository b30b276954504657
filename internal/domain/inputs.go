package domain

import (
	"github.com/shopspring/decimal"
)

// FilingStatus identifies the federal/state filing status used for bracket
// and standard-deduction lookups.
type FilingStatus string

const (
	FilingSingle          FilingStatus = "single"
	FilingMarriedJointly  FilingStatus = "married_jointly"
	FilingHeadOfHousehold FilingStatus = "head_of_household"
)

// DownPaymentMode selects how the down payment is expressed: as a percentage
// of the purchase price or as a fixed dollar amount.
type DownPaymentMode string

const (
	DownPaymentPercent DownPaymentMode = "percent"
	DownPaymentAmount  DownPaymentMode = "amount"
)

// LoanType is either a fixed-rate loan or an ARM identified by its initial
// fixed-rate period in years ("3", "5", "7", "10").
type LoanType string

const (
	LoanFixed LoanType = "fixed"
	LoanARM3  LoanType = "3"
	LoanARM5  LoanType = "5"
	LoanARM7  LoanType = "7"
	LoanARM10 LoanType = "10"
)

// IsARM reports whether the loan reprices after an initial fixed period.
func (lt LoanType) IsARM() bool {
	return lt != LoanFixed && lt != ""
}

// FixedYears returns the length of the initial fixed-rate period. For a
// fixed-rate loan the whole term is fixed, so the caller's term applies.
func (lt LoanType) FixedYears(loanTerm int) int {
	switch lt {
	case LoanARM3:
		return 3
	case LoanARM5:
		return 5
	case LoanARM7:
		return 7
	case LoanARM10:
		return 10
	default:
		return loanTerm
	}
}

// PersonCompensation captures one earner's pay structure. The recompute core
// only consumes the aggregate annual income, but the full structure is kept
// so scenario files round-trip and budgeting surfaces can use it.
type PersonCompensation struct {
	BaseSalary           decimal.Decimal `yaml:"base_salary" json:"base_salary"`
	AnnualBonus          decimal.Decimal `yaml:"annual_bonus" json:"annual_bonus"`
	AnnualRSU            decimal.Decimal `yaml:"annual_rsu" json:"annual_rsu"`
	Retirement401kPct    decimal.Decimal `yaml:"retirement_401k_pct" json:"retirement_401k_pct"`
	PreTaxDeductions     decimal.Decimal `yaml:"pre_tax_deductions" json:"pre_tax_deductions"` // monthly $
}

// TotalAnnualCompensation sums salary, bonus and RSU income.
func (pc PersonCompensation) TotalAnnualCompensation() decimal.Decimal {
	return pc.BaseSalary.Add(pc.AnnualBonus).Add(pc.AnnualRSU)
}

// MonthlyExpenses is the household's non-housing monthly budget.
type MonthlyExpenses struct {
	Car           decimal.Decimal `yaml:"car" json:"car"`
	Gas           decimal.Decimal `yaml:"gas" json:"gas"`
	CarInsurance  decimal.Decimal `yaml:"car_insurance" json:"car_insurance"`
	Health        decimal.Decimal `yaml:"health" json:"health"`
	Food          decimal.Decimal `yaml:"food" json:"food"`
	Dining        decimal.Decimal `yaml:"dining" json:"dining"`
	Phone         decimal.Decimal `yaml:"phone" json:"phone"`
	Subscriptions decimal.Decimal `yaml:"subscriptions" json:"subscriptions"`
	Childcare     decimal.Decimal `yaml:"childcare" json:"childcare"`
	StudentLoans  decimal.Decimal `yaml:"student_loans" json:"student_loans"`
	CreditCards   decimal.Decimal `yaml:"credit_cards" json:"credit_cards"`
	OtherDebt     decimal.Decimal `yaml:"other_debt" json:"other_debt"`
	Shopping      decimal.Decimal `yaml:"shopping" json:"shopping"`
	Entertainment decimal.Decimal `yaml:"entertainment" json:"entertainment"`
	Medical       decimal.Decimal `yaml:"medical" json:"medical"`
	Pets          decimal.Decimal `yaml:"pets" json:"pets"`
	Savings       decimal.Decimal `yaml:"savings" json:"savings"`
	Other         decimal.Decimal `yaml:"other" json:"other"`
}

// Total sums every expense category.
func (me MonthlyExpenses) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range []decimal.Decimal{
		me.Car, me.Gas, me.CarInsurance, me.Health, me.Food, me.Dining,
		me.Phone, me.Subscriptions, me.Childcare, me.StudentLoans,
		me.CreditCards, me.OtherDebt, me.Shopping, me.Entertainment,
		me.Medical, me.Pets, me.Savings, me.Other,
	} {
		total = total.Add(v)
	}
	return total
}

// InputSnapshot is the complete set of user-adjustable parameters. Every
// derived figure in a ResultsBundle is a pure function of one snapshot; the
// engine never mutates it.
//
// Rate fields carry percentages, not decimals: an InterestRate of 6.5 means
// 6.5% per year. This matches the snapshot's external contract and must not
// be "fixed" silently.
type InputSnapshot struct {
	// Location
	State  string `yaml:"state" json:"state"`   // two-letter code, e.g. "CA"
	County string `yaml:"county" json:"county"` // county name within State

	// Core mortgage
	PurchasePrice      decimal.Decimal `yaml:"purchase_price" json:"purchase_price"`
	DownPaymentMode    DownPaymentMode `yaml:"down_payment_mode" json:"down_payment_mode"`
	DownPaymentPercent decimal.Decimal `yaml:"down_payment_percent" json:"down_payment_percent"`
	DownPaymentAmount  decimal.Decimal `yaml:"down_payment_amount" json:"down_payment_amount"`
	InterestRate       decimal.Decimal `yaml:"interest_rate" json:"interest_rate"`
	LoanTerm           int             `yaml:"loan_term" json:"loan_term"` // years
	LoanType           LoanType        `yaml:"loan_type" json:"loan_type"`
	ARMAdjustment      decimal.Decimal `yaml:"arm_adjustment" json:"arm_adjustment"` // rate bump per adjustment, %
	ARMCap             decimal.Decimal `yaml:"arm_cap" json:"arm_cap"`               // lifetime rate ceiling, %

	// Property costs
	PropertyTaxRate decimal.Decimal `yaml:"property_tax_rate" json:"property_tax_rate"` // annual %
	MelloRoos       decimal.Decimal `yaml:"mello_roos" json:"mello_roos"`               // annual $
	Insurance       decimal.Decimal `yaml:"insurance" json:"insurance"`                 // annual $
	HOA             decimal.Decimal `yaml:"hoa" json:"hoa"`                             // monthly $
	PMIRate         decimal.Decimal `yaml:"pmi_rate" json:"pmi_rate"`                   // annual %
	Maintenance     decimal.Decimal `yaml:"maintenance" json:"maintenance"`             // annual % of price
	Utilities       decimal.Decimal `yaml:"utilities" json:"utilities"`                 // monthly $

	// Tax
	TaxYear      int             `yaml:"tax_year" json:"tax_year"`
	FilingStatus FilingStatus    `yaml:"filing_status" json:"filing_status"`
	AnnualIncome decimal.Decimal `yaml:"annual_income" json:"annual_income"`

	// Financial
	Appreciation decimal.Decimal `yaml:"appreciation" json:"appreciation"` // annual %
	ExtraMonthly decimal.Decimal `yaml:"extra_monthly" json:"extra_monthly"`
	LumpSum      decimal.Decimal `yaml:"lump_sum" json:"lump_sum"`

	// Household
	Person1 PersonCompensation `yaml:"person1" json:"person1"`
	Person2 PersonCompensation `yaml:"person2" json:"person2"`

	MonthlyTakeHome  decimal.Decimal `yaml:"monthly_take_home" json:"monthly_take_home"`
	OtherIncome      decimal.Decimal `yaml:"other_income" json:"other_income"`
	OverrideTakeHome bool            `yaml:"override_take_home" json:"override_take_home"`

	Expenses MonthlyExpenses `yaml:"expenses" json:"expenses"`

	// Rent vs buy
	RentAmount   decimal.Decimal `yaml:"rent_amount" json:"rent_amount"`     // monthly $
	RentIncrease decimal.Decimal `yaml:"rent_increase" json:"rent_increase"` // annual %
	InvestReturn decimal.Decimal `yaml:"invest_return" json:"invest_return"` // annual %
}

// EffectiveDownPaymentPercent resolves the down-payment mode to a percentage
// of the purchase price. In amount mode with a zero price it returns zero.
func (s *InputSnapshot) EffectiveDownPaymentPercent() decimal.Decimal {
	if s.DownPaymentMode == DownPaymentAmount {
		if s.PurchasePrice.GreaterThan(decimal.Zero) {
			return s.DownPaymentAmount.Div(s.PurchasePrice).Mul(decimal.NewFromInt(100))
		}
		return decimal.Zero
	}
	return s.DownPaymentPercent
}

// DefaultInputs returns the snapshot every session starts from: an $800k
// California purchase at 20% down, 6.5% for 30 years.
func DefaultInputs() InputSnapshot {
	return InputSnapshot{
		State:              "CA",
		County:             "Santa Clara",
		PurchasePrice:      decimal.NewFromInt(800000),
		DownPaymentMode:    DownPaymentPercent,
		DownPaymentPercent: decimal.NewFromInt(20),
		DownPaymentAmount:  decimal.NewFromInt(160000),
		InterestRate:       decimal.NewFromFloat(6.5),
		LoanTerm:           30,
		LoanType:           LoanFixed,
		ARMAdjustment:      decimal.NewFromFloat(0.25),
		ARMCap:             decimal.NewFromInt(11),
		PropertyTaxRate:    decimal.NewFromFloat(1.1),
		MelloRoos:          decimal.Zero,
		Insurance:          decimal.NewFromInt(2400),
		HOA:                decimal.Zero,
		PMIRate:            decimal.NewFromFloat(0.5),
		Maintenance:        decimal.NewFromInt(1),
		Utilities:          decimal.NewFromInt(300),
		TaxYear:            2025,
		FilingStatus:       FilingMarriedJointly,
		AnnualIncome:       decimal.NewFromInt(480000),
		Appreciation:       decimal.NewFromInt(3),
		ExtraMonthly:       decimal.Zero,
		LumpSum:            decimal.Zero,
		Person1: PersonCompensation{
			BaseSalary:        decimal.NewFromInt(200000),
			AnnualBonus:       decimal.NewFromInt(30000),
			AnnualRSU:         decimal.NewFromInt(50000),
			Retirement401kPct: decimal.NewFromInt(6),
			PreTaxDeductions:  decimal.NewFromInt(500),
		},
		Person2: PersonCompensation{
			BaseSalary:        decimal.NewFromInt(150000),
			AnnualBonus:       decimal.NewFromInt(20000),
			AnnualRSU:         decimal.NewFromInt(30000),
			Retirement401kPct: decimal.NewFromInt(6),
			PreTaxDeductions:  decimal.NewFromInt(300),
		},
		MonthlyTakeHome: decimal.NewFromInt(20000),
		Expenses: MonthlyExpenses{
			Car:           decimal.NewFromInt(500),
			Gas:           decimal.NewFromInt(300),
			CarInsurance:  decimal.NewFromInt(200),
			Health:        decimal.NewFromInt(400),
			Food:          decimal.NewFromInt(800),
			Dining:        decimal.NewFromInt(400),
			Phone:         decimal.NewFromInt(150),
			Subscriptions: decimal.NewFromInt(100),
			Shopping:      decimal.NewFromInt(300),
			Entertainment: decimal.NewFromInt(200),
			Medical:       decimal.NewFromInt(100),
			Savings:       decimal.NewFromInt(1000),
			Other:         decimal.NewFromInt(200),
		},
		RentAmount:   decimal.NewFromInt(3000),
		RentIncrease: decimal.NewFromInt(3),
		InvestReturn: decimal.NewFromInt(7),
	}
}

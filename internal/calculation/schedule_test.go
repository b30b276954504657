package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

func fixedScheduleInput() ScheduleInput {
	loan := decimal.NewFromInt(640000)
	rate := decimal.NewFromFloat(6.5)
	return ScheduleInput{
		PurchasePrice:       decimal.NewFromInt(800000),
		EffectiveLoanAmount: loan,
		EffectiveLumpSum:    decimal.Zero,
		DownPayment:         decimal.NewFromInt(160000),
		InterestRate:        rate,
		LoanTerm:            30,
		Appreciation:        decimal.NewFromInt(3),
		ExtraMonthly:        decimal.Zero,
		MonthlyPI:           MonthlyPayment(loan, rate, 30),
		LoanType:            domain.LoanFixed,
		DeductibleLoan:      decimal.NewFromInt(640000),
		DeductibleSALT:      decimal.NewFromInt(38800),
		StandardDeduction:   decimal.NewFromInt(31500),
		ItemizedWithoutHome: decimal.NewFromInt(30000),
		FederalRate:         decimal.NewFromFloat(0.32),
		StateRate:           decimal.NewFromFloat(0.093),
	}
}

func TestGenerateSchedule_TenYears(t *testing.T) {
	schedule := GenerateSchedule(fixedScheduleInput())

	require.Len(t, schedule, 10)
	for i, year := range schedule {
		assert.Equal(t, i+1, year.Year)
	}
}

func TestGenerateSchedule_BalanceDeclines(t *testing.T) {
	schedule := GenerateSchedule(fixedScheduleInput())

	prev := decimal.NewFromInt(640000)
	for _, year := range schedule {
		assert.True(t, year.RemainingBalance.LessThan(prev),
			"Balance should shrink every year, year %d", year.Year)
		prev = year.RemainingBalance
	}
}

func TestGenerateSchedule_EquityComposition(t *testing.T) {
	in := fixedScheduleInput()
	schedule := GenerateSchedule(in)

	for _, year := range schedule {
		expected := in.DownPayment.Add(year.EquityFromPayments).Add(year.AppreciationGain)
		assert.True(t, year.TotalEquity.Equal(expected),
			"Equity should be down payment + principal paid + appreciation, year %d", year.Year)
		assert.True(t, year.TotalWealthImpact.Equal(year.TotalEquity.Add(year.CumulativeTaxSavings)))
	}
}

func TestGenerateSchedule_HomeValueAppreciates(t *testing.T) {
	schedule := GenerateSchedule(fixedScheduleInput())

	assert.InDelta(t, 824000.0, schedule[0].HomeValue.InexactFloat64(), 0.01, "3%% on 800k after one year")
	assert.InDelta(t, 848720.0, schedule[1].HomeValue.InexactFloat64(), 0.01)
}

func TestGenerateSchedule_FixedRateNeverMoves(t *testing.T) {
	schedule := GenerateSchedule(fixedScheduleInput())

	for _, year := range schedule {
		assert.True(t, year.InterestRate.Equal(decimal.NewFromFloat(6.5)))
	}
}

func TestGenerateSchedule_ARMAdjustsAfterFixedPeriod(t *testing.T) {
	in := fixedScheduleInput()
	in.LoanType = domain.LoanARM5
	in.ARMAdjustment = decimal.NewFromFloat(0.25)
	in.ARMCap = decimal.NewFromInt(11)

	schedule := GenerateSchedule(in)

	for _, year := range schedule[:5] {
		assert.True(t, year.InterestRate.Equal(decimal.NewFromFloat(6.5)),
			"Rate holds through the fixed period, year %d", year.Year)
	}
	assert.True(t, schedule[5].InterestRate.Equal(decimal.NewFromFloat(6.75)), "First adjustment in year 6")
	assert.True(t, schedule[6].InterestRate.Equal(decimal.NewFromInt(7)))
	assert.True(t, schedule[9].InterestRate.Equal(decimal.NewFromFloat(7.75)))
}

func TestGenerateSchedule_ARMCapBindsRate(t *testing.T) {
	in := fixedScheduleInput()
	in.LoanType = domain.LoanARM3
	in.ARMAdjustment = decimal.NewFromInt(2)
	in.ARMCap = decimal.NewFromInt(9)

	schedule := GenerateSchedule(in)

	assert.True(t, schedule[3].InterestRate.Equal(decimal.NewFromFloat(8.5)), "6.5 + 2 in year 4")
	assert.True(t, schedule[4].InterestRate.Equal(decimal.NewFromInt(9)), "Capped in year 5")
	assert.True(t, schedule[9].InterestRate.Equal(decimal.NewFromInt(9)), "Stays at the cap")
}

func TestGenerateSchedule_ExtraPaymentsShrinkBalanceFaster(t *testing.T) {
	in := fixedScheduleInput()
	without := GenerateSchedule(in)

	in.ExtraMonthly = decimal.NewFromInt(1000)
	with := GenerateSchedule(in)

	assert.True(t, with[9].RemainingBalance.LessThan(without[9].RemainingBalance))
	assert.True(t, with[0].MonthlyPayment.Equal(without[0].MonthlyPayment.Add(decimal.NewFromInt(1000))),
		"Reported payment includes the extra principal")
}

func TestGenerateSchedule_TaxSavingsAccumulate(t *testing.T) {
	schedule := GenerateSchedule(fixedScheduleInput())

	running := decimal.Zero
	for _, year := range schedule {
		running = running.Add(year.TaxSavings)
		assert.True(t, year.CumulativeTaxSavings.Equal(running),
			"Cumulative savings should be the running sum, year %d", year.Year)
	}
	assert.True(t, schedule[0].TaxSavings.GreaterThan(decimal.Zero),
		"Year one itemizes with 640k of interest-bearing loan")
}

func TestYear1Interest_StandardLoan(t *testing.T) {
	loan := decimal.NewFromInt(640000)
	rate := decimal.NewFromFloat(6.5)
	interest := Year1Interest(loan, rate, MonthlyPayment(loan, rate, 30), decimal.Zero)

	assert.InDelta(t, 41390.0, interest.InexactFloat64(), 100.0,
		"First-year interest on 640k at 6.5%% is a bit over 41k")
}

func TestYear1Interest_ZeroBalance(t *testing.T) {
	interest := Year1Interest(decimal.Zero, decimal.NewFromFloat(6.5), decimal.Zero, decimal.Zero)

	assert.True(t, interest.IsZero())
}

func TestYear1Interest_ExtraPaymentsReduceInterest(t *testing.T) {
	loan := decimal.NewFromInt(640000)
	rate := decimal.NewFromFloat(6.5)
	pi := MonthlyPayment(loan, rate, 30)

	without := Year1Interest(loan, rate, pi, decimal.Zero)
	with := Year1Interest(loan, rate, pi, decimal.NewFromInt(2000))

	assert.True(t, with.LessThan(without))
}

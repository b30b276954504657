package calculation

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

// TestLogger records formatted messages so tests can verify logging behavior.
type TestLogger struct {
	Messages []string
}

func (l *TestLogger) Debugf(format string, args ...any) {
	l.Messages = append(l.Messages, fmt.Sprintf(format, args...))
}
func (l *TestLogger) Infof(format string, args ...any) {
	l.Messages = append(l.Messages, fmt.Sprintf(format, args...))
}
func (l *TestLogger) Warnf(format string, args ...any) {
	l.Messages = append(l.Messages, fmt.Sprintf(format, args...))
}
func (l *TestLogger) Errorf(format string, args ...any) {
	l.Messages = append(l.Messages, fmt.Sprintf(format, args...))
}

func TestNewEngine(t *testing.T) {
	engine := NewEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should default to no-op logger")
}

func TestEngine_SetLogger(t *testing.T) {
	engine := NewEngine()

	// Test setting a custom logger
	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)

	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	// Test setting nil logger (should use no-op logger)
	engine.SetLogger(nil)

	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestEngine_Recalculate_DefaultInputs(t *testing.T) {
	engine := NewEngine()
	results := engine.Recalculate(domain.DefaultInputs())

	require.NotNil(t, results)

	assert.True(t, results.PITI.LoanAmount.Equal(decimal.NewFromInt(640000)),
		"800k at 20%% down borrows 640k")
	assert.InDelta(t, 4045.24, results.PITI.MonthlyPI.InexactFloat64(), 1.0)
	assert.True(t, results.PITI.MonthlyPMI.IsZero(), "20%% down carries no PMI")

	assert.Len(t, results.Schedule, 10)
	assert.Len(t, results.RentVsBuy.Years, 10)

	assert.True(t, results.Upfront.TotalCashNeeded.GreaterThan(results.PITI.DownPayment),
		"Cash to close exceeds the bare down payment")

	assert.InDelta(t, 41390.0, results.Year1Interest.InexactFloat64(), 100.0)

	assert.True(t, results.FederalTaxRate.Equal(decimal.NewFromInt(32)),
		"480k joint lands in the 32%% federal bracket for 2025")
	assert.True(t, results.StateTaxRate.GreaterThan(decimal.NewFromInt(9)),
		"California at 480k is in a 9%%+ bracket")
	assert.True(t, results.StateIncomeTax.GreaterThan(decimal.Zero))

	assert.True(t, results.TaxBenefits.ShouldItemize,
		"Big mortgage interest plus California SALT should beat the standard deduction")

	assert.True(t, results.Affordability.MaxPurchasePrice.GreaterThan(decimal.Zero))
	assert.False(t, results.PMITimeline.HasPMI)
	assert.False(t, results.ExtraPayments.HasExtraPayments)

	assert.InDelta(t, 20.0, results.EffectiveDownPaymentPercent.InexactFloat64(), 0.001)
}

func TestEngine_Recalculate_Deterministic(t *testing.T) {
	engine := NewEngine()
	inputs := domain.DefaultInputs()

	first := engine.Recalculate(inputs)
	second := engine.Recalculate(inputs)

	assert.Equal(t, first, second, "Same snapshot should always produce the same bundle")
}

func TestEngine_Recalculate_AmountModeDownPayment(t *testing.T) {
	engine := NewEngine()
	inputs := domain.DefaultInputs()
	inputs.DownPaymentMode = domain.DownPaymentAmount
	inputs.DownPaymentAmount = decimal.NewFromInt(80000)

	results := engine.Recalculate(inputs)

	assert.InDelta(t, 10.0, results.EffectiveDownPaymentPercent.InexactFloat64(), 0.001)
	assert.True(t, results.PITI.LoanAmount.Equal(decimal.NewFromInt(720000)))
	assert.True(t, results.PITI.MonthlyPMI.GreaterThan(decimal.Zero), "Under 20%% down carries PMI")
	assert.True(t, results.PMITimeline.HasPMI)
}

func TestEngine_Recalculate_LumpSumFlowsThroughPipeline(t *testing.T) {
	engine := NewEngine()
	inputs := domain.DefaultInputs()
	inputs.LumpSum = decimal.NewFromInt(50000)

	results := engine.Recalculate(inputs)

	assert.True(t, results.PITI.EffectiveLoanAmount.Equal(decimal.NewFromInt(590000)))
	assert.True(t, results.PITI.MonthlyPI.LessThan(results.PITI.BaselineMonthlyPI),
		"Reduced loan pays less than the baseline")
	assert.True(t, results.ExtraPayments.HasExtraPayments)
	assert.True(t, results.Upfront.TotalCashNeeded.GreaterThan(decimal.NewFromInt(210000)),
		"Cash to close includes the lump sum on top of down payment and closing costs")
}

func TestEngine_Recalculate_ARMInputs(t *testing.T) {
	engine := NewEngine()
	inputs := domain.DefaultInputs()
	inputs.LoanType = domain.LoanARM5

	results := engine.Recalculate(inputs)

	assert.True(t, results.Schedule[5].InterestRate.GreaterThan(results.Schedule[4].InterestRate),
		"Rate steps up once the fixed period ends")
}

func TestEngine_Recalculate_DebugLogging(t *testing.T) {
	logger := &TestLogger{}
	engine := NewEngineWithLogger(logger)

	engine.Recalculate(domain.DefaultInputs())

	assert.NotEmpty(t, logger.Messages, "Pipeline should report progress to the logger")
}

func TestEngine_Recalculate_ZeroTaxYearDefaults(t *testing.T) {
	engine := NewEngine()
	inputs := domain.DefaultInputs()
	inputs.TaxYear = 0

	withDefault := engine.Recalculate(inputs)

	inputs.TaxYear = 2025
	with2025 := engine.Recalculate(inputs)

	assert.True(t, withDefault.FederalTaxRate.Equal(with2025.FederalTaxRate),
		"Unset year should fall back to the current tax year")
	assert.True(t, withDefault.TaxBenefits.TotalAnnualSavings.Equal(with2025.TaxBenefits.TotalAnnualSavings))
}

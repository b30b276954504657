package transform

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

// SetPurchasePrice replaces the purchase price.
type SetPurchasePrice struct {
	Price decimal.Decimal
}

func (t *SetPurchasePrice) Name() string { return "set_price" }

func (t *SetPurchasePrice) Description() string {
	return fmt.Sprintf("Set purchase price to $%s", t.Price.StringFixed(0))
}

func (t *SetPurchasePrice) Validate(_ *domain.InputSnapshot) error {
	if t.Price.LessThanOrEqual(decimal.Zero) {
		return NewTransformError(t.Name(), "validate", "price must be positive", nil)
	}
	return nil
}

func (t *SetPurchasePrice) Apply(base *domain.InputSnapshot) (*domain.InputSnapshot, error) {
	modified := *base
	modified.PurchasePrice = t.Price
	return &modified, nil
}

// ScalePurchasePrice multiplies the purchase price by a factor, rounded to
// the nearest thousand. A factor of 0.9 prices a 10% cheaper house.
type ScalePurchasePrice struct {
	Factor decimal.Decimal
}

func (t *ScalePurchasePrice) Name() string { return "scale_price" }

func (t *ScalePurchasePrice) Description() string {
	pct := t.Factor.Mul(decimal.NewFromInt(100))
	return fmt.Sprintf("Scale purchase price to %s%% of the base", pct.StringFixed(0))
}

func (t *ScalePurchasePrice) Validate(_ *domain.InputSnapshot) error {
	if t.Factor.LessThanOrEqual(decimal.Zero) {
		return NewTransformError(t.Name(), "validate", "factor must be positive", nil)
	}
	return nil
}

func (t *ScalePurchasePrice) Apply(base *domain.InputSnapshot) (*domain.InputSnapshot, error) {
	modified := *base
	thousand := decimal.NewFromInt(1000)
	modified.PurchasePrice = base.PurchasePrice.Mul(t.Factor).Div(thousand).Round(0).Mul(thousand)
	return &modified, nil
}

// AdjustRate shifts the interest rate by a percentage-point delta.
type AdjustRate struct {
	Delta decimal.Decimal
}

func (t *AdjustRate) Name() string { return "adjust_rate" }

func (t *AdjustRate) Description() string {
	if t.Delta.IsNegative() {
		return fmt.Sprintf("Lower the rate by %s points", t.Delta.Abs().String())
	}
	return fmt.Sprintf("Raise the rate by %s points", t.Delta.String())
}

func (t *AdjustRate) Validate(base *domain.InputSnapshot) error {
	if base.InterestRate.Add(t.Delta).IsNegative() {
		return NewTransformError(t.Name(), "validate", "adjusted rate would be negative", nil)
	}
	return nil
}

func (t *AdjustRate) Apply(base *domain.InputSnapshot) (*domain.InputSnapshot, error) {
	modified := *base
	modified.InterestRate = base.InterestRate.Add(t.Delta)
	return &modified, nil
}

// SetDownPayment sets the down payment in percent mode.
type SetDownPayment struct {
	Percent decimal.Decimal
}

func (t *SetDownPayment) Name() string { return "set_down_payment" }

func (t *SetDownPayment) Description() string {
	return fmt.Sprintf("Put %s%% down", t.Percent.String())
}

func (t *SetDownPayment) Validate(_ *domain.InputSnapshot) error {
	if t.Percent.IsNegative() || t.Percent.GreaterThan(decimal.NewFromInt(100)) {
		return NewTransformError(t.Name(), "validate", "percent must be between 0 and 100", nil)
	}
	return nil
}

func (t *SetDownPayment) Apply(base *domain.InputSnapshot) (*domain.InputSnapshot, error) {
	modified := *base
	modified.DownPaymentMode = domain.DownPaymentPercent
	modified.DownPaymentPercent = t.Percent
	return &modified, nil
}

// SetDownPaymentAmount sets the down payment as a fixed dollar amount.
type SetDownPaymentAmount struct {
	Amount decimal.Decimal
}

func (t *SetDownPaymentAmount) Name() string { return "set_down_payment_amount" }

func (t *SetDownPaymentAmount) Description() string {
	return fmt.Sprintf("Put $%s down", t.Amount.StringFixed(0))
}

func (t *SetDownPaymentAmount) Validate(base *domain.InputSnapshot) error {
	if t.Amount.IsNegative() {
		return NewTransformError(t.Name(), "validate", "amount cannot be negative", nil)
	}
	if t.Amount.GreaterThan(base.PurchasePrice) {
		return NewTransformError(t.Name(), "validate", "amount exceeds the purchase price", nil)
	}
	return nil
}

func (t *SetDownPaymentAmount) Apply(base *domain.InputSnapshot) (*domain.InputSnapshot, error) {
	modified := *base
	modified.DownPaymentMode = domain.DownPaymentAmount
	modified.DownPaymentAmount = t.Amount
	return &modified, nil
}

// SetExtraMonthly sets the recurring extra principal payment.
type SetExtraMonthly struct {
	Amount decimal.Decimal
}

func (t *SetExtraMonthly) Name() string { return "set_extra_monthly" }

func (t *SetExtraMonthly) Description() string {
	return fmt.Sprintf("Pay an extra $%s toward principal each month", t.Amount.StringFixed(0))
}

func (t *SetExtraMonthly) Validate(_ *domain.InputSnapshot) error {
	if t.Amount.IsNegative() {
		return NewTransformError(t.Name(), "validate", "amount cannot be negative", nil)
	}
	return nil
}

func (t *SetExtraMonthly) Apply(base *domain.InputSnapshot) (*domain.InputSnapshot, error) {
	modified := *base
	modified.ExtraMonthly = t.Amount
	return &modified, nil
}

// SetLumpSum sets the one-time extra principal payment made at closing.
type SetLumpSum struct {
	Amount decimal.Decimal
}

func (t *SetLumpSum) Name() string { return "set_lump_sum" }

func (t *SetLumpSum) Description() string {
	return fmt.Sprintf("Apply a one-time $%s principal payment", t.Amount.StringFixed(0))
}

func (t *SetLumpSum) Validate(_ *domain.InputSnapshot) error {
	if t.Amount.IsNegative() {
		return NewTransformError(t.Name(), "validate", "amount cannot be negative", nil)
	}
	return nil
}

func (t *SetLumpSum) Apply(base *domain.InputSnapshot) (*domain.InputSnapshot, error) {
	modified := *base
	modified.LumpSum = t.Amount
	return &modified, nil
}

// SetLoanType switches between fixed and ARM loans, optionally adjusting the
// per-period bump and lifetime cap.
type SetLoanType struct {
	LoanType      domain.LoanType
	ARMAdjustment decimal.Decimal // ignored when zero
	ARMCap        decimal.Decimal // ignored when zero
}

func (t *SetLoanType) Name() string { return "set_loan_type" }

func (t *SetLoanType) Description() string {
	if t.LoanType.IsARM() {
		return fmt.Sprintf("Switch to a %s/1 ARM", t.LoanType)
	}
	return "Switch to a fixed-rate loan"
}

func (t *SetLoanType) Validate(_ *domain.InputSnapshot) error {
	switch t.LoanType {
	case domain.LoanFixed, domain.LoanARM3, domain.LoanARM5, domain.LoanARM7, domain.LoanARM10:
		return nil
	}
	return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown loan type %q", t.LoanType), nil)
}

func (t *SetLoanType) Apply(base *domain.InputSnapshot) (*domain.InputSnapshot, error) {
	modified := *base
	modified.LoanType = t.LoanType
	if !t.ARMAdjustment.IsZero() {
		modified.ARMAdjustment = t.ARMAdjustment
	}
	if !t.ARMCap.IsZero() {
		modified.ARMCap = t.ARMCap
	}
	return &modified, nil
}

// SetLocation moves the purchase to another state and county.
type SetLocation struct {
	State  string
	County string
}

func (t *SetLocation) Name() string { return "set_location" }

func (t *SetLocation) Description() string {
	if t.County != "" {
		return fmt.Sprintf("Move the purchase to %s County, %s", t.County, t.State)
	}
	return fmt.Sprintf("Move the purchase to %s", t.State)
}

func (t *SetLocation) Validate(_ *domain.InputSnapshot) error {
	if t.State == "" {
		return NewTransformError(t.Name(), "validate", "state is required", nil)
	}
	return nil
}

func (t *SetLocation) Apply(base *domain.InputSnapshot) (*domain.InputSnapshot, error) {
	modified := *base
	modified.State = t.State
	modified.County = t.County
	return &modified, nil
}

// SetRent sets the comparison rent for the rent-versus-buy race.
type SetRent struct {
	Monthly decimal.Decimal
}

func (t *SetRent) Name() string { return "set_rent" }

func (t *SetRent) Description() string {
	return fmt.Sprintf("Compare against $%s/month rent", t.Monthly.StringFixed(0))
}

func (t *SetRent) Validate(_ *domain.InputSnapshot) error {
	if t.Monthly.IsNegative() {
		return NewTransformError(t.Name(), "validate", "rent cannot be negative", nil)
	}
	return nil
}

func (t *SetRent) Apply(base *domain.InputSnapshot) (*domain.InputSnapshot, error) {
	modified := *base
	modified.RentAmount = t.Monthly
	return &modified, nil
}

// Reset discards every adjustment and returns the default snapshot.
type Reset struct{}

func (t *Reset) Name() string { return "reset" }

func (t *Reset) Description() string { return "Reset every parameter to its default" }

func (t *Reset) Validate(_ *domain.InputSnapshot) error { return nil }

func (t *Reset) Apply(_ *domain.InputSnapshot) (*domain.InputSnapshot, error) {
	defaults := domain.DefaultInputs()
	return &defaults, nil
}

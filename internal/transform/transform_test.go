package transform

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

func TestApplyTransforms_BaseNeverMutated(t *testing.T) {
	base := domain.DefaultInputs()

	result, err := ApplyTransforms(&base, []SnapshotTransform{
		&SetPurchasePrice{Price: decimal.NewFromInt(950000)},
		&SetExtraMonthly{Amount: decimal.NewFromInt(500)},
	})

	require.NoError(t, err)
	assert.True(t, result.PurchasePrice.Equal(decimal.NewFromInt(950000)))
	assert.True(t, result.ExtraMonthly.Equal(decimal.NewFromInt(500)))
	assert.True(t, base.PurchasePrice.Equal(decimal.NewFromInt(800000)), "Base snapshot should be untouched")
	assert.True(t, base.ExtraMonthly.IsZero())
}

func TestApplyTransforms_EmptyListCopiesBase(t *testing.T) {
	base := domain.DefaultInputs()

	result, err := ApplyTransforms(&base, nil)

	require.NoError(t, err)
	assert.Equal(t, base, *result)
	assert.NotSame(t, &base, result)
}

func TestApplyTransforms_NilBase(t *testing.T) {
	_, err := ApplyTransforms(nil, nil)

	assert.Error(t, err)
}

func TestApplyTransforms_ValidationStopsTheChain(t *testing.T) {
	base := domain.DefaultInputs()

	_, err := ApplyTransforms(&base, []SnapshotTransform{
		&SetPurchasePrice{Price: decimal.NewFromInt(-1)},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "set_price")
}

func TestApplyTransforms_OrderMatters(t *testing.T) {
	base := domain.DefaultInputs()

	// Scaling after setting the price scales the new price, not the default.
	result, err := ApplyTransforms(&base, []SnapshotTransform{
		&SetPurchasePrice{Price: decimal.NewFromInt(1000000)},
		&ScalePurchasePrice{Factor: decimal.NewFromFloat(0.9)},
	})

	require.NoError(t, err)
	assert.True(t, result.PurchasePrice.Equal(decimal.NewFromInt(900000)))
}

func TestSetDownPayment_SwitchesToPercentMode(t *testing.T) {
	base := domain.DefaultInputs()
	base.DownPaymentMode = domain.DownPaymentAmount

	result, err := (&SetDownPayment{Percent: decimal.NewFromInt(10)}).Apply(&base)

	require.NoError(t, err)
	assert.Equal(t, domain.DownPaymentPercent, result.DownPaymentMode)
	assert.True(t, result.DownPaymentPercent.Equal(decimal.NewFromInt(10)))
}

func TestSetDownPaymentAmount_RejectsMoreThanPrice(t *testing.T) {
	base := domain.DefaultInputs()

	err := (&SetDownPaymentAmount{Amount: decimal.NewFromInt(900000)}).Validate(&base)

	assert.Error(t, err)
}

func TestAdjustRate_RejectsNegativeResult(t *testing.T) {
	base := domain.DefaultInputs()

	err := (&AdjustRate{Delta: decimal.NewFromInt(-7)}).Validate(&base)

	assert.Error(t, err, "6.5 - 7 would go below zero")
}

func TestSetLoanType_ARMFieldsOnlyWhenSet(t *testing.T) {
	base := domain.DefaultInputs()

	result, err := (&SetLoanType{LoanType: domain.LoanARM5}).Apply(&base)
	require.NoError(t, err)
	assert.Equal(t, domain.LoanARM5, result.LoanType)
	assert.True(t, result.ARMAdjustment.Equal(base.ARMAdjustment), "Zero bump keeps the base value")

	result, err = (&SetLoanType{
		LoanType:      domain.LoanARM7,
		ARMAdjustment: decimal.NewFromFloat(0.5),
		ARMCap:        decimal.NewFromInt(10),
	}).Apply(&base)
	require.NoError(t, err)
	assert.True(t, result.ARMAdjustment.Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, result.ARMCap.Equal(decimal.NewFromInt(10)))
}

func TestSetLoanType_UnknownTypeFailsValidation(t *testing.T) {
	base := domain.DefaultInputs()

	err := (&SetLoanType{LoanType: "15"}).Validate(&base)

	assert.Error(t, err)
}

func TestReset_RestoresDefaults(t *testing.T) {
	base := domain.DefaultInputs()
	base.PurchasePrice = decimal.NewFromInt(2000000)
	base.ExtraMonthly = decimal.NewFromInt(5000)

	result, err := (&Reset{}).Apply(&base)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultInputs(), *result)
}

func TestTransformError_Unwrap(t *testing.T) {
	inner := assert.AnError
	err := NewTransformError("set_price", "apply", "boom", inner)

	var te *TransformError
	require.ErrorAs(t, err, &te)
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "set_price")
}

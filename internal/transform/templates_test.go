package transform

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

func TestCreateBuiltInTemplates(t *testing.T) {
	registry := CreateBuiltInTemplates()

	for _, name := range []string{"pay-extra-500", "lump-sum-50k", "down-10", "arm-5-1", "cheaper-10", "aggressive-payoff"} {
		tpl, ok := registry.Get(name)
		assert.True(t, ok, "Built-in template %s should exist", name)
		assert.NotEmpty(t, tpl.Description)
		assert.NotEmpty(t, tpl.Transforms)
	}
}

func TestTemplateRegistry_GetIsCaseInsensitive(t *testing.T) {
	registry := CreateBuiltInTemplates()

	_, ok := registry.Get("PAY-EXTRA-500")

	assert.True(t, ok)
}

func TestTemplateRegistry_UnknownTemplate(t *testing.T) {
	registry := CreateBuiltInTemplates()

	_, ok := registry.Get("does-not-exist")

	assert.False(t, ok)
}

func TestApplyTemplate_PayExtra500(t *testing.T) {
	registry := CreateBuiltInTemplates()
	tpl, ok := registry.Get("pay-extra-500")
	require.True(t, ok)

	base := domain.DefaultInputs()
	result, err := ApplyTemplate(&base, tpl)

	require.NoError(t, err)
	assert.True(t, result.ExtraMonthly.Equal(decimal.NewFromInt(500)))
	assert.True(t, base.ExtraMonthly.IsZero())
}

func TestApplyTemplate_EveryBuiltInAppliesCleanly(t *testing.T) {
	registry := CreateBuiltInTemplates()
	base := domain.DefaultInputs()

	for _, name := range registry.List() {
		tpl, ok := registry.Get(name)
		require.True(t, ok)

		_, err := ApplyTemplate(&base, tpl)
		assert.NoError(t, err, "Template %s should apply to the default snapshot", name)
	}
}

func TestApplyTemplate_LowCashCombination(t *testing.T) {
	registry := CreateBuiltInTemplates()
	tpl, ok := registry.Get("low-cash")
	require.True(t, ok)

	base := domain.DefaultInputs()
	result, err := ApplyTemplate(&base, tpl)

	require.NoError(t, err)
	assert.True(t, result.DownPaymentPercent.Equal(decimal.NewFromInt(10)))
	assert.True(t, result.PurchasePrice.Equal(decimal.NewFromInt(720000)))
}

func TestParseTemplateList(t *testing.T) {
	assert.Nil(t, ParseTemplateList(""))
	assert.Equal(t, []string{"a", "b"}, ParseTemplateList("a, b"))
	assert.Equal(t, []string{"a"}, ParseTemplateList("a,,  "))
}

func TestGetTemplateHelp(t *testing.T) {
	help := GetTemplateHelp(CreateBuiltInTemplates())

	assert.Contains(t, help, "pay-extra-500")
	assert.Contains(t, help, "ARM")
	assert.Contains(t, help, "hpgo compare")

	assert.Equal(t, "No templates registered", GetTemplateHelp(NewTemplateRegistry()))
}

func TestScalePurchasePrice_RoundsToThousand(t *testing.T) {
	base := domain.DefaultInputs()
	base.PurchasePrice = decimal.NewFromInt(805500)

	result, err := (&ScalePurchasePrice{Factor: decimal.NewFromFloat(0.9)}).Apply(&base)

	require.NoError(t, err)
	// 724950 rounds to the nearest thousand.
	assert.True(t, result.PurchasePrice.Equal(decimal.NewFromInt(725000)))
}

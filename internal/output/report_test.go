package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpgo/homebuyer-calculator/internal/calculation"
	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

func defaultBundle() *domain.ResultsBundle {
	return calculation.NewEngine().Recalculate(domain.DefaultInputs())
}

func TestGenerateConsoleReport_Sections(t *testing.T) {
	var buf bytes.Buffer
	rg := NewReportGeneratorTo(&buf)

	require.NoError(t, rg.GenerateConsoleReport(defaultBundle()))

	out := buf.String()
	for _, section := range []string{
		"HOME PURCHASE ANALYSIS",
		"MONTHLY PAYMENT BREAKDOWN",
		"UPFRONT COSTS",
		"TAX BENEFITS (YEAR 1)",
		"10-YEAR WEALTH PROJECTION",
		"RENT VS BUY",
		"AFFORDABILITY",
	} {
		assert.Contains(t, out, section)
	}
	assert.Contains(t, out, "TOTAL CASH NEEDED")
}

func TestGenerateConsoleReport_SkipsEmptySections(t *testing.T) {
	var buf bytes.Buffer
	rg := NewReportGeneratorTo(&buf)

	// Defaults carry no PMI and no extra payments.
	require.NoError(t, rg.GenerateConsoleReport(defaultBundle()))

	out := buf.String()
	assert.NotContains(t, out, "PMI TIMELINE")
	assert.NotContains(t, out, "EXTRA PAYMENTS\n")
}

func TestGenerateConsoleReport_PMIAndExtrasAppearWhenPresent(t *testing.T) {
	inputs := domain.DefaultInputs()
	inputs.DownPaymentPercent = decimal.NewFromInt(10)
	inputs.ExtraMonthly = decimal.NewFromInt(500)
	bundle := calculation.NewEngine().Recalculate(inputs)

	var buf bytes.Buffer
	require.NoError(t, NewReportGeneratorTo(&buf).GenerateConsoleReport(bundle))

	out := buf.String()
	assert.Contains(t, out, "PMI TIMELINE")
	assert.Contains(t, out, "EXTRA PAYMENTS")
	assert.Contains(t, out, "Interest Saved")
}

func TestGenerateCSVReport(t *testing.T) {
	var buf bytes.Buffer
	rg := NewReportGeneratorTo(&buf)

	require.NoError(t, rg.GenerateCSVReport(defaultBundle()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 11, "Header plus ten schedule years")
	assert.Contains(t, lines[0], "Remaining Balance")
	assert.True(t, strings.HasPrefix(lines[1], "1,"))
	assert.True(t, strings.HasPrefix(lines[10], "10,"))
}

func TestGenerateJSONReport_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	rg := NewReportGeneratorTo(&buf)

	require.NoError(t, rg.GenerateJSONReport(defaultBundle()))

	var decoded domain.ResultsBundle
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.True(t, decoded.PITI.LoanAmount.Equal(decimal.NewFromInt(640000)))
	assert.Len(t, decoded.Schedule, 10)
}

func TestGenerate_DispatchesOnFormat(t *testing.T) {
	bundle := defaultBundle()

	var buf bytes.Buffer
	rg := NewReportGeneratorTo(&buf)

	require.NoError(t, rg.Generate(bundle, "console"))
	require.NoError(t, rg.Generate(bundle, "csv"))
	require.NoError(t, rg.Generate(bundle, "json"))
	require.NoError(t, rg.Generate(bundle, ""), "Empty format defaults to console")

	err := rg.Generate(bundle, "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestSaveSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")

	require.NoError(t, SaveSnapshot(domain.DefaultInputs(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "base:")
	assert.Contains(t, string(data), "purchase_price:")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "$1235", FormatWholeCurrency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "6.50%", FormatPercentage(decimal.NewFromFloat(6.5)))
}

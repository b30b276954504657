package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

func writeTempScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_BaseOverlaysDefaults(t *testing.T) {
	path := writeTempScenario(t, `
base:
  purchase_price: 950000
  interest_rate: 7.0
  state: WA
`)

	file, warnings, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	base := file.BaseSnapshot()
	assert.True(t, base.PurchasePrice.Equal(decimal.NewFromInt(950000)))
	assert.True(t, base.InterestRate.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, "WA", base.State)
	assert.Empty(t, base.County, "the default county does not survive a state change")
	assert.Equal(t, 30, base.LoanTerm, "Unset fields keep their defaults")
	assert.True(t, base.Insurance.Equal(decimal.NewFromInt(2400)))
}

func TestLoadFromFile_EmptyFileIsAllDefaults(t *testing.T) {
	path := writeTempScenario(t, "")

	file, warnings, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, domain.DefaultInputs(), file.BaseSnapshot())
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, _, err := NewInputParser().LoadFromFile("/nonexistent/scenario.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParse_MalformedYAML(t *testing.T) {
	_, _, err := NewInputParser().Parse([]byte("base: [unclosed"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_ScenarioOverridesMergeOverBase(t *testing.T) {
	file, _, err := NewInputParser().Parse([]byte(`
base:
  purchase_price: 900000
scenarios:
  - name: cheaper-house
    overrides:
      purchase_price: 700000
  - name: faster-payoff
    overrides:
      extra_monthly: 1000
`))
	require.NoError(t, err)
	require.Len(t, file.Scenarios, 2)

	cheaper, err := file.ResolveOverrides(file.Scenarios[0])
	require.NoError(t, err)
	assert.True(t, cheaper.PurchasePrice.Equal(decimal.NewFromInt(700000)))
	assert.True(t, cheaper.InterestRate.Equal(decimal.NewFromFloat(6.5)), "Untouched fields come from the base")

	faster, err := file.ResolveOverrides(file.Scenarios[1])
	require.NoError(t, err)
	assert.True(t, faster.PurchasePrice.Equal(decimal.NewFromInt(900000)), "Base override carries into scenarios")
	assert.True(t, faster.ExtraMonthly.Equal(decimal.NewFromInt(1000)))
}

func TestParse_ScenarioWithTemplateOnly(t *testing.T) {
	file, _, err := NewInputParser().Parse([]byte(`
scenarios:
  - name: what-if
    template: pay-extra-500
`))
	require.NoError(t, err)
	assert.Equal(t, "pay-extra-500", file.Scenarios[0].Template)

	resolved, err := file.ResolveOverrides(file.Scenarios[0])
	require.NoError(t, err)
	assert.Equal(t, file.BaseSnapshot(), resolved)
}

func TestParse_ScenarioValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			"missing name",
			"scenarios:\n  - template: x\n",
			"name is required",
		},
		{
			"duplicate names",
			"scenarios:\n  - name: a\n    template: x\n  - name: a\n    template: y\n",
			"duplicate scenario name",
		},
		{
			"empty scenario",
			"scenarios:\n  - name: a\n",
			"needs a template or overrides",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewInputParser().Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateSnapshot_StructuralErrors(t *testing.T) {
	parser := NewInputParser()

	negative := domain.DefaultInputs()
	negative.PurchasePrice = decimal.NewFromInt(-1)
	_, err := parser.ValidateSnapshot(&negative)
	assert.Error(t, err, "Negative price is unusable")

	zeroTerm := domain.DefaultInputs()
	zeroTerm.LoanTerm = 0
	_, err = parser.ValidateSnapshot(&zeroTerm)
	assert.Error(t, err)

	badMode := domain.DefaultInputs()
	badMode.DownPaymentMode = "fraction"
	_, err = parser.ValidateSnapshot(&badMode)
	assert.Error(t, err)

	badLoan := domain.DefaultInputs()
	badLoan.LoanType = "15"
	_, err = parser.ValidateSnapshot(&badLoan)
	assert.Error(t, err)
}

func TestValidateSnapshot_OddValuesWarnNotFail(t *testing.T) {
	parser := NewInputParser()

	odd := domain.DefaultInputs()
	odd.InterestRate = decimal.NewFromInt(18)
	odd.State = "XX"
	odd.AnnualIncome = decimal.Zero

	warnings, err := parser.ValidateSnapshot(&odd)
	require.NoError(t, err, "Implausible values still calculate")
	assert.Len(t, warnings, 3)
}

func TestValidateSnapshot_NegativeExtrasClampedToZero(t *testing.T) {
	parser := NewInputParser()

	s := domain.DefaultInputs()
	s.LumpSum = decimal.NewFromInt(-5000)
	s.ExtraMonthly = decimal.NewFromInt(-100)

	warnings, err := parser.ValidateSnapshot(&s)
	require.NoError(t, err)
	assert.Len(t, warnings, 2)
	assert.True(t, s.LumpSum.IsZero())
	assert.True(t, s.ExtraMonthly.IsZero())
}

func TestValidateSnapshot_UnknownTaxYearWarns(t *testing.T) {
	s := domain.DefaultInputs()
	s.TaxYear = 2035

	warnings, err := NewInputParser().ValidateSnapshot(&s)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "no tax tables for 2035")
	assert.Contains(t, warnings[0], "latest published year")
	assert.Contains(t, warnings[0], "nearest")
}

func TestValidateSnapshot_UnknownCountyWarns(t *testing.T) {
	s := domain.DefaultInputs()
	s.County = "Atlantis"

	warnings, err := NewInputParser().ValidateSnapshot(&s)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "unknown county")

	// States without a county table stay silent regardless of county.
	s = domain.DefaultInputs()
	s.State = "WY"
	s.County = "Teton"
	warnings, err = NewInputParser().ValidateSnapshot(&s)
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestParse_StateChangeDropsInheritedCounty(t *testing.T) {
	// Setting both keeps the pair intact.
	file, warnings, err := NewInputParser().Parse([]byte(`
base:
  state: WA
  county: King
`))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "King", file.BaseSnapshot().County)

	// Setting only the state clears the county inherited from defaults
	// instead of pairing Santa Clara with Texas.
	file, warnings, err = NewInputParser().Parse([]byte(`
base:
  state: TX
`))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Empty(t, file.BaseSnapshot().County)

	// Leaving the state alone keeps the default pair.
	file, _, err = NewInputParser().Parse([]byte(`
base:
  purchase_price: 700000
`))
	require.NoError(t, err)
	assert.Equal(t, "Santa Clara", file.BaseSnapshot().County)
}

func TestResolveOverrides_StateChangeDropsCounty(t *testing.T) {
	file, _, err := NewInputParser().Parse([]byte(`
base:
  state: CA
  county: Los Angeles
scenarios:
  - name: move
    overrides:
      state: TX
  - name: move-with-county
    overrides:
      state: TX
      county: Travis
`))
	require.NoError(t, err)

	moved, err := file.ResolveOverrides(file.Scenarios[0])
	require.NoError(t, err)
	assert.Equal(t, "TX", moved.State)
	assert.Empty(t, moved.County, "the base county does not follow a scenario to another state")

	both, err := file.ResolveOverrides(file.Scenarios[1])
	require.NoError(t, err)
	assert.Equal(t, "Travis", both.County)
}

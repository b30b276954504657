package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
	"github.com/hpgo/homebuyer-calculator/internal/taxdata"
)

// ScenarioSpec is one named what-if in a scenario file. A scenario either
// names a transform template or carries partial snapshot overrides that are
// merged over the base snapshot, or both (template first, then overrides).
type ScenarioSpec struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Template    string    `yaml:"template"`
	Overrides   yaml.Node `yaml:"overrides"`
}

// ScenarioFile is the parsed form of an input file: a base snapshot plus
// optional named scenarios.
type ScenarioFile struct {
	Base      yaml.Node      `yaml:"base"`
	Scenarios []ScenarioSpec `yaml:"scenarios"`

	base domain.InputSnapshot
}

// BaseSnapshot returns the resolved base snapshot: defaults overlaid with
// whatever the file's base section sets.
func (sf *ScenarioFile) BaseSnapshot() domain.InputSnapshot {
	return sf.base
}

// ResolveOverrides merges a scenario's overrides over the base snapshot.
// Scenarios without overrides return the base unchanged.
func (sf *ScenarioFile) ResolveOverrides(spec ScenarioSpec) (domain.InputSnapshot, error) {
	snapshot := sf.base
	if spec.Overrides.IsZero() {
		return snapshot, nil
	}
	if err := spec.Overrides.Decode(&snapshot); err != nil {
		return snapshot, fmt.Errorf("scenario %q overrides: %w", spec.Name, err)
	}
	clearStaleCounty(&snapshot, &spec.Overrides)
	return snapshot, nil
}

// clearStaleCounty drops an inherited county when a mapping sets state but
// not county. The county belongs to the state it was picked in; carrying it
// across a state change would silently mismatch.
func clearStaleCounty(s *domain.InputSnapshot, node *yaml.Node) {
	if nodeHasKey(node, "state") && !nodeHasKey(node, "county") {
		s.County = ""
	}
}

func nodeHasKey(node *yaml.Node, key string) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}

// InputParser handles parsing of input scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario file from YAML. Missing base fields keep
// their defaults. Structural problems are errors; financially odd values
// come back as warnings so a questionable file still calculates.
func (ip *InputParser) LoadFromFile(filename string) (*ScenarioFile, []string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses scenario-file bytes. See LoadFromFile.
func (ip *InputParser) Parse(data []byte) (*ScenarioFile, []string, error) {
	var file ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	file.base = domain.DefaultInputs()
	if !file.Base.IsZero() {
		if err := file.Base.Decode(&file.base); err != nil {
			return nil, nil, fmt.Errorf("failed to decode base snapshot: %w", err)
		}
		clearStaleCounty(&file.base, &file.Base)
	}

	if err := ip.validateScenarios(&file); err != nil {
		return nil, nil, err
	}
	warnings, err := ip.ValidateSnapshot(&file.base)
	if err != nil {
		return nil, nil, fmt.Errorf("base snapshot validation failed: %w", err)
	}

	return &file, warnings, nil
}

// validateScenarios checks the scenario list for structural problems.
func (ip *InputParser) validateScenarios(file *ScenarioFile) error {
	seen := make(map[string]bool, len(file.Scenarios))
	for i, spec := range file.Scenarios {
		if spec.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[spec.Name] {
			return fmt.Errorf("duplicate scenario name: %s", spec.Name)
		}
		seen[spec.Name] = true
		if spec.Template == "" && spec.Overrides.IsZero() {
			return fmt.Errorf("scenario %q: needs a template or overrides", spec.Name)
		}
		if _, err := file.ResolveOverrides(spec); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSnapshot checks a snapshot for usability. Values that make the
// calculation meaningless are errors; values that are merely implausible
// come back as warnings and the snapshot stays calculable.
func (ip *InputParser) ValidateSnapshot(s *domain.InputSnapshot) ([]string, error) {
	if s.PurchasePrice.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("purchase price cannot be negative")
	}
	if s.LoanTerm <= 0 {
		return nil, fmt.Errorf("loan term must be a positive number of years")
	}
	if s.InterestRate.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("interest rate cannot be negative")
	}
	switch s.DownPaymentMode {
	case domain.DownPaymentPercent, domain.DownPaymentAmount, "":
	default:
		return nil, fmt.Errorf("down payment mode must be %q or %q", domain.DownPaymentPercent, domain.DownPaymentAmount)
	}
	switch s.LoanType {
	case domain.LoanFixed, domain.LoanARM3, domain.LoanARM5, domain.LoanARM7, domain.LoanARM10, "":
	default:
		return nil, fmt.Errorf("loan type must be \"fixed\" or an ARM period (\"3\", \"5\", \"7\", \"10\")")
	}
	switch s.FilingStatus {
	case domain.FilingSingle, domain.FilingMarriedJointly, domain.FilingHeadOfHousehold, "":
	default:
		return nil, fmt.Errorf("filing status must be single, married_jointly or head_of_household")
	}

	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	if s.State != "" {
		if _, ok := taxdata.StateConfig(s.State); !ok {
			warn("unknown state %q, treating it as a no-income-tax state", s.State)
		}
	}
	if s.County != "" && len(taxdata.CountiesFor(s.State)) > 0 {
		if _, ok := taxdata.CountyPropertyTaxRate(s.State, s.County); !ok {
			warn("unknown county %q for %s, using the configured property tax rate", s.County, s.State)
		}
	}
	if s.PurchasePrice.GreaterThan(decimal.NewFromInt(20000000)) {
		warn("purchase price %s is unusually high", s.PurchasePrice.StringFixed(0))
	}
	if s.InterestRate.GreaterThan(decimal.NewFromInt(15)) {
		warn("interest rate %s%% is unusually high", s.InterestRate.String())
	}
	if s.DownPaymentMode != domain.DownPaymentAmount && s.DownPaymentPercent.GreaterThan(decimal.NewFromInt(100)) {
		warn("down payment exceeds 100%% of the purchase price")
	}
	if s.DownPaymentMode == domain.DownPaymentAmount && s.DownPaymentAmount.GreaterThan(s.PurchasePrice) {
		warn("down payment amount exceeds the purchase price")
	}
	if s.LumpSum.LessThan(decimal.Zero) {
		warn("negative lump sum ignored as zero")
		s.LumpSum = decimal.Zero
	}
	if s.ExtraMonthly.LessThan(decimal.Zero) {
		warn("negative extra monthly payment ignored as zero")
		s.ExtraMonthly = decimal.Zero
	}
	if s.AnnualIncome.LessThanOrEqual(decimal.Zero) {
		warn("no household income set, affordability will use the fallback income")
	}
	if s.LoanType.IsARM() && s.ARMCap.GreaterThan(decimal.Zero) && s.ARMCap.LessThan(s.InterestRate) {
		warn("ARM rate cap %s%% is below the starting rate", s.ARMCap.String())
	}
	if s.TaxYear != 0 {
		found := false
		for _, y := range taxdata.AvailableYears() {
			if y == s.TaxYear {
				found = true
				break
			}
		}
		if !found {
			warn("no tax tables for %d, federal figures use the latest published year and state figures the nearest", s.TaxYear)
		}
	}

	return warnings, nil
}

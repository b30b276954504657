package transform

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

// TemplateRegistry manages built-in what-if templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []SnapshotTransform
}

// NewTemplateRegistry creates a new template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	return names
}

// CreateBuiltInTemplates creates a template registry with the common
// home-purchase what-ifs.
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	// Extra payment templates
	registry.Register(Template{
		Name:        "pay-extra-250",
		Description: "Pay an extra $250/month toward principal",
		Transforms: []SnapshotTransform{
			&SetExtraMonthly{Amount: decimal.NewFromInt(250)},
		},
	})

	registry.Register(Template{
		Name:        "pay-extra-500",
		Description: "Pay an extra $500/month toward principal",
		Transforms: []SnapshotTransform{
			&SetExtraMonthly{Amount: decimal.NewFromInt(500)},
		},
	})

	registry.Register(Template{
		Name:        "pay-extra-1000",
		Description: "Pay an extra $1,000/month toward principal",
		Transforms: []SnapshotTransform{
			&SetExtraMonthly{Amount: decimal.NewFromInt(1000)},
		},
	})

	registry.Register(Template{
		Name:        "lump-sum-50k",
		Description: "Apply a one-time $50,000 principal payment",
		Transforms: []SnapshotTransform{
			&SetLumpSum{Amount: decimal.NewFromInt(50000)},
		},
	})

	// Down payment templates
	registry.Register(Template{
		Name:        "down-10",
		Description: "Put 10% down (carries PMI until removal)",
		Transforms: []SnapshotTransform{
			&SetDownPayment{Percent: decimal.NewFromInt(10)},
		},
	})

	registry.Register(Template{
		Name:        "down-25",
		Description: "Put 25% down",
		Transforms: []SnapshotTransform{
			&SetDownPayment{Percent: decimal.NewFromInt(25)},
		},
	})

	// Rate and loan structure templates
	registry.Register(Template{
		Name:        "rate-down-1",
		Description: "One point lower rate (e.g. after buying points or a refi)",
		Transforms: []SnapshotTransform{
			&AdjustRate{Delta: decimal.NewFromInt(-1)},
		},
	})

	registry.Register(Template{
		Name:        "rate-up-1",
		Description: "One point higher rate",
		Transforms: []SnapshotTransform{
			&AdjustRate{Delta: decimal.NewFromInt(1)},
		},
	})

	registry.Register(Template{
		Name:        "arm-5-1",
		Description: "5/1 ARM with 0.25-point annual bumps capped at 11%",
		Transforms: []SnapshotTransform{
			&SetLoanType{LoanType: "5", ARMAdjustment: decimal.NewFromFloat(0.25), ARMCap: decimal.NewFromInt(11)},
		},
	})

	registry.Register(Template{
		Name:        "arm-7-1",
		Description: "7/1 ARM with 0.25-point annual bumps capped at 11%",
		Transforms: []SnapshotTransform{
			&SetLoanType{LoanType: "7", ARMAdjustment: decimal.NewFromFloat(0.25), ARMCap: decimal.NewFromInt(11)},
		},
	})

	// Price templates
	registry.Register(Template{
		Name:        "cheaper-10",
		Description: "A 10% cheaper house",
		Transforms: []SnapshotTransform{
			&ScalePurchasePrice{Factor: decimal.NewFromFloat(0.9)},
		},
	})

	registry.Register(Template{
		Name:        "stretch-10",
		Description: "A 10% more expensive house",
		Transforms: []SnapshotTransform{
			&ScalePurchasePrice{Factor: decimal.NewFromFloat(1.1)},
		},
	})

	// Combination templates
	registry.Register(Template{
		Name:        "aggressive-payoff",
		Description: "Extra $1,000/month plus a $50,000 lump sum",
		Transforms: []SnapshotTransform{
			&SetExtraMonthly{Amount: decimal.NewFromInt(1000)},
			&SetLumpSum{Amount: decimal.NewFromInt(50000)},
		},
	})

	registry.Register(Template{
		Name:        "low-cash",
		Description: "10% down on a 10% cheaper house",
		Transforms: []SnapshotTransform{
			&SetDownPayment{Percent: decimal.NewFromInt(10)},
			&ScalePurchasePrice{Factor: decimal.NewFromFloat(0.9)},
		},
	})

	return registry
}

// ApplyTemplate applies a template to a base snapshot
func ApplyTemplate(base *domain.InputSnapshot, template Template) (*domain.InputSnapshot, error) {
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")

	categories := map[string][]Template{
		"Extra Payments": {},
		"Down Payment":   {},
		"Rate and Loan":  {},
		"Price":          {},
		"Combinations":   {},
	}

	for _, template := range registry.templates {
		name := template.Name
		switch {
		case strings.HasPrefix(name, "pay-extra-") || strings.HasPrefix(name, "lump-sum-"):
			categories["Extra Payments"] = append(categories["Extra Payments"], template)
		case strings.HasPrefix(name, "down-"):
			categories["Down Payment"] = append(categories["Down Payment"], template)
		case strings.HasPrefix(name, "rate-") || strings.HasPrefix(name, "arm-"):
			categories["Rate and Loan"] = append(categories["Rate and Loan"], template)
		case strings.HasPrefix(name, "cheaper-") || strings.HasPrefix(name, "stretch-"):
			categories["Price"] = append(categories["Price"], template)
		default:
			categories["Combinations"] = append(categories["Combinations"], template)
		}
	}

	for _, category := range []string{"Extra Payments", "Down Payment", "Rate and Loan", "Price", "Combinations"} {
		templates := categories[category]
		if len(templates) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, t := range templates {
			sb.WriteString(fmt.Sprintf("  %-20s %s\n", t.Name, t.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Usage:\n")
	sb.WriteString("  hpgo compare scenario.yaml --with pay-extra-500,down-25\n")
	sb.WriteString("  hpgo compare scenario.yaml --with arm-5-1\n")

	return sb.String()
}

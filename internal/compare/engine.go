package compare

import (
	"fmt"

	"github.com/hpgo/homebuyer-calculator/internal/calculation"
	"github.com/hpgo/homebuyer-calculator/internal/domain"
	"github.com/hpgo/homebuyer-calculator/internal/transform"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.Engine
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseName  string   // Display name for the base scenario
	Templates []string // Template names to apply against the base
}

// Compare runs the base snapshot plus each named template through the engine
// and diffs the headline metrics against the base.
func (ce *CompareEngine) Compare(base domain.InputSnapshot, options CompareOptions) (*ComparisonSet, error) {
	baseName := options.BaseName
	if baseName == "" {
		baseName = "base"
	}

	baseBundle := ce.CalcEngine.Recalculate(base)
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseName, baseBundle)

	alternatives := []ComparisonResult{}

	for _, templateName := range options.Templates {
		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found", templateName)
		}

		modified, err := transform.ApplyTemplate(&base, template)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", templateName, err)
		}

		altBundle := ce.CalcEngine.Recalculate(*modified)
		altResult := ce.MetricsCalculator.CalculateMetrics(templateName, altBundle)
		altResult.Description = template.Description
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)

		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

// CompareSnapshots compares explicit snapshots (not using templates). The
// names slice labels each alternative and must match alternatives in length.
func (ce *CompareEngine) CompareSnapshots(
	base domain.InputSnapshot,
	baseName string,
	names []string,
	alternatives []domain.InputSnapshot,
) (*ComparisonSet, error) {
	if len(names) != len(alternatives) {
		return nil, fmt.Errorf("got %d names for %d snapshots", len(names), len(alternatives))
	}
	if baseName == "" {
		baseName = "base"
	}

	baseBundle := ce.CalcEngine.Recalculate(base)
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseName, baseBundle)

	altResults := []ComparisonResult{}
	for i, alt := range alternatives {
		bundle := ce.CalcEngine.Recalculate(alt)
		result := ce.MetricsCalculator.CalculateMetrics(names[i], bundle)
		result = ce.MetricsCalculator.CalculateComparison(result, baseResult)
		altResults = append(altResults, result)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseName,
		BaseResult:         &baseResult,
		AlternativeResults: altResults,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

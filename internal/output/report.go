package output

import (
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

// ReportGenerator renders a results bundle in various formats
type ReportGenerator struct {
	Writer io.Writer
}

// NewReportGenerator creates a report generator writing to stdout
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{Writer: os.Stdout}
}

// NewReportGeneratorTo creates a report generator writing to w
func NewReportGeneratorTo(w io.Writer) *ReportGenerator {
	return &ReportGenerator{Writer: w}
}

// Generate renders the bundle in the specified format
func (rg *ReportGenerator) Generate(bundle *domain.ResultsBundle, format string) error {
	switch format {
	case "console", "":
		return rg.GenerateConsoleReport(bundle)
	case "json":
		return rg.GenerateJSONReport(bundle)
	case "csv":
		return rg.GenerateCSVReport(bundle)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// SaveSnapshot saves an input snapshot to a YAML file
func SaveSnapshot(snapshot domain.InputSnapshot, filename string) error {
	data, err := yaml.Marshal(map[string]domain.InputSnapshot{"base": snapshot})
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

// FormatCurrency formats a decimal as currency
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatWholeCurrency formats a decimal as whole-dollar currency
func FormatWholeCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(0)
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

package output

import (
	"encoding/json"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

// GenerateJSONReport writes the full results bundle as indented JSON
func (rg *ReportGenerator) GenerateJSONReport(bundle *domain.ResultsBundle) error {
	encoder := json.NewEncoder(rg.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(bundle)
}

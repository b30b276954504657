package compare

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// JSONFormatter renders a comparison set as machine-readable JSON. The
// output is a flattened view of the headline mortgage metrics rather than
// a dump of the internal result structs, so downstream scripts are not
// coupled to calculation internals.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// jsonScenario is the wire form of one scenario's headline numbers.
type jsonScenario struct {
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	MonthlyPITI     decimal.Decimal `json:"monthlyPITI"`
	TrueMonthlyCost decimal.Decimal `json:"trueMonthlyCost"`
	CashToClose     decimal.Decimal `json:"cashToClose"`
	TenYearWealth   decimal.Decimal `json:"tenYearWealth"`
	TotalInterest   decimal.Decimal `json:"totalInterest"`
	PayoffMonths    int             `json:"payoffMonths"`
	BreakEvenYear   int             `json:"breakEvenYear"`
	PMIMonths       int             `json:"pmiMonths"`
	Diffs           *jsonDiffs      `json:"diffsFromBase,omitempty"`
}

// jsonDiffs carries an alternative's deltas against the base scenario.
type jsonDiffs struct {
	MonthlyPITI      decimal.Decimal `json:"monthlyPITI"`
	CashToClose      decimal.Decimal `json:"cashToClose"`
	TenYearWealth    decimal.Decimal `json:"tenYearWealth"`
	TenYearWealthPct decimal.Decimal `json:"tenYearWealthPct"`
	TotalInterest    decimal.Decimal `json:"totalInterest"`
	PayoffMonths     int             `json:"payoffMonths"`
}

type jsonComparison struct {
	BaseScenarioName string         `json:"baseScenarioName"`
	ConfigPath       string         `json:"configPath,omitempty"`
	Base             jsonScenario   `json:"base"`
	Alternatives     []jsonScenario `json:"alternatives"`
	Recommendations  []string       `json:"recommendations,omitempty"`
}

// Format generates JSON output for comparison results
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	view := jsonComparison{
		BaseScenarioName: compSet.BaseScenarioName,
		ConfigPath:       compSet.ConfigPath,
		Alternatives:     make([]jsonScenario, 0, len(compSet.AlternativeResults)),
		Recommendations:  compSet.Recommendations,
	}
	if compSet.BaseResult != nil {
		view.Base = scenarioView(*compSet.BaseResult, false)
	}
	for _, alt := range compSet.AlternativeResults {
		view.Alternatives = append(view.Alternatives, scenarioView(alt, true))
	}

	var data []byte
	var err error
	if jf.Pretty {
		data, err = json.MarshalIndent(view, "", "  ")
	} else {
		data, err = json.Marshal(view)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// scenarioView flattens a ComparisonResult. The base scenario carries no
// diff block since it would be all zeros.
func scenarioView(res ComparisonResult, withDiffs bool) jsonScenario {
	sc := jsonScenario{
		Name:            res.ScenarioName,
		Description:     res.Description,
		MonthlyPITI:     res.MonthlyPITI,
		TrueMonthlyCost: res.TrueMonthlyCost,
		CashToClose:     res.CashToClose,
		TenYearWealth:   res.TenYearWealth,
		TotalInterest:   res.TotalInterest,
		PayoffMonths:    res.PayoffMonths,
		BreakEvenYear:   res.BreakEvenYear,
		PMIMonths:       res.PMIMonths,
	}
	if withDiffs {
		sc.Diffs = &jsonDiffs{
			MonthlyPITI:      res.PITIDiffFromBase,
			CashToClose:      res.CashDiffFromBase,
			TenYearWealth:    res.WealthDiffFromBase,
			TenYearWealthPct: res.WealthPctFromBase,
			TotalInterest:    res.InterestDiffFromBase,
			PayoffMonths:     res.PayoffMonthsDiff,
		}
	}
	return sc
}

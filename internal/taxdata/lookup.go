package taxdata

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

// nearestYear picks the table year closest to the requested one. Ties go to
// the earlier year because candidates are scanned in ascending order.
func nearestYear(years []int, want int) int {
	sort.Ints(years)
	nearest := years[0]
	for _, y := range years[1:] {
		if abs(y-want) < abs(nearest-want) {
			nearest = y
		}
	}
	return nearest
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// stateBracketsForYear resolves a progressive state's bracket table for a
// year, falling back to the nearest available year. Returns nil for states
// without full bracket tables.
func stateBracketsForYear(code string, year int) map[domain.FilingStatus][]Bracket {
	cfg, ok := stateTaxData[code]
	if !ok || cfg.Type != TaxProgressive || len(cfg.Brackets) == 0 {
		return nil
	}
	if b, ok := cfg.Brackets[year]; ok {
		return b
	}
	years := make([]int, 0, len(cfg.Brackets))
	for y := range cfg.Brackets {
		years = append(years, y)
	}
	return cfg.Brackets[nearestYear(years, year)]
}

// StateStandardDeduction returns the state standard deduction for a filing
// status. Progressive states keep year-keyed tables and fall back to the
// nearest year; flat and effective states carry one table.
func StateStandardDeduction(code string, fs domain.FilingStatus, year int) decimal.Decimal {
	cfg, ok := stateTaxData[code]
	if !ok || cfg.Type == TaxNone {
		return decimal.Zero
	}
	if cfg.Type == TaxProgressive {
		if len(cfg.StdDedByYear) == 0 {
			return decimal.Zero
		}
		if sd, ok := cfg.StdDedByYear[year]; ok {
			return decimal.NewFromFloat(sd.For(fs))
		}
		years := make([]int, 0, len(cfg.StdDedByYear))
		for y := range cfg.StdDedByYear {
			years = append(years, y)
		}
		sd := cfg.StdDedByYear[nearestYear(years, year)]
		return decimal.NewFromFloat(sd.For(fs))
	}
	return decimal.NewFromFloat(cfg.StdDed.For(fs))
}

// StateMarginalRate returns the state marginal rate, in percent, for the
// given income. Flat states return their single rate, effective-curve
// states their top rate, progressive states the bracket the income lands
// in.
func StateMarginalRate(income decimal.Decimal, fs domain.FilingStatus, code string, year int) decimal.Decimal {
	cfg, ok := stateTaxData[code]
	if !ok || cfg.Type == TaxNone {
		return decimal.Zero
	}
	if cfg.Type == TaxFlat {
		return decimal.NewFromFloat(cfg.Rate)
	}
	if cfg.Type == TaxEffective {
		return decimal.NewFromFloat(cfg.TopRate)
	}
	yearBrackets := stateBracketsForYear(code, year)
	if yearBrackets == nil {
		return decimal.NewFromFloat(cfg.TopRate)
	}
	statusBrackets, ok := yearBrackets[fs]
	if !ok {
		statusBrackets = yearBrackets[domain.FilingMarriedJointly]
	}
	inc := income.InexactFloat64()
	for _, b := range statusBrackets {
		if inc >= b.Min && inc < b.Max {
			return decimal.NewFromFloat(b.Rate)
		}
	}
	if cfg.TopRate > 0 {
		return decimal.NewFromFloat(cfg.TopRate)
	}
	return decimal.NewFromFloat(13.3)
}

// effectiveCurveThresholds are the taxable-income sample points the
// effective-rate curves are anchored at.
var effectiveCurveThresholds = []float64{50000, 100000, 200000, 400000, 1000000}

// EstimateStateTax estimates the annual state income tax, rounded to whole
// dollars. The state standard deduction is applied first; surtaxes apply to
// gross income above their threshold.
func EstimateStateTax(income decimal.Decimal, fs domain.FilingStatus, code string, year int) decimal.Decimal {
	cfg, ok := stateTaxData[code]
	if !ok || cfg.Type == TaxNone {
		return decimal.Zero
	}

	grossIncome := income.InexactFloat64()
	stdDed := StateStandardDeduction(code, fs, year).InexactFloat64()
	taxableIncome := math.Max(0, grossIncome-stdDed)

	switch cfg.Type {
	case TaxFlat:
		tax := taxableIncome * (cfg.Rate / 100)
		if cfg.Surtax != nil && grossIncome > cfg.Surtax.Threshold {
			tax += (grossIncome - cfg.Surtax.Threshold) * (cfg.Surtax.Rate / 100)
		}
		return decimal.NewFromFloat(math.Round(tax))

	case TaxEffective:
		if taxableIncome <= 0 {
			return decimal.Zero
		}
		rate := interpolateEffectiveRate(cfg.Rates, taxableIncome)
		return decimal.NewFromFloat(math.Round(taxableIncome * (rate / 100)))
	}

	// Progressive with full brackets.
	yearBrackets := stateBracketsForYear(code, year)
	if yearBrackets == nil {
		return decimal.Zero
	}
	statusBrackets, ok := yearBrackets[fs]
	if !ok {
		statusBrackets = yearBrackets[domain.FilingMarriedJointly]
	}
	tax := 0.0
	remaining := taxableIncome
	for _, b := range statusBrackets {
		if remaining <= 0 {
			break
		}
		taxable := math.Min(remaining, b.Max-b.Min)
		tax += taxable * (b.Rate / 100)
		remaining -= taxable
	}
	if cfg.Surtax != nil && grossIncome > cfg.Surtax.Threshold {
		tax += (grossIncome - cfg.Surtax.Threshold) * (cfg.Surtax.Rate / 100)
	}
	return decimal.NewFromFloat(math.Round(tax))
}

// interpolateEffectiveRate evaluates the five-point effective-rate curve at
// a taxable income. Below the first anchor the rate scales linearly from
// zero; above the last anchor it holds flat.
func interpolateEffectiveRate(rates []float64, taxableIncome float64) float64 {
	thresholds := effectiveCurveThresholds
	if taxableIncome <= thresholds[0] {
		return rates[0] * (taxableIncome / thresholds[0])
	}
	if taxableIncome >= thresholds[len(thresholds)-1] {
		return rates[len(rates)-1]
	}
	for i := 0; i < len(thresholds)-1; i++ {
		if taxableIncome >= thresholds[i] && taxableIncome < thresholds[i+1] {
			pct := (taxableIncome - thresholds[i]) / (thresholds[i+1] - thresholds[i])
			return rates[i] + pct*(rates[i+1]-rates[i])
		}
	}
	return rates[len(rates)-1]
}

// HomesteadSavings returns the annual property tax saved by a state's
// homestead exemption. Credit-type exemptions are flat dollar credits;
// value-type exemptions reduce the taxable value, capped at the purchase
// price. Equity-type exemptions protect equity without reducing tax.
func HomesteadSavings(code string, purchasePrice, propertyTaxRate decimal.Decimal) decimal.Decimal {
	meta, ok := stateMeta[code]
	if !ok || meta.HomesteadExemption == 0 || meta.HomesteadType == HomesteadNone {
		return decimal.Zero
	}
	if meta.HomesteadType == HomesteadCredit {
		return decimal.NewFromFloat(meta.HomesteadExemption)
	}
	if meta.HomesteadType == HomesteadEquity {
		return decimal.Zero
	}
	exemption := decimal.Min(decimal.NewFromFloat(meta.HomesteadExemption), purchasePrice)
	return exemption.Mul(propertyTaxRate).Div(decimal.NewFromInt(100))
}

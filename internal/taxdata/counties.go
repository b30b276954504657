package taxdata

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// County is one county's average effective property-tax rate, as a percent
// of market value per year.
type County struct {
	Name string
	Rate float64
}

// countyTaxData covers the most populous states. States without an entry
// fall back to the statewide average in StateMeta.
var countyTaxData = map[string][]County{
	"AZ": {
		{"Maricopa", 0.61},
		{"Pima", 1.00},
	},
	"CA": {
		{"Alameda", 0.78},
		{"Los Angeles", 0.72},
		{"Orange", 0.68},
		{"Riverside", 0.95},
		{"Sacramento", 0.81},
		{"San Diego", 0.73},
		{"San Francisco", 0.65},
		{"Santa Clara", 0.73},
	},
	"FL": {
		{"Broward", 1.07},
		{"Hillsborough", 1.09},
		{"Miami-Dade", 1.02},
		{"Orange", 1.04},
		{"Palm Beach", 1.06},
	},
	"GA": {
		{"Cobb", 0.79},
		{"Fulton", 1.04},
		{"Gwinnett", 1.09},
	},
	"IL": {
		{"Cook", 2.19},
		{"DuPage", 2.22},
		{"Lake", 2.95},
		{"Will", 2.64},
	},
	"NJ": {
		{"Bergen", 2.08},
		{"Essex", 2.78},
		{"Middlesex", 2.29},
	},
	"NY": {
		{"Kings", 0.66},
		{"Nassau", 2.11},
		{"New York", 0.95},
		{"Suffolk", 2.37},
		{"Westchester", 1.89},
	},
	"PA": {
		{"Allegheny", 2.00},
		{"Montgomery", 1.56},
		{"Philadelphia", 0.98},
	},
	"TX": {
		{"Bexar", 2.35},
		{"Dallas", 2.22},
		{"Harris", 2.13},
		{"Tarrant", 2.26},
		{"Travis", 1.93},
	},
	"WA": {
		{"King", 0.93},
		{"Pierce", 1.19},
		{"Snohomish", 0.98},
	},
}

// CountiesFor returns the known counties for a state sorted by name, or nil
// when the state has no county table.
func CountiesFor(state string) []County {
	counties, ok := countyTaxData[strings.ToUpper(state)]
	if !ok {
		return nil
	}
	out := make([]County, len(counties))
	copy(out, counties)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// CountyPropertyTaxRate looks up a county's property-tax rate by name,
// case-insensitively. The second return reports whether the county is known.
func CountyPropertyTaxRate(state, county string) (decimal.Decimal, bool) {
	for _, c := range countyTaxData[strings.ToUpper(state)] {
		if strings.EqualFold(c.Name, county) {
			return decimal.NewFromFloat(c.Rate), true
		}
	}
	return decimal.Zero, false
}

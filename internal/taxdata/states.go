package taxdata

import (
	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

// StateTaxType classifies how a state levies income tax.
type StateTaxType string

const (
	// TaxNone marks the nine states with no income tax.
	TaxNone StateTaxType = "none"
	// TaxFlat is a single rate on taxable income.
	TaxFlat StateTaxType = "flat"
	// TaxProgressive carries full marginal bracket tables.
	TaxProgressive StateTaxType = "progressive"
	// TaxEffective approximates progressive states with an effective-rate
	// curve sampled at $50k, $100k, $200k, $400k and $1M.
	TaxEffective StateTaxType = "effective"
)

// Surtax is an additional rate on income above a threshold, such as the
// Massachusetts millionaire surtax.
type Surtax struct {
	Threshold float64
	Rate      float64
}

// StateTaxConfig describes one state's income tax. Which fields are
// populated depends on Type: Rate for flat states, Brackets and
// StdDedByYear for progressive states, Rates for effective-curve states.
type StateTaxConfig struct {
	Type             StateTaxType
	Rate             float64
	SupplementalRate float64
	TopRate          float64
	Rates            []float64
	Brackets         map[int]map[domain.FilingStatus][]Bracket
	StdDed           StandardDeduction
	StdDedByYear     map[int]StandardDeduction
	Surtax           *Surtax
}

func brackets(single, married, hoh []Bracket) map[domain.FilingStatus][]Bracket {
	return map[domain.FilingStatus][]Bracket{
		domain.FilingSingle:          single,
		domain.FilingMarriedJointly:  married,
		domain.FilingHeadOfHousehold: hoh,
	}
}

var stateTaxData = map[string]StateTaxConfig{
	// No income tax.
	"AK": {Type: TaxNone},
	"FL": {Type: TaxNone},
	"NV": {Type: TaxNone},
	"NH": {Type: TaxNone},
	"SD": {Type: TaxNone},
	"TN": {Type: TaxNone},
	"TX": {Type: TaxNone},
	"WA": {Type: TaxNone},
	"WY": {Type: TaxNone},

	// Flat-rate states.
	"AZ": {Type: TaxFlat, Rate: 2.5, SupplementalRate: 0.025, StdDed: StandardDeduction{14600, 29200, 21900}},
	"CO": {Type: TaxFlat, Rate: 4.4, SupplementalRate: 0.044, StdDed: StandardDeduction{14600, 29200, 21900}},
	"GA": {Type: TaxFlat, Rate: 5.39, SupplementalRate: 0.0539, StdDed: StandardDeduction{12000, 24000, 18000}},
	"ID": {Type: TaxFlat, Rate: 5.695, SupplementalRate: 0.05695, StdDed: StandardDeduction{14600, 29200, 21900}},
	"IL": {Type: TaxFlat, Rate: 4.95, SupplementalRate: 0.0495},
	"IN": {Type: TaxFlat, Rate: 3.05, SupplementalRate: 0.0305},
	"KS": {Type: TaxFlat, Rate: 5.7, SupplementalRate: 0.057, StdDed: StandardDeduction{3500, 8000, 6000}},
	"KY": {Type: TaxFlat, Rate: 4.0, SupplementalRate: 0.04, StdDed: StandardDeduction{3160, 6320, 3160}},
	"MI": {Type: TaxFlat, Rate: 4.25, SupplementalRate: 0.0425},
	"MS": {Type: TaxFlat, Rate: 4.4, SupplementalRate: 0.044, StdDed: StandardDeduction{2300, 4600, 3400}},
	"NC": {Type: TaxFlat, Rate: 4.5, SupplementalRate: 0.045, StdDed: StandardDeduction{12750, 25500, 19125}},
	"ND": {Type: TaxFlat, Rate: 1.95, SupplementalRate: 0.0195, StdDed: StandardDeduction{14600, 29200, 21900}},
	"PA": {Type: TaxFlat, Rate: 3.07, SupplementalRate: 0.0307},
	"UT": {Type: TaxFlat, Rate: 4.65, SupplementalRate: 0.0465, StdDed: StandardDeduction{14600, 29200, 21900}},
	"IA": {Type: TaxFlat, Rate: 3.8, SupplementalRate: 0.038, StdDed: StandardDeduction{2210, 5450, 5450}},
	// Flat rate plus a 4% surtax on income over $1M.
	"MA": {Type: TaxFlat, Rate: 5.0, SupplementalRate: 0.05, Surtax: &Surtax{Threshold: 1000000, Rate: 4.0}},

	// Progressive states with full bracket tables.
	"CA": {
		Type: TaxProgressive, SupplementalRate: 0.1023, TopRate: 13.3,
		Brackets: map[int]map[domain.FilingStatus][]Bracket{
			2024: brackets(
				[]Bracket{
					{0, 10756, 1}, {10756, 25499, 2}, {25499, 40245, 4},
					{40245, 55866, 6}, {55866, 70606, 8}, {70606, 360659, 9.3},
					{360659, 432787, 10.3}, {432787, 721314, 11.3},
					{721314, 1000000, 12.3}, {1000000, inf, 13.3},
				},
				[]Bracket{
					{0, 21512, 1}, {21512, 50998, 2}, {50998, 80490, 4},
					{80490, 111732, 6}, {111732, 141212, 8}, {141212, 721318, 9.3},
					{721318, 865574, 10.3}, {865574, 1442628, 11.3},
					{1442628, 2000000, 12.3}, {2000000, inf, 13.3},
				},
				[]Bracket{
					{0, 21527, 1}, {21527, 51000, 2}, {51000, 65744, 4},
					{65744, 81364, 6}, {81364, 96107, 8}, {96107, 490493, 9.3},
					{490493, 588593, 10.3}, {588593, 980987, 11.3},
					{980987, 1000000, 12.3}, {1000000, inf, 13.3},
				},
			),
			2025: brackets(
				[]Bracket{
					{0, 10756, 1}, {10756, 25499, 2}, {25499, 40245, 4},
					{40245, 55866, 6}, {55866, 70606, 8}, {70606, 360659, 9.3},
					{360659, 432787, 10.3}, {432787, 721314, 11.3},
					{721314, 1000000, 12.3}, {1000000, inf, 13.3},
				},
				[]Bracket{
					{0, 21512, 1}, {21512, 50998, 2}, {50998, 80490, 4},
					{80490, 111732, 6}, {111732, 141212, 8}, {141212, 721318, 9.3},
					{721318, 865574, 10.3}, {865574, 1442628, 11.3},
					{1442628, 2000000, 12.3}, {2000000, inf, 13.3},
				},
				[]Bracket{
					{0, 21527, 1}, {21527, 51000, 2}, {51000, 65744, 4},
					{65744, 81364, 6}, {81364, 96107, 8}, {96107, 490493, 9.3},
					{490493, 588593, 10.3}, {588593, 980987, 11.3},
					{980987, 1000000, 12.3}, {1000000, inf, 13.3},
				},
			),
			2026: brackets(
				[]Bracket{
					{0, 11079, 1}, {11079, 26264, 2}, {26264, 41452, 4},
					{41452, 57542, 6}, {57542, 72724, 8}, {72724, 371479, 9.3},
					{371479, 445771, 10.3}, {445771, 742953, 11.3},
					{742953, 1000000, 12.3}, {1000000, inf, 13.3},
				},
				[]Bracket{
					{0, 22158, 1}, {22158, 52528, 2}, {52528, 82905, 4},
					{82905, 115084, 6}, {115084, 145448, 8}, {145448, 742958, 9.3},
					{742958, 891541, 10.3}, {891541, 1485907, 11.3},
					{1485907, 2000000, 12.3}, {2000000, inf, 13.3},
				},
				[]Bracket{
					{0, 22173, 1}, {22173, 52530, 2}, {52530, 67716, 4},
					{67716, 83805, 6}, {83805, 98990, 8}, {98990, 505208, 9.3},
					{505208, 606251, 10.3}, {606251, 1000000, 11.3},
					{1000000, 1010417, 12.3}, {1010417, inf, 13.3},
				},
			),
		},
		StdDedByYear: map[int]StandardDeduction{
			2024: {5540, 11080, 11080},
			2025: {5540, 11080, 11080},
			2026: {5706, 11412, 11412},
		},
	},
	"NY": {
		Type: TaxProgressive, SupplementalRate: 0.1197, TopRate: 10.9,
		Brackets: map[int]map[domain.FilingStatus][]Bracket{
			2025: brackets(
				[]Bracket{
					{0, 8500, 4}, {8500, 11700, 4.5}, {11700, 13900, 5.25},
					{13900, 80650, 5.5}, {80650, 215400, 6}, {215400, 1077550, 6.85},
					{1077550, 5000000, 9.65}, {5000000, 25000000, 10.3},
					{25000000, inf, 10.9},
				},
				[]Bracket{
					{0, 17150, 4}, {17150, 23600, 4.5}, {23600, 27900, 5.25},
					{27900, 161550, 5.5}, {161550, 323200, 6}, {323200, 2155350, 6.85},
					{2155350, 5000000, 9.65}, {5000000, 25000000, 10.3},
					{25000000, inf, 10.9},
				},
				[]Bracket{
					{0, 12800, 4}, {12800, 17650, 4.5}, {17650, 20900, 5.25},
					{20900, 107650, 5.5}, {107650, 269300, 6}, {269300, 1616450, 6.85},
					{1616450, 5000000, 9.65}, {5000000, 25000000, 10.3},
					{25000000, inf, 10.9},
				},
			),
		},
		StdDedByYear: map[int]StandardDeduction{2025: {8000, 16050, 11200}},
	},
	"NJ": {
		Type: TaxProgressive, SupplementalRate: 0.1075, TopRate: 10.75,
		Brackets: map[int]map[domain.FilingStatus][]Bracket{
			2025: brackets(
				[]Bracket{
					{0, 20000, 1.4}, {20000, 35000, 1.75}, {35000, 40000, 3.5},
					{40000, 75000, 5.525}, {75000, 500000, 6.37},
					{500000, 1000000, 8.97}, {1000000, inf, 10.75},
				},
				[]Bracket{
					{0, 20000, 1.4}, {20000, 50000, 1.75}, {50000, 70000, 2.45},
					{70000, 80000, 3.5}, {80000, 150000, 5.525},
					{150000, 500000, 6.37}, {500000, 1000000, 8.97},
					{1000000, inf, 10.75},
				},
				[]Bracket{
					{0, 20000, 1.4}, {20000, 50000, 1.75}, {50000, 70000, 2.45},
					{70000, 80000, 3.5}, {80000, 150000, 5.525},
					{150000, 500000, 6.37}, {500000, 1000000, 8.97},
					{1000000, inf, 10.75},
				},
			),
		},
		StdDedByYear: map[int]StandardDeduction{2025: {0, 0, 0}},
	},
	"CT": {
		Type: TaxProgressive, SupplementalRate: 0.0699, TopRate: 6.99,
		Brackets: map[int]map[domain.FilingStatus][]Bracket{
			2025: brackets(
				[]Bracket{
					{0, 10000, 2}, {10000, 50000, 4.5}, {50000, 100000, 5.5},
					{100000, 200000, 6}, {200000, 250000, 6.5},
					{250000, 500000, 6.9}, {500000, inf, 6.99},
				},
				[]Bracket{
					{0, 20000, 2}, {20000, 100000, 4.5}, {100000, 200000, 5.5},
					{200000, 400000, 6}, {400000, 500000, 6.5},
					{500000, 1000000, 6.9}, {1000000, inf, 6.99},
				},
				[]Bracket{
					{0, 16000, 2}, {16000, 80000, 4.5}, {80000, 160000, 5.5},
					{160000, 320000, 6}, {320000, 400000, 6.5},
					{400000, 800000, 6.9}, {800000, inf, 6.99},
				},
			),
		},
		StdDedByYear: map[int]StandardDeduction{2025: {0, 0, 0}},
	},
	"OR": {
		Type: TaxProgressive, SupplementalRate: 0.08, TopRate: 9.9,
		Brackets: map[int]map[domain.FilingStatus][]Bracket{
			2025: brackets(
				[]Bracket{{0, 4050, 4.75}, {4050, 10200, 6.75}, {10200, 125000, 8.75}, {125000, inf, 9.9}},
				[]Bracket{{0, 8100, 4.75}, {8100, 20400, 6.75}, {20400, 250000, 8.75}, {250000, inf, 9.9}},
				[]Bracket{{0, 4050, 4.75}, {4050, 10200, 6.75}, {10200, 125000, 8.75}, {125000, inf, 9.9}},
			),
		},
		StdDedByYear: map[int]StandardDeduction{2025: {2745, 5495, 4420}},
	},
	"MN": {
		Type: TaxProgressive, SupplementalRate: 0.0985, TopRate: 9.85,
		Brackets: map[int]map[domain.FilingStatus][]Bracket{
			2025: brackets(
				[]Bracket{{0, 31690, 5.35}, {31690, 104090, 6.8}, {104090, 193240, 7.85}, {193240, inf, 9.85}},
				[]Bracket{{0, 46330, 5.35}, {46330, 184040, 6.8}, {184040, 321450, 7.85}, {321450, inf, 9.85}},
				[]Bracket{{0, 39810, 5.35}, {39810, 159450, 6.8}, {159450, 257310, 7.85}, {257310, inf, 9.85}},
			),
		},
		StdDedByYear: map[int]StandardDeduction{2025: {14575, 29150, 21850}},
	},
	"HI": {
		Type: TaxProgressive, SupplementalRate: 0.11, TopRate: 11,
		Brackets: map[int]map[domain.FilingStatus][]Bracket{
			2025: brackets(
				[]Bracket{
					{0, 2400, 1.4}, {2400, 4800, 3.2}, {4800, 9600, 5.5},
					{9600, 14400, 6.4}, {14400, 19200, 6.8}, {19200, 24000, 7.2},
					{24000, 36000, 7.6}, {36000, 48000, 7.9}, {48000, 150000, 8.25},
					{150000, 175000, 9}, {175000, 200000, 10}, {200000, inf, 11},
				},
				[]Bracket{
					{0, 4800, 1.4}, {4800, 9600, 3.2}, {9600, 19200, 5.5},
					{19200, 28800, 6.4}, {28800, 38400, 6.8}, {38400, 48000, 7.2},
					{48000, 72000, 7.6}, {72000, 96000, 7.9}, {96000, 300000, 8.25},
					{300000, 350000, 9}, {350000, 400000, 10}, {400000, inf, 11},
				},
				[]Bracket{
					{0, 3600, 1.4}, {3600, 7200, 3.2}, {7200, 14400, 5.5},
					{14400, 21600, 6.4}, {21600, 28800, 6.8}, {28800, 36000, 7.2},
					{36000, 54000, 7.6}, {54000, 72000, 7.9}, {72000, 225000, 8.25},
					{225000, 262500, 9}, {262500, 300000, 10}, {300000, inf, 11},
				},
			),
		},
		StdDedByYear: map[int]StandardDeduction{2025: {2200, 4400, 3212}},
	},
	"WI": {
		Type: TaxProgressive, SupplementalRate: 0.0765, TopRate: 7.65,
		Brackets: map[int]map[domain.FilingStatus][]Bracket{
			2025: brackets(
				[]Bracket{{0, 14320, 3.5}, {14320, 28640, 4.4}, {28640, 315310, 5.3}, {315310, inf, 7.65}},
				[]Bracket{{0, 19090, 3.5}, {19090, 38190, 4.4}, {38190, 420420, 5.3}, {420420, inf, 7.65}},
				[]Bracket{{0, 14320, 3.5}, {14320, 28640, 4.4}, {28640, 315310, 5.3}, {315310, inf, 7.65}},
			),
		},
		StdDedByYear: map[int]StandardDeduction{2025: {13230, 24450, 16190}},
	},
	"VT": {
		Type: TaxProgressive, SupplementalRate: 0.0875, TopRate: 8.75,
		Brackets: map[int]map[domain.FilingStatus][]Bracket{
			2025: brackets(
				[]Bracket{{0, 45400, 3.35}, {45400, 110050, 6.6}, {110050, 229950, 7.6}, {229950, inf, 8.75}},
				[]Bracket{{0, 75850, 3.35}, {75850, 183700, 6.6}, {183700, 279650, 7.6}, {279650, inf, 8.75}},
				[]Bracket{{0, 60850, 3.35}, {60850, 156850, 6.6}, {156850, 254700, 7.6}, {254700, inf, 8.75}},
			),
		},
		StdDedByYear: map[int]StandardDeduction{2025: {7000, 14000, 10500}},
	},

	// Effective-rate states. Rates sampled at $50k, $100k, $200k, $400k, $1M
	// of taxable income for married filing jointly.
	"AL": {Type: TaxEffective, Rates: []float64{3.5, 4.2, 4.6, 4.8, 4.9}, TopRate: 5.0, SupplementalRate: 0.05, StdDed: StandardDeduction{2500, 7500, 4700}},
	"AR": {Type: TaxEffective, Rates: []float64{3.2, 3.8, 4.1, 4.3, 4.4}, TopRate: 4.4, SupplementalRate: 0.044, StdDed: StandardDeduction{2340, 4680, 2340}},
	"DC": {Type: TaxEffective, Rates: []float64{4.5, 6.0, 7.5, 8.5, 9.5}, TopRate: 10.75, SupplementalRate: 0.1075, StdDed: StandardDeduction{14600, 29200, 21900}},
	"DE": {Type: TaxEffective, Rates: []float64{3.8, 5.0, 5.8, 6.2, 6.5}, TopRate: 6.6, SupplementalRate: 0.066, StdDed: StandardDeduction{3250, 6500, 3250}},
	"LA": {Type: TaxEffective, Rates: []float64{1.5, 2.5, 3.3, 3.8, 4.1}, TopRate: 4.25, SupplementalRate: 0.0425},
	"MD": {Type: TaxEffective, Rates: []float64{3.5, 4.2, 4.8, 5.3, 5.6}, TopRate: 5.75, SupplementalRate: 0.0575, StdDed: StandardDeduction{2550, 5100, 3825}},
	"ME": {Type: TaxEffective, Rates: []float64{4.5, 5.5, 6.5, 7.0, 7.1}, TopRate: 7.15, SupplementalRate: 0.0715, StdDed: StandardDeduction{14600, 29200, 21900}},
	"MO": {Type: TaxEffective, Rates: []float64{3.0, 4.0, 4.6, 4.8, 4.9}, TopRate: 4.95, SupplementalRate: 0.0495, StdDed: StandardDeduction{14600, 29200, 21900}},
	"MT": {Type: TaxEffective, Rates: []float64{3.5, 4.8, 5.5, 5.8, 5.9}, TopRate: 5.9, SupplementalRate: 0.059, StdDed: StandardDeduction{5540, 11080, 8310}},
	"NE": {Type: TaxEffective, Rates: []float64{3.5, 4.5, 5.3, 5.7, 5.8}, TopRate: 5.84, SupplementalRate: 0.0584, StdDed: StandardDeduction{7900, 15800, 11250}},
	"NM": {Type: TaxEffective, Rates: []float64{2.5, 3.5, 4.5, 5.2, 5.7}, TopRate: 5.9, SupplementalRate: 0.059, StdDed: StandardDeduction{14600, 29200, 21900}},
	"OH": {Type: TaxEffective, Rates: []float64{0, 1.5, 2.8, 3.3, 3.5}, TopRate: 3.5, SupplementalRate: 0.035},
	"OK": {Type: TaxEffective, Rates: []float64{2.5, 3.5, 4.2, 4.5, 4.7}, TopRate: 4.75, SupplementalRate: 0.0475, StdDed: StandardDeduction{6350, 12700, 9350}},
	"RI": {Type: TaxEffective, Rates: []float64{3.0, 3.8, 4.5, 5.0, 5.6}, TopRate: 5.99, SupplementalRate: 0.0599, StdDed: StandardDeduction{10550, 21100, 15825}},
	"SC": {Type: TaxEffective, Rates: []float64{2.5, 4.0, 5.5, 6.0, 6.3}, TopRate: 6.4, SupplementalRate: 0.064, StdDed: StandardDeduction{14600, 29200, 21900}},
	"VA": {Type: TaxEffective, Rates: []float64{3.5, 4.8, 5.3, 5.5, 5.7}, TopRate: 5.75, SupplementalRate: 0.0575, StdDed: StandardDeduction{4500, 9000, 4500}},
	"WV": {Type: TaxEffective, Rates: []float64{3.0, 4.0, 4.8, 5.2, 5.5}, TopRate: 5.12, SupplementalRate: 0.0512},
}

// HomesteadType classifies how a state's homestead exemption works.
type HomesteadType string

const (
	HomesteadNone          HomesteadType = "none"
	HomesteadAssessedValue HomesteadType = "assessed_value"
	HomesteadMarketValue   HomesteadType = "market_value"
	HomesteadCredit        HomesteadType = "credit"
	// HomesteadEquity shields equity from creditors without reducing tax.
	HomesteadEquity HomesteadType = "equity"
)

// StateMeta carries a state's non-income-tax properties.
type StateMeta struct {
	Name               string
	AvgPropertyTax     float64 // annual %, statewide average
	HomesteadExemption float64
	HomesteadType      HomesteadType
	SDIRate            float64
	SDICap             float64 // 0 means uncapped or no program
}

var stateMeta = map[string]StateMeta{
	"AL": {Name: "Alabama", AvgPropertyTax: 0.40, HomesteadType: HomesteadNone},
	"AK": {Name: "Alaska", AvgPropertyTax: 1.04, HomesteadExemption: 150000, HomesteadType: HomesteadAssessedValue},
	"AZ": {Name: "Arizona", AvgPropertyTax: 0.62, HomesteadType: HomesteadNone},
	"AR": {Name: "Arkansas", AvgPropertyTax: 0.63, HomesteadExemption: 350, HomesteadType: HomesteadCredit},
	"CA": {Name: "California", AvgPropertyTax: 1.10, HomesteadExemption: 7000, HomesteadType: HomesteadAssessedValue, SDIRate: 0.012},
	"CO": {Name: "Colorado", AvgPropertyTax: 0.51, HomesteadType: HomesteadNone, SDIRate: 0.009},
	"CT": {Name: "Connecticut", AvgPropertyTax: 2.15, HomesteadType: HomesteadNone, SDIRate: 0.005},
	"DE": {Name: "Delaware", AvgPropertyTax: 0.57, HomesteadExemption: 50000, HomesteadType: HomesteadAssessedValue},
	"DC": {Name: "District of Columbia", AvgPropertyTax: 0.56, HomesteadExemption: 82150, HomesteadType: HomesteadAssessedValue},
	"FL": {Name: "Florida", AvgPropertyTax: 0.80, HomesteadExemption: 50000, HomesteadType: HomesteadAssessedValue},
	"GA": {Name: "Georgia", AvgPropertyTax: 0.87, HomesteadExemption: 2000, HomesteadType: HomesteadAssessedValue},
	"HI": {Name: "Hawaii", AvgPropertyTax: 0.27, HomesteadExemption: 100000, HomesteadType: HomesteadAssessedValue, SDIRate: 0.005, SDICap: 71998},
	"ID": {Name: "Idaho", AvgPropertyTax: 0.63, HomesteadExemption: 125000, HomesteadType: HomesteadMarketValue},
	"IL": {Name: "Illinois", AvgPropertyTax: 2.07, HomesteadExemption: 10000, HomesteadType: HomesteadAssessedValue},
	"IN": {Name: "Indiana", AvgPropertyTax: 0.81, HomesteadExemption: 48000, HomesteadType: HomesteadAssessedValue},
	"IA": {Name: "Iowa", AvgPropertyTax: 1.52, HomesteadExemption: 4850, HomesteadType: HomesteadCredit},
	"KS": {Name: "Kansas", AvgPropertyTax: 1.33, HomesteadType: HomesteadNone},
	"KY": {Name: "Kentucky", AvgPropertyTax: 0.83, HomesteadExemption: 46350, HomesteadType: HomesteadAssessedValue},
	"LA": {Name: "Louisiana", AvgPropertyTax: 0.55, HomesteadExemption: 75000, HomesteadType: HomesteadMarketValue},
	"ME": {Name: "Maine", AvgPropertyTax: 1.24, HomesteadExemption: 25000, HomesteadType: HomesteadAssessedValue},
	"MD": {Name: "Maryland", AvgPropertyTax: 1.05, HomesteadType: HomesteadNone},
	"MA": {Name: "Massachusetts", AvgPropertyTax: 1.15, HomesteadExemption: 125000, HomesteadType: HomesteadAssessedValue, SDIRate: 0.0088},
	"MI": {Name: "Michigan", AvgPropertyTax: 1.38, HomesteadType: HomesteadNone},
	"MN": {Name: "Minnesota", AvgPropertyTax: 1.05, HomesteadType: HomesteadNone},
	"MS": {Name: "Mississippi", AvgPropertyTax: 0.65, HomesteadExemption: 7500, HomesteadType: HomesteadAssessedValue},
	"MO": {Name: "Missouri", AvgPropertyTax: 0.91, HomesteadType: HomesteadNone},
	"MT": {Name: "Montana", AvgPropertyTax: 0.74, HomesteadType: HomesteadNone},
	"NE": {Name: "Nebraska", AvgPropertyTax: 1.65, HomesteadType: HomesteadNone},
	"NV": {Name: "Nevada", AvgPropertyTax: 0.53, HomesteadExemption: 605000, HomesteadType: HomesteadEquity},
	"NH": {Name: "New Hampshire", AvgPropertyTax: 1.86, HomesteadType: HomesteadNone},
	"NJ": {Name: "New Jersey", AvgPropertyTax: 2.23, HomesteadType: HomesteadNone, SDIRate: 0.006, SDICap: 43300},
	"NM": {Name: "New Mexico", AvgPropertyTax: 0.67, HomesteadType: HomesteadNone},
	"NY": {Name: "New York", AvgPropertyTax: 1.62, HomesteadType: HomesteadNone, SDIRate: 0.005, SDICap: 31200},
	"NC": {Name: "North Carolina", AvgPropertyTax: 0.77, HomesteadType: HomesteadNone},
	"ND": {Name: "North Dakota", AvgPropertyTax: 0.98, HomesteadType: HomesteadNone},
	"OH": {Name: "Ohio", AvgPropertyTax: 1.53, HomesteadExemption: 26200, HomesteadType: HomesteadAssessedValue},
	"OK": {Name: "Oklahoma", AvgPropertyTax: 0.87, HomesteadExemption: 1000, HomesteadType: HomesteadAssessedValue},
	"OR": {Name: "Oregon", AvgPropertyTax: 0.87, HomesteadType: HomesteadNone, SDIRate: 0.006},
	"PA": {Name: "Pennsylvania", AvgPropertyTax: 1.53, HomesteadType: HomesteadNone},
	"RI": {Name: "Rhode Island", AvgPropertyTax: 1.40, HomesteadType: HomesteadNone, SDIRate: 0.011, SDICap: 87000},
	"SC": {Name: "South Carolina", AvgPropertyTax: 0.57, HomesteadExemption: 50000, HomesteadType: HomesteadAssessedValue},
	"SD": {Name: "South Dakota", AvgPropertyTax: 1.22, HomesteadType: HomesteadNone},
	"TN": {Name: "Tennessee", AvgPropertyTax: 0.56, HomesteadExemption: 5000, HomesteadType: HomesteadAssessedValue},
	"TX": {Name: "Texas", AvgPropertyTax: 1.60, HomesteadExemption: 100000, HomesteadType: HomesteadAssessedValue},
	"UT": {Name: "Utah", AvgPropertyTax: 0.58, HomesteadType: HomesteadNone},
	"VT": {Name: "Vermont", AvgPropertyTax: 1.83, HomesteadType: HomesteadNone},
	"VA": {Name: "Virginia", AvgPropertyTax: 0.80, HomesteadType: HomesteadNone},
	"WA": {Name: "Washington", AvgPropertyTax: 0.87, HomesteadType: HomesteadNone, SDIRate: 0.0058},
	"WV": {Name: "West Virginia", AvgPropertyTax: 0.57, HomesteadExemption: 20000, HomesteadType: HomesteadAssessedValue},
	"WI": {Name: "Wisconsin", AvgPropertyTax: 1.61, HomesteadType: HomesteadNone},
	"WY": {Name: "Wyoming", AvgPropertyTax: 0.55, HomesteadType: HomesteadNone},
}

// StateConfig returns a state's income-tax configuration. Unknown codes
// report ok=false and callers treat them as no-tax states.
func StateConfig(code string) (StateTaxConfig, bool) {
	cfg, ok := stateTaxData[code]
	return cfg, ok
}

// MetaFor returns a state's metadata.
func MetaFor(code string) (StateMeta, bool) {
	m, ok := stateMeta[code]
	return m, ok
}

// StateCodes lists every supported state code in no particular order.
func StateCodes() []string {
	codes := make([]string, 0, len(stateMeta))
	for code := range stateMeta {
		codes = append(codes, code)
	}
	return codes
}

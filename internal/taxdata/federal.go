// Package taxdata holds the federal and state tax tables the calculation
// engine draws on, together with the lookup helpers that resolve a year,
// filing status and income to concrete rates and deductions.
//
// Table values are plain float64 literals for readability; every helper
// converts to decimal at its boundary so callers stay in exact arithmetic.
// Bracket rates are percentages (a Rate of 22 means 22%).
package taxdata

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

// Bracket is one marginal tax bracket. Max is math.Inf(1) for the top
// bracket.
type Bracket struct {
	Min  float64
	Max  float64
	Rate float64
}

// StandardDeduction holds the deduction amounts per filing status.
type StandardDeduction struct {
	Single          float64
	MarriedJointly  float64
	HeadOfHousehold float64
}

// For returns the deduction for a filing status, defaulting to married
// filing jointly for unrecognized values.
func (sd StandardDeduction) For(fs domain.FilingStatus) float64 {
	switch fs {
	case domain.FilingSingle:
		return sd.Single
	case domain.FilingHeadOfHousehold:
		return sd.HeadOfHousehold
	default:
		return sd.MarriedJointly
	}
}

// SALTPhaseout describes the income-based reduction of the SALT cap.
type SALTPhaseout struct {
	Threshold float64
	Rate      float64
	Floor     float64
}

// YearData is one tax year's federal parameters.
type YearData struct {
	Federal           map[domain.FilingStatus][]Bracket
	StandardDeduction StandardDeduction
	SALTCap           float64
	SALTPhaseout      *SALTPhaseout
	SSWageBase        float64
	Max401k           float64
}

var inf = math.Inf(1)

var federalYears = map[int]YearData{
	2024: {
		Federal: map[domain.FilingStatus][]Bracket{
			domain.FilingSingle: {
				{0, 11600, 10}, {11600, 47150, 12}, {47150, 100525, 22},
				{100525, 191950, 24}, {191950, 243725, 32}, {243725, 609350, 35},
				{609350, inf, 37},
			},
			domain.FilingMarriedJointly: {
				{0, 23200, 10}, {23200, 94300, 12}, {94300, 201050, 22},
				{201050, 383900, 24}, {383900, 487450, 32}, {487450, 731200, 35},
				{731200, inf, 37},
			},
			domain.FilingHeadOfHousehold: {
				{0, 16550, 10}, {16550, 63100, 12}, {63100, 100500, 22},
				{100500, 191950, 24}, {191950, 243700, 32}, {243700, 609350, 35},
				{609350, inf, 37},
			},
		},
		StandardDeduction: StandardDeduction{Single: 14600, MarriedJointly: 29200, HeadOfHousehold: 21900},
		SALTCap:           10000,
		SALTPhaseout:      nil,
		SSWageBase:        168600,
		Max401k:           23000,
	},
	2025: {
		Federal: map[domain.FilingStatus][]Bracket{
			domain.FilingSingle: {
				{0, 11925, 10}, {11925, 48475, 12}, {48475, 103350, 22},
				{103350, 197300, 24}, {197300, 250525, 32}, {250525, 626350, 35},
				{626350, inf, 37},
			},
			domain.FilingMarriedJointly: {
				{0, 23850, 10}, {23850, 96950, 12}, {96950, 206700, 22},
				{206700, 394600, 24}, {394600, 501050, 32}, {501050, 751600, 35},
				{751600, inf, 37},
			},
			domain.FilingHeadOfHousehold: {
				{0, 17000, 10}, {17000, 64850, 12}, {64850, 103350, 22},
				{103350, 197300, 24}, {197300, 250500, 32}, {250500, 626350, 35},
				{626350, inf, 37},
			},
		},
		StandardDeduction: StandardDeduction{Single: 15750, MarriedJointly: 31500, HeadOfHousehold: 23625},
		SALTCap:           40000,
		SALTPhaseout:      &SALTPhaseout{Threshold: 500000, Rate: 0.30, Floor: 10000},
		SSWageBase:        176100,
		Max401k:           23500,
	},
	2026: {
		Federal: map[domain.FilingStatus][]Bracket{
			domain.FilingSingle: {
				{0, 12400, 10}, {12400, 50400, 12}, {50400, 105700, 22},
				{105700, 201775, 24}, {201775, 256225, 32}, {256225, 640600, 35},
				{640600, inf, 37},
			},
			domain.FilingMarriedJointly: {
				{0, 24800, 10}, {24800, 100800, 12}, {100800, 211400, 22},
				{211400, 403550, 24}, {403550, 512450, 32}, {512450, 768700, 35},
				{768700, inf, 37},
			},
			domain.FilingHeadOfHousehold: {
				{0, 17700, 10}, {17700, 67450, 12}, {67450, 105700, 22},
				{105700, 201775, 24}, {201775, 256200, 32}, {256200, 640600, 35},
				{640600, inf, 37},
			},
		},
		StandardDeduction: StandardDeduction{Single: 16100, MarriedJointly: 32200, HeadOfHousehold: 24150},
		SALTCap:           40400,
		SALTPhaseout:      &SALTPhaseout{Threshold: 505000, Rate: 0.30, Floor: 10000},
		SSWageBase:        184500,
		Max401k:           24500,
	},
}

// LatestYear is the most recent tax year with full tables.
const LatestYear = 2026

// ForYear returns the federal data for a year, falling back to the latest
// available year when the requested one has no table.
func ForYear(year int) YearData {
	if d, ok := federalYears[year]; ok {
		return d
	}
	return federalYears[LatestYear]
}

// AvailableYears lists the years with full federal tables, ascending.
func AvailableYears() []int {
	return []int{2024, 2025, 2026}
}

// FederalMarginalRate returns the marginal bracket rate, in percent, for
// the given income. Incomes beyond every bracket fall to the top 37% rate.
func FederalMarginalRate(income decimal.Decimal, fs domain.FilingStatus, year int) decimal.Decimal {
	data := ForYear(year)
	brackets, ok := data.Federal[fs]
	if !ok {
		brackets = data.Federal[domain.FilingMarriedJointly]
	}
	inc := income.InexactFloat64()
	for _, b := range brackets {
		if inc >= b.Min && inc < b.Max {
			return decimal.NewFromFloat(b.Rate)
		}
	}
	return decimal.NewFromInt(37)
}

// FederalStandardDeduction returns the standard deduction for a year and
// filing status.
func FederalStandardDeduction(year int, fs domain.FilingStatus) decimal.Decimal {
	return decimal.NewFromFloat(ForYear(year).StandardDeduction.For(fs))
}

// SALTCap returns the SALT deduction cap for a year, applying the
// income-based phase-out when the year defines one. The cap never drops
// below the phase-out floor.
func SALTCap(year int, magi decimal.Decimal) decimal.Decimal {
	data := ForYear(year)
	cap := data.SALTCap
	if p := data.SALTPhaseout; p != nil {
		m := magi.InexactFloat64()
		if m > p.Threshold {
			reduced := cap - (m-p.Threshold)*p.Rate
			cap = math.Max(p.Floor, reduced)
		}
	}
	return decimal.NewFromFloat(cap)
}

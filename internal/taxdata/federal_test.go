package taxdata

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

func TestFederalMarginalRate_2025(t *testing.T) {
	tests := []struct {
		name   string
		income int64
		fs     domain.FilingStatus
		rate   int64
	}{
		{"married at 480k lands in 32", 480000, domain.FilingMarriedJointly, 32},
		{"single at 480k lands in 35", 480000, domain.FilingSingle, 35},
		{"married at 90k lands in 12", 90000, domain.FilingMarriedJointly, 12},
		{"head of household at 150k lands in 24", 150000, domain.FilingHeadOfHousehold, 24},
		{"bracket floor is inclusive", 394600, domain.FilingMarriedJointly, 32},
		{"beyond every bracket tops out at 37", 5000000, domain.FilingMarriedJointly, 37},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := FederalMarginalRate(decimal.NewFromInt(tt.income), tt.fs, 2025)
			assert.True(t, rate.Equal(decimal.NewFromInt(tt.rate)),
				"got %s, want %d", rate.String(), tt.rate)
		})
	}
}

func TestFederalMarginalRate_UnknownYearFallsBackToLatest(t *testing.T) {
	latest := FederalMarginalRate(decimal.NewFromInt(480000), domain.FilingMarriedJointly, LatestYear)
	future := FederalMarginalRate(decimal.NewFromInt(480000), domain.FilingMarriedJointly, 2035)

	assert.True(t, future.Equal(latest), "Missing years should use the latest table")
}

func TestFederalStandardDeduction(t *testing.T) {
	assert.True(t, FederalStandardDeduction(2025, domain.FilingMarriedJointly).Equal(decimal.NewFromInt(31500)))
	assert.True(t, FederalStandardDeduction(2025, domain.FilingSingle).Equal(decimal.NewFromInt(15750)))
	assert.True(t, FederalStandardDeduction(2024, domain.FilingMarriedJointly).Equal(decimal.NewFromInt(29200)))
	assert.True(t, FederalStandardDeduction(2026, domain.FilingHeadOfHousehold).Equal(decimal.NewFromInt(24150)))
}

func TestFederalStandardDeduction_UnrecognizedStatusDefaultsToMarried(t *testing.T) {
	got := FederalStandardDeduction(2025, domain.FilingStatus("qualifying_widow"))

	assert.True(t, got.Equal(decimal.NewFromInt(31500)))
}

func TestSALTCap_NoPhaseoutIn2024(t *testing.T) {
	cap := SALTCap(2024, decimal.NewFromInt(2000000))

	assert.True(t, cap.Equal(decimal.NewFromInt(10000)), "2024 carries the flat 10k cap")
}

func TestSALTCap_2025BelowThreshold(t *testing.T) {
	cap := SALTCap(2025, decimal.NewFromInt(480000))

	assert.True(t, cap.Equal(decimal.NewFromInt(40000)), "Below 500k MAGI the full 40k cap applies")
}

func TestSALTCap_2025PhaseoutReducesCap(t *testing.T) {
	// 40000 - (550000-500000)*0.30 = 25000.
	cap := SALTCap(2025, decimal.NewFromInt(550000))

	assert.True(t, cap.Equal(decimal.NewFromInt(25000)))
}

func TestSALTCap_2025PhaseoutFloor(t *testing.T) {
	cap := SALTCap(2025, decimal.NewFromInt(650000))

	assert.True(t, cap.Equal(decimal.NewFromInt(10000)), "The cap never drops below the 10k floor")
}

func TestForYear_KnownAndUnknown(t *testing.T) {
	assert.Equal(t, 40000.0, ForYear(2025).SALTCap)
	assert.Equal(t, 40400.0, ForYear(2031).SALTCap, "Unknown years resolve to the latest table")
}

func TestAvailableYears_Ascending(t *testing.T) {
	years := AvailableYears()

	assert.Equal(t, []int{2024, 2025, 2026}, years)
}

package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raymondkneipp/cash-money/internal/domain"
)

func TestCompoundGrowthNoRateNoContribution(t *testing.T) {
	fv := CompoundGrowth(dec(1000), dec(0), 5, dec(0), domain.Monthly)
	assert.True(t, fv.Equal(dec(1000)), "got %s", fv)
}

func TestCompoundGrowthNoRateLinearContributions(t *testing.T) {
	// 1000 + 100 * 24 months
	fv := CompoundGrowth(dec(1000), dec(0), 2, dec(100), domain.Monthly)
	assert.True(t, fv.Equal(dec(3400)), "got %s", fv)
}

func TestCompoundGrowthAnnuityFutureValue(t *testing.T) {
	// 12% annual, monthly contributions of 100 for one year:
	// FV = 100 * ((1.01^12 - 1) / 0.01) = 1268.2503...
	fv := CompoundGrowth(dec(0), dec(12), 1, dec(100), domain.Monthly)
	assert.InDelta(t, 1268.25, fv.InexactFloat64(), 0.01)
}

func TestCompoundGrowthPrincipalOnly(t *testing.T) {
	// 10000 * 1.005^12 = 10616.778...
	fv := CompoundGrowth(dec(10000), dec(6), 1, dec(0), domain.Monthly)
	assert.InDelta(t, 10616.78, fv.InexactFloat64(), 0.01)
}

func TestCompoundGrowthMonotonicInTime(t *testing.T) {
	prev := CompoundGrowth(dec(1000), dec(7), 0, dec(50), domain.Monthly)
	for years := 1; years <= 80; years++ {
		fv := CompoundGrowth(dec(1000), dec(7), float64(years), dec(50), domain.Monthly)
		assert.True(t, fv.GreaterThan(prev), "year %d: %s not > %s", years, fv, prev)
		prev = fv
	}
}

func TestCompoundGrowthFractionalYears(t *testing.T) {
	half := CompoundGrowth(dec(1000), dec(7), 0.5, dec(0), domain.Monthly)
	full := CompoundGrowth(dec(1000), dec(7), 1, dec(0), domain.Monthly)
	assert.True(t, half.GreaterThan(dec(1000)))
	assert.True(t, full.GreaterThan(half))
}

func TestCompoundGrowthZeroYears(t *testing.T) {
	fv := CompoundGrowth(dec(2500), dec(9), 0, dec(100), domain.Biweekly)
	assert.InDelta(t, 2500, fv.InexactFloat64(), 0.000001)
}

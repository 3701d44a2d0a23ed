package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/raymondkneipp/cash-money/internal/domain"
)

// CompoundGrowth returns the future value of principal after elapsedYears of
// growth at annualRatePercent, with a fixed contribution added once per
// contributionFrequency period (ordinary annuity). elapsedYears may be
// fractional. A non-positive periodic rate degrades to simple accumulation.
//
// The exponential kernel runs in float64: decimal exponentiation does not
// support the fractional exponents an 80-year horizon produces, and double
// precision is what the formulas are specified against.
func CompoundGrowth(principal, annualRatePercent decimal.Decimal, elapsedYears float64, contribution decimal.Decimal, contributionFrequency domain.Frequency) decimal.Decimal {
	periodsPerYear := float64(contributionFrequency.PeriodsPerYear())
	periods := elapsedYears * periodsPerYear
	rate := annualRatePercent.InexactFloat64() / 100 / periodsPerYear

	p := principal.InexactFloat64()
	c := contribution.InexactFloat64()

	if rate <= 0 {
		return decimal.NewFromFloat(p + c*periods)
	}

	growth := math.Pow(1+rate, periods)
	futureValue := p*growth + c*((growth-1)/rate)
	return decimal.NewFromFloat(futureValue)
}

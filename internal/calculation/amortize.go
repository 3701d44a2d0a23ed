package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/raymondkneipp/cash-money/internal/domain"
)

// Amortization describes how long a debt takes to reach zero under fixed
// periodic payments. When NeverPaysOff is set the payment does not cover the
// interest accruing each period and the balance never reaches zero;
// PayoffPeriods and TotalPaid are meaningless in that case.
type Amortization struct {
	PayoffPeriods int
	TotalPaid     decimal.Decimal
	NeverPaysOff  bool
}

// Amortize computes the number of periods at the given frequency until a
// balance of principal is retired by a fixed payment per period, with
// interest accruing at annualRatePercent compounded each period.
//
// The closed form n = -ln(1 - P*r/m) / ln(1+r) is undefined when the payment
// m does not exceed the per-period interest P*r; that case is reported as
// NeverPaysOff instead of letting a non-finite value escape.
func Amortize(principal, annualRatePercent, payment decimal.Decimal, freq domain.Frequency) Amortization {
	if !principal.IsPositive() {
		return Amortization{TotalPaid: decimal.Zero}
	}
	if !payment.IsPositive() {
		return Amortization{NeverPaysOff: true, TotalPaid: decimal.Zero}
	}

	p := principal.InexactFloat64()
	m := payment.InexactFloat64()
	periodsPerYear := float64(freq.PeriodsPerYear())
	rate := annualRatePercent.InexactFloat64() / 100 / periodsPerYear

	var periods int
	if rate <= 0 {
		// Straight-line paydown.
		periods = int(math.Ceil(p / m))
	} else {
		if m <= p*rate {
			return Amortization{NeverPaysOff: true, TotalPaid: decimal.Zero}
		}
		periods = int(math.Ceil(-math.Log(1-p*rate/m) / math.Log(1+rate)))
	}

	return Amortization{
		PayoffPeriods: periods,
		TotalPaid:     payment.Mul(decimal.NewFromInt(int64(periods))),
	}
}

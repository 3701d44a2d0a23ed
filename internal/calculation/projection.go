package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/raymondkneipp/cash-money/internal/domain"
)

// DefaultEndAge is the projection horizon used when a scenario does not set one.
const DefaultEndAge = 65

// ProjectionInput carries the already-aggregated annual flows plus the debt
// and asset snapshots for one projection run. Income and expense arrive as
// scalars so the projector depends on the aggregate calculators' outputs,
// not on raw records.
type ProjectionInput struct {
	StartAge      int
	EndAge        int
	AnnualIncome  decimal.Decimal
	AnnualExpense decimal.Decimal
	Debts         []domain.Account
	Assets        []domain.Account
}

// debtState is the per-debt working record for a single projection run.
// Created fresh on every call so the projector stays pure; debts move
// Active -> PaidOff exactly once and never back.
type debtState struct {
	account        domain.Account
	periodsPerYear float64
	annualPayment  decimal.Decimal
	yearsToPayoff  float64
	neverPaysOff   bool
	paidOff        bool
}

// ProjectNetWorth produces one ProjectionPoint per integer age from StartAge
// to EndAge inclusive. A nil debts or assets slice, or an unset start age,
// means the caller's data is not ready yet and yields an empty series rather
// than an error. StartAge beyond EndAge also yields an empty series.
//
// Asset values are recomputed from the original principal with the closed
// form at every step, so floating-point drift never accumulates across
// years. Debt balances likewise come from the closed-form balance at
// year*periods, clamped at zero. Once a debt's precomputed payoff year is
// reached its annualized payment joins the freed cash flow for every
// subsequent year.
func (e *Engine) ProjectNetWorth(in ProjectionInput) []domain.ProjectionPoint {
	if in.StartAge <= 0 || in.Debts == nil || in.Assets == nil {
		return nil
	}
	if in.StartAge > in.EndAge {
		return nil
	}

	debts := make([]debtState, len(in.Debts))
	for i, d := range in.Debts {
		am := Amortize(d.Principal, d.Rate, d.Contribution, d.ContributionFrequency)
		ppy := float64(d.ContributionFrequency.PeriodsPerYear())
		debts[i] = debtState{
			account:        d,
			periodsPerYear: ppy,
			annualPayment:  d.AnnualContribution(),
			yearsToPayoff:  float64(am.PayoffPeriods) / ppy,
			neverPaysOff:   am.NeverPaysOff,
		}
		if am.NeverPaysOff {
			e.Logger.Warnf("debt %q: payment %s does not cover accruing interest, treating as never paid off",
				d.Name, d.Contribution.StringFixed(2))
		}
	}

	annualCashFlow := in.AnnualIncome.Sub(in.AnnualExpense)
	freedCashFlow := decimal.Zero

	points := make([]domain.ProjectionPoint, 0, in.EndAge-in.StartAge+1)
	for age := in.StartAge; age <= in.EndAge; age++ {
		year := age - in.StartAge

		totalAssets := decimal.Zero
		for _, a := range in.Assets {
			totalAssets = totalAssets.Add(CompoundGrowth(a.Principal, a.Rate, float64(year), a.Contribution, a.ContributionFrequency))
		}

		totalDebts := decimal.Zero
		remainingPayments := decimal.Zero
		for i := range debts {
			d := &debts[i]
			if d.paidOff {
				continue
			}
			if !d.neverPaysOff && float64(year) >= d.yearsToPayoff {
				d.paidOff = true
				freedCashFlow = freedCashFlow.Add(d.annualPayment)
				continue
			}
			totalDebts = totalDebts.Add(remainingBalance(d, year))
			remainingPayments = remainingPayments.Add(d.annualPayment)
		}

		points = append(points, domain.ProjectionPoint{
			Age:      age,
			NetWorth: totalAssets.Sub(totalDebts),
			Assets:   totalAssets,
			Debts:    totalDebts,
			CashFlow: annualCashFlow.Sub(remainingPayments).Add(freedCashFlow),
		})
	}

	return points
}

// remainingBalance evaluates the closed-form amortization balance at the
// given whole year, clamped at zero.
func remainingBalance(d *debtState, year int) decimal.Decimal {
	principal := d.account.Principal.InexactFloat64()
	payment := d.account.Contribution.InexactFloat64()
	rate := d.account.Rate.InexactFloat64() / 100 / d.periodsPerYear
	periods := float64(year) * d.periodsPerYear

	var balance float64
	if rate > 0 {
		growth := math.Pow(1+rate, periods)
		balance = principal*growth - payment*((growth-1)/rate)
	} else {
		balance = principal - payment*periods
	}
	if balance < 0 {
		balance = 0
	}
	return decimal.NewFromFloat(balance)
}

// Summarize derives the headline numbers from a projection series. An empty
// series summarizes to all zeros. The growth percentage is only reported
// against a strictly positive starting net worth.
func Summarize(points []domain.ProjectionPoint) domain.ProjectionSummary {
	if len(points) == 0 {
		return domain.ProjectionSummary{}
	}
	initial := points[0].NetWorth
	final := points[len(points)-1].NetWorth
	growth := final.Sub(initial)

	pct := decimal.Zero
	if initial.IsPositive() {
		pct = growth.Div(initial).Mul(decimal.NewFromInt(100))
	}

	return domain.ProjectionSummary{
		InitialNetWorth:  initial,
		FinalNetWorth:    final,
		NetWorthGrowth:   growth,
		GrowthPercentage: pct,
	}
}

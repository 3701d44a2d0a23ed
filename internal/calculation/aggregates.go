package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/raymondkneipp/cash-money/internal/domain"
)

// Aggregate calculators are pure functions over record snapshots. They feed
// the dashboard totals and the projector's scalar inputs.

// TotalAnnual sums a set of recurring amounts annualized at each record's
// own frequency. Returns zero for an empty set.
func TotalAnnual(records []domain.RecurringAmount) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		periods := decimal.NewFromInt(int64(r.Frequency.PeriodsPerYear()))
		total = total.Add(r.Amount.Mul(periods))
	}
	return total
}

// TotalPrincipal sums account balances with no frequency conversion.
func TotalPrincipal(accounts []domain.Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Principal)
	}
	return total
}

// TotalAnnualPayments sums annualized contributions, capping each account's
// payment at its outstanding principal. The cap keeps a small balance with a
// large payment from overstating annual debt service beyond what could
// actually be paid against that balance.
func TotalAnnualPayments(accounts []domain.Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(decimal.Min(a.AnnualContribution(), a.Principal))
	}
	return total
}

// DebtToIncomeRatio returns annual debt service divided by annual income as
// a fraction (0.36 means 36%). Zero income yields zero, never a NaN.
func DebtToIncomeRatio(debts []domain.Account, incomes []domain.RecurringAmount) decimal.Decimal {
	annualIncome := TotalAnnual(incomes)
	if !annualIncome.IsPositive() {
		return decimal.Zero
	}
	return TotalAnnualPayments(debts).Div(annualIncome)
}

// WeightedAverageRate returns the arithmetic mean of account rates, zero for
// an empty set. The mean is intentionally unweighted by principal.
func WeightedAverageRate(accounts []domain.Account) decimal.Decimal {
	if len(accounts) == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Rate)
	}
	return total.Div(decimal.NewFromInt(int64(len(accounts))))
}

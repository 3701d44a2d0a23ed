package calculation

import (
	"context"
	"fmt"

	"github.com/raymondkneipp/cash-money/internal/domain"
)

// Engine orchestrates the aggregate calculators and the net worth projector
// over scenario snapshots. It holds no state between runs beyond its logger,
// so one engine may serve concurrent scenarios.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// RunScenario computes the full report for one scenario snapshot: aggregate
// totals, the year-by-year projection, and its summary.
func (e *Engine) RunScenario(ctx context.Context, scenario *domain.Scenario) (*domain.ScenarioReport, error) {
	if scenario == nil {
		return nil, fmt.Errorf("no scenario provided")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	endAge := scenario.EndAge
	if endAge == 0 {
		endAge = DefaultEndAge
	}

	annualIncome := TotalAnnual(scenario.Incomes)
	annualExpense := TotalAnnual(scenario.Expenses)

	e.Logger.Debugf("scenario %q: income=%s expense=%s debts=%d assets=%d",
		scenario.Name, annualIncome.StringFixed(2), annualExpense.StringFixed(2),
		len(scenario.Debts), len(scenario.Assets))

	projection := e.ProjectNetWorth(ProjectionInput{
		StartAge:      scenario.Age,
		EndAge:        endAge,
		AnnualIncome:  annualIncome,
		AnnualExpense: annualExpense,
		Debts:         scenario.Debts,
		Assets:        scenario.Assets,
	})

	return &domain.ScenarioReport{
		ScenarioName:       scenario.Name,
		StartAge:           scenario.Age,
		EndAge:             endAge,
		AnnualIncome:       annualIncome,
		AnnualExpense:      annualExpense,
		AnnualCashFlow:     annualIncome.Sub(annualExpense),
		TotalDebtPrincipal: TotalPrincipal(scenario.Debts),
		TotalDebtPayments:  TotalAnnualPayments(scenario.Debts),
		TotalAssetValue:    TotalPrincipal(scenario.Assets),
		DebtToIncome:       DebtToIncomeRatio(scenario.Debts, scenario.Incomes),
		AverageDebtRate:    WeightedAverageRate(scenario.Debts),
		AverageAssetRate:   WeightedAverageRate(scenario.Assets),
		Projection:         projection,
		Summary:            Summarize(projection),
	}, nil
}

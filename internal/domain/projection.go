package domain

import "github.com/shopspring/decimal"

// ProjectionPoint is one year of the net worth projection.
type ProjectionPoint struct {
	Age      int             `yaml:"age" json:"age"`
	NetWorth decimal.Decimal `yaml:"net_worth" json:"netWorth"`
	Assets   decimal.Decimal `yaml:"assets" json:"assets"`
	Debts    decimal.Decimal `yaml:"debts" json:"debts"`
	CashFlow decimal.Decimal `yaml:"cash_flow" json:"cashFlow"`
}

// ProjectionSummary holds the headline numbers derived from a projection series.
type ProjectionSummary struct {
	InitialNetWorth  decimal.Decimal `yaml:"initial_net_worth" json:"initialNetWorth"`
	FinalNetWorth    decimal.Decimal `yaml:"final_net_worth" json:"finalNetWorth"`
	NetWorthGrowth   decimal.Decimal `yaml:"net_worth_growth" json:"netWorthGrowth"`
	GrowthPercentage decimal.Decimal `yaml:"growth_percentage" json:"growthPercentage"`
}

// ScenarioReport bundles the aggregate totals and the projection for one
// scenario; it is what the formatters and the HTTP API hand to consumers.
type ScenarioReport struct {
	ScenarioName string `yaml:"scenario_name" json:"scenarioName"`
	StartAge     int    `yaml:"start_age" json:"startAge"`
	EndAge       int    `yaml:"end_age" json:"endAge"`

	AnnualIncome   decimal.Decimal `yaml:"annual_income" json:"annualIncome"`
	AnnualExpense  decimal.Decimal `yaml:"annual_expense" json:"annualExpense"`
	AnnualCashFlow decimal.Decimal `yaml:"annual_cash_flow" json:"annualCashFlow"`

	TotalDebtPrincipal decimal.Decimal `yaml:"total_debt_principal" json:"totalDebtPrincipal"`
	TotalDebtPayments  decimal.Decimal `yaml:"total_debt_payments" json:"totalDebtPayments"`
	TotalAssetValue    decimal.Decimal `yaml:"total_asset_value" json:"totalAssetValue"`

	DebtToIncome     decimal.Decimal `yaml:"debt_to_income" json:"debtToIncome"`
	AverageDebtRate  decimal.Decimal `yaml:"average_debt_rate" json:"averageDebtRate"`
	AverageAssetRate decimal.Decimal `yaml:"average_asset_rate" json:"averageAssetRate"`

	Projection []ProjectionPoint `yaml:"projection" json:"projection"`
	Summary    ProjectionSummary `yaml:"summary" json:"summary"`
}

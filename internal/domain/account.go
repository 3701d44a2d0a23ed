package domain

import "github.com/shopspring/decimal"

// RecurringAmount is a repeating cash flow: an income or an expense.
// The two share one shape; which collection holds the record decides which it is.
type RecurringAmount struct {
	ID        int             `yaml:"id" json:"id"`
	Name      string          `yaml:"name" json:"name"`
	Amount    decimal.Decimal `yaml:"amount" json:"amount"`
	Frequency Frequency       `yaml:"frequency" json:"frequency"`
}

// Account is an interest-bearing balance: a debt whose principal is paid down
// toward zero, or an asset whose value grows with contributions. Rate is an
// annual percentage (5 means 5%). Compound is the compounding cadence;
// Contribution is paid once per ContributionFrequency period. Legacy records
// that carried a single frequency load with Compound equal to
// ContributionFrequency.
type Account struct {
	ID                    int             `yaml:"id" json:"id"`
	Name                  string          `yaml:"name" json:"name"`
	Principal             decimal.Decimal `yaml:"principal" json:"principal"`
	Rate                  decimal.Decimal `yaml:"rate" json:"rate"`
	Compound              Frequency       `yaml:"compound,omitempty" json:"compound,omitempty"`
	Contribution          decimal.Decimal `yaml:"contribution" json:"contribution"`
	ContributionFrequency Frequency       `yaml:"contribution_frequency" json:"contributionFrequency"`
}

// AnnualContribution returns the contribution annualized at its own cadence.
func (a Account) AnnualContribution() decimal.Decimal {
	return a.Contribution.Mul(decimal.NewFromInt(int64(a.ContributionFrequency.PeriodsPerYear())))
}

package domain

// Scenario is a named planning context with a snapshot of every record that
// belongs to it. The record store that owns the live data serializes one of
// these per projection request; the engine only ever reads it.
type Scenario struct {
	ID       int               `yaml:"id,omitempty" json:"id,omitempty"`
	Name     string            `yaml:"name" json:"name"`
	Age      int               `yaml:"age" json:"age"`
	EndAge   int               `yaml:"end_age,omitempty" json:"endAge,omitempty"`
	Incomes  []RecurringAmount `yaml:"incomes" json:"incomes"`
	Expenses []RecurringAmount `yaml:"expenses" json:"expenses"`
	Debts    []Account         `yaml:"debts" json:"debts"`
	Assets   []Account         `yaml:"assets" json:"assets"`
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/raymondkneipp/cash-money/internal/calculation"
	"github.com/raymondkneipp/cash-money/internal/domain"
)

// InputParser handles parsing of scenario snapshot files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML or JSON file, applies defaults,
// and validates it. The extension picks the codec; anything that is not
// .json parses as YAML.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var scenario domain.Scenario
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		if err := json.Unmarshal(data, &scenario); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &scenario); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	Normalize(&scenario)
	if err := ip.ValidateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}

	return &scenario, nil
}

// Normalize fills in the defaults a hand-written or legacy snapshot may
// omit: the projection horizon, and the compounding cadence for accounts
// recorded in the old single-frequency shape.
func Normalize(scenario *domain.Scenario) {
	if scenario.EndAge == 0 {
		scenario.EndAge = calculation.DefaultEndAge
	}
	for i := range scenario.Debts {
		if scenario.Debts[i].Compound == "" {
			scenario.Debts[i].Compound = scenario.Debts[i].ContributionFrequency
		}
	}
	for i := range scenario.Assets {
		if scenario.Assets[i].Compound == "" {
			scenario.Assets[i].Compound = scenario.Assets[i].ContributionFrequency
		}
	}
}

// ValidateScenario validates a loaded scenario. It enforces what the CRUD
// forms that own the live records guarantee, so malformed hand-edited files
// fail loudly instead of projecting garbage.
func (ip *InputParser) ValidateScenario(scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if scenario.Age <= 0 {
		return fmt.Errorf("scenario age must be positive")
	}
	if scenario.EndAge < scenario.Age {
		return fmt.Errorf("end age %d cannot be before starting age %d", scenario.EndAge, scenario.Age)
	}

	for i, r := range scenario.Incomes {
		if err := validateRecurring(&r); err != nil {
			return fmt.Errorf("income %d (%s): %w", i, r.Name, err)
		}
	}
	for i, r := range scenario.Expenses {
		if err := validateRecurring(&r); err != nil {
			return fmt.Errorf("expense %d (%s): %w", i, r.Name, err)
		}
	}
	for i, a := range scenario.Debts {
		if err := validateAccount(&a); err != nil {
			return fmt.Errorf("debt %d (%s): %w", i, a.Name, err)
		}
	}
	for i, a := range scenario.Assets {
		if err := validateAccount(&a); err != nil {
			return fmt.Errorf("asset %d (%s): %w", i, a.Name, err)
		}
	}

	return nil
}

func validateRecurring(r *domain.RecurringAmount) error {
	if r.Amount.IsNegative() {
		return fmt.Errorf("amount cannot be negative")
	}
	if !r.Frequency.Valid() {
		return fmt.Errorf("unknown frequency %q", r.Frequency)
	}
	return nil
}

func validateAccount(a *domain.Account) error {
	if a.Principal.IsNegative() {
		return fmt.Errorf("principal cannot be negative")
	}
	if a.Rate.IsNegative() {
		return fmt.Errorf("rate cannot be negative")
	}
	if a.Contribution.IsNegative() {
		return fmt.Errorf("contribution cannot be negative")
	}
	if !a.ContributionFrequency.Valid() {
		return fmt.Errorf("unknown contribution frequency %q", a.ContributionFrequency)
	}
	if !a.Compound.Valid() {
		return fmt.Errorf("unknown compound frequency %q", a.Compound)
	}
	return nil
}

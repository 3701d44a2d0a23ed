package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raymondkneipp/cash-money/internal/calculation"
	"github.com/raymondkneipp/cash-money/internal/config"
	"github.com/raymondkneipp/cash-money/internal/output"
)

var statsCmd = &cobra.Command{
	Use:   "stats <scenario-file>",
	Short: "Print aggregate totals for a scenario without projecting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		scenario, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Scenario: %s (age %d)\n", scenario.Name, scenario.Age)
		fmt.Fprintf(out, "Annual income:         %s\n", output.FormatCurrency(calculation.TotalAnnual(scenario.Incomes)))
		fmt.Fprintf(out, "Annual expenses:       %s\n", output.FormatCurrency(calculation.TotalAnnual(scenario.Expenses)))
		fmt.Fprintf(out, "Debt principal:        %s\n", output.FormatCurrency(calculation.TotalPrincipal(scenario.Debts)))
		fmt.Fprintf(out, "Annual debt payments:  %s\n", output.FormatCurrency(calculation.TotalAnnualPayments(scenario.Debts)))
		fmt.Fprintf(out, "Asset value:           %s\n", output.FormatCurrency(calculation.TotalPrincipal(scenario.Assets)))
		fmt.Fprintf(out, "Debt-to-income:        %s\n", output.FormatRatioAsPercentage(calculation.DebtToIncomeRatio(scenario.Debts, scenario.Incomes)))
		fmt.Fprintf(out, "Average debt rate:     %s\n", output.FormatPercentage(calculation.WeightedAverageRate(scenario.Debts)))
		fmt.Fprintf(out, "Average asset rate:    %s\n", output.FormatPercentage(calculation.WeightedAverageRate(scenario.Assets)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

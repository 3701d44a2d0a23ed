package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cash-money",
	Short: "Personal finance planner: project net worth from scenario snapshots",
	Long: `cash-money tracks incomes, expenses, debts, and assets per named scenario
and projects net worth year by year to a horizon age. Scenarios are plain
YAML or JSON files; the engine amortizes each debt to payoff, compounds each
asset with its contributions, and reallocates freed cash flow once a debt is
retired.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raymondkneipp/cash-money/internal/calculation"
	"github.com/raymondkneipp/cash-money/internal/config"
	"github.com/raymondkneipp/cash-money/internal/logging"
	"github.com/raymondkneipp/cash-money/internal/output"
)

var (
	projectFormat string
	projectOutput string
)

var projectCmd = &cobra.Command{
	Use:   "project <scenario-file>",
	Short: "Run the net worth projection for a scenario file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		scenario, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		engine := calculation.NewEngine()
		if verbose {
			engine.SetLogger(logging.New(true))
		}

		report, err := engine.RunScenario(cmd.Context(), scenario)
		if err != nil {
			return err
		}

		data, err := output.Render(report, projectFormat)
		if err != nil {
			return err
		}

		if projectOutput != "" {
			if err := os.WriteFile(projectOutput, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", projectOutput, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", projectOutput)
			return nil
		}

		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	projectCmd.Flags().StringVarP(&projectFormat, "format", "f", "console", "output format (console, csv, json)")
	projectCmd.Flags().StringVarP(&projectOutput, "output", "o", "", "write report to file instead of stdout")
	rootCmd.AddCommand(projectCmd)
}

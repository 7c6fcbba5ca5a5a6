package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/helalifaker/Project-2052-sub001/internal/config"
	"github.com/helalifaker/Project-2052-sub001/internal/export"
	"github.com/helalifaker/Project-2052-sub001/internal/worker"
)

func newRunCommand() *cobra.Command {
	var configPath string
	var jsonPath string
	var csvPath string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a full projection from a scenario file",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := config.Load(configPath)
			if err != nil {
				return err
			}

			resp, err := worker.Execute(context.Background(), worker.NewRequest(scenario.Input), timeout)
			if err != nil {
				return fmt.Errorf("run %s: %w", scenario.Name, err)
			}
			out := resp.Output

			if jsonPath != "" {
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling output: %w", err)
				}
				if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", jsonPath, err)
				}
			}
			if csvPath != "" {
				f, err := os.Create(csvPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", csvPath, err)
				}
				defer f.Close()
				if err := export.WritePeriods(f, out.Periods); err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Scenario:   %s\n", scenario.Name)
			fmt.Fprintf(w, "Periods:    %d (%d..%d)\n", len(out.Periods), out.Periods[0].Year, out.Periods[len(out.Periods)-1].Year)
			fmt.Fprintf(w, "Net income: %s\n", out.Metrics.TotalNetIncome.StringFixed(2))
			fmt.Fprintf(w, "Final cash: %s\n", out.Metrics.FinalCash.StringFixed(2))
			fmt.Fprintf(w, "Peak debt:  %s\n", out.Metrics.PeakDebt.StringFixed(2))
			if out.Metrics.NPV != nil {
				fmt.Fprintf(w, "NPV:        %s\n", out.Metrics.NPV.StringFixed(2))
			}
			fmt.Fprintf(w, "Balanced:   %v  Reconciled: %v\n", out.Validation.AllPeriodsBalanced, out.Validation.AllCashFlowsReconciled)
			for _, issue := range out.Validation.Issues {
				fmt.Fprintf(w, "  issue: %s\n", issue)
			}
			fmt.Fprintf(w, "Solved in %d ms, %d iterations (avg %.1f/year)\n",
				out.Performance.CalculationTimeMs, out.Performance.TotalIterations, out.Performance.AverageIterations)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "scenario.yaml", "scenario file")
	cmd.Flags().StringVar(&jsonPath, "json", "", "write full output JSON to this path")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write period series CSV to this path")
	cmd.Flags().DurationVar(&timeout, "timeout", worker.DefaultTimeout, "wall-clock budget for the run")

	return cmd
}

package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/helalifaker/Project-2052-sub001/internal/config"
	"github.com/helalifaker/Project-2052-sub001/internal/engine"
)

func newSensitivityCommand() *cobra.Command {
	var configPath string
	var variables []string
	var metric string
	var rangePct string
	var points int

	cmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "Run one-variable-at-a-time perturbation sweeps",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := config.Load(configPath)
			if err != nil {
				return err
			}
			rng, err := decimal.NewFromString(rangePct)
			if err != nil {
				return fmt.Errorf("parsing --range %q: %w", rangePct, err)
			}

			vars := make([]engine.Variable, len(variables))
			for i, v := range variables {
				vars[i] = engine.Variable(v)
			}

			results, err := engine.SweepAll(scenario.Input, vars, engine.Metric(metric), rng, points)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Sensitivity of %s over +-%s (%d points), ranked by impact:\n", metric, rng, points)
			for _, r := range results {
				fmt.Fprintf(w, "  %-20s impact %s\n", r.Variable, r.Impact.StringFixed(2))
				for _, p := range r.Points {
					fmt.Fprintf(w, "    %8s%%  %s\n", p.Offset.Mul(decimal.NewFromInt(100)).StringFixed(1), p.Value.StringFixed(2))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "scenario.yaml", "scenario file")
	cmd.Flags().StringSliceVar(&variables, "variables", []string{
		string(engine.VarTuitionFee),
		string(engine.VarEnrollment),
		string(engine.VarStaffCost),
		string(engine.VarRentGrowth),
	}, "variables to perturb")
	cmd.Flags().StringVar(&metric, "metric", string(engine.MetricTotalNetIncome), "metric to report")
	cmd.Flags().StringVar(&rangePct, "range", "0.2", "perturbation half-range as a fraction")
	cmd.Flags().IntVar(&points, "points", 5, "sweep points")

	return cmd
}

package commands

import (
	"mmcsim/engine/erlang"
	"mmcsim/pkg/report"

	"github.com/spf13/cobra"
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute exact M/M/c metrics with Erlang-C",
		RunE: func(cmd *cobra.Command, args []string) error {
			lambda, _ := cmd.Flags().GetFloat64("lambda")
			mu, _ := cmd.Flags().GetFloat64("mu")
			c, _ := cmd.Flags().GetInt("servers")
			cutover, _ := cmd.Flags().GetInt("direct-max-servers")

			m, err := erlang.Solver{DirectMaxServers: cutover}.Solve(lambda, mu, c)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if f := outputFormat(); f != report.FormatTable {
				return report.Encode(out, f, report.NewEnvelope("analytical", m))
			}
			report.WriteMetrics(out, lambda, mu, c, m)
			return nil
		},
	}

	cmd.Flags().Float64P("lambda", "l", 3, "arrival rate λ")
	cmd.Flags().Float64P("mu", "m", 2, "service rate μ per server")
	cmd.Flags().IntP("servers", "c", 4, "number of servers c")
	cmd.Flags().Int("direct-max-servers", erlang.DefaultDirectMaxServers, "largest c solved without the log-domain path")
	return cmd
}

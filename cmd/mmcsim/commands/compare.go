package commands

import (
	"mmcsim/pkg/compare"
	"mmcsim/pkg/report"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare simulation and Erlang-C across server counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			lambda, _ := cmd.Flags().GetFloat64("lambda")
			mu, _ := cmd.Flags().GetFloat64("mu")
			rangeFlag, _ := cmd.Flags().GetString("servers-range")

			cs, err := parseServerRange(rangeFlag)
			if err != nil {
				return err
			}
			rows, err := compare.Servers(lambda, mu, cs, viper.GetFloat64("horizon"), viper.GetInt64("seed"))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if f := outputFormat(); f != report.FormatTable {
				return report.Encode(out, f, report.NewEnvelope("compare", rows))
			}
			if err := report.WriteComparison(out, rows); err != nil {
				return err
			}
			report.WriteInterpretation(out)
			return nil
		},
	}

	cmd.Flags().Float64P("lambda", "l", 3, "arrival rate λ")
	cmd.Flags().Float64P("mu", "m", 2, "service rate μ per server")
	cmd.Flags().StringP("servers-range", "c", "2:6", "server counts as lo:hi or a comma list")
	return cmd
}

func newSensitivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "Simulate a fixed server count across arrival rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			mu, _ := cmd.Flags().GetFloat64("mu")
			c, _ := cmd.Flags().GetInt("servers")
			rangeFlag, _ := cmd.Flags().GetString("lambda-range")

			lambdas, err := parseFloatRange(rangeFlag)
			if err != nil {
				return err
			}
			rows, err := compare.ArrivalRates(mu, c, lambdas, viper.GetFloat64("horizon"), viper.GetInt64("seed"))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if f := outputFormat(); f != report.FormatTable {
				return report.Encode(out, f, report.NewEnvelope("sensitivity", rows))
			}
			return report.WriteSensitivity(out, rows)
		},
	}

	cmd.Flags().Float64P("mu", "m", 2, "service rate μ per server")
	cmd.Flags().IntP("servers", "c", 4, "number of servers c")
	cmd.Flags().StringP("lambda-range", "l", "1:6:12", "arrival rates as start:stop:count")
	return cmd
}

package commands

import (
	"fmt"

	"mmcsim/pkg/report"
	"mmcsim/pkg/scenario"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "Run every sweep of a scenario file (defaults to the emergency-room study)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := scenario.Default()
			if len(args) == 1 {
				loaded, err := scenario.Load(args[0])
				if err != nil {
					return err
				}
				s = loaded
			}

			outcome, err := s.Run()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if f := outputFormat(); f != report.FormatTable {
				return report.Encode(out, f, report.NewEnvelope("scenario", outcome))
			}

			if len(outcome.Compare) > 0 {
				if err := report.WriteComparison(out, outcome.Compare); err != nil {
					return err
				}
				report.WriteInterpretation(out)
			}
			if len(outcome.Sensitivity) > 0 {
				if err := report.WriteSensitivity(out, outcome.Sensitivity); err != nil {
					return err
				}
			}
			if len(outcome.ServerSweep) > 0 {
				fmt.Fprintf(out, "--- Server sweep at λ = %g ---\n", s.ServerSweep.ArrivalRate)
				if err := report.WriteComparison(out, outcome.ServerSweep); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return cmd
}

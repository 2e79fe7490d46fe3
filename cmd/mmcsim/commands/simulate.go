package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"mmcsim/engine/des"
	"mmcsim/engine/queueing"
	"mmcsim/pkg/report"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "simulate",
		Aliases: []string{"sim"},
		Short:   "Run one discrete-event simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			lambda, _ := cmd.Flags().GetFloat64("lambda")
			mu, _ := cmd.Flags().GetFloat64("mu")
			c, _ := cmd.Flags().GetInt("servers")
			seriesDir, _ := cmd.Flags().GetString("series-dir")

			p := queueing.Parameters{
				ArrivalRate: lambda,
				ServiceRate: mu,
				Servers:     c,
				Horizon:     viper.GetFloat64("horizon"),
				Seed:        viper.GetInt64("seed"),
			}
			res, err := des.Run(p)
			if err != nil {
				return err
			}

			if seriesDir != "" {
				if err := writeSeries(seriesDir, res); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if f := outputFormat(); f != report.FormatTable {
				return report.Encode(out, f, report.NewEnvelope("simulation", res))
			}
			report.WriteSimulation(out, res)
			return nil
		},
	}

	cmd.Flags().Float64P("lambda", "l", 3, "arrival rate λ")
	cmd.Flags().Float64P("mu", "m", 2, "service rate μ per server")
	cmd.Flags().IntP("servers", "c", 4, "number of servers c")
	cmd.Flags().String("series-dir", "", "write queue-length and busy-server series as CSV into this directory")
	return cmd
}

func writeSeries(dir string, res *des.Result) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create series dir: %w", err)
	}
	series := []struct {
		file    string
		column  string
		samples []des.Sample
	}{
		{"queue_lengths.csv", "queue_length", res.QueueLengths},
		{"busy_history.csv", "busy_servers", res.BusyHistory},
	}
	for _, s := range series {
		path := filepath.Join(dir, s.file)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := report.WriteSeriesCSV(f, s.column, s.samples); err != nil {
			f.Close()
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		queueing.InfoLog("[DES] Wrote %d samples to %s", len(s.samples), path)
	}
	return nil
}

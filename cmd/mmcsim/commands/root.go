package commands

import (
	"fmt"
	"io"
	"os"

	"mmcsim/engine/queueing"
	"mmcsim/pkg/report"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// loadConfig runs once per Execute, before any command
var loadConfig = initConfig

func init() {
	cobra.OnInitialize(func() { loadConfig() })
}

// NewRootCmd builds the mmcsim command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mmcsim",
		Short: "M/M/c queue simulation and Erlang-C analysis",
		Long: `mmcsim estimates the performance of a multi-server queue (for example an
emergency room with several doctors) in two independent ways: a discrete-event
simulation and the closed-form Erlang-C solution, so each can check the other.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetBool("quiet") {
				queueing.SetLogOutput(io.Discard)
			} else {
				queueing.SetLogOutput(cmd.ErrOrStderr())
			}
			_, err := report.ParseFormat(viper.GetString("format"))
			return err
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mmcsim.yaml)")
	rootCmd.PersistentFlags().Int64("seed", DefaultSeed, "random seed for simulation runs")
	rootCmd.PersistentFlags().Float64("horizon", DefaultHorizon, "simulated time horizon")
	rootCmd.PersistentFlags().StringP("format", "o", string(report.FormatTable), "output format: table, yaml or json")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress log output")

	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("horizon", rootCmd.PersistentFlags().Lookup("horizon"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newSensitivityCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".mmcsim")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("MMCSIM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		if _, statErr := os.Stat(cfgFile); statErr == nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to read config %s: %v\n", cfgFile, err)
		}
	}
}

// outputFormat returns the validated --format value
func outputFormat() report.Format {
	f, err := report.ParseFormat(viper.GetString("format"))
	if err != nil {
		return report.FormatTable
	}
	return f
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the persisted CLI configuration
type Config struct {
	Seed    int64   `yaml:"seed"`
	Horizon float64 `yaml:"horizon"`
	Format  string  `yaml:"format"`
	Quiet   bool    `yaml:"quiet"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Seed:    DefaultSeed,
		Horizon: DefaultHorizon,
		Format:  "table",
		Quiet:   false,
	}
}

// EffectiveConfig reads the merged flag, env and file values from viper
func EffectiveConfig() *Config {
	return &Config{
		Seed:    viper.GetInt64("seed"),
		Horizon: viper.GetFloat64("horizon"),
		Format:  viper.GetString("format"),
		Quiet:   viper.GetBool("quiet"),
	}
}

// Save writes the configuration to path
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// getConfigPath returns the --config path or $HOME/.mmcsim.yaml
func getConfigPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".mmcsim.yaml"), nil
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"cfg"},
		Short:   "Manage mmcsim configuration",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if used := viper.ConfigFileUsed(); used != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# config file: %s\n", used)
			}
			data, err := yaml.Marshal(EffectiveConfig())
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			path, err := getConfigPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
			}
			if err := DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().Bool("force", false, "overwrite an existing file")

	configCmd.AddCommand(showCmd, initCmd)
	return configCmd
}

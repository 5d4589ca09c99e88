package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/stopcheck/internal/config"
	"github.com/thoreinstein/stopcheck/internal/errors"
	"github.com/thoreinstein/stopcheck/internal/paths"
	"github.com/thoreinstein/stopcheck/pkg/fileutil"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show stopcheck configuration",
	Long: `Show the effective stopcheck configuration in YAML format.

Configuration is read from ./config.yaml, then from the stopcheck
directory under the XDG config home, with STOPCHECK_* environment
variables taking precedence.`,
	Example: `  # Show all configuration
  stopcheck config

  # Get a specific value
  stopcheck config get max_link_length

  # Write a default config file
  stopcheck config init`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a single configuration value by key.

Array values are printed one per line.`,
	Example: `  stopcheck config get max_link_length
  stopcheck config get required_fields`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write the default configuration to the stopcheck directory under
the XDG config home. Fails if a config file already exists there.`,
	RunE: runConfigInit,
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	data, err := yaml.Marshal(effectiveConfig())
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	w := cmd.OutOrStdout()

	if !viper.IsSet(key) {
		fmt.Fprintln(w, "not set")
		return nil
	}

	switch v := viper.Get(key).(type) {
	case []any:
		// Array values - print one per line
		for _, item := range v {
			fmt.Fprintln(w, item)
		}
	case []string:
		for _, item := range v {
			fmt.Fprintln(w, item)
		}
	default:
		fmt.Fprintln(w, viper.GetString(key))
	}

	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	dir := filepath.Join(paths.ConfigHome(), config.AppName)
	path := filepath.Join(dir, "config.yaml")

	if _, err := os.Stat(path); err == nil {
		return errors.NewUserError(errors.Newf("config file already exists at %s", path),
			"Edit the existing file instead")
	}

	if err := paths.EnsureDir(dir, 0o755); err != nil {
		return errors.NewSystemError(err, "Could not create the config directory")
	}
	if err := fileutil.AtomicWriteYAML(path, effectiveConfig()); err != nil {
		return errors.NewSystemError(err, "Could not write the config file")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to: %s\n", path)
	return nil
}

// effectiveConfig snapshots the viper state into a plain map for display
// and serialization, keeping key order stable via the struct fields.
func effectiveConfig() map[string]any {
	return map[string]any{
		"required_fields": viper.GetStringSlice("required_fields"),
		"max_link_length": viper.GetInt("max_link_length"),
		"placeholder":     viper.GetString("placeholder"),
		"rules_file":      viper.GetString("rules_file"),
	}
}

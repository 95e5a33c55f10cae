// Root command for the todod CLI.
package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/todolist/internal/paths"
)

const version = "0.1.0"

// Global flag values.
var (
	flagConfigDir string
	flagServer    string
	flagJSON      bool
)

// cfg holds the configuration loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var cfg *viper.Viper

var rootCmd = &cobra.Command{
	Use:     "todod",
	Short:   "Todod is a small todo-list server and client",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err = loadConfig(configDir)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "base URL of the todod server (default: config server_url)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(tuiCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > TODOD_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// serverURL returns the base URL client commands talk to, following the
// precedence: --server flag > config.yaml server_url.
func serverURL() string {
	if flagServer != "" {
		return flagServer
	}
	return cfg.GetString(cfgKeyServerURL)
}

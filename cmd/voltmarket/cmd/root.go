// Package cmd implements the voltmarket CLI commands.
package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/voltmarket/internal/config"
	"github.com/donaldgifford/voltmarket/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "voltmarket",
	Short: "EV and battery marketplace listing engine",
	Long: "voltmarket normalizes battery and vehicle records from the marketplace\n" +
		"backend, builds the search feed and compare views, validates listing\n" +
		"drafts and serves them over an HTTP API.",
	SilenceUsage: true,
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		String("config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		String("log-level", "", "override logging.level (debug, info, warn, error)")

	cobra.CheckErr(viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")))

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(feedCmd())
	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(listingsCmd())
	rootCmd.AddCommand(suggestCmd())
	rootCmd.AddCommand(versionCmd())
}

func initConfig() {
	viper.SetEnvPrefix("VOLTMARKET")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadConfig reads the config file named by --config or VOLTMARKET_CONFIG
// and applies the --log-level override.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if lvl := viper.GetString("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logger.New(cfg.Logging.Level, cfg.Logging.Format)
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}

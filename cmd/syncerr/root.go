package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vmunix/syncerr/internal/config"
)

var version = "dev"

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "syncerr",
	Short: "Sync Jellyfin watch progress to Plex",
	Long: `syncerr - sync Jellyfin watch progress to Plex

Reads what is playing (and optionally what has been played) on a
Jellyfin server, finds the same movie or episode on a Plex server
by title, and records the progress there.`,
	SilenceUsage: true,
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command's
// context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override general.log_level")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("syncerr {{.Version}}\n")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "syncerr %s\n", version)
	},
}

// resolveConfigPath returns --config when set, otherwise the discovered path.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.Discover()
}

// loadConfig loads and validates the config, then applies --log-level.
func loadConfig() (*config.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		if !config.ValidLogLevel(logLevel) {
			return nil, fmt.Errorf("--log-level: must be one of debug, info, warn, error; got %q", logLevel)
		}
		cfg.General.LogLevel = logLevel
	}
	return cfg, nil
}

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vmunix/syncerr/internal/config"
	"github.com/vmunix/syncerr/internal/jellyfin"
	"github.com/vmunix/syncerr/internal/logging"
	"github.com/vmunix/syncerr/internal/plex"
	"github.com/vmunix/syncerr/internal/syncer"
)

var (
	_ syncer.Source = (*jellyfin.Client)(nil)
	_ syncer.Target = (*plex.Client)(nil)
)

var (
	runDryRun bool
	runPlayed bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one sync and exit",
	Long:  "Pushes the progress of every item playing on Jellyfin to its match on Plex. Exits non-zero when the run aborts.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := logging.New(cfg.General.LogLevel, cmd.OutOrStdout())

		_, err = newDriver(cfg, syncOptions(cfg), log).Run(cmd.Context())
		return err
	},
}

func init() {
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Match and log without pushing progress")
	runCmd.Flags().BoolVar(&runPlayed, "played", false, "Also push fully played items")
	rootCmd.AddCommand(runCmd)
}

// syncOptions merges the [sync] section with the run flags. A flag can only
// turn an option on.
func syncOptions(cfg *config.Config) syncer.Options {
	return syncer.Options{
		Played: cfg.Sync.Played || runPlayed,
		DryRun: cfg.Sync.DryRun || runDryRun,
	}
}

// newDriver wires the Jellyfin source and the Plex target from cfg.
func newDriver(cfg *config.Config, opts syncer.Options, log *slog.Logger) *syncer.Driver {
	source := jellyfin.NewClient(cfg.Jellyfin.URL, cfg.Jellyfin.Username, cfg.Jellyfin.Password, log,
		jellyfin.WithDeviceID(cfg.Jellyfin.DeviceID),
		jellyfin.WithVersion(version))

	target := plex.NewClient(cfg.Plex.URL, cfg.Plex.Token, log,
		plex.WithRequestInterval(cfg.Plex.RequestInterval.Duration),
		plex.WithConcurrency(cfg.Plex.Concurrency))

	return syncer.New(source, target, opts, log)
}

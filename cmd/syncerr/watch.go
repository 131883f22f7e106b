package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/spf13/cobra"

	"github.com/vmunix/syncerr/internal/logging"
	"github.com/vmunix/syncerr/internal/syncer"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run a sync every sync.interval until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := logging.New(cfg.General.LogLevel, cmd.OutOrStdout())

		driver := newDriver(cfg, syncOptions(cfg), log)
		return watch(cmd.Context(), driver, cfg.Sync.Interval.Duration, log)
	},
}

func init() {
	watchCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Match and log without pushing progress")
	watchCmd.Flags().BoolVar(&runPlayed, "played", false, "Also push fully played items")
	rootCmd.AddCommand(watchCmd)
}

type runner interface {
	Run(ctx context.Context) (*syncer.Result, error)
}

// watch runs r immediately and then every interval until ctx is done. Runs
// never overlap; a failed run is logged and the next one still happens.
func watch(ctx context.Context, r runner, interval time.Duration, log *slog.Logger) error {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	_, err := s.Every(interval).Do(func() {
		if _, err := r.Run(ctx); err != nil {
			log.Error("scheduled sync failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule sync: %w", err)
	}

	log.Info("watching for progress", "interval", interval.String())
	s.StartAsync()

	<-ctx.Done()
	s.Stop()
	log.Info("watch stopped")
	return nil
}

// Package syncer drives one synchronization run: it reads what the source is
// playing, snapshots the target library, then matches and pushes every item.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vmunix/syncerr/internal/matcher"
	"github.com/vmunix/syncerr/internal/media"
	"github.com/vmunix/syncerr/internal/progress"
)

//go:generate mockgen -destination=mocks/mock_syncer.go -package=mocks . Source,Target

// Source reports what a user is playing and has played.
type Source interface {
	Authenticate(ctx context.Context) error
	NowPlaying(ctx context.Context) ([]media.Playable, error)
	Played(ctx context.Context) ([]media.Playable, error)
}

// Target holds the library that receives progress.
type Target interface {
	progress.Updater
	Ping(ctx context.Context) error
	Snapshot(ctx context.Context) (*media.Library, error)
}

// Options control a run.
type Options struct {
	// Played also pushes every fully played source item.
	Played bool
	// DryRun matches and plans but makes no progress calls.
	DryRun bool
}

// Result summarizes a finished run.
type Result struct {
	RunID   string
	Pushed  int
	Skipped int
	Failed  int
	DryRun  bool
}

// Driver runs synchronizations from one source to one target.
type Driver struct {
	source Source
	target Target
	opts   Options
	log    *slog.Logger
	state  State
}

// New creates a Driver.
func New(source Source, target Target, opts Options, log *slog.Logger) *Driver {
	if log == nil {
		log = slog.Default()
	}
	return &Driver{
		source: source,
		target: target,
		opts:   opts,
		log:    log.With("component", "syncer"),
		state:  StateInit,
	}
}

// State returns the state the last run reached.
func (d *Driver) State() State {
	return d.state
}

// Run performs one synchronization. Authentication and fetch failures abort
// the run in StateError. Per-item match and push failures are counted in the
// Result and never abort the loop.
func (d *Driver) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	result := &Result{RunID: uuid.NewString(), DryRun: d.opts.DryRun}
	log := d.log.With("run_id", result.RunID)

	d.enter(log, StateInit)
	if err := d.source.Authenticate(ctx); err != nil {
		return nil, d.fail(log, fmt.Errorf("authenticate source: %w", err))
	}
	if err := d.target.Ping(ctx); err != nil {
		return nil, d.fail(log, fmt.Errorf("connect target: %w", err))
	}

	d.enter(log, StateFetchSource)
	items, err := d.fetchSource(ctx, log)
	if err != nil {
		return nil, d.fail(log, err)
	}
	if len(items) == 0 {
		log.Info("nothing to sync")
		d.finish(log, result, start)
		return result, nil
	}

	d.enter(log, StateFetchTargetLibrary)
	lib, err := d.target.Snapshot(ctx)
	if err != nil {
		return nil, d.fail(log, fmt.Errorf("fetch target library: %w", err))
	}

	d.enter(log, StateMatchLoop)
	for _, item := range items {
		switch d.sync(ctx, log, item, lib) {
		case outcomePushed:
			result.Pushed++
		case outcomeSkipped:
			result.Skipped++
		case outcomeFailed:
			result.Failed++
		}
	}

	d.finish(log, result, start)
	return result, nil
}

// finish enters StateDone and logs the run summary.
func (d *Driver) finish(log *slog.Logger, result *Result, start time.Time) {
	d.enter(log, StateDone)
	log.Info("sync complete",
		"pushed", result.Pushed,
		"skipped", result.Skipped,
		"failed", result.Failed,
		"dry_run", result.DryRun,
		"duration_ms", time.Since(start).Milliseconds())
}

// fetchSource returns now-playing items followed by played items not already
// playing. Now-playing state wins because it is the fresher of the two.
func (d *Driver) fetchSource(ctx context.Context, log *slog.Logger) ([]media.Playable, error) {
	items, err := d.source.NowPlaying(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch now playing: %w", err)
	}
	if !d.opts.Played {
		return items, nil
	}

	played, err := d.source.Played(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch played: %w", err)
	}

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		seen[itemKey(item)] = true
	}
	for _, item := range played {
		key := itemKey(item)
		if seen[key] {
			log.Debug("played item is also playing", "item", item.Title())
			continue
		}
		seen[key] = true
		items = append(items, item)
	}
	return items, nil
}

type outcome int

const (
	outcomePushed outcome = iota
	outcomeSkipped
	outcomeFailed
)

func (d *Driver) sync(ctx context.Context, log *slog.Logger, item media.Playable, lib *media.Library) outcome {
	log = log.With("item", item.Title(), "category", item.Category())

	detail, err := media.DetailOf(item)
	if err != nil {
		log.Warn("skipping item", "error", err)
		return outcomeSkipped
	}
	pct := media.ResolvePercentage(detail)

	target, err := matcher.Match(item, lib)
	if err != nil {
		var miss *matcher.MissError
		if errors.As(err, &miss) {
			attrs := []any{"stage", miss.Stage, "name", miss.Name}
			if hint, score := miss.Hint(); hint != "" {
				attrs = append(attrs, "closest", hint, "similarity", fmt.Sprintf("%.2f", score))
			}
			log.Info("no match on target, skipping", attrs...)
			return outcomeSkipped
		}
		log.Warn("skipping item", "error", err)
		return outcomeSkipped
	}
	log = log.With("target_id", target.ID)

	if d.opts.DryRun {
		action, err := progress.Plan(target, pct)
		if err != nil {
			log.Error("cannot plan progress", "error", err)
			return outcomeFailed
		}
		log.Info("would push progress", "action", action.String(), "percentage", pct)
		return outcomePushed
	}

	action, err := progress.Apply(ctx, d.target, target, pct)
	if err != nil {
		log.Error("push failed", "error", err)
		return outcomeFailed
	}
	log.Info("pushed progress", "action", action.String(), "percentage", pct)
	return outcomePushed
}

func (d *Driver) enter(log *slog.Logger, s State) {
	d.state = s
	log.Debug("sync state", "state", s)
}

func (d *Driver) fail(log *slog.Logger, err error) error {
	d.enter(log, StateError)
	log.Error("sync aborted", "error", err)
	return err
}

// itemKey identifies a source item across the now-playing and played lists.
func itemKey(item media.Playable) string {
	switch v := item.(type) {
	case *media.Movie:
		return "movie:" + v.ID
	case *media.Series:
		if _, episode, ok := v.Current(); ok {
			return "episode:" + episode.ID
		}
		return "series:" + v.ID
	default:
		return fmt.Sprintf("%T:%s", item, item.Title())
	}
}

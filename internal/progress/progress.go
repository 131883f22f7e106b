// Package progress translates a played percentage into the one target call
// that records it: unscrobble, scrobble or a partial position.
package progress

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/vmunix/syncerr/internal/media"
)

// StateStopped is the playback state reported with a partial position.
const StateStopped = "stopped"

// ErrInvalidPercentage indicates a percentage outside [0, 100].
var ErrInvalidPercentage = errors.New("invalid percentage")

//go:generate mockgen -destination=mocks/mock_updater.go -package=mocks . Updater

// Updater is the set of progress calls a target server accepts.
type Updater interface {
	Scrobble(ctx context.Context, ratingKey string) error
	Unscrobble(ctx context.Context, ratingKey string) error
	SetProgress(ctx context.Context, ratingKey string, position int64, state string) error
}

// Kind is the progress operation chosen for a percentage.
type Kind string

const (
	KindReset    Kind = "reset"
	KindComplete Kind = "complete"
	KindPartial  Kind = "partial"
)

// Action is a planned progress update.
type Action struct {
	Kind     Kind
	Key      string
	Position int64 // only set for KindPartial, in the target's time unit
}

func (a Action) String() string {
	if a.Kind == KindPartial {
		return fmt.Sprintf("%s@%d", a.Kind, a.Position)
	}
	return string(a.Kind)
}

// Plan returns the action Apply would perform for target at pct.
func Plan(target *media.Target, pct float64) (Action, error) {
	if math.IsNaN(pct) || pct < 0 || pct > 100 {
		return Action{}, fmt.Errorf("%w: %v", ErrInvalidPercentage, pct)
	}

	switch pct {
	case 0:
		return Action{Kind: KindReset, Key: target.ID}, nil
	case 100:
		return Action{Kind: KindComplete, Key: target.ID}, nil
	default:
		return Action{
			Kind:     KindPartial,
			Key:      target.ID,
			Position: int64(math.Round(float64(target.RunTime) * pct / 100)),
		}, nil
	}
}

// Apply pushes pct to target through exactly one Updater call and returns the
// action taken.
func Apply(ctx context.Context, u Updater, target *media.Target, pct float64) (Action, error) {
	action, err := Plan(target, pct)
	if err != nil {
		return Action{}, err
	}

	switch action.Kind {
	case KindReset:
		err = u.Unscrobble(ctx, action.Key)
	case KindComplete:
		err = u.Scrobble(ctx, action.Key)
	case KindPartial:
		err = u.SetProgress(ctx, action.Key, action.Position, StateStopped)
	}
	if err != nil {
		return action, fmt.Errorf("%s %q: %w", action.Kind, target.Name, err)
	}
	return action, nil
}

// Package matcher finds the target-library counterpart of a source item by
// comparing lower-cased names down the series, season and episode hierarchy.
package matcher

import (
	"fmt"

	"github.com/vmunix/syncerr/internal/media"
)

// Stage names the level of the name hierarchy that failed to match.
type Stage string

const (
	StageMovie   Stage = "movie"
	StageSeries  Stage = "series"
	StageSeason  Stage = "season"
	StageEpisode Stage = "episode"
)

// MissError reports which stage of a lookup found nothing. It unwraps to
// media.ErrMatchMiss.
type MissError struct {
	Stage      Stage
	Name       string
	Candidates []string // titles compared at the failing stage
}

func (e *MissError) Error() string {
	return fmt.Sprintf("%s: no %s named %q", media.ErrMatchMiss, e.Stage, e.Name)
}

func (e *MissError) Unwrap() error {
	return media.ErrMatchMiss
}

// Hint returns the closest candidate title at the failing stage, if any is
// close enough to be worth reporting.
func (e *MissError) Hint() (string, float64) {
	return Suggest(e.Name, e.Candidates)
}

// Match returns the target item matching a source movie, or the episode
// matching the current episode of a source series. Titles are compared
// case-insensitively and the first hit in library order wins. Any stage miss
// returns a *MissError without looking further down the hierarchy.
func Match(item media.Playable, lib *media.Library) (*media.Target, error) {
	if lib == nil {
		lib = &media.Library{}
	}

	switch v := item.(type) {
	case *media.Movie:
		return matchMovie(v, lib.Movies)
	case *media.Series:
		season, episode, ok := v.Current()
		if !ok {
			return nil, fmt.Errorf("%w: series %q has no episode", media.ErrMalformedRecord, v.Name)
		}
		return matchEpisode(v.Name, season.Name, episode.Name, lib.Shows)
	default:
		return nil, fmt.Errorf("%w: %T", media.ErrUnknownCategory, item)
	}
}

func matchMovie(movie *media.Movie, movies []*media.Movie) (*media.Target, error) {
	for _, m := range movies {
		if media.SameName(m.Name, movie.Name) {
			return &media.Target{
				ID:       m.ID,
				Name:     m.Name,
				RunTime:  m.RunTime,
				Category: media.CategoryMovie,
			}, nil
		}
	}

	titles := make([]string, len(movies))
	for i, m := range movies {
		titles[i] = m.Name
	}
	return nil, &MissError{Stage: StageMovie, Name: movie.Name, Candidates: titles}
}

func matchEpisode(seriesName, seasonName, episodeName string, shows []*media.Series) (*media.Target, error) {
	show := firstSeries(shows, seriesName)
	if show == nil {
		titles := make([]string, len(shows))
		for i, s := range shows {
			titles[i] = s.Name
		}
		return nil, &MissError{Stage: StageSeries, Name: seriesName, Candidates: titles}
	}

	var season *media.Season
	for _, s := range show.Seasons {
		if media.SameName(s.Name, seasonName) {
			season = s
			break
		}
	}
	if season == nil {
		titles := make([]string, len(show.Seasons))
		for i, s := range show.Seasons {
			titles[i] = s.Name
		}
		return nil, &MissError{Stage: StageSeason, Name: seasonName, Candidates: titles}
	}

	for _, ep := range season.Episodes {
		if media.SameName(ep.Name, episodeName) {
			return &media.Target{
				ID:       ep.ID,
				Name:     fmt.Sprintf("%s - %s - %s", show.Name, season.Name, ep.Name),
				RunTime:  ep.RunTime,
				Category: media.CategoryEpisode,
			}, nil
		}
	}

	titles := make([]string, len(season.Episodes))
	for i, ep := range season.Episodes {
		titles[i] = ep.Name
	}
	return nil, &MissError{Stage: StageEpisode, Name: episodeName, Candidates: titles}
}

func firstSeries(shows []*media.Series, name string) *media.Series {
	for _, s := range shows {
		if media.SameName(s.Name, name) {
			return s
		}
	}
	return nil
}

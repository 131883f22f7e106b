// Package media defines the normalized model shared by the source and target
// servers: movies, series, seasons, episodes and their play state.
package media

import (
	"fmt"
	"strings"
	"time"
)

// Category tags a normalized item with its kind.
type Category string

const (
	CategoryMovie   Category = "movie"
	CategoryEpisode Category = "episode"
	CategorySeason  Category = "season"
	CategorySeries  Category = "series"
)

// Detail is the per-item play state.
type Detail struct {
	// Percentage is nil when the server did not report it.
	Percentage   *float64
	PlaybackTime int64 // ticks, server specific
	PlayCount    int
	LastPlayed   *time.Time
	Played       bool
	Key          string // opaque server key
}

// Movie is a single feature.
type Movie struct {
	Name    string
	ID      string
	RunTime int64
	Details *Detail // nil when only listed
}

// Category implements Playable.
func (m *Movie) Category() Category { return CategoryMovie }

// Title implements Playable.
func (m *Movie) Title() string { return m.Name }

// Episode is one episode of a season.
type Episode struct {
	Name    string
	ID      string
	RunTime int64
	Index   int
	Details *Detail
}

// Category returns CategoryEpisode.
func (e *Episode) Category() Category { return CategoryEpisode }

// Season owns its episodes, ordered by index.
type Season struct {
	Name     string
	ID       string
	Index    int
	Episodes []*Episode
}

// Category returns CategorySeason.
func (s *Season) Category() Category { return CategorySeason }

// Series owns its seasons, ordered by index.
type Series struct {
	Name    string
	ID      string
	Seasons []*Season
}

// Category implements Playable.
func (s *Series) Category() Category { return CategorySeries }

// Title implements Playable.
func (s *Series) Title() string {
	season, episode, ok := s.Current()
	if !ok {
		return s.Name
	}
	return fmt.Sprintf("%s - %s - %s", s.Name, season.Name, episode.Name)
}

// Current returns the first season and its first episode. For a series built
// by the source adapter this is the episode being played.
func (s *Series) Current() (*Season, *Episode, bool) {
	if len(s.Seasons) == 0 || len(s.Seasons[0].Episodes) == 0 {
		return nil, nil, false
	}
	return s.Seasons[0], s.Seasons[0].Episodes[0], true
}

// Playable is an item handed from the source to the sync driver.
// It is implemented by *Movie and by *Series holding exactly one season
// with exactly one episode.
type Playable interface {
	Category() Category
	Title() string
}

// DetailOf returns the play state carried by a playable item.
func DetailOf(p Playable) (*Detail, error) {
	switch v := p.(type) {
	case *Movie:
		if v.Details == nil {
			return nil, fmt.Errorf("%w: movie %q has no play state", ErrMalformedRecord, v.Name)
		}
		return v.Details, nil
	case *Series:
		_, episode, ok := v.Current()
		if !ok {
			return nil, fmt.Errorf("%w: series %q has no episode", ErrMalformedRecord, v.Name)
		}
		if episode.Details == nil {
			return nil, fmt.Errorf("%w: episode %q has no play state", ErrMalformedRecord, episode.Name)
		}
		return episode.Details, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownCategory, p)
	}
}

// Library is a snapshot of the target server's movies and shows in
// server-returned order. Shows carry their full season and episode trees.
type Library struct {
	Movies []*Movie
	Shows  []*Series
}

// EpisodeCount returns the number of episodes across all shows.
func (l *Library) EpisodeCount() int {
	n := 0
	for _, show := range l.Shows {
		for _, season := range show.Seasons {
			n += len(season.Episodes)
		}
	}
	return n
}

// Target references a matched item on the target server.
type Target struct {
	ID       string
	Name     string
	RunTime  int64
	Category Category
}

// SameName reports whether two names are equal once lower-cased.
func SameName(a, b string) bool {
	return strings.ToLower(a) == strings.ToLower(b)
}

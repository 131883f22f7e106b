package plex

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/syncerr/internal/media"
)

// Snapshot lists the movie and show sections and eagerly traverses every
// show down to its episodes. Shows keep the order the server returned them in.
func (c *Client) Snapshot(ctx context.Context) (*media.Library, error) {
	sections, err := c.Libraries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list libraries: %w", err)
	}

	lib := &media.Library{}
	for _, sec := range sections {
		switch sec.Kind() {
		case KindMovie:
			items, err := c.Items(ctx, sec.Key)
			if err != nil {
				return nil, fmt.Errorf("list section %q: %w", sec.Title, err)
			}
			for _, it := range items {
				lib.Movies = append(lib.Movies, toMovie(it))
			}
		case KindShow:
			items, err := c.Items(ctx, sec.Key)
			if err != nil {
				return nil, fmt.Errorf("list section %q: %w", sec.Title, err)
			}
			for _, it := range items {
				lib.Shows = append(lib.Shows, &media.Series{Name: it.Title, ID: it.RatingKey})
			}
		default:
			c.log.Debug("ignoring library section", "section", sec.Title, "type", sec.Type)
		}
	}

	start := time.Now()
	if err := c.traverseShows(ctx, lib.Shows); err != nil {
		return nil, err
	}

	c.log.Info("plex library loaded",
		"movies", len(lib.Movies),
		"shows", len(lib.Shows),
		"episodes", lib.EpisodeCount(),
		"duration_ms", time.Since(start).Milliseconds())
	return lib, nil
}

// traverseShows fills in seasons and episodes for every show. At most
// c.concurrency shows are in flight; every request still waits on the shared
// limiter.
func (c *Client) traverseShows(ctx context.Context, shows []*media.Series) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for _, show := range shows {
		g.Go(func() error {
			c.log.Debug("traversing show", "show", show.Name)
			seasons, err := c.Seasons(ctx, show.ID)
			if err != nil {
				return fmt.Errorf("traverse show %q: %w", show.Name, err)
			}
			show.Seasons = seasons
			return nil
		})
	}
	return g.Wait()
}

// Seasons returns the seasons of a show with their episodes.
func (c *Client) Seasons(ctx context.Context, showKey string) ([]*media.Season, error) {
	children, err := c.Children(ctx, showKey)
	if err != nil {
		return nil, err
	}

	seasons := make([]*media.Season, 0, len(children))
	for _, child := range children {
		episodes, err := c.Children(ctx, child.RatingKey)
		if err != nil {
			return nil, err
		}
		season := &media.Season{
			Name:     child.Title,
			ID:       child.RatingKey,
			Index:    child.Index,
			Episodes: make([]*media.Episode, 0, len(episodes)),
		}
		for _, ep := range episodes {
			season.Episodes = append(season.Episodes, &media.Episode{
				Name:    ep.Title,
				ID:      ep.RatingKey,
				RunTime: ep.Duration,
				Index:   ep.Index,
			})
		}
		seasons = append(seasons, season)
	}
	return seasons, nil
}

func toMovie(it Item) *media.Movie {
	return &media.Movie{
		Name:    it.Title,
		ID:      it.RatingKey,
		RunTime: it.Duration,
	}
}

package jellyfin

import (
	"fmt"
	"time"

	"github.com/vmunix/syncerr/internal/media"
)

// Item types reported by Jellyfin in the Type field.
const (
	TypeMovie   = "Movie"
	TypeEpisode = "Episode"
)

type authenticateRequest struct {
	Username string `json:"Username"`
	Pw       string `json:"Pw"`
}

type authenticateResponse struct {
	User struct {
		ID string `json:"Id"`
	} `json:"User"`
	AccessToken string `json:"AccessToken"`
}

// sessionInfo is the subset of SessionInfo needed to find what is playing.
type sessionInfo struct {
	NowPlayingItem *struct {
		ID string `json:"Id"`
	} `json:"NowPlayingItem"`
}

// UserData is the per-user play state of an item.
type UserData struct {
	// PlayedPercentage is omitted by the server near the start and end of playback.
	PlayedPercentage      *float64   `json:"PlayedPercentage"`
	PlaybackPositionTicks int64      `json:"PlaybackPositionTicks"`
	PlayCount             int        `json:"PlayCount"`
	LastPlayedDate        *time.Time `json:"LastPlayedDate"`
	Played                bool       `json:"Played"`
	Key                   string     `json:"Key"`
}

// Item is the subset of BaseItemDto the adapter reads.
type Item struct {
	Name              string    `json:"Name"`
	ID                string    `json:"Id"`
	Type              string    `json:"Type"`
	RunTimeTicks      int64     `json:"RunTimeTicks"`
	IndexNumber       int       `json:"IndexNumber"`
	ParentIndexNumber int       `json:"ParentIndexNumber"`
	SeriesID          string    `json:"SeriesId"`
	SeriesName        string    `json:"SeriesName"`
	SeasonID          string    `json:"SeasonId"`
	SeasonName        string    `json:"SeasonName"`
	UserData          *UserData `json:"UserData"`
}

type itemsResponse struct {
	Items            []Item `json:"Items"`
	TotalRecordCount int    `json:"TotalRecordCount"`
	StartIndex       int    `json:"StartIndex"`
}

// Validate checks the fields every record needs.
func (it *Item) Validate() error {
	switch {
	case it.ID == "":
		return fmt.Errorf("%w: item %q has no Id", media.ErrMalformedRecord, it.Name)
	case it.Name == "":
		return fmt.Errorf("%w: item %s has no Name", media.ErrMalformedRecord, it.ID)
	case it.Type == "":
		return fmt.Errorf("%w: item %s has no Type", media.ErrMalformedRecord, it.ID)
	}
	return nil
}

// validatePlayable checks the fields needed to build a Movie or an Episode.
// Episodes must carry their series and season context.
func (it *Item) validatePlayable() error {
	if err := it.Validate(); err != nil {
		return err
	}
	if it.UserData == nil {
		return fmt.Errorf("%w: item %s has no UserData", media.ErrMalformedRecord, it.ID)
	}
	switch it.Type {
	case TypeMovie:
		return nil
	case TypeEpisode:
		if it.SeriesID == "" || it.SeasonID == "" {
			return fmt.Errorf("%w: episode %s has no series or season id", media.ErrMalformedRecord, it.ID)
		}
		if it.SeriesName == "" || it.SeasonName == "" {
			return fmt.Errorf("%w: episode %s has no series or season name", media.ErrMalformedRecord, it.ID)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", media.ErrUnknownCategory, it.Type)
	}
}

func toDetail(ud *UserData) *media.Detail {
	if ud == nil {
		return nil
	}
	return &media.Detail{
		Percentage:   ud.PlayedPercentage,
		PlaybackTime: ud.PlaybackPositionTicks,
		PlayCount:    ud.PlayCount,
		LastPlayed:   ud.LastPlayedDate,
		Played:       ud.Played,
		Key:          ud.Key,
	}
}

func toMovie(it *Item) *media.Movie {
	return &media.Movie{
		Name:    it.Name,
		ID:      it.ID,
		RunTime: it.RunTimeTicks,
		Details: toDetail(it.UserData),
	}
}

func toEpisode(it *Item) *media.Episode {
	return &media.Episode{
		Name:    it.Name,
		ID:      it.ID,
		RunTime: it.RunTimeTicks,
		Index:   it.IndexNumber,
		Details: toDetail(it.UserData),
	}
}

// flatSeries builds the series context of an episode from the names carried
// on the episode record itself.
func flatSeries(it *Item) *media.Series {
	return &media.Series{
		Name: it.SeriesName,
		ID:   it.SeriesID,
		Seasons: []*media.Season{{
			Name:     it.SeasonName,
			ID:       it.SeasonID,
			Index:    it.ParentIndexNumber,
			Episodes: []*media.Episode{toEpisode(it)},
		}},
	}
}

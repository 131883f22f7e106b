package matcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/syncerr/internal/media"
)

func library() *media.Library {
	return &media.Library{
		Movies: []*media.Movie{
			{Name: "the matrix", ID: "10", RunTime: 8160000},
			{Name: "Inception", ID: "11", RunTime: 8880000},
			{Name: "The Matrix", ID: "12", RunTime: 8160001},
		},
		Shows: []*media.Series{
			{
				Name: "Arcane",
				ID:   "1498",
				Seasons: []*media.Season{
					{
						Name:  "Season 1",
						ID:    "1499",
						Index: 1,
						Episodes: []*media.Episode{
							{Name: "Welcome to the Playground", ID: "1500", Index: 1, RunTime: 2605472},
							{Name: "Some Mysteries Are Better Left Unsolved", ID: "1501", Index: 2, RunTime: 2400000},
						},
					},
				},
			},
			{Name: "Severance", ID: "2000"},
		},
	}
}

func playing(series, season, episode string) *media.Series {
	return &media.Series{
		Name: series,
		ID:   "s1",
		Seasons: []*media.Season{{
			Name:     season,
			ID:       "se1",
			Episodes: []*media.Episode{{Name: episode, ID: "e1", Details: &media.Detail{}}},
		}},
	}
}

func TestMatch_Movie(t *testing.T) {
	tests := []struct {
		name   string
		source string
		wantID string
	}{
		{"case insensitive", "The Matrix", "10"},
		{"first match wins", "THE MATRIX", "10"},
		{"exact", "Inception", "11"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := Match(&media.Movie{Name: tt.source, ID: "m1"}, library())
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, target.ID)
			assert.Equal(t, media.CategoryMovie, target.Category)
		})
	}
}

func TestMatch_MovieMiss(t *testing.T) {
	_, err := Match(&media.Movie{Name: "Tenet", ID: "m1"}, library())
	require.ErrorIs(t, err, media.ErrMatchMiss)

	var miss *MissError
	require.True(t, errors.As(err, &miss))
	assert.Equal(t, StageMovie, miss.Stage)
	assert.Equal(t, "Tenet", miss.Name)
	assert.Len(t, miss.Candidates, 3)
}

func TestMatch_Episode(t *testing.T) {
	target, err := Match(playing("arcane", "SEASON 1", "welcome to the playground"), library())
	require.NoError(t, err)
	assert.Equal(t, "1500", target.ID)
	assert.Equal(t, int64(2605472), target.RunTime)
	assert.Equal(t, media.CategoryEpisode, target.Category)
	assert.Equal(t, "Arcane - Season 1 - Welcome to the Playground", target.Name)
}

func TestMatch_EpisodeStages(t *testing.T) {
	tests := []struct {
		name       string
		item       *media.Series
		stage      Stage
		candidates []string
	}{
		{
			name:       "series miss",
			item:       playing("Arcane League", "Season 1", "Welcome to the Playground"),
			stage:      StageSeries,
			candidates: []string{"Arcane", "Severance"},
		},
		{
			// The episode exists in Season 1, but the season name differs, so
			// episodes are never compared.
			name:       "season miss short-circuits",
			item:       playing("Arcane", "Act 1", "Welcome to the Playground"),
			stage:      StageSeason,
			candidates: []string{"Season 1"},
		},
		{
			name:       "episode miss",
			item:       playing("Arcane", "Season 1", "The Monster You Created"),
			stage:      StageEpisode,
			candidates: []string{"Welcome to the Playground", "Some Mysteries Are Better Left Unsolved"},
		},
		{
			name:       "show without seasons",
			item:       playing("Severance", "Season 1", "Good News About Hell"),
			stage:      StageSeason,
			candidates: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := Match(tt.item, library())
			assert.Nil(t, target)
			require.ErrorIs(t, err, media.ErrMatchMiss)

			var miss *MissError
			require.True(t, errors.As(err, &miss))
			assert.Equal(t, tt.stage, miss.Stage)
			assert.Equal(t, tt.candidates, miss.Candidates)
		})
	}
}

func TestMatch_EmptyLibrary(t *testing.T) {
	_, err := Match(&media.Movie{Name: "Inception"}, nil)
	assert.ErrorIs(t, err, media.ErrMatchMiss)

	_, err = Match(playing("Arcane", "Season 1", "Welcome to the Playground"), &media.Library{})
	assert.ErrorIs(t, err, media.ErrMatchMiss)
}

func TestMatch_SeriesWithoutEpisode(t *testing.T) {
	_, err := Match(&media.Series{Name: "Arcane"}, library())
	assert.ErrorIs(t, err, media.ErrMalformedRecord)
}

type album struct{}

func (album) Category() media.Category { return "album" }
func (album) Title() string            { return "Abbey Road" }

func TestMatch_UnknownCategory(t *testing.T) {
	_, err := Match(album{}, library())
	assert.ErrorIs(t, err, media.ErrUnknownCategory)
	assert.NotErrorIs(t, err, media.ErrMatchMiss)
}

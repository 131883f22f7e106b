package media

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pct(v float64) *float64 { return &v }

func TestResolvePercentage(t *testing.T) {
	tests := []struct {
		name   string
		detail *Detail
		want   float64
	}{
		{"explicit wins over played", &Detail{Percentage: pct(45.5), Played: true}, 45.5},
		{"explicit zero", &Detail{Percentage: pct(0), Played: true}, 0},
		{"explicit unplayed", &Detail{Percentage: pct(12.25)}, 12.25},
		{"absent and played", &Detail{Played: true}, 100},
		{"absent and not played", &Detail{}, 0},
		{"nil detail", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePercentage(tt.detail))
		})
	}
}

func TestDetail_Resolve_StoresValue(t *testing.T) {
	d := &Detail{Played: true}
	got := d.Resolve()

	assert.Equal(t, 100.0, got)
	require.NotNil(t, d.Percentage)
	assert.Equal(t, 100.0, *d.Percentage)

	// Second call keeps the stored value.
	d.Played = false
	assert.Equal(t, 100.0, d.Resolve())
}

func TestSeries_Current(t *testing.T) {
	ep := &Episode{Name: "Welcome to the Playground", Index: 1}
	s := &Series{
		Name:    "Arcane",
		Seasons: []*Season{{Name: "Season 1", Index: 1, Episodes: []*Episode{ep}}},
	}

	season, episode, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "Season 1", season.Name)
	assert.Same(t, ep, episode)
	assert.Equal(t, "Arcane - Season 1 - Welcome to the Playground", s.Title())

	_, _, ok = (&Series{Name: "Empty"}).Current()
	assert.False(t, ok)
	assert.Equal(t, "Empty", (&Series{Name: "Empty"}).Title())
}

func TestDetailOf(t *testing.T) {
	d := &Detail{Key: "k"}

	got, err := DetailOf(&Movie{Name: "Inception", Details: d})
	require.NoError(t, err)
	assert.Same(t, d, got)

	got, err = DetailOf(&Series{
		Name:    "Arcane",
		Seasons: []*Season{{Episodes: []*Episode{{Name: "E1", Details: d}}}},
	})
	require.NoError(t, err)
	assert.Same(t, d, got)

	_, err = DetailOf(&Movie{Name: "Listed only"})
	assert.True(t, errors.Is(err, ErrMalformedRecord))

	_, err = DetailOf(&Series{Name: "No episodes"})
	assert.True(t, errors.Is(err, ErrMalformedRecord))
}

type otherPlayable struct{}

func (otherPlayable) Category() Category { return CategorySeason }
func (otherPlayable) Title() string      { return "season" }

func TestDetailOf_UnknownVariant(t *testing.T) {
	_, err := DetailOf(otherPlayable{})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategories(t *testing.T) {
	assert.Equal(t, CategoryMovie, (&Movie{}).Category())
	assert.Equal(t, CategoryEpisode, (&Episode{}).Category())
	assert.Equal(t, CategorySeason, (&Season{}).Category())
	assert.Equal(t, CategorySeries, (&Series{}).Category())
}

func TestLibrary_EpisodeCount(t *testing.T) {
	lib := &Library{Shows: []*Series{
		{Seasons: []*Season{{Episodes: make([]*Episode, 3)}, {Episodes: make([]*Episode, 2)}}},
		{Seasons: []*Season{{Episodes: make([]*Episode, 1)}}},
	}}
	assert.Equal(t, 6, lib.EpisodeCount())
}

func TestSameName(t *testing.T) {
	assert.True(t, SameName("The Matrix", "the matrix"))
	assert.True(t, SameName("ÉLITE", "élite"))
	assert.False(t, SameName("The Matrix", "The Matrix Reloaded"))
}

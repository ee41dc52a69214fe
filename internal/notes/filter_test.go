package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tableturnerr/dashboard-api/internal/models"
)

func TestParseTab(t *testing.T) {
	cases := []struct {
		raw  string
		tab  Tab
		ok   bool
		name string
	}{
		{"", TabActive, true, "empty defaults to active"},
		{"active", TabActive, true, "active"},
		{"archived", TabArchived, true, "archived"},
		{"deleted", TabDeleted, true, "deleted"},
		{"  Archived ", TabArchived, true, "trimmed and case folded"},
		{"trash", "", false, "unknown value"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tab, ok := ParseTab(tc.raw)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.tab, tab)
			}
		})
	}
}

func TestClassifyDeletedWinsOverArchived(t *testing.T) {
	assert.Equal(t, StateActive, Classify(models.Note{}))
	assert.Equal(t, StateArchived, Classify(models.Note{IsArchived: true}))
	assert.Equal(t, StateDeleted, Classify(models.Note{IsDeleted: true}))
	assert.Equal(t, StateDeleted, Classify(models.Note{IsArchived: true, IsDeleted: true}))
}

func TestClassifyIsExclusive(t *testing.T) {
	flags := []models.Note{
		{},
		{IsArchived: true},
		{IsDeleted: true},
		{IsArchived: true, IsDeleted: true},
	}
	for _, n := range flags {
		state := Classify(n)
		matched := 0
		for _, s := range []State{StateActive, StateArchived, StateDeleted} {
			if state == s {
				matched++
			}
		}
		assert.Equal(t, 1, matched)
	}
}

func TestFilterByTab(t *testing.T) {
	list := []models.Note{
		{ID: "a", Title: "Alpha"},
		{ID: "b", Title: "Beta", IsArchived: true},
		{ID: "c", Title: "Gamma", IsDeleted: true},
		{ID: "d", Title: "Delta", IsArchived: true, IsDeleted: true},
	}

	active := Filter(list, TabActive, "")
	require.Len(t, active, 1)
	assert.Equal(t, "a", active[0].ID)

	archived := Filter(list, TabArchived, "")
	require.Len(t, archived, 1)
	assert.Equal(t, "b", archived[0].ID)

	deleted := Filter(list, TabDeleted, "")
	require.Len(t, deleted, 2)
	assert.Equal(t, "c", deleted[0].ID)
	assert.Equal(t, "d", deleted[1].ID)
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	list := []models.Note{
		{ID: "a", Title: "Quarterly Targets", NoteText: "numbers for Q3"},
		{ID: "b", Title: "Standup", NoteText: "share quarterly update"},
		{ID: "c", Title: "Lunch", NoteText: "pizza"},
	}

	got := Filter(list, TabActive, "QUARTERLY")
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestFilterEmptySearchMatchesAll(t *testing.T) {
	list := []models.Note{
		{ID: "a"},
		{ID: "b"},
	}
	assert.Len(t, Filter(list, TabActive, ""), 2)
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	list := []models.Note{
		{ID: "z", Title: "match"},
		{ID: "m", Title: "match"},
		{ID: "a", Title: "match"},
	}

	got := Filter(list, TabActive, "match")
	require.Len(t, got, 3)
	assert.Equal(t, "z", got[0].ID)
	assert.Equal(t, "m", got[1].ID)
	assert.Equal(t, "a", got[2].ID)

	// source slice untouched
	assert.Equal(t, "z", list[0].ID)
	assert.Len(t, list, 3)
}

func TestFilterSearchAppliesWithinTab(t *testing.T) {
	list := []models.Note{
		{ID: "a", Title: "report"},
		{ID: "b", Title: "report", IsArchived: true},
	}

	got := Filter(list, TabArchived, "report")
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

package notes

import (
	"strings"

	"github.com/tableturnerr/dashboard-api/internal/models"
)

// Tab selects one of the three derived note states.
type Tab string

const (
	TabActive   Tab = "active"
	TabArchived Tab = "archived"
	TabDeleted  Tab = "deleted"
)

// ParseTab maps a raw query value onto a Tab. An empty value selects the
// active tab.
func ParseTab(raw string) (Tab, bool) {
	switch Tab(strings.ToLower(strings.TrimSpace(raw))) {
	case "", TabActive:
		return TabActive, true
	case TabArchived:
		return TabArchived, true
	case TabDeleted:
		return TabDeleted, true
	default:
		return "", false
	}
}

// State is the derived lifecycle state of a note.
type State string

const (
	StateActive   State = "active"
	StateArchived State = "archived"
	StateDeleted  State = "deleted"
)

// Classify derives the note's single lifecycle state. A deleted note is
// deleted regardless of its archived flag.
func Classify(n models.Note) State {
	switch {
	case n.IsDeleted:
		return StateDeleted
	case n.IsArchived:
		return StateArchived
	default:
		return StateActive
	}
}

// Filter returns the subsequence of notes matching the tab's state predicate
// and a case-insensitive substring search over title or body. It is a pure
// function of its inputs: the source slice is never mutated and relative
// order is preserved. An empty search matches everything.
func Filter(list []models.Note, tab Tab, search string) []models.Note {
	needle := strings.ToLower(search)
	result := make([]models.Note, 0, len(list))
	for _, n := range list {
		if State(tab) != Classify(n) {
			continue
		}
		if needle != "" && !matches(n, needle) {
			continue
		}
		result = append(result, n)
	}
	return result
}

func matches(n models.Note, needle string) bool {
	return strings.Contains(strings.ToLower(n.Title), needle) ||
		strings.Contains(strings.ToLower(n.NoteText), needle)
}

package notes

import (
	"sync"

	"github.com/tableturnerr/dashboard-api/internal/models"
	appErrors "github.com/tableturnerr/dashboard-api/pkg/errors"
)

// DefaultTitle is applied to drafts saved without a title. Normalization
// happens at save time only; fetched notes keep whatever title is stored.
const DefaultTitle = "Untitled"

// ErrEditInProgress rejects a second concurrent edit session.
var ErrEditInProgress = appErrors.New(appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, "an edit session is already in progress")

// ErrNoDraft signals a draft operation outside an edit session.
var ErrNoDraft = appErrors.New(appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, "no edit session in progress")

// Draft is the working copy of a note being created or edited. An empty ID
// means the note has not been persisted yet.
type Draft struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	NoteText   string `json:"note_text"`
	IsArchived bool   `json:"is_archived"`
	IsDeleted  bool   `json:"is_deleted"`
}

// DraftUpdate carries partial field changes for the working draft.
type DraftUpdate struct {
	Title    *string `json:"title"`
	NoteText *string `json:"note_text"`
}

// EditSession manages the single in-progress edit: the page is either
// browsing (no draft) or editing (exactly one draft).
type EditSession struct {
	mu      sync.Mutex
	editing bool
	draft   Draft
}

// BeginNew starts an edit session with an empty draft.
func (s *EditSession) BeginNew() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editing {
		return ErrEditInProgress
	}
	s.editing = true
	s.draft = Draft{}
	return nil
}

// Begin starts an edit session seeded from an existing note.
func (s *EditSession) Begin(n models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editing {
		return ErrEditInProgress
	}
	s.editing = true
	s.draft = Draft{
		ID:         n.ID,
		Title:      n.Title,
		NoteText:   n.NoteText,
		IsArchived: n.IsArchived,
		IsDeleted:  n.IsDeleted,
	}
	return nil
}

// Apply merges partial field changes into the draft.
func (s *EditSession) Apply(update DraftUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editing {
		return ErrNoDraft
	}
	if update.Title != nil {
		s.draft.Title = *update.Title
	}
	if update.NoteText != nil {
		s.draft.NoteText = *update.NoteText
	}
	return nil
}

// Cancel discards the draft unconditionally and returns to browsing.
func (s *EditSession) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = false
	s.draft = Draft{}
}

// Snapshot returns the current draft and whether a session is active.
func (s *EditSession) Snapshot() (Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft, s.editing
}

// complete ends the session after a successful save.
func (s *EditSession) complete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = false
	s.draft = Draft{}
}

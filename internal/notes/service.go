package notes

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/tableturnerr/dashboard-api/internal/models"
	"github.com/tableturnerr/dashboard-api/internal/store"
	appErrors "github.com/tableturnerr/dashboard-api/pkg/errors"
)

const (
	defaultPageSize = 200
	listSort        = "-updated"
	listExpand      = "created_by"
)

type recordClient interface {
	List(ctx context.Context, collection string, page, perPage int, opts store.ListOptions) (*store.ListResult, error)
	Create(ctx context.Context, collection string, data interface{}, dest interface{}) error
	Update(ctx context.Context, collection, id string, partial interface{}, dest interface{}) error
	Delete(ctx context.Context, collection, id string) error
}

type sessionReader interface {
	CurrentUserID() string
}

// Service owns the notes page state: the fetched list, the single edit
// session, and the status mutations. Every mutation is fire-and-refresh: on
// success the full list is re-fetched, on failure the pre-mutation list
// stands and the caller sees the error.
type Service struct {
	client   recordClient
	session  sessionReader
	logger   *zap.Logger
	pageSize int

	edit EditSession

	mu   sync.RWMutex
	list []models.Note

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// ServiceParams groups constructor dependencies.
type ServiceParams struct {
	Client   recordClient
	Session  sessionReader
	Logger   *zap.Logger
	PageSize int
}

// NewService constructs the notes service.
func NewService(params ServiceParams) *Service {
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:   params.Client,
		session:  params.Session,
		logger:   logger,
		pageSize: pageSize,
		locks:    make(map[string]*sync.Mutex),
	}
}

// Refresh replaces the in-memory list with a fresh bounded page fetch,
// sorted by descending last-update time with the author relation expanded.
func (s *Service) Refresh(ctx context.Context) error {
	result, err := s.client.List(ctx, store.CollectionNotes, 1, s.pageSize, store.ListOptions{
		Sort:   listSort,
		Expand: listExpand,
	})
	if err != nil {
		return err
	}

	var fetched []models.Note
	if err := result.Decode(&fetched); err != nil {
		return err
	}

	s.mu.Lock()
	s.list = fetched
	s.mu.Unlock()
	return nil
}

// Notes returns the notes matching the tab and search over the current list.
func (s *Service) Notes(tab Tab, search string) []models.Note {
	s.mu.RLock()
	snapshot := make([]models.Note, len(s.list))
	copy(snapshot, s.list)
	s.mu.RUnlock()
	return Filter(snapshot, tab, search)
}

// BeginNew opens an edit session for a new note.
func (s *Service) BeginNew() error {
	return s.edit.BeginNew()
}

// BeginEdit opens an edit session seeded from the note with the given id.
func (s *Service) BeginEdit(id string) error {
	note, ok := s.find(id)
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "note not found")
	}
	return s.edit.Begin(note)
}

// UpdateDraft merges partial changes into the working draft.
func (s *Service) UpdateDraft(update DraftUpdate) error {
	return s.edit.Apply(update)
}

// CancelEdit discards the draft without any persistence call.
func (s *Service) CancelEdit() {
	s.edit.Cancel()
}

// Draft returns the working draft and whether an edit session is active.
func (s *Service) Draft() (Draft, bool) {
	return s.edit.Snapshot()
}

// SaveDraft persists the working draft. A draft without an id is created
// (with the session user as author), a draft with an id is updated and its
// author is never touched. On success the session ends and the list is
// refreshed; on failure the draft stays intact so nothing the user typed is
// lost.
func (s *Service) SaveDraft(ctx context.Context) (*models.Note, error) {
	draft, editing := s.edit.Snapshot()
	if !editing {
		return nil, ErrNoDraft
	}

	title := draft.Title
	if title == "" {
		title = DefaultTitle
	}

	payload := map[string]interface{}{
		"title":       title,
		"note_text":   draft.NoteText,
		"is_archived": draft.IsArchived,
		"is_deleted":  draft.IsDeleted,
	}

	var saved models.Note
	if draft.ID != "" {
		if err := s.client.Update(ctx, store.CollectionNotes, draft.ID, payload, &saved); err != nil {
			return nil, err
		}
	} else {
		payload["created_by"] = s.session.CurrentUserID()
		payload["is_archived"] = false
		payload["is_deleted"] = false
		if err := s.client.Create(ctx, store.CollectionNotes, payload, &saved); err != nil {
			return nil, err
		}
	}

	s.edit.complete()
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("notes refresh after save failed", zap.Error(err))
	}
	return &saved, nil
}

// Archive moves a note to the archived tab.
func (s *Service) Archive(ctx context.Context, id string) error {
	return s.mutate(ctx, id, map[string]interface{}{"is_archived": true})
}

// Unarchive returns an archived note to the active tab.
func (s *Service) Unarchive(ctx context.Context, id string) error {
	return s.mutate(ctx, id, map[string]interface{}{"is_archived": false})
}

// SoftDelete moves a note to the trash.
func (s *Service) SoftDelete(ctx context.Context, id string) error {
	return s.mutate(ctx, id, map[string]interface{}{"is_deleted": true})
}

// Restore takes a note out of the trash.
func (s *Service) Restore(ctx context.Context, id string) error {
	return s.mutate(ctx, id, map[string]interface{}{"is_deleted": false})
}

// PermanentlyDelete removes a trashed note for good. It refuses to run
// without explicit confirmation and refuses notes that are not in the
// deleted state.
func (s *Service) PermanentlyDelete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return appErrors.Clone(appErrors.ErrValidation, "permanent deletion requires confirmation")
	}

	note, ok := s.find(id)
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "note not found")
	}
	if Classify(note) != StateDeleted {
		return appErrors.Clone(appErrors.ErrConflict, "only trashed notes can be permanently deleted")
	}

	unlock := s.lockRecord(id)
	defer unlock()

	if err := s.client.Delete(ctx, store.CollectionNotes, id); err != nil {
		s.logger.Error("permanent delete failed", zap.String("note_id", id), zap.Error(err))
		return err
	}

	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("notes refresh after delete failed", zap.Error(err))
	}
	return nil
}

// mutate applies a partial status update followed by a full-list refresh.
// Mutations on the same record are serialized; mutations on distinct records
// run independently and the last refresh to complete wins.
func (s *Service) mutate(ctx context.Context, id string, partial map[string]interface{}) error {
	unlock := s.lockRecord(id)
	defer unlock()

	if err := s.client.Update(ctx, store.CollectionNotes, id, partial, nil); err != nil {
		s.logger.Error("note status update failed", zap.String("note_id", id), zap.Error(err))
		return err
	}

	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("notes refresh after status update failed", zap.Error(err))
	}
	return nil
}

func (s *Service) find(id string) (models.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.list {
		if n.ID == id {
			return n, true
		}
	}
	return models.Note{}, false
}

func (s *Service) lockRecord(id string) func() {
	s.locksMu.Lock()
	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	s.locksMu.Unlock()

	lock.Lock()
	return lock.Unlock
}

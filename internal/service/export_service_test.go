package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tableturnerr/dashboard-api/internal/models"
	"github.com/tableturnerr/dashboard-api/internal/notes"
	appErrors "github.com/tableturnerr/dashboard-api/pkg/errors"
)

type fakeNotesProvider struct {
	notes      []models.Note
	refreshErr error
	lastTab    notes.Tab
	lastSearch string
}

func (f *fakeNotesProvider) Refresh(context.Context) error { return f.refreshErr }

func (f *fakeNotesProvider) Notes(tab notes.Tab, search string) []models.Note {
	f.lastTab = tab
	f.lastSearch = search
	return f.notes
}

func TestExportRenderCSV(t *testing.T) {
	updated := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	provider := &fakeNotesProvider{notes: []models.Note{
		{
			Title:   "Quarterly plan",
			Updated: updated,
			Expand:  &models.NoteExpand{CreatedBy: &models.User{Name: "Dana"}},
		},
		{Title: "Orphaned", IsArchived: true, Updated: updated},
	}}
	svc := NewExportService(provider, nil)

	artifact, err := svc.Render(context.Background(), notes.TabActive, "plan", FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "text/csv", artifact.ContentType)
	assert.True(t, strings.HasPrefix(artifact.Filename, "notes-"))
	assert.True(t, strings.HasSuffix(artifact.Filename, ".csv"))
	assert.Equal(t, notes.TabActive, provider.lastTab)
	assert.Equal(t, "plan", provider.lastSearch)

	body := string(artifact.Data)
	assert.Contains(t, body, "Title,Status,Author,Updated")
	assert.Contains(t, body, "Quarterly plan,active,Dana,2026-08-30T12:00:00Z")
	// note without an expanded author falls back
	assert.Contains(t, body, "Orphaned,archived,Unknown")
}

func TestExportRenderPDF(t *testing.T) {
	provider := &fakeNotesProvider{notes: []models.Note{{Title: "One"}}}
	svc := NewExportService(provider, nil)

	artifact, err := svc.Render(context.Background(), notes.TabArchived, "", FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", artifact.ContentType)
	assert.True(t, strings.HasSuffix(artifact.Filename, ".pdf"))
	assert.NotEmpty(t, artifact.Data)
	assert.Equal(t, "%PDF", string(artifact.Data[:4]))
}

func TestExportRenderUnknownFormat(t *testing.T) {
	svc := NewExportService(&fakeNotesProvider{}, nil)

	_, err := svc.Render(context.Background(), notes.TabActive, "", "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExportRenderRefreshFailure(t *testing.T) {
	svc := NewExportService(&fakeNotesProvider{refreshErr: appErrors.ErrBackend}, nil)

	_, err := svc.Render(context.Background(), notes.TabActive, "", FormatCSV)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrBackend.Code, appErrors.FromError(err).Code)
}

package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tableturnerr/dashboard-api/internal/dto"
	"github.com/tableturnerr/dashboard-api/internal/models"
	"github.com/tableturnerr/dashboard-api/internal/notes"
	"github.com/tableturnerr/dashboard-api/internal/service"
	appErrors "github.com/tableturnerr/dashboard-api/pkg/errors"
	"github.com/tableturnerr/dashboard-api/pkg/response"
)

type notesService interface {
	Refresh(ctx context.Context) error
	Notes(tab notes.Tab, search string) []models.Note
	BeginNew() error
	BeginEdit(id string) error
	UpdateDraft(update notes.DraftUpdate) error
	CancelEdit()
	Draft() (notes.Draft, bool)
	SaveDraft(ctx context.Context) (*models.Note, error)
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	PermanentlyDelete(ctx context.Context, id string, confirmed bool) error
}

type notesExporter interface {
	Render(ctx context.Context, tab notes.Tab, search, format string) (*service.ExportArtifact, error)
}

// NotesHandler wires the notes page to HTTP endpoints.
type NotesHandler struct {
	service  notesService
	exporter notesExporter
}

// NewNotesHandler constructs the handler.
func NewNotesHandler(svc notesService, exporter notesExporter) *NotesHandler {
	return &NotesHandler{service: svc, exporter: exporter}
}

// List godoc
// @Summary List notes for a tab with optional search
// @Tags Notes
// @Produce json
// @Param tab query string false "active | archived | deleted"
// @Param q query string false "Search term"
// @Success 200 {object} response.Envelope
// @Router /notes [get]
func (h *NotesHandler) List(c *gin.Context) {
	tab, ok := notes.ParseTab(c.Query("tab"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "tab must be active, archived, or deleted"))
		return
	}
	search := c.Query("q")

	if err := h.service.Refresh(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, dto.NotesResponse{
		Tab:    string(tab),
		Search: search,
		Notes:  h.service.Notes(tab, search),
	}, nil)
}

// BeginNew godoc
// @Summary Start an edit session for a new note
// @Tags Notes
// @Success 201 {object} response.Envelope
// @Router /notes/draft [post]
func (h *NotesHandler) BeginNew(c *gin.Context) {
	if err := h.service.BeginNew(); err != nil {
		response.Error(c, err)
		return
	}
	draft, _ := h.service.Draft()
	response.Created(c, draft)
}

// BeginEdit godoc
// @Summary Start an edit session for an existing note
// @Tags Notes
// @Param id path string true "Note ID"
// @Success 201 {object} response.Envelope
// @Router /notes/draft/{id} [post]
func (h *NotesHandler) BeginEdit(c *gin.Context) {
	if err := h.service.BeginEdit(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	draft, _ := h.service.Draft()
	response.Created(c, draft)
}

// GetDraft godoc
// @Summary Return the working draft
// @Tags Notes
// @Success 200 {object} response.Envelope
// @Router /notes/draft [get]
func (h *NotesHandler) GetDraft(c *gin.Context) {
	draft, editing := h.service.Draft()
	if !editing {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "no edit session in progress"))
		return
	}
	response.JSON(c, http.StatusOK, draft, nil)
}

// UpdateDraft godoc
// @Summary Apply field changes to the working draft
// @Tags Notes
// @Accept json
// @Success 200 {object} response.Envelope
// @Router /notes/draft [put]
func (h *NotesHandler) UpdateDraft(c *gin.Context) {
	var update notes.DraftUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid draft payload"))
		return
	}
	if err := h.service.UpdateDraft(update); err != nil {
		response.Error(c, err)
		return
	}
	draft, _ := h.service.Draft()
	response.JSON(c, http.StatusOK, draft, nil)
}

// CancelDraft godoc
// @Summary Discard the working draft
// @Tags Notes
// @Success 204
// @Router /notes/draft [delete]
func (h *NotesHandler) CancelDraft(c *gin.Context) {
	h.service.CancelEdit()
	response.NoContent(c)
}

// SaveDraft godoc
// @Summary Persist the working draft
// @Tags Notes
// @Success 200 {object} response.Envelope
// @Router /notes/draft/save [post]
func (h *NotesHandler) SaveDraft(c *gin.Context) {
	saved, err := h.service.SaveDraft(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, saved, nil)
}

// ChangeStatus godoc
// @Summary Apply a status action to a note
// @Tags Notes
// @Param id path string true "Note ID"
// @Param action path string true "archive | unarchive | trash | restore"
// @Success 204
// @Router /notes/{id}/{action} [post]
func (h *NotesHandler) ChangeStatus(c *gin.Context) {
	id := c.Param("id")
	action := strings.ToLower(c.Param("action"))

	var err error
	switch action {
	case "archive":
		err = h.service.Archive(c.Request.Context(), id)
	case "unarchive":
		err = h.service.Unarchive(c.Request.Context(), id)
	case "trash":
		err = h.service.SoftDelete(c.Request.Context(), id)
	case "restore":
		err = h.service.Restore(c.Request.Context(), id)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown action %q", action)))
		return
	}

	if err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Delete godoc
// @Summary Permanently delete a trashed note
// @Tags Notes
// @Param id path string true "Note ID"
// @Param confirm query bool true "Must be true"
// @Success 204
// @Router /notes/{id} [delete]
func (h *NotesHandler) Delete(c *gin.Context) {
	confirmed := c.Query("confirm") == "true"
	if err := h.service.PermanentlyDelete(c.Request.Context(), c.Param("id"), confirmed); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Export godoc
// @Summary Download the filtered notes as CSV or PDF
// @Tags Notes
// @Param format query string true "csv | pdf"
// @Param tab query string false "active | archived | deleted"
// @Param q query string false "Search term"
// @Success 200
// @Router /notes/export [get]
func (h *NotesHandler) Export(c *gin.Context) {
	if h.exporter == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "export is disabled"))
		return
	}
	tab, ok := notes.ParseTab(c.Query("tab"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "tab must be active, archived, or deleted"))
		return
	}

	artifact, err := h.exporter.Render(c.Request.Context(), tab, c.Query("q"), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

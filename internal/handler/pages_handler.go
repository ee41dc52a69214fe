package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tableturnerr/dashboard-api/internal/dto"
	"github.com/tableturnerr/dashboard-api/pkg/response"
)

// PagesHandler serves the placeholder pages that have no backing module yet.
type PagesHandler struct{}

// NewPagesHandler constructs the handler.
func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// Goals godoc
// @Summary Goals page placeholder
// @Tags Pages
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /goals [get]
func (h *PagesHandler) Goals(c *gin.Context) {
	response.JSON(c, http.StatusOK, dto.ModuleStatusResponse{
		Module:      "goals",
		Status:      "coming_soon",
		Description: "Set and track performance targets for your team",
	}, nil)
}

// Settings godoc
// @Summary Settings page placeholder
// @Tags Pages
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /settings [get]
func (h *PagesHandler) Settings(c *gin.Context) {
	response.JSON(c, http.StatusOK, dto.ModuleStatusResponse{
		Module:      "settings",
		Status:      "coming_soon",
		Description: "Configuration options coming soon",
	}, nil)
}

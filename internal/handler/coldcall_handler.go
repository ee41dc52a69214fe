package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tableturnerr/dashboard-api/internal/models"
	"github.com/tableturnerr/dashboard-api/pkg/response"
)

type coldCallService interface {
	Get(ctx context.Context, id string) (*models.ColdCall, error)
}

// ColdCallHandler serves the cold-call detail page.
type ColdCallHandler struct {
	service coldCallService
}

// NewColdCallHandler constructs the handler.
func NewColdCallHandler(service coldCallService) *ColdCallHandler {
	return &ColdCallHandler{service: service}
}

// Get godoc
// @Summary Cold call detail
// @Tags ColdCalls
// @Produce json
// @Param id path string true "Cold call ID"
// @Success 200 {object} response.Envelope
// @Router /cold-calls/{id} [get]
func (h *ColdCallHandler) Get(c *gin.Context) {
	call, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, call, nil)
}

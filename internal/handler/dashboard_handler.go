package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tableturnerr/dashboard-api/internal/dto"
	appErrors "github.com/tableturnerr/dashboard-api/pkg/errors"
	"github.com/tableturnerr/dashboard-api/pkg/response"
)

type overviewService interface {
	Overview(ctx context.Context) *dto.OverviewResponse
}

// DashboardHandler serves the overview page payload.
type DashboardHandler struct {
	service overviewService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service overviewService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Overview godoc
// @Summary Overview stats and recent activity
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router / [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	summary := h.service.Overview(c.Request.Context())
	meta := map[string]interface{}{
		"processing_time_ms": time.Since(start).Milliseconds(),
	}
	response.JSON(c, http.StatusOK, summary, nil, meta)
}

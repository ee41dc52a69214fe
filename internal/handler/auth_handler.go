package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/tableturnerr/dashboard-api/internal/dto"
	"github.com/tableturnerr/dashboard-api/internal/models"
	"github.com/tableturnerr/dashboard-api/internal/session"
	appErrors "github.com/tableturnerr/dashboard-api/pkg/errors"
	"github.com/tableturnerr/dashboard-api/pkg/response"
)

type sessionManager interface {
	Login(ctx context.Context, identity, password string) (*models.User, error)
	Logout(ctx context.Context)
	Status() session.Status
	CurrentUser() *models.User
}

type activityRecorder interface {
	RecordUserEvent(ctx context.Context, userID, details string)
}

// AuthHandler serves the login view's form submission and session teardown.
type AuthHandler struct {
	sessions  sessionManager
	activity  activityRecorder
	validator *validator.Validate
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(sessions sessionManager, activity activityRecorder, validate *validator.Validate) *AuthHandler {
	if validate == nil {
		validate = validator.New()
	}
	return &AuthHandler{sessions: sessions, activity: activity, validator: validate}
}

// Login godoc
// @Summary Sign in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload"))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload"))
		return
	}

	user, err := h.sessions.Login(c.Request.Context(), req.Identity, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.activity != nil {
		h.activity.RecordUserEvent(c.Request.Context(), user.ID, fmt.Sprintf("%s signed in", displayName(user)))
	}

	response.JSON(c, http.StatusOK, dto.LoginResponse{User: *user}, nil)
}

// Logout godoc
// @Summary End the current session
// @Tags Auth
// @Success 204
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	user := h.sessions.CurrentUser()
	h.sessions.Logout(c.Request.Context())

	if h.activity != nil && user != nil {
		h.activity.RecordUserEvent(c.Request.Context(), user.ID, fmt.Sprintf("%s signed out", displayName(user)))
	}

	response.NoContent(c)
}

// Session godoc
// @Summary Report the process session state
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	resp := dto.SessionResponse{Status: h.sessions.Status().String()}
	if user := h.sessions.CurrentUser(); user != nil {
		resp.User = user
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

func displayName(user *models.User) string {
	if user == nil {
		return "Unknown"
	}
	if user.Name != "" {
		return user.Name
	}
	if user.Username != "" {
		return user.Username
	}
	return user.Email
}

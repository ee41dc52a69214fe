package dto

import "github.com/tableturnerr/dashboard-api/internal/models"

// LoginRequest is the login form payload.
type LoginRequest struct {
	Identity string `json:"identity" binding:"required" validate:"required"`
	Password string `json:"password" binding:"required" validate:"required"`
}

// LoginResponse returns the authenticated user.
type LoginResponse struct {
	User models.User `json:"user"`
}

// SessionResponse reports the process session state.
type SessionResponse struct {
	Status string       `json:"status"`
	User   *models.User `json:"user,omitempty"`
}

package dto

import "github.com/tableturnerr/dashboard-api/internal/models"

// NotesResponse is the notes page payload for one tab + search combination.
type NotesResponse struct {
	Tab    string        `json:"tab"`
	Search string        `json:"search,omitempty"`
	Notes  []models.Note `json:"notes"`
}

// ModuleStatusResponse is the placeholder payload for unfinished pages.
type ModuleStatusResponse struct {
	Module      string `json:"module"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

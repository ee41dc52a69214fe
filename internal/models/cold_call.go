package models

import "time"

// ColdCall is a recorded call in the cold_calls collection.
type ColdCall struct {
	ID       string          `json:"id"`
	Company  string          `json:"company"`
	CalledBy string          `json:"called_by"`
	Outcome  string          `json:"outcome"`
	Notes    string          `json:"notes"`
	Created  time.Time       `json:"created"`
	Updated  time.Time       `json:"updated"`
	Expand   *ColdCallExpand `json:"expand,omitempty"`
}

// ColdCallExpand carries expanded relations for a cold call.
type ColdCallExpand struct {
	Company *Company `json:"company,omitempty"`
}

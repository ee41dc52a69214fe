package dto

import "time"

// OverviewStats are the four stat cards on the overview page.
type OverviewStats struct {
	TotalCompanies int `json:"total_companies"`
	TotalColdCalls int `json:"total_cold_calls"`
	TotalLeads     int `json:"total_leads"`
	ActiveMembers  int `json:"active_members"`
}

// ActivityEntry is one row of the recent-activity feed.
type ActivityEntry struct {
	ID          string    `json:"id"`
	EventType   string    `json:"event_type"`
	Description string    `json:"description"`
	Source      string    `json:"source,omitempty"`
	Created     time.Time `json:"created"`
}

// OverviewResponse is the overview page payload.
type OverviewResponse struct {
	Stats          OverviewStats   `json:"stats"`
	RecentActivity []ActivityEntry `json:"recent_activity"`
}

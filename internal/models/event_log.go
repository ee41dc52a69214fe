package models

import "time"

// Event types recorded in the event_logs collection.
const (
	EventTypeOutreach        = "Outreach"
	EventTypeColdCall        = "Cold Call"
	EventTypeUser            = "User"
	EventTypeSystem          = "System"
	EventTypeTarInfoChange   = "Change in Tar Info"
	EventTypeTarExceptionTog = "Tar Exception Toggle"
)

// EventLog is an activity record read from (and, for user events, written to)
// the event_logs collection.
type EventLog struct {
	ID        string          `json:"id"`
	EventType string          `json:"event_type"`
	Details   string          `json:"details"`
	Source    string          `json:"source"`
	User      string          `json:"user"`
	Actor     string          `json:"actor"`
	Target    string          `json:"target"`
	ColdCall  string          `json:"cold_call"`
	Created   time.Time       `json:"created"`
	Expand    *EventLogExpand `json:"expand,omitempty"`
}

// EventLogExpand carries expanded relations for an event log entry.
type EventLogExpand struct {
	User     *User     `json:"user,omitempty"`
	Actor    *User     `json:"actor,omitempty"`
	Target   *User     `json:"target,omitempty"`
	ColdCall *ColdCall `json:"cold_call,omitempty"`
}

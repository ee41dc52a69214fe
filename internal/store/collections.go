package store

// Collection names consumed by the dashboard. The server-side schemas are
// owned by the record service; this application only names the resources.
const (
	CollectionCompanies = "companies"
	CollectionColdCalls = "cold_calls"
	CollectionLeads     = "leads"
	CollectionUsers     = "users"
	CollectionNotes     = "notes"
	CollectionEventLogs = "event_logs"
)

package models

import "time"

// Company is a business tracked in the companies collection. Only the fields
// the dashboard reads are modelled; the server-side schema is broader.
type Company struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

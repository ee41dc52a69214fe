package models

import "time"

// Lead is a prospect tracked in the leads collection.
type Lead struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Company string    `json:"company"`
	Status  string    `json:"status"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

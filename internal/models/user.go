package models

import "time"

// UserStatusSuspended marks accounts excluded from the active member count.
const UserStatusSuspended = "suspended"

// User mirrors the fields this application reads from the users collection.
type User struct {
	ID       string    `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Status   string    `json:"status"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
}

package model

import "time"

// Notification is an append-only notice published by hall admins.
// HallID nil means the notice is visible to every hall.  There is no
// edit or delete operation.
type Notification struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	HallID    *uint64   `json:"hall_id"`
	CreatedAt time.Time `json:"created_at"`
}

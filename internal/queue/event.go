// Package queue defines message payloads exchanged over the message broker.
package queue

// ApplicationSubmittedEvent is published when a student submits a hall
// application. It carries enough information for downstream consumers to
// log or notify without querying the primary database.
type ApplicationSubmittedEvent struct {
	ApplicationID uint64 `json:"application_id"`
	UserID        uint64 `json:"user_id"`
	FormID        uint64 `json:"form_id"`
	FormName      string `json:"form_name"`
	HallID        uint64 `json:"hall_id"`
	Score         int    `json:"score"`
	SubmittedAt   string `json:"submitted_at"`
}

// ApplicationDecidedEvent is published when an application reaches a
// terminal review decision (approved or rejected).
type ApplicationDecidedEvent struct {
	ApplicationID uint64 `json:"application_id"`
	UserID        uint64 `json:"user_id"`
	HallID        uint64 `json:"hall_id"`
	Status        string `json:"status"`
	PaymentDone   bool   `json:"payment_done"`
	DecidedAt     string `json:"decided_at"`
}

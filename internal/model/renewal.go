package model

import "time"

// Renewal statuses.
const (
	RenewalRequested = "Requested"
	RenewalApproved  = "Approved"
	RenewalRejected  = "Rejected"
)

// ValidRenewalStatus reports whether s is a known renewal status.
func ValidRenewalStatus(s string) bool {
	switch s {
	case RenewalRequested, RenewalApproved, RenewalRejected:
		return true
	}
	return false
}

// Renewal is a student's request to extend hall residency beyond
// the current term.  One outstanding request per student is a UI
// convention only; the data layer does not enforce it.
type Renewal struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

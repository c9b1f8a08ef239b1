package model

import "time"

// Complaint statuses.
const (
	ComplaintOpen      = "Open"
	ComplaintInReview  = "In Review"
	ComplaintResolved  = "Resolved"
	ComplaintDismissed = "Dismissed"
)

// ValidComplaintStatus reports whether s is a known complaint status.
func ValidComplaintStatus(s string) bool {
	switch s {
	case ComplaintOpen, ComplaintInReview, ComplaintResolved, ComplaintDismissed:
		return true
	}
	return false
}

// Complaint is filed by a student and scoped to the student's hall.
// The hall is stamped from the user record at creation, never taken
// from caller input.  Only the status, reviewer and notes fields are
// mutated after creation.
//
// Fields:
//  ID          – primary key identifier.
//  UserID      – filing student.
//  HallID      – hall of the filing student (nullable when the
//                student has no hall on record).
//  Title       – short summary.
//  Body        – free-text description.
//  Attachments – uploaded file handles.
//  Status      – one of the Complaint* constants.
//  ReviewedBy  – admin or staff user who reviewed it (nullable).
//  ReviewNotes – reviewer's notes.
//  CreatedAt   – filing timestamp.
type Complaint struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"user_id"`
	HallID      *uint64   `json:"hall_id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Attachments []string  `json:"attachments,omitempty"`
	Status      string    `json:"status"`
	ReviewedBy  *uint64   `json:"reviewed_by,omitempty"`
	ReviewNotes string    `json:"review_notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

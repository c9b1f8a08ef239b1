package model

import "time"

// Application statuses.  Submitted is the initial state.  Admins may
// move an application to any status at any time; Pending acts as a
// reset state.  No transition table is enforced: status and payment
// are orthogonal flags and the admin workflow is responsible for
// sane sequencing.
const (
	StatusSubmitted   = "Submitted"
	StatusUnderReview = "Under Review"
	StatusApproved    = "Approved"
	StatusRejected    = "Rejected"
	StatusPending     = "Pending"
)

// ValidApplicationStatus reports whether s is a known status value.
func ValidApplicationStatus(s string) bool {
	switch s {
	case StatusSubmitted, StatusUnderReview, StatusApproved, StatusRejected, StatusPending:
		return true
	}
	return false
}

// Application is a student submission against a form definition.
// HallID is copied from the submitting user at creation and never
// re-derived.  Data maps field ids to submitted values; Attachments
// maps field ids to uploaded file handles.  Score is computed from
// the form schema at submission time and stored with the record.
//
// Fields:
//  ID          – primary key identifier.
//  UserID      – submitting student.
//  FormID      – form definition the submission was made against.
//  HallID      – hall scope, copied from the user (nullable).
//  Data        – submitted field values keyed by field id.
//  Attachments – file handles keyed by field id.
//  Status      – one of the Status* constants.
//  PaymentDone – whether the admission fee was recorded as paid.
//  Score       – weighted score of the submission.
//  CreatedAt   – submission timestamp.
type Application struct {
	ID          uint64                `json:"id"`
	UserID      uint64                `json:"user_id"`
	FormID      uint64                `json:"form_id"`
	HallID      *uint64               `json:"hall_id"`
	Data        map[string]FieldValue `json:"data"`
	Attachments map[string]string     `json:"attachments,omitempty"`
	Status      string                `json:"status"`
	PaymentDone bool                  `json:"payment_done"`
	Score       int                   `json:"score"`
	CreatedAt   time.Time             `json:"created_at"`
}

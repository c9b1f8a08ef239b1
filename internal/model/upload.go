package model

import "time"

// Upload kinds published by the exam controller.
const (
	UploadResult   = "result"
	UploadSeatPlan = "seat_plan"
)

// Upload is a document published by the exam controller for a hall:
// either an exam result sheet or a seat plan.  Content holds the raw
// uploaded text and Rows the parsed lines, so readers do not need to
// re-parse.
type Upload struct {
	ID        uint64     `json:"id"`
	Kind      string     `json:"kind"`
	HallID    uint64     `json:"hall_id"`
	Name      string     `json:"name"`
	Content   string     `json:"content"`
	Rows      [][]string `json:"rows,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

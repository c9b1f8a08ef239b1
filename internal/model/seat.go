package model

import "time"

// Seat statuses.
const (
	SeatAvailable   = "Available"
	SeatOccupied    = "Occupied"
	SeatReserved    = "Reserved"
	SeatMaintenance = "Maintenance"
)

// ValidSeatStatus reports whether s is a known seat status.
func ValidSeatStatus(s string) bool {
	switch s {
	case SeatAvailable, SeatOccupied, SeatReserved, SeatMaintenance:
		return true
	}
	return false
}

// Seat is an addressable bed slot within a hall, identified for
// humans by the hall/floor/room/bed composite.  Seats are created at
// hall-seeding time and never deleted; admins mutate status and
// student assignment directly.  Assignment is fully manual: there is
// no linkage to application or renewal state and no uniqueness check
// on StudentID across seats.
//
// Fields:
//  ID        – primary key identifier.
//  HallID    – owning hall.
//  Floor     – floor number.
//  Room      – room number.
//  Bed       – bed number within the room.
//  Status    – one of the Seat* constants.
//  StudentID – assigned student's university id (nullable).
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Seat struct {
	ID        uint64    `json:"id"`
	HallID    uint64    `json:"hall_id"`
	Floor     uint32    `json:"floor"`
	Room      uint32    `json:"room"`
	Bed       uint32    `json:"bed"`
	Status    string    `json:"status"`
	StudentID *string   `json:"student_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

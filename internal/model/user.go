package model

import "time"

// Roles known to the system.  Students self-register; the other
// roles are provisioned through seeding or manual administration.
const (
	RoleStudent        = "student"
	RoleAdmin          = "admin"
	RoleStaff          = "staff"
	RoleExamController = "examcontroller"
)

// User represents an application user record as stored in the
// `users` table.  StudentID and HallID are set for students only:
// the hall is derived from the student-id prefix at registration
// time and copied onto applications at submission time.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – display name.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Role         – one of the Role* constants.
//  StudentID    – university student id (students only).
//  HallID       – hall the user belongs to (nullable).
//  IsActive     – whether the account is active.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	StudentID    *string   `json:"student_id,omitempty"`
	HallID       *uint64   `json:"hall_id,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

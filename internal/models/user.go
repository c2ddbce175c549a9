package models

import "time"

// User role constants
const (
	RolePatient   = "patient"
	RoleCaretaker = "caretaker"
)

// ValidRole reports whether role is one of the roles a user may sign up with.
func ValidRole(role string) bool {
	return role == RolePatient || role == RoleCaretaker
}

// User represents an application user. Caretaker accounts exist but are not
// yet linked to patients (see PatientCaretaker).
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password;not null" json:"-"`
	Name         string    `gorm:"not null" json:"name"`
	Role         string    `gorm:"not null" json:"role"` // enum: 'patient' or 'caretaker'
	CreatedAt    time.Time `json:"created_at"`
}

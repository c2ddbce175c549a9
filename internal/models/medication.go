package models

import "time"

// Medication represents a medication registered by (and owned by) a single user.
// The owner foreign key is declared but deletes do not cascade, so a medication
// can outlive its owner.
type Medication struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	Name         string    `gorm:"not null" json:"name"`
	Dosage       string    `gorm:"not null" json:"dosage"`
	Frequency    string    `gorm:"not null" json:"frequency"`
	Instructions string    `json:"instructions"`
	CreatedAt    time.Time `json:"created_at"`
}

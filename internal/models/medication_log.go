package models

import "time"

// DateLayout is the calendar-day format stored in the medication_logs date column.
// ISO dates compare correctly as strings, which is what the trailing-window
// queries rely on.
const DateLayout = "2006-01-02"

// MedicationLog records one dose-taken event. Rows are append-only: there is no
// update or delete path, and nothing prevents multiple rows for the same
// medication on the same day.
type MedicationLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	MedicationID uint      `gorm:"not null;index" json:"medication_id"`
	TakenAt      time.Time `gorm:"not null" json:"taken_at"`
	Date         string    `gorm:"not null" json:"date"` // YYYY-MM-DD, server UTC day
	Notes        string    `json:"notes"`
}

package models

import "time"

// PatientCaretaker links a caretaker account to a patient account. The table is
// created by the migrations but no endpoint reads or writes it yet; access
// policy currently lets any caretaker view any patient (see the auth package).
type PatientCaretaker struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PatientID   uint      `gorm:"not null;uniqueIndex:idx_patient_caretaker" json:"patient_id"`
	CaretakerID uint      `gorm:"not null;uniqueIndex:idx_patient_caretaker" json:"caretaker_id"`
	CreatedAt   time.Time `json:"created_at"`
}

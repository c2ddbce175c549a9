package database

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/medsbuddy/medsbuddy/internal/models"
)

// SeedDevData populates the database with development test data.
// Idempotent: skips if data already exists.
func SeedDevData(db *gorm.DB) error {
	// Check if seed data already exists
	var existingUser models.User
	result := db.Where("email = ?", "patient@medsbuddy.local").First(&existingUser)
	if result.Error == nil {
		log.Println("Seed data already exists, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	patient := models.User{
		Email:        "patient@medsbuddy.local",
		PasswordHash: string(hash),
		Name:         "Dev Patient",
		Role:         models.RolePatient,
	}
	if err := db.Create(&patient).Error; err != nil {
		return err
	}

	caretaker := models.User{
		Email:        "caretaker@medsbuddy.local",
		PasswordHash: string(hash),
		Name:         "Dev Caretaker",
		Role:         models.RoleCaretaker,
	}
	if err := db.Create(&caretaker).Error; err != nil {
		return err
	}

	medication := models.Medication{
		UserID:       patient.ID,
		Name:         "Aspirin",
		Dosage:       "100mg",
		Frequency:    "Once daily",
		Instructions: "Take with food",
	}
	if err := db.Create(&medication).Error; err != nil {
		return err
	}

	// A few dose logs over the last week so adherence numbers are non-trivial
	now := time.Now().UTC()
	for _, daysAgo := range []int{0, 1, 2, 4, 6} {
		takenAt := now.AddDate(0, 0, -daysAgo)
		entry := models.MedicationLog{
			MedicationID: medication.ID,
			TakenAt:      takenAt,
			Date:         takenAt.Format(models.DateLayout),
			Notes:        "seeded dose",
		}
		if err := db.Create(&entry).Error; err != nil {
			return err
		}
	}

	log.Println("Seeded dev data: 2 users, 1 medication, 5 dose logs")
	return nil
}

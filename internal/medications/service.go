// Package medications implements the medication registry: CRUD over
// medications scoped to an owning user.
package medications

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/medsbuddy/medsbuddy/internal/apperr"
	"github.com/medsbuddy/medsbuddy/internal/models"
)

// Service runs registry operations against the record store. Methods return
// taxonomy errors from the apperr package; they never touch HTTP.
type Service struct {
	db *gorm.DB
}

// NewService creates a registry service backed by db.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns the medications owned by ownerUserID, newest first. A user with
// no medications yields an empty slice, not an error.
func (s *Service) List(ownerUserID uint) ([]models.Medication, error) {
	meds := []models.Medication{}
	err := s.db.
		Where("user_id = ?", ownerUserID).
		Order("created_at DESC, id DESC").
		Find(&meds).Error
	if err != nil {
		return nil, fmt.Errorf("%w: listing medications: %v", apperr.ErrStore, err)
	}
	return meds, nil
}

// Create registers a new medication. Name, dosage, and frequency must be
// non-blank; id and created_at are store-assigned.
func (s *Service) Create(ownerUserID uint, name, dosage, frequency, instructions string) (*models.Medication, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(dosage) == "" || strings.TrimSpace(frequency) == "" {
		return nil, apperr.E(apperr.ErrValidation, "name, dosage, and frequency are required")
	}

	med := models.Medication{
		UserID:       ownerUserID,
		Name:         name,
		Dosage:       dosage,
		Frequency:    frequency,
		Instructions: instructions,
	}
	if err := s.db.Create(&med).Error; err != nil {
		return nil, fmt.Errorf("%w: creating medication: %v", apperr.ErrStore, err)
	}
	return &med, nil
}

// Update overwrites all four mutable fields unconditionally: blank inputs
// replace existing values; there are no partial-update semantics.
func (s *Service) Update(id uint, name, dosage, frequency, instructions string) (*models.Medication, error) {
	res := s.db.Model(&models.Medication{}).
		Where("id = ?", id).
		Select("name", "dosage", "frequency", "instructions").
		Updates(models.Medication{
			Name:         name,
			Dosage:       dosage,
			Frequency:    frequency,
			Instructions: instructions,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("%w: updating medication: %v", apperr.ErrStore, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.E(apperr.ErrNotFound, "medication not found")
	}

	var med models.Medication
	if err := s.db.First(&med, id).Error; err != nil {
		return nil, fmt.Errorf("%w: fetching updated medication: %v", apperr.ErrStore, err)
	}
	return &med, nil
}

// Delete removes a medication. Associated dose logs are not touched; they
// become orphans but stay readable by medication id.
func (s *Service) Delete(id uint) error {
	res := s.db.Delete(&models.Medication{}, id)
	if res.Error != nil {
		return fmt.Errorf("%w: deleting medication: %v", apperr.ErrStore, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.E(apperr.ErrNotFound, "medication not found")
	}
	return nil
}

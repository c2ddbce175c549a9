package adherence

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/medsbuddy/medsbuddy/internal/apperr"
	"github.com/medsbuddy/medsbuddy/internal/models"
)

// UserStats summarizes adherence across all of one user's medications over a
// trailing window.
type UserStats struct {
	UserID        uint `json:"user_id"`
	WindowDays    int  `json:"window_days"`
	Medications   int  `json:"medications"`
	DosesLogged   int  `json:"doses_logged"`
	DosesExpected int  `json:"doses_expected"`
	Percentage    int  `json:"percentage"`
}

// Service runs log-engine operations against the record store.
type Service struct {
	db  *gorm.DB
	now func() time.Time
}

// NewService creates a log-engine service backed by db.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// LogDose records a dose-taken event for medicationID dated to the current
// server-UTC calendar day. It inserts unconditionally: an existing log for the
// same day does not block a second row, and the medication id is not checked
// against the registry.
func (s *Service) LogDose(medicationID uint, notes string) (*models.MedicationLog, error) {
	now := s.now().UTC()
	entry := models.MedicationLog{
		MedicationID: medicationID,
		TakenAt:      now,
		Date:         now.Format(models.DateLayout),
		Notes:        notes,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("%w: logging dose: %v", apperr.ErrStore, err)
	}
	return &entry, nil
}

// UserStats aggregates adherence across every medication ownerUserID has
// registered: total doses logged in the window against one expected dose per
// medication per day. A user with no medications reports zero adherence.
func (s *Service) UserStats(ownerUserID uint, windowDays int) (*UserStats, error) {
	if windowDays <= 0 {
		windowDays = StatsWindowDays
	}
	since := s.now().UTC().AddDate(0, 0, -windowDays).Format(models.DateLayout)

	var medIDs []uint
	err := s.db.Model(&models.Medication{}).
		Where("user_id = ?", ownerUserID).
		Pluck("id", &medIDs).Error
	if err != nil {
		return nil, fmt.Errorf("%w: listing medications for stats: %v", apperr.ErrStore, err)
	}

	stats := &UserStats{
		UserID:        ownerUserID,
		WindowDays:    windowDays,
		Medications:   len(medIDs),
		DosesExpected: len(medIDs) * windowDays,
	}
	if len(medIDs) == 0 {
		return stats, nil
	}

	var logged int64
	err = s.db.Model(&models.MedicationLog{}).
		Where("medication_id IN ? AND date >= ?", medIDs, since).
		Count(&logged).Error
	if err != nil {
		return nil, fmt.Errorf("%w: counting dose logs for stats: %v", apperr.ErrStore, err)
	}

	stats.DosesLogged = int(logged)
	stats.Percentage = AggregatePercentage(stats.DosesLogged, stats.Medications, windowDays)
	return stats, nil
}

// Logs returns the dose logs for medicationID whose date falls within the
// trailing window, newest taken_at first. A non-positive window falls back to
// DefaultWindowDays. Unknown medication ids yield an empty slice, never an
// error. Orphaned logs stay readable this way after their medication is
// deleted.
func (s *Service) Logs(medicationID uint, windowDays int) ([]models.MedicationLog, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	since := s.now().UTC().AddDate(0, 0, -windowDays).Format(models.DateLayout)

	logs := []models.MedicationLog{}
	err := s.db.
		Where("medication_id = ? AND date >= ?", medicationID, since).
		Order("taken_at DESC, id DESC").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("%w: fetching dose logs: %v", apperr.ErrStore, err)
	}
	return logs, nil
}

package adherence

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/medsbuddy/medsbuddy/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Medication{},
		&models.MedicationLog{},
		&models.PatientCaretaker{},
	))
	return db
}

func TestLogDoseSetsCurrentUTCDay(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	fixed := time.Date(2025, 3, 14, 23, 45, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	entry, err := svc.LogDose(1, "after breakfast")
	require.NoError(t, err)
	require.NotZero(t, entry.ID)
	require.Equal(t, "2025-03-14", entry.Date)
	require.Equal(t, "after breakfast", entry.Notes)
	require.Equal(t, uint(1), entry.MedicationID)
}

func TestLogDoseAllowsDuplicateSameDayEntries(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	_, err := svc.LogDose(1, "")
	require.NoError(t, err)
	_, err = svc.LogDose(1, "second dose, same day")
	require.NoError(t, err)

	logs, err := svc.Logs(1, 1)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	// Permissive semantics: the duplicate is counted and the ratio passes 100.
	require.Equal(t, 200, Percentage(len(logs), 1))
}

func TestLogsFiltersByTrailingWindow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	now := time.Now().UTC()
	for _, daysAgo := range []int{0, 3, 10} {
		takenAt := now.AddDate(0, 0, -daysAgo)
		require.NoError(t, db.Create(&models.MedicationLog{
			MedicationID: 7,
			TakenAt:      takenAt,
			Date:         takenAt.Format(models.DateLayout),
		}).Error)
	}

	logs, err := svc.Logs(7, 7)
	require.NoError(t, err)
	require.Len(t, logs, 2, "the 10-day-old log falls outside the window")

	logs, err = svc.Logs(7, 30)
	require.NoError(t, err)
	require.Len(t, logs, 3)
}

func TestLogsOrdersNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	now := time.Now().UTC()
	for _, daysAgo := range []int{2, 0, 1} {
		takenAt := now.AddDate(0, 0, -daysAgo)
		require.NoError(t, db.Create(&models.MedicationLog{
			MedicationID: 3,
			TakenAt:      takenAt,
			Date:         takenAt.Format(models.DateLayout),
		}).Error)
	}

	logs, err := svc.Logs(3, 7)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	for i := 1; i < len(logs); i++ {
		require.False(t, logs[i].TakenAt.After(logs[i-1].TakenAt))
	}
}

func TestLogsUnknownMedicationYieldsEmptySlice(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	logs, err := svc.Logs(9999, 7)
	require.NoError(t, err)
	require.NotNil(t, logs)
	require.Empty(t, logs)
}

func TestUserStatsAggregatesAcrossMedications(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	for _, med := range []models.Medication{
		{ID: 1, UserID: 2, Name: "Aspirin", Dosage: "100mg", Frequency: "Once daily"},
		{ID: 2, UserID: 2, Name: "Metformin", Dosage: "500mg", Frequency: "Once daily"},
		{ID: 3, UserID: 8, Name: "Lisinopril", Dosage: "10mg", Frequency: "Once daily"},
	} {
		require.NoError(t, db.Create(&med).Error)
	}

	now := time.Now().UTC()
	// 30 logs for medication 1, 15 for medication 2, and one for another
	// user's medication that must not count.
	for i := 0; i < 30; i++ {
		takenAt := now.AddDate(0, 0, -(i % 25))
		require.NoError(t, db.Create(&models.MedicationLog{
			MedicationID: 1, TakenAt: takenAt, Date: takenAt.Format(models.DateLayout),
		}).Error)
	}
	for i := 0; i < 15; i++ {
		takenAt := now.AddDate(0, 0, -(i % 10))
		require.NoError(t, db.Create(&models.MedicationLog{
			MedicationID: 2, TakenAt: takenAt, Date: takenAt.Format(models.DateLayout),
		}).Error)
	}
	require.NoError(t, db.Create(&models.MedicationLog{
		MedicationID: 3, TakenAt: now, Date: now.Format(models.DateLayout),
	}).Error)

	stats, err := svc.UserStats(2, 30)
	require.NoError(t, err)
	require.Equal(t, 2, stats.Medications)
	require.Equal(t, 60, stats.DosesExpected)
	require.Equal(t, 45, stats.DosesLogged)
	require.Equal(t, 75, stats.Percentage)
}

func TestUserStatsNoMedications(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	stats, err := svc.UserStats(42, 0)
	require.NoError(t, err)
	require.Equal(t, StatsWindowDays, stats.WindowDays)
	require.Zero(t, stats.Medications)
	require.Zero(t, stats.DosesLogged)
	require.Zero(t, stats.Percentage)
}

func TestLogsDefaultsWindowToSevenDays(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	now := time.Now().UTC()
	for _, daysAgo := range []int{1, 20} {
		takenAt := now.AddDate(0, 0, -daysAgo)
		require.NoError(t, db.Create(&models.MedicationLog{
			MedicationID: 5,
			TakenAt:      takenAt,
			Date:         takenAt.Format(models.DateLayout),
		}).Error)
	}

	logs, err := svc.Logs(5, 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
}

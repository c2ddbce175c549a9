package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/medsbuddy/medsbuddy/internal/models"
)

func TestSeedDevDataIsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:seed_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Medication{},
		&models.MedicationLog{},
		&models.PatientCaretaker{},
	))

	require.NoError(t, SeedDevData(db))
	require.NoError(t, SeedDevData(db), "second run must be a no-op")

	var users, meds, logs int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Medication{}).Count(&meds).Error)
	require.NoError(t, db.Model(&models.MedicationLog{}).Count(&logs).Error)
	require.EqualValues(t, 2, users)
	require.EqualValues(t, 1, meds)
	require.EqualValues(t, 5, logs)
}

func TestMigrationsApplyOnSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "migrate_test.sqlite")

	db, err := Init(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, Close(db)) }()

	require.NoError(t, RunMigrations(db, path))
	// Second run is a no-op.
	require.NoError(t, RunMigrations(db, path))

	for _, table := range []string{"users", "medications", "medication_logs", "patient_caretakers"} {
		require.Truef(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}
}

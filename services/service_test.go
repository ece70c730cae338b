package services

import (
	"testing"

	"campus-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory SQLite database with the full
// schema. Pool capped at one connection so every test shares the same
// in-memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Booking{},
		&models.CommuteEntry{},
		&models.CurrentAffair{},
		&models.FoodReview{},
	))
	return db
}

func mustCreateBooking(t *testing.T, svc *BookingService, in CreateBookingInput) models.Booking {
	t.Helper()
	booking, err := svc.Create(in)
	require.NoError(t, err)
	return booking
}

package services

import (
	"fmt"
	"strings"
	"time"

	"campus-backend/models"
	"campus-backend/utils"

	"gorm.io/gorm"
)

// Overdue-arrival message shown to admins; the frontend renders it
// verbatim, so keep it stable.
const arrivalAlertMessage = "No arrival confirmation past expected time."

// SafetyService derives alert state for bookings and commute entries by
// comparing a reference instant against each record's expected-arrival
// deadline. It only reads; classification is a pure function of
// (records, now, grace) and safe to recompute on every admin poll.
type SafetyService struct {
	DB *gorm.DB

	// Grace is added to the expected-arrival deadline before a record
	// starts alerting. Zero means alert the instant the deadline passes.
	Grace time.Duration
}

func NewSafetyService(db *gorm.DB, grace time.Duration) *SafetyService {
	return &SafetyService{DB: db, Grace: grace}
}

// BookingOverdue reports whether a booking should alert at the given
// instant: not rejected, no arrival confirmation, and now past the
// expected arrival (plus grace). Bookings without an expected arrival
// time never alert.
func (s *SafetyService) BookingOverdue(b models.Booking, now time.Time) bool {
	if b.HasArrived || b.Status == models.BookingStatusRejected {
		return false
	}
	if strings.TrimSpace(b.ExpectedArrivalTime) == "" {
		return false
	}
	deadline, err := utils.CombineDateTime(b.Date, b.ExpectedArrivalTime)
	if err != nil {
		return false
	}
	return now.After(deadline.Add(s.Grace))
}

// CommuteOverdue is the commute-entry variant of BookingOverdue.
func (s *SafetyService) CommuteOverdue(e models.CommuteEntry, now time.Time) bool {
	if e.HasArrived {
		return false
	}
	deadline, err := utils.CombineDateTime(e.Date, e.ExpectedArrivalTime)
	if err != nil {
		return false
	}
	return now.After(deadline.Add(s.Grace))
}

// AnnotateBookings builds the admin view in one pass: every booking
// tagged with its alert state, plus the flat alert list.
func (s *SafetyService) AnnotateBookings(bookings []models.Booking, now time.Time) ([]models.AdminBooking, []models.SafetyAlert) {
	annotated := make([]models.AdminBooking, 0, len(bookings))
	alerts := []models.SafetyAlert{}
	for _, b := range bookings {
		view := models.AdminBooking{Booking: b}
		if s.BookingOverdue(b, now) {
			view.SafetyAlert = true
			view.SafetyAlertMessage = arrivalAlertMessage
			alerts = append(alerts, models.SafetyAlert{
				BookingID:           b.ID,
				User:                b.User,
				Room:                b.Room,
				Date:                b.Date,
				ExpectedArrivalTime: b.ExpectedArrivalTime,
				Message:             arrivalAlertMessage,
				Flagged:             true,
			})
		}
		annotated = append(annotated, view)
	}
	return annotated, alerts
}

// AnnotateCommuteEntries tags a student's entries with their overdue
// message for the personal listing.
func (s *SafetyService) AnnotateCommuteEntries(entries []models.CommuteEntry, now time.Time) []models.CommuteEntryView {
	views := make([]models.CommuteEntryView, 0, len(entries))
	for _, e := range entries {
		view := models.CommuteEntryView{CommuteEntry: e}
		if s.CommuteOverdue(e, now) {
			view.AlertMessage = arrivalAlertMessage
		}
		views = append(views, view)
	}
	return views
}

// ListBookingAlerts scans all bookings and returns the alerting ones.
func (s *SafetyService) ListBookingAlerts(now time.Time) ([]models.SafetyAlert, error) {
	var bookings []models.Booking
	if err := s.DB.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to scan bookings for alerts: %w", err)
	}
	_, alerts := s.AnnotateBookings(bookings, now)
	return alerts, nil
}

// ListCommuteAlerts scans all commute entries and returns the alerting
// ones, oldest day first so the most overdue students surface on top.
func (s *SafetyService) ListCommuteAlerts(now time.Time) ([]models.CommuteAlert, error) {
	var entries []models.CommuteEntry
	if err := s.DB.Order("date ASC, expected_arrival_time ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to scan commute entries for alerts: %w", err)
	}
	alerts := []models.CommuteAlert{}
	for _, e := range entries {
		if !s.CommuteOverdue(e, now) {
			continue
		}
		alerts = append(alerts, models.CommuteAlert{
			EntryID:             e.ID,
			User:                e.User,
			Date:                e.Date,
			ExpectedArrivalTime: e.ExpectedArrivalTime,
			TravelMode:          e.TravelMode,
			AlertMessage:        arrivalAlertMessage,
			Flagged:             true,
		})
	}
	return alerts, nil
}

package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"campus-backend/models"
	"campus-backend/utils"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// BookingService owns booking records: creation with room-conflict
// checking, the admin approval workflow and arrival confirmation.
type BookingService struct {
	DB *gorm.DB

	mu    sync.Mutex
	slots map[string]*sync.Mutex
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db, slots: make(map[string]*sync.Mutex)}
}

// slotLock returns the mutex serializing conflict-check plus insert for
// one room+date, so two concurrent creates for the same slot cannot
// both pass the overlap check.
func (s *BookingService) slotLock(room, date string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := room + "|" + date
	l, ok := s.slots[key]
	if !ok {
		l = &sync.Mutex{}
		s.slots[key] = l
	}
	return l
}

type CreateBookingInput struct {
	User                string
	Room                string
	Date                string
	StartTime           string
	EndTime             string
	ExpectedArrivalTime string
	Purpose             string
	Attendees           []byte
}

// Create validates the requested window, checks the room is free and
// persists the booking as pending. Conflict detection uses the
// half-open interval rule: windows that merely touch do not collide.
// Rejected bookings never block a slot.
func (s *BookingService) Create(in CreateBookingInput) (models.Booking, error) {
	var booking models.Booking

	room := strings.TrimSpace(in.Room)
	if room == "" {
		return booking, fmt.Errorf("%w: room", ErrMissingField)
	}
	if _, err := utils.ParseDate(in.Date); err != nil {
		return booking, err
	}
	start, err := utils.ParseTimeOfDay(in.StartTime)
	if err != nil {
		return booking, err
	}
	end, err := utils.ParseTimeOfDay(in.EndTime)
	if err != nil {
		return booking, err
	}
	if start >= end {
		return booking, ErrInvalidTimeRange
	}

	arrivalStr := strings.TrimSpace(in.ExpectedArrivalTime)
	if arrivalStr != "" {
		arrival, err := utils.ParseTimeOfDay(arrivalStr)
		if err != nil {
			return booking, err
		}
		if arrival < start || arrival > end {
			return booking, ErrInvalidArrivalWindow
		}
	}

	lock := s.slotLock(room, in.Date)
	lock.Lock()
	defer lock.Unlock()

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing []models.Booking
		if err := tx.
			Where("room = ? AND date = ? AND status IN ?", room, in.Date,
				[]string{models.BookingStatusPending, models.BookingStatusApproved}).
			Find(&existing).Error; err != nil {
			return fmt.Errorf("failed to load bookings for %s on %s: %w", room, in.Date, err)
		}
		for _, b := range existing {
			bStart, pErr := utils.ParseTimeOfDay(b.StartTime)
			if pErr != nil {
				continue
			}
			bEnd, pErr := utils.ParseTimeOfDay(b.EndTime)
			if pErr != nil {
				continue
			}
			if utils.IntervalsOverlap(start, end, bStart, bEnd) {
				return ErrRoomConflict
			}
		}

		booking = models.Booking{
			User:                in.User,
			Room:                room,
			Date:                in.Date,
			StartTime:           in.StartTime,
			EndTime:             in.EndTime,
			ExpectedArrivalTime: arrivalStr,
			Purpose:             strings.TrimSpace(in.Purpose),
			Status:              models.BookingStatusPending,
			Attendees:           in.Attendees,
		}

		// reference codes are random; retry a couple of times on the
		// unlikely unique-index collision
		var createErr error
		for attempt := 0; attempt < 3; attempt++ {
			booking.ID = 0
			booking.ReferenceCode = utils.NewReferenceCode()
			createErr = tx.Create(&booking).Error
			if createErr == nil {
				return nil
			}
			if !isDuplicateKey(createErr) {
				break
			}
		}
		return fmt.Errorf("failed to create booking: %w", createErr)
	})
	if txErr != nil {
		return models.Booking{}, txErr
	}
	return booking, nil
}

// ListForUser returns all bookings owned by user, any status, most
// recent slot first.
func (s *BookingService) ListForUser(user string) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Where("user = ?", user).
		Order("date DESC, start_time DESC, id DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return list, nil
}

// ListAll returns every booking across all users (admin view).
func (s *BookingService) ListAll() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Order("date DESC, start_time DESC, id DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return list, nil
}

// SetStatus moves a booking to approved or rejected. Any current status
// is a legal starting point; arrival state is untouched.
func (s *BookingService) SetStatus(id uint, status string) (models.Booking, error) {
	var booking models.Booking
	if status != models.BookingStatusApproved && status != models.BookingStatusRejected {
		return booking, ErrInvalidStatus
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load booking %d: %w", id, err)
		}
		if err := tx.Model(&booking).Update("status", status).Error; err != nil {
			return fmt.Errorf("failed to update booking %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

// MarkArrived confirms arrival for the owning student. Idempotent: a
// second call returns the arrived record without error. Rejected
// bookings cannot confirm arrival.
func (s *BookingService) MarkArrived(id uint, user string) (models.Booking, error) {
	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load booking %d: %w", id, err)
		}
		if booking.User != user {
			return ErrForbidden
		}
		if booking.Status == models.BookingStatusRejected {
			return ErrAlreadyRejected
		}
		if booking.HasArrived {
			return nil
		}
		if err := tx.Model(&booking).Update("has_arrived", true).Error; err != nil {
			return fmt.Errorf("failed to mark booking %d arrived: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

func isDuplicateKey(err error) bool {
	var mysqlErr *gomysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique")
}

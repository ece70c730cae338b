package services

import (
	"errors"
	"fmt"
	"strings"

	"campus-backend/models"
	"campus-backend/utils"

	"gorm.io/gorm"
)

// CommuteService owns commute ETA entries. Same arrival-tracking
// pattern as bookings, minus the approval workflow and any overlap
// constraint: a student may log several entries per day.
type CommuteService struct {
	DB *gorm.DB
}

func NewCommuteService(db *gorm.DB) *CommuteService {
	return &CommuteService{DB: db}
}

type SubmitCommuteInput struct {
	User                string
	Date                string
	ExpectedArrivalTime string
	TravelMode          string
	Notes               string
}

// Submit validates and persists a commute ETA entry.
func (s *CommuteService) Submit(in SubmitCommuteInput) (models.CommuteEntry, error) {
	var entry models.CommuteEntry
	if _, err := utils.ParseDate(in.Date); err != nil {
		return entry, err
	}
	if _, err := utils.ParseTimeOfDay(in.ExpectedArrivalTime); err != nil {
		return entry, err
	}

	entry = models.CommuteEntry{
		User:                in.User,
		Date:                in.Date,
		ExpectedArrivalTime: in.ExpectedArrivalTime,
		TravelMode:          strings.TrimSpace(in.TravelMode),
		Notes:               strings.TrimSpace(in.Notes),
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		return models.CommuteEntry{}, fmt.Errorf("failed to create commute entry: %w", err)
	}
	return entry, nil
}

// ListForUser returns the user's commute entries, most recent day first.
func (s *CommuteService) ListForUser(user string) ([]models.CommuteEntry, error) {
	var list []models.CommuteEntry
	if err := s.DB.
		Where("user = ?", user).
		Order("date DESC, expected_arrival_time DESC, id DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list commute entries: %w", err)
	}
	return list, nil
}

// ListAll returns every commute entry; input for the safety engine.
func (s *CommuteService) ListAll() ([]models.CommuteEntry, error) {
	var list []models.CommuteEntry
	if err := s.DB.
		Order("date DESC, expected_arrival_time DESC, id DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list commute entries: %w", err)
	}
	return list, nil
}

// MarkArrived flips the arrival flag for the owning student.
// Idempotent on repeat calls.
func (s *CommuteService) MarkArrived(id uint, user string) (models.CommuteEntry, error) {
	var entry models.CommuteEntry
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&entry, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load commute entry %d: %w", id, err)
		}
		if entry.User != user {
			return ErrForbidden
		}
		if entry.HasArrived {
			return nil
		}
		if err := tx.Model(&entry).Update("has_arrived", true).Error; err != nil {
			return fmt.Errorf("failed to mark commute entry %d arrived: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return models.CommuteEntry{}, err
	}
	return entry, nil
}

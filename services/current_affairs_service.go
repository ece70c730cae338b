package services

import (
	"errors"
	"fmt"
	"strings"

	"campus-backend/models"
	"campus-backend/utils"

	"gorm.io/gorm"
)

// CurrentAffairsService is plain CRUD over announcement records.
type CurrentAffairsService struct {
	DB *gorm.DB
}

func NewCurrentAffairsService(db *gorm.DB) *CurrentAffairsService {
	return &CurrentAffairsService{DB: db}
}

type CurrentAffairInput struct {
	Title     string
	Content   string
	EventDate string
	Category  string
}

func (in CurrentAffairInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title", ErrMissingField)
	}
	if strings.TrimSpace(in.Content) == "" {
		return fmt.Errorf("%w: content", ErrMissingField)
	}
	if _, err := utils.ParseDate(in.EventDate); err != nil {
		return err
	}
	return nil
}

func (s *CurrentAffairsService) Create(in CurrentAffairInput) (models.CurrentAffair, error) {
	if err := in.validate(); err != nil {
		return models.CurrentAffair{}, err
	}
	item := models.CurrentAffair{
		Title:     strings.TrimSpace(in.Title),
		Content:   strings.TrimSpace(in.Content),
		EventDate: in.EventDate,
		Category:  strings.TrimSpace(in.Category),
	}
	if err := s.DB.Create(&item).Error; err != nil {
		return models.CurrentAffair{}, fmt.Errorf("failed to create current affair: %w", err)
	}
	return item, nil
}

func (s *CurrentAffairsService) Update(id uint, in CurrentAffairInput) (models.CurrentAffair, error) {
	if err := in.validate(); err != nil {
		return models.CurrentAffair{}, err
	}
	var item models.CurrentAffair
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load current affair %d: %w", id, err)
		}
		updates := map[string]interface{}{
			"title":      strings.TrimSpace(in.Title),
			"content":    strings.TrimSpace(in.Content),
			"event_date": in.EventDate,
			"category":   strings.TrimSpace(in.Category),
		}
		if err := tx.Model(&item).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update current affair %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return models.CurrentAffair{}, err
	}
	return item, nil
}

func (s *CurrentAffairsService) Delete(id uint) error {
	res := s.DB.Delete(&models.CurrentAffair{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete current affair %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAll returns every announcement, newest event first. The secondary
// id sort keeps same-day items in a stable order.
func (s *CurrentAffairsService) ListAll() ([]models.CurrentAffair, error) {
	var list []models.CurrentAffair
	if err := s.DB.
		Order("event_date DESC, id DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list current affairs: %w", err)
	}
	return list, nil
}

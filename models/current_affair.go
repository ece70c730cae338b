package models

import (
	"time"

	"gorm.io/gorm"
)

// CurrentAffair is an admin-authored announcement, publicly readable by
// students. Plain CRUD entity.
type CurrentAffair struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title     string `gorm:"column:title;size:255" json:"title"`
	Content   string `gorm:"column:content;type:text" json:"content"`
	EventDate string `gorm:"column:event_date;size:10;index" json:"event_date"`
	Category  string `gorm:"column:category;size:64" json:"category,omitempty"`
}

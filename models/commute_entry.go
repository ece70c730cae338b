package models

import (
	"time"

	"gorm.io/gorm"
)

// CommuteEntry is a student's self-reported ETA for a given day. It has
// no relation to room bookings and no approval workflow; a student may
// log several entries per day.
type CommuteEntry struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User                string `gorm:"column:user;size:255;index" json:"user"`
	Date                string `gorm:"column:date;size:10;index" json:"date"`
	ExpectedArrivalTime string `gorm:"column:expected_arrival_time;size:5" json:"expected_arrival_time"`
	TravelMode          string `gorm:"column:travel_mode;size:64" json:"travel_mode,omitempty"`
	Notes               string `gorm:"column:notes;type:text" json:"notes,omitempty"`
	HasArrived          bool   `gorm:"column:has_arrived;default:false" json:"has_arrived"`
}

// CommuteEntryView is the student-listing view of a commute entry,
// carrying the derived overdue message when the entry is alerting.
type CommuteEntryView struct {
	CommuteEntry
	AlertMessage string `json:"alert_message,omitempty"`
}

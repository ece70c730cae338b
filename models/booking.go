package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Booking status workflow: every booking starts pending; an admin may
// move it to approved or rejected at any time (rejection is not a
// terminal state, a rejected booking can be re-approved).
const (
	BookingStatusPending  = "pending"
	BookingStatusApproved = "approved"
	BookingStatusRejected = "rejected"
)

// Booking is a student's reservation of a room for a time window on a
// single day. Dates travel as "YYYY-MM-DD" and times of day as "HH:MM",
// matching the frontend form inputs.
type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User          string `gorm:"column:user;size:255;index" json:"user"`
	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code,omitempty"`

	Room                string `gorm:"column:room;size:64;index:idx_room_date" json:"room"`
	Date                string `gorm:"column:date;size:10;index:idx_room_date" json:"date"`
	StartTime           string `gorm:"column:start_time;size:5" json:"start_time"`
	EndTime             string `gorm:"column:end_time;size:5" json:"end_time"`
	ExpectedArrivalTime string `gorm:"column:expected_arrival_time;size:5" json:"expected_arrival_time,omitempty"`

	Purpose    string `gorm:"column:purpose;type:text" json:"purpose"`
	Status     string `gorm:"column:status;size:16;index" json:"status"`
	HasArrived bool   `gorm:"column:has_arrived;default:false" json:"has_arrived"`

	// Optional draft list of accompanying attendees, kept as raw JSON.
	Attendees datatypes.JSON `gorm:"column:attendees" json:"attendees,omitempty"`
}

// AdminBooking is the admin-listing view of a booking, annotated with
// the derived safety-alert state. Never persisted.
type AdminBooking struct {
	Booking
	SafetyAlert        bool   `json:"safety_alert"`
	SafetyAlertMessage string `json:"safety_alert_message,omitempty"`
}

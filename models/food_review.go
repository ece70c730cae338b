package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodReview is a student's weekly rating of a hostel mess. Weeks are
// ISO-8601 identifiers ("2024-W05"); ratings run 1 to 5.
type FoodReview struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User          string `gorm:"column:user;size:255;index" json:"user"`
	Hostel        string `gorm:"column:hostel;size:128;index:idx_hostel_week" json:"hostel"`
	Week          string `gorm:"column:week;size:8;index:idx_hostel_week" json:"week"`
	TasteRating   int    `gorm:"column:taste_rating" json:"taste_rating"`
	HygieneRating int    `gorm:"column:hygiene_rating" json:"hygiene_rating"`
	VarietyRating int    `gorm:"column:variety_rating" json:"variety_rating"`
	Comment       string `gorm:"column:comment;type:text" json:"comment,omitempty"`
}

// HostelFoodSummary aggregates one hostel's reviews for a week.
// AvgOverall is the mean of the three category averages.
type HostelFoodSummary struct {
	Hostel         string   `json:"hostel"`
	ReviewCount    int      `json:"review_count"`
	AvgTaste       float64  `json:"avg_taste"`
	AvgHygiene     float64  `json:"avg_hygiene"`
	AvgVariety     float64  `json:"avg_variety"`
	AvgOverall     float64  `json:"avg_overall"`
	SampleComments []string `json:"sample_comments"`
}

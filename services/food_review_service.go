package services

import (
	"fmt"
	"sort"
	"strings"

	"campus-backend/models"
	"campus-backend/utils"

	"gorm.io/gorm"
)

const maxSampleComments = 3

// FoodReviewService stores weekly hostel food reviews and aggregates
// them into the per-hostel summary the dashboard renders.
type FoodReviewService struct {
	DB *gorm.DB
}

func NewFoodReviewService(db *gorm.DB) *FoodReviewService {
	return &FoodReviewService{DB: db}
}

type SubmitFoodReviewInput struct {
	User          string
	Hostel        string
	Week          string
	TasteRating   int
	HygieneRating int
	VarietyRating int
	Comment       string
}

// Submit validates and persists a review. An empty week defaults to the
// current ISO week.
func (s *FoodReviewService) Submit(in SubmitFoodReviewInput) (models.FoodReview, error) {
	var review models.FoodReview

	hostel := strings.TrimSpace(in.Hostel)
	if hostel == "" {
		return review, fmt.Errorf("%w: hostel", ErrMissingField)
	}
	week := strings.TrimSpace(in.Week)
	if week == "" {
		week = utils.CurrentIsoWeek()
	}
	if !utils.IsValidIsoWeek(week) {
		return review, ErrInvalidWeek
	}
	for _, rating := range []int{in.TasteRating, in.HygieneRating, in.VarietyRating} {
		if rating < 1 || rating > 5 {
			return review, ErrInvalidRating
		}
	}

	review = models.FoodReview{
		User:          in.User,
		Hostel:        hostel,
		Week:          week,
		TasteRating:   in.TasteRating,
		HygieneRating: in.HygieneRating,
		VarietyRating: in.VarietyRating,
		Comment:       strings.TrimSpace(in.Comment),
	}
	if err := s.DB.Create(&review).Error; err != nil {
		return models.FoodReview{}, fmt.Errorf("failed to create food review: %w", err)
	}
	return review, nil
}

// WeeklySummary aggregates one week's reviews per hostel: counts,
// category averages, the overall average (mean of the three category
// averages) and up to three most recent non-empty comments. An empty
// week defaults to the current ISO week. Hostels come back sorted by
// name for a deterministic listing.
func (s *FoodReviewService) WeeklySummary(week string) (string, []models.HostelFoodSummary, error) {
	week = strings.TrimSpace(week)
	if week == "" {
		week = utils.CurrentIsoWeek()
	}
	if !utils.IsValidIsoWeek(week) {
		return "", nil, ErrInvalidWeek
	}

	var reviews []models.FoodReview
	if err := s.DB.
		Where("week = ?", week).
		Order("id DESC").
		Find(&reviews).Error; err != nil {
		return "", nil, fmt.Errorf("failed to load food reviews for %s: %w", week, err)
	}

	type bucket struct {
		count                   int
		taste, hygiene, variety int
		comments                []string
	}
	buckets := map[string]*bucket{}
	for _, r := range reviews {
		b, ok := buckets[r.Hostel]
		if !ok {
			b = &bucket{}
			buckets[r.Hostel] = b
		}
		b.count++
		b.taste += r.TasteRating
		b.hygiene += r.HygieneRating
		b.variety += r.VarietyRating
		if r.Comment != "" && len(b.comments) < maxSampleComments {
			b.comments = append(b.comments, r.Comment)
		}
	}

	hostels := make([]string, 0, len(buckets))
	for name := range buckets {
		hostels = append(hostels, name)
	}
	sort.Strings(hostels)

	summaries := make([]models.HostelFoodSummary, 0, len(hostels))
	for _, name := range hostels {
		b := buckets[name]
		n := float64(b.count)
		avgTaste := round1(float64(b.taste) / n)
		avgHygiene := round1(float64(b.hygiene) / n)
		avgVariety := round1(float64(b.variety) / n)
		comments := b.comments
		if comments == nil {
			comments = []string{}
		}
		summaries = append(summaries, models.HostelFoodSummary{
			Hostel:         name,
			ReviewCount:    b.count,
			AvgTaste:       avgTaste,
			AvgHygiene:     avgHygiene,
			AvgVariety:     avgVariety,
			AvgOverall:     round1((avgTaste + avgHygiene + avgVariety) / 3),
			SampleComments: comments,
		})
	}
	return week, summaries, nil
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

package services

import (
	"fmt"
	"testing"

	"campus-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitReview(t *testing.T, svc *FoodReviewService, hostel string, taste, hygiene, variety int, comment string) {
	t.Helper()
	_, err := svc.Submit(SubmitFoodReviewInput{
		User:          "alice@campus.edu",
		Hostel:        hostel,
		Week:          "2024-W18",
		TasteRating:   taste,
		HygieneRating: hygiene,
		VarietyRating: variety,
		Comment:       comment,
	})
	require.NoError(t, err)
}

func TestSubmitFoodReviewValidation(t *testing.T) {
	svc := NewFoodReviewService(newTestDB(t))

	base := SubmitFoodReviewInput{
		User:          "alice@campus.edu",
		Hostel:        "North Mess",
		Week:          "2024-W18",
		TasteRating:   4,
		HygieneRating: 4,
		VarietyRating: 4,
	}

	in := base
	in.Hostel = " "
	_, err := svc.Submit(in)
	assert.ErrorIs(t, err, ErrMissingField)

	in = base
	in.Week = "week 18"
	_, err = svc.Submit(in)
	assert.ErrorIs(t, err, ErrInvalidWeek)

	in = base
	in.TasteRating = 0
	_, err = svc.Submit(in)
	assert.ErrorIs(t, err, ErrInvalidRating)

	in = base
	in.VarietyRating = 6
	_, err = svc.Submit(in)
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestSubmitFoodReviewDefaultsWeek(t *testing.T) {
	svc := NewFoodReviewService(newTestDB(t))

	review, err := svc.Submit(SubmitFoodReviewInput{
		User:          "alice@campus.edu",
		Hostel:        "North Mess",
		TasteRating:   3,
		HygieneRating: 3,
		VarietyRating: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, utils.CurrentIsoWeek(), review.Week)
}

func TestWeeklySummary(t *testing.T) {
	svc := NewFoodReviewService(newTestDB(t))

	submitReview(t, svc, "North Mess", 4, 3, 5, "good dal")
	submitReview(t, svc, "North Mess", 5, 4, 5, "")
	submitReview(t, svc, "South Mess", 2, 2, 2, "cold food")

	week, hostels, err := svc.WeeklySummary("2024-W18")
	require.NoError(t, err)
	assert.Equal(t, "2024-W18", week)
	require.Len(t, hostels, 2)

	// sorted by hostel name
	north := hostels[0]
	south := hostels[1]
	assert.Equal(t, "North Mess", north.Hostel)
	assert.Equal(t, "South Mess", south.Hostel)

	assert.Equal(t, 2, north.ReviewCount)
	assert.InDelta(t, 4.5, north.AvgTaste, 0.001)
	assert.InDelta(t, 3.5, north.AvgHygiene, 0.001)
	assert.InDelta(t, 5.0, north.AvgVariety, 0.001)
	assert.InDelta(t, 4.3, north.AvgOverall, 0.001)
	assert.Equal(t, []string{"good dal"}, north.SampleComments)

	assert.Equal(t, 1, south.ReviewCount)
	assert.InDelta(t, 2.0, south.AvgOverall, 0.001)
}

func TestWeeklySummarySampleCommentsCapped(t *testing.T) {
	svc := NewFoodReviewService(newTestDB(t))

	for i := 1; i <= 5; i++ {
		submitReview(t, svc, "North Mess", 4, 4, 4, fmt.Sprintf("comment %d", i))
	}

	_, hostels, err := svc.WeeklySummary("2024-W18")
	require.NoError(t, err)
	require.Len(t, hostels, 1)
	// newest first, capped at three
	assert.Equal(t, []string{"comment 5", "comment 4", "comment 3"}, hostels[0].SampleComments)
}

func TestWeeklySummaryEmptyAndInvalidWeek(t *testing.T) {
	svc := NewFoodReviewService(newTestDB(t))

	week, hostels, err := svc.WeeklySummary("")
	require.NoError(t, err)
	assert.Equal(t, utils.CurrentIsoWeek(), week)
	assert.Empty(t, hostels)

	_, _, err = svc.WeeklySummary("18-2024")
	assert.ErrorIs(t, err, ErrInvalidWeek)
}

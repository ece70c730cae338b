package services

import (
	"testing"

	"campus-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentAffairsCRUD(t *testing.T) {
	svc := NewCurrentAffairsService(newTestDB(t))

	item, err := svc.Create(CurrentAffairInput{
		Title:     "Library hours extended",
		Content:   "Open until midnight during exams.",
		EventDate: "2024-05-10",
		Category:  "campus",
	})
	require.NoError(t, err)
	assert.NotZero(t, item.ID)

	updated, err := svc.Update(item.ID, CurrentAffairInput{
		Title:     "Library hours extended",
		Content:   "Open 24/7 during exams.",
		EventDate: "2024-05-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "Open 24/7 during exams.", updated.Content)
	assert.Empty(t, updated.Category)

	require.NoError(t, svc.Delete(item.ID))
	assert.ErrorIs(t, svc.Delete(item.ID), ErrNotFound)

	_, err = svc.Update(item.ID, CurrentAffairInput{
		Title:     "x",
		Content:   "y",
		EventDate: "2024-05-10",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCurrentAffairsValidation(t *testing.T) {
	svc := NewCurrentAffairsService(newTestDB(t))

	_, err := svc.Create(CurrentAffairInput{Content: "c", EventDate: "2024-05-10"})
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = svc.Create(CurrentAffairInput{Title: "t", EventDate: "2024-05-10"})
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = svc.Create(CurrentAffairInput{Title: "t", Content: "c", EventDate: "next week"})
	assert.ErrorIs(t, err, utils.ErrInvalidTimeFormat)
}

func TestCurrentAffairsListOrder(t *testing.T) {
	svc := NewCurrentAffairsService(newTestDB(t))

	for _, date := range []string{"2024-05-01", "2024-05-20", "2024-05-10"} {
		_, err := svc.Create(CurrentAffairInput{Title: "t", Content: "c", EventDate: date})
		require.NoError(t, err)
	}

	list, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2024-05-20", list[0].EventDate)
	assert.Equal(t, "2024-05-10", list[1].EventDate)
	assert.Equal(t, "2024-05-01", list[2].EventDate)
}

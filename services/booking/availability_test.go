package booking

import (
	"testing"

	"wanderbook/models"

	"github.com/stretchr/testify/assert"
)

func testExperience() *models.Experience {
	return &models.Experience{
		ID:    "exp-1",
		Title: "Sunrise Kayaking",
		Price: 1200,
		AvailableDates: []models.AvailableDate{
			{
				Date: "2025-12-01",
				Slots: []models.Slot{
					{Time: "10:00", Available: 5, Booked: 0},
					{Time: "14:00", Available: 5, Booked: 5},
				},
			},
		},
	}
}

func TestRemaining_OpenSlot(t *testing.T) {
	remaining, err := Remaining(testExperience(), "2025-12-01", "10:00")

	assert.NoError(t, err)
	assert.Equal(t, 5, remaining)
}

func TestRemaining_FullSlot(t *testing.T) {
	remaining, err := Remaining(testExperience(), "2025-12-01", "14:00")

	assert.NoError(t, err)
	assert.Equal(t, 0, remaining)
}

func TestRemaining_AcceptsTimestampDates(t *testing.T) {
	remaining, err := Remaining(testExperience(), "2025-12-01T09:30:00Z", "10:00")

	assert.NoError(t, err)
	assert.Equal(t, 5, remaining)
}

func TestRemaining_UnknownDate(t *testing.T) {
	_, err := Remaining(testExperience(), "2025-12-02", "10:00")

	var selErr *SelectionError
	assert.ErrorAs(t, err, &selErr)
	assert.Equal(t, "Selected date not available", selErr.Message)
}

func TestRemaining_UnknownSlot(t *testing.T) {
	_, err := Remaining(testExperience(), "2025-12-01", "11:00")

	var selErr *SelectionError
	assert.ErrorAs(t, err, &selErr)
	assert.Equal(t, "Selected slot not available", selErr.Message)
}

func TestRemaining_UnparseableDate(t *testing.T) {
	_, err := Remaining(testExperience(), "first of december", "10:00")

	var selErr *SelectionError
	assert.ErrorAs(t, err, &selErr)
}

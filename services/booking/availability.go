package booking

import (
	"time"

	"wanderbook/models"
)

const dayFormat = "2006-01-02"

// normalizeDate reduces an incoming date string to its calendar day.
// Accepts a bare day ("2025-12-01") or a full RFC 3339 timestamp.
func normalizeDate(raw string) (string, bool) {
	if t, err := time.Parse(dayFormat, raw); err == nil {
		return t.Format(dayFormat), true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format(dayFormat), true
	}
	return "", false
}

// findDate returns the first available date matching the calendar day.
func findDate(exp *models.Experience, day string) *models.AvailableDate {
	for i := range exp.AvailableDates {
		if exp.AvailableDates[i].Date == day {
			return &exp.AvailableDates[i]
		}
	}
	return nil
}

// findSlot returns the slot whose time label matches exactly.
func findSlot(date *models.AvailableDate, slotTime string) *models.Slot {
	for i := range date.Slots {
		if date.Slots[i].Time == slotTime {
			return &date.Slots[i]
		}
	}
	return nil
}

// Remaining reports the open seats for a date and slot on the experience.
// It is a pure read; admission control happens in the conditional write.
func Remaining(exp *models.Experience, date, slotTime string) (int, error) {
	day, ok := normalizeDate(date)
	if !ok {
		return 0, &SelectionError{Message: "Selected date not available"}
	}

	dateEntry := findDate(exp, day)
	if dateEntry == nil {
		return 0, &SelectionError{Message: "Selected date not available"}
	}

	slotEntry := findSlot(dateEntry, slotTime)
	if slotEntry == nil {
		return 0, &SelectionError{Message: "Selected slot not available"}
	}

	return slotEntry.Remaining(), nil
}

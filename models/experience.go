package models

import "time"

// Experience represents a bookable activity listed in the catalog.
type Experience struct {
	ID             string          `bson:"id" json:"id"`
	Title          string          `bson:"title" json:"title"`
	Description    string          `bson:"description" json:"description"`
	Location       string          `bson:"location" json:"location"`
	Category       string          `bson:"category" json:"category"`
	Price          float64         `bson:"price" json:"price"` // price per person
	Duration       string          `bson:"duration" json:"duration"`
	Image          string          `bson:"image" json:"image"`
	Rating         float64         `bson:"rating" json:"rating"`
	ReviewCount    int             `bson:"reviewCount" json:"reviewCount"`
	Highlights     []string        `bson:"highlights" json:"highlights"`
	Included       []string        `bson:"included" json:"included"`
	NotIncluded    []string        `bson:"notIncluded" json:"notIncluded"`
	AvailableDates []AvailableDate `bson:"availableDates" json:"availableDates,omitempty"`
	CreatedAt      time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// AvailableDate holds the slots offered on one calendar day.
// An experience carries at most one entry per day; lookups take the first match.
type AvailableDate struct {
	Date  string `bson:"date" json:"date"` // "2006-01-02"
	Slots []Slot `bson:"slots" json:"slots"`
}

// Slot is a single bookable time window within a date.
type Slot struct {
	Time      string `bson:"time" json:"time"`           // opaque label, e.g. "10:00"
	Available int    `bson:"available" json:"available"` // total seats offered
	Booked    int    `bson:"booked" json:"booked"`       // seats already taken
}

// Remaining returns the seats still open on the slot.
func (s Slot) Remaining() int {
	return s.Available - s.Booked
}

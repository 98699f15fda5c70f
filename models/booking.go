package models

import "time"

// Booking status values. Only StatusConfirmed is produced by the booking flow;
// the other two exist for cancellation/refund flows layered on later.
const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

// Booking represents a confirmed reservation for an experience slot.
// ExperienceTitle, SelectedDate and SelectedSlot are snapshots taken at
// booking time so later catalog edits never alter historical bookings.
type Booking struct {
	ID               string    `bson:"id" json:"id"`
	ExperienceID     string    `bson:"experienceId" json:"experienceId"`
	ExperienceTitle  string    `bson:"experienceTitle" json:"experienceTitle"`
	CustomerName     string    `bson:"customerName" json:"customerName"`
	CustomerEmail    string    `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone    string    `bson:"customerPhone" json:"customerPhone"`
	SelectedDate     string    `bson:"selectedDate" json:"selectedDate"` // "2006-01-02"
	SelectedSlot     string    `bson:"selectedSlot" json:"selectedSlot"`
	NumberOfPeople   int       `bson:"numberOfPeople" json:"numberOfPeople"`
	PromoCode        string    `bson:"promoCode,omitempty" json:"promoCode,omitempty"`
	Discount         float64   `bson:"discount" json:"discount"`
	TotalPrice       float64   `bson:"totalPrice" json:"totalPrice"`
	Status           string    `bson:"status" json:"status"`
	BookingReference string    `bson:"bookingReference" json:"bookingReference"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookingDetail is the lookup view: the booking plus the experience it was
// made against, so confirmation pages render without a second fetch.
type BookingDetail struct {
	Booking    `bson:",inline"`
	Experience *Experience `bson:"-" json:"experience,omitempty"`
}

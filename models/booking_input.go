package models

// BookingInput is the checkout payload submitted by the client.
type BookingInput struct {
	ExperienceID   string  `json:"experienceId"`
	CustomerName   string  `json:"customerName"`
	CustomerEmail  string  `json:"customerEmail"`
	CustomerPhone  string  `json:"customerPhone"`
	SelectedDate   string  `json:"selectedDate"`
	SelectedSlot   string  `json:"selectedSlot"`
	NumberOfPeople int     `json:"numberOfPeople"`
	PromoCode      string  `json:"promoCode,omitempty"`
	TotalPrice     float64 `json:"totalPrice"`
}

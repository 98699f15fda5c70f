package handlers

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	Experience *ExperienceHandler
	Booking    *BookingHandler
	Promo      *PromoHandler
}

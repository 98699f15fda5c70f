package booking

import "fmt"

// ValidationError signals malformed or missing input the client must correct.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError signals that a referenced entity does not exist.
type NotFoundError struct {
	Resource string // e.g. "Experience", "Booking"
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// SelectionError signals that the chosen date or slot does not exist on the
// experience.
type SelectionError struct {
	Message string
}

func (e *SelectionError) Error() string {
	return e.Message
}

// CapacityError signals insufficient remaining seats. Remaining carries the
// actual count so clients can offer a reduced quantity.
type CapacityError struct {
	Remaining int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("Only %d spots available for this slot", e.Remaining)
}

package booking

import (
	"math/rand"
	"strconv"
	"strings"
)

const (
	referencePrefix = "EXP"
	base36Alphabet  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// newBookingReference builds a human-readable reference of the form
// EXP-<timestamp base36>-<4 random base36 chars>. Uniqueness is enforced by
// the index on the reference field; collisions are retried by the writer.
func newBookingReference(unixMilli int64) string {
	ts := strings.ToUpper(strconv.FormatInt(unixMilli, 36))

	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = base36Alphabet[rand.Intn(len(base36Alphabet))]
	}

	return referencePrefix + "-" + ts + "-" + string(suffix)
}

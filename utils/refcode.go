package utils

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewReferenceCode returns a short uppercase booking reference like
// "CB-9F86C2A1". Randomness comes from a v4 UUID; uniqueness is
// enforced by the bookings table, callers retry on collision.
func NewReferenceCode() string {
	id := uuid.New()
	return "CB-" + strings.ToUpper(hex.EncodeToString(id[:4]))
}

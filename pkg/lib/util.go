package lib

import (
	"github.com/google/uuid"
)

// NewID generates a UUID version 4 string (RFC 4122).
// Job entries carry one so log lines stay unambiguous across pid reuse.
func NewID() string {
	return uuid.NewString()
}

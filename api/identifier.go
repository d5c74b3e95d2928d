package api

import (
	"errors"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// UniversalScope is the reserved scope sentinel meaning "applies everywhere".
// It bypasses identifier normalization.
const UniversalScope = "*"

// ErrEmptyValue is returned when a required field is constructed or set with
// an empty string.
var ErrEmptyValue = errors.New("empty value")

// Slugify normalizes a user-supplied identifier to its canonical form:
// lowercase, hyphen-joined, diacritics stripped. The universal scope sentinel
// passes through unmodified. Idempotent: Slugify(Slugify(s)) == Slugify(s).
func Slugify(identifier string) string {
	if identifier == UniversalScope {
		return identifier
	}
	return slug.Make(identifier)
}

// NewID returns a fresh identifier for entities created without one.
func NewID() string {
	return uuid.NewString()
}

// defaultIdentifier slugifies the given identifier, or mints a UUID when the
// identifier is empty.
func defaultIdentifier(identifier string) string {
	if identifier == "" {
		return NewID()
	}
	return Slugify(identifier)
}

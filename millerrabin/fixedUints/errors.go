package fixedUints

import (
	"github.com/pkg/errors"
)

// ErrorPrefix is the prefix used by all error and panic message strings originating from this package.
const ErrorPrefix = "millerrabin / fixedUints: "

// Errors returned when parsing hex strings. We always return errors wrapping these; use [errors.Is] to compare.
var (
	ErrInvalidHexDigit = errors.New(ErrorPrefix + "invalid hex digit")
	ErrEmptyHexString  = errors.New(ErrorPrefix + "hex string contains no digits")
)

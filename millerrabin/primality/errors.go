package primality

import (
	"github.com/pkg/errors"
)

// ErrorPrefix is the prefix used by all error and panic message strings originating from this package.
const ErrorPrefix = "millerrabin / primality: "

// Errors returned at the arbitrary-precision boundary. Returned errors wrap these; use [errors.Is] to compare.
var (
	ErrNegativeInput    = errors.New(ErrorPrefix + "primality of negative numbers is undefined")
	ErrModulusTooLarge  = errors.New(ErrorPrefix + "number exceeds the largest supported width")
	ErrInvalidWorkerNum = errors.New(ErrorPrefix + "number of workers must be positive")
)

// errCompositeFound is used internally to cancel the remaining rounds of a parallel test.
var errCompositeFound = errors.New(ErrorPrefix + "witness for compositeness found")

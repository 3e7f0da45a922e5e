package testutils

import (
	"fmt"
	"strings"
)

const ErrorPrefix = "millerrabin / internal / testutils: "

// CheckPanic runs fun, captures any panic and reports whether one occurred.
// The panic value itself is discarded.
func CheckPanic(fun func()) (didPanic bool) {
	didPanic, _ = recoverPanic(fun)
	return
}

// CheckPanicWithPrefix runs fun and reports whether it panicked with a string, error or fmt.Stringer whose text starts with prefix.
//
// This is used to verify that contract violations are reported by the intended package rather than e.g. by an index-out-of-range in the runtime.
func CheckPanicWithPrefix(prefix string, fun func()) bool {
	didPanic, value := recoverPanic(fun)
	if !didPanic {
		return false
	}
	var text string
	switch value := value.(type) {
	case string:
		text = value
	case error:
		text = value.Error()
	case fmt.Stringer:
		text = value.String()
	default:
		return false
	}
	return strings.HasPrefix(text, prefix)
}

func recoverPanic(fun func()) (didPanic bool, value any) {
	didPanic = true
	defer func() {
		value = recover()
	}()
	fun()
	didPanic = false
	return
}

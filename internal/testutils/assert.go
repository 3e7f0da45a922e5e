package testutils

import (
	"runtime/debug"
	"testing"
)

// Assert(condition) panics if condition is false; Assert(condition, err) panics with panic(err) if condition is false.
//
// Unlike a C-style assert, the check is always performed.
func Assert(condition bool, err ...any) {
	if len(err) > 1 {
		panic(ErrorPrefix + "Assert can only handle 1 extra error argument")
	}
	if !condition {
		if len(err) == 0 {
			panic(ErrorPrefix + "assertion failed")
		}
		panic(err[0])
	}
}

// FatalUnless calls t.Fatalf(formatstring, args...) after dumping the stack if condition is false.
//
// The stack dump makes it easier to locate failures inside table-driven helpers.
func FatalUnless(t testing.TB, condition bool, formatstring string, args ...any) {
	t.Helper()
	if !condition {
		debug.PrintStack()
		t.Fatalf(formatstring, args...)
	}
}

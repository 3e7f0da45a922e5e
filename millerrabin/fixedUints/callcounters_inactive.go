//go:build !callcounters

package fixedUints

import (
	"testing"

	"github.com/GottfriedHerold/MillerRabin/internal/callcounters"
)

// CallCountersActive is true if call counters are enabled via build tags.
const CallCountersActive = false

// IncrementCallCounter increments the given call counter. It is a no-op if call counters are inactive.
func IncrementCallCounter(id callcounters.Id) {
}

// BenchmarkWithCallCounters stops the benchmark timer and reports all non-zero call counters per operation as custom metrics.
// It is a no-op if call counters are inactive.
func BenchmarkWithCallCounters(b *testing.B) {
}

//go:build callcounters

package fixedUints

import (
	"testing"

	"github.com/GottfriedHerold/MillerRabin/internal/callcounters"
)

// This file is only compiled with -tags=callcounters; otherwise callcounters_inactive.go provides no-op replacements.

// CallCountersActive is true if call counters are enabled via build tags.
const CallCountersActive = true

var _ = callcounters.AddNewCallCounter(CallCounterExp, "Modular exponentiation", "")
var _ = callcounters.AddNewCallCounter(CallCounterMulMontgomery, "Montgomery multiplication", "")

// IncrementCallCounter increments the given call counter. It is a no-op if call counters are inactive.
func IncrementCallCounter(id callcounters.Id) {
	id.Increment()
}

// BenchmarkWithCallCounters stops the benchmark timer and reports all non-zero call counters per operation as custom metrics.
// It is a no-op if call counters are inactive.
func BenchmarkWithCallCounters(b *testing.B) {
	b.StopTimer()
	for _, item := range callcounters.ReportCallCounters(true, false) {
		b.ReportMetric(float64(item.Calls)/float64(b.N), item.Tag+"/op")
	}
}

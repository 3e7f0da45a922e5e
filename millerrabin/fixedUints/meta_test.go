package fixedUints

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/GottfriedHerold/MillerRabin/internal/callcounters"
	"github.com/GottfriedHerold/MillerRabin/internal/testutils"
	"github.com/GottfriedHerold/MillerRabin/internal/utils"
)

// This file contains code shared by the tests and benchmarks of this package:
// cached pseudorandom samples (with a bias towards edge cases) and the Dump variables that benchmarks write to.

const dumpSizeBench = 1 << 8

const benchS = 1 << 8

// Benchmarks write to these, so the compiler cannot drop the benchmarked computation.
var (
	DumpUInts  any // holds a []UInt[W] of length benchS for the current benchmark
	DumpUint64 [dumpSizeBench]uint64
)

type sampleKey struct {
	seed   int64
	bitLen int
	odd    bool // force the lowest bit to 1
}

// cachedBigSamples holds samples in [0, 2^bitLen) as *big.Int, so the same cache serves all widths.
var cachedBigSamples = testutils.NewSampleCache(
	func(key sampleKey) int64 { return key.seed*100003 + int64(key.bitLen)*2 + boolToInt64(key.odd) },
	createBigSample,
	func(x *big.Int) *big.Int { return new(big.Int).Set(x) },
)

func boolToInt64(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// createBigSample draws a sample in [0, 2^bitLen). About half of the samples are edge cases:
// small values, values close to the maximum, powers of two and values with few set words.
func createBigSample(rng *rand.Rand, key sampleKey) *big.Int {
	bound := utils.TwoToThePower(uint(key.bitLen))
	var ret *big.Int
	switch rng.Intn(8) {
	case 0:
		ret = big.NewInt(int64(rng.Intn(4)))
	case 1:
		ret = new(big.Int).Sub(bound, big.NewInt(int64(1+rng.Intn(4))))
	case 2:
		ret = utils.TwoToThePower(uint(rng.Intn(key.bitLen)))
	case 3:
		ret = new(big.Int).Rand(rng, utils.TwoToThePower(uint(1+rng.Intn(key.bitLen))))
	default:
		ret = new(big.Int).Rand(rng, bound)
	}
	if key.odd {
		ret.SetBit(ret, 0, 1)
	}
	return ret
}

func bitCapacity[W WordArray]() int {
	var z UInt[W]
	return z.BitCapacity()
}

// getSamples returns amount many pseudorandom UInt[W], spread over the whole range.
func getSamples[W WordArray](seed int64, amount int) []UInt[W] {
	return toUInts[W](cachedBigSamples.Get(sampleKey{seed: seed, bitLen: bitCapacity[W]()}, amount))
}

// getOddModuli returns amount many pseudorandom odd UInt[W], usable as Montgomery moduli.
func getOddModuli[W WordArray](seed int64, amount int) []UInt[W] {
	return toUInts[W](cachedBigSamples.Get(sampleKey{seed: seed, bitLen: bitCapacity[W](), odd: true}, amount))
}

func toUInts[W WordArray](bigSamples []*big.Int) []UInt[W] {
	ret := make([]UInt[W], len(bigSamples))
	for i, x := range bigSamples {
		ret[i].SetBigInt(x)
	}
	return ret
}

// twoToTheCapacity returns 2^(64*W) as a big.Int
func twoToTheCapacity[W WordArray]() *big.Int {
	return utils.TwoToThePower(uint(bitCapacity[W]()))
}

// prepareBenchmark should be called by every (sub-)benchmark before its loop. It resets call counters and reports them at the end.
func prepareBenchmark(b *testing.B) {
	b.Cleanup(func() { BenchmarkWithCallCounters(b) })
	if CallCountersActive {
		callcounters.ResetAllCallCounters()
	}
	b.ResetTimer()
}

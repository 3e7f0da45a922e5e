package testutils

import (
	"fmt"
	"math/rand"
	"sync"
)

// A SampleCache holds, per key, a lazily extended list of pseudorandom samples that tests run against.
//
// Asking for the first n samples for a key k and later for the first m samples for the same k gives two fresh slices,
// one a prefix of the other. Samples are created from a *rand.Rand seeded from the key, so runs are reproducible.
// Creating samples (e.g. random primes) may be expensive, so they are only created once per key.
//
// A SampleCache is safe for concurrent use.
type SampleCache[Key comparable, Elem any] struct {
	tableMutex sync.RWMutex
	pages      map[Key]*samplePage[Elem] // once created, a page pointer never changes
	seedFun    func(Key) int64
	createFun  func(*rand.Rand, Key) Elem // may be nil, in which case only prepopulated samples are available
	copyFun    func(Elem) Elem
}

type samplePage[Elem any] struct {
	pageMutex sync.Mutex
	rng       *rand.Rand
	elements  []Elem
}

// NewSampleCache creates a ready-to-use SampleCache.
//
// seedFun derives the rng seed from a key. createFun draws a new sample. copyFun (deep-)copies samples handed out to callers;
// nil means a plain assignment is a sufficient copy.
func NewSampleCache[Key comparable, Elem any](seedFun func(Key) int64, createFun func(*rand.Rand, Key) Elem, copyFun func(Elem) Elem) *SampleCache[Key, Elem] {
	if seedFun == nil {
		panic(ErrorPrefix + "NewSampleCache called with nil seed function")
	}
	if copyFun == nil {
		copyFun = func(in Elem) Elem { return in }
	}
	return &SampleCache[Key, Elem]{
		pages:     make(map[Key]*samplePage[Elem]),
		seedFun:   seedFun,
		createFun: createFun,
		copyFun:   copyFun,
	}
}

// Prepopulate fills the cache under key with copies of entries. Further samples are drawn as usual.
//
// This only works for keys that were never used before; we panic otherwise.
func (sc *SampleCache[Key, Elem]) Prepopulate(key Key, entries []Elem) {
	sc.tableMutex.Lock()
	defer sc.tableMutex.Unlock()
	if _, ok := sc.pages[key]; ok {
		panic(fmt.Errorf(ErrorPrefix+"trying to prepopulate cache under key %v, which already exists", key))
	}
	page := sc.newPage(key)
	for _, entry := range entries {
		page.elements = append(page.elements, sc.copyFun(entry))
	}
	sc.pages[key] = page
}

// Get returns copies of the first amount many samples stored under key, creating more as needed.
func (sc *SampleCache[Key, Elem]) Get(key Key, amount int) []Elem {
	ret := make([]Elem, amount)
	if amount == 0 {
		return ret
	}

	sc.tableMutex.RLock()
	page, ok := sc.pages[key]
	sc.tableMutex.RUnlock()
	if !ok {
		sc.tableMutex.Lock()
		page, ok = sc.pages[key]
		if !ok {
			page = sc.newPage(key)
			sc.pages[key] = page
		}
		sc.tableMutex.Unlock()
	}

	page.pageMutex.Lock()
	defer page.pageMutex.Unlock()
	for len(page.elements) < amount {
		if sc.createFun == nil {
			panic(fmt.Errorf(ErrorPrefix+"cache under key %v holds only %v samples and cannot create more", key, len(page.elements)))
		}
		page.elements = append(page.elements, sc.createFun(page.rng, key))
	}
	for i := range ret {
		ret[i] = sc.copyFun(page.elements[i])
	}
	return ret
}

func (sc *SampleCache[Key, Elem]) newPage(key Key) *samplePage[Elem] {
	return &samplePage[Elem]{rng: rand.New(rand.NewSource(sc.seedFun(key)))}
}

// SeedFromInt64 is a seed function for caches keyed by the seed itself.
func SeedFromInt64(key int64) int64 { return key }

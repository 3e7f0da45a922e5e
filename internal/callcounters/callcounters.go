// Package callcounters provides named, hierarchical counters that record how often certain functions are called.
//
// Counters are meant for profiling and are registered once at package initialization via [AddNewCallCounter].
// Incrementing a counter also increments all its ancestors, so a parent reports the total of its subtree.
// Incrementing is safe for concurrent use; registration is not and must only happen during initialization.
//
// Packages using this typically only increment through a build-tag dependent wrapper, so that builds without the callcounters tag pay nothing.
package callcounters

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

const ErrorPrefix = "millerrabin / internal / callcounters: "

// Id identifies a call counter.
type Id string

type callCounter struct {
	id          Id
	displayName string
	parent      *callCounter
	children    []*callCounter
	calls       atomic.Int64
}

var callCounters = make(map[Id]*callCounter)

var roots []*callCounter

// AddNewCallCounter registers a new call counter under the given id.
// displayName is used for reporting; if empty, the id is used.
// If parent is non-empty, it must refer to an already registered counter.
//
// The return value has no meaning; it is there so that counters can be registered via var _ = AddNewCallCounter(...).
func AddNewCallCounter(id Id, displayName string, parent Id) bool {
	if id == "" {
		panic(ErrorPrefix + "empty call counter id")
	}
	if _, exists := callCounters[id]; exists {
		panic(fmt.Errorf(ErrorPrefix+"call counter %v registered twice", id))
	}
	if displayName == "" {
		displayName = string(id)
	}
	cc := &callCounter{id: id, displayName: displayName}
	if parent == "" {
		roots = append(roots, cc)
	} else {
		parentCC, ok := callCounters[parent]
		if !ok {
			panic(fmt.Errorf(ErrorPrefix+"parent %v of call counter %v does not exist", parent, id))
		}
		cc.parent = parentCC
		parentCC.children = append(parentCC.children, cc)
	}
	callCounters[id] = cc
	return true
}

// Exists reports whether a call counter with the given id was registered.
func (id Id) Exists() bool {
	_, ok := callCounters[id]
	return ok
}

// Increment increments the given counter and all its ancestors. Unregistered ids panic.
func (id Id) Increment() {
	cc := id.get()
	for ; cc != nil; cc = cc.parent {
		cc.calls.Add(1)
	}
}

// Count returns the current value of the given counter.
func (id Id) Count() int64 {
	return id.get().calls.Load()
}

func (id Id) get() *callCounter {
	cc, ok := callCounters[id]
	if !ok {
		panic(fmt.Errorf(ErrorPrefix+"call counter %v does not exist", id))
	}
	return cc
}

// ResetAllCallCounters sets all counters to zero.
func ResetAllCallCounters() {
	for _, cc := range callCounters {
		cc.calls.Store(0)
	}
}

// CCReport is a single entry of [ReportCallCounters].
type CCReport struct {
	Tag   string // id or display name of the counter
	Calls int64
	Depth int // 0 for root counters
}

// ReportCallCounters returns the values of all counters in depth-first order, children sorted by id.
// If onlyPositive is set, counters with zero calls (and thus their whole subtree) are skipped.
func ReportCallCounters(onlyPositive bool, useDisplayName bool) (ret []CCReport) {
	var walk func(nodes []*callCounter, depth int)
	walk = func(nodes []*callCounter, depth int) {
		sorted := append([]*callCounter(nil), nodes...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].id < sorted[j].id })
		for _, cc := range sorted {
			calls := cc.calls.Load()
			if onlyPositive && calls == 0 {
				continue
			}
			tag := string(cc.id)
			if useDisplayName {
				tag = cc.displayName
			}
			ret = append(ret, CCReport{Tag: tag, Calls: calls, Depth: depth})
			walk(cc.children, depth+1)
		}
	}
	walk(roots, 0)
	return
}

// FormatReport renders the output of [ReportCallCounters] as an indented multi-line string.
func FormatReport(reports []CCReport) string {
	var sb strings.Builder
	for _, report := range reports {
		fmt.Fprintf(&sb, "%s%s: %d\n", strings.Repeat("  ", report.Depth), report.Tag, report.Calls)
	}
	return sb.String()
}

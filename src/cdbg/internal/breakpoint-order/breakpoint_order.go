// Package breakpointorder defines the display order of breakpoints within a snapshot.
package breakpointorder

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/uber/cdbg-sync/src/cdbg/entity"
)

// ParseTimestamp parses an RFC 3339 timestamp with optional fractional seconds.
// A trailing "Z" is treated as a zero UTC offset. Returns false if s cannot be parsed.
func ParseTimestamp(s string) (time.Time, bool) {
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Compare orders active breakpoints before captured ones. Active breakpoints are ordered by location,
// with unresolvable locations last, and captured breakpoints by capture time, most recent first.
func Compare(a, b *entity.Breakpoint) int {
	switch {
	case !a.HasFinalTime() && b.HasFinalTime():
		return -1
	case a.HasFinalTime() && !b.HasFinalTime():
		return 1
	case !a.HasFinalTime():
		return compareLocations(a.Location, b.Location)
	default:
		return compareCaptureTimes(a.FinalTime, b.FinalTime)
	}
}

// Sort orders breakpoints in place. Breakpoints that compare equal keep their relative order.
func Sort(breakpoints []*entity.Breakpoint) {
	slices.SortStableFunc(breakpoints, Compare)
}

// Sorted returns a sorted copy of breakpoints.
func Sorted(breakpoints []*entity.Breakpoint) []*entity.Breakpoint {
	sorted := slices.Clone(breakpoints)
	Sort(sorted)
	return sorted
}

func compareLocations(a, b *entity.SourceLocation) int {
	aValid, bValid := a.Valid(), b.Valid()
	switch {
	case aValid && !bValid:
		return -1
	case !aValid && bValid:
		return 1
	case !aValid:
		return 0
	}
	if c := strings.Compare(a.Path, b.Path); c != 0 {
		return c
	}
	return cmp.Compare(a.Line, b.Line)
}

// compareCaptureTimes orders the most recent capture first. Unparsable times come after every parsable one.
func compareCaptureTimes(a, b string) int {
	aTime, aOK := ParseTimestamp(a)
	bTime, bOK := ParseTimestamp(b)
	switch {
	case aOK && !bOK:
		return -1
	case !aOK && bOK:
		return 1
	case !aOK:
		return 0
	}
	return bTime.Compare(aTime)
}

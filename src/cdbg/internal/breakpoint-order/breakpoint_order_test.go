package breakpointorder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/cdbg-sync/src/cdbg/entity"
)

func loc(path string, line int) *entity.SourceLocation {
	return &entity.SourceLocation{Path: path, Line: line}
}

func ids(bps []*entity.Breakpoint) []string {
	result := make([]string, len(bps))
	for i, bp := range bps {
		result[i] = bp.ID
	}
	return result
}

func TestParseTimestamp(t *testing.T) {
	withFraction, ok := ParseTimestamp("2016-09-21T16:39:00.000Z")
	require.True(t, ok)
	withoutFraction, ok := ParseTimestamp("2016-09-21T16:39:00Z")
	require.True(t, ok)
	assert.True(t, withFraction.Equal(withoutFraction))
	assert.True(t, withFraction.Equal(time.Date(2016, 9, 21, 16, 39, 0, 0, time.UTC)))

	offset, ok := ParseTimestamp("2016-09-21T18:39:00.250+02:00")
	require.True(t, ok)
	assert.True(t, offset.Equal(time.Date(2016, 9, 21, 16, 39, 0, 250*int(time.Millisecond), time.UTC)))

	_, ok = ParseTimestamp("this is not a date")
	assert.False(t, ok)
	_, ok = ParseTimestamp("")
	assert.False(t, ok)
}

func TestCompare(t *testing.T) {
	t.Run("active before final regardless of other fields", func(t *testing.T) {
		active := &entity.Breakpoint{ID: "active"}
		final := &entity.Breakpoint{
			ID:           "final",
			Location:     loc("a/A.java", 1),
			IsFinalState: true,
			FinalTime:    "2016-09-21T16:39:00Z",
		}
		assert.Equal(t, -1, Compare(active, final))
		assert.Equal(t, 1, Compare(final, active))
	})

	t.Run("final breakpoints by capture time descending", func(t *testing.T) {
		older := &entity.Breakpoint{ID: "older", IsFinalState: true, FinalTime: "2016-09-21T16:39:00Z"}
		newer := &entity.Breakpoint{ID: "newer", IsFinalState: true, FinalTime: "2016-09-21T16:39:01.5Z"}
		assert.Equal(t, -1, Compare(newer, older))
		assert.Equal(t, 1, Compare(older, newer))
	})

	t.Run("unparsable capture time sorts as oldest", func(t *testing.T) {
		bad := &entity.Breakpoint{ID: "bad", IsFinalState: true, FinalTime: "this is not a date"}
		good := &entity.Breakpoint{ID: "good", IsFinalState: true, FinalTime: "1970-01-01T00:00:00Z"}
		assert.Equal(t, 1, Compare(bad, good))

		yearZero := &entity.Breakpoint{ID: "year-zero", IsFinalState: true, FinalTime: "0000-01-01T00:00:00Z"}
		assert.Equal(t, 1, Compare(bad, yearZero))
		assert.Equal(t, -1, Compare(yearZero, bad))

		alsoBad := &entity.Breakpoint{ID: "also-bad", IsFinalState: true, FinalTime: "later"}
		assert.Equal(t, 0, Compare(bad, alsoBad))
		assert.Equal(t, []string{"year-zero", "bad", "also-bad"}, ids(Sorted([]*entity.Breakpoint{bad, yearZero, alsoBad})))
	})

	t.Run("active breakpoints by location", func(t *testing.T) {
		assert.Equal(t, -1, Compare(&entity.Breakpoint{Location: loc("a", 9)}, &entity.Breakpoint{Location: loc("b", 1)}))
		assert.Equal(t, -1, Compare(&entity.Breakpoint{Location: loc("a", 1)}, &entity.Breakpoint{Location: loc("a", 9)}))
		assert.Equal(t, -1, Compare(&entity.Breakpoint{Location: loc("z", 1)}, &entity.Breakpoint{}))
		assert.Equal(t, 0, Compare(&entity.Breakpoint{Location: loc("a", 1), Condition: "x"}, &entity.Breakpoint{Location: loc("a", 1)}))
		assert.Equal(t, 0, Compare(&entity.Breakpoint{}, &entity.Breakpoint{Location: &entity.SourceLocation{}}))
	})
}

func TestSortRoundTrip(t *testing.T) {
	breakpoints := []*entity.Breakpoint{
		{ID: "1", Location: loc("b/Foo.java", 10)},
		{ID: "2"},
		{ID: "3", Location: loc("a/Bar.java", 1), IsFinalState: true, FinalTime: "2016-09-21T16:39:00Z"},
		{ID: "4", Location: loc("a/Bar.java", 20)},
		{ID: "5", Location: loc("a/Bar.java", 1), IsFinalState: true, FinalTime: "2016-09-21T16:40:00.500Z"},
		{ID: "6", Location: loc("a/Bar.java", 1), IsFinalState: true, FinalTime: "this is not a date"},
		{ID: "7", Location: loc("a/Bar.java", 5)},
		// Final state without a capture time is grouped with the active breakpoints.
		{ID: "8", Location: loc("c/Baz.java", 1), IsFinalState: true},
	}

	sorted := Sorted(breakpoints)
	assert.Equal(t, []string{"7", "4", "1", "8", "2", "5", "3", "6"}, ids(sorted))
	assert.Equal(t, "1", breakpoints[0].ID, "Sorted must not modify its input")

	Sort(breakpoints)
	assert.Equal(t, ids(sorted), ids(breakpoints))
}

func TestSortIsStable(t *testing.T) {
	breakpoints := []*entity.Breakpoint{
		{ID: "first", Location: loc("a/A.java", 3), Condition: "x > 1"},
		{ID: "second", Location: loc("a/A.java", 3)},
		{ID: "third", Location: loc("a/A.java", 3), Expressions: []string{"y"}},
	}
	Sort(breakpoints)
	assert.Equal(t, []string{"first", "second", "third"}, ids(breakpoints))
}

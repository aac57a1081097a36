package filter

import (
	"testing"
	"time"

	"bikeshare/domain/entities/trip"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var (
	firstDay = time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	lastDay  = time.Date(2017, time.June, 30, 23, 59, 59, 0, time.UTC).Unix()
)

func toTimes(seconds []int64) []time.Time {
	times := make([]time.Time, len(seconds))
	for i, s := range seconds {
		times[i] = time.Unix(s, 0).UTC()
	}
	return times
}

func TestProperty_Filter(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	startTimes := gen.SliceOf(gen.Int64Range(firstDay, lastDay))
	monthIdx := gen.IntRange(0, len(Months)-1)
	dayIdx := gen.IntRange(0, len(Days)-1)

	properties.Property("all/all returns the unfiltered table", prop.ForAll(
		func(seconds []int64) bool {
			tbl := newTable(toTimes(seconds)...)
			filtered := Filter(tbl, NoFilter())
			if filtered.Len() != tbl.Len() {
				return false
			}
			for i := 0; i < tbl.Len(); i++ {
				if !filtered.Row(i).StartTime.Equal(tbl.Row(i).StartTime) {
					return false
				}
			}
			return true
		},
		startTimes,
	))

	properties.Property("filtering twice with the same selector is a no-op", prop.ForAll(
		func(seconds []int64, m int, d int) bool {
			sel := Selector{Month: Months[m], Day: Days[d]}
			once := Filter(newTable(toTimes(seconds)...), sel)
			twice := Filter(once, sel)
			if once.Len() != twice.Len() {
				return false
			}
			for i := 0; i < once.Len(); i++ {
				if !once.Row(i).StartTime.Equal(twice.Row(i).StartTime) {
					return false
				}
			}
			return true
		},
		startTimes, monthIdx, dayIdx,
	))

	properties.Property("every kept row matches and no matching row is dropped", prop.ForAll(
		func(seconds []int64, m int, d int) bool {
			sel := Selector{Month: Months[m], Day: Days[d]}
			tbl := newTable(toTimes(seconds)...)
			filtered := Filter(tbl, sel)

			expected := 0
			tbl.ForEach(func(_ int, row trip.TripData) {
				if sel.Matches(row) {
					expected++
				}
			})
			if expected != filtered.Len() {
				return false
			}

			allMatch := true
			filtered.ForEach(func(_ int, row trip.TripData) {
				allMatch = allMatch && sel.Matches(row)
			})
			return allMatch
		},
		startTimes, monthIdx, dayIdx,
	))

	properties.TestingRun(t)
}

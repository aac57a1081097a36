// Package filter keeps the trips that match the month and day of week chosen by the user
package filter

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/table"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

// All selector that disables a predicate
const All = "all"

var (
	// Months valid month selectors. The position of each month is its calendar number.
	Months = []string{All, "january", "february", "march", "april", "may", "june"}
	// Days valid day of week selectors
	Days = []string{All, "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

	// weekdays maps a day selector to time.Weekday. time.Weekday starts on Sunday, so the position in Days
	// cannot be used as the weekday number.
	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Selector month and day of week chosen by the user. Both predicates are applied together.
type Selector struct {
	Month string
	Day   string
}

// NewSelector validates both values. Input is case-insensitive.
func NewSelector(month string, day string) (Selector, error) {
	parsedMonth, err := ParseMonth(month)
	if err != nil {
		return Selector{}, err
	}

	parsedDay, err := ParseDay(day)
	if err != nil {
		return Selector{}, err
	}

	return Selector{Month: parsedMonth, Day: parsedDay}, nil
}

// NoFilter selector that keeps every row
func NoFilter() Selector {
	return Selector{Month: All, Day: All}
}

// ParseMonth returns the normalized month selector
func ParseMonth(month string) (string, error) {
	if !utils.ContainsString(month, Months) {
		return "", fmt.Errorf("month %q: %w", month, dataErrors.ErrInvalidSelection)
	}
	return utils.Normalize(month), nil
}

// ParseDay returns the normalized day of week selector
func ParseDay(day string) (string, error) {
	if !utils.ContainsString(day, Days) {
		return "", fmt.Errorf("day %q: %w", day, dataErrors.ErrInvalidSelection)
	}
	return utils.Normalize(day), nil
}

// GetMonth returns the calendar month of the selector. ok is false for "all".
func (s Selector) GetMonth() (time.Month, bool) {
	idx := utils.IndexOfString(s.Month, Months)
	if idx <= 0 {
		return 0, false
	}
	return time.Month(idx), true
}

// GetWeekday returns the day of week of the selector. ok is false for "all".
func (s Selector) GetWeekday() (time.Weekday, bool) {
	weekday, ok := weekdays[utils.Normalize(s.Day)]
	return weekday, ok
}

// Matches returns true if the trip starts in the selected month and day of week
func (s Selector) Matches(tripData trip.TripData) bool {
	return s.predicate()(tripData)
}

// predicate returns Matches with month and weekday already resolved
func (s Selector) predicate() func(trip.TripData) bool {
	month, byMonth := s.GetMonth()
	weekday, byWeekday := s.GetWeekday()
	return func(tripData trip.TripData) bool {
		if byMonth && tripData.StartTime.Month() != month {
			return false
		}
		if byWeekday && tripData.StartTime.Weekday() != weekday {
			return false
		}
		return true
	}
}

// Filter returns a new table with the rows of tbl that match the selector, in the same order.
// tbl is not modified.
func Filter(tbl *table.Table, selector Selector) *table.Table {
	matches := selector.predicate()
	var rows []trip.TripData
	tbl.ForEach(func(_ int, row trip.TripData) {
		if matches(row) {
			rows = append(rows, row)
		}
	})

	log.Debugf("[method: Filter][month: %s][day: %s] %v of %v trips kept", selector.Month, selector.Day, len(rows), tbl.Len())

	// selectors kept on the metadata are the normalized names of the predicates applied
	metadata := tbl.GetMetadata()
	monthName, dayName := metadata.GetMonth(), metadata.GetDay()
	if month, ok := selector.GetMonth(); ok {
		monthName = Months[month]
	}
	if _, ok := selector.GetWeekday(); ok {
		dayName = utils.Normalize(selector.Day)
	}
	return tbl.Derive(metadata.WithSelectors(monthName, dayName), rows)
}

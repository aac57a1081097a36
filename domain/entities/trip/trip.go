package trip

import (
	"time"
)

// Column names of the trip files. The first six are present for every city.
const (
	StartTimeColumn    = "Start Time"
	EndTimeColumn      = "End Time"
	DurationColumn     = "Trip Duration"
	StartStationColumn = "Start Station"
	EndStationColumn   = "End Station"
	UserTypeColumn     = "User Type"
	GenderColumn       = "Gender"
	BirthYearColumn    = "Birth Year"

	// RouteSeparator joins start and end station into a single route value
	RouteSeparator = " -> "
)

// RequiredColumns columns that every trip file must have
var RequiredColumns = []string{
	StartTimeColumn,
	EndTimeColumn,
	DurationColumn,
	StartStationColumn,
	EndStationColumn,
	UserTypeColumn,
}

// TripData struct that contains the trip data
// + StartTime: moment in which the trip begins
// + EndTime: moment in which the trip ends
// + Duration: duration of the trip in seconds
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + UserType: subscriber, customer, etc.
// + Gender: empty when unknown or when the city does not record it
// + BirthYear: only meaningful when HasBirthYear is true
// + Raw: fields of the original csv line
type TripData struct {
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Duration     float64   `json:"duration"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender,omitempty"`
	BirthYear    int       `json:"birth_year,omitempty"`
	HasBirthYear bool      `json:"-"`
	Raw          []string  `json:"-"`
}

// GetRoute returns start and end station joined with RouteSeparator. A -> B and B -> A are different routes.
func (td TripData) GetRoute() string {
	return td.StartStation + RouteSeparator + td.EndStation
}

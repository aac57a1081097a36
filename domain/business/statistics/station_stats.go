package statistics

import (
	"fmt"

	"bikeshare/domain/business/distanceaccumulator"
	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/table"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

// StationStatistics most popular stations and trip
type StationStatistics struct {
	MostCommonStartStation string
	MostCommonEndStation   string
	MostCommonRoute        string
}

// StationStats returns the most common start station, end station and start -> end combination.
// Blank station names are not counted.
func StationStats(tbl *table.Table) (*StationStatistics, error) {
	if err := checkNotEmpty(tbl, "station statistics"); err != nil {
		return nil, err
	}

	startStations := modecounter.NewModeCounter[string]()
	endStations := modecounter.NewModeCounter[string]()
	routes := modecounter.NewModeCounter[string]()
	tbl.ForEach(func(_ int, row trip.TripData) {
		if row.StartStation != "" {
			startStations.UpdateCounter(row.StartStation)
		}
		if row.EndStation != "" {
			endStations.UpdateCounter(row.EndStation)
		}
		if row.StartStation != "" && row.EndStation != "" {
			routes.UpdateCounter(row.GetRoute())
		}
	})

	startStation, _, _ := startStations.GetMode()
	endStation, _, _ := endStations.GetMode()
	route, _, _ := routes.GetMode()
	return &StationStatistics{
		MostCommonStartStation: startStation,
		MostCommonEndStation:   endStation,
		MostCommonRoute:        route,
	}, nil
}

// DistanceStatistics straight-line distance of the trips whose stations have known coordinates
// + Trips: amount of trips measured
// + TotalDistance: in kilometers
// + AverageDistance: in kilometers
type DistanceStatistics struct {
	Trips           int
	TotalDistance   float64
	AverageDistance float64
}

// TripDistanceStats measures trips with the stations catalog. Trips with an unknown station are dismissed.
func TripDistanceStats(tbl *table.Table, stations map[string]station.StationData) (*DistanceStatistics, error) {
	if err := checkNotEmpty(tbl, "distance statistics"); err != nil {
		return nil, err
	}
	if len(stations) == 0 {
		return nil, fmt.Errorf("stations catalog: %w", dataErrors.ErrSchemaMissingField)
	}

	accumulator := distanceaccumulator.NewDistanceAccumulator()
	tbl.ForEach(func(_ int, row trip.TripData) {
		startStation, okStart := stations[row.StartStation]
		endStation, okEnd := stations[row.EndStation]
		if !okStart || !okEnd {
			return
		}
		accumulator.UpdateAccumulator(distanceaccumulator.CalculateDistance(startStation, endStation))
	})

	if accumulator.Counter == 0 {
		return nil, fmt.Errorf("no trip between known stations: %w", dataErrors.ErrEmptyDataset)
	}

	return &DistanceStatistics{
		Trips:           accumulator.Counter,
		TotalDistance:   accumulator.TotalDistance,
		AverageDistance: accumulator.GetAverageDistance(),
	}, nil
}

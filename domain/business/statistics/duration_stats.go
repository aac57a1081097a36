package statistics

import (
	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/table"
	"bikeshare/domain/entities/trip"
)

// DurationStatistics total and average trip duration in seconds
type DurationStatistics struct {
	Trips           int
	TotalDuration   float64
	AverageDuration float64
}

func (ds DurationStatistics) TotalMinutes() float64 {
	return durationaccumulator.ToMinutes(ds.TotalDuration)
}

func (ds DurationStatistics) TotalHours() float64 {
	return durationaccumulator.ToHours(ds.TotalDuration)
}

func (ds DurationStatistics) AverageMinutes() float64 {
	return durationaccumulator.ToMinutes(ds.AverageDuration)
}

func (ds DurationStatistics) AverageHours() float64 {
	return durationaccumulator.ToHours(ds.AverageDuration)
}

// DurationStats returns the sum and the mean of trip durations
func DurationStats(tbl *table.Table) (*DurationStatistics, error) {
	if err := checkNotEmpty(tbl, "duration statistics"); err != nil {
		return nil, err
	}

	accumulator := durationaccumulator.NewDurationAccumulator()
	tbl.ForEach(func(_ int, row trip.TripData) {
		accumulator.UpdateAccumulator(row.Duration)
	})

	return &DurationStatistics{
		Trips:           accumulator.Counter,
		TotalDuration:   accumulator.TotalDuration,
		AverageDuration: accumulator.GetAverageDuration(),
	}, nil
}

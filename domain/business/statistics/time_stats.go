package statistics

import (
	"time"

	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities/table"
	"bikeshare/domain/entities/trip"
)

// TimeStatistics most frequent times of travel
type TimeStatistics struct {
	MostCommonMonth time.Month
	MostCommonDay   time.Weekday
	MostCommonHour  int
}

// TimeStats returns the most common month, day of week and start hour
func TimeStats(tbl *table.Table) (*TimeStatistics, error) {
	if err := checkNotEmpty(tbl, "time statistics"); err != nil {
		return nil, err
	}

	months := modecounter.NewModeCounter[time.Month]()
	days := modecounter.NewModeCounter[time.Weekday]()
	hours := modecounter.NewModeCounter[int]()
	tbl.ForEach(func(_ int, row trip.TripData) {
		months.UpdateCounter(row.StartTime.Month())
		days.UpdateCounter(row.StartTime.Weekday())
		hours.UpdateCounter(row.StartTime.Hour())
	})

	month, _, _ := months.GetMode()
	day, _, _ := days.GetMode()
	hour, _, _ := hours.GetMode()
	return &TimeStatistics{
		MostCommonMonth: month,
		MostCommonDay:   day,
		MostCommonHour:  hour,
	}, nil
}

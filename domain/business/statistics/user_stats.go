package statistics

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities/table"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

// UserStatistics statistics about the users
// + UserTypes: trips per user type, most frequent first
// + Genders: trips per gender, nil when the city does not record gender
// + BirthYears: nil when the city does not record birth year or no trip has one
type UserStatistics struct {
	UserTypes  []modecounter.ValueCount[string]
	Genders    []modecounter.ValueCount[string]
	BirthYears *BirthYearStatistics
}

// BirthYearStatistics earliest, most recent and most common year of birth
type BirthYearStatistics struct {
	Earliest   int
	MostRecent int
	MostCommon int
}

// UserStats counts user types and, when the schema has them, genders and birth years.
// Missing optional columns are skipped, not reported as errors.
func UserStats(tbl *table.Table) (*UserStatistics, error) {
	if err := checkNotEmpty(tbl, "user statistics"); err != nil {
		return nil, err
	}

	userTypes := modecounter.NewModeCounter[string]()
	tbl.ForEach(func(_ int, row trip.TripData) {
		if row.UserType == "" {
			return
		}
		userTypes.UpdateCounter(row.UserType)
	})

	userStatistics := &UserStatistics{
		UserTypes: userTypes.GetCounts(),
	}

	genders, err := GenderStats(tbl)
	switch {
	case err == nil:
		userStatistics.Genders = genders
	case errors.Is(err, dataErrors.ErrSchemaMissingField):
		log.Debugf("[method: UserStats][city: %s] skipping gender: %s", tbl.GetMetadata().GetCity(), err.Error())
	default:
		return nil, err
	}

	birthYears, err := BirthYearStats(tbl)
	switch {
	case err == nil:
		userStatistics.BirthYears = birthYears
	case errors.Is(err, dataErrors.ErrSchemaMissingField), errors.Is(err, dataErrors.ErrEmptyDataset):
		log.Debugf("[method: UserStats][city: %s] skipping birth year: %s", tbl.GetMetadata().GetCity(), err.Error())
	default:
		return nil, err
	}

	return userStatistics, nil
}

// GenderStats counts trips per gender. Trips without gender are not counted.
func GenderStats(tbl *table.Table) ([]modecounter.ValueCount[string], error) {
	if err := checkColumn(tbl, trip.GenderColumn); err != nil {
		return nil, err
	}

	genders := modecounter.NewModeCounter[string]()
	tbl.ForEach(func(_ int, row trip.TripData) {
		if row.Gender != "" {
			genders.UpdateCounter(row.Gender)
		}
	})
	return genders.GetCounts(), nil
}

// BirthYearStats returns the earliest, most recent and most common birth year. Trips without birth year are not considered.
func BirthYearStats(tbl *table.Table) (*BirthYearStatistics, error) {
	if err := checkColumn(tbl, trip.BirthYearColumn); err != nil {
		return nil, err
	}

	birthYears := modecounter.NewModeCounter[int]()
	var birthYearStatistics BirthYearStatistics
	tbl.ForEach(func(_ int, row trip.TripData) {
		if !row.HasBirthYear {
			return
		}
		if birthYears.GetTotal() == 0 || row.BirthYear < birthYearStatistics.Earliest {
			birthYearStatistics.Earliest = row.BirthYear
		}
		if birthYears.GetTotal() == 0 || row.BirthYear > birthYearStatistics.MostRecent {
			birthYearStatistics.MostRecent = row.BirthYear
		}
		birthYears.UpdateCounter(row.BirthYear)
	})

	mostCommon, _, ok := birthYears.GetMode()
	if !ok {
		return nil, fmt.Errorf("birth year: %w", dataErrors.ErrEmptyDataset)
	}
	birthYearStatistics.MostCommon = mostCommon
	return &birthYearStatistics, nil
}

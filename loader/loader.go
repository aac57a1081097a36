// Package loader reads the trip file of a city into a table.Table
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	pkgErrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities"
	"bikeshare/domain/entities/table"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

const (
	fileFormat      = ".csv"
	dateLayout      = "2006-01-02 15:04:05"
	allSelector     = "all"
	byteOrderMarker = "\ufeff"
)

// Cities that can be explored
var Cities = []string{"chicago", "new york city", "washington"}

type Loader struct {
	dataDir string
}

func NewLoader(dataDir string) *Loader {
	return &Loader{
		dataDir: dataDir,
	}
}

// GetFilename returns the file name of a city: lower-cased, spaces replaced with underscores and .csv appended
func GetFilename(city string) string {
	return strings.ReplaceAll(utils.Normalize(city), " ", "_") + fileFormat
}

// GetFilePath returns the path to the .csv file of the city inside the data directory
func (l *Loader) GetFilePath(city string) string {
	return filepath.Join(l.dataDir, GetFilename(city))
}

// Load reads every trip of the city. Rows that cannot be parsed are skipped.
func (l *Loader) Load(city string) (*table.Table, error) {
	if !utils.ContainsString(city, Cities) {
		return nil, fmt.Errorf("city %q: %w", city, dataErrors.ErrInvalidSelection)
	}

	filePath := l.GetFilePath(city)
	dataFile, err := os.Open(filePath)
	if err != nil {
		log.Debugf("[method: Load][city: %s][status: error] error opening %s: %s", city, filePath, err.Error())
		return nil, pkgErrors.Wrapf(dataErrors.ErrDatasetNotFound, "%s", err.Error())
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Errorf("[method: Load] error closing %s: %s", filePath, err.Error())
		}
	}(dataFile)

	header, rows, err := readTrips(dataFile)
	if err != nil {
		return nil, pkgErrors.Wrapf(err, "error reading %s", filePath)
	}

	metadata := entities.NewMetadata(utils.Normalize(city), filePath, allSelector, allSelector)
	log.Infof("[method: Load][city: %s][status: OK] %v trips loaded from %s", city, len(rows), filePath)
	return table.New(metadata, header, rows), nil
}

func readTrips(reader io.Reader) ([]string, []trip.TripData, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.ReuseRecord = false

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("missing header: %w", dataErrors.ErrInvalidDataset)
		}
		return nil, nil, fmt.Errorf("%s: %w", err.Error(), dataErrors.ErrInvalidDataset)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], byteOrderMarker)
	}

	indexes, err := newColumnIndexes(header)
	if err != nil {
		return nil, nil, err
	}

	var rows []trip.TripData
	skipped := 0
	line := 1
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line += 1
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				log.Debugf("[method: readTrips][line: %v] skipping malformed line: %s", line, err.Error())
				skipped += 1
				continue
			}
			return nil, nil, err
		}

		tripData, err := indexes.getTripData(record)
		if err != nil {
			if errors.Is(err, dataErrors.ErrInvalidTripData) {
				log.Debugf("[method: readTrips][line: %v] skipping trip: %s", line, err.Error())
				skipped += 1
				continue
			}
			return nil, nil, err
		}
		rows = append(rows, tripData)
	}

	if skipped > 0 {
		log.Warnf("[method: readTrips] %v invalid trips were skipped", skipped)
	}

	return header, rows, nil
}

// columnIndexes position of each known column in the file, -1 when the column is absent
type columnIndexes struct {
	startTime    int
	endTime      int
	duration     int
	startStation int
	endStation   int
	userType     int
	gender       int
	birthYear    int
	fieldsCount  int
}

func newColumnIndexes(header []string) (*columnIndexes, error) {
	positions := make(map[string]int, len(header))
	for idx, column := range header {
		positions[strings.TrimSpace(column)] = idx
	}

	for _, column := range trip.RequiredColumns {
		if _, ok := positions[column]; !ok {
			return nil, fmt.Errorf("column %q: %w: %w", column, dataErrors.ErrSchemaMissingField, dataErrors.ErrInvalidDataset)
		}
	}

	optional := func(column string) int {
		if idx, ok := positions[column]; ok {
			return idx
		}
		return -1
	}

	return &columnIndexes{
		startTime:    positions[trip.StartTimeColumn],
		endTime:      positions[trip.EndTimeColumn],
		duration:     positions[trip.DurationColumn],
		startStation: positions[trip.StartStationColumn],
		endStation:   positions[trip.EndStationColumn],
		userType:     positions[trip.UserTypeColumn],
		gender:       optional(trip.GenderColumn),
		birthYear:    optional(trip.BirthYearColumn),
		fieldsCount:  len(header),
	}, nil
}

func (ci *columnIndexes) getTripData(record []string) (trip.TripData, error) {
	if len(record) != ci.fieldsCount {
		return trip.TripData{}, fmt.Errorf("expected %v fields, got %v: %w: %w", ci.fieldsCount, len(record), dataErrors.ErrInvalidFieldCount, dataErrors.ErrInvalidTripData)
	}

	startTime, err := time.Parse(dateLayout, strings.TrimSpace(record[ci.startTime]))
	if err != nil {
		return trip.TripData{}, fmt.Errorf("start time %q: %w: %w", record[ci.startTime], dataErrors.ErrInvalidDate, dataErrors.ErrInvalidTripData)
	}

	endTime, err := time.Parse(dateLayout, strings.TrimSpace(record[ci.endTime]))
	if err != nil {
		return trip.TripData{}, fmt.Errorf("end time %q: %w: %w", record[ci.endTime], dataErrors.ErrInvalidDate, dataErrors.ErrInvalidTripData)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(record[ci.duration]), 64)
	if err != nil || duration < 0 {
		return trip.TripData{}, fmt.Errorf("duration %q: %w: %w", record[ci.duration], dataErrors.ErrInvalidDurationType, dataErrors.ErrInvalidTripData)
	}

	tripData := trip.TripData{
		StartTime:    startTime,
		EndTime:      endTime,
		Duration:     duration,
		StartStation: strings.TrimSpace(record[ci.startStation]),
		EndStation:   strings.TrimSpace(record[ci.endStation]),
		UserType:     strings.TrimSpace(record[ci.userType]),
		Raw:          record,
	}

	if ci.gender >= 0 {
		tripData.Gender = strings.TrimSpace(record[ci.gender])
	}

	if ci.birthYear >= 0 {
		// birth years are stored as floats (1992.0), missing ones are empty
		birthYear, err := strconv.ParseFloat(strings.TrimSpace(record[ci.birthYear]), 64)
		if err == nil && !math.IsNaN(birthYear) && !math.IsInf(birthYear, 0) {
			tripData.BirthYear = int(birthYear)
			tripData.HasBirthYear = true
		}
	}

	return tripData, nil
}

package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	pkgErrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/station"
	dataErrors "bikeshare/domain/errors"
)

const (
	stationsFilePostfix = "_stations"
	nameColumn          = "Name"
	latitudeColumn      = "Latitude"
	longitudeColumn     = "Longitude"
)

// GetStationsFilePath returns the path of the optional stations catalog of a city, e.g. chicago_stations.csv
func (l *Loader) GetStationsFilePath(city string) string {
	filename := strings.TrimSuffix(GetFilename(city), fileFormat) + stationsFilePostfix + fileFormat
	return filepath.Join(l.dataDir, filename)
}

// LoadStations reads the stations catalog of the city indexed by station name.
// Stations without valid coordinates are dismissed. ErrDatasetNotFound is returned when the city has no catalog.
func (l *Loader) LoadStations(city string) (map[string]station.StationData, error) {
	filePath := l.GetStationsFilePath(city)
	stationsFile, err := os.Open(filePath)
	if err != nil {
		return nil, pkgErrors.Wrapf(dataErrors.ErrDatasetNotFound, "%s", err.Error())
	}
	defer stationsFile.Close()

	stations, err := readStations(stationsFile)
	if err != nil {
		return nil, pkgErrors.Wrapf(err, "error reading %s", filePath)
	}

	log.Infof("[method: LoadStations][city: %s][status: OK] %v stations loaded from %s", city, len(stations), filePath)
	return stations, nil
}

func readStations(reader io.Reader) (map[string]station.StationData, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("missing header: %w", dataErrors.ErrInvalidDataset)
	}

	positions := make(map[string]int, len(header))
	for idx, column := range header {
		positions[strings.TrimSpace(strings.TrimPrefix(column, byteOrderMarker))] = idx
	}
	for _, column := range []string{nameColumn, latitudeColumn, longitudeColumn} {
		if _, ok := positions[column]; !ok {
			return nil, fmt.Errorf("column %q: %w: %w", column, dataErrors.ErrSchemaMissingField, dataErrors.ErrInvalidDataset)
		}
	}

	stations := make(map[string]station.StationData)
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", err.Error(), dataErrors.ErrInvalidStationData)
		}
		if len(record) != len(header) {
			continue
		}

		latitude, latErr := strconv.ParseFloat(strings.TrimSpace(record[positions[latitudeColumn]]), 64)
		longitude, lonErr := strconv.ParseFloat(strings.TrimSpace(record[positions[longitudeColumn]]), 64)
		if latErr != nil || lonErr != nil {
			continue
		}

		stationData := station.StationData{
			Name:      strings.TrimSpace(record[positions[nameColumn]]),
			Latitude:  latitude,
			Longitude: longitude,
		}
		// sanity check: there are stations that does not have latitude or longitude set, we skip them
		if !stationData.HasValidCoordinates() {
			continue
		}
		stations[stationData.Name] = stationData
	}

	return stations, nil
}

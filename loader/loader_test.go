package loader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0
955915,2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,Female,1992.0
9031,2017-01-04 08:27:49,2017-01-04 08:34:45,416,May St & Taylor St,Wood St & Taylor St,Customer,,
not-a-row,yesterday,2017-01-04 08:34:45,416,May St & Taylor St,Wood St & Taylor St,Customer,,
`

const washingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
482740,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Yuma St & Tenley Circle NW,Connecticut Ave & Yuma St NW,Subscriber
`

func writeFile(t *testing.T, dir string, name string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestGetFilename(t *testing.T) {
	tests := []struct {
		city     string
		expected string
	}{
		{"chicago", "chicago.csv"},
		{"New York City", "new_york_city.csv"},
		{"WASHINGTON", "washington.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.city, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetFilename(tt.city))
		})
	}
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "chicago.csv", chicagoCSV)
	writeFile(t, dir, "washington.csv", washingtonCSV)
	l := NewLoader(dir)

	t.Run("chicago has gender and birth year", func(t *testing.T) {
		tbl, err := l.Load("Chicago")
		require.NoError(t, err)

		require.Equal(t, 3, tbl.Len(), "the row with an invalid date must be skipped")
		assert.True(t, tbl.HasColumn(trip.GenderColumn))
		assert.True(t, tbl.HasColumn(trip.BirthYearColumn))
		assert.Equal(t, "chicago", tbl.GetMetadata().GetCity())

		first := tbl.Row(0)
		assert.Equal(t, time.Date(2017, time.June, 23, 15, 9, 32, 0, time.UTC), first.StartTime)
		assert.Equal(t, 321.0, first.Duration)
		assert.Equal(t, "Wood St & Hubbard St", first.StartStation)
		assert.Equal(t, "Male", first.Gender)
		assert.True(t, first.HasBirthYear)
		assert.Equal(t, 1992, first.BirthYear)
		assert.Equal(t, "1423854", first.Raw[0])

		last := tbl.Row(2)
		assert.Empty(t, last.Gender)
		assert.False(t, last.HasBirthYear)
	})

	t.Run("washington lacks the optional columns", func(t *testing.T) {
		tbl, err := l.Load("washington")
		require.NoError(t, err)

		require.Equal(t, 2, tbl.Len())
		assert.False(t, tbl.HasColumn(trip.GenderColumn))
		assert.False(t, tbl.HasColumn(trip.BirthYearColumn))
		assert.InDelta(t, 489.066, tbl.Row(0).Duration, 1e-9)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := l.Load("new york city")
		require.Error(t, err)
		assert.ErrorIs(t, err, dataErrors.ErrDatasetNotFound)
	})

	t.Run("unknown city", func(t *testing.T) {
		_, err := l.Load("boston")
		require.Error(t, err)
		assert.ErrorIs(t, err, dataErrors.ErrInvalidSelection)
	})
}

func TestLoader_LoadNonFiniteBirthYear(t *testing.T) {
	header := ",Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year\n"
	row := "1,2017-01-04 08:27:49,2017-01-04 08:34:45,416,May St & Taylor St,Wood St & Taylor St,Customer,Male,"
	tests := []struct {
		name      string
		birthYear string
	}{
		{"nan", "NaN"},
		{"positive infinity", "Inf"},
		{"negative infinity", "-Infinity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "chicago.csv", header+row+tt.birthYear+"\n")

			tbl, err := NewLoader(dir).Load("chicago")
			require.NoError(t, err)
			require.Equal(t, 1, tbl.Len(), "the row is kept, only the birth year is missing")
			assert.False(t, tbl.Row(0).HasBirthYear)
			assert.Zero(t, tbl.Row(0).BirthYear)
		})
	}
}

func TestLoader_LoadMissingRequiredColumn(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "chicago.csv", "Start Time,End Time,Trip Duration\n2017-01-01 00:00:00,2017-01-01 00:10:00,600\n")

	_, err := NewLoader(dir).Load("chicago")
	require.Error(t, err)
	assert.ErrorIs(t, err, dataErrors.ErrInvalidDataset)
	assert.ErrorIs(t, err, dataErrors.ErrSchemaMissingField)
}

func TestLoader_LoadStations(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "new_york_city_stations.csv", `Name,Latitude,Longitude
W 52 St & 11 Ave,40.76727216,-73.99392888
Broadway & W 60 St,40.76915505,-73.98191841
Nowhere,0,0
Broken,abc,-73.9
`)
	l := NewLoader(dir)

	assert.Equal(t, filepath.Join(dir, "new_york_city_stations.csv"), l.GetStationsFilePath("New York City"))

	stations, err := l.LoadStations("new york city")
	require.NoError(t, err)
	require.Len(t, stations, 2)
	assert.InDelta(t, 40.76915505, stations["Broadway & W 60 St"].Latitude, 1e-9)

	_, err = l.LoadStations("chicago")
	assert.ErrorIs(t, err, dataErrors.ErrDatasetNotFound)
}

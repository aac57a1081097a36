package browser

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"bikeshare/console"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/table"
	"bikeshare/domain/entities/trip"
	"bikeshare/report"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(n int) *table.Table {
	rows := make([]trip.TripData, n)
	for i := range rows {
		rows[i] = trip.TripData{
			StartTime: time.Date(2017, time.January, 1, i, 0, 0, 0, time.UTC),
			Raw:       []string{fmt.Sprintf("trip-%d", i)},
		}
	}
	return table.New(entities.NewMetadata("washington", "washington.csv", "all", "all"), []string{"id"}, rows)
}

func newBrowser(input string) (*Browser, *bytes.Buffer) {
	out := &bytes.Buffer{}
	c := console.NewConsole(strings.NewReader(input), out)
	return NewBrowser(c, report.NewPrinter(out, clockwork.NewFakeClock()), DefaultPageSize), out
}

func TestPage(t *testing.T) {
	tbl := newTable(7)

	first := Page(tbl, 0, 5)
	require.Len(t, first, 5)
	assert.Equal(t, "trip-0", first[0].Raw[0])
	assert.Equal(t, "trip-4", first[4].Raw[0])

	second := Page(tbl, 5, 5)
	require.Len(t, second, 2)
	assert.Equal(t, "trip-5", second[0].Raw[0])
	assert.Equal(t, "trip-6", second[1].Raw[0])

	assert.Empty(t, Page(tbl, 10, 5))
}

func TestBrowse_PagesUntilNoMoreData(t *testing.T) {
	b, out := newBrowser("yes\nyes\nyes\n")

	require.NoError(t, b.Browse(newTable(7)))

	text := out.String()
	assert.Contains(t, text, "Showing rows 0-4 of 7...")
	assert.Contains(t, text, "Showing rows 5-6 of 7...")
	assert.Contains(t, text, "trip-6")
	assert.Contains(t, text, "No more data.")
	assert.Equal(t, 2, strings.Count(text, "Would you like to see more raw data?"))
}

func TestBrowse_StopsOnNo(t *testing.T) {
	t.Run("no raw data at all", func(t *testing.T) {
		b, out := newBrowser("no\n")

		require.NoError(t, b.Browse(newTable(7)))
		assert.NotContains(t, out.String(), "trip-0")
	})

	t.Run("one page only", func(t *testing.T) {
		b, out := newBrowser("yes\nNO\n")

		require.NoError(t, b.Browse(newTable(7)))
		assert.Contains(t, out.String(), "trip-4")
		assert.NotContains(t, out.String(), "trip-5")
		assert.NotContains(t, out.String(), "No more data.")
	})
}

func TestBrowse_InvalidAnswerReprompts(t *testing.T) {
	b, out := newBrowser("maybe\nyes\nlater\nno\n")

	require.NoError(t, b.Browse(newTable(3)))
	assert.Equal(t, 2, strings.Count(out.String(), "Your input is invalid."))
	assert.Contains(t, out.String(), "Showing rows 0-2 of 3...")
}

func TestBrowse_EmptyTable(t *testing.T) {
	b, out := newBrowser("yes\n")

	require.NoError(t, b.Browse(newTable(0)))
	assert.Contains(t, out.String(), "No more data.")
}

func TestBrowse_ClosedInput(t *testing.T) {
	b, _ := newBrowser("yes\n")

	err := b.Browse(newTable(7))
	assert.ErrorIs(t, err, io.EOF)
}

// Package report writes selections, statistics and raw rows as console text
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/business/statistics"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/trip"
)

const separatorWidth = 40

type Printer struct {
	writer io.Writer
	clock  clockwork.Clock
}

func NewPrinter(writer io.Writer, clock clockwork.Clock) *Printer {
	return &Printer{
		writer: writer,
		clock:  clock,
	}
}

// Title returns value with the first letter of every word in upper case: "new york city" -> "New York City"
func Title(value string) string {
	return cases.Title(language.English).String(value)
}

func (p *Printer) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(p.writer, format, args...); err != nil {
		log.Errorf("[method: printf][status: error] error writing report: %s", err.Error())
	}
}

// Separator writes a line of dashes
func (p *Printer) Separator() {
	p.printf("%s\n", strings.Repeat("-", separatorWidth))
}

// PrintSelection writes the file that was loaded and the selectors applied to it
func (p *Printer) PrintSelection(metadata entities.Metadata, trips int) {
	p.printf("File loaded:\t%s\n", metadata.GetSource())
	p.printf("Selected city:\t%s\n", Title(metadata.GetCity()))
	p.printf("Selected month:\t%s\n", Title(metadata.GetMonth()))
	p.printf("Selected day:\t%s\n", Title(metadata.GetDay()))
	p.printf("Trips:\t\t%v\n", trips)
	p.Separator()
}

// Section writes the title, runs calculate and writes how long it took
func (p *Printer) Section(title string, calculate func() error) error {
	p.printf("\nCalculating %s...\n\n", title)
	start := p.clock.Now()

	err := calculate()
	if err != nil {
		p.PrintError(err)
	}

	p.printf("\nThis took %v seconds.\n", p.clock.Since(start).Seconds())
	p.Separator()
	return err
}

// PrintError writes an error message for the user
func (p *Printer) PrintError(err error) {
	p.printf("Error: %s\n", err.Error())
}

func (p *Printer) PrintTimeStats(timeStatistics *statistics.TimeStatistics) {
	p.printf("Most common month is:\t\t%s\n", timeStatistics.MostCommonMonth)
	p.printf("Most common day of week is:\t%s\n", timeStatistics.MostCommonDay)
	p.printf("Most common start hour is:\t%2d:00\n", timeStatistics.MostCommonHour)
}

func (p *Printer) PrintStationStats(stationStatistics *statistics.StationStatistics) {
	p.printf("Most common start station is:\t\t%s\n", stationStatistics.MostCommonStartStation)
	p.printf("Most common end station is:\t\t%s\n", stationStatistics.MostCommonEndStation)
	p.printf("Most common start and end station is:\t%s\n", stationStatistics.MostCommonRoute)
}

func (p *Printer) PrintDistanceStats(distanceStatistics *statistics.DistanceStatistics) {
	p.printf("Trips between known stations:\t\t%v\n", distanceStatistics.Trips)
	p.printf("Average straight-line distance is:\t%.2f km\n", distanceStatistics.AverageDistance)
}

func (p *Printer) PrintDurationStats(durationStatistics *statistics.DurationStatistics) {
	p.printf("Total travel time is:\t%.1f minutes (%.2f hours)\n", durationStatistics.TotalMinutes(), durationStatistics.TotalHours())
	p.printf("Average travel time is:\t%.1f minutes (%.2f hours)\n", durationStatistics.AverageMinutes(), durationStatistics.AverageHours())
}

func (p *Printer) PrintUserStats(userStatistics *statistics.UserStatistics) {
	p.printCounts("Counts of user types are:", userStatistics.UserTypes)

	if userStatistics.Genders != nil {
		p.printCounts("Counts of gender types are:", userStatistics.Genders)
	}

	if userStatistics.BirthYears != nil {
		p.printf("\nEarliest year of birth:\t\t%d\n", userStatistics.BirthYears.Earliest)
		p.printf("Most recent year of birth:\t%d\n", userStatistics.BirthYears.MostRecent)
		p.printf("Most common year of birth:\t%d\n", userStatistics.BirthYears.MostCommon)
	}
}

func (p *Printer) printCounts(title string, counts []modecounter.ValueCount[string]) {
	p.printf("\n%s\n%s\n", title, strings.Repeat("-", len(title)))
	tw := tabwriter.NewWriter(p.writer, 0, 8, 2, ' ', 0)
	for _, valueCount := range counts {
		fmt.Fprintf(tw, "%s\t%d\n", valueCount.Value, valueCount.Count)
	}
	if err := tw.Flush(); err != nil {
		log.Errorf("[method: printCounts][status: error] error writing report: %s", err.Error())
	}
}

// PrintRows writes the raw fields of rows as a table. firstRow is the position of rows[0] in the whole table.
func (p *Printer) PrintRows(header []string, rows []trip.TripData, firstRow int) {
	tw := tabwriter.NewWriter(p.writer, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "#\t%s\n", strings.Join(header, "\t"))
	for idx, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\n", firstRow+idx, strings.Join(row.Raw, "\t"))
	}
	if err := tw.Flush(); err != nil {
		log.Errorf("[method: PrintRows][status: error] error writing report: %s", err.Error())
	}
}

// Package session drives the exploration loop: prompt filters, load, filter, show statistics,
// browse raw rows and ask whether to start again.
package session

import (
	"errors"
	"io"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bikeshare/browser"
	"bikeshare/console"
	"bikeshare/domain/business/statistics"
	"bikeshare/domain/entities/table"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/filter"
	"bikeshare/loader"
	"bikeshare/report"
	"bikeshare/utils"
)

const (
	greeting        = "Hello! Let's explore some US bikeshare data!\n"
	cityQuestion    = "\nWhich city would you like to explore? Enter [Chicago, New York City or Washington]\n"
	monthQuestion   = "\nWhich month would you like to explore? Enter [All, January, February, March, April, May or June]\n"
	dayQuestion     = "\nWhich day would you like to explore? Enter [All, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday or Sunday]\n"
	restartQuestion = "\nWould you like to restart? Enter yes or no.\n"
)

// Filters what the user wants to explore
type Filters struct {
	City     string
	Selector filter.Selector
}

type Session struct {
	console       *console.Console
	printer       *report.Printer
	loader        *loader.Loader
	browser       *browser.Browser
	tripDistances bool
}

func NewSession(c *console.Console, printer *report.Printer, tripsLoader *loader.Loader, rowBrowser *browser.Browser, tripDistances bool) *Session {
	return &Session{
		console:       c,
		printer:       printer,
		loader:        tripsLoader,
		browser:       rowBrowser,
		tripDistances: tripDistances,
	}
}

// Run explores data until the user does not want to restart. Closing the input ends the session without error.
func (s *Session) Run() error {
	for {
		restart, err := s.RunIteration()
		if errors.Is(err, io.EOF) {
			log.Debug("[method: Run] input closed, finishing session")
			return nil
		}
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
}

// RunIteration runs prompt -> load -> filter -> statistics -> browse and returns whether the user wants to restart.
// Nothing is kept between iterations.
func (s *Session) RunIteration() (bool, error) {
	logger := log.WithField("session", uuid.NewString())

	filters, err := s.PromptFilters()
	if err != nil {
		return false, err
	}
	logger.Infof("[method: RunIteration] exploring %s, month: %s, day: %s", filters.City, filters.Selector.Month, filters.Selector.Day)

	tbl, err := s.loader.Load(filters.City)
	if err != nil {
		logger.Errorf("[method: RunIteration][status: error] error loading %s: %s", filters.City, err.Error())
		s.printer.PrintError(err)
	} else {
		filtered := filter.Filter(tbl, filters.Selector)
		s.printer.PrintSelection(filtered.GetMetadata(), filtered.Len())
		s.showStatistics(logger, filtered)

		if err := s.browser.Browse(filtered); err != nil {
			return false, err
		}
	}

	answer, err := s.console.Ask(restartQuestion)
	if err != nil {
		return false, err
	}
	return utils.Normalize(answer) == console.Yes, nil
}

// PromptFilters asks city, month and day until each answer is valid
func (s *Session) PromptFilters() (Filters, error) {
	if err := s.console.Send(greeting); err != nil {
		return Filters{}, err
	}

	city, err := s.console.AskUntilValid(cityQuestion, "", loader.Cities)
	if err != nil {
		return Filters{}, err
	}

	month, err := s.console.AskUntilValid(monthQuestion, "", filter.Months)
	if err != nil {
		return Filters{}, err
	}

	day, err := s.console.AskUntilValid(dayQuestion, "", filter.Days)
	if err != nil {
		return Filters{}, err
	}

	selector, err := filter.NewSelector(month, day)
	if err != nil {
		return Filters{}, err
	}

	s.printer.Separator()
	return Filters{City: city, Selector: selector}, nil
}

// showStatistics prints the four statistics sections. A failing section does not stop the others.
func (s *Session) showStatistics(logger *log.Entry, tbl *table.Table) {
	sections := []struct {
		title     string
		calculate func() error
	}{
		{"The Most Frequent Times of Travel", func() error {
			timeStatistics, err := statistics.TimeStats(tbl)
			if err != nil {
				return err
			}
			s.printer.PrintTimeStats(timeStatistics)
			return nil
		}},
		{"The Most Popular Stations and Trip", func() error {
			stationStatistics, err := statistics.StationStats(tbl)
			if err != nil {
				return err
			}
			s.printer.PrintStationStats(stationStatistics)
			s.showTripDistances(logger, tbl)
			return nil
		}},
		{"Trip Duration", func() error {
			durationStatistics, err := statistics.DurationStats(tbl)
			if err != nil {
				return err
			}
			s.printer.PrintDurationStats(durationStatistics)
			return nil
		}},
		{"User Stats", func() error {
			userStatistics, err := statistics.UserStats(tbl)
			if err != nil {
				return err
			}
			s.printer.PrintUserStats(userStatistics)
			return nil
		}},
	}

	for _, section := range sections {
		if err := s.printer.Section(section.title, section.calculate); err != nil {
			logger.Warnf("[method: showStatistics][section: %s] %s", section.title, err.Error())
		}
	}
}

// showTripDistances prints the distance statistics when the city has a stations catalog
func (s *Session) showTripDistances(logger *log.Entry, tbl *table.Table) {
	if !s.tripDistances {
		return
	}

	city := tbl.GetMetadata().GetCity()
	stations, err := s.loader.LoadStations(city)
	if err != nil {
		if errors.Is(err, dataErrors.ErrDatasetNotFound) {
			logger.Debugf("[method: showTripDistances][city: %s] no stations catalog", city)
		} else {
			logger.Warnf("[method: showTripDistances][city: %s][status: error] %s", city, err.Error())
		}
		return
	}

	distanceStatistics, err := statistics.TripDistanceStats(tbl, stations)
	if err != nil {
		logger.Debugf("[method: showTripDistances][city: %s] skipping distances: %s", city, err.Error())
		return
	}
	s.printer.PrintDistanceStats(distanceStatistics)
}

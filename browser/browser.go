// Package browser shows the raw rows of a table page by page while the user asks for more
package browser

import (
	log "github.com/sirupsen/logrus"

	"bikeshare/console"
	"bikeshare/domain/entities/table"
	"bikeshare/domain/entities/trip"
	"bikeshare/report"
)

const (
	DefaultPageSize = 5

	firstQuestion  = "\nWould you like to see raw data? Type 'yes' or 'no'\n"
	moreQuestion   = "\nWould you like to see more raw data? Type 'yes' or 'no'\n"
	invalidAnswer  = "\nYour input is invalid. Please enter only 'yes' or 'no'\n"
	noMoreDataMsg  = "\nNo more data.\n"
	showingRowsMsg = "\nShowing rows %d-%d of %d...\n"
)

type Browser struct {
	console  *console.Console
	printer  *report.Printer
	pageSize int
}

func NewBrowser(c *console.Console, printer *report.Printer, pageSize int) *Browser {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Browser{
		console:  c,
		printer:  printer,
		pageSize: pageSize,
	}
}

// Page returns the rows in [cursor, cursor+pageSize). The last page can be shorter and a cursor past the end returns nothing.
func Page(tbl *table.Table, cursor int, pageSize int) []trip.TripData {
	return tbl.Slice(cursor, cursor+pageSize)
}

// Browse asks the user whether to show raw rows and keeps showing pages while the answer is yes.
// It returns when the user says no or there are no rows left.
func (b *Browser) Browse(tbl *table.Table) error {
	wantsMore, err := b.console.AskYesNo(firstQuestion, invalidAnswer)
	if err != nil {
		return err
	}

	cursor := 0
	for wantsMore {
		if cursor >= tbl.Len() {
			return b.console.Send(noMoreDataMsg)
		}

		rows := Page(tbl, cursor, b.pageSize)
		b.printer.PrintRows(tbl.Header(), rows, cursor)
		if err := b.console.Sendf(showingRowsMsg, cursor, cursor+len(rows)-1, tbl.Len()); err != nil {
			return err
		}
		log.Debugf("[method: Browse][cursor: %v] %v rows shown", cursor, len(rows))

		cursor += b.pageSize
		wantsMore, err = b.console.AskYesNo(moreQuestion, invalidAnswer)
		if err != nil {
			return err
		}
	}

	return nil
}

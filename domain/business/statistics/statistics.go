// Package statistics computes the descriptive statistics shown for a filtered trip table.
// Every function reads the table and never modifies it. A table without rows is reported with
// ErrEmptyDataset instead of a meaningless value.
package statistics

import (
	"fmt"

	"bikeshare/domain/entities/table"
	dataErrors "bikeshare/domain/errors"
)

func checkNotEmpty(tbl *table.Table, statistic string) error {
	if tbl == nil || tbl.Len() == 0 {
		return fmt.Errorf("%s: %w", statistic, dataErrors.ErrEmptyDataset)
	}
	return nil
}

func checkColumn(tbl *table.Table, column string) error {
	if !tbl.HasColumn(column) {
		return fmt.Errorf("column %q: %w", column, dataErrors.ErrSchemaMissingField)
	}
	return nil
}

// Package errors holds the sentinel errors shared by the loader, the filter, the aggregators and
// the session. Callers wrap them with context and check them with errors.Is.
package errors

import "github.com/pkg/errors"

var (
	// ErrInvalidSelection the user typed a city, month, day or answer that is not allowed
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrDatasetNotFound the city file is missing or cannot be read
	ErrDatasetNotFound = errors.New("dataset not found")
	// ErrEmptyDataset an aggregator received zero rows
	ErrEmptyDataset = errors.New("empty dataset")
	// ErrSchemaMissingField the column is not part of the city schema
	ErrSchemaMissingField = errors.New("schema missing field")

	ErrInvalidDataset      = errors.New("invalid dataset")
	ErrInvalidTripData     = errors.New("invalid trip data")
	ErrInvalidStationData  = errors.New("invalid station data")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidDurationType = errors.New("invalid duration type")
	ErrInvalidFieldCount   = errors.New("invalid field count")
)

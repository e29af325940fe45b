package storage

import "errors"

// Common client storage errors
var (
	// ErrDataSourceNotFound indicates that no data source override is stored
	ErrDataSourceNotFound = errors.New("data source override not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)

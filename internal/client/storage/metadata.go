package storage

import "context"

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastFolder saves the id of the last opened folder ("" = root)
	SaveLastFolder(ctx context.Context, folderID string) error

	// GetLastFolder retrieves the id of the last opened folder
	// Returns "" if nothing was opened yet
	GetLastFolder(ctx context.Context) (string, error)
}

package storage

import (
	"context"

	"github.com/iudanet/resorg/internal/models"
)

//go:generate moq -out settings_mock.go . SettingsStorage

// SettingsStorage defines interface for storing the data source override on client.
// This is the lowest storage layer - it stores the record as-is, validation
// happens in settings.Service.
type SettingsStorage interface {
	// SaveDataSource stores or replaces the data source override
	SaveDataSource(ctx context.Context, ds *models.DataSource) error

	// GetDataSource retrieves the stored override
	// Returns ErrDataSourceNotFound if nothing is stored
	GetDataSource(ctx context.Context) (*models.DataSource, error)

	// DeleteDataSource removes the stored override
	// Returns ErrDataSourceNotFound if nothing is stored
	DeleteDataSource(ctx context.Context) error
}

// Package settings управляет переопределением хранилища бэкенда.
// Переопределение хранится локально и передается серверу заголовками.
package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/iudanet/resorg/internal/client/api"
	"github.com/iudanet/resorg/internal/client/storage"
	"github.com/iudanet/resorg/internal/models"
	"github.com/iudanet/resorg/internal/validation"
)

// Service проверяет и сохраняет переопределение хранилища
type Service struct {
	storage storage.SettingsStorage
	logger  *slog.Logger
}

// Compile-time check that Service implements api.HeaderSource
var _ api.HeaderSource = (*Service)(nil)

// NewService создает сервис настроек
func NewService(storage storage.SettingsStorage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Load возвращает сохраненное переопределение.
// Возвращает storage.ErrDataSourceNotFound, если ничего не сохранено.
func (s *Service) Load(ctx context.Context) (*models.DataSource, error) {
	ds, err := s.storage.GetDataSource(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrDataSourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load data source: %w", err)
	}
	return ds, nil
}

// Save проверяет и сохраняет переопределение.
// Невалидные данные не доходят до хранилища.
func (s *Service) Save(ctx context.Context, ds *models.DataSource) error {
	if ds == nil {
		return fmt.Errorf("data source is nil")
	}

	clean := models.DataSource{
		ConnectionString: strings.TrimSpace(ds.ConnectionString),
		DatabaseName:     strings.TrimSpace(ds.DatabaseName),
		Enabled:          ds.Enabled,
	}

	if err := validation.ValidateConnectionString(clean.ConnectionString); err != nil {
		return fmt.Errorf("invalid connection string: %w", err)
	}
	if err := validation.ValidateDatabaseName(clean.DatabaseName); err != nil {
		return fmt.Errorf("invalid database name: %w", err)
	}

	if err := s.storage.SaveDataSource(ctx, &clean); err != nil {
		return fmt.Errorf("failed to save data source: %w", err)
	}

	s.logger.Info("data source override saved",
		"database", clean.DatabaseName,
		"enabled", clean.Enabled)

	return nil
}

// SetEnabled включает или выключает сохраненное переопределение
func (s *Service) SetEnabled(ctx context.Context, enabled bool) error {
	ds, err := s.Load(ctx)
	if err != nil {
		return err
	}

	if ds.Enabled == enabled {
		return nil
	}

	ds.Enabled = enabled
	if err := s.storage.SaveDataSource(ctx, ds); err != nil {
		return fmt.Errorf("failed to save data source: %w", err)
	}

	s.logger.Info("data source override toggled", "enabled", enabled)
	return nil
}

// Clear удаляет переопределение; отсутствие записи не считается ошибкой
func (s *Service) Clear(ctx context.Context) error {
	err := s.storage.DeleteDataSource(ctx)
	if err != nil && !errors.Is(err, storage.ErrDataSourceNotFound) {
		return fmt.Errorf("failed to clear data source: %w", err)
	}
	return nil
}

// Headers возвращает заголовки переопределения для API клиента.
// Без сохраненной записи или при выключенном флаге возвращает nil,
// и сервер использует общее хранилище по умолчанию.
func (s *Service) Headers(ctx context.Context) (map[string]string, error) {
	ds, err := s.storage.GetDataSource(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrDataSourceNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if !ds.Enabled {
		return nil, nil
	}

	return map[string]string{
		api.HeaderConnectionString: ds.ConnectionString,
		api.HeaderDatabaseName:     ds.DatabaseName,
	}, nil
}

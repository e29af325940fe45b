package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/resorg/internal/client/storage"
	"github.com/iudanet/resorg/internal/models"
)

var dataSourceKey = []byte("data_source")

// SaveDataSource stores the data source override
func (s *Storage) SaveDataSource(ctx context.Context, ds *models.DataSource) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		// Сериализуем данные в JSON
		data, err := json.Marshal(ds)
		if err != nil {
			return fmt.Errorf("failed to marshal data source: %w", err)
		}

		if err := bucket.Put(dataSourceKey, data); err != nil {
			return fmt.Errorf("failed to save data source: %w", err)
		}

		return nil
	})
}

// GetDataSource retrieves the stored data source override
func (s *Storage) GetDataSource(ctx context.Context) (*models.DataSource, error) {
	var ds *models.DataSource

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		data := bucket.Get(dataSourceKey)
		if data == nil {
			return storage.ErrDataSourceNotFound
		}

		// Десериализуем
		ds = &models.DataSource{}
		if err := json.Unmarshal(data, ds); err != nil {
			return fmt.Errorf("failed to unmarshal data source: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return ds, nil
}

// DeleteDataSource removes the stored data source override
func (s *Storage) DeleteDataSource(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		// Проверяем существование данных
		if bucket.Get(dataSourceKey) == nil {
			return storage.ErrDataSourceNotFound
		}

		if err := bucket.Delete(dataSourceKey); err != nil {
			return fmt.Errorf("failed to delete data source: %w", err)
		}

		return nil
	})
}

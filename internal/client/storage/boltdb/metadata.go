package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

const (
	keyLastFolder = "last_folder"
)

// SaveLastFolder saves the id of the last opened folder ("" = root)
func (s *Storage) SaveLastFolder(ctx context.Context, folderID string) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Put([]byte(keyLastFolder), []byte(folderID)); err != nil {
			return fmt.Errorf("failed to save last folder: %w", err)
		}

		return nil
	})
}

// GetLastFolder retrieves the id of the last opened folder
// Returns "" if nothing was opened yet
func (s *Storage) GetLastFolder(ctx context.Context) (string, error) {
	var folderID string

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Отсутствие ключа означает корень
		folderID = string(bucket.Get([]byte(keyLastFolder)))
		return nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to get last folder: %w", err)
	}

	return folderID, nil
}

package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func TestSaveAndGetLastFolder(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Изначально папка не сохранена, ожидаем корень
	folderID, err := store.GetLastFolder(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", folderID)

	require.NoError(t, store.SaveLastFolder(ctx, "folder-1"))

	folderID, err = store.GetLastFolder(ctx)
	require.NoError(t, err)
	assert.Equal(t, "folder-1", folderID)

	// Возврат в корень
	require.NoError(t, store.SaveLastFolder(ctx, ""))

	folderID, err = store.GetLastFolder(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", folderID)
}

func TestGetLastFolder_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Удаляем bucket metadata напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	})
	require.NoError(t, err)

	_, err = store.GetLastFolder(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "metadata bucket not found")
}

func TestSaveLastFolder_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	})
	require.NoError(t, err)

	err = store.SaveLastFolder(ctx, "f1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "metadata bucket not found")
}

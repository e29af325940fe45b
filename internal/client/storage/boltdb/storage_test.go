package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/resorg/internal/client/storage"
)

// createTestStorage создает временное BoltDB хранилище и инициализирует buckets
func createTestStorage(t *testing.T) *Storage {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestNew_Success(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "testdb.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	// Проверяем что файл БД действительно создан
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// Проверяем, что бакеты существуют
	err = store.db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketSettings, bucketMetadata} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	// Путь с нулевым символом недопустим
	ctx := context.Background()
	invalidPath := string([]byte{0})
	store, err := New(ctx, invalidPath)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	// Закрываем БД
	err = store.Close()
	assert.NoError(t, err)

	// После закрытия поле db должно стать nil
	assert.Nil(t, store.db)

	// Второй вызов Close не должен падать и должен просто ничего не делать
	err = store.Close()
	assert.NoError(t, err)

	// Операции после закрытия возвращают ErrStorageClosed
	_, err = store.GetDataSource(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	err = store.SaveLastFolder(ctx, "f1")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestInitBuckets_CreatesBuckets(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	// Открываем БД вручную без создания бакетов
	db, err := bbolt.Open(dbPath, 0600, nil)
	require.NoError(t, err)
	defer db.Close()

	store := &Storage{db: db}

	// Теперь инициализируем бакеты
	err = store.initBuckets()
	assert.NoError(t, err)

	// Повторная инициализация не падает
	err = store.initBuckets()
	assert.NoError(t, err)

	err = db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketSettings, bucketMetadata} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	assert.NoError(t, err)
}

func TestStorage_Reopen_KeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveLastFolder(ctx, "f42"))
	require.NoError(t, store.Close())

	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	got, err := store.GetLastFolder(ctx)
	require.NoError(t, err)
	assert.Equal(t, "f42", got)
}

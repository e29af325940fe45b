package api

import (
	"context"

	"github.com/iudanet/resorg/internal/models"
)

// ClientAPI описывает все запросы клиента к REST бэкенду
type ClientAPI interface {
	// GetFoldersByParent возвращает папки с указанным родителем ("" = корень)
	GetFoldersByParent(ctx context.Context, parentID string) ([]*models.Folder, error)
	// GetFolder возвращает папку по id или ошибку, оборачивающую ErrNotFound
	GetFolder(ctx context.Context, id string) (*models.Folder, error)
	// CreateFolder создает папку
	CreateFolder(ctx context.Context, folder models.NewFolder) (*models.Folder, error)

	GetRootResources(ctx context.Context) ([]*models.Resource, error)
	GetFolderResources(ctx context.Context, folderID string) ([]*models.Resource, error)
	GetRecentResources(ctx context.Context) ([]*models.Resource, error)
	GetFavoriteResources(ctx context.Context) ([]*models.Resource, error)
	GetResource(ctx context.Context, id string) (*models.Resource, error)

	CreateResource(ctx context.Context, res models.NewResource) (*models.Resource, error)
	UpdateResource(ctx context.Context, id string, patch models.ResourcePatch) error
	SetFavorite(ctx context.Context, id string, favorite bool) error
	MoveResource(ctx context.Context, id string, folderID *string) error
	DeleteResource(ctx context.Context, id string) error
}

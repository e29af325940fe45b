package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/iudanet/resorg/internal/models"
	"github.com/iudanet/resorg/pkg/api"
)

// GetRootResources возвращает ресурсы корня
func (c *Client) GetRootResources(ctx context.Context) ([]*models.Resource, error) {
	return c.getResources(ctx, "resource/root", "get root resources")
}

// GetFolderResources возвращает ресурсы папки
func (c *Client) GetFolderResources(ctx context.Context, folderID string) ([]*models.Resource, error) {
	return c.getResources(ctx, "resource/folder/"+url.PathEscape(folderID), "get folder resources")
}

// GetRecentResources возвращает недавно созданные ресурсы
func (c *Client) GetRecentResources(ctx context.Context) ([]*models.Resource, error) {
	return c.getResources(ctx, "resource/recents", "get recent resources")
}

// GetFavoriteResources возвращает избранные ресурсы
func (c *Client) GetFavoriteResources(ctx context.Context) ([]*models.Resource, error) {
	return c.getResources(ctx, "resource/favorites", "get favorite resources")
}

func (c *Client) getResources(ctx context.Context, path, op string) ([]*models.Resource, error) {
	var resp []api.Resource
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("%s request failed: %w", op, err)
	}
	return resourcesFromDTO(resp), nil
}

// GetResource возвращает ресурс по id.
// Ответ null или ресурс без id считаются отсутствием ресурса.
func (c *Client) GetResource(ctx context.Context, id string) (*models.Resource, error) {
	var resp *api.Resource
	if err := c.doRequest(ctx, http.MethodGet, "resource/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("get resource request failed: %w", err)
	}
	if resp == nil || resp.ID == "" {
		return nil, fmt.Errorf("get resource %s: %w", id, ErrNotFound)
	}
	return resourceFromDTO(resp), nil
}

// CreateResource создает ресурс и возвращает его серверное представление
func (c *Client) CreateResource(ctx context.Context, res models.NewResource) (*models.Resource, error) {
	req := api.CreateResourceRequest{
		FolderID:    models.FolderRef(derefID(res.FolderID)),
		Name:        res.Name,
		Description: res.Description,
		Type:        string(res.Type),
		Value:       res.Value,
	}

	var resp api.Resource
	if err := c.doRequest(ctx, http.MethodPost, "resource", req, &resp); err != nil {
		return nil, fmt.Errorf("create resource request failed: %w", err)
	}
	return resourceFromDTO(&resp), nil
}

// UpdateResource отправляет частичное обновление ресурса.
// Тело ответа не используется: актуальное состояние запрашивается отдельно.
func (c *Client) UpdateResource(ctx context.Context, id string, patch models.ResourcePatch) error {
	if err := c.doRequest(ctx, http.MethodPut, "resource/"+url.PathEscape(id), patchToDTO(patch), nil); err != nil {
		return fmt.Errorf("update resource request failed: %w", err)
	}
	return nil
}

// SetFavorite изменяет флаг избранного
func (c *Client) SetFavorite(ctx context.Context, id string, favorite bool) error {
	req := api.FavoriteRequest{Favorite: favorite}
	if err := c.doRequest(ctx, http.MethodPut, "resource/favorite/"+url.PathEscape(id), req, nil); err != nil {
		return fmt.Errorf("set favorite request failed: %w", err)
	}
	return nil
}

// MoveResource переносит ресурс в папку (nil = корень)
func (c *Client) MoveResource(ctx context.Context, id string, folderID *string) error {
	req := api.MoveResourceRequest{FolderID: models.FolderRef(derefID(folderID))}
	if err := c.doRequest(ctx, http.MethodPut, "resource/folderid/"+url.PathEscape(id), req, nil); err != nil {
		return fmt.Errorf("move resource request failed: %w", err)
	}
	return nil
}

// DeleteResource удаляет ресурс
func (c *Client) DeleteResource(ctx context.Context, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "resource/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete resource request failed: %w", err)
	}
	return nil
}

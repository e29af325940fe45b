package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/iudanet/resorg/internal/models"
	"github.com/iudanet/resorg/pkg/api"
)

// GetFoldersByParent возвращает папки с указанным родителем.
// Пустой parentID запрашивает папки корня.
func (c *Client) GetFoldersByParent(ctx context.Context, parentID string) ([]*models.Folder, error) {
	var resp []api.Folder
	path := "folder/parent/" + url.PathEscape(parentID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get folders by parent request failed: %w", err)
	}
	return foldersFromDTO(resp), nil
}

// GetFolder возвращает папку по id.
// Ответ null или папка без id считаются отсутствием папки.
func (c *Client) GetFolder(ctx context.Context, id string) (*models.Folder, error) {
	var resp *api.Folder
	if err := c.doRequest(ctx, http.MethodGet, "folder/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("get folder request failed: %w", err)
	}
	if resp == nil || resp.ID == "" {
		return nil, fmt.Errorf("get folder %s: %w", id, ErrNotFound)
	}
	return folderFromDTO(resp), nil
}

// CreateFolder создает папку
func (c *Client) CreateFolder(ctx context.Context, folder models.NewFolder) (*models.Folder, error) {
	req := api.CreateFolderRequest{
		Name:           folder.Name,
		ParentFolderID: models.FolderRef(derefID(folder.ParentFolderID)),
	}

	var resp api.Folder
	if err := c.doRequest(ctx, http.MethodPost, "folder", req, &resp); err != nil {
		return nil, fmt.Errorf("create folder request failed: %w", err)
	}
	return folderFromDTO(&resp), nil
}

func derefID(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}

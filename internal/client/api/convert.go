package api

import (
	"github.com/iudanet/resorg/internal/models"
	"github.com/iudanet/resorg/pkg/api"
)

func folderFromDTO(f *api.Folder) *models.Folder {
	subIDs := make([]string, 0, len(f.SubFolderIDs))
	subIDs = append(subIDs, f.SubFolderIDs...)
	return &models.Folder{
		ID:             f.ID,
		Name:           f.Name,
		ParentFolderID: f.ParentFolderID,
		SubFolderIDs:   subIDs,
	}
}

func foldersFromDTO(list []api.Folder) []*models.Folder {
	folders := make([]*models.Folder, 0, len(list))
	for i := range list {
		folders = append(folders, folderFromDTO(&list[i]))
	}
	return folders
}

func resourceFromDTO(r *api.Resource) *models.Resource {
	// Неизвестный тип оставляем как есть, чтобы не терять запись
	resType, err := models.ParseResourceType(r.Type)
	if err != nil {
		resType = models.ResourceType(r.Type)
	}
	return &models.Resource{
		ID:          r.ID,
		FolderID:    r.FolderID,
		Name:        r.Name,
		Description: r.Description,
		Type:        resType,
		Value:       r.Value,
		Favorite:    r.Favorite,
		CreatedOn:   r.CreatedOn,
	}
}

func resourcesFromDTO(list []api.Resource) []*models.Resource {
	resources := make([]*models.Resource, 0, len(list))
	for i := range list {
		resources = append(resources, resourceFromDTO(&list[i]))
	}
	return resources
}

func patchToDTO(patch models.ResourcePatch) api.UpdateResourceRequest {
	req := api.UpdateResourceRequest{
		Name:        patch.Name,
		Description: patch.Description,
		Value:       patch.Value,
	}
	if patch.Type != nil {
		t := string(*patch.Type)
		req.Type = &t
	}
	return req
}

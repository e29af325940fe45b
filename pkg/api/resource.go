package api

import "time"

// Resource представляет ресурс в ответах сервера
type Resource struct {
	CreatedOn   time.Time `json:"createdOn"`             // CreatedOn время создания
	FolderID    *string   `json:"folderId,omitempty"`    // FolderID папка ресурса (пусто = корень)
	Description *string   `json:"description,omitempty"` // Description опциональное описание
	ID          string    `json:"id"`                    // ID идентификатор ресурса
	Name        string    `json:"name"`                  // Name название
	Type        string    `json:"type"`                  // Type Url, Code или Text
	Value       string    `json:"value"`                 // Value содержимое ресурса
	Favorite    bool      `json:"favorite"`              // Favorite флаг избранного
}

// CreateResourceRequest представляет запрос на создание ресурса
type CreateResourceRequest struct {
	FolderID    *string `json:"folderId,omitempty"`
	Description *string `json:"description,omitempty"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Value       string  `json:"value"`
}

// UpdateResourceRequest представляет частичное обновление ресурса.
// Отсутствующие поля сервер не изменяет.
type UpdateResourceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Type        *string `json:"type,omitempty"`
	Value       *string `json:"value,omitempty"`
}

// MoveResourceRequest представляет запрос на перенос ресурса в другую папку
type MoveResourceRequest struct {
	FolderID *string `json:"folderId"` // FolderID целевая папка (null = корень)
}

// FavoriteRequest представляет запрос на изменение флага избранного
type FavoriteRequest struct {
	Favorite bool `json:"favorite"`
}

// RecommendedResource запись внешней ленты рекомендованных ресурсов
type RecommendedResource struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Value       string `json:"value"`
}

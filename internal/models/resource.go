package models

import (
	"fmt"
	"strings"
	"time"
)

// ResourceType тип хранимого ресурса
type ResourceType string

const (
	ResourceTypeURL  ResourceType = "Url"  // ссылка
	ResourceTypeCode ResourceType = "Code" // фрагмент кода
	ResourceTypeText ResourceType = "Text" // текстовая заметка
)

// ResourceTypes перечисляет все поддерживаемые типы в порядке отображения
var ResourceTypes = []ResourceType{ResourceTypeURL, ResourceTypeCode, ResourceTypeText}

// Valid сообщает, является ли тип одним из поддерживаемых
func (t ResourceType) Valid() bool {
	switch t {
	case ResourceTypeURL, ResourceTypeCode, ResourceTypeText:
		return true
	}
	return false
}

// ParseResourceType разбирает тип ресурса без учета регистра
func ParseResourceType(s string) (ResourceType, error) {
	for _, t := range ResourceTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown resource type %q (expected url, code or text)", s)
}

// Resource представляет сохраненный ресурс: ссылку, код или текст.
type Resource struct {
	CreatedOn   time.Time    `json:"created_on"`            // CreatedOn время создания на сервере
	FolderID    *string      `json:"folder_id,omitempty"`   // FolderID папка ресурса (nil или "" = корень)
	Description *string      `json:"description,omitempty"` // Description опциональное описание
	ID          string       `json:"id"`                    // ID уникальный идентификатор ресурса
	Name        string       `json:"name"`                  // Name название ресурса
	Type        ResourceType `json:"type"`                  // Type тип ресурса
	Value       string       `json:"value"`                 // Value URL, код или текст
	Favorite    bool         `json:"favorite"`              // Favorite флаг избранного
}

// InFolder сообщает, принадлежит ли ресурс указанной папке
func (r *Resource) InFolder(folderID *string) bool {
	return SameFolder(r.FolderID, folderID)
}

// NewResource содержит данные для создания ресурса
type NewResource struct {
	FolderID    *string
	Description *string
	Name        string
	Type        ResourceType
	Value       string
}

// ResourcePatch частичное обновление ресурса.
// nil поля не изменяются.
type ResourcePatch struct {
	Name        *string
	Description *string
	Type        *ResourceType
	Value       *string
}

// IsEmpty сообщает, что патч ничего не меняет
func (p ResourcePatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Type == nil && p.Value == nil
}

// Recommendation рекомендованный ресурс из внешней ленты
type Recommendation struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Type        ResourceType `json:"type"`
	Value       string       `json:"value"`
}

package models

import "strings"

// Folder представляет папку в дереве ресурсов.
// Клиент хранит неизменяемый снимок папки, полученный с сервера.
type Folder struct {
	ParentFolderID *string  `json:"parent_folder_id,omitempty"` // ParentFolderID родительская папка (nil или "" = корень)
	ID             string   `json:"id"`                         // ID уникальный идентификатор папки
	Name           string   `json:"name"`                       // Name отображаемое имя папки
	SubFolderIDs   []string `json:"sub_folder_ids"`             // SubFolderIDs упорядоченный список дочерних папок
}

// IsRoot сообщает, лежит ли папка непосредственно в корне
func (f *Folder) IsRoot() bool {
	return f.ParentFolderID == nil || *f.ParentFolderID == ""
}

// ParentID возвращает идентификатор родителя или "" для корня
func (f *Folder) ParentID() string {
	if f.ParentFolderID == nil {
		return ""
	}
	return *f.ParentFolderID
}

// NewFolder содержит данные для создания папки
type NewFolder struct {
	ParentFolderID *string // ParentFolderID родитель новой папки (nil = корень)
	Name           string  // Name имя новой папки
}

// BreadcrumbPath цепочка папок от корня до текущей (текущая последняя).
// Строится заново при каждой навигации и нигде не сохраняется.
type BreadcrumbPath []*Folder

// IDs возвращает идентификаторы папок пути в том же порядке
func (p BreadcrumbPath) IDs() []string {
	ids := make([]string, 0, len(p))
	for _, f := range p {
		ids = append(ids, f.ID)
	}
	return ids
}

// String возвращает путь в виде "Root / A / B"
func (p BreadcrumbPath) String() string {
	names := make([]string, 0, len(p)+1)
	names = append(names, "Root")
	for _, f := range p {
		names = append(names, f.Name)
	}
	return strings.Join(names, " / ")
}

// SameFolder сравнивает идентификаторы папок с учетом того,
// что nil и пустая строка одинаково обозначают корень
func SameFolder(a, b *string) bool {
	return folderKey(a) == folderKey(b)
}

// FolderRef возвращает указатель на id или nil для корня
func FolderRef(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

func folderKey(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}

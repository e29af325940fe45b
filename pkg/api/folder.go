package api

// Folder представляет папку в ответах сервера
type Folder struct {
	ParentFolderID *string  `json:"parentFolderId,omitempty"` // ParentFolderID id родителя (пусто = корень)
	ID             string   `json:"id"`                       // ID идентификатор папки
	Name           string   `json:"name"`                     // Name имя папки
	SubFolderIDs   []string `json:"subFolderIds"`             // SubFolderIDs упорядоченные id дочерних папок
}

// CreateFolderRequest представляет запрос на создание папки
type CreateFolderRequest struct {
	ParentFolderID *string `json:"parentFolderId,omitempty"` // ParentFolderID родитель (nil = корень)
	Name           string  `json:"name"`                     // Name имя новой папки
}

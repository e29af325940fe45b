// Package resources загружает ресурсы папок и сверяет список на экране
// с результатами изменений, не перечитывая папку целиком.
package resources

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/resorg/internal/models"
	"github.com/iudanet/resorg/internal/validation"
)

//go:generate moq -out resourceapi_mock.go . ResourceAPI RecommendationSource

// ResourceAPI подмножество API клиента для работы с ресурсами
type ResourceAPI interface {
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

// RecommendationSource источник ленты рекомендаций
type RecommendationSource interface {
	Recommended(ctx context.Context) ([]models.Recommendation, error)
	Invalidate()
}

// Store хранит список ресурсов открытой папки.
// Методы не возвращают ошибки бэкенда: они логируются и сохраняются в Err.
type Store struct {
	apiClient ResourceAPI
	feed      RecommendationSource
	logger    *slog.Logger

	mu       sync.RWMutex
	folderID *string
	current  []*models.Resource
	lastErr  string
}

// NewStore создает хранилище. feed может быть nil, тогда рекомендации недоступны.
func NewStore(apiClient ResourceAPI, feed RecommendationSource, logger *slog.Logger) *Store {
	return &Store{
		apiClient: apiClient,
		feed:      feed,
		logger:    logger,
		current:   []*models.Resource{},
	}
}

// Load загружает ресурсы папки (nil или "" = корень) и делает их текущим списком
func (s *Store) Load(ctx context.Context, folderID *string) []*models.Resource {
	if models.SameFolder(folderID, nil) {
		return s.LoadRoot(ctx)
	}
	return s.LoadFolder(ctx, *folderID)
}

// LoadRoot загружает ресурсы корня
func (s *Store) LoadRoot(ctx context.Context) []*models.Resource {
	s.setFolder(nil)

	list, err := s.apiClient.GetRootResources(ctx)
	if err != nil {
		s.logger.Error("failed to load root resources", "error", err)
		s.setErr(fmt.Errorf("load root resources: %w", err))
		list = []*models.Resource{}
	}

	return s.setCurrent(nil, list)
}

// LoadFolder загружает ресурсы папки
func (s *Store) LoadFolder(ctx context.Context, folderID string) []*models.Resource {
	if folderID == "" {
		return s.LoadRoot(ctx)
	}
	ref := models.FolderRef(folderID)
	s.setFolder(ref)

	list, err := s.apiClient.GetFolderResources(ctx, folderID)
	if err != nil {
		s.logger.Error("failed to load folder resources", "folder_id", folderID, "error", err)
		s.setErr(fmt.Errorf("load resources of folder %s: %w", folderID, err))
		list = []*models.Resource{}
	}

	return s.setCurrent(ref, list)
}

// LoadFavorites возвращает избранное. Текущий список не меняется.
func (s *Store) LoadFavorites(ctx context.Context) []*models.Resource {
	list, err := s.apiClient.GetFavoriteResources(ctx)
	if err != nil {
		s.logger.Error("failed to load favorites", "error", err)
		s.setErr(fmt.Errorf("load favorites: %w", err))
		return []*models.Resource{}
	}
	return list
}

// LoadRecents возвращает недавние ресурсы. Текущий список не меняется.
func (s *Store) LoadRecents(ctx context.Context) []*models.Resource {
	list, err := s.apiClient.GetRecentResources(ctx)
	if err != nil {
		s.logger.Error("failed to load recent resources", "error", err)
		s.setErr(fmt.Errorf("load recents: %w", err))
		return []*models.Resource{}
	}
	return list
}

// RefreshRecommended сбрасывает закешированную ленту и загружает ее заново
func (s *Store) RefreshRecommended(ctx context.Context) []models.Recommendation {
	if s.feed != nil {
		s.feed.Invalidate()
	}
	return s.LoadRecommended(ctx)
}

// LoadRecommended возвращает ленту рекомендаций
func (s *Store) LoadRecommended(ctx context.Context) []models.Recommendation {
	if s.feed == nil {
		s.setErr(fmt.Errorf("load recommended: feed is not configured"))
		return []models.Recommendation{}
	}

	items, err := s.feed.Recommended(ctx)
	if err != nil {
		s.logger.Error("failed to load recommended feed", "error", err)
		s.setErr(fmt.Errorf("load recommended: %w", err))
		return []models.Recommendation{}
	}
	return items
}

// GetResource читает ресурс с сервера. Текущий список не меняется.
func (s *Store) GetResource(ctx context.Context, id string) *models.Resource {
	res, err := s.apiClient.GetResource(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch resource", "resource_id", id, "error", err)
		s.setErr(fmt.Errorf("get resource %s: %w", id, err))
		return nil
	}
	return res
}

// AddResource создает ресурс. Он добавляется в конец текущего списка,
// только если создан в открытой папке.
func (s *Store) AddResource(ctx context.Context, in models.NewResource) *models.Resource {
	if err := validation.ValidateNewResource(in); err != nil {
		s.logger.Warn("invalid resource", "error", err)
		s.setErr(fmt.Errorf("add resource: %w", err))
		return nil
	}

	res, err := s.apiClient.CreateResource(ctx, in)
	if err != nil {
		s.logger.Error("failed to create resource", "name", in.Name, "error", err)
		s.setErr(fmt.Errorf("add resource: %w", err))
		return nil
	}

	s.mu.Lock()
	if res.InFolder(s.folderID) {
		s.current = append(s.cloneCurrent(), res)
	}
	s.mu.Unlock()

	s.logger.Info("resource created", "resource_id", res.ID)
	return res
}

// UpdateResource применяет патч и перечитывает ресурс с сервера.
// Если ресурс в открытой папке, запись в списке заменяется на месте.
// Если перечитать не удалось, список остается устаревшим до следующей загрузки.
func (s *Store) UpdateResource(ctx context.Context, id string, patch models.ResourcePatch) *models.Resource {
	var currentType models.ResourceType
	if res := s.find(id); res != nil {
		currentType = res.Type
	} else if patch.Value != nil && patch.Type == nil {
		// Ресурса нет на экране: тип нужен, чтобы проверить новое значение
		res, err := s.apiClient.GetResource(ctx, id)
		if err != nil {
			s.logger.Error("failed to fetch resource before update", "resource_id", id, "error", err)
			s.setErr(fmt.Errorf("update resource %s: %w", id, err))
			return nil
		}
		currentType = res.Type
	}
	if err := validation.ValidatePatch(patch, currentType); err != nil {
		s.logger.Warn("invalid resource update", "resource_id", id, "error", err)
		s.setErr(fmt.Errorf("update resource %s: %w", id, err))
		return nil
	}

	if err := s.apiClient.UpdateResource(ctx, id, patch); err != nil {
		s.logger.Error("failed to update resource", "resource_id", id, "error", err)
		s.setErr(fmt.Errorf("update resource %s: %w", id, err))
		return nil
	}

	res, err := s.apiClient.GetResource(ctx, id)
	if err != nil {
		s.logger.Warn("resource updated but refetch failed", "resource_id", id, "error", err)
		s.setErr(fmt.Errorf("refetch resource %s: %w", id, err))
		return nil
	}

	s.mu.Lock()
	if res.InFolder(s.folderID) {
		s.replace(res)
	}
	s.mu.Unlock()

	return res
}

// MoveResource переносит ресурс в папку (nil = корень).
// Если цель не открытая папка, ресурс убирается из текущего списка.
func (s *Store) MoveResource(ctx context.Context, id string, targetFolderID *string) bool {
	if err := s.apiClient.MoveResource(ctx, id, targetFolderID); err != nil {
		s.logger.Error("failed to move resource", "resource_id", id, "error", err)
		s.setErr(fmt.Errorf("move resource %s: %w", id, err))
		return false
	}

	s.mu.Lock()
	if !models.SameFolder(targetFolderID, s.folderID) {
		s.remove(id)
	}
	s.mu.Unlock()

	s.logger.Info("resource moved", "resource_id", id, "folder_id", deref(targetFolderID))
	return true
}

// DeleteResource удаляет ресурс. Сначала ресурс читается, чтобы узнать его папку;
// из текущего списка он убирается, если лежал в открытой папке.
func (s *Store) DeleteResource(ctx context.Context, id string) bool {
	res, err := s.apiClient.GetResource(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch resource before delete", "resource_id", id, "error", err)
		s.setErr(fmt.Errorf("delete resource %s: %w", id, err))
		return false
	}

	if err := s.apiClient.DeleteResource(ctx, id); err != nil {
		s.logger.Error("failed to delete resource", "resource_id", id, "error", err)
		s.setErr(fmt.Errorf("delete resource %s: %w", id, err))
		return false
	}

	s.mu.Lock()
	if res.InFolder(s.folderID) {
		s.remove(id)
	}
	s.mu.Unlock()

	s.logger.Info("resource deleted", "resource_id", id)
	return true
}

// ToggleFavorite переключает флаг избранного и возвращает новое значение
func (s *Store) ToggleFavorite(ctx context.Context, id string) (bool, bool) {
	var favorite bool
	if res := s.find(id); res != nil {
		favorite = res.Favorite
	} else {
		res, err := s.apiClient.GetResource(ctx, id)
		if err != nil {
			s.logger.Error("failed to fetch resource", "resource_id", id, "error", err)
			s.setErr(fmt.Errorf("toggle favorite %s: %w", id, err))
			return false, false
		}
		favorite = res.Favorite
	}

	if err := s.apiClient.SetFavorite(ctx, id, !favorite); err != nil {
		s.logger.Error("failed to set favorite", "resource_id", id, "error", err)
		s.setErr(fmt.Errorf("toggle favorite %s: %w", id, err))
		return favorite, false
	}

	s.mu.Lock()
	for i, r := range s.current {
		if r.ID == id {
			updated := *r
			updated.Favorite = !favorite
			list := s.cloneCurrent()
			list[i] = &updated
			s.current = list
			break
		}
	}
	s.mu.Unlock()

	return !favorite, true
}

// Current возвращает копию текущего списка
func (s *Store) Current() []*models.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneCurrent()
}

// CurrentFolderID возвращает открытую папку (nil = корень)
func (s *Store) CurrentFolderID() *string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.folderID
}

// Err возвращает текст последней ошибки или ""
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// ClearErr сбрасывает последнюю ошибку
func (s *Store) ClearErr() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

// Reset очищает состояние
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.folderID = nil
	s.current = []*models.Resource{}
	s.lastErr = ""
}

func (s *Store) setErr(err error) {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
}

func (s *Store) setFolder(folderID *string) {
	s.mu.Lock()
	s.folderID = folderID
	s.mu.Unlock()
}

// setCurrent пишет список, только если за время запроса не открыли другую папку
func (s *Store) setCurrent(folderID *string, list []*models.Resource) []*models.Resource {
	if list == nil {
		list = []*models.Resource{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if models.SameFolder(folderID, s.folderID) {
		s.current = list
	}
	return list
}

func (s *Store) find(id string) *models.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.current {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// cloneCurrent, replace и remove вызываются под s.mu

func (s *Store) cloneCurrent() []*models.Resource {
	out := make([]*models.Resource, len(s.current))
	copy(out, s.current)
	return out
}

func (s *Store) replace(res *models.Resource) {
	for i, r := range s.current {
		if r.ID == res.ID {
			list := s.cloneCurrent()
			list[i] = res
			s.current = list
			return
		}
	}
}

func (s *Store) remove(id string) {
	list := make([]*models.Resource, 0, len(s.current))
	for _, r := range s.current {
		if r.ID != id {
			list = append(list, r)
		}
	}
	s.current = list
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

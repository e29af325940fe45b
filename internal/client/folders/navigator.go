// Package folders кеширует папки и строит представление текущей папки:
// саму папку, ее подпапки и цепочку хлебных крошек от корня.
package folders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/iudanet/resorg/internal/client/api"
	"github.com/iudanet/resorg/internal/models"
	"github.com/iudanet/resorg/internal/validation"
)

//go:generate moq -out folderapi_mock.go . FolderAPI

// FolderAPI подмножество API клиента, нужное навигатору
type FolderAPI interface {
	GetFoldersByParent(ctx context.Context, parentID string) ([]*models.Folder, error)
	GetFolder(ctx context.Context, id string) (*models.Folder, error)
	CreateFolder(ctx context.Context, folder models.NewFolder) (*models.Folder, error)
}

// ResourceLoader загружает ресурсы открываемой папки параллельно с подпапками
type ResourceLoader func(ctx context.Context, folderID *string)

// View результат навигации
type View struct {
	Folder     *models.Folder        // Folder открытая папка (nil = корень)
	Path       models.BreadcrumbPath // Path цепочка от корня до открытой папки
	SubFolders []*models.Folder      // SubFolders дочерние папки в порядке SubFolderIDs
	NotFound   bool                  // NotFound папка с запрошенным id не найдена
}

// Navigator кеширует папки по id и хранит список папок на экране.
// Ошибки не возвращаются вызывающему: они логируются и сохраняются в Err.
type Navigator struct {
	apiClient FolderAPI
	logger    *slog.Logger
	fetches   singleflight.Group

	mu       sync.RWMutex
	cache    map[string]*models.Folder
	folder   *models.Folder
	current  []*models.Folder
	lastErr  string
	navEpoch uint64
}

// NewNavigator создает навигатор с пустым кешем
func NewNavigator(apiClient FolderAPI, logger *slog.Logger) *Navigator {
	return &Navigator{
		apiClient: apiClient,
		logger:    logger,
		cache:     make(map[string]*models.Folder),
		current:   []*models.Folder{},
	}
}

// FetchFolder возвращает папку из кеша или запрашивает ее у сервера.
// Если папки нет или запрос не удался, возвращает nil.
// Одновременные промахи по одному id разделяют один запрос.
func (n *Navigator) FetchFolder(ctx context.Context, id string) *models.Folder {
	if id == "" {
		return nil
	}

	if folder := n.cached(id); folder != nil {
		return folder
	}

	v, err, _ := n.fetches.Do(id, func() (interface{}, error) {
		// Пока ждали, другой запрос мог заполнить кеш
		if folder := n.cached(id); folder != nil {
			return folder, nil
		}

		folder, err := n.apiClient.GetFolder(ctx, id)
		if err != nil {
			return nil, err
		}
		if folder == nil || folder.ID == "" {
			return nil, api.ErrNotFound
		}

		n.mu.Lock()
		n.cache[folder.ID] = folder
		if folder.ID != id {
			n.cache[id] = folder
		}
		n.mu.Unlock()

		return folder, nil
	})
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			n.logger.Warn("folder not found", "folder_id", id)
		} else {
			n.logger.Error("failed to fetch folder", "folder_id", id, "error", err)
		}
		n.setErr(fmt.Errorf("fetch folder %s: %w", id, err))
		return nil
	}

	return v.(*models.Folder)
}

// FetchRootSubFolders загружает папки корня, кладет их в кеш
// и делает текущим списком папок
func (n *Navigator) FetchRootSubFolders(ctx context.Context) []*models.Folder {
	return n.fetchRootSubFolders(ctx, n.epoch())
}

func (n *Navigator) fetchRootSubFolders(ctx context.Context, epoch uint64) []*models.Folder {
	folders, err := n.apiClient.GetFoldersByParent(ctx, "")
	if err != nil {
		n.logger.Error("failed to fetch root folders", "error", err)
		n.setErr(fmt.Errorf("fetch root folders: %w", err))
		folders = []*models.Folder{}
	}

	n.mu.Lock()
	for _, f := range folders {
		n.cache[f.ID] = f
	}
	n.mu.Unlock()

	n.setCurrent(epoch, folders)
	return folders
}

// FetchSubFolders параллельно разрешает все SubFolderIDs папки.
// Не найденные папки отбрасываются, порядок SubFolderIDs сохраняется.
// Ошибка одной подпапки не отменяет загрузку остальных.
func (n *Navigator) FetchSubFolders(ctx context.Context, parent *models.Folder) []*models.Folder {
	return n.fetchSubFolders(ctx, n.epoch(), parent)
}

func (n *Navigator) fetchSubFolders(ctx context.Context, epoch uint64, parent *models.Folder) []*models.Folder {
	if parent == nil || len(parent.SubFolderIDs) == 0 {
		folders := []*models.Folder{}
		n.setCurrent(epoch, folders)
		return folders
	}

	resolved := make([]*models.Folder, len(parent.SubFolderIDs))

	// errgroup без контекста: FetchFolder никогда не возвращает ошибку,
	// поэтому падение одной ветки не отменяет соседние
	var g errgroup.Group
	for i, id := range parent.SubFolderIDs {
		g.Go(func() error {
			resolved[i] = n.FetchFolder(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	folders := make([]*models.Folder, 0, len(resolved))
	for _, f := range resolved {
		if f != nil {
			folders = append(folders, f)
		}
	}

	n.setCurrent(epoch, folders)
	return folders
}

// BuildBreadcrumbPath строит путь от корня до папки по ссылкам ParentFolderID.
// Неразрешимая ссылка или цикл обрезают путь без ошибки.
// Для корня (nil или "") возвращает пустой путь.
func (n *Navigator) BuildBreadcrumbPath(ctx context.Context, folderID *string) models.BreadcrumbPath {
	path := models.BreadcrumbPath{}
	if folderID == nil {
		return path
	}

	visited := make(map[string]bool)
	id := *folderID
	for id != "" {
		if visited[id] {
			n.logger.Warn("folder parent cycle detected", "folder_id", id)
			break
		}
		visited[id] = true

		folder := n.FetchFolder(ctx, id)
		if folder == nil {
			break
		}

		path = append(models.BreadcrumbPath{folder}, path...)
		id = folder.ParentID()
	}

	return path
}

// Navigate открывает папку (nil = корень): разрешает ее, затем параллельно
// загружает подпапки, хлебные крошки и ресурсы через load.
// Состояние пишется, только пока эта навигация последняя.
func (n *Navigator) Navigate(ctx context.Context, folderID *string, load ResourceLoader) *View {
	epoch := n.beginNavigation()

	if models.SameFolder(folderID, nil) {
		n.setFolder(epoch, nil)
		view := &View{Path: models.BreadcrumbPath{}}

		var g errgroup.Group
		g.Go(func() error {
			view.SubFolders = n.fetchRootSubFolders(ctx, epoch)
			return nil
		})
		if load != nil {
			g.Go(func() error {
				load(ctx, nil)
				return nil
			})
		}
		_ = g.Wait()

		return view
	}

	folder := n.FetchFolder(ctx, *folderID)
	if folder == nil {
		n.setFolder(epoch, nil)
		n.setCurrent(epoch, []*models.Folder{})
		return &View{NotFound: true, Path: models.BreadcrumbPath{}, SubFolders: []*models.Folder{}}
	}

	n.setFolder(epoch, folder)
	view := &View{Folder: folder}

	var g errgroup.Group
	g.Go(func() error {
		view.SubFolders = n.fetchSubFolders(ctx, epoch, folder)
		return nil
	})
	g.Go(func() error {
		view.Path = n.BuildBreadcrumbPath(ctx, &folder.ID)
		return nil
	})
	if load != nil {
		g.Go(func() error {
			load(ctx, &folder.ID)
			return nil
		})
	}
	_ = g.Wait()

	return view
}

// CreateFolder создает папку на сервере.
// Новая папка попадает в кеш. Кешированный родитель заменяется копией
// с новым id в SubFolderIDs, записи кеша не удаляются.
// Если родитель открыт на экране, папка добавляется в текущий список.
func (n *Navigator) CreateFolder(ctx context.Context, nf models.NewFolder) *models.Folder {
	if err := validation.ValidateName(nf.Name); err != nil {
		n.logger.Warn("invalid folder", "error", err)
		n.setErr(fmt.Errorf("create folder: %w", err))
		return nil
	}

	folder, err := n.apiClient.CreateFolder(ctx, nf)
	if err != nil {
		n.logger.Error("failed to create folder", "name", nf.Name, "error", err)
		n.setErr(fmt.Errorf("create folder: %w", err))
		return nil
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.cache[folder.ID] = folder
	parentID := folder.ParentID()
	if parent, ok := n.cache[parentID]; ok && parentID != "" {
		n.cache[parentID] = withSubFolder(parent, folder.ID)
	}

	var onScreen *string
	if n.folder != nil {
		onScreen = &n.folder.ID
	}
	if models.SameFolder(folder.ParentFolderID, onScreen) {
		n.current = append(append([]*models.Folder{}, n.current...), folder)
		if n.folder != nil {
			// снимок открытой папки тоже устарел
			if cached, ok := n.cache[n.folder.ID]; ok {
				n.folder = cached
			} else {
				n.folder = withSubFolder(n.folder, folder.ID)
			}
		}
	}

	n.logger.Info("folder created", "folder_id", folder.ID, "parent_id", parentID)
	return folder
}

// withSubFolder возвращает копию папки с добавленной подпапкой.
// Если id уже есть в списке, возвращается сама папка.
func withSubFolder(f *models.Folder, id string) *models.Folder {
	if slices.Contains(f.SubFolderIDs, id) {
		return f
	}
	updated := *f
	updated.SubFolderIDs = append(append([]string{}, f.SubFolderIDs...), id)
	return &updated
}

// CurrentFolders возвращает копию списка папок на экране
func (n *Navigator) CurrentFolders() []*models.Folder {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]*models.Folder, len(n.current))
	copy(out, n.current)
	return out
}

// CurrentFolder возвращает открытую папку (nil = корень)
func (n *Navigator) CurrentFolder() *models.Folder {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.folder
}

// Err возвращает текст последней ошибки или ""
func (n *Navigator) Err() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.lastErr
}

// ClearErr сбрасывает последнюю ошибку
func (n *Navigator) ClearErr() {
	n.mu.Lock()
	n.lastErr = ""
	n.mu.Unlock()
}

// Reset очищает кеш и состояние экрана
func (n *Navigator) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.cache = make(map[string]*models.Folder)
	n.current = []*models.Folder{}
	n.folder = nil
	n.lastErr = ""
	n.navEpoch++
}

func (n *Navigator) cached(id string) *models.Folder {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.cache[id]
}

func (n *Navigator) setErr(err error) {
	n.mu.Lock()
	n.lastErr = err.Error()
	n.mu.Unlock()
}

func (n *Navigator) epoch() uint64 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.navEpoch
}

func (n *Navigator) beginNavigation() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.navEpoch++
	return n.navEpoch
}

// setCurrent пишет список папок, если за это время не началась новая навигация
func (n *Navigator) setCurrent(epoch uint64, folders []*models.Folder) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if epoch != n.navEpoch {
		return
	}
	n.current = folders
}

func (n *Navigator) setFolder(epoch uint64, folder *models.Folder) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if epoch != n.navEpoch {
		return
	}
	n.folder = folder
}

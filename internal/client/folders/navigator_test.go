package folders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/iudanet/resorg/internal/client/api"
	"github.com/iudanet/resorg/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func strPtr(s string) *string { return &s }

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// newTreeAPI возвращает мок сервера с фиксированным деревом папок
func newTreeAPI(folders ...*models.Folder) *FolderAPIMock {
	byID := make(map[string]*models.Folder, len(folders))
	for _, f := range folders {
		byID[f.ID] = f
	}

	return &FolderAPIMock{
		GetFolderFunc: func(ctx context.Context, id string) (*models.Folder, error) {
			f, ok := byID[id]
			if !ok {
				return nil, fmt.Errorf("get folder request failed: %w", api.ErrNotFound)
			}
			cp := *f
			return &cp, nil
		},
		GetFoldersByParentFunc: func(ctx context.Context, parentID string) ([]*models.Folder, error) {
			result := []*models.Folder{}
			for _, f := range byID {
				if f.ParentID() == parentID {
					cp := *f
					result = append(result, &cp)
				}
			}
			slices.SortFunc(result, func(a, b *models.Folder) int { return strings.Compare(a.ID, b.ID) })
			return result, nil
		},
	}
}

// sampleTree: work -> go -> generics, work -> rust; personal в корне
func sampleTree() []*models.Folder {
	return []*models.Folder{
		{ID: "work", Name: "Work", SubFolderIDs: []string{"go", "rust"}},
		{ID: "go", Name: "Go", ParentFolderID: strPtr("work"), SubFolderIDs: []string{"generics"}},
		{ID: "rust", Name: "Rust", ParentFolderID: strPtr("work"), SubFolderIDs: []string{}},
		{ID: "generics", Name: "Generics", ParentFolderID: strPtr("go")},
		{ID: "personal", Name: "Personal"},
	}
}

func TestFetchFolder_CachesResult(t *testing.T) {
	mock := newTreeAPI(sampleTree()...)
	nav := NewNavigator(mock, newTestLogger())
	ctx := context.Background()

	first := nav.FetchFolder(ctx, "go")
	require.NotNil(t, first)
	assert.Equal(t, "Go", first.Name)
	require.Len(t, mock.GetFolderCalls(), 1)

	// Повторный запрос обслуживается из кеша без обращения к серверу
	second := nav.FetchFolder(ctx, "go")
	assert.Same(t, first, second)
	assert.Len(t, mock.GetFolderCalls(), 1)
	assert.Empty(t, nav.Err())
}

func TestFetchFolder_EmptyID(t *testing.T) {
	mock := newTreeAPI()
	nav := NewNavigator(mock, newTestLogger())

	assert.Nil(t, nav.FetchFolder(context.Background(), ""))
	assert.Empty(t, mock.GetFolderCalls())
}

func TestFetchFolder_NotFound(t *testing.T) {
	mock := newTreeAPI(sampleTree()...)
	nav := NewNavigator(mock, newTestLogger())
	ctx := context.Background()

	assert.Nil(t, nav.FetchFolder(ctx, "missing"))
	assert.Contains(t, nav.Err(), "missing")
	assert.Contains(t, nav.Err(), "not found")

	// Отсутствие не кешируется
	assert.Nil(t, nav.FetchFolder(ctx, "missing"))
	assert.Len(t, mock.GetFolderCalls(), 2)
}

// Сервер отвечает 200 с телом null: папки нет, в кеш ничего не попадает
func TestFetchFolder_NullResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Connection", "close")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("null"))
	}))
	defer server.Close()

	nav := NewNavigator(api.NewClient(server.URL), newTestLogger())
	ctx := context.Background()

	assert.Nil(t, nav.FetchFolder(ctx, "missing"))
	assert.Contains(t, nav.Err(), "not found")
	assert.Nil(t, nav.cached("missing"))

	view := nav.Navigate(ctx, strPtr("missing"), nil)
	assert.True(t, view.NotFound)
	assert.Nil(t, view.Folder)
	assert.Nil(t, nav.CurrentFolder())
}

func TestFetchFolder_BlankFolderIsNotFound(t *testing.T) {
	mock := &FolderAPIMock{
		GetFolderFunc: func(ctx context.Context, id string) (*models.Folder, error) {
			return &models.Folder{}, nil
		},
	}
	nav := NewNavigator(mock, newTestLogger())

	assert.Nil(t, nav.FetchFolder(context.Background(), "ghost"))
	assert.Nil(t, nav.cached("ghost"))
	assert.Nil(t, nav.cached(""))
	assert.Contains(t, nav.Err(), "not found")
}

func TestFetchFolder_BackendError(t *testing.T) {
	mock := &FolderAPIMock{
		GetFolderFunc: func(ctx context.Context, id string) (*models.Folder, error) {
			return nil, errors.New("connection refused")
		},
	}
	nav := NewNavigator(mock, newTestLogger())

	assert.Nil(t, nav.FetchFolder(context.Background(), "work"))
	assert.Contains(t, nav.Err(), "connection refused")

	nav.ClearErr()
	assert.Empty(t, nav.Err())
}

func TestFetchFolder_ConcurrentMissesShareOneRequest(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once

	mock := &FolderAPIMock{
		GetFolderFunc: func(ctx context.Context, id string) (*models.Folder, error) {
			once.Do(func() { close(started) })
			<-release
			return &models.Folder{ID: id, Name: "Shared"}, nil
		},
	}
	nav := NewNavigator(mock, newTestLogger())
	ctx := context.Background()

	const callers = 8
	results := make([]*models.Folder, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = nav.FetchFolder(ctx, "shared")
		}()
	}

	<-started
	// Даем остальным горутинам встать в ожидание того же запроса
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Len(t, mock.GetFolderCalls(), 1)
	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, "Shared", r.Name)
	}
}

func TestFetchRootSubFolders_SeedsCache(t *testing.T) {
	mock := newTreeAPI(sampleTree()...)
	nav := NewNavigator(mock, newTestLogger())
	ctx := context.Background()

	folders := nav.FetchRootSubFolders(ctx)

	require.Len(t, folders, 2)
	assert.Equal(t, "personal", folders[0].ID)
	assert.Equal(t, "work", folders[1].ID)
	require.Len(t, mock.GetFoldersByParentCalls(), 1)
	assert.Equal(t, "", mock.GetFoldersByParentCalls()[0].ParentID)
	assert.Equal(t, folders, nav.CurrentFolders())

	// Папки корня уже в кеше
	assert.NotNil(t, nav.FetchFolder(ctx, "work"))
	assert.Empty(t, mock.GetFolderCalls())
}

func TestFetchRootSubFolders_Error(t *testing.T) {
	mock := &FolderAPIMock{
		GetFoldersByParentFunc: func(ctx context.Context, parentID string) ([]*models.Folder, error) {
			return nil, errors.New("server error (500): boom")
		},
	}
	nav := NewNavigator(mock, newTestLogger())

	folders := nav.FetchRootSubFolders(context.Background())

	assert.NotNil(t, folders)
	assert.Empty(t, folders)
	assert.Empty(t, nav.CurrentFolders())
	assert.Contains(t, nav.Err(), "boom")
}

func TestFetchSubFolders_EmptyShortCircuits(t *testing.T) {
	mock := newTreeAPI(sampleTree()...)
	nav := NewNavigator(mock, newTestLogger())
	ctx := context.Background()

	folders := nav.FetchSubFolders(ctx, &models.Folder{ID: "rust", SubFolderIDs: []string{}})
	assert.NotNil(t, folders)
	assert.Empty(t, folders)

	folders = nav.FetchSubFolders(ctx, &models.Folder{ID: "leaf"})
	assert.Empty(t, folders)

	assert.Empty(t, nav.FetchSubFolders(ctx, nil))

	assert.Empty(t, mock.GetFolderCalls())
	assert.Empty(t, mock.GetFoldersByParentCalls())
}

func TestFetchSubFolders_DropsUnresolvedAndKeepsOrder(t *testing.T) {
	tree := append(sampleTree(), &models.Folder{ID: "z", Name: "Zeta", ParentFolderID: strPtr("p")})
	base := newTreeAPI(tree...)
	mock := &FolderAPIMock{
		GetFolderFunc: func(ctx context.Context, id string) (*models.Folder, error) {
			if id == "broken" {
				return nil, errors.New("request failed: timeout")
			}
			return base.GetFolder(ctx, id)
		},
	}
	nav := NewNavigator(mock, newTestLogger())

	parent := &models.Folder{ID: "p", SubFolderIDs: []string{"z", "missing", "go", "broken", "personal"}}
	folders := nav.FetchSubFolders(context.Background(), parent)

	require.Len(t, folders, 3)
	assert.Equal(t, "z", folders[0].ID)
	assert.Equal(t, "go", folders[1].ID)
	assert.Equal(t, "personal", folders[2].ID)
	assert.Equal(t, folders, nav.CurrentFolders())
	assert.Len(t, mock.GetFolderCalls(), 5)
	assert.NotEmpty(t, nav.Err())
}

func TestFetchSubFolders_RunsConcurrently(t *testing.T) {
	const n = 4
	var startedCount atomic.Int32
	allStarted := make(chan struct{})

	mock := &FolderAPIMock{
		GetFolderFunc: func(ctx context.Context, id string) (*models.Folder, error) {
			if startedCount.Add(1) == n {
				close(allStarted)
			}
			// Каждый запрос ждет, пока стартуют все: при последовательной
			// загрузке ожидание истечет
			select {
			case <-allStarted:
				return &models.Folder{ID: id, Name: id}, nil
			case <-time.After(2 * time.Second):
				return nil, errors.New("sibling fetches did not run concurrently")
			}
		},
	}
	nav := NewNavigator(mock, newTestLogger())

	parent := &models.Folder{ID: "p", SubFolderIDs: []string{"a", "b", "c", "d"}}
	folders := nav.FetchSubFolders(context.Background(), parent)

	require.Len(t, folders, n)
	assert.Empty(t, nav.Err())
}

func TestFetchSubFolders_StaleNavigationDoesNotOverwrite(t *testing.T) {
	mock := newTreeAPI(sampleTree()...)
	nav := NewNavigator(mock, newTestLogger())
	ctx := context.Background()

	nav.FetchRootSubFolders(ctx)
	stale := nav.epoch()
	nav.beginNavigation()

	work := nav.FetchFolder(ctx, "work")
	folders := nav.fetchSubFolders(ctx, stale, work)

	assert.Len(t, folders, 2)
	// Список корня остался: запись устаревшей навигации подавлена
	current := nav.CurrentFolders()
	require.Len(t, current, 2)
	assert.Equal(t, "personal", current[0].ID)
}

func TestBuildBreadcrumbPath(t *testing.T) {
	tree := append(sampleTree(),
		&models.Folder{ID: "orphan", Name: "Orphan", ParentFolderID: strPtr("gone")},
		&models.Folder{ID: "loop-a", Name: "A", ParentFolderID: strPtr("loop-b")},
		&models.Folder{ID: "loop-b", Name: "B", ParentFolderID: strPtr("loop-a")},
	)

	tests := []struct {
		folderID *string
		name     string
		wantIDs  []string
	}{
		{name: "root (nil)", folderID: nil, wantIDs: []string{}},
		{name: "root (empty)", folderID: strPtr(""), wantIDs: []string{}},
		{name: "top level folder", folderID: strPtr("work"), wantIDs: []string{"work"}},
		{name: "nested", folderID: strPtr("generics"), wantIDs: []string{"work", "go", "generics"}},
		{name: "broken parent link truncates", folderID: strPtr("orphan"), wantIDs: []string{"orphan"}},
		{name: "unknown folder", folderID: strPtr("missing"), wantIDs: []string{}},
		{name: "parent cycle stops", folderID: strPtr("loop-a"), wantIDs: []string{"loop-b", "loop-a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := NewNavigator(newTreeAPI(tree...), newTestLogger())

			path := nav.BuildBreadcrumbPath(context.Background(), tt.folderID)

			require.NotNil(t, path)
			assert.Equal(t, tt.wantIDs, path.IDs())
		})
	}
}

func TestBuildBreadcrumbPath_UsesCache(t *testing.T) {
	mock := newTreeAPI(sampleTree()...)
	nav := NewNavigator(mock, newTestLogger())
	ctx := context.Background()

	nav.BuildBreadcrumbPath(ctx, strPtr("generics"))
	require.Len(t, mock.GetFolderCalls(), 3)

	path := nav.BuildBreadcrumbPath(ctx, strPtr("go"))
	assert.Equal(t, []string{"work", "go"}, path.IDs())
	assert.Len(t, mock.GetFolderCalls(), 3)
}

func TestNavigate_Root(t *testing.T) {
	mock := newTreeAPI(sampleTree()...)
	nav := NewNavigator(mock, newTestLogger())

	var loaded []*string
	var mu sync.Mutex
	view := nav.Navigate(context.Background(), nil, func(ctx context.Context, folderID *string) {
		mu.Lock()
		loaded = append(loaded, folderID)
		mu.Unlock()
	})

	require.NotNil(t, view)
	assert.False(t, view.NotFound)
	assert.Nil(t, view.Folder)
	assert.Empty(t, view.Path)
	assert.Len(t, view.SubFolders, 2)
	require.Len(t, loaded, 1)
	assert.Nil(t, loaded[0])
	assert.Nil(t, nav.CurrentFolder())
	assert.Len(t, nav.CurrentFolders(), 2)
}

func TestNavigate_Folder(t *testing.T) {
	mock := newTreeAPI(sampleTree()...)
	nav := NewNavigator(mock, newTestLogger())

	var loadedID string
	view := nav.Navigate(context.Background(), strPtr("go"), func(ctx context.Context, folderID *string) {
		loadedID = *folderID
	})

	require.NotNil(t, view)
	require.NotNil(t, view.Folder)
	assert.Equal(t, "go", view.Folder.ID)
	assert.Equal(t, []string{"work", "go"}, view.Path.IDs())
	require.Len(t, view.SubFolders, 1)
	assert.Equal(t, "generics", view.SubFolders[0].ID)
	assert.Equal(t, "go", loadedID)
	assert.Equal(t, view.Folder, nav.CurrentFolder())
	assert.Equal(t, view.SubFolders, nav.CurrentFolders())
}

func TestNavigate_NotFound(t *testing.T) {
	mock := newTreeAPI(sampleTree()...)
	nav := NewNavigator(mock, newTestLogger())
	ctx := context.Background()

	nav.Navigate(ctx, nil, nil)
	require.NotEmpty(t, nav.CurrentFolders())

	called := false
	view := nav.Navigate(ctx, strPtr("missing"), func(ctx context.Context, folderID *string) {
		called = true
	})

	assert.True(t, view.NotFound)
	assert.False(t, called)
	assert.Nil(t, nav.CurrentFolder())
	assert.Empty(t, nav.CurrentFolders())
	assert.NotEmpty(t, nav.Err())
}

func TestCreateFolder_InOpenFolder(t *testing.T) {
	mock := newTreeAPI(sampleTree()...)
	mock.CreateFolderFunc = func(ctx context.Context, nf models.NewFolder) (*models.Folder, error) {
		return &models.Folder{ID: "new", Name: nf.Name, ParentFolderID: nf.ParentFolderID}, nil
	}
	nav := NewNavigator(mock, newTestLogger())
	ctx := context.Background()

	nav.Navigate(ctx, strPtr("work"), nil)
	require.Len(t, nav.CurrentFolders(), 2)
	callsBefore := len(mock.GetFolderCalls())

	folder := nav.CreateFolder(ctx, models.NewFolder{Name: "Zig", ParentFolderID: strPtr("work")})

	require.NotNil(t, folder)
	current := nav.CurrentFolders()
	require.Len(t, current, 3)
	assert.Equal(t, "new", current[2].ID)
	assert.Equal(t, []string{"go", "rust", "new"}, nav.CurrentFolder().SubFolderIDs)

	// Новая папка и обновленный родитель обслуживаются из кеша
	assert.NotNil(t, nav.FetchFolder(ctx, "new"))
	work := nav.FetchFolder(ctx, "work")
	require.NotNil(t, work)
	assert.Equal(t, []string{"go", "rust", "new"}, work.SubFolderIDs)
	assert.Same(t, work, nav.CurrentFolder())
	assert.Len(t, mock.GetFolderCalls(), callsBefore)
}

func TestCreateFolder_CachedParentIsNotRefetched(t *testing.T) {
	mock := newTreeAPI(sampleTree()...)
	mock.CreateFolderFunc = func(ctx context.Context, nf models.NewFolder) (*models.Folder, error) {
		return &models.Folder{ID: "tokio", Name: nf.Name, ParentFolderID: nf.ParentFolderID}, nil
	}
	nav := NewNavigator(mock, newTestLogger())
	ctx := context.Background()

	before := nav.FetchFolder(ctx, "rust")
	require.NotNil(t, before)
	require.Len(t, mock.GetFolderCalls(), 1)

	require.NotNil(t, nav.CreateFolder(ctx, models.NewFolder{Name: "Tokio", ParentFolderID: strPtr("rust")}))

	after := nav.FetchFolder(ctx, "rust")
	require.NotNil(t, after)
	assert.Len(t, mock.GetFolderCalls(), 1)
	assert.Equal(t, []string{"tokio"}, after.SubFolderIDs)
	// прежний снимок не меняется
	assert.Empty(t, before.SubFolderIDs)

	subs := nav.FetchSubFolders(ctx, after)
	require.Len(t, subs, 1)
	assert.Equal(t, "Tokio", subs[0].Name)
	assert.Len(t, mock.GetFolderCalls(), 1)
}

func TestCreateFolder_InRootWhileRootOpen(t *testing.T) {
	mock := newTreeAPI(sampleTree()...)
	mock.CreateFolderFunc = func(ctx context.Context, nf models.NewFolder) (*models.Folder, error) {
		return &models.Folder{ID: "top", Name: nf.Name}, nil
	}
	nav := NewNavigator(mock, newTestLogger())
	ctx := context.Background()

	nav.Navigate(ctx, nil, nil)
	nav.CreateFolder(ctx, models.NewFolder{Name: "Top"})

	assert.Len(t, nav.CurrentFolders(), 3)
	assert.Nil(t, nav.CurrentFolder())
}

func TestCreateFolder_ElsewhereLeavesScreen(t *testing.T) {
	mock := newTreeAPI(sampleTree()...)
	mock.CreateFolderFunc = func(ctx context.Context, nf models.NewFolder) (*models.Folder, error) {
		return &models.Folder{ID: "new", Name: nf.Name, ParentFolderID: nf.ParentFolderID}, nil
	}
	nav := NewNavigator(mock, newTestLogger())
	ctx := context.Background()

	nav.Navigate(ctx, nil, nil)
	nav.CreateFolder(ctx, models.NewFolder{Name: "Deep", ParentFolderID: strPtr("go")})

	assert.Len(t, nav.CurrentFolders(), 2)
}

func TestCreateFolder_Failures(t *testing.T) {
	mock := &FolderAPIMock{
		CreateFolderFunc: func(ctx context.Context, nf models.NewFolder) (*models.Folder, error) {
			return nil, errors.New("server error (400): duplicate name")
		},
	}
	nav := NewNavigator(mock, newTestLogger())
	ctx := context.Background()

	// Пустое имя не доходит до сервера
	assert.Nil(t, nav.CreateFolder(ctx, models.NewFolder{Name: "  "}))
	assert.Empty(t, mock.CreateFolderCalls())
	assert.Contains(t, nav.Err(), "name cannot be empty")

	assert.Nil(t, nav.CreateFolder(ctx, models.NewFolder{Name: "Docs"}))
	assert.Len(t, mock.CreateFolderCalls(), 1)
	assert.Contains(t, nav.Err(), "duplicate name")
}

func TestReset(t *testing.T) {
	mock := newTreeAPI(sampleTree()...)
	nav := NewNavigator(mock, newTestLogger())
	ctx := context.Background()

	nav.Navigate(ctx, strPtr("go"), nil)
	nav.FetchFolder(ctx, "missing")
	require.NotEmpty(t, nav.Err())

	nav.Reset()

	assert.Empty(t, nav.Err())
	assert.Empty(t, nav.CurrentFolders())
	assert.Nil(t, nav.CurrentFolder())

	calls := len(mock.GetFolderCalls())
	nav.FetchFolder(ctx, "go")
	assert.Len(t, mock.GetFolderCalls(), calls+1)
}

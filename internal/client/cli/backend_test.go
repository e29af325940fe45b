package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	dto "github.com/iudanet/resorg/pkg/api"
)

// testBackend REST сервер в памяти с тем же набором эндпоинтов, что и настоящий
type testBackend struct {
	server    *httptest.Server
	folders   map[string]*dto.Folder
	resources map[string]*dto.Resource
	requests  []*http.Request
	bodies    map[string][]string
	order     []string
	mu        sync.Mutex
	nextID    int
	failRoot  bool
}

func newTestBackend(t *testing.T) *testBackend {
	t.Helper()

	b := &testBackend{
		folders:   make(map[string]*dto.Folder),
		resources: make(map[string]*dto.Resource),
		bodies:    make(map[string][]string),
	}
	b.seed()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/folder/parent/{$}", b.foldersByParent)
	mux.HandleFunc("GET /api/folder/parent/{id}", b.foldersByParent)
	mux.HandleFunc("GET /api/folder/{id}", b.getFolder)
	mux.HandleFunc("POST /api/folder", b.createFolder)
	mux.HandleFunc("GET /api/resource/root", b.listResources(func(r *dto.Resource) bool { return inRoot(r.FolderID) }))
	mux.HandleFunc("GET /api/resource/favorites", b.listResources(func(r *dto.Resource) bool { return r.Favorite }))
	mux.HandleFunc("GET /api/resource/recents", b.recents)
	mux.HandleFunc("GET /api/resource/folder/{id}", b.folderResources)
	mux.HandleFunc("GET /api/resource/{id}", b.getResource)
	mux.HandleFunc("POST /api/resource", b.createResource)
	mux.HandleFunc("PUT /api/resource/{id}", b.updateResource)
	mux.HandleFunc("PUT /api/resource/favorite/{id}", b.setFavorite)
	mux.HandleFunc("PUT /api/resource/folderid/{id}", b.moveResource)
	mux.HandleFunc("DELETE /api/resource/{id}", b.deleteResource)

	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests = append(b.requests, r.Clone(r.Context()))
		b.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(b.server.Close)

	return b
}

func strPtr(s string) *string { return &s }

func inRoot(id *string) bool { return id == nil || *id == "" }

func (b *testBackend) seed() {
	b.folders["work"] = &dto.Folder{ID: "work", Name: "Work", SubFolderIDs: []string{"go"}}
	b.folders["go"] = &dto.Folder{ID: "go", Name: "Go", ParentFolderID: strPtr("work"), SubFolderIDs: []string{}}
	b.folders["personal"] = &dto.Folder{ID: "personal", Name: "Personal", SubFolderIDs: []string{}}

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, r := range []*dto.Resource{
		{ID: "r1", Name: "Go docs", Type: "Url", Value: "https://go.dev/doc", FolderID: strPtr("work")},
		{ID: "r2", Name: "errgroup", Type: "Code", Value: "var g errgroup.Group\n_ = g.Wait()", FolderID: strPtr("work")},
		{ID: "r3", Name: "Note", Type: "Text", Value: "buy milk", Favorite: true},
		{ID: "r4", Name: "Tour", Type: "Url", Value: "https://go.dev/tour", FolderID: strPtr("go")},
	} {
		r.CreatedOn = created
		created = created.Add(time.Hour)
		b.resources[r.ID] = r
		b.order = append(b.order, r.ID)
	}
}

func (b *testBackend) url() string { return b.server.URL + "/api/" }

func (b *testBackend) resource(id string) *dto.Resource {
	b.mu.Lock()
	defer b.mu.Unlock()
	if r, ok := b.resources[id]; ok {
		cp := *r
		return &cp
	}
	return nil
}

func (b *testBackend) folder(id string) *dto.Folder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if f, ok := b.folders[id]; ok {
		cp := *f
		return &cp
	}
	return nil
}

// requestsTo возвращает запросы с данным методом и префиксом пути
func (b *testBackend) requestsTo(method, pathPrefix string) []*http.Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []*http.Request
	for _, r := range b.requests {
		if r.Method == method && strings.HasPrefix(r.URL.Path, pathPrefix) {
			out = append(out, r)
		}
	}
	return out
}

func (b *testBackend) lastBody(key string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	bodies := b.bodies[key]
	if len(bodies) == 0 {
		return ""
	}
	return bodies[len(bodies)-1]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func notFound(w http.ResponseWriter, what string) {
	writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: what + " not found"})
}

func (b *testBackend) decode(w http.ResponseWriter, r *http.Request, key string, v any) bool {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "invalid json"})
		return false
	}
	b.bodies[key] = append(b.bodies[key], string(raw))
	if err := json.Unmarshal(raw, v); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "invalid json"})
		return false
	}
	return true
}

func (b *testBackend) foldersByParent(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	parent := r.PathValue("id")
	if parent == "" && b.failRoot {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "database unavailable"})
		return
	}

	out := []*dto.Folder{}
	for _, f := range b.folders {
		if (parent == "" && inRoot(f.ParentFolderID)) || (f.ParentFolderID != nil && *f.ParentFolderID == parent) {
			out = append(out, f)
		}
	}
	slices.SortFunc(out, func(a, c *dto.Folder) int { return strings.Compare(a.ID, c.ID) })
	writeJSON(w, http.StatusOK, out)
}

func (b *testBackend) getFolder(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	f, ok := b.folders[r.PathValue("id")]
	if !ok {
		notFound(w, "folder")
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (b *testBackend) createFolder(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var req dto.CreateFolderRequest
	if !b.decode(w, r, "POST folder", &req) {
		return
	}

	b.nextID++
	f := &dto.Folder{
		ID:             fmt.Sprintf("f-%d", b.nextID),
		Name:           req.Name,
		ParentFolderID: req.ParentFolderID,
		SubFolderIDs:   []string{},
	}
	b.folders[f.ID] = f
	if !inRoot(req.ParentFolderID) {
		parent, ok := b.folders[*req.ParentFolderID]
		if !ok {
			notFound(w, "parent folder")
			return
		}
		parent.SubFolderIDs = append(parent.SubFolderIDs, f.ID)
	}
	writeJSON(w, http.StatusCreated, f)
}

func (b *testBackend) listResources(match func(*dto.Resource) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		out := []*dto.Resource{}
		for _, id := range b.order {
			if res, ok := b.resources[id]; ok && match(res) {
				out = append(out, res)
			}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func (b *testBackend) folderResources(w http.ResponseWriter, r *http.Request) {
	folderID := r.PathValue("id")
	b.listResources(func(res *dto.Resource) bool {
		return res.FolderID != nil && *res.FolderID == folderID
	})(w, r)
}

func (b *testBackend) recents(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := []*dto.Resource{}
	for i := len(b.order) - 1; i >= 0; i-- {
		if res, ok := b.resources[b.order[i]]; ok {
			out = append(out, res)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (b *testBackend) getResource(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	res, ok := b.resources[r.PathValue("id")]
	if !ok {
		notFound(w, "resource")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (b *testBackend) createResource(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var req dto.CreateResourceRequest
	if !b.decode(w, r, "POST resource", &req) {
		return
	}

	b.nextID++
	res := &dto.Resource{
		ID:          fmt.Sprintf("res-%d", b.nextID),
		FolderID:    req.FolderID,
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Value:       req.Value,
		CreatedOn:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	b.resources[res.ID] = res
	b.order = append(b.order, res.ID)
	writeJSON(w, http.StatusCreated, res)
}

func (b *testBackend) updateResource(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	res, ok := b.resources[r.PathValue("id")]
	if !ok {
		notFound(w, "resource")
		return
	}

	var req dto.UpdateResourceRequest
	if !b.decode(w, r, "PUT resource", &req) {
		return
	}
	if req.Name != nil {
		res.Name = *req.Name
	}
	if req.Description != nil {
		res.Description = req.Description
	}
	if req.Type != nil {
		res.Type = *req.Type
	}
	if req.Value != nil {
		res.Value = *req.Value
	}
	writeJSON(w, http.StatusOK, res)
}

func (b *testBackend) setFavorite(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	res, ok := b.resources[r.PathValue("id")]
	if !ok {
		notFound(w, "resource")
		return
	}

	var req dto.FavoriteRequest
	if !b.decode(w, r, "PUT favorite", &req) {
		return
	}
	res.Favorite = req.Favorite
	w.WriteHeader(http.StatusNoContent)
}

func (b *testBackend) moveResource(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	res, ok := b.resources[r.PathValue("id")]
	if !ok {
		notFound(w, "resource")
		return
	}

	var req dto.MoveResourceRequest
	if !b.decode(w, r, "PUT folderid", &req) {
		return
	}
	res.FolderID = req.FolderID
	w.WriteHeader(http.StatusNoContent)
}

func (b *testBackend) deleteResource(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := r.PathValue("id")
	if _, ok := b.resources[id]; !ok {
		notFound(w, "resource")
		return
	}
	delete(b.resources, id)
	w.WriteHeader(http.StatusNoContent)
}

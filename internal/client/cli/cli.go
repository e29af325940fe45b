// Package cli реализует команды клиента поверх навигатора папок и хранилища ресурсов.
// Последняя открытая папка играет роль экрана: изменения сверяются с ее списком.
package cli

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/iudanet/resorg/internal/client/folders"
	"github.com/iudanet/resorg/internal/client/iocli"
	"github.com/iudanet/resorg/internal/client/resources"
	"github.com/iudanet/resorg/internal/client/settings"
	"github.com/iudanet/resorg/internal/client/storage"
	"github.com/iudanet/resorg/internal/models"
)

const previewLen = 60

type Cli struct {
	io        iocli.IO
	navigator *folders.Navigator
	store     *resources.Store
	settings  *settings.Service
	metadata  storage.MetadataStorage
	logger    *slog.Logger
}

func New(
	io iocli.IO,
	navigator *folders.Navigator,
	store *resources.Store,
	settingsService *settings.Service,
	metadata storage.MetadataStorage,
	logger *slog.Logger,
) *Cli {
	return &Cli{
		io:        io,
		navigator: navigator,
		store:     store,
		settings:  settingsService,
		metadata:  metadata,
		logger:    logger,
	}
}

// lastFolder возвращает последнюю открытую папку (nil = корень)
func (c *Cli) lastFolder(ctx context.Context) *string {
	id, err := c.metadata.GetLastFolder(ctx)
	if err != nil {
		// Не прерываем выполнение: открываем корень
		c.logger.Warn("failed to read last folder", "error", err)
		return nil
	}
	return models.FolderRef(id)
}

func (c *Cli) rememberFolder(ctx context.Context, folderID *string) {
	id := ""
	if folderID != nil {
		id = *folderID
	}
	if err := c.metadata.SaveLastFolder(ctx, id); err != nil {
		c.logger.Warn("failed to save last folder", "folder_id", id, "error", err)
	}
}

// openScreen загружает ресурсы последней открытой папки
func (c *Cli) openScreen(ctx context.Context) *string {
	screen := c.lastFolder(ctx)
	c.store.Load(ctx, screen)
	return screen
}

// printScreen печатает список ресурсов открытой папки после изменения
func (c *Cli) printScreen(ctx context.Context, screen *string) {
	path := c.navigator.BuildBreadcrumbPath(ctx, screen)
	c.io.Println()
	c.io.Printf("=== %s ===\n", path.String())
	c.printResources(c.store.Current())
}

func (c *Cli) printFolders(list []*models.Folder) {
	if len(list) == 0 {
		return
	}
	c.io.Println("Folders:")
	for _, f := range list {
		c.io.Printf("  %s/  (%s)\n", f.Name, f.ID)
	}
	c.io.Println()
}

func (c *Cli) printResources(list []*models.Resource) {
	if len(list) == 0 {
		c.io.Println("No resources.")
		return
	}

	c.io.Printf("Resources (%d):\n", len(list))
	for i, r := range list {
		star := ""
		if r.Favorite {
			star = " *"
		}
		c.io.Printf("%d. %s%s\n", i+1, r.Name, star)
		c.io.Printf("   ID:    %s\n", r.ID)
		c.io.Printf("   Type:  %s\n", r.Type)
		c.io.Printf("   Value: %s\n", preview(r.Value))
		if r.Description != nil && *r.Description != "" {
			c.io.Printf("   Notes: %s\n", preview(*r.Description))
		}
	}
}

// printWarnings выводит ошибки, сохраненные навигатором и хранилищем
func (c *Cli) printWarnings() {
	for _, msg := range []string{c.navigator.Err(), c.store.Err()} {
		if msg != "" {
			c.io.Printf("Warning: %s\n", msg)
		}
	}
}

func (c *Cli) confirm(prompt string) (bool, error) {
	answer, err := c.io.ReadInput(prompt)
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "yes" || answer == "y", nil
}

// parseFolderArg: "", "/" и "root" означают корень
func parseFolderArg(arg string) *string {
	arg = strings.TrimSpace(arg)
	if arg == "/" || strings.EqualFold(arg, "root") {
		return nil
	}
	return models.FolderRef(arg)
}

// folderLabel имя папки для сообщений
func (c *Cli) folderLabel(ctx context.Context, folderID *string) string {
	if models.SameFolder(folderID, nil) {
		return "Root"
	}
	if f := c.navigator.FetchFolder(ctx, *folderID); f != nil {
		return f.Name
	}
	return *folderID
}

// preview первая строка значения, обрезанная до previewLen символов
func preview(s string) string {
	line, _, multiline := strings.Cut(strings.TrimSpace(s), "\n")
	if utf8.RuneCountInString(line) > previewLen {
		return string([]rune(line)[:previewLen]) + "..."
	}
	if multiline {
		return line + " ..."
	}
	return line
}

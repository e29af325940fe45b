package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/resorg/internal/models"
)

// runMkdir создает папку в parentID (nil = корень) и показывает подпапки
// последней открытой папки
func (c *Cli) runMkdir(ctx context.Context, name string, parentID *string, parentSet bool) error {
	screen := c.lastFolder(ctx)
	if !parentSet {
		parentID = screen
	}

	c.navigator.Navigate(ctx, screen, nil)
	if c.navigator.CurrentFolder() == nil && screen != nil {
		// последняя папка исчезла: экран это корень
		screen = nil
		c.navigator.Navigate(ctx, nil, nil)
		if !parentSet {
			parentID = nil
		}
	}
	c.navigator.ClearErr()

	folder := c.navigator.CreateFolder(ctx, models.NewFolder{Name: name, ParentFolderID: parentID})
	if folder == nil {
		return fmt.Errorf("failed to create folder: %s", c.navigator.Err())
	}

	c.io.Printf("Folder %q created in %s with ID %s\n", folder.Name, c.folderLabel(ctx, parentID), folder.ID)
	c.io.Println()
	c.io.Printf("=== %s ===\n", c.navigator.BuildBreadcrumbPath(ctx, screen).String())
	c.printFolders(c.navigator.CurrentFolders())

	return nil
}

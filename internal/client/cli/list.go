package cli

import (
	"context"

	"github.com/iudanet/resorg/internal/models"
)

// runList открывает папку (nil = корень): подпапки, хлебные крошки и ресурсы
func (c *Cli) runList(ctx context.Context, folderID *string) error {
	view := c.navigator.Navigate(ctx, folderID, func(ctx context.Context, id *string) {
		c.store.Load(ctx, id)
	})

	if view.NotFound {
		c.io.Printf("Folder %s not found.\n", *folderID)
		return nil
	}

	c.rememberFolder(ctx, folderID)

	c.io.Printf("=== %s ===\n", view.Path.String())
	c.io.Println()
	c.printFolders(view.SubFolders)
	c.printResources(c.store.Current())
	c.printWarnings()

	return nil
}

func (c *Cli) runFavorites(ctx context.Context) error {
	c.io.Println("=== Favorites ===")
	c.io.Println()
	c.printResources(c.store.LoadFavorites(ctx))
	c.printWarnings()
	return nil
}

func (c *Cli) runRecents(ctx context.Context) error {
	c.io.Println("=== Recent Resources ===")
	c.io.Println()
	c.printResources(c.store.LoadRecents(ctx))
	c.printWarnings()
	return nil
}

func (c *Cli) runRecommended(ctx context.Context, refresh bool) error {
	c.io.Println("=== Recommended ===")
	c.io.Println()

	var items []models.Recommendation
	if refresh {
		items = c.store.RefreshRecommended(ctx)
	} else {
		items = c.store.LoadRecommended(ctx)
	}
	if len(items) == 0 {
		c.io.Println("No recommendations.")
	}
	for i, item := range items {
		c.io.Printf("%d. %s\n", i+1, item.Name)
		c.io.Printf("   Type:  %s\n", item.Type)
		c.io.Printf("   Value: %s\n", preview(item.Value))
		if item.Description != "" {
			c.io.Printf("   Notes: %s\n", preview(item.Description))
		}
	}
	c.printWarnings()

	return nil
}

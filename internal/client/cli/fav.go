package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runFav(ctx context.Context, id string) error {
	screen := c.openScreen(ctx)
	c.store.ClearErr()

	favorite, ok := c.store.ToggleFavorite(ctx, id)
	if !ok {
		return fmt.Errorf("failed to update favorite: %s", c.store.Err())
	}

	if favorite {
		c.io.Printf("Resource %s added to favorites.\n", id)
	} else {
		c.io.Printf("Resource %s removed from favorites.\n", id)
	}
	c.printScreen(ctx, screen)

	return nil
}

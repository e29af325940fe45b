package cli

import (
	"context"
	"fmt"
)

// runMove переносит ресурс в папку target (nil = корень)
func (c *Cli) runMove(ctx context.Context, id string, target *string) error {
	screen := c.openScreen(ctx)
	c.store.ClearErr()

	if !c.store.MoveResource(ctx, id, target) {
		return fmt.Errorf("failed to move resource: %s", c.store.Err())
	}

	c.io.Printf("Resource %s moved to %s\n", id, c.folderLabel(ctx, target))
	c.printScreen(ctx, screen)

	return nil
}

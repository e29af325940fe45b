package cli

import (
	"context"
	"fmt"
)

// runDelete удаляет ресурс после подтверждения (yes пропускает вопрос)
func (c *Cli) runDelete(ctx context.Context, id string, yes bool) error {
	screen := c.openScreen(ctx)
	c.store.ClearErr()

	if !yes {
		res := c.store.GetResource(ctx, id)
		if res == nil {
			return fmt.Errorf("resource not found with ID %s: %s", id, c.store.Err())
		}

		c.io.Println("About to delete:")
		c.io.Printf("  Name:  %s\n", res.Name)
		c.io.Printf("  Type:  %s\n", res.Type)
		c.io.Printf("  Value: %s\n", preview(res.Value))
		c.io.Println()

		ok, err := c.confirm("Are you sure you want to delete this resource? (yes/no): ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			c.io.Println("Deletion cancelled.")
			return nil
		}
	}

	if !c.store.DeleteResource(ctx, id) {
		return fmt.Errorf("failed to delete resource: %s", c.store.Err())
	}

	c.io.Printf("Resource %s deleted.\n", id)
	c.printScreen(ctx, screen)

	return nil
}

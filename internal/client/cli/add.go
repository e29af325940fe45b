package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/iudanet/resorg/internal/models"
)

type addOptions struct {
	FolderID    *string
	Name        string
	Type        string
	Value       string
	ValueFile   string
	Description string
	FolderSet   bool
}

// runAdd создает ресурс. Недостающие поля запрашиваются интерактивно.
// Папка по умолчанию последняя открытая.
func (c *Cli) runAdd(ctx context.Context, opts addOptions) error {
	screen := c.openScreen(ctx)
	c.store.ClearErr()

	target := screen
	if opts.FolderSet {
		target = opts.FolderID
	}

	interactive := opts.Name == ""
	if interactive {
		c.io.Println("=== Add Resource ===")
		c.io.Println()
	}

	var err error
	if opts.Name == "" {
		opts.Name, err = c.io.ReadInput("Name: ")
		if err != nil {
			return fmt.Errorf("failed to read name: %w", err)
		}
	}

	if opts.Type == "" {
		opts.Type, err = c.io.ReadInput("Type (url, code, text): ")
		if err != nil {
			return fmt.Errorf("failed to read type: %w", err)
		}
	}
	resType, err := models.ParseResourceType(opts.Type)
	if err != nil {
		return err
	}

	if opts.ValueFile != "" {
		content, err := os.ReadFile(opts.ValueFile)
		if err != nil {
			return fmt.Errorf("failed to read value file: %w", err)
		}
		opts.Value = strings.TrimRight(string(content), "\n")
	}
	if opts.Value == "" {
		opts.Value, err = c.io.ReadInput("Value: ")
		if err != nil {
			return fmt.Errorf("failed to read value: %w", err)
		}
	}

	if interactive && opts.Description == "" {
		opts.Description, err = c.io.ReadInput("Description (optional): ")
		if err != nil {
			return fmt.Errorf("failed to read description: %w", err)
		}
	}

	in := models.NewResource{
		FolderID: target,
		Name:     strings.TrimSpace(opts.Name),
		Type:     resType,
		Value:    opts.Value,
	}
	if d := strings.TrimSpace(opts.Description); d != "" {
		in.Description = &d
	}

	res := c.store.AddResource(ctx, in)
	if res == nil {
		return fmt.Errorf("failed to add resource: %s", c.store.Err())
	}

	c.io.Printf("Resource %q added to %s with ID %s\n", res.Name, c.folderLabel(ctx, target), res.ID)
	c.printScreen(ctx, screen)

	return nil
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/resorg/internal/models"
)

type editOptions struct {
	Name        *string
	Description *string
	Type        *string
	Value       *string
}

func (o editOptions) empty() bool {
	return o.Name == nil && o.Description == nil && o.Type == nil && o.Value == nil
}

// runEdit обновляет ресурс. Без флагов поля запрашиваются по очереди,
// пустой ввод оставляет значение без изменений.
func (c *Cli) runEdit(ctx context.Context, id string, opts editOptions) error {
	screen := c.openScreen(ctx)
	c.store.ClearErr()

	if opts.empty() {
		var err error
		opts, err = c.promptEdit(ctx, id)
		if err != nil {
			return err
		}
		if opts.empty() {
			c.io.Println("Nothing to update.")
			return nil
		}
	}

	patch := models.ResourcePatch{
		Name:        opts.Name,
		Description: opts.Description,
		Value:       opts.Value,
	}
	if opts.Type != nil {
		t, err := models.ParseResourceType(*opts.Type)
		if err != nil {
			return err
		}
		patch.Type = &t
	}

	res := c.store.UpdateResource(ctx, id, patch)
	if res == nil {
		return fmt.Errorf("failed to update resource: %s", c.store.Err())
	}

	if err := render(c.io, resourceTmpl, res); err != nil {
		return err
	}
	c.printScreen(ctx, screen)

	return nil
}

func (c *Cli) promptEdit(ctx context.Context, id string) (editOptions, error) {
	var opts editOptions

	current := c.store.GetResource(ctx, id)
	if current == nil {
		return opts, fmt.Errorf("resource %s not found: %s", id, c.store.Err())
	}
	c.store.ClearErr()

	c.io.Printf("=== Edit %s ===\n", current.Name)
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	ask := func(label, currentValue string) (*string, error) {
		input, err := c.io.ReadInput(fmt.Sprintf("%s [%s]: ", label, preview(currentValue)))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
		}
		if input == "" || input == currentValue {
			return nil, nil
		}
		return &input, nil
	}

	var err error
	if opts.Name, err = ask("Name", current.Name); err != nil {
		return opts, err
	}
	if opts.Type, err = ask("Type", string(current.Type)); err != nil {
		return opts, err
	}
	if opts.Value, err = ask("Value", current.Value); err != nil {
		return opts, err
	}
	description := ""
	if current.Description != nil {
		description = *current.Description
	}
	if opts.Description, err = ask("Description", description); err != nil {
		return opts, err
	}

	return opts, nil
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/resorg/internal/client/storage"
	"github.com/iudanet/resorg/internal/models"
)

type dataSourceOptions struct {
	ConnectionString string
	DatabaseName     string
	Disabled         bool
}

func (c *Cli) runDataSourceShow(ctx context.Context) error {
	ds, err := c.settings.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrDataSourceNotFound) {
			c.io.Println("No data source override configured. The server uses its default storage.")
			return nil
		}
		return err
	}
	return render(c.io, dataSourceTmpl, ds)
}

// runDataSourceSet сохраняет переопределение. Строка подключения
// запрашивается без эха, так как может содержать пароль.
func (c *Cli) runDataSourceSet(ctx context.Context, opts dataSourceOptions) error {
	var err error
	if opts.ConnectionString == "" {
		opts.ConnectionString, err = c.io.ReadPassword("Connection string (mongodb://...): ")
		if err != nil {
			return fmt.Errorf("failed to read connection string: %w", err)
		}
	}
	if opts.DatabaseName == "" {
		opts.DatabaseName, err = c.io.ReadInput("Database name: ")
		if err != nil {
			return fmt.Errorf("failed to read database name: %w", err)
		}
	}

	ds := &models.DataSource{
		ConnectionString: opts.ConnectionString,
		DatabaseName:     opts.DatabaseName,
		Enabled:          !opts.Disabled,
	}
	if err := c.settings.Save(ctx, ds); err != nil {
		return err
	}

	c.io.Println("✓ Data source override saved.")
	return c.runDataSourceShow(ctx)
}

func (c *Cli) runDataSourceEnable(ctx context.Context, enabled bool) error {
	if err := c.settings.SetEnabled(ctx, enabled); err != nil {
		if errors.Is(err, storage.ErrDataSourceNotFound) {
			return fmt.Errorf("no data source override configured. Run 'resorg datasource set' first")
		}
		return err
	}

	if enabled {
		c.io.Println("Data source override enabled.")
	} else {
		c.io.Println("Data source override disabled. The server uses its default storage.")
	}
	return nil
}

func (c *Cli) runDataSourceClear(ctx context.Context) error {
	if err := c.settings.Clear(ctx); err != nil {
		return err
	}
	c.io.Println("Data source override removed.")
	return nil
}

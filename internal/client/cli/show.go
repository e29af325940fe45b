package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runShow(ctx context.Context, id string) error {
	res := c.store.GetResource(ctx, id)
	if res == nil {
		return fmt.Errorf("resource not found with ID %s: %s", id, c.store.Err())
	}
	return render(c.io, resourceTmpl, res)
}

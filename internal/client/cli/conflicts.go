package cli

import (
	"context"
	"fmt"

	"github.com/greyhelm/sheetsync/internal/models"
)

func (c *Cli) runConflicts(ctx context.Context) error {
	records, err := c.conflicts.ListUnresolved(ctx)
	if err != nil {
		return err
	}
	return c.render(conflictListTemplate, records)
}

func (c *Cli) runResolve(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: sheetsync resolve <conflict-id> <local|server>")
	}

	id := args[0]
	choice := models.Resolution(args[1])
	if !choice.Valid() {
		return fmt.Errorf("unknown resolution %q: want local or server", args[1])
	}

	if err := c.engine.ResolveConflict(ctx, id, choice); err != nil {
		return err
	}

	switch choice {
	case models.ResolutionLocal:
		c.io.Println("✓ Kept your version; it will push on the next sync.")
	case models.ResolutionServer:
		c.io.Println("✓ Adopted the server version.")
	}
	return nil
}

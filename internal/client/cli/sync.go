package cli

import (
	"context"
	"errors"

	"github.com/greyhelm/sheetsync/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("Syncing...")

	result, err := c.engine.Sync(ctx)
	if err != nil {
		switch {
		case errors.Is(err, sync.ErrSyncInProgress):
			c.io.Println("A sync run is already in progress.")
			return nil
		case errors.Is(err, sync.ErrOffline):
			c.io.Println("Server unreachable; your changes stay queued locally.")
			return nil
		default:
			return err
		}
	}

	c.io.Println()
	c.io.Printf("✓ Sync complete: %d pushed, %d pulled\n", result.Pushed, result.Pulled)
	if result.Conflicts > 0 {
		c.io.Printf("⚠️  %d conflict(s) detected, run 'sheetsync conflicts' to review\n", result.Conflicts)
	}
	if result.Failed > 0 {
		c.io.Printf("⚠️  %d item(s) could not be pushed, run 'sheetsync status' for details\n", result.Failed)
	}
	return nil
}

// runWatch keeps syncing until interrupted: the connectivity monitor polls
// the server, a reconnect kicks an immediate run, and the engine ticks on its
// interval in between.
func (c *Cli) runWatch(ctx context.Context) error {
	if _, err := c.authService.Session(ctx); err != nil {
		return err
	}
	if c.monitor == nil {
		return errors.New("watch mode needs a connectivity monitor")
	}

	cancel := c.monitor.Subscribe(func(online bool) {
		if online {
			c.engine.Kick()
		}
	})
	defer cancel()

	c.io.Println("Watching for changes; press Ctrl+C to stop.")

	go c.monitor.Run(ctx)
	c.engine.Kick()
	c.engine.Run(ctx)
	return nil
}

func (c *Cli) runRetry(ctx context.Context) error {
	count, err := c.engine.RetryFailed(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		c.io.Println("No failed items to retry.")
		return nil
	}

	c.io.Printf("✓ Re-armed %d item(s) for the next sync run.\n", count)
	return c.runSync(ctx)
}

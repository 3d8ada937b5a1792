package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/greyhelm/sheetsync/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	session, err := c.authService.Session(ctx)
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		c.io.Println("Session: not authenticated")
		c.io.Println()
		c.io.Println("Run 'sheetsync login' to authenticate.")
	case err != nil:
		return fmt.Errorf("failed to load session: %w", err)
	default:
		c.io.Printf("Session: %s\n", session.Username)
		expiresAt := time.Unix(session.ExpiresAt, 0)
		if time.Now().After(expiresAt) {
			c.io.Println("Access token expired; it will be refreshed on next sync.")
		}
	}

	if c.monitor != nil {
		if c.monitor.CheckNow(ctx) {
			c.io.Println("Server:  reachable")
		} else {
			c.io.Println("Server:  unreachable (working offline)")
		}
	}

	c.io.Println()

	lastSync, err := c.engine.LastSyncedAt(ctx)
	if err != nil {
		return fmt.Errorf("failed to read sync state: %w", err)
	}
	if lastSync.IsZero() {
		c.io.Println("Last sync: never")
	} else {
		c.io.Printf("Last sync: %s\n", lastSync.Format(time.RFC3339))
	}

	if lastErr, err := c.engine.LastError(ctx); err == nil && lastErr != "" {
		c.io.Printf("Last sync error: %s\n", lastErr)
	}

	pending, err := c.engine.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending operations: %w", err)
	}
	if pending > 0 {
		c.io.Printf("⚠️  %d change(s) waiting to sync\n", pending)
	} else {
		c.io.Println("✓ No pending changes")
	}

	conflicts, err := c.engine.ConflictCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count conflicts: %w", err)
	}
	if conflicts > 0 {
		c.io.Printf("⚠️  %d unresolved conflict(s) — run 'sheetsync conflicts'\n", conflicts)
	}

	failed, err := c.engine.FailedItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to list failed operations: %w", err)
	}
	if len(failed) > 0 {
		c.io.Printf("⚠️  %d operation(s) gave up after repeated errors:\n", len(failed))
		for _, item := range failed {
			c.io.Printf("   - %s %s %s: %s\n", item.Action, item.EntityType, item.EntityID, item.LastError)
		}
		c.io.Println("Run 'sheetsync retry' to try them again.")
	}

	return nil
}

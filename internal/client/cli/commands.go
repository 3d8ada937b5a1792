package cli

import (
	"context"
	"fmt"
)

// Run dispatches one command invocation.
func (c *Cli) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.PrintUsage()
		return fmt.Errorf("no command given")
	}

	command, rest := args[0], args[1:]

	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "character":
		return c.runCharacter(ctx, rest)
	case "party":
		return c.runParty(ctx, rest)
	case "sync":
		return c.runSync(ctx)
	case "watch":
		return c.runWatch(ctx)
	case "conflicts":
		return c.runConflicts(ctx)
	case "resolve":
		return c.runResolve(ctx, rest)
	case "retry":
		return c.runRetry(ctx)
	case "help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage prints command help.
func (c *Cli) PrintUsage() {
	c.io.Printf("%s", usageTemplate)
}

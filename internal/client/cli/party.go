package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/greyhelm/sheetsync/internal/models"
)

func (c *Cli) runParty(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: sheetsync party <add|list|get|edit|delete> [id]")
	}

	switch args[0] {
	case "add":
		return c.runPartyAdd(ctx)
	case "list":
		return c.runPartyList(ctx)
	case "get":
		if len(args) < 2 {
			return fmt.Errorf("usage: sheetsync party get <id>")
		}
		return c.runPartyGet(ctx, args[1])
	case "edit":
		if len(args) < 2 {
			return fmt.Errorf("usage: sheetsync party edit <id>")
		}
		return c.runPartyEdit(ctx, args[1])
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: sheetsync party delete <id>")
		}
		return c.runPartyDelete(ctx, args[1])
	default:
		return fmt.Errorf("unknown party command: %s", args[0])
	}
}

func (c *Cli) runPartyAdd(ctx context.Context) error {
	session, err := c.authService.Session(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== New Party ===")
	c.io.Println()

	party := &models.Party{}

	if party.Name, err = c.io.ReadInput("Name: "); err != nil {
		return err
	}
	if party.Description, err = c.readString("Description", ""); err != nil {
		return err
	}

	members, err := c.readString("Member character IDs (comma-separated)", "")
	if err != nil {
		return err
	}
	party.MemberIDs = splitMemberIDs(members)

	if err := c.dataService.AddParty(ctx, session.UserID, party); err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("✓ Party created: %s\n", party.ID)
	return nil
}

func (c *Cli) runPartyList(ctx context.Context) error {
	records, err := c.dataService.ListParties(ctx)
	if err != nil {
		return err
	}
	return c.render(partyListTemplate, records)
}

func (c *Cli) runPartyGet(ctx context.Context, id string) error {
	record, err := c.dataService.GetParty(ctx, id)
	if err != nil {
		return err
	}
	return c.render(partyTemplate, record)
}

func (c *Cli) runPartyEdit(ctx context.Context, id string) error {
	record, err := c.dataService.GetParty(ctx, id)
	if err != nil {
		return err
	}
	party := record.Party

	c.io.Println("=== Edit Party ===")
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	if party.Name, err = c.readString("Name", party.Name); err != nil {
		return err
	}
	if party.Description, err = c.readString("Description", party.Description); err != nil {
		return err
	}

	members, err := c.readString("Member character IDs (comma-separated)", strings.Join(party.MemberIDs, ","))
	if err != nil {
		return err
	}
	party.MemberIDs = splitMemberIDs(members)

	if err := c.dataService.UpdateParty(ctx, &party); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Party updated.")
	return nil
}

func (c *Cli) runPartyDelete(ctx context.Context, id string) error {
	confirm, err := c.io.ReadInput(fmt.Sprintf("Delete party %s? [y/N]: ", id))
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "Y" {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.dataService.DeleteParty(ctx, id); err != nil {
		return err
	}

	c.io.Println("✓ Party deleted locally; the server copy goes on next sync.")
	return nil
}

func splitMemberIDs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if id := strings.TrimSpace(p); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

package cli

import (
	"context"
	"fmt"

	"github.com/greyhelm/sheetsync/internal/models"
)

// attributeNames is the prompt order for sheet attributes.
var attributeNames = []string{"STR", "DEX", "CON", "INT", "WIS", "CHA"}

func (c *Cli) runCharacter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: sheetsync character <add|list|get|edit|delete> [id]")
	}

	switch args[0] {
	case "add":
		return c.runCharacterAdd(ctx)
	case "list":
		return c.runCharacterList(ctx)
	case "get":
		if len(args) < 2 {
			return fmt.Errorf("usage: sheetsync character get <id>")
		}
		return c.runCharacterGet(ctx, args[1])
	case "edit":
		if len(args) < 2 {
			return fmt.Errorf("usage: sheetsync character edit <id>")
		}
		return c.runCharacterEdit(ctx, args[1])
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: sheetsync character delete <id>")
		}
		return c.runCharacterDelete(ctx, args[1])
	default:
		return fmt.Errorf("unknown character command: %s", args[0])
	}
}

func (c *Cli) runCharacterAdd(ctx context.Context) error {
	session, err := c.authService.Session(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== New Character ===")
	c.io.Println()

	character := &models.Character{Attributes: make(map[string]int)}

	if character.Name, err = c.io.ReadInput("Name: "); err != nil {
		return err
	}
	if character.Class, err = c.readString("Class", ""); err != nil {
		return err
	}
	if character.Ancestry, err = c.readString("Ancestry", ""); err != nil {
		return err
	}
	if character.Level, err = c.readInt("Level", 1); err != nil {
		return err
	}
	if character.MaxHP, err = c.readInt("Max HP", 10); err != nil {
		return err
	}
	if character.HitPoints, err = c.readInt("Current HP", character.MaxHP); err != nil {
		return err
	}

	for _, name := range attributeNames {
		value, err := c.readInt(name, 10)
		if err != nil {
			return err
		}
		character.Attributes[name] = value
	}

	if character.Notes, err = c.readString("Notes", ""); err != nil {
		return err
	}

	if err := c.dataService.AddCharacter(ctx, session.UserID, character); err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("✓ Character created: %s\n", character.ID)
	c.io.Println("The sheet will upload on the next sync.")
	return nil
}

func (c *Cli) runCharacterList(ctx context.Context) error {
	records, err := c.dataService.ListCharacters(ctx)
	if err != nil {
		return err
	}
	return c.render(characterListTemplate, records)
}

func (c *Cli) runCharacterGet(ctx context.Context, id string) error {
	record, err := c.dataService.GetCharacter(ctx, id)
	if err != nil {
		return err
	}
	return c.render(characterTemplate, record)
}

func (c *Cli) runCharacterEdit(ctx context.Context, id string) error {
	record, err := c.dataService.GetCharacter(ctx, id)
	if err != nil {
		return err
	}
	character := record.Character

	c.io.Println("=== Edit Character ===")
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	if character.Name, err = c.readString("Name", character.Name); err != nil {
		return err
	}
	if character.Class, err = c.readString("Class", character.Class); err != nil {
		return err
	}
	if character.Ancestry, err = c.readString("Ancestry", character.Ancestry); err != nil {
		return err
	}
	if character.Level, err = c.readInt("Level", character.Level); err != nil {
		return err
	}
	if character.MaxHP, err = c.readInt("Max HP", character.MaxHP); err != nil {
		return err
	}
	if character.HitPoints, err = c.readInt("Current HP", character.HitPoints); err != nil {
		return err
	}

	if character.Attributes == nil {
		character.Attributes = make(map[string]int)
	}
	for _, name := range attributeNames {
		current, ok := character.Attributes[name]
		if !ok {
			current = 10
		}
		value, err := c.readInt(name, current)
		if err != nil {
			return err
		}
		character.Attributes[name] = value
	}

	if character.Notes, err = c.readString("Notes", character.Notes); err != nil {
		return err
	}

	if err := c.dataService.UpdateCharacter(ctx, &character); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Character updated.")
	return nil
}

func (c *Cli) runCharacterDelete(ctx context.Context, id string) error {
	confirm, err := c.io.ReadInput(fmt.Sprintf("Delete character %s? [y/N]: ", id))
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "Y" {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.dataService.DeleteCharacter(ctx, id); err != nil {
		return err
	}

	c.io.Println("✓ Character deleted locally; the server copy goes on next sync.")
	return nil
}

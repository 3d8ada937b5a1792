// Package cli implements the interactive terminal client.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/greyhelm/sheetsync/internal/client/auth"
	"github.com/greyhelm/sheetsync/internal/client/connectivity"
	"github.com/greyhelm/sheetsync/internal/client/data"
	"github.com/greyhelm/sheetsync/internal/client/iocli"
	"github.com/greyhelm/sheetsync/internal/client/storage"
	"github.com/greyhelm/sheetsync/internal/client/sync"
)

type Cli struct {
	io          iocli.IO
	authService *auth.Service
	dataService data.Service
	engine      *sync.Engine
	conflicts   storage.ConflictStorage
	monitor     *connectivity.Monitor
}

func New(
	io iocli.IO,
	authService *auth.Service,
	dataService data.Service,
	engine *sync.Engine,
	conflicts storage.ConflictStorage,
	monitor *connectivity.Monitor,
) *Cli {
	return &Cli{
		io:          io,
		authService: authService,
		dataService: dataService,
		engine:      engine,
		conflicts:   conflicts,
		monitor:     monitor,
	}
}

// render executes a template against data and prints the result.
func (c *Cli) render(tmpl string, data any) error {
	t, err := template.New("out").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	c.io.Printf("%s", sb.String())
	return nil
}

// readInt prompts until a number is entered; empty input returns def.
func (c *Cli) readInt(prompt string, def int) (int, error) {
	for {
		input, err := c.io.ReadInput(fmt.Sprintf("%s [%d]: ", prompt, def))
		if err != nil {
			return 0, err
		}
		if input == "" {
			return def, nil
		}
		n, err := strconv.Atoi(input)
		if err != nil {
			c.io.Println("Please enter a number.")
			continue
		}
		return n, nil
	}
}

// readString prompts once; empty input returns def.
func (c *Cli) readString(prompt, def string) (string, error) {
	suffix := ": "
	if def != "" {
		suffix = fmt.Sprintf(" [%s]: ", def)
	}
	input, err := c.io.ReadInput(prompt + suffix)
	if err != nil {
		return "", err
	}
	if input == "" {
		return def, nil
	}
	return input, nil
}

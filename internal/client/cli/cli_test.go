package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/greyhelm/sheetsync/internal/client/api"
	"github.com/greyhelm/sheetsync/internal/client/auth"
	"github.com/greyhelm/sheetsync/internal/client/data"
	"github.com/greyhelm/sheetsync/internal/client/iocli"
	"github.com/greyhelm/sheetsync/internal/client/storage"
	"github.com/greyhelm/sheetsync/internal/client/storage/boltdb"
	"github.com/greyhelm/sheetsync/internal/client/sync"
	"github.com/greyhelm/sheetsync/pkg/api"
)

// scriptedIO pops ReadInput/ReadPassword answers from a list and collects
// all printed output for assertions.
type scriptedIO struct {
	mock   *iocli.IOMock
	out    strings.Builder
	inputs []string
}

func newScriptedIO(inputs ...string) *scriptedIO {
	s := &scriptedIO{inputs: inputs}
	pop := func(prompt string) (string, error) {
		if len(s.inputs) == 0 {
			return "", fmt.Errorf("no scripted input for prompt %q", prompt)
		}
		next := s.inputs[0]
		s.inputs = s.inputs[1:]
		return next, nil
	}
	s.mock = &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			fmt.Fprintln(&s.out, a...)
		},
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(&s.out, format, a...)
		},
		ReadInputFunc:    pop,
		ReadPasswordFunc: pop,
	}
	return s
}

func (s *scriptedIO) output() string {
	return s.out.String()
}

func newTestCli(t *testing.T, apiMock *httpClient.ClientAPIMock, stdio *scriptedIO) (*Cli, *boltdb.Storage) {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	if apiMock.ListEntitiesFunc == nil {
		apiMock.ListEntitiesFunc = func(ctx context.Context, token, entityType string) ([]api.EntityPayload, error) {
			return nil, nil
		}
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authService := auth.NewService(apiMock, store, logger)
	engine := sync.NewEngine(apiMock, store, store, store, store, authService, logger, sync.Options{})
	dataService := data.NewService(engine, store)

	return New(stdio.mock, authService, dataService, engine, store, nil), store
}

// loginTestUser seeds a persisted session so commands that need one work.
func loginTestUser(t *testing.T, store *boltdb.Storage) {
	t.Helper()
	require.NoError(t, store.SaveAuth(context.Background(), &storage.AuthData{
		Username:    "frodo",
		UserID:      "user-1",
		AccessToken: "test_token",
		ExpiresAt:   time.Now().Add(time.Hour).Unix(),
	}))
}

func TestRunUnknownCommand(t *testing.T) {
	stdio := newScriptedIO()
	cli, _ := newTestCli(t, &httpClient.ClientAPIMock{}, stdio)

	err := cli.Run(context.Background(), []string{"conjure"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
	assert.Contains(t, stdio.output(), "Usage:")
}

func TestRunNoCommand(t *testing.T) {
	stdio := newScriptedIO()
	cli, _ := newTestCli(t, &httpClient.ClientAPIMock{}, stdio)

	err := cli.Run(context.Background(), nil)

	assert.Error(t, err)
	assert.Contains(t, stdio.output(), "Usage:")
}

func TestRunRegister(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
			assert.Equal(t, "frodo", req.Username)
			return &api.RegisterResponse{UserID: "user-1", Message: "ok"}, nil
		},
	}
	stdio := newScriptedIO("frodo", "precious123", "precious123")
	cli, _ := newTestCli(t, apiMock, stdio)

	err := cli.Run(context.Background(), []string{"register"})

	require.NoError(t, err)
	assert.Len(t, apiMock.RegisterCalls(), 1)
	assert.Contains(t, stdio.output(), "Registration successful")
	assert.Contains(t, stdio.output(), "user-1")
}

func TestRunRegisterPasswordMismatch(t *testing.T) {
	stdio := newScriptedIO("frodo", "precious123", "myprecious1")
	cli, _ := newTestCli(t, &httpClient.ClientAPIMock{}, stdio)

	err := cli.Run(context.Background(), []string{"register"})

	assert.ErrorContains(t, err, "passwords do not match")
}

func TestRunCharacterAddAndList(t *testing.T) {
	stdio := newScriptedIO(
		"Aragorn", // name
		"Ranger",  // class
		"Human",   // ancestry
		"5",       // level
		"42",      // max hp
		"",        // current hp, keep default
		"16", "14", "14", "11", "12", "13", // STR..CHA
		"Heir of Isildur", // notes
	)
	cli, store := newTestCli(t, &httpClient.ClientAPIMock{}, stdio)
	loginTestUser(t, store)

	err := cli.Run(context.Background(), []string{"character", "add"})
	require.NoError(t, err)
	assert.Contains(t, stdio.output(), "Character created")

	err = cli.Run(context.Background(), []string{"character", "list"})
	require.NoError(t, err)
	assert.Contains(t, stdio.output(), "Aragorn (Ranger 5)")
	assert.Contains(t, stdio.output(), "pending")
}

func TestRunCharacterAddRequiresSession(t *testing.T) {
	stdio := newScriptedIO()
	cli, _ := newTestCli(t, &httpClient.ClientAPIMock{}, stdio)

	err := cli.Run(context.Background(), []string{"character", "add"})

	assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
}

func TestRunCharacterDeleteCancelled(t *testing.T) {
	stdio := newScriptedIO("n")
	cli, _ := newTestCli(t, &httpClient.ClientAPIMock{}, stdio)

	err := cli.Run(context.Background(), []string{"character", "delete", "char-1"})

	require.NoError(t, err)
	assert.Contains(t, stdio.output(), "Cancelled")
}

func TestRunPartyAddAndGet(t *testing.T) {
	stdio := newScriptedIO(
		"Fellowship",          // name
		"Nine walkers",        // description
		"char-1, char-2,",     // member ids, trailing comma tolerated
	)
	cli, store := newTestCli(t, &httpClient.ClientAPIMock{}, stdio)
	loginTestUser(t, store)

	err := cli.Run(context.Background(), []string{"party", "add"})
	require.NoError(t, err)

	out := stdio.output()
	idx := strings.Index(out, "Party created: ")
	require.GreaterOrEqual(t, idx, 0)
	id := strings.TrimSpace(strings.SplitN(out[idx+len("Party created: "):], "\n", 2)[0])

	err = cli.Run(context.Background(), []string{"party", "get", id})
	require.NoError(t, err)
	assert.Contains(t, stdio.output(), "Fellowship")
	assert.Contains(t, stdio.output(), "- char-2")
}

func TestRunSyncOffline(t *testing.T) {
	stdio := newScriptedIO()
	cli, _ := newTestCli(t, &httpClient.ClientAPIMock{}, stdio)
	cli.engine.SetOnlineCheck(func() bool { return false })

	err := cli.Run(context.Background(), []string{"sync"})

	require.NoError(t, err)
	assert.Contains(t, stdio.output(), "Server unreachable")
}

func TestRunSyncReportsResult(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{}
	stdio := newScriptedIO()
	cli, store := newTestCli(t, apiMock, stdio)
	loginTestUser(t, store)

	err := cli.Run(context.Background(), []string{"sync"})

	require.NoError(t, err)
	assert.Contains(t, stdio.output(), "Sync complete: 0 pushed, 0 pulled")
}

func TestRunResolveRejectsUnknownChoice(t *testing.T) {
	stdio := newScriptedIO()
	cli, _ := newTestCli(t, &httpClient.ClientAPIMock{}, stdio)

	err := cli.Run(context.Background(), []string{"resolve", "conflict-1", "coinflip"})

	assert.ErrorContains(t, err, "unknown resolution")
}

func TestRunConflictsEmpty(t *testing.T) {
	stdio := newScriptedIO()
	cli, _ := newTestCli(t, &httpClient.ClientAPIMock{}, stdio)

	err := cli.Run(context.Background(), []string{"conflicts"})

	require.NoError(t, err)
	assert.Contains(t, stdio.output(), "No conflicts")
}

func TestRunRetryNothingToDo(t *testing.T) {
	stdio := newScriptedIO()
	cli, _ := newTestCli(t, &httpClient.ClientAPIMock{}, stdio)

	err := cli.Run(context.Background(), []string{"retry"})

	require.NoError(t, err)
	assert.Contains(t, stdio.output(), "No failed items")
}

func TestRunStatusNotAuthenticated(t *testing.T) {
	stdio := newScriptedIO()
	cli, _ := newTestCli(t, &httpClient.ClientAPIMock{}, stdio)

	err := cli.Run(context.Background(), []string{"status"})

	require.NoError(t, err)
	out := stdio.output()
	assert.Contains(t, out, "not authenticated")
	assert.Contains(t, out, "Last sync: never")
	assert.Contains(t, out, "No pending changes")
}

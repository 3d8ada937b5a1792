package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/greyhelm/sheetsync/internal/client/api"
	"github.com/greyhelm/sheetsync/internal/client/auth"
	"github.com/greyhelm/sheetsync/internal/client/cli"
	"github.com/greyhelm/sheetsync/internal/client/connectivity"
	"github.com/greyhelm/sheetsync/internal/client/data"
	"github.com/greyhelm/sheetsync/internal/client/iocli"
	"github.com/greyhelm/sheetsync/internal/client/storage"
	"github.com/greyhelm/sheetsync/internal/client/storage/boltdb"
	"github.com/greyhelm/sheetsync/internal/client/storage/sqlite"
	"github.com/greyhelm/sheetsync/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const probeInterval = 30 * time.Second

// clientStore is what both local backends provide.
type clientStore interface {
	storage.AuthStorage
	storage.MirrorStorage
	storage.QueueStorage
	storage.ConflictStorage
	storage.MetadataStorage
	io.Closer
}

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "sheetsync-client.db", "Path to local database")
	backend := flag.String("backend", "bolt", "Local storage backend: bolt or sqlite")
	lww := flag.Bool("lww", false, "Resolve conflicts by last write wins instead of asking")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(*serverURL, *dbPath, *backend, *lww, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(serverURL, dbPath, backend string, lww bool, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	store, err := openStore(ctx, backend, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	apiClient := api.NewClient(serverURL)

	authService := auth.NewService(apiClient, store, logger)

	monitor := connectivity.NewMonitor(apiClient.Health, probeInterval, logger)

	opts := sync.Options{}
	if lww {
		opts.Mode = sync.ConflictModeLastWriteWins
	}

	engine := sync.NewEngine(apiClient, store, store, store, store, authService, logger, opts)
	engine.SetOnlineCheck(func() bool {
		return monitor.CheckNow(ctx)
	})

	dataService := data.NewService(engine, store)

	c := cli.New(iocli.NewStdio(), authService, dataService, engine, store, monitor)

	return c.Run(ctx, args)
}

func openStore(ctx context.Context, backend, dbPath string) (clientStore, error) {
	switch backend {
	case "bolt":
		return boltdb.New(ctx, dbPath)
	case "sqlite":
		return sqlite.New(ctx, dbPath)
	default:
		return nil, fmt.Errorf("unknown backend %q (want bolt or sqlite)", backend)
	}
}

func printVersion() {
	fmt.Printf("SheetSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}

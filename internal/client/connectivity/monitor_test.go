package connectivity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMonitorStartsOffline(t *testing.T) {
	m := NewMonitor(func(ctx context.Context) error { return nil }, time.Minute, testLogger())
	assert.False(t, m.Online())
}

func TestCheckNowTransitions(t *testing.T) {
	var probeErr atomic.Value

	m := NewMonitor(func(ctx context.Context) error {
		if err, _ := probeErr.Load().(error); err != nil {
			return err
		}
		return nil
	}, time.Minute, testLogger())

	require.True(t, m.CheckNow(context.Background()))
	assert.True(t, m.Online())

	probeErr.Store(errors.New("connection refused"))
	require.False(t, m.CheckNow(context.Background()))
	assert.False(t, m.Online())
}

func TestSubscribeNotifiesOnEdgeOnly(t *testing.T) {
	online := atomic.Bool{}

	m := NewMonitor(func(ctx context.Context) error {
		if online.Load() {
			return nil
		}
		return errors.New("down")
	}, time.Minute, testLogger())

	var notifications []bool
	cancel := m.Subscribe(func(up bool) {
		notifications = append(notifications, up)
	})

	// Repeated offline probes produce no notifications.
	m.CheckNow(context.Background())
	m.CheckNow(context.Background())
	assert.Empty(t, notifications)

	// Reconnect edge fires once.
	online.Store(true)
	m.CheckNow(context.Background())
	m.CheckNow(context.Background())
	require.Equal(t, []bool{true}, notifications)

	// Disconnect edge fires again.
	online.Store(false)
	m.CheckNow(context.Background())
	require.Equal(t, []bool{true, false}, notifications)

	// Cancelled subscriptions go quiet.
	cancel()
	online.Store(true)
	m.CheckNow(context.Background())
	assert.Equal(t, []bool{true, false}, notifications)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	m := NewMonitor(func(ctx context.Context) error { return nil }, time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	// Let at least one probe land, then stop.
	assert.Eventually(t, m.Online, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}

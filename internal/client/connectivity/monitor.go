// Package connectivity tracks whether the sync server is reachable.
//
// The client never tries to observe the OS network state; reachability is
// defined as "the server's health endpoint answers". The monitor polls that
// probe and exposes the latest verdict plus edge notifications, which the
// sync engine uses to trigger a run when connectivity returns.
package connectivity

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// ProbeFunc checks server reachability. A nil error means online.
type ProbeFunc func(ctx context.Context) error

const defaultProbeTimeout = 5 * time.Second

// Monitor polls a probe and reports online/offline transitions.
type Monitor struct {
	probe    ProbeFunc
	logger   *slog.Logger
	subs     map[int]func(online bool)
	interval time.Duration
	nextSub  int
	mu       sync.Mutex
	online   atomic.Bool
}

// NewMonitor creates a monitor. It starts offline; the first probe runs when
// Run is called or CheckNow is invoked.
func NewMonitor(probe ProbeFunc, interval time.Duration, logger *slog.Logger) *Monitor {
	return &Monitor{
		probe:    probe,
		interval: interval,
		logger:   logger,
		subs:     make(map[int]func(online bool)),
	}
}

// Online returns the latest probe verdict.
func (m *Monitor) Online() bool {
	return m.online.Load()
}

// Subscribe registers a callback invoked on every online/offline transition.
// The returned function cancels the subscription.
func (m *Monitor) Subscribe(fn func(online bool)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

// CheckNow probes immediately and returns the verdict, notifying subscribers
// if the state changed.
func (m *Monitor) CheckNow(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, defaultProbeTimeout)
	defer cancel()

	online := m.probe(probeCtx) == nil
	m.setOnline(online)
	return online
}

// Run polls the probe until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	m.CheckNow(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.CheckNow(ctx)
		}
	}
}

func (m *Monitor) setOnline(online bool) {
	if m.online.Swap(online) == online {
		return
	}

	if online {
		m.logger.Info("server reachable")
	} else {
		m.logger.Info("server unreachable, working offline")
	}

	m.mu.Lock()
	subs := make([]func(bool), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	// Callbacks run outside the lock so a subscriber may Subscribe/cancel.
	for _, fn := range subs {
		fn(online)
	}
}

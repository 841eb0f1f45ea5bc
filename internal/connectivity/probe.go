package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
)

// Pinger is the transport probe used by [ProbeMonitor]. The HTTP adapter's
// health check satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProbeMonitor implements [Monitor] by pinging the remote answer store on a
// ticker. The monitor starts pessimistic: it reports offline until the first
// successful probe.
type ProbeMonitor struct {
	pinger Pinger
	logger *logger.Logger

	mu      sync.Mutex
	online  bool
	subs    map[int]func(online bool)
	nextSub int
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewProbeMonitor creates a ProbeMonitor that checks reachability via pinger.
// The monitor is idle until Start is called.
func NewProbeMonitor(pinger Pinger, log *logger.Logger) *ProbeMonitor {
	return &ProbeMonitor{
		pinger: pinger,
		logger: log,
		subs:   make(map[int]func(online bool)),
	}
}

// Start stops any previously running probe loop, performs an immediate probe,
// then launches a background goroutine that probes every interval. If interval
// is zero or negative it defaults to 30 seconds. The goroutine exits when ctx
// is cancelled or Stop is called.
func (m *ProbeMonitor) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	m.Stop()

	m.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	m.probe(jobCtx)

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				m.probe(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has fully exited.
// Safe to call when the monitor is not running (no-op in that case).
func (m *ProbeMonitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

// Online implements [Monitor].
func (m *ProbeMonitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Subscribe implements [Monitor].
func (m *ProbeMonitor) Subscribe(fn func(online bool)) (cancel func()) {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

func (m *ProbeMonitor) probe(ctx context.Context) {
	err := m.pinger.Ping(ctx)
	online := err == nil

	m.mu.Lock()
	changed := online != m.online
	m.online = online
	var subs []func(online bool)
	if changed {
		subs = make([]func(online bool), 0, len(m.subs))
		for _, fn := range m.subs {
			subs = append(subs, fn)
		}
	}
	m.mu.Unlock()

	if !changed {
		return
	}

	if online {
		m.logger.Info().Str("func", "ProbeMonitor.probe").Msg("remote store is reachable again")
	} else {
		m.logger.Warn().Str("func", "ProbeMonitor.probe").Err(err).Msg("remote store is unreachable")
	}

	// callbacks run outside the lock so subscribers may call Online()
	for _, fn := range subs {
		fn(online)
	}
}

package connectivity

import "sync"

// ManualMonitor is a [Monitor] whose state is flipped by hand. It backs tests
// and the demo client, where reachability is driven by the caller instead of
// a network probe.
type ManualMonitor struct {
	mu      sync.Mutex
	online  bool
	subs    map[int]func(online bool)
	nextSub int
}

// NewManualMonitor creates a ManualMonitor with the given initial state.
func NewManualMonitor(online bool) *ManualMonitor {
	return &ManualMonitor{
		online: online,
		subs:   make(map[int]func(online bool)),
	}
}

// Online implements [Monitor].
func (m *ManualMonitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Subscribe implements [Monitor].
func (m *ManualMonitor) Subscribe(fn func(online bool)) (cancel func()) {
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

// SetOnline flips the reachability state. Subscribers are notified only on an
// actual transition.
func (m *ManualMonitor) SetOnline(online bool) {
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

	for _, fn := range subs {
		fn(online)
	}
}

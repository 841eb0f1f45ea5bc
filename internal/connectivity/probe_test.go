package connectivity

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
)

// flakyPinger is a Pinger whose result is flipped by hand.
type flakyPinger struct {
	mu  sync.Mutex
	err error
}

func (f *flakyPinger) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *flakyPinger) setErr(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

func TestProbeMonitor_StartsOfflineUntilFirstProbe(t *testing.T) {
	pinger := &flakyPinger{}
	monitor := NewProbeMonitor(pinger, logger.Nop())

	assert.False(t, monitor.Online())

	monitor.Start(context.Background(), 5*time.Millisecond)
	defer monitor.Stop()

	// первый пинг выполняется синхронно в Start
	assert.True(t, monitor.Online())
}

func TestProbeMonitor_DetectsTransitions(t *testing.T) {
	pinger := &flakyPinger{err: errors.New("unreachable")}
	monitor := NewProbeMonitor(pinger, logger.Nop())

	var mu sync.Mutex
	var transitions []bool
	monitor.Subscribe(func(online bool) {
		mu.Lock()
		transitions = append(transitions, online)
		mu.Unlock()
	})

	monitor.Start(context.Background(), 5*time.Millisecond)
	defer monitor.Stop()

	require.False(t, monitor.Online())

	pinger.setErr(nil)
	require.Eventually(t, monitor.Online, 200*time.Millisecond, 2*time.Millisecond)

	pinger.setErr(errors.New("unreachable"))
	require.Eventually(t, func() bool { return !monitor.Online() }, 200*time.Millisecond, 2*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, transitions, 2)
	assert.True(t, transitions[0])
	assert.False(t, transitions[1])
}

func TestProbeMonitor_SubscriptionCancel(t *testing.T) {
	pinger := &flakyPinger{err: errors.New("unreachable")}
	monitor := NewProbeMonitor(pinger, logger.Nop())

	notified := false
	cancel := monitor.Subscribe(func(bool) { notified = true })
	cancel()

	monitor.Start(context.Background(), 5*time.Millisecond)
	pinger.setErr(nil)
	require.Eventually(t, monitor.Online, 200*time.Millisecond, 2*time.Millisecond)
	monitor.Stop()

	assert.False(t, notified)
}

func TestProbeMonitor_StopIsIdempotent(t *testing.T) {
	monitor := NewProbeMonitor(&flakyPinger{}, logger.Nop())

	// Stop без Start не должен паниковать
	monitor.Stop()

	monitor.Start(context.Background(), 5*time.Millisecond)
	monitor.Stop()
	monitor.Stop()
}

func TestManualMonitor(t *testing.T) {
	monitor := NewManualMonitor(true)
	require.True(t, monitor.Online())

	var got []bool
	cancel := monitor.Subscribe(func(online bool) { got = append(got, online) })

	monitor.SetOnline(false)
	monitor.SetOnline(false) // повторное выключение не уведомляет
	monitor.SetOnline(true)

	require.Equal(t, []bool{false, true}, got)

	cancel()
	monitor.SetOnline(false)
	require.Len(t, got, 2)
}

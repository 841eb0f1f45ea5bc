// Package lifecycle delivers teardown events (the form going away) so that
// unsaved answers can be flushed before the process is gone.
package lifecycle

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Notifier announces that the current session is about to end and any unsaved
// work must be flushed now.
type Notifier interface {
	// Subscribe registers a callback invoked once per teardown event. The
	// returned cancel function removes the subscription.
	Subscribe(fn func()) (cancel func())
}

// SignalNotifier is a [Notifier] backed by OS termination signals. It is the
// process-level equivalent of the page being hidden or unloaded.
type SignalNotifier struct {
	mu      sync.Mutex
	subs    map[int]func()
	nextSub int
	signals chan os.Signal
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewSignalNotifier creates a SignalNotifier listening for SIGTERM, SIGINT
// and SIGQUIT. The listener goroutine runs until Close is called.
func NewSignalNotifier() *SignalNotifier {
	n := &SignalNotifier{
		subs:    make(map[int]func()),
		signals: make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}

	signal.Notify(n.signals, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		select {
		case <-n.signals:
			n.notify()
		case <-n.done:
		}
	}()

	return n
}

// Subscribe implements [Notifier].
func (n *SignalNotifier) Subscribe(fn func()) (cancel func()) {
	n.mu.Lock()
	id := n.nextSub
	n.nextSub++
	n.subs[id] = fn
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}
}

// Close stops listening for signals and waits for the listener goroutine.
func (n *SignalNotifier) Close() {
	signal.Stop(n.signals)
	close(n.done)
	n.wg.Wait()
}

func (n *SignalNotifier) notify() {
	n.mu.Lock()
	subs := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		subs = append(subs, fn)
	}
	n.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// ManualNotifier is a [Notifier] fired by hand, used in tests and by UI code
// that knows when its surface is being hidden.
type ManualNotifier struct {
	mu      sync.Mutex
	subs    map[int]func()
	nextSub int
}

// NewManualNotifier creates an empty ManualNotifier.
func NewManualNotifier() *ManualNotifier {
	return &ManualNotifier{subs: make(map[int]func())}
}

// Subscribe implements [Notifier].
func (n *ManualNotifier) Subscribe(fn func()) (cancel func()) {
	n.mu.Lock()
	id := n.nextSub
	n.nextSub++
	n.subs[id] = fn
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}
}

// Notify fires a teardown event to all current subscribers.
func (n *ManualNotifier) Notify() {
	n.mu.Lock()
	subs := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		subs = append(subs, fn)
	}
	n.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Package connectivity tracks whether the remote answer store is reachable
// and notifies interested parties when reachability changes.
package connectivity

//go:generate mockgen -source=interfaces.go -destination=../mock/connectivity_mock.go -package=mock

// Monitor reports the current reachability of the remote answer store.
//
// Subscribers are notified on every transition (online→offline and back).
// Notifications are delivered sequentially from the monitor's goroutine, so
// callbacks must not block for long.
type Monitor interface {
	// Online reports the last observed reachability.
	Online() bool

	// Subscribe registers a callback invoked on every reachability change.
	// The returned cancel function removes the subscription; it is safe to
	// call more than once.
	Subscribe(fn func(online bool)) (cancel func())
}

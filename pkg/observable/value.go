// Package observable holds a single value and notifies watchers when it
// changes. Watchers always see the latest value; intermediate values may be
// skipped when a watcher is slow.
package observable

import (
	"context"
	"sync"
)

type Value[T any] struct {
	mu       sync.RWMutex
	current  T
	watchers map[chan struct{}]struct{}
}

func New[T any](initial T) *Value[T] {
	return &Value[T]{
		current:  initial,
		watchers: make(map[chan struct{}]struct{}),
	}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Set stores val and wakes every watcher.
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	v.current = val
	v.wakeLocked()
	v.mu.Unlock()
}

func (v *Value[T]) wakeLocked() {
	for ch := range v.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Notify returns a channel that receives a signal after every write,
// coalesced to at most one pending signal. The channel is unregistered when
// ctx is done.
func (v *Value[T]) Notify(ctx context.Context) <-chan struct{} {
	ch := make(chan struct{}, 1)
	v.mu.Lock()
	v.watchers[ch] = struct{}{}
	v.mu.Unlock()

	go func() {
		<-ctx.Done()
		v.mu.Lock()
		delete(v.watchers, ch)
		v.mu.Unlock()
	}()
	return ch
}

// Watch streams the current value immediately and then the latest value after
// each write. The returned channel is closed when ctx is done.
func (v *Value[T]) Watch(ctx context.Context) <-chan T {
	out := make(chan T, 1)
	signal := v.Notify(ctx)
	out <- v.Get()

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-signal:
				latest := v.Get()
				// drop a stale unread value so the watcher only sees the newest
				select {
				case <-out:
				default:
				}
				select {
				case out <- latest:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

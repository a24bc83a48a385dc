package rankedbelief

import (
	"sync"

	"github.com/gitrdm/ranked-belief-sub001/internal/gid"
)

type thunkState uint8

const (
	thunkPending thunkState = iota
	thunkForcing
	thunkForced
	thunkFailed
)

// Thunk is an at-most-once memoized lazy cell, modeled on the
// mutex-guarded state machine of a settled-once promise: a closure runs
// exactly once, concurrent forcers block until it resolves, and every
// forcer after that observes the same outcome. The zero value is not
// usable; construct with newDeferredThunk, newForcedThunk, or
// newFailedThunk.
type Thunk[T any] struct {
	mu               sync.Mutex
	cond             *sync.Cond
	state            thunkState
	fn               func() (T, error)
	value            T
	err              error
	forcingGoroutine int64
}

func newDeferredThunk[T any](fn func() (T, error)) *Thunk[T] {
	t := &Thunk[T]{fn: fn, state: thunkPending}
	t.cond = sync.NewCond(&t.mu)
	return t
}

func newForcedThunk[T any](v T) *Thunk[T] {
	return &Thunk[T]{state: thunkForced, value: v}
}

func newFailedThunk[T any](err error) *Thunk[T] {
	return &Thunk[T]{state: thunkFailed, err: err}
}

// IsForced reports whether the thunk has resolved, successfully or not.
func (t *Thunk[T]) IsForced() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == thunkForced || t.state == thunkFailed
}

// Force evaluates the thunk, memoizing the outcome on first call. Every
// subsequent call, from any goroutine, returns the same value/error without
// re-running the closure. Concurrent callers racing the first Force block
// until it resolves.
//
// If the closure (directly or transitively) calls Force on this same
// Thunk from the same goroutine, that nested call fails immediately with
// ErrRecursiveForce instead of deadlocking.
func (t *Thunk[T]) Force() (T, error) {
	callerGID := gid.Get()

	t.mu.Lock()
	for {
		switch t.state {
		case thunkForced:
			v, err := t.value, t.err
			t.mu.Unlock()
			return v, err

		case thunkFailed:
			err := t.err
			t.mu.Unlock()
			var zero T
			return zero, err

		case thunkForcing:
			if t.forcingGoroutine == callerGID {
				t.mu.Unlock()
				var zero T
				return zero, ErrRecursiveForce
			}
			t.cond.Wait()

		case thunkPending:
			fn := t.fn
			t.fn = nil
			t.state = thunkForcing
			t.forcingGoroutine = callerGID
			// Release the lock before running fn: fn may itself force other
			// thunks (or, transitively, this one), and must never block
			// behind a lock this goroutine is already holding.
			t.mu.Unlock()

			v, err := fn()

			t.mu.Lock()
			if err != nil {
				t.state = thunkFailed
				t.err = err
			} else {
				t.state = thunkForced
				t.value = v
			}
			t.cond.Broadcast()
			t.mu.Unlock()
			return v, err
		}
	}
}

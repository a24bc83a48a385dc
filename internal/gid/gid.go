// Package gid wraps github.com/petermattis/goid to give Thunk a cheap way
// to recognize a goroutine that is already forcing a thunk re-entering that
// same thunk, so the recursion can fail fast instead of deadlocking.
package gid

import "github.com/petermattis/goid"

// Get returns an identifier for the calling goroutine. It is stable for the
// lifetime of the goroutine and cheap enough to call on every Force.
func Get() int64 {
	return goid.Get()
}

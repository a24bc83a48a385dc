package rankedbelief

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Test membership with errors.Is; these match both
// plain occurrences and the wrapped forms below.
var (
	// ErrOverflow indicates rank arithmetic exceeded MaxFiniteValue.
	ErrOverflow = errors.New("rankedbelief: rank overflow")
	// ErrUnderflow indicates a rank subtraction would yield a negative rank.
	ErrUnderflow = errors.New("rankedbelief: rank underflow")
	// ErrInfiniteSubtraction indicates a - b was attempted with b infinite.
	ErrInfiniteSubtraction = errors.New("rankedbelief: subtraction of an infinite rank")
	// ErrRankOrderViolation indicates a generator or map_with_rank callback
	// produced a rank lower than one already emitted, breaking the
	// non-decreasing-rank invariant.
	ErrRankOrderViolation = errors.New("rankedbelief: non-decreasing rank invariant violated")
	// ErrRecursiveForce indicates a thunk's closure tried to force the same
	// thunk again during its own evaluation.
	ErrRecursiveForce = errors.New("rankedbelief: thunk forced recursively from its own evaluation")
	// ErrCallback is the sentinel matched by errors.Is for any *CallbackError,
	// regardless of the wrapped cause.
	ErrCallback = errors.New("rankedbelief: callback error")
)

// CallbackError wraps an error raised by a user-supplied callback: a map,
// filter, generator, merge_apply binder, or predicate. The original error
// is available via errors.Unwrap or errors.As.
type CallbackError struct {
	Cause error
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("rankedbelief: callback error: %v", e.Cause)
}

// Unwrap returns the wrapped callback error.
func (e *CallbackError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrCallback, so errors.Is(err, ErrCallback)
// matches any *CallbackError regardless of its Cause.
func (e *CallbackError) Is(target error) bool {
	return target == ErrCallback
}

// wrapCallback wraps a non-nil user callback error as *CallbackError. A nil
// err is passed through unchanged.
func wrapCallback(err error) error {
	if err == nil {
		return nil
	}
	var cbErr *CallbackError
	if errors.As(err, &cbErr) {
		return err
	}
	return &CallbackError{Cause: err}
}

// RankOrderViolationError carries the offending ranks for diagnostics,
// alongside the generic ErrRankOrderViolation sentinel.
type RankOrderViolationError struct {
	Previous Rank
	Next     Rank
}

func (e *RankOrderViolationError) Error() string {
	return fmt.Sprintf("rankedbelief: rank order violation: %s emitted after %s", e.Next, e.Previous)
}

// Unwrap enables errors.Is(err, ErrRankOrderViolation).
func (e *RankOrderViolationError) Unwrap() error { return ErrRankOrderViolation }

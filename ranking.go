package rankedbelief

// Pair is an emitted (value, rank) observation.
type Pair[T comparable] struct {
	Value T
	Rank  Rank
}

// Ranking is a handle over a possibly-infinite, non-decreasing sequence of
// (value, rank) pairs. The zero value is the empty ranking (head == nil).
//
// Rankings are immutable: no operator defined on a Ranking ever mutates the
// nodes it was built from, so a Ranking may be freely shared across
// operators, goroutines, and repeated traversals.
type Ranking[T comparable] struct {
	head  *Node[T]
	dedup bool
}

// Empty returns the ranking with no elements.
func Empty[T comparable]() Ranking[T] {
	return Ranking[T]{}
}

// IsEmpty reports whether the ranking has no elements. It never forces
// anything: head-presence is always known without evaluating a thunk.
func (r Ranking[T]) IsEmpty() bool {
	return r.head == nil
}

// IsDeduplicating reports whether iteration suppresses consecutive
// duplicate values.
func (r Ranking[T]) IsDeduplicating() bool {
	return r.dedup
}

// First forces the head value (if any) and returns it along with its rank,
// without forcing the tail. ok is false for an empty ranking.
func (r Ranking[T]) First() (value T, rank Rank, ok bool, err error) {
	if r.head == nil {
		return value, rank, false, nil
	}
	value, err = r.head.Value()
	return value, r.head.rank, true, err
}

// MostNormal returns the value of the most-normal (lowest-rank) element, if
// any. Because of the non-decreasing-rank invariant, this is always the
// head element.
func (r Ranking[T]) MostNormal() (value T, ok bool, err error) {
	value, _, ok, err = r.First()
	return value, ok, err
}

// Size forces and counts every node in the ranking. It must not be called
// on an infinite ranking: doing so never returns. Size counts nodes
// regardless of the deduplication flag, which only affects iteration.
func (r Ranking[T]) Size() (int, error) {
	n := 0
	cur := r.head
	for cur != nil {
		n++
		next, err := cur.Tail()
		if err != nil {
			return n, err
		}
		cur = next
	}
	return n, nil
}

// TakeN materializes up to count emitted (value, rank) pairs, honoring the
// deduplication flag. It is a convenience over Iterator for callers that
// just want a slice.
func (r Ranking[T]) TakeN(count int) ([]Pair[T], error) {
	if count <= 0 {
		return nil, nil
	}
	out := make([]Pair[T], 0, count)
	it := r.Iterate()
	for len(out) < count {
		p, ok, err := it.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out, nil
}

package rankedbelief

// Map applies f to every value, one-to-one; ranks are unchanged and known
// without forcing. f runs at most once per node, only when that node's
// value is actually read.
func Map[T comparable, U comparable](r Ranking[T], f func(T) (U, error), dedup bool) Ranking[U] {
	return Ranking[U]{head: mapNode(r.head, f), dedup: dedup}
}

func mapNode[T comparable, U comparable](n *Node[T], f func(T) (U, error)) *Node[U] {
	if n == nil {
		return nil
	}
	value := newDeferredThunk(func() (U, error) {
		v, err := n.Value()
		if err != nil {
			var zero U
			return zero, err
		}
		u, err := f(v)
		if err != nil {
			var zero U
			return zero, wrapCallback(err)
		}
		return u, nil
	})
	return makeNode(value, n.rank, newDeferredThunk(func() (*Node[U], error) {
		next, err := n.Tail()
		if err != nil {
			return nil, err
		}
		return mapNode(next, f), nil
	}))
}

// MapWithIndex is like Map, but f also receives the zero-based position of
// the element along the sequence. Like Map, the new rank is the original
// rank and the mapped value remains deferred until read.
func MapWithIndex[T comparable, U comparable](r Ranking[T], f func(T, uint64) (U, error), dedup bool) Ranking[U] {
	return Ranking[U]{head: mapWithIndexNode(r.head, 0, f), dedup: dedup}
}

func mapWithIndexNode[T comparable, U comparable](n *Node[T], idx uint64, f func(T, uint64) (U, error)) *Node[U] {
	if n == nil {
		return nil
	}
	value := newDeferredThunk(func() (U, error) {
		v, err := n.Value()
		if err != nil {
			var zero U
			return zero, err
		}
		u, err := f(v, idx)
		if err != nil {
			var zero U
			return zero, wrapCallback(err)
		}
		return u, nil
	})
	return makeNode(value, n.rank, newDeferredThunk(func() (*Node[U], error) {
		next, err := n.Tail()
		if err != nil {
			return nil, err
		}
		return mapWithIndexNode(next, idx+1, f), nil
	}))
}

// MapWithRank applies f to each (value, rank) pair, producing a new
// (value, rank) pair. Because the new rank may depend on the value, f is
// invoked eagerly at node-construction time (the new rank must be known
// without forcing downstream), so this operator cannot be purely lazy on
// the mapping function the way Map is. It is the caller's responsibility
// to keep the result's ranks non-decreasing; a violation surfaces as
// ErrRankOrderViolation when the offending node would be constructed.
func MapWithRank[T comparable, U comparable](r Ranking[T], f func(T, Rank) (U, Rank, error), dedup bool) (Ranking[U], error) {
	head, err := mapWithRankNode[T, U](r.head, f, Rank{}, false)
	if err != nil {
		return Ranking[U]{}, err
	}
	return Ranking[U]{head: head, dedup: dedup}, nil
}

func mapWithRankNode[T comparable, U comparable](n *Node[T], f func(T, Rank) (U, Rank, error), prev Rank, havePrev bool) (*Node[U], error) {
	if n == nil {
		return nil, nil
	}
	v, err := n.Value()
	if err != nil {
		return nil, err
	}
	u, newRank, err := f(v, n.rank)
	if err != nil {
		return nil, wrapCallback(err)
	}
	if havePrev && newRank.Less(prev) {
		return nil, &RankOrderViolationError{Previous: prev, Next: newRank}
	}
	return makeNode(newForcedThunk(u), newRank, newDeferredThunk(func() (*Node[U], error) {
		next, err := n.Tail()
		if err != nil {
			return nil, err
		}
		return mapWithRankNode(next, f, newRank, true)
	})), nil
}

// Filter keeps only values for which p returns true; retained ranks are
// unchanged. p is evaluated only as far as needed to find each retained
// element, so filtering an infinite ranking whose prefix never matches
// never returns — this is intentional.
func (r Ranking[T]) Filter(p func(T) (bool, error), dedup bool) (Ranking[T], error) {
	head, err := filterNode(r.head, p)
	if err != nil {
		return Ranking[T]{}, err
	}
	return Ranking[T]{head: head, dedup: dedup}, nil
}

func filterNode[T comparable](n *Node[T], p func(T) (bool, error)) (*Node[T], error) {
	for n != nil {
		v, err := n.Value()
		if err != nil {
			return nil, err
		}
		ok, err := p(v)
		if err != nil {
			return nil, wrapCallback(err)
		}
		if ok {
			cur := n
			return makeNode(cur.value, cur.rank, newDeferredThunk(func() (*Node[T], error) {
				next, err := cur.Tail()
				if err != nil {
					return nil, err
				}
				return filterNode(next, p)
			})), nil
		}
		next, err := n.Tail()
		if err != nil {
			return nil, err
		}
		n = next
	}
	return nil, nil
}

// Take truncates the ranking to its first n nodes. n <= 0 yields empty.
// Determining Take's head never forces anything beyond what the input
// ranking's own head already knows.
func (r Ranking[T]) Take(n int, dedup bool) Ranking[T] {
	if n <= 0 {
		return Ranking[T]{dedup: dedup}
	}
	return Ranking[T]{head: takeNode(r.head, n), dedup: dedup}
}

func takeNode[T comparable](n *Node[T], remaining int) *Node[T] {
	if n == nil || remaining <= 0 {
		return nil
	}
	cur := n
	return makeNode(cur.value, cur.rank, newDeferredThunk(func() (*Node[T], error) {
		if remaining-1 <= 0 {
			return nil, nil
		}
		next, err := cur.Tail()
		if err != nil {
			return nil, err
		}
		return takeNode(next, remaining-1), nil
	}))
}

// TakeWhileRank yields every node whose rank is <= maxRank, stopping at the
// first node with a greater rank. Because ranks are non-decreasing, no
// later node could satisfy the predicate once one fails it, so this never
// needs to look past that first failing node.
func (r Ranking[T]) TakeWhileRank(maxRank Rank, dedup bool) Ranking[T] {
	return Ranking[T]{head: takeWhileRankNode(r.head, maxRank), dedup: dedup}
}

func takeWhileRankNode[T comparable](n *Node[T], maxRank Rank) *Node[T] {
	if n == nil || maxRank.Less(n.rank) {
		return nil
	}
	cur := n
	return makeNode(cur.value, cur.rank, newDeferredThunk(func() (*Node[T], error) {
		next, err := cur.Tail()
		if err != nil {
			return nil, err
		}
		return takeWhileRankNode(next, maxRank), nil
	}))
}

// ShiftRanks adds the constant delta to every rank; value thunks are
// reused by reference, only rank fields change. Forcing a node whose
// shifted rank would overflow fails with ErrOverflow at that node rather
// than eagerly validating the whole (possibly infinite) ranking.
func (r Ranking[T]) ShiftRanks(delta Rank, dedup bool) (Ranking[T], error) {
	head, err := shiftNode(r.head, delta)
	if err != nil {
		return Ranking[T]{}, err
	}
	return Ranking[T]{head: head, dedup: dedup}, nil
}

func shiftNode[T comparable](n *Node[T], delta Rank) (*Node[T], error) {
	if n == nil {
		return nil, nil
	}
	newRank, err := n.rank.Add(delta)
	if err != nil {
		return nil, err
	}
	cur := n
	return makeNode(cur.value, newRank, newDeferredThunk(func() (*Node[T], error) {
		next, err := cur.Tail()
		if err != nil {
			return nil, err
		}
		return shiftNode(next, delta)
	})), nil
}

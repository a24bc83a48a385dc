package rankedbelief

// Predicate is a filter/observe condition over values of type T.
type Predicate[T comparable] func(T) (bool, error)

// Observe conditions r on p: it is equivalent to filtering by p, then
// renormalizing so the most-normal surviving element has rank 0 and every
// other survivor's rank is reduced by the same amount (the minimum
// surviving rank before normalization). An empty filter result, or one
// whose minimum surviving rank is Infinity (nothing finite survives),
// yields the empty ranking — never an error.
func (r Ranking[T]) Observe(p Predicate[T], dedup bool) (Ranking[T], error) {
	filtered, err := r.Filter(p, dedup)
	if err != nil {
		return Ranking[T]{}, err
	}
	if filtered.head == nil {
		return Ranking[T]{dedup: dedup}, nil
	}
	minRank := filtered.head.rank
	if minRank.IsInfinity() {
		return Ranking[T]{dedup: dedup}, nil
	}
	head, err := normalizeWithShift(filtered.head, minRank)
	if err != nil {
		return Ranking[T]{}, err
	}
	return Ranking[T]{head: head, dedup: dedup}, nil
}

// ObserveValue is the Observe convenience overload that conditions on
// equality with value.
func (r Ranking[T]) ObserveValue(value T, dedup bool) (Ranking[T], error) {
	return r.Observe(func(v T) (bool, error) { return v == value, nil }, dedup)
}

// normalizeWithShift subtracts delta from every node's rank, dropping any
// node whose rank is Infinity. delta is always the minimum finite rank
// among the nodes it is applied to, so the subtraction itself can never
// underflow.
func normalizeWithShift[T comparable](n *Node[T], delta Rank) (*Node[T], error) {
	for n != nil {
		if n.rank.IsInfinity() {
			next, err := n.Tail()
			if err != nil {
				return nil, err
			}
			n = next
			continue
		}
		newRank, err := n.rank.Sub(delta)
		if err != nil {
			return nil, err
		}
		cur := n
		return makeNode(cur.value, newRank, newDeferredThunk(func() (*Node[T], error) {
			next, err := cur.Tail()
			if err != nil {
				return nil, err
			}
			return normalizeWithShift(next, delta)
		})), nil
	}
	return nil, nil
}

package rankedbelief

// Merge interleaves a and b in non-decreasing rank order. At equal ranks,
// every currently-available element from a at that rank is emitted before
// any element from b at that rank: the merger tracks the rank it last
// emitted and only compares against b's head once a's head rank advances
// past it, so b's head is never forced while a can still supply more
// elements at the current rank. This lets two infinite, bounded-rank
// rankings be merged without either fully materializing.
func Merge[T comparable](a, b Ranking[T], dedup bool) (Ranking[T], error) {
	ah, bh := a.head, b.head
	if ah == bh {
		if dedup {
			return Ranking[T]{head: ah, dedup: dedup}, nil
		}
		// Duplicates must be preserved: lazily deep-copy one spine
		// (sharing value thunks) so every element appears twice. This is
		// the one case where self-merge cannot just return its argument.
		bh = deepCopySpine(bh)
	}
	head, err := mergeStep(ah, bh, Rank{}, false)
	if err != nil {
		return Ranking[T]{}, err
	}
	return Ranking[T]{head: head, dedup: dedup}, nil
}

// MergeAll folds Merge across rs left to right: merge(...merge(r0, r1)...,
// rk-1). Empty input yields empty; a single input is returned unchanged
// (aside from adopting the requested dedup flag). The fold order only
// matters for Merge's tie-breaking rule, never for the multiset of pairs
// produced.
func MergeAll[T comparable](rs []Ranking[T], dedup bool) (Ranking[T], error) {
	if len(rs) == 0 {
		return Ranking[T]{dedup: dedup}, nil
	}
	acc := rs[0]
	for _, r := range rs[1:] {
		var err error
		acc, err = Merge(acc, r, dedup)
		if err != nil {
			return Ranking[T]{}, err
		}
	}
	acc.dedup = dedup
	return acc, nil
}

// mergeStep determines the next node of the merge of a and b, given that
// seenRank (valid only if haveSeen) is the rank most recently emitted.
func mergeStep[T comparable](a, b *Node[T], seenRank Rank, haveSeen bool) (*Node[T], error) {
	switch {
	case a == nil && b == nil:
		return nil, nil
	case a == nil:
		return b, nil
	case b == nil:
		return a, nil
	case haveSeen && a.rank.Equal(seenRank):
		return mergeEmit(a, b, seenRank, true, true), nil
	case a.rank.LessOrEqual(b.rank):
		return mergeEmit(a, b, a.rank, true, true), nil
	default:
		return mergeEmit(b, a, b.rank, true, false), nil
	}
}

// mergeEmit builds the node for emitting from "emit", continuing the merge
// against "other" with the updated seen rank. emitIsA records which side
// emit came from, so the recursive step puts emit's tail and other back in
// the right argument order.
func mergeEmit[T comparable](emit, other *Node[T], newSeen Rank, haveSeen bool, emitIsA bool) *Node[T] {
	return makeNode(emit.value, emit.rank, newDeferredThunk(func() (*Node[T], error) {
		nextEmit, err := emit.Tail()
		if err != nil {
			return nil, err
		}
		if emitIsA {
			return mergeStep(nextEmit, other, newSeen, haveSeen)
		}
		return mergeStep(other, nextEmit, newSeen, haveSeen)
	}))
}

// deepCopySpine rebuilds n's chain as distinct Node values that share n's
// value thunks, lazily: only the head is materialized eagerly, every tail
// remains deferred.
func deepCopySpine[T comparable](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	return makeNode(n.value, n.rank, newDeferredThunk(func() (*Node[T], error) {
		next, err := n.Tail()
		if err != nil {
			return nil, err
		}
		return deepCopySpine(next), nil
	}))
}

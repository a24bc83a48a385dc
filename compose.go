package rankedbelief

// Exceptional produces the fallback ranking for NormalExceptional. It is
// only invoked if and when the merged sequence is actually traversed past
// the normal ranking's minimum-rank head (or immediately, if the normal
// ranking is empty).
type Exceptional[T comparable] func() (Ranking[T], error)

// NormalExceptional lazily composes a primary ranking N with a fallback
// produced by exceptional, shifted by delta (the spec's conventional
// default is MustFromValue(1)). It is equivalent to
// Merge(normal, ShiftRanks(exceptional(), delta)), except that exceptional
// is guaranteed not to run until the result is traversed past normal's
// head — achieved by wrapping the shifted-fallback construction inside the
// tail thunk of a synthetic node carrying normal's own head value and rank.
// The equivalence holds when no shifted fallback rank is below normal's
// head rank (always so when that head has rank 0): the synthetic head is
// emitted first in every case, so a shifted fallback element ranked below
// it comes after it.
//
// If normal is empty, exceptional is invoked immediately (there is no head
// to defer behind).
func NormalExceptional[T comparable](normal Ranking[T], exceptional Exceptional[T], delta Rank, dedup bool) (Ranking[T], error) {
	if normal.head == nil {
		fr, err := exceptional()
		if err != nil {
			return Ranking[T]{}, wrapCallback(err)
		}
		head, err := shiftNode(fr.head, delta)
		if err != nil {
			return Ranking[T]{}, err
		}
		return Ranking[T]{head: head, dedup: dedup}, nil
	}

	head := normal.head
	synthetic := makeNode(head.value, head.rank, newDeferredThunk(func() (*Node[T], error) {
		normalTail, err := head.Tail()
		if err != nil {
			return nil, err
		}
		fr, err := exceptional()
		if err != nil {
			return nil, wrapCallback(err)
		}
		fallbackHead, err := shiftNode(fr.head, delta)
		if err != nil {
			return nil, err
		}
		return mergeStep(normalTail, fallbackHead, Rank{}, false)
	}))

	return Ranking[T]{head: synthetic, dedup: dedup}, nil
}

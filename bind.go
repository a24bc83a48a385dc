package rankedbelief

// Binder maps a value from a ranking being bound to the ranking it should
// be replaced by, for use with MergeApply.
type Binder[T comparable, U comparable] func(T) (Ranking[U], error)

// MergeApply is the monadic bind: for every (v_i, r_i) in r and every
// (u_j, s_j) in f(v_i), it produces (u_j, r_i + s_j), with all such entries
// interleaved by ascending total rank. At equal total ranks, entries from
// an earlier input node come first; within one input node's contribution,
// f(v_i)'s own order is preserved.
//
// The implementation never forces f on more than one input element ahead
// of what is needed: it drains the current element's shifted ranking
// (f(v_i) shifted by r_i) as long as its head rank is no greater than the
// next input node's rank — a valid lower bound on anything the rest of the
// bind could produce, since shift_ranks preserves the head-rank offset and
// f's own head rank is always >= 0 — only forcing f(v_{i+1}) once that
// bound is actually exceeded.
func MergeApply[T comparable, U comparable](r Ranking[T], f Binder[T, U], dedup bool) (Ranking[U], error) {
	head, err := bindStep(r.head, f)
	if err != nil {
		return Ranking[U]{}, err
	}
	return Ranking[U]{head: head, dedup: dedup}, nil
}

// bindStep computes the bind result starting from input node "current"
// (nil means no more input, hence an empty result).
func bindStep[T comparable, U comparable](current *Node[T], f Binder[T, U]) (*Node[U], error) {
	if current == nil {
		return nil, nil
	}
	v, err := current.Value()
	if err != nil {
		return nil, err
	}
	fr, err := f(v)
	if err != nil {
		return nil, wrapCallback(err)
	}
	shiftedHead, err := shiftNode(fr.head, current.rank)
	if err != nil {
		return nil, err
	}
	nextInput, err := current.Tail()
	if err != nil {
		return nil, err
	}
	return bindMerge(shiftedHead, nextInput, f)
}

// bindMerge drains the shifted current-element ranking s as long as its
// head rank is bounded by nextInput's rank (a safe lower bound on the
// rest), only computing the rest (by recursing bindStep on nextInput) once
// that bound is exceeded, and then merging the two (s keeps tie priority,
// since it came from an earlier input element).
func bindMerge[T comparable, U comparable](s *Node[U], nextInput *Node[T], f Binder[T, U]) (*Node[U], error) {
	if s == nil {
		return bindStep(nextInput, f)
	}

	bound := Infinity()
	if nextInput != nil {
		bound = nextInput.rank
	}

	if s.rank.LessOrEqual(bound) {
		return makeNode(s.value, s.rank, newDeferredThunk(func() (*Node[U], error) {
			sNext, err := s.Tail()
			if err != nil {
				return nil, err
			}
			return bindMerge(sNext, nextInput, f)
		})), nil
	}

	rest, err := bindStep(nextInput, f)
	if err != nil {
		return nil, err
	}
	return mergeStep(s, rest, Rank{}, false)
}

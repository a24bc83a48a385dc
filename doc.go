// Package rankedbelief implements Spohn-style ranking functions: lazy,
// ordered sequences of (value, rank) pairs encoding ordinal plausibility,
// where rank 0 is most normal, higher finite ranks are more exceptional,
// and [Infinity] denotes impossibility.
//
// A [Ranking] is built from an explicit enumeration or from a generator
// that may produce an infinite stream, and combined using a small algebra:
// [Map], [Ranking.Filter], [Ranking.Take], [Ranking.TakeWhileRank],
// [Merge], [MergeAll], [MergeApply] (monadic bind),
// [Ranking.Observe] (evidence conditioning), and
// [NormalExceptional] (lazy fallback composition).
//
// Traversal is pull-based and memoized: forcing a node's value or tail is
// safe for concurrent callers, and a second force of the same node always
// observes the first force's outcome. No operator mutates its input
// ranking; rankings are immutable once constructed.
package rankedbelief

package rankedbelief

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeInterleavesByRank(t *testing.T) {
	a := FromList(pairsOf[int](1, 0, 3, 2), true)
	b := FromList(pairsOf[int](2, 1, 4, 2), true)
	merged, err := Merge(a, b, false)
	require.NoError(t, err)
	got := takeAll(t, merged)
	want := pairsOf[int](1, 0, 2, 1, 3, 2, 4, 2)
	assert.Empty(t, cmp.Diff(want, got, cmp.AllowUnexported(Rank{})))
}

func TestMergeTiesPreferAAtEqualRank(t *testing.T) {
	// At equal ranks every currently-available element of a is emitted
	// before b, regardless of a's internal value order.
	a := FromList(pairsOf[int](1, 0, 2, 0), true)
	b := FromList(pairsOf[int](9, 0), true)
	merged, err := Merge(a, b, false)
	require.NoError(t, err)
	got := takeAll(t, merged)
	want := pairsOf[int](1, 0, 2, 0, 9, 0)
	assert.Empty(t, cmp.Diff(want, got, cmp.AllowUnexported(Rank{})))
}

func TestMergeIdentityWithEmpty(t *testing.T) {
	a := FromList(pairsOf[int](1, 0, 2, 1), true)
	empty := Empty[int]()
	merged, err := Merge(a, empty, true)
	require.NoError(t, err)
	got := takeAll(t, merged)
	want := pairsOf[int](1, 0, 2, 1)
	assert.Empty(t, cmp.Diff(want, got, cmp.AllowUnexported(Rank{})))
}

func TestMergeSelfWithDedupReturnsSameElements(t *testing.T) {
	a := FromList(pairsOf[int](1, 0, 2, 1), true)
	merged, err := Merge(a, a, true)
	require.NoError(t, err)
	got := takeAll(t, merged)
	want := pairsOf[int](1, 0, 2, 1)
	assert.Empty(t, cmp.Diff(want, got, cmp.AllowUnexported(Rank{})))
}

func TestMergeSelfWithoutDedupDuplicatesEveryElement(t *testing.T) {
	a := FromList(pairsOf[int](1, 0, 2, 1), true)
	merged, err := Merge(a, a, false)
	require.NoError(t, err)
	got := takeAll(t, merged)
	want := pairsOf[int](1, 0, 1, 0, 2, 1, 2, 1)
	assert.Empty(t, cmp.Diff(want, got, cmp.AllowUnexported(Rank{})))
}

func TestMergeAllFoldsLeftToRight(t *testing.T) {
	r0 := FromList(pairsOf[int](1, 0), true)
	r1 := FromList(pairsOf[int](2, 0), true)
	r2 := FromList(pairsOf[int](3, 1), true)
	merged, err := MergeAll([]Ranking[int]{r0, r1, r2}, false)
	require.NoError(t, err)
	got := takeAll(t, merged)
	want := pairsOf[int](1, 0, 2, 0, 3, 1)
	assert.Empty(t, cmp.Diff(want, got, cmp.AllowUnexported(Rank{})))
}

func TestMergeAllEmptyInputIsEmpty(t *testing.T) {
	merged, err := MergeAll[int](nil, true)
	require.NoError(t, err)
	assert.True(t, merged.IsEmpty())
}

func TestMergeAllSingleInputIsUnchanged(t *testing.T) {
	r0 := FromList(pairsOf[int](1, 0, 2, 1), true)
	merged, err := MergeAll([]Ranking[int]{r0}, false)
	require.NoError(t, err)
	got := takeAll(t, merged)
	want := pairsOf[int](1, 0, 2, 1)
	assert.Empty(t, cmp.Diff(want, got, cmp.AllowUnexported(Rank{})))
}

func TestMergeOfTwoInfiniteSequencesNeverForcesAhead(t *testing.T) {
	even, err := FromGenerator[int](func(i uint64) (int, Rank, error) {
		return int(2 * i), mustRank(i), nil
	}, 0, false)
	require.NoError(t, err)
	odd, err := FromGenerator[int](func(i uint64) (int, Rank, error) {
		return int(2*i + 1), mustRank(i), nil
	}, 0, false)
	require.NoError(t, err)

	merged, err := Merge(even, odd, false)
	require.NoError(t, err)
	pairs, err := merged.TakeN(6)
	require.NoError(t, err)
	want := pairsOf[int](0, 0, 1, 0, 2, 1, 3, 1, 4, 2, 5, 2)
	assert.Empty(t, cmp.Diff(want, pairs, cmp.AllowUnexported(Rank{})))
}

package rankedbelief

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAppliesFToEveryValue(t *testing.T) {
	r := FromValuesUniform([]int{1, 2, 3}, mustRank(0), true)
	mapped := Map(r, func(v int) (int, error) { return v * 10, nil }, true)
	got := takeAll(t, mapped)
	want := pairsOf[int](10, 0, 20, 0, 30, 0)
	assert.Empty(t, cmp.Diff(want, got, cmp.AllowUnexported(Rank{})))
}

func TestMapPropagatesCallbackError(t *testing.T) {
	r := FromValuesUniform([]int{1, 2}, mustRank(0), true)
	boom := errors.New("boom")
	mapped := Map(r, func(v int) (int, error) { return 0, boom }, true)
	_, _, _, err := mapped.First()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCallback))
	assert.True(t, errors.Is(err, boom))
}

func TestMapWithIndexPassesPosition(t *testing.T) {
	r := FromValuesUniform([]string{"a", "b", "c"}, mustRank(0), true)
	mapped := MapWithIndex(r, func(v string, idx uint64) (string, error) {
		if idx == 0 {
			return v + "!", nil
		}
		return v, nil
	}, true)
	got := takeAll(t, mapped)
	want := pairsOf[string]("a!", 0, "b", 0, "c", 0)
	assert.Empty(t, cmp.Diff(want, got, cmp.AllowUnexported(Rank{})))
}

func TestMapWithRankCanReRank(t *testing.T) {
	r := FromList(pairsOf[int](1, 0, 2, 1), true)
	mapped, err := MapWithRank[int, int](r, func(v int, rk Rank) (int, Rank, error) {
		newRank, addErr := rk.Add(mustRank(1))
		return v, newRank, addErr
	}, true)
	require.NoError(t, err)
	got := takeAll(t, mapped)
	want := pairsOf[int](1, 1, 2, 2)
	assert.Empty(t, cmp.Diff(want, got, cmp.AllowUnexported(Rank{})))
}

func TestMapWithRankDetectsOrderViolation(t *testing.T) {
	r := FromList(pairsOf[int](1, 1, 2, 2), true)
	mapped, err := MapWithRank[int, int](r, func(v int, rk Rank) (int, Rank, error) {
		if v == 2 {
			return v, Zero(), nil
		}
		return v, rk, nil
	}, true)
	require.NoError(t, err)
	_, err = mapped.Size()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRankOrderViolation))
}

func TestFilterKeepsMatchingValues(t *testing.T) {
	r := FromList(pairsOf[int](1, 0, 2, 0, 3, 1, 4, 1), true)
	filtered, err := r.Filter(func(v int) (bool, error) { return v%2 == 0, nil }, true)
	require.NoError(t, err)
	got := takeAll(t, filtered)
	want := pairsOf[int](2, 0, 4, 1)
	assert.Empty(t, cmp.Diff(want, got, cmp.AllowUnexported(Rank{})))
}

func TestFilterPropagatesPredicateError(t *testing.T) {
	r := FromValuesUniform([]int{1, 2}, mustRank(0), true)
	boom := errors.New("boom")
	_, err := r.Filter(func(v int) (bool, error) { return false, boom }, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCallback))
}

func TestTakeTruncatesSequence(t *testing.T) {
	r := FromValuesUniform([]int{1, 2, 3, 4, 5}, mustRank(0), true)
	got := takeAll(t, r.Take(3, true))
	want := pairsOf[int](1, 0, 2, 0, 3, 0)
	assert.Empty(t, cmp.Diff(want, got, cmp.AllowUnexported(Rank{})))
}

func TestTakeZeroOrNegativeIsEmpty(t *testing.T) {
	r := FromValuesUniform([]int{1, 2, 3}, mustRank(0), true)
	assert.True(t, r.Take(0, true).IsEmpty())
	assert.True(t, r.Take(-1, true).IsEmpty())
}

func TestTakeOnInfiniteSequenceTerminates(t *testing.T) {
	g, err := FromGenerator[int](func(i uint64) (int, Rank, error) {
		return int(i), mustRank(i), nil
	}, 0, false)
	require.NoError(t, err)
	got := takeAll(t, g.Take(5, false))
	want := pairsOf[int](0, 0, 1, 1, 2, 2, 3, 3, 4, 4)
	assert.Empty(t, cmp.Diff(want, got, cmp.AllowUnexported(Rank{})))
}

func TestTakeWhileRankStopsAtFirstExcess(t *testing.T) {
	r := FromList(pairsOf[int](1, 0, 2, 0, 3, 1, 4, 2), true)
	got := takeAll(t, r.TakeWhileRank(mustRank(1), true))
	want := pairsOf[int](1, 0, 2, 0, 3, 1)
	assert.Empty(t, cmp.Diff(want, got, cmp.AllowUnexported(Rank{})))
}

func TestShiftRanksAddsConstant(t *testing.T) {
	r := FromList(pairsOf[int](1, 0, 2, 1), true)
	shifted, err := r.ShiftRanks(mustRank(5), true)
	require.NoError(t, err)
	got := takeAll(t, shifted)
	want := pairsOf[int](1, 5, 2, 6)
	assert.Empty(t, cmp.Diff(want, got, cmp.AllowUnexported(Rank{})))
}

func TestShiftRanksOverflowFailsAtOffendingNode(t *testing.T) {
	r := FromList([]Pair[int]{{Value: 1, Rank: Zero()}, {Value: 2, Rank: mustRank(MaxFiniteValue)}}, true)
	shifted, err := r.ShiftRanks(mustRank(1), true)
	require.NoError(t, err, "shifting the head must not eagerly validate the rest")
	_, err = shifted.Size()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOverflow))
}

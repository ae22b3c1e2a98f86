package sched_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedkit/schedkit/sched"
)

func mustInstance(t *testing.T, m, n int, p []int64) *sched.ProblemInstance {
	t.Helper()
	inst, err := sched.NewInstance(m, n, p)
	require.NoError(t, err)

	return inst
}

// TestBuildGreedy_CanonicalScenario pins the canonical scenario:
// M=2, N=3, p=[3,5,2] → P0=[0,2], P1=[1], cost 13, makespan 5.
func TestBuildGreedy_CanonicalScenario(t *testing.T) {
	inst := mustInstance(t, 2, 3, []int64{3, 5, 2})

	sol, err := sched.BuildGreedy(inst)
	require.NoError(t, err)
	require.True(t, sol.IsValid())

	assert.Equal(t, [][]int{{0, 2}, {1}}, sol.Assignment())
	assert.Equal(t, int64(13), sol.Cost(), "K2 = 3 + 5 + 5")
	assert.Equal(t, int64(5), sol.Makespan())
}

// TestBuildGreedy_AlwaysValid exercises a spread of shapes; greedy must
// always produce a valid schedule.
func TestBuildGreedy_AlwaysValid(t *testing.T) {
	shapes := []struct {
		m, n int
	}{
		{1, 1}, {1, 7}, {4, 4}, {3, 10}, {8, 3},
	}

	for _, sh := range shapes {
		p := make([]int64, sh.n)
		for i := range p {
			p[i] = int64(i%5 + 1)
		}
		inst := mustInstance(t, sh.m, sh.n, p)

		sol, err := sched.BuildGreedy(inst)
		require.NoError(t, err)
		assert.True(t, sol.IsValid(), "greedy must be valid for M=%d N=%d", sh.m, sh.n)
	}

	_, err := sched.BuildGreedy(nil)
	assert.ErrorIs(t, err, sched.ErrNilInstance)
}

// TestBuildGreedy_TieBreaksLowestIndex: equal loads must go to the lowest
// processor index.
func TestBuildGreedy_TieBreaksLowestIndex(t *testing.T) {
	inst := mustInstance(t, 3, 3, []int64{2, 2, 2})

	sol, err := sched.BuildGreedy(inst)
	require.NoError(t, err)

	// All loads start at 0, so jobs land on P0, P1, P2 in order.
	assert.Equal(t, [][]int{{0}, {1}, {2}}, sol.Assignment())
}

// TestIsValid_Violations builds malformed assignments by hand.
func TestIsValid_Violations(t *testing.T) {
	inst := mustInstance(t, 2, 3, []int64{1, 1, 1})

	cases := []struct {
		name       string
		assignment [][]int
	}{
		{"omitted job", [][]int{{0, 1}, {}}},
		{"duplicate job", [][]int{{0, 1}, {1, 2}}},
		{"index out of range", [][]int{{0, 1}, {3}}},
		{"negative index", [][]int{{0, 1}, {-1}}},
	}

	for _, tc := range cases {
		sol, err := sched.NewSolution(inst, tc.assignment)
		require.NoError(t, err, tc.name)
		assert.False(t, sol.IsValid(), tc.name)
	}

	// Wrong queue count is rejected at construction already.
	_, err := sched.NewSolution(inst, [][]int{{0, 1, 2}})
	assert.ErrorIs(t, err, sched.ErrProcessorCount)

	_, err = sched.NewSolution(nil, [][]int{})
	assert.ErrorIs(t, err, sched.ErrNilInstance)
}

// TestCost_IdempotentAndCacheInvalidation: Cost is stable across calls and
// recomputed after a structural edit.
func TestCost_IdempotentAndCacheInvalidation(t *testing.T) {
	inst := mustInstance(t, 2, 3, []int64{3, 5, 2})
	sol, err := sched.NewSolution(inst, [][]int{{0, 2}, {1}})
	require.NoError(t, err)

	first := sol.Cost()
	assert.Equal(t, first, sol.Cost(), "Cost must be idempotent")

	// Move job 2 to the front of P1: completion times become
	// C0=3 (P0), C2=2, C1=7 (P1) → cost 12.
	job, err := sol.RemoveAt(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2, job)
	require.NoError(t, sol.InsertAt(1, 0, job))

	assert.True(t, sol.IsValid())
	assert.Equal(t, int64(12), sol.Cost(), "cache must be invalidated by edits")
}

// TestClone_Independence: mutating a clone never affects the original, and
// both share the same instance pointer.
func TestClone_Independence(t *testing.T) {
	inst := mustInstance(t, 2, 4, []int64{4, 1, 3, 2})
	sol, err := sched.BuildGreedy(inst)
	require.NoError(t, err)

	origCost := sol.Cost()
	cp := sol.Clone()
	assert.Same(t, sol.Instance(), cp.Instance(), "instance pointer is shared")

	job, err := cp.RemoveAt(0, 0)
	require.NoError(t, err)
	require.NoError(t, cp.InsertAt(1, 0, job))

	assert.Equal(t, origCost, sol.Cost(), "original must be untouched")
	assert.True(t, cp.IsValid())
	assert.NotEqual(t, sol.Assignment(), cp.Assignment())
}

// TestRemoveInsert_Bounds covers index validation of the queue editors.
func TestRemoveInsert_Bounds(t *testing.T) {
	inst := mustInstance(t, 2, 2, []int64{1, 1})
	sol, err := sched.NewSolution(inst, [][]int{{0, 1}, {}})
	require.NoError(t, err)

	_, err = sol.RemoveAt(2, 0)
	assert.ErrorIs(t, err, sched.ErrProcessorIndex)
	_, err = sol.RemoveAt(1, 0)
	assert.ErrorIs(t, err, sched.ErrQueuePosition, "empty queue has no removable position")
	_, err = sol.RemoveAt(0, 2)
	assert.ErrorIs(t, err, sched.ErrQueuePosition)

	assert.ErrorIs(t, sol.InsertAt(-1, 0, 0), sched.ErrProcessorIndex)
	assert.ErrorIs(t, sol.InsertAt(1, 1, 0), sched.ErrQueuePosition, "insert past end+0 of empty queue")
	assert.NoError(t, sol.InsertAt(1, 0, 1), "insert at end == append is legal")
}

// TestMakespan_NotTheObjective: two schedules may share a makespan while
// differing in K2 cost.
func TestMakespan_NotTheObjective(t *testing.T) {
	inst := mustInstance(t, 1, 3, []int64{1, 2, 3})

	a, err := sched.NewSolution(inst, [][]int{{0, 1, 2}}) // C = 1,3,6 → 10
	require.NoError(t, err)
	b, err := sched.NewSolution(inst, [][]int{{2, 1, 0}}) // C = 3,5,6 → 14
	require.NoError(t, err)

	assert.Equal(t, a.Makespan(), b.Makespan())
	assert.Equal(t, int64(10), a.Cost())
	assert.Equal(t, int64(14), b.Cost())
}

package anneal_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedkit/schedkit/anneal"
	"github.com/schedkit/schedkit/sched"
)

func mustGreedy(t *testing.T, m, n int, p []int64) *sched.ScheduleSolution {
	t.Helper()
	inst, err := sched.NewInstance(m, n, p)
	require.NoError(t, err)
	sol, err := sched.BuildGreedy(inst)
	require.NoError(t, err)

	return sol
}

// TestMoveOne_ValidAndNonMutating: across many draws, every neighbor is
// valid and the input solution is bit-for-bit untouched.
func TestMoveOne_ValidAndNonMutating(t *testing.T) {
	sol := mustGreedy(t, 3, 8, []int64{4, 2, 7, 1, 5, 3, 6, 2})
	rng := rand.New(rand.NewSource(1))

	origCost := sol.Cost()
	origAssignment := sol.Clone().Assignment()

	var op anneal.MoveOne
	for i := 0; i < 500; i++ {
		neighbor, err := op.Mutate(sol, rng)
		require.NoError(t, err)
		require.NotNil(t, neighbor)
		require.True(t, neighbor.IsValid(), "draw %d produced an invalid neighbor", i)
		assert.Same(t, sol.Instance(), neighbor.Instance(), "instance pointer is shared")
	}

	assert.Equal(t, origAssignment, sol.Assignment(), "input must never be mutated")
	assert.Equal(t, origCost, sol.Cost())
}

// TestMoveOne_SingleProcessor: with M=1 the job can only be reinserted on
// the same processor, and the result stays valid.
func TestMoveOne_SingleProcessor(t *testing.T) {
	sol := mustGreedy(t, 1, 4, []int64{3, 1, 4, 1})
	rng := rand.New(rand.NewSource(7))

	var op anneal.MoveOne
	for i := 0; i < 100; i++ {
		neighbor, err := op.Mutate(sol, rng)
		require.NoError(t, err)
		assert.True(t, neighbor.IsValid())
		assert.Len(t, neighbor.Assignment(), 1)
		assert.Len(t, neighbor.Assignment()[0], 4)
	}
}

// TestMoveOne_AllProcessorsEmpty: a jobless schedule is malformed and must
// be signaled, not silently no-oped.
func TestMoveOne_AllProcessorsEmpty(t *testing.T) {
	inst, err := sched.NewInstance(2, 1, []int64{5})
	require.NoError(t, err)
	empty, err := sched.NewSolution(inst, [][]int{{}, {}})
	require.NoError(t, err)

	var op anneal.MoveOne
	_, err = op.Mutate(empty, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, anneal.ErrAllProcessorsEmpty)
}

// TestMoveOne_NilInputs: nil solution errors; nil rng falls back to the
// deterministic default stream.
func TestMoveOne_NilInputs(t *testing.T) {
	var op anneal.MoveOne

	_, err := op.Mutate(nil, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, anneal.ErrNilInitial)

	sol := mustGreedy(t, 2, 3, []int64{3, 5, 2})
	a, err := op.Mutate(sol, nil)
	require.NoError(t, err)
	b, err := op.Mutate(sol, nil)
	require.NoError(t, err)
	assert.Equal(t, a.Assignment(), b.Assignment(), "nil rng must be deterministic")
}

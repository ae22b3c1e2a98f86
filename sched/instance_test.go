package sched_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedkit/schedkit/sched"
)

// TestNewInstance_Valid verifies a well-formed instance is accepted and the
// processing-time slice is copied, not aliased.
func TestNewInstance_Valid(t *testing.T) {
	p := []int64{3, 5, 2}

	inst, err := sched.NewInstance(2, 3, p)
	require.NoError(t, err)
	assert.Equal(t, 2, inst.M)
	assert.Equal(t, 3, inst.N)
	assert.Equal(t, []int64{3, 5, 2}, inst.P)

	// Mutating the caller's slice must not leak into the instance.
	p[0] = 99
	assert.Equal(t, int64(3), inst.P[0], "NewInstance must copy p")
}

// TestNewInstance_Invalid covers every fail-fast construction error.
func TestNewInstance_Invalid(t *testing.T) {
	_, err := sched.NewInstance(0, 3, []int64{1, 2, 3})
	assert.ErrorIs(t, err, sched.ErrProcessorCount, "M=0 must be rejected")

	_, err = sched.NewInstance(2, 0, []int64{})
	assert.ErrorIs(t, err, sched.ErrJobCount, "N=0 must be rejected")

	_, err = sched.NewInstance(2, 3, []int64{1, 2})
	assert.ErrorIs(t, err, sched.ErrProcessingLength, "len(p) != N must be rejected")

	_, err = sched.NewInstance(2, 3, []int64{1, 0, 2})
	assert.ErrorIs(t, err, sched.ErrProcessingTime, "p[i] < 1 must be rejected")
}

// TestTotalProcessingTime checks the informational load sum.
func TestTotalProcessingTime(t *testing.T) {
	inst, err := sched.NewInstance(3, 4, []int64{4, 1, 7, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(14), inst.TotalProcessingTime())
}

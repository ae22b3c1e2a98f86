package cooling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedkit/schedkit/cooling"
)

// TestConstructors_FailFast covers every invalid-parameter sentinel.
func TestConstructors_FailFast(t *testing.T) {
	_, err := cooling.NewGeometric(0, 0.5)
	assert.ErrorIs(t, err, cooling.ErrInitialTemperature)
	_, err = cooling.NewGeometric(100, 0)
	assert.ErrorIs(t, err, cooling.ErrAlphaRange)
	_, err = cooling.NewGeometric(100, 1)
	assert.ErrorIs(t, err, cooling.ErrAlphaRange, "alpha == 1 never cools")

	_, err = cooling.NewLinear(-1, 1)
	assert.ErrorIs(t, err, cooling.ErrInitialTemperature)
	_, err = cooling.NewLinear(10, 0)
	assert.ErrorIs(t, err, cooling.ErrBetaRange)
	_, err = cooling.NewLinear(3, 3)
	assert.ErrorIs(t, err, cooling.ErrBetaExceedsT0, "T0 must exceed beta")

	_, err = cooling.NewCauchy(0, 1)
	assert.ErrorIs(t, err, cooling.ErrInitialTemperature)
	_, err = cooling.NewCauchy(10, -2)
	assert.ErrorIs(t, err, cooling.ErrGammaRange)
}

// TestGeometric_HalvesAndResets pins the documented scenario:
// T0=100, alpha=0.5 → one step yields 50; Reset restores 100.
func TestGeometric_HalvesAndResets(t *testing.T) {
	g, err := cooling.NewGeometric(100, 0.5)
	require.NoError(t, err)

	assert.Equal(t, 100.0, g.CurrentTemperature())
	g.NextStep()
	assert.Equal(t, 50.0, g.CurrentTemperature())
	g.NextStep()
	assert.Equal(t, 25.0, g.CurrentTemperature())

	g.Reset()
	assert.Equal(t, 100.0, g.CurrentTemperature())
}

// TestLinear_ClampsAtFloor pins the documented scenario:
// T0=10, beta=3 → 7, 4, 1, then the floor instead of a negative value.
func TestLinear_ClampsAtFloor(t *testing.T) {
	l, err := cooling.NewLinear(10, 3)
	require.NoError(t, err)

	l.NextStep()
	l.NextStep()
	assert.Equal(t, 4.0, l.CurrentTemperature())
	l.NextStep()
	assert.Equal(t, 1.0, l.CurrentTemperature())
	l.NextStep()
	assert.Equal(t, cooling.MinTemperature, l.CurrentTemperature(), "must clamp, never go negative")
	l.NextStep()
	assert.Equal(t, cooling.MinTemperature, l.CurrentTemperature(), "stays on the floor")
}

// TestCauchy_Formula checks T_k = T0/(1+gamma·k) step by step.
func TestCauchy_Formula(t *testing.T) {
	c, err := cooling.NewCauchy(100, 1)
	require.NoError(t, err)

	assert.Equal(t, 100.0, c.CurrentTemperature(), "k=0")
	c.NextStep()
	assert.InDelta(t, 50.0, c.CurrentTemperature(), 1e-12, "k=1")
	c.NextStep()
	assert.InDelta(t, 100.0/3.0, c.CurrentTemperature(), 1e-12, "k=2")

	c.Reset()
	assert.Equal(t, 100.0, c.CurrentTemperature())
	c.NextStep()
	assert.InDelta(t, 50.0, c.CurrentTemperature(), 1e-12, "reset restarts the step counter")
}

// TestSchedules_MonotoneAbovePositiveFloor: for every variant, repeated
// NextStep calls never increase the temperature and never reach zero.
func TestSchedules_MonotoneAbovePositiveFloor(t *testing.T) {
	mk := func() []cooling.Schedule {
		g, err := cooling.NewGeometric(50, 0.9)
		require.NoError(t, err)
		l, err := cooling.NewLinear(50, 0.75)
		require.NoError(t, err)
		c, err := cooling.NewCauchy(50, 0.3)
		require.NoError(t, err)

		return []cooling.Schedule{g, l, c}
	}

	for _, s := range mk() {
		prev := s.CurrentTemperature()
		for i := 0; i < 200; i++ {
			s.NextStep()
			cur := s.CurrentTemperature()
			require.LessOrEqual(t, cur, prev, "%T step %d must not increase", s, i)
			require.Greater(t, cur, 0.0, "%T step %d must stay positive", s, i)
			prev = cur
		}
	}
}

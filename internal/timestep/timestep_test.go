package timestep_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"swept-aabb/internal/timestep"
)

func TestStepperAdvance(t *testing.T) {
	t.Run("spends whole steps and carries the remainder", func(t *testing.T) {
		s := timestep.New(0.012)
		var dts []float32
		n := s.Advance(0.05, func(dt float32) { dts = append(dts, dt) })

		require.Equal(t, 4, n)
		require.Len(t, dts, 4)
		for _, dt := range dts {
			require.Equal(t, float32(0.012), dt)
		}
		require.InDelta(t, 0.002, s.Pending(), 1e-4)
	})

	t.Run("sub-step frames accumulate until a tick fits", func(t *testing.T) {
		s := timestep.New(0.012)
		require.Equal(t, 0, s.Advance(0.008, func(float32) {}))
		require.Equal(t, 1, s.Advance(0.008, func(float32) {}))
		require.InDelta(t, 0.004, s.Pending(), 1e-4)
	})

	t.Run("clamps a stalled frame", func(t *testing.T) {
		s := timestep.New(0.012)
		// A 3-second stall contributes at most MaxFrameTime (0.25), which is
		// 20 whole steps plus 0.01 left over.
		n := s.Advance(3.0, func(float32) {})
		require.Equal(t, 20, n)
		require.InDelta(t, 0.01, s.Pending(), 1e-4)
	})

	t.Run("defaults apply when step is not positive", func(t *testing.T) {
		s := timestep.New(0)
		require.Equal(t, timestep.DefaultStep, s.Step)
		require.Equal(t, timestep.DefaultMaxFrameTime, s.MaxFrameTime)
	})
}

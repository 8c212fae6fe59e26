package physics_test

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"

	"swept-aabb/internal/physics"
)

func box(cx, cy, half float32) physics.AABB {
	return physics.AABB{
		Min: rl.NewVector2(cx-half, cy-half),
		Max: rl.NewVector2(cx+half, cy+half),
	}
}

func TestSweep(t *testing.T) {
	still := box(0, 0, 0.25)

	t.Run("zero displacement never collides", func(t *testing.T) {
		// Separated.
		hit := physics.Sweep(box(0.7, 0.7, 0.05), still, rl.NewVector2(0, 0))
		require.Equal(t, physics.NoHit, hit.Time)
		require.False(t, hit.Collided())
		require.Zero(t, hit.Normal.X)
		require.Zero(t, hit.Normal.Y)

		// Already overlapping: both entry times are -Inf, which the
		// both-negative case rejects. No motion, no new collision.
		hit = physics.Sweep(box(0.1, 0.1, 0.05), still, rl.NewVector2(0, 0))
		require.Equal(t, physics.NoHit, hit.Time)
	})

	t.Run("head-on +x hits at gap over speed", func(t *testing.T) {
		// Faces are 0.65 apart, displacement 1.3: impact halfway through.
		moving := box(-1, 0, 0.1)
		hit := physics.Sweep(moving, still, rl.NewVector2(1.3, 0))
		require.True(t, hit.Collided())
		require.InDelta(t, 0.5, hit.Time, 1e-6)
		require.Equal(t, float32(-1), hit.Normal.X)
		require.Equal(t, float32(0), hit.Normal.Y)
	})

	t.Run("head-on -y hits with +y normal", func(t *testing.T) {
		moving := box(0, 0.7, 0.05)
		// Faces 0.4 apart, displacement -0.8.
		hit := physics.Sweep(moving, still, rl.NewVector2(0, -0.8))
		require.True(t, hit.Collided())
		require.InDelta(t, 0.5, hit.Time, 1e-6)
		require.Equal(t, float32(0), hit.Normal.X)
		require.Equal(t, float32(1), hit.Normal.Y)
	})

	t.Run("grazing corner miss when x exits before y enters", func(t *testing.T) {
		// Starts above-right, sweeps fast to the left while drifting down:
		// the x projection has left the obstacle before the y projection
		// reaches it, so entry > exit.
		moving := box(0.35, 0.55, 0.05)
		hit := physics.Sweep(moving, still, rl.NewVector2(-3.0, -0.6))
		require.Equal(t, physics.NoHit, hit.Time)
		require.Zero(t, hit.Normal.X)
		require.Zero(t, hit.Normal.Y)
	})

	t.Run("overlap at tick start reports no new collision", func(t *testing.T) {
		// Both entry gaps are behind the motion, so both entry times are
		// negative: the crossing already happened.
		moving := box(0.05, 0.05, 0.1)
		hit := physics.Sweep(moving, still, rl.NewVector2(0.1, 0.1))
		require.Equal(t, physics.NoHit, hit.Time)
	})

	t.Run("too far to reach this tick", func(t *testing.T) {
		// Faces 0.65 apart but displacement only 0.5: entry time > 1.
		moving := box(-1, 0, 0.1)
		hit := physics.Sweep(moving, still, rl.NewVector2(0.5, 0))
		require.Equal(t, physics.NoHit, hit.Time)
	})

	t.Run("separated on a zero-displacement axis", func(t *testing.T) {
		// Motion only along x, boxes a full extent apart in y: the y branch
		// forces the entry past 1.
		moving := box(-1, 2, 0.1)
		hit := physics.Sweep(moving, still, rl.NewVector2(1.3, 0))
		require.Equal(t, physics.NoHit, hit.Time)
	})

	t.Run("exact corner tie reflects on x", func(t *testing.T) {
		// Perfect diagonal approach onto the (0.25, 0.25) corner: both axes
		// enter at 0.5; the x axis wins the tie.
		moving := box(0.4, 0.4, 0.05)
		hit := physics.Sweep(moving, still, rl.NewVector2(-0.2, -0.2))
		require.InDelta(t, 0.5, hit.Time, 1e-6)
		require.Equal(t, float32(1), hit.Normal.X)
		require.Equal(t, float32(0), hit.Normal.Y)
	})

	t.Run("pure function", func(t *testing.T) {
		moving := box(-1, 0.1, 0.1)
		disp := rl.NewVector2(1.3, -0.05)
		first := physics.Sweep(moving, still, disp)
		second := physics.Sweep(moving, still, disp)
		require.Equal(t, first, second)
	})
}

func TestAABBOverlaps(t *testing.T) {
	a := box(0, 0, 0.25)
	require.True(t, a.Overlaps(box(0.2, 0.2, 0.25)))
	require.False(t, a.Overlaps(box(1, 0, 0.25)))
	require.True(t, a.Valid())
}

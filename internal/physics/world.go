package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// World holds the two bodies of the demo and runs one fixed physics tick:
// world-boundary bounce, bounds refresh, swept AABB test, and the split-step
// bounce response. Moving is the subject of the swept test, Still the
// obstacle; Still keeps zero velocity but is integrated like any body so the
// asymmetry lives in the test call, not in the integration.
type World struct {
	Moving *Body
	Still  *Body

	// BoundX/BoundY are the world limits: when |position| on an axis exceeds
	// the bound, that axis's velocity is negated at the start of the tick.
	BoundX float32
	BoundY float32

	// Ticks counts completed Step calls.
	Ticks uint64

	// OnImpact, if set, is called once per tick the swept test reports a hit.
	OnImpact func(Hit)
	// OnBounce, if set, is called when a world boundary flips an axis
	// ('x' or 'y').
	OnBounce func(axis byte)
}

// NewWorld returns a world stepping the moving body against the still one
// inside the given bounds.
func NewWorld(moving, still *Body, boundX, boundY float32) *World {
	return &World{
		Moving: moving,
		Still:  still,
		BoundX: boundX,
		BoundY: boundY,
	}
}

// Step advances the simulation by one fixed physics duration dt.
//
// When the swept test finds a hit within the tick, the response runs in two
// sub-steps: integrate both bodies to the impact instant with the old
// velocity, reflect the moving body's velocity on each axis the normal
// reports, then integrate the remainder of the tick with the reflected
// velocity. Stopping at the impact boundary before resuming is what prevents
// tunneling.
func (w *World) Step(dt float32) {
	w.Ticks++

	// World boundary bounce. Not collision detection: just flips the velocity
	// once per tick per over-extended axis, before bounds are refreshed.
	if math32.Abs(w.Moving.Position.X) > w.BoundX {
		w.Moving.Velocity.X = -w.Moving.Velocity.X
		if w.OnBounce != nil {
			w.OnBounce('x')
		}
	}
	if math32.Abs(w.Moving.Position.Y) > w.BoundY {
		w.Moving.Velocity.Y = -w.Moving.Velocity.Y
		if w.OnBounce != nil {
			w.OnBounce('y')
		}
	}

	// Position or scale may have changed since last tick.
	w.Moving.RefreshBounds()
	w.Still.RefreshBounds()

	disp := rl.NewVector2(w.Moving.Velocity.X*dt, w.Moving.Velocity.Y*dt)
	hit := Sweep(w.Moving.Bounds, w.Still.Bounds, disp)

	// remaining < 0 only for the NoHit sentinel; remaining == 0 is a hit
	// exactly at the end of the tick.
	remaining := 1 - hit.Time
	if remaining < 0 {
		w.Moving.Integrate(dt)
		w.Still.Integrate(dt)
		return
	}

	vel := w.Moving.Velocity
	if math32.Abs(hit.Normal.X) > normalEpsilon {
		vel.X = -vel.X
	}
	if math32.Abs(hit.Normal.Y) > normalEpsilon {
		vel.Y = -vel.Y
	}

	// Up to the impact with the old velocity, then the rest with the bounce.
	w.Moving.Integrate(hit.Time * dt)
	w.Still.Integrate(hit.Time * dt)
	w.Moving.Velocity = vel
	w.Moving.Integrate(remaining * dt)
	w.Still.Integrate(remaining * dt)

	if w.OnImpact != nil {
		w.OnImpact(hit)
	}
}

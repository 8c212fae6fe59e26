package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"swept-aabb/internal/shape"
)

// Body is a simulated entity: position, velocity, scale, and the bounding box
// derived from them. Geometry is shared; the body only holds a handle into the
// shape registry, which outlives all bodies.
type Body struct {
	Position rl.Vector3
	Velocity rl.Vector3
	Scale    rl.Vector3
	Bounds   AABB
	Shape    shape.Handle
}

// NewBody returns a body at the given position with the given scale and shape.
// Velocity is zero. Bounds are computed immediately so the body is usable
// before the first tick.
func NewBody(position, scale rl.Vector3, h shape.Handle) *Body {
	b := &Body{
		Position: position,
		Scale:    scale,
		Shape:    h,
	}
	b.RefreshBounds()
	return b
}

// RefreshBounds recomputes the body's AABB from its transform. The shared
// square model spans ±1, so scale is the half extent on each axis. Orientation
// is ignored on purpose: the box stays axis-aligned even if the drawn shape
// were rotated.
func (b *Body) RefreshBounds() {
	b.Bounds = AABB{
		Min: rl.NewVector2(b.Position.X-b.Scale.X, b.Position.Y-b.Scale.Y),
		Max: rl.NewVector2(b.Position.X+b.Scale.X, b.Position.Y+b.Scale.Y),
	}
}

// Integrate advances the position by velocity over dt.
func (b *Body) Integrate(dt float32) {
	b.Position.X += b.Velocity.X * dt
	b.Position.Y += b.Velocity.Y * dt
	b.Position.Z += b.Velocity.Z * dt
}

// Transform returns the body's world matrix (scale then translate) for the
// renderer.
func (b *Body) Transform() rl.Matrix {
	scale := rl.MatrixScale(b.Scale.X, b.Scale.Y, b.Scale.Z)
	trans := rl.MatrixTranslate(b.Position.X, b.Position.Y, b.Position.Z)
	return rl.MatrixMultiply(scale, trans)
}

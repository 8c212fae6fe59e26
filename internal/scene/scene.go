package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"swept-aabb/internal/physics"
	"swept-aabb/internal/shape"
)

// Colors for the two bodies and the debug overlays. The background clears to
// near-white, so everything here is dark.
var (
	stillColor  = rl.NewColor(200, 40, 40, 255)
	movingColor = rl.NewColor(40, 40, 200, 255)
	boundsColor = rl.NewColor(40, 160, 40, 255)
	limitColor  = rl.NewColor(150, 150, 150, 255)
)

// overlayDepth lifts debug lines slightly toward the camera so they are not
// z-fighting the quads.
const overlayDepth = 0.01

// Scene holds the camera and draws the simulation. The camera looks straight
// down -Z at the origin from (0,0,2), which frames the ±0.9/±0.8 world.
type Scene struct {
	Camera rl.Camera3D

	// ShowBounds draws each body's AABB wireframe and the world boundary
	// rectangle the moving body bounces off.
	ShowBounds bool

	shapes *shape.Registry
}

// New returns a scene drawing through the given shape registry.
func New(shapes *shape.Registry) *Scene {
	s := &Scene{shapes: shapes}
	s.Camera.Position = rl.NewVector3(0, 0, 2)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// Draw renders both bodies (and optional overlays) between BeginMode3D and
// EndMode3D. Call once per frame after ClearBackground.
func (s *Scene) Draw(w *physics.World) {
	rl.BeginMode3D(s.Camera)
	s.shapes.Draw(w.Still.Shape, w.Still.Transform(), stillColor)
	s.shapes.Draw(w.Moving.Shape, w.Moving.Transform(), movingColor)
	if s.ShowBounds {
		drawBox(w.Still.Bounds, boundsColor)
		drawBox(w.Moving.Bounds, boundsColor)
		drawBox(physics.AABB{
			Min: rl.NewVector2(-w.BoundX, -w.BoundY),
			Max: rl.NewVector2(w.BoundX, w.BoundY),
		}, limitColor)
	}
	rl.EndMode3D()
}

// drawBox draws an AABB as a wireframe rectangle at the overlay depth.
func drawBox(b physics.AABB, c rl.Color) {
	bl := rl.NewVector3(b.Min.X, b.Min.Y, overlayDepth)
	br := rl.NewVector3(b.Max.X, b.Min.Y, overlayDepth)
	tr := rl.NewVector3(b.Max.X, b.Max.Y, overlayDepth)
	tl := rl.NewVector3(b.Min.X, b.Max.Y, overlayDepth)
	rl.DrawLine3D(bl, br, c)
	rl.DrawLine3D(br, tr, c)
	rl.DrawLine3D(tr, tl, c)
	rl.DrawLine3D(tl, bl, c)
}

// Package shape owns the shared geometry both bodies are drawn with. Bodies
// hold a Handle, never the mesh itself, so one set of GPU buffers serves any
// number of bodies and the registry controls resource lifetime: it is created
// before the bodies and unloaded after the last draw.
package shape

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Handle identifies a shared shape in the registry.
type Handle int

// Square is the unit quad spanning ±1 on X and Y, so a body's scale is its
// half extent.
const Square Handle = iota

// squareDepth keeps the quad a degenerate-thin cube so the cube mesh's front
// face renders like a 2D square.
const squareDepth = 0.001

// cached holds mesh and material for one shape. Created lazily on first Draw
// so GPU resources are allocated after the window/GL context exists.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// Registry maps handles to mesh+material and owns their GPU resources.
type Registry struct {
	cache map[Handle]cached
}

// NewRegistry returns an empty registry. Meshes are created on first use.
func NewRegistry() *Registry {
	return &Registry{cache: make(map[Handle]cached)}
}

// ensureSquare creates the square mesh and default material if not yet cached.
func (r *Registry) ensureSquare() {
	if _, ok := r.cache[Square]; ok {
		return
	}
	mesh := rl.GenMeshCube(2, 2, squareDepth)
	mtl := rl.LoadMaterialDefault()
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
	r.cache[Square] = cached{mesh: mesh, mtl: mtl}
}

// Draw renders the shape with the given world transform and tint. Unknown
// handles draw nothing.
func (r *Registry) Draw(h Handle, transform rl.Matrix, tint rl.Color) {
	if h != Square {
		return
	}
	r.ensureSquare()
	c := r.cache[h]
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	rl.DrawMesh(c.mesh, c.mtl, transform)
}

// Unload frees all GPU resources. Call before the window closes, after the
// bodies are done drawing.
func (r *Registry) Unload() {
	for h, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		rl.UnloadMaterial(c.mtl)
		delete(r.cache, h)
	}
}

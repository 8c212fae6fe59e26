package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// NoHit is the time returned by Sweep when no collision happens this tick.
// It sits strictly outside [0,1] so callers can branch on Time <= 1.
const NoHit float32 = 2.0

// normalEpsilon: a reported normal component below this is treated as "no
// contact on that axis" when reflecting velocity.
const normalEpsilon = 1e-4

// AABB is a 2D axis-aligned bounding box. Min <= Max on both axes.
type AABB struct {
	Min rl.Vector2
	Max rl.Vector2
}

// Valid reports whether Min <= Max holds on both axes.
func (a AABB) Valid() bool {
	return a.Min.X <= a.Max.X && a.Min.Y <= a.Max.Y
}

// Overlaps is the discrete (non-swept) AABB test. The simulation's response
// uses Sweep; this is kept for overlays and sanity checks.
func (a AABB) Overlaps(b AABB) bool {
	if a.Max.X < b.Min.X || a.Min.X > b.Max.X {
		return false
	}
	if a.Max.Y < b.Min.Y || a.Min.Y > b.Max.Y {
		return false
	}
	return true
}

// Hit is the result of a swept test: the fraction of the displacement at
// which the boxes first touch, and the surface normal of the face that was
// hit. Normal is zero and Time is NoHit when there is no collision.
type Hit struct {
	Time   float32
	Normal rl.Vector2
}

// Collided reports whether the hit happened within this tick's displacement.
func (h Hit) Collided() bool {
	return h.Time <= 1
}

// Sweep runs a swept AABB test: moving travels by disp this tick, still does
// not move. A caller with two moving boxes passes the relative displacement
// (subject minus obstacle) and keeps still as the obstacle's box.
//
// Per axis it computes the signed entry/exit gaps between the leading and
// trailing faces, oriented by the direction of travel, then converts them to
// times by dividing by the displacement. The collision happens at the latest
// per-axis entry and ends at the earliest per-axis exit; anything else is a
// miss. On an exact entry-time tie (perfect corner hit) the x axis wins, so
// the normal is deterministic.
func Sweep(moving, still AABB, disp rl.Vector2) Hit {
	var entryDist, exitDist rl.Vector2

	// Gap between the faces along the direction of travel. The calculation
	// order flips with the displacement sign so the gaps keep the right sign.
	if disp.X > 0 {
		entryDist.X = still.Min.X - moving.Max.X
		exitDist.X = still.Max.X - moving.Min.X
	} else {
		entryDist.X = still.Max.X - moving.Min.X
		exitDist.X = still.Min.X - moving.Max.X
	}
	if disp.Y > 0 {
		entryDist.Y = still.Min.Y - moving.Max.Y
		exitDist.Y = still.Max.Y - moving.Min.Y
	} else {
		entryDist.Y = still.Max.Y - moving.Min.Y
		exitDist.Y = still.Min.Y - moving.Max.Y
	}

	var entry, exit rl.Vector2

	// No displacement on an axis means no division. If the boxes are farther
	// apart on that axis than their combined extents they can never meet this
	// tick (entry forced past 1); otherwise the axis never excludes the
	// collision (entry -Inf).
	if disp.X == 0 {
		combined := (moving.Max.X - moving.Min.X) + (still.Max.X - still.Min.X)
		if math32.Max(math32.Abs(entryDist.X), math32.Abs(exitDist.X)) > combined {
			entry.X = NoHit
		} else {
			entry.X = math32.Inf(-1)
		}
		exit.X = math32.Inf(1)
	} else {
		entry.X = entryDist.X / disp.X
		exit.X = exitDist.X / disp.X
	}
	if disp.Y == 0 {
		combined := (moving.Max.Y - moving.Min.Y) + (still.Max.Y - still.Min.Y)
		if math32.Max(math32.Abs(entryDist.Y), math32.Abs(exitDist.Y)) > combined {
			entry.Y = NoHit
		} else {
			entry.Y = math32.Inf(-1)
		}
		exit.Y = math32.Inf(1)
	} else {
		entry.Y = entryDist.Y / disp.Y
		exit.Y = exitDist.Y / disp.Y
	}

	// Both axes must overlap at once: the collision starts at the latest
	// entry and ends at the earliest exit.
	entryTime := math32.Max(entry.X, entry.Y)
	exitTime := math32.Min(exit.X, exit.Y)

	// Each of these alone means no collision: one axis exits before the other
	// enters; the crossing already happened before this tick; or an axis
	// doesn't enter until after this tick's displacement.
	if entryTime > exitTime || entry.X < 0 && entry.Y < 0 || entry.X > 1 || entry.Y > 1 {
		return Hit{Time: NoHit}
	}

	// The colliding axis is the one that entered last. The normal opposes the
	// direction of travel on that axis: a negative entry gap means the moving
	// box approached from the positive side.
	var n rl.Vector2
	if entry.X >= entry.Y {
		if entryDist.X < 0 {
			n.X = 1
		} else {
			n.X = -1
		}
	} else {
		if entryDist.Y < 0 {
			n.Y = 1
		} else {
			n.Y = -1
		}
	}
	return Hit{Time: entryTime, Normal: n}
}

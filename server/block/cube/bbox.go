package cube

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BBox represents an Axis Aligned Bounding Box in a 3D space. It is defined as two Vec3s, of which one is the
// minimum and one is the maximum.
type BBox struct {
	min, max mgl64.Vec3
}

// Box creates a new axis aligned bounding box with the minimum and maximum coordinates provided. The returned
// box has minimum and maximum coordinates swapped if necessary so that it is well-formed.
func Box(x0, y0, z0, x1, y1, z1 float64) BBox {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if z0 > z1 {
		z0, z1 = z1, z0
	}
	return BBox{min: mgl64.Vec3{x0, y0, z0}, max: mgl64.Vec3{x1, y1, z1}}
}

// NewBBox creates a BBox spanning the two corners passed.
func NewBBox(a, b mgl64.Vec3) BBox {
	return Box(a[0], a[1], a[2], b[0], b[1], b[2])
}

// String returns the minimum and maximum corner of the box.
func (box BBox) String() string {
	return fmt.Sprintf("[%v -> %v]", box.min, box.max)
}

// Min returns the minimum coordinate of the bounding box.
func (box BBox) Min() mgl64.Vec3 {
	return box.min
}

// Max returns the maximum coordinate of the bounding box.
func (box BBox) Max() mgl64.Vec3 {
	return box.max
}

// Size returns the extent of the box along each axis.
func (box BBox) Size() mgl64.Vec3 {
	return box.max.Sub(box.min)
}

// Width returns the width of the BBox.
func (box BBox) Width() float64 {
	return box.max[0] - box.min[0]
}

// Length returns the length of the BBox.
func (box BBox) Length() float64 {
	return box.max[2] - box.min[2]
}

// Height returns the height of the BBox.
func (box BBox) Height() float64 {
	return box.max[1] - box.min[1]
}

// Grow grows the bounding box in all directions by x and returns the new bounding box.
func (box BBox) Grow(x float64) BBox {
	add := mgl64.Vec3{x, x, x}
	return BBox{min: box.min.Sub(add), max: box.max.Add(add)}
}

// Extend expands the BBox on all axes as represented by the Vec3 passed. Negative coordinates result in an
// expansion towards the negative axis, and vice versa for positive coordinates.
func (box BBox) Extend(vec mgl64.Vec3) BBox {
	for i := 0; i < 3; i++ {
		if vec[i] < 0 {
			box.min[i] += vec[i]
		} else {
			box.max[i] += vec[i]
		}
	}
	return box
}

// Translate moves the entire BBox with the Vec3 given. The (minimum and maximum) x, y and z coordinates are
// moved by those in the Vec3 passed.
func (box BBox) Translate(vec mgl64.Vec3) BBox {
	return BBox{min: box.min.Add(vec), max: box.max.Add(vec)}
}

// TranslateAxis moves the BBox by d along a single axis (0, 1 or 2).
func (box BBox) TranslateAxis(axis int, d float64) BBox {
	box.min[axis] += d
	box.max[axis] += d
	return box
}

// WithMinAxis places the BBox so that its minimum along the axis equals v exactly, keeping its size.
func (box BBox) WithMinAxis(axis int, v float64) BBox {
	size := box.max[axis] - box.min[axis]
	box.min[axis], box.max[axis] = v, v+size
	return box
}

// WithMaxAxis places the BBox so that its maximum along the axis equals v exactly, keeping its size.
func (box BBox) WithMaxAxis(axis int, v float64) BBox {
	size := box.max[axis] - box.min[axis]
	box.min[axis], box.max[axis] = v-size, v
	return box
}

// IntersectsWith checks if the BBox intersects with another BBox, returning true if this is the case. Boxes that
// only share a face do not intersect.
func (box BBox) IntersectsWith(other BBox) bool {
	return box.intersectsAxis(other, 0) && box.intersectsAxis(other, 1) && box.intersectsAxis(other, 2)
}

func (box BBox) intersectsAxis(other BBox, axis int) bool {
	return other.max[axis] > box.min[axis] && other.min[axis] < box.max[axis]
}

// Penetration returns, per axis, how far the BBox would have to move to stop overlapping other, together with
// the sign of that movement: positive if moving towards the positive axis is the shorter way out.
func (box BBox) Penetration(other BBox) (depth mgl64.Vec3, positive [3]bool) {
	for i := 0; i < 3; i++ {
		up, down := other.max[i]-box.min[i], box.max[i]-other.min[i]
		depth[i], positive[i] = Min(up, down), up <= down
	}
	return depth, positive
}

// Vec3Within checks if the BBox has a Vec3 within it, returning true if it does.
func (box BBox) Vec3Within(vec mgl64.Vec3) bool {
	return vec[0] > box.min[0] && vec[0] < box.max[0] &&
		vec[1] > box.min[1] && vec[1] < box.max[1] &&
		vec[2] > box.min[2] && vec[2] < box.max[2]
}

// Positions returns the range of voxel positions touched by the BBox, each axis widened by pad voxels.
func (box BBox) Positions(pad int) (from, to Pos) {
	from = PosFromVec3(box.min).Sub(Pos{pad, pad, pad})
	to = Pos{
		int(math.Floor(box.max[0])) + pad,
		int(math.Floor(box.max[1])) + pad,
		int(math.Floor(box.max[2])) + pad,
	}
	return from, to
}

// Package frustum implements view frustum culling of axis aligned boxes.
package frustum

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/terrastream/terra/server/block/cube"
)

// Plane is a plane in the form Normal·p + D = 0. Points with a positive distance lie on the inner side.
type Plane struct {
	Normal mgl64.Vec3
	D      float64
}

// Distance returns the signed distance from the plane to the point passed.
func (p Plane) Distance(point mgl64.Vec3) float64 {
	return p.Normal.Dot(point) + p.D
}

// normalize scales the plane so that its normal has unit length. Planes with a zero length normal are
// returned unchanged.
func (p Plane) normalize() Plane {
	l := p.Normal.Len()
	if l == 0 {
		return p
	}
	return Plane{Normal: p.Normal.Mul(1 / l), D: p.D / l}
}

// Frustum is the volume visible through a camera, bounded by six planes.
type Frustum struct {
	// Planes holds the left, right, bottom, top, near and far planes in that order.
	Planes [6]Plane
}

// FromMatrix extracts the frustum of a combined view-projection matrix.
func FromMatrix(vp mgl64.Mat4) *Frustum {
	r0, r1, r2, r3 := vp.Row(0), vp.Row(1), vp.Row(2), vp.Row(3)
	f := &Frustum{}
	for i, row := range [6]mgl64.Vec4{
		r3.Add(r0),
		r3.Sub(r0),
		r3.Add(r1),
		r3.Sub(r1),
		r3.Add(r2),
		r3.Sub(r2),
	} {
		f.Planes[i] = Plane{Normal: row.Vec3(), D: row[3]}.normalize()
	}
	return f
}

// BoxVisible reports if any part of the box spanning min to max may be visible. For every plane the corner of
// the box furthest along the plane's normal is tested: if it lies outside, the whole box does.
func (f *Frustum) BoxVisible(min, max mgl64.Vec3) bool {
	for _, p := range f.Planes {
		var v mgl64.Vec3
		for i := 0; i < 3; i++ {
			if p.Normal[i] >= 0 {
				v[i] = max[i]
			} else {
				v[i] = min[i]
			}
		}
		if p.Distance(v) < 0 {
			return false
		}
	}
	return true
}

// BBoxVisible is a shorthand for BoxVisible(box.Min(), box.Max()).
func (f *Frustum) BBoxVisible(box cube.BBox) bool {
	return f.BoxVisible(box.Min(), box.Max())
}

// PointVisible reports if the point passed lies inside of the frustum.
func (f *Frustum) PointVisible(p mgl64.Vec3) bool {
	for _, pl := range f.Planes {
		if pl.Distance(p) < 0 {
			return false
		}
	}
	return true
}

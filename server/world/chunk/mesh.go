package chunk

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/terrastream/terra/server/block"
	"github.com/terrastream/terra/server/block/cube"
)

// Vertex is a single vertex of chunk geometry, laid out for direct upload to a vertex buffer.
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	Normal   mgl32.Vec3
}

// faceCorners holds the four corners of the unit cube face in counter-clockwise order, seen from outside.
var faceCorners = [6][4]mgl32.Vec3{
	cube.FaceDown:  {{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
	cube.FaceUp:    {{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}},
	cube.FaceNorth: {{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}},
	cube.FaceSouth: {{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
	cube.FaceWest:  {{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
	cube.FaceEast:  {{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}},
}

// Shade returns the brightness multiplier applied to faces pointing in the direction passed.
func Shade(f cube.Face) float32 {
	switch f {
	case cube.FaceUp:
		return 1
	case cube.FaceDown:
		return 0.7
	case cube.FaceNorth, cube.FaceSouth:
		return 0.8
	default:
		return 0.9
	}
}

// visibleFace reports if the face between a voxel of kind k and its neighbour n must be drawn.
func visibleFace(k, n block.Kind) bool {
	if k == block.Air {
		return false
	}
	if k.Transparent() {
		return n == block.Air
	}
	return n.Transparent()
}

// Mesh builds the surface geometry of the chunk in world space. Every visible face contributes two triangles
// as six vertices. Neighbours outside the chunk are treated as air, so faces on the chunk boundary are always
// emitted.
func (c *Chunk) Mesh() []Vertex {
	var verts []Vertex
	o := mgl32.Vec3{float32(c.origin[0]), float32(c.origin[1]), float32(c.origin[2])}
	for x := 0; x < Size; x++ {
		for z := 0; z < Size; z++ {
			for y := 0; y < Size; y++ {
				k := c.blocks[(x*Size+z)*Size+y]
				if k == block.Air {
					continue
				}
				base := o.Add(mgl32.Vec3{float32(x), float32(y), float32(z)})
				for _, f := range cube.Faces() {
					side := cube.Pos{x, y, z}.Side(f)
					if !visibleFace(k, c.Block(side[0], side[1], side[2])) {
						continue
					}
					verts = appendFace(verts, base, f, k.Color().Mul(Shade(f)))
				}
			}
		}
	}
	return verts
}

// appendFace appends the two triangles of the face f of the voxel at base.
func appendFace(verts []Vertex, base mgl32.Vec3, f cube.Face, color mgl32.Vec3) []Vertex {
	n := f.Normal()
	normal := mgl32.Vec3{float32(n[0]), float32(n[1]), float32(n[2])}
	c := faceCorners[f]
	for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
		verts = append(verts, Vertex{Position: base.Add(c[i]), Color: color, Normal: normal})
	}
	return verts
}

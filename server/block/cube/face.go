package cube

import "github.com/go-gl/mathgl/mgl64"

// Face represents the face of a voxel or entity.
type Face int

const (
	// FaceDown represents the bottom face of a voxel.
	FaceDown Face = iota
	// FaceUp represents the top face of a voxel.
	FaceUp
	// FaceNorth represents the north face of a voxel, facing -Z.
	FaceNorth
	// FaceSouth represents the south face of a voxel, facing +Z.
	FaceSouth
	// FaceWest represents the west face of a voxel, facing -X.
	FaceWest
	// FaceEast represents the east face of a voxel, facing +X.
	FaceEast
)

// Faces returns all six faces in their iota order.
func Faces() []Face {
	return faces[:]
}

var faces = [...]Face{FaceDown, FaceUp, FaceNorth, FaceSouth, FaceWest, FaceEast}

// Axis returns the index (0, 1 or 2) of the axis the face is perpendicular to.
func (f Face) Axis() int {
	switch f {
	case FaceDown, FaceUp:
		return 1
	case FaceNorth, FaceSouth:
		return 2
	default:
		return 0
	}
}

// Positive reports if the face points along the positive direction of its axis.
func (f Face) Positive() bool {
	return f == FaceUp || f == FaceSouth || f == FaceEast
}

// Normal returns the outward unit normal of the face.
func (f Face) Normal() mgl64.Vec3 {
	var n mgl64.Vec3
	if f.Positive() {
		n[f.Axis()] = 1
	} else {
		n[f.Axis()] = -1
	}
	return n
}

// String returns the name of the face.
func (f Face) String() string {
	switch f {
	case FaceDown:
		return "down"
	case FaceUp:
		return "up"
	case FaceNorth:
		return "north"
	case FaceSouth:
		return "south"
	case FaceWest:
		return "west"
	case FaceEast:
		return "east"
	}
	panic("invalid face")
}

package entity

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/terrastream/terra/server/block/cube"
)

// MovementComputer is used to compute the movement of bodies through the voxel world. The zero value is not
// usable: NewMovementComputer returns a computer with the default constants.
type MovementComputer struct {
	// Gravity is the vertical acceleration applied to bodies that are not on the ground, in blocks/s².
	Gravity float64
	// TerminalVelocity is the lowest vertical velocity a falling body can reach, in blocks/s.
	TerminalVelocity float64
	// MaxStep is the longest distance a body is moved along a single axis before collisions are resolved.
	MaxStep float64
}

// NewMovementComputer returns a MovementComputer using earth gravity.
func NewMovementComputer() *MovementComputer {
	return &MovementComputer{Gravity: -9.81, TerminalVelocity: -54, MaxStep: 0.5}
}

// groundProbe is the distance below a body checked for ground when it is on the ground.
const groundProbe = 1e-3

// maxPushes bounds the amount of push outs per axis step.
const maxPushes = 16

// posPool caches scratch slices holding the voxel positions a body may collide with.
var posPool = sync.Pool{
	New: func() any {
		return make([]cube.Pos, 0, 64)
	},
}

// Tick advances the body by dt seconds. Gravity is applied to bodies in the air, the velocity is integrated
// and the resulting movement is resolved against the voxels of src.
func (c *MovementComputer) Tick(src VoxelSource, b Body, dt float64) Body {
	if b.OnGround && !c.grounded(src, b.Box) {
		// The ground below the body disappeared.
		b.OnGround = false
	}
	if !b.OnGround {
		b.Acceleration[1] = c.Gravity
	}
	b.Velocity = b.Velocity.Add(b.Acceleration.Mul(dt))
	if b.Velocity[1] < c.TerminalVelocity {
		b.Velocity[1] = c.TerminalVelocity
	}
	b = c.ResolveMove(src, b, b.Velocity.Mul(dt))
	b.Acceleration = mgl64.Vec3{}
	return b
}

// ResolveMove moves the body by delta, one axis at a time in steps no longer than MaxStep or half the
// smallest extent of the body. After every step, the body is pushed out of any solid voxel it overlaps along
// the axis of least penetration, and its velocity on that axis is zeroed. The body ends up on the ground if
// it is pushed upwards. A step that cannot be resolved is undone and blocks its axis. Fluids never collide.
func (c *MovementComputer) ResolveMove(src VoxelSource, b Body, delta mgl64.Vec3) Body {
	if delta[1] != 0 {
		b.OnGround = false
	}
	longest := math.Max(math.Abs(delta[0]), math.Max(math.Abs(delta[1]), math.Abs(delta[2])))
	steps := 1
	if limit := c.stepLimit(b.Box); limit > 0 && longest > limit {
		steps = int(math.Ceil(longest / limit))
	}
	step := delta.Mul(1 / float64(steps))

	var blocked [3]bool
	for i := 0; i < steps; i++ {
		for axis := 0; axis < 3; axis++ {
			if step[axis] == 0 || blocked[axis] {
				continue
			}
			before := b
			b.Box = b.Box.TranslateAxis(axis, step[axis])
			pushed, ok := c.pushOut(src, &b, axis)
			if !ok {
				b = before
				b.Velocity[axis] = 0
				blocked[axis] = true
				continue
			}
			for _, a := range pushed {
				if a == axis {
					blocked[axis] = true
				}
			}
		}
	}
	b.Position = b.Box.Min()
	return b
}

// stepLimit returns the longest distance the box passed may move along an axis in a single step. Limiting
// steps to half the smallest extent keeps a box from passing more than halfway into a voxel.
func (c *MovementComputer) stepLimit(box cube.BBox) float64 {
	size := box.Size()
	limit := math.Min(size[0], math.Min(size[1], size[2])) / 2
	if c.MaxStep > 0 && (limit <= 0 || c.MaxStep < limit) {
		limit = c.MaxStep
	}
	return limit
}

// pushOut pushes the box of the body out of every solid voxel it overlaps and returns the axes it was pushed
// along. moved is the axis the box was last moved along: it wins ties in penetration depth. ok is false if
// the box still overlaps a voxel after maxPushes pushes.
func (c *MovementComputer) pushOut(src VoxelSource, b *Body, moved int) (axes []int, ok bool) {
	for range maxPushes {
		cell, overlaps := c.firstOverlap(src, b.Box)
		if !overlaps {
			return axes, true
		}
		depth, positive := b.Box.Penetration(cell)
		axis := leastAxis(depth, moved)
		if positive[axis] {
			b.Box = b.Box.WithMinAxis(axis, cell.Max()[axis])
		} else {
			b.Box = b.Box.WithMaxAxis(axis, cell.Min()[axis])
		}
		b.Velocity[axis] = 0
		if axis == 1 && positive[1] {
			b.OnGround = true
		}
		axes = append(axes, axis)
	}
	_, overlaps := c.firstOverlap(src, b.Box)
	return axes, !overlaps
}

// leastAxis returns the axis with the smallest depth, preferring the moved axis and then the Y axis when
// depths are equal.
func leastAxis(depth mgl64.Vec3, moved int) int {
	best := moved
	for _, axis := range [...]int{1, 0, 2} {
		if depth[axis] < depth[best]-1e-9 {
			best = axis
		}
	}
	return best
}

// firstOverlap returns the box of the first solid voxel overlapping the box passed.
func (c *MovementComputer) firstOverlap(src VoxelSource, box cube.BBox) (cube.BBox, bool) {
	positions := voxelsAround(box)
	defer posPool.Put(positions[:0])

	for _, pos := range positions {
		if !src.Voxel(pos).Collides() {
			continue
		}
		if cell := pos.BBox(); box.IntersectsWith(cell) {
			return cell, true
		}
	}
	return cube.BBox{}, false
}

// grounded reports if a solid voxel lies directly below the box passed.
func (c *MovementComputer) grounded(src VoxelSource, box cube.BBox) bool {
	_, ok := c.firstOverlap(src, box.TranslateAxis(1, -groundProbe))
	return ok
}

// voxelsAround returns the positions of all voxels the box passed may touch, widened by one voxel on every
// side.
func voxelsAround(box cube.BBox) []cube.Pos {
	from, to := box.Positions(1)
	positions := posPool.Get().([]cube.Pos)
	for y := from[1]; y <= to[1]; y++ {
		for x := from[0]; x <= to[0]; x++ {
			for z := from[2]; z <= to[2]; z++ {
				positions = append(positions, cube.Pos{x, y, z})
			}
		}
	}
	return positions
}

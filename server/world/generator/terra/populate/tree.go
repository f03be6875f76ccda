package populate

import (
	"math/rand/v2"

	"github.com/terrastream/terra/server/block"
	"github.com/terrastream/terra/server/block/cube"
)

// MaxTreeHeight is the highest a tree may reach above the voxel it is planted on.
const MaxTreeHeight = 16

// TreeType is a shape of tree. Grow plants the tree with its trunk starting at pos, the voxel above the
// ground. The random source passed must be seeded from the tree's position only: every chunk the tree
// spans grows the same tree and keeps the part inside of it.
type TreeType interface {
	Grow(a Area, pos cube.Pos, r *rand.Rand)
}

// SpruceTree is a narrow conifer with a layered, cone shaped canopy.
type SpruceTree struct{}

// Grow ...
func (SpruceTree) Grow(a Area, pos cube.Pos, r *rand.Rand) {
	treeHeight := r.IntN(4) + 6

	topSize := treeHeight - (1 + r.IntN(2))
	lr := 2 + r.IntN(2)

	trunk(a, pos, block.SpruceLog, treeHeight-r.IntN(3))

	radius := r.IntN(2)
	minR, maxR := 0, 1

	for y := 0; y <= topSize; y++ {
		yy := pos[1] + treeHeight - y
		for x := pos[0] - radius; x <= pos[0]+radius; x++ {
			xOff := cube.Abs(x - pos[0])
			for z := pos[2] - radius; z <= pos[2]+radius; z++ {
				zOff := cube.Abs(z - pos[2])
				if xOff == radius && zOff == radius && radius > 0 {
					continue
				}
				p := cube.Pos{x, yy, z}
				if a.Contains(p) && overridable(a.Block(p)) {
					a.SetBlock(p, block.SpruceLeaves)
				}
			}
		}

		if radius >= maxR {
			radius = minR
			minR = 1
			if maxR++; maxR > lr {
				maxR = lr
			}
		} else {
			radius++
		}
	}
}

// OakTree is the common broadleaf tree.
type OakTree struct{}

// Grow ...
func (OakTree) Grow(a Area, pos cube.Pos, r *rand.Rand) {
	treeHeight := r.IntN(3) + 4
	basicTop(a, pos, r, block.OakLeaves, treeHeight)
	trunk(a, pos, block.OakLog, treeHeight-1)
}

// BirchTree is a slim tree with pale bark. Super birch trees are five voxels taller.
type BirchTree struct {
	Super bool
}

// Grow ...
func (b BirchTree) Grow(a Area, pos cube.Pos, r *rand.Rand) {
	treeHeight := r.IntN(3) + 5
	if b.Super {
		treeHeight += 5
	}
	basicTop(a, pos, r, block.BirchLeaves, treeHeight)
	trunk(a, pos, block.BirchLog, treeHeight-1)
}

// basicTop places the rounded canopy shared by oak and birch trees.
func basicTop(a Area, pos cube.Pos, r *rand.Rand, leaves block.Kind, treeHeight int) {
	for yy := pos[1] - 3 + treeHeight; yy <= pos[1]+treeHeight; yy++ {
		yOff := yy - (pos[1] + treeHeight)
		mid := 1 - yOff/2
		for xx := pos[0] - mid; xx <= pos[0]+mid; xx++ {
			xOff := cube.Abs(xx - pos[0])
			for zz := pos[2] - mid; zz <= pos[2]+mid; zz++ {
				zOff := cube.Abs(zz - pos[2])
				if xOff == mid && zOff == mid && (yOff == 0 || r.IntN(2) == 0) {
					continue
				}
				p := cube.Pos{xx, yy, zz}
				if a.Contains(p) && overridable(a.Block(p)) {
					a.SetBlock(p, leaves)
				}
			}
		}
	}
}

// trunk places a column of logs on top of a voxel of dirt.
func trunk(a Area, pos cube.Pos, log block.Kind, trunkHeight int) {
	a.SetBlock(pos.Sub(cube.Pos{0, 1}), block.Dirt)

	for y := 0; y < trunkHeight; y++ {
		p := pos.Add(cube.Pos{0, y})
		if overridable(a.Block(p)) {
			a.SetBlock(p, log)
		}
	}
}

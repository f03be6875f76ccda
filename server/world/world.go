package world

import (
	"iter"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/terrastream/terra/server/block"
	"github.com/terrastream/terra/server/block/cube"
	"github.com/terrastream/terra/server/world/chunk"
	"github.com/terrastream/terra/server/world/frustum"
)

// World is a voxel world whose chunks are generated on background workers and streamed in and out around a
// viewpoint. StreamUpdate and Close must be called from a single goroutine, the one driving the world. All
// other methods are safe for concurrent use.
type World struct {
	conf Config

	store    *Store
	cache    *Cache
	pool     *Pool
	streamer *Streamer
	metrics  *Metrics
	liquids  *LiquidSystem

	o sync.Once
}

// StreamUpdate runs a single streaming pass around the viewpoint passed, loading chunks within radius chunks
// horizontally and unloading those further away. Generation happens in the background: chunks become
// resident during later calls.
func (w *World) StreamUpdate(viewpoint mgl64.Vec3, radius int) {
	w.streamer.Update(viewpoint, radius)
	w.liquids.Step(w.store)
}

// VisibleChunkGeometry returns an iterator over the surface geometry of every resident chunk that intersects
// the frustum passed. The resident set is read once when iteration starts, and chunks are meshed lazily
// without holding any lock. Iteration order is ascending by position.
func (w *World) VisibleChunkGeometry(f *frustum.Frustum) iter.Seq2[ChunkPos, []chunk.Vertex] {
	return func(yield func(ChunkPos, []chunk.Vertex) bool) {
		for _, e := range w.store.Snapshot() {
			if !f.BBoxVisible(e.Chunk.Bounds()) {
				continue
			}
			if !yield(e.Pos, e.Chunk.Mesh()) {
				return
			}
		}
	}
}

// QueryVoxel returns the kind of the voxel containing the world space point passed. Points in chunks that are
// not resident read as air.
func (w *World) QueryVoxel(p mgl64.Vec3) block.Kind {
	return w.store.QueryVoxel(p)
}

// Voxel returns the kind of the voxel at the position passed. Voxels in chunks that are not resident read as
// air.
func (w *World) Voxel(pos cube.Pos) block.Kind {
	return w.store.Voxel(pos)
}

// Chunk returns the resident chunk at the position passed. The chunk returned must not be modified.
func (w *World) Chunk(pos ChunkPos) (*chunk.Chunk, bool) {
	return w.store.Chunk(pos)
}

// Resident returns the positions of all resident chunks in ascending order.
func (w *World) Resident() []ChunkPos {
	return w.store.Positions()
}

// State returns the streaming state of the chunk position passed.
func (w *World) State(pos ChunkPos) ChunkState {
	return w.streamer.State(pos)
}

// Metrics returns the counters of the world.
func (w *World) Metrics() *Metrics {
	return w.metrics
}

// Wait blocks until every generation task handed to a worker so far has finished.
func (w *World) Wait() {
	w.pool.Wait()
}

// Close waits for running generation tasks and stops the workers of the world. Close is a no-op when called
// more than once.
func (w *World) Close() error {
	w.o.Do(w.close)
	return nil
}

// close stops the workers of the World.
func (w *World) close() {
	w.conf.Log.Debug("Closing world...", "resident", w.store.Len(), "queued", w.pool.Queued())
	w.pool.Close()
}

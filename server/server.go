package server

import (
	"iter"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/terrastream/terra/server/block"
	"github.com/terrastream/terra/server/entity"
	"github.com/terrastream/terra/server/world"
	"github.com/terrastream/terra/server/world/chunk"
	"github.com/terrastream/terra/server/world/frustum"
)

// Server drives a streamed voxel world around a viewpoint together with a
// single controlled body moving through it. A Server is not safe for
// concurrent use: all methods must be called from the goroutine running the
// frames.
type Server struct {
	conf Config

	world    *world.World
	movement *entity.MovementComputer
	body     entity.Body

	once sync.Once
}

// FrameStats holds the results of a single Server.Frame call.
type FrameStats struct {
	// Resident and Queued are the amount of chunks loaded and waiting for a
	// generation worker at the end of the frame.
	Resident, Queued int
	// Generated and CacheHits are the total amount of chunks generated and
	// restored from the eviction cache so far.
	Generated, CacheHits uint64
	// VisibleChunks is the amount of chunks that passed the frustum test, and
	// Vertices the amount of vertices of their geometry.
	VisibleChunks, Vertices int
	// Body is the controlled body after its motion was resolved.
	Body entity.Body
	// Elapsed is the wall time spent in the frame.
	Elapsed time.Duration
}

// World returns the world of the Server.
func (srv *Server) World() *world.World {
	return srv.world
}

// Body returns the controlled body of the Server.
func (srv *Server) Body() entity.Body {
	return srv.body
}

// Spawn teleports the controlled body so that its minimum corner is at pos
// and stops it.
func (srv *Server) Spawn(pos mgl64.Vec3) entity.Body {
	srv.body = srv.body.Teleport(pos)
	srv.conf.Log.Debug("Body spawned.", "X", pos[0], "Y", pos[1], "Z", pos[2])
	return srv.body
}

// StreamUpdate runs a single streaming pass around the viewpoint passed. See
// world.World.StreamUpdate.
func (srv *Server) StreamUpdate(viewpoint mgl64.Vec3, radius int) {
	srv.world.StreamUpdate(viewpoint, radius)
}

// VisibleChunkGeometry returns an iterator over the geometry of all resident
// chunks that intersect the frustum passed.
func (srv *Server) VisibleChunkGeometry(f *frustum.Frustum) iter.Seq2[world.ChunkPos, []chunk.Vertex] {
	return srv.world.VisibleChunkGeometry(f)
}

// ResolveBodyMotion advances the body passed by dt seconds, applying gravity
// and resolving collisions against the resident chunks of the world.
func (srv *Server) ResolveBodyMotion(body entity.Body, dt float64) entity.Body {
	return srv.movement.Tick(srv.world, body, dt)
}

// QueryVoxel returns the kind of the voxel containing the point passed.
func (srv *Server) QueryVoxel(p mgl64.Vec3) block.Kind {
	return srv.world.QueryVoxel(p)
}

// Frame runs one full frame: the world is streamed around the viewpoint, the
// controlled body is moved by dt seconds and the geometry of the chunks
// visible through the view projection matrix passed is collected.
func (srv *Server) Frame(viewpoint mgl64.Vec3, viewProjection mgl64.Mat4, dt float64) FrameStats {
	start := time.Now()

	srv.StreamUpdate(viewpoint, srv.conf.Radius)
	srv.body = srv.ResolveBodyMotion(srv.body, dt)

	stats := FrameStats{Body: srv.body}
	for _, vertices := range srv.VisibleChunkGeometry(frustum.FromMatrix(viewProjection)) {
		stats.VisibleChunks++
		stats.Vertices += len(vertices)
	}
	m := srv.world.Metrics().Snapshot()
	stats.Resident, stats.Queued = m.Resident, m.Queued
	stats.Generated, stats.CacheHits = m.Generated, m.CacheHits
	stats.Elapsed = time.Since(start)
	return stats
}

// Close waits for running generation tasks and stops the Server's world.
// Close is a no-op when called more than once.
func (srv *Server) Close() error {
	var err error
	srv.once.Do(func() {
		srv.conf.Log.Info("Server closing...")
		err = srv.world.Close()
	})
	return err
}

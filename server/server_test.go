package server

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/terrastream/terra/server/block"
	"github.com/terrastream/terra/server/entity"
	"github.com/terrastream/terra/server/world"
)

// newFlatServer returns a Server generating a flat world with its surface at y=10 and without caves, ores
// or trees.
func newFlatServer(t *testing.T) *Server {
	t.Helper()
	uc := DefaultConfig()
	uc.World.Seed = 1
	uc.World.Flat, uc.World.FlatHeight = true, 10
	uc.World.DisableCaves, uc.World.DisableOres, uc.World.DisableFeatures = true, true, true
	uc.Streaming.Radius = 1
	uc.Streaming.VerticalRadius = 1
	uc.Streaming.TasksPerFrame = -1
	uc.Streaming.Workers = 2

	conf, err := uc.Config(discardLogger())
	if err != nil {
		t.Fatalf("convert config: %v", err)
	}
	srv := conf.New()
	t.Cleanup(func() {
		if err := srv.Close(); err != nil {
			t.Fatalf("failed closing server: %v", err)
		}
	})
	return srv
}

// loadAround streams the world around the viewpoint until the chunk containing it is resident.
func loadAround(t *testing.T, srv *Server, viewpoint mgl64.Vec3) {
	t.Helper()
	pos := world.ChunkPosFromVec3(viewpoint)
	deadline := time.Now().Add(5 * time.Second)
	for {
		srv.StreamUpdate(viewpoint, 1)
		srv.World().Wait()
		if _, ok := srv.World().Chunk(pos); ok {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("chunk %v never became resident", pos)
		}
		time.Sleep(time.Millisecond)
	}
}

func lookForward(eye mgl64.Vec3) mgl64.Mat4 {
	proj := mgl64.Perspective(mgl64.DegToRad(70), 1, 0.1, 200)
	view := mgl64.LookAtV(eye, eye.Add(mgl64.Vec3{0, -0.5, 1}), mgl64.Vec3{0, 1, 0})
	return proj.Mul4(view)
}

func TestServerQueryVoxel(t *testing.T) {
	srv := newFlatServer(t)
	viewpoint := mgl64.Vec3{8, 12, 8}
	loadAround(t, srv, viewpoint)

	if k := srv.QueryVoxel(mgl64.Vec3{8.5, 9.5, 8.5}); !k.Solid() {
		t.Fatalf("expected solid surface voxel at y=9, got %v", k)
	}
	if k := srv.QueryVoxel(mgl64.Vec3{8.5, 10.5, 8.5}); k != block.Air {
		t.Fatalf("expected air above the surface, got %v", k)
	}
	if k := srv.QueryVoxel(mgl64.Vec3{1000, 9.5, 1000}); k != block.Air {
		t.Fatalf("expected air in a chunk that is not loaded, got %v", k)
	}
}

func TestServerFrameLandsBody(t *testing.T) {
	srv := newFlatServer(t)
	viewpoint := mgl64.Vec3{8, 12, 8}
	loadAround(t, srv, viewpoint)

	body := srv.Spawn(mgl64.Vec3{8.2, 12, 8.2})
	if body.OnGround {
		t.Fatalf("spawned body should start in the air")
	}
	vp := lookForward(viewpoint)

	var stats FrameStats
	for i := 0; i < 100 && !srv.Body().OnGround; i++ {
		stats = srv.Frame(viewpoint, vp, 1.0/20)
	}
	b := srv.Body()
	if !b.OnGround {
		t.Fatalf("body never landed: %+v", b)
	}
	if b.Position[1] != 10 || b.Velocity[1] != 0 {
		t.Fatalf("expected body to rest at y=10 without vertical velocity, got %v %v", b.Position, b.Velocity)
	}
	if stats.Body.Position != b.Position {
		t.Fatalf("frame stats hold body %v, expected %v", stats.Body.Position, b.Position)
	}
	if stats.Resident == 0 || stats.Generated == 0 {
		t.Fatalf("expected resident and generated chunks, got %+v", stats)
	}
	if stats.VisibleChunks == 0 || stats.Vertices == 0 {
		t.Fatalf("expected the chunk around the viewpoint to be visible, got %+v", stats)
	}

	// Resting bodies stay where they are.
	stats = srv.Frame(viewpoint, vp, 1.0/20)
	if stats.Body.Position != b.Position || !stats.Body.OnGround {
		t.Fatalf("resting body moved: %v -> %v", b.Position, stats.Body.Position)
	}
}

func TestServerResolveBodyMotion(t *testing.T) {
	srv := newFlatServer(t)
	loadAround(t, srv, mgl64.Vec3{8, 12, 8})

	body := entity.NewBody(mgl64.Vec3{4.2, 10.5, 4.2}, mgl64.Vec3{0.6, 1.8, 0.6})
	body.Velocity = mgl64.Vec3{0, -10, 0}
	body = srv.ResolveBodyMotion(body, 0.1)
	if !body.OnGround || body.Position[1] != 10 || body.Velocity[1] != 0 {
		t.Fatalf("expected body to land on the surface, got %v %v (on ground: %v)", body.Position, body.Velocity, body.OnGround)
	}
}

func TestServerCloseTwice(t *testing.T) {
	conf, err := DefaultConfig().Config(discardLogger())
	if err != nil {
		t.Fatalf("convert default config: %v", err)
	}
	srv := conf.New()
	if err := srv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := srv.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

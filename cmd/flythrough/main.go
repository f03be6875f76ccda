package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/terrastream/terra/server"
	"github.com/terrastream/terra/server/world"
)

func main() {
	var (
		path   = flag.String("config", "terra.toml", "path to the TOML or YAML configuration file")
		frames = flag.Int("frames", 600, "number of frames to run")
		speed  = flag.Float64("speed", 8, "speed of the viewpoint in blocks per second")
		height = flag.Float64("height", 24, "height of the viewpoint")
		tps    = flag.Int("tps", 20, "frames per simulated second")
	)
	flag.Parse()

	if err := run(*path, *frames, *speed, *height, *tps); err != nil {
		slog.Error("flythrough failed: " + err.Error())
		os.Exit(1)
	}
}

func run(path string, frames int, speed, height float64, tps int) error {
	if tps <= 0 {
		return fmt.Errorf("tps must be positive, got %v", tps)
	}
	uc, err := server.LoadUserConfig(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	level, err := uc.Level()
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	conf, err := uc.Config(log)
	if err != nil {
		return fmt.Errorf("convert config: %w", err)
	}
	srv := conf.New()
	defer srv.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	start := mgl64.Vec3{8, height, 8}
	if err := preload(ctx, srv, start, uc.Streaming.Radius); err != nil {
		return err
	}
	srv.Spawn(start)

	dt := 1 / float64(tps)
	proj := mgl64.Perspective(mgl64.DegToRad(70), 16.0/9, 0.1, float64(uc.Streaming.Radius+1)*16)
	direction := mgl64.Vec3{1, 0, 0}
	for i := 0; i < frames; i++ {
		if ctx.Err() != nil {
			log.Info("Interrupted.", "frame", i)
			return nil
		}
		viewpoint := start.Add(direction.Mul(speed * dt * float64(i)))
		view := mgl64.LookAtV(viewpoint, viewpoint.Add(direction).Sub(mgl64.Vec3{0, 0.3, 0}), mgl64.Vec3{0, 1, 0})

		stats := srv.Frame(viewpoint, proj.Mul4(view), dt)
		attrs := []any{
			"frame", i,
			"resident", stats.Resident,
			"queued", stats.Queued,
			"generated", stats.Generated,
			"cache_hits", stats.CacheHits,
			"visible", stats.VisibleChunks,
			"vertices", stats.Vertices,
			"body_y", stats.Body.Position[1],
			"on_ground", stats.Body.OnGround,
			"elapsed", stats.Elapsed,
		}
		if i%tps == 0 {
			log.Info("Frame.", attrs...)
		} else {
			log.Debug("Frame.", attrs...)
		}
	}
	log.Info("Flythrough finished.", "frames", frames, "metrics", fmt.Sprintf("%+v", srv.World().Metrics().Snapshot()))
	return nil
}

// preload streams the world around pos until no generation task is left queued, so that the body does not
// fall through terrain that is still being generated.
func preload(ctx context.Context, srv *server.Server, pos mgl64.Vec3, radius int) error {
	for {
		srv.StreamUpdate(pos, radius)
		srv.World().Wait()
		if srv.World().Metrics().Snapshot().Queued == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("preload around %v: %w", world.ChunkPosFromVec3(pos), ctx.Err())
		case <-time.After(time.Millisecond):
		}
	}
}

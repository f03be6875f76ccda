package world

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestLiquidSystemDisabled(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	if s := (LiquidConfig{}).NewSystem(log); s.Enabled() {
		t.Fatalf("expected zero config to disable liquids")
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no log output for disabled liquids, got %q", buf.String())
	}

	s := LiquidConfig{Enabled: true}.NewSystem(log)
	if s.Enabled() {
		t.Fatalf("expected liquid system to stay disabled")
	}
	if !strings.Contains(buf.String(), "liquid subsystem disabled") || !strings.Contains(buf.String(), "ticks_per_step=5") || !strings.Contains(buf.String(), "status=WIP") {
		t.Fatalf("expected warning with default step interval, got %q", buf.String())
	}
	// Stepping a disabled system is a no-op.
	s.Step(NewStore())
}

func TestWorldWithLiquidsEnabledStreams(t *testing.T) {
	w := newTestWorld(t, Config{Liquids: LiquidConfig{Enabled: true}, TasksPerFrame: -1})
	converge(t, w, mgl64.Vec3{8, 8, 8}, 1, radiusOne)
}

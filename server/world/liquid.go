package world

import (
	"log/slog"
)

// LiquidConfig holds the parameters of fluid flow simulation. The zero value leaves fluids static.
type LiquidConfig struct {
	// Enabled toggles the flow of fluids.
	Enabled bool
	// TicksPerStep is the amount of streaming updates between two flow steps.
	TicksPerStep int
}

func (c LiquidConfig) withDefaults() LiquidConfig {
	if !c.Enabled {
		return c
	}
	if c.TicksPerStep <= 0 {
		c.TicksPerStep = 5
	}
	return c
}

// LiquidSystem simulates the flow of fluids through resident chunks. A nil *LiquidSystem is valid and does
// nothing.
type LiquidSystem struct {
	conf LiquidConfig
}

// NewSystem builds a LiquidSystem from the configuration. Fluid flow is not implemented yet: a warning is
// logged if it was enabled and nil is returned in all cases.
func (c LiquidConfig) NewSystem(log *slog.Logger) *LiquidSystem {
	if c = c.withDefaults(); c.Enabled {
		log.Warn("liquid subsystem disabled", "status", "WIP", "ticks_per_step", c.TicksPerStep)
	}
	return nil
}

// Enabled reports if the system simulates anything.
func (s *LiquidSystem) Enabled() bool {
	return s != nil
}

// Step advances the simulation by one streaming update. Flow is not simulated yet, so committed chunks are
// left as generated.
func (s *LiquidSystem) Step(*Store) {}

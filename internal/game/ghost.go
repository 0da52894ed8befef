package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Hover animation tuning. Ghosts bob on a sine wave above a base height, with
// a per-ghost phase so a wave never moves in lockstep.
const (
	hoverBaseHeight = 2.0
	hoverAmplitude  = 0.3
	hoverFrequency  = 1.5
	hoverSmoothing  = 0.1
	swayAmplitude   = 0.05
	swayFrequency   = 0.8
)

// Ghost is one enemy: a floating cylinder hitbox that drifts toward the
// player and dies when its health is exhausted.
type Ghost struct {
	Position rl.Vector3
	Height   float32
	Radius   float32

	MaxHealth int
	Health    int
	BaseSpeed float32
	Alive     bool

	hoverPhase float64
}

// TakeDamage clamps health at zero and reports whether this hit was the kill.
func (g *Ghost) TakeDamage(damage int) bool {
	if !g.Alive {
		return false
	}
	g.Health -= damage
	if g.Health <= 0 {
		g.Health = 0
		g.Alive = false
		return true
	}
	return false
}

// HealthFraction feeds the floating health bar above the ghost.
func (g *Ghost) HealthFraction() float32 {
	if g.MaxHealth == 0 {
		return 0
	}
	return float32(g.Health) / float32(g.MaxHealth)
}

// SpeedMultiplier ramps chase speed as the ghost closes in: 1.0 at or beyond
// the proximity threshold, rising linearly to the cap at the ramp floor. The
// multiplier never drops while distance shrinks.
func SpeedMultiplier(distance float32, cfg Config) float32 {
	if distance >= cfg.ProximityThreshold {
		return 1
	}
	if distance <= cfg.ProximityRampFloor {
		return cfg.ProximitySpeedCap
	}
	span := cfg.ProximityThreshold - cfg.ProximityRampFloor
	frac := (cfg.ProximityThreshold - distance) / span
	return 1 + (cfg.ProximitySpeedCap-1)*frac
}

// Advance moves the ghost toward the target in the ground plane, applying the
// proximity ramp and stopping at the stand-off distance, then applies the
// hover bob and sway. elapsed is simulation time, so replays with the same
// seed animate identically.
func (g *Ghost) Advance(delta float64, target rl.Vector3, cfg Config, elapsed float64) {
	if !g.Alive {
		return
	}

	dist := distanceXZ(g.Position, target)
	if dist > cfg.StopDistance {
		step := g.BaseSpeed * SpeedMultiplier(dist, cfg) * float32(delta)
		if step > dist-cfg.StopDistance {
			step = dist - cfg.StopDistance
		}
		g.Position.X += (target.X - g.Position.X) / dist * step
		g.Position.Z += (target.Z - g.Position.Z) / dist * step
	}

	g.hover(elapsed)
	g.sway(delta, elapsed)
}

func (g *Ghost) hover(elapsed float64) {
	phase := g.hoverPhase + float64(g.Position.X+g.Position.Z)*2
	targetY := hoverBaseHeight + hoverAmplitude*math.Sin(elapsed*hoverFrequency+phase)
	g.Position.Y += float32((targetY - float64(g.Position.Y)) * hoverSmoothing)

	minY := g.Height/2 + 0.5
	if g.Position.Y < minY {
		g.Position.Y = minY
	}
}

func (g *Ghost) sway(delta, elapsed float64) {
	phase := float64(g.Position.X)*1.5 + float64(g.Position.Z)*0.8
	g.Position.X += float32(swayAmplitude * math.Sin(elapsed*swayFrequency+phase) * delta)
	g.Position.Z += float32(swayAmplitude * math.Cos(elapsed*swayFrequency*1.3+phase) * delta)
}

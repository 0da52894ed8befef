package game

import (
	"math/rand/v2"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Phase int

const (
	PhaseIntermission Phase = iota
	PhaseWave
	PhaseOver
)

// CameraPosition is the fixed defender viewpoint the whole range is built
// around.
var CameraPosition = rl.NewVector3(0, 2, 5)

// State is one run of the range: the player, the weapon, the current wave of
// ghosts, and the clocks that drive them. All mutation happens through Step,
// Fire, RequestReload, and the console commands, in that frame order.
type State struct {
	Config Config
	Aim    AimRig
	Player Player
	Weapon Weapon
	Ghosts []Ghost

	Wave  int
	Kills int
	Phase Phase

	Elapsed          float64
	IntermissionLeft float64
	GodMode          bool

	rng *rand.Rand
}

// NewState validates the config, resolves a zero seed from the wall clock,
// and readies the first intermission so wave 1 spawns shortly after start.
func NewState(cfg Config) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	s := &State{
		Config:           cfg,
		Aim:              NewAimRig(CameraPosition),
		Player:           NewPlayer(cfg.MaxHealth),
		Weapon:           NewWeapon(cfg.MagazineSize, cfg.FireInterval, cfg.ReloadTime),
		Phase:            PhaseIntermission,
		IntermissionLeft: 1.0, // short fuse before the first wave
		rng:              seededRNG(cfg.Seed),
	}
	return s, nil
}

// StepEvents reports what happened during one frame so the client can react
// (sound, messages) without re-deriving it.
type StepEvents struct {
	PlayerHit   bool
	WaveStarted int
	WaveCleared int
	GameOver    bool
}

// Step advances the simulation by delta seconds: weapon and cooldown timers,
// ghost movement, contact damage, corpse removal, then wave bookkeeping.
func (s *State) Step(delta float64) StepEvents {
	var ev StepEvents
	if s.Phase == PhaseOver || delta <= 0 {
		return ev
	}

	s.Elapsed += delta
	s.Weapon.Update(delta)
	s.Player.Update(delta)

	playerPos := s.Aim.CameraPosition
	for i := range s.Ghosts {
		s.Ghosts[i].Advance(delta, playerPos, s.Config, s.Elapsed)
	}

	if !s.GodMode {
		for i := range s.Ghosts {
			g := &s.Ghosts[i]
			if !g.Alive {
				continue
			}
			if CylinderSphereOverlap(g.Position, g.Radius, g.Height, playerPos, s.Config.PlayerRadius) {
				if s.Player.ApplyContactDamage(s.Config.ContactDamage, s.Config.DamageCooldown) {
					ev.PlayerHit = true
				}
				break
			}
		}
	}

	s.cullDead()

	if !s.Player.Alive {
		s.Phase = PhaseOver
		ev.GameOver = true
		return ev
	}

	switch s.Phase {
	case PhaseWave:
		if len(s.Ghosts) == 0 {
			ev.WaveCleared = s.Wave
			s.Phase = PhaseIntermission
			s.IntermissionLeft = s.Config.Intermission
		}
	case PhaseIntermission:
		s.IntermissionLeft -= delta
		if s.IntermissionLeft <= 0 {
			s.Wave++
			s.spawnWave(s.Wave)
			s.Phase = PhaseWave
			ev.WaveStarted = s.Wave
		}
	}
	return ev
}

func (s *State) cullDead() {
	live := s.Ghosts[:0]
	for _, g := range s.Ghosts {
		if g.Alive {
			live = append(live, g)
		}
	}
	s.Ghosts = live
}

// LiveGhosts counts remaining targets in the current wave.
func (s *State) LiveGhosts() int {
	n := 0
	for i := range s.Ghosts {
		if s.Ghosts[i].Alive {
			n++
		}
	}
	return n
}

// RequestReload is the manual R-key reload.
func (s *State) RequestReload() bool {
	if s.Phase == PhaseOver {
		return false
	}
	return s.Weapon.StartReload()
}

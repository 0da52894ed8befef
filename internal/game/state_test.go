package game

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 1234
	s, err := NewState(cfg)
	if err != nil {
		t.Fatalf("failed to create state: %v", err)
	}
	return s
}

func TestNewStateRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MagazineSize = 0
	if _, err := NewState(cfg); err == nil {
		t.Fatalf("expected invalid config to be rejected")
	}
}

func TestFirstWaveSpawnsAfterIntermission(t *testing.T) {
	s := newTestState(t)
	if s.Phase != PhaseIntermission || len(s.Ghosts) != 0 {
		t.Fatalf("expected empty intermission at start")
	}

	var started int
	for i := 0; i < 100 && started == 0; i++ {
		started = s.Step(0.05).WaveStarted
	}
	if started != 1 {
		t.Fatalf("expected wave 1 to start, got %d", started)
	}
	if len(s.Ghosts) != WaveSize(1, s.Config) {
		t.Fatalf("expected %d ghosts in wave 1, got %d", WaveSize(1, s.Config), len(s.Ghosts))
	}
	for _, g := range s.Ghosts {
		if g.Health < s.Config.GhostHealthMin || g.Health > s.Config.GhostHealthMax {
			t.Fatalf("ghost health %d outside [%d, %d]", g.Health, s.Config.GhostHealthMin, s.Config.GhostHealthMax)
		}
		if g.Position.Z >= 0 {
			t.Fatalf("expected ghosts spawned in front of the camera, got z %.1f", g.Position.Z)
		}
	}
}

func TestWaveSizeGrows(t *testing.T) {
	cfg := DefaultConfig()
	if WaveSize(1, cfg) != 6 || WaveSize(2, cfg) != 8 || WaveSize(5, cfg) != 14 {
		t.Fatalf("unexpected wave sizes: %d %d %d", WaveSize(1, cfg), WaveSize(2, cfg), WaveSize(5, cfg))
	}
}

func TestClearingWaveStartsIntermissionThenNextWave(t *testing.T) {
	s := newTestState(t)
	for i := 0; i < 100 && s.Phase != PhaseWave; i++ {
		s.Step(0.05)
	}

	for i := range s.Ghosts {
		s.Ghosts[i].TakeDamage(1000)
	}
	ev := s.Step(0.01)
	if ev.WaveCleared != 1 {
		t.Fatalf("expected wave 1 cleared, got %d", ev.WaveCleared)
	}
	if s.Phase != PhaseIntermission {
		t.Fatalf("expected intermission after clearing the wave")
	}

	var started int
	for i := 0; i < 200 && started == 0; i++ {
		started = s.Step(0.05).WaveStarted
	}
	if started != 2 {
		t.Fatalf("expected wave 2 to start, got %d", started)
	}
	if len(s.Ghosts) != WaveSize(2, s.Config) {
		t.Fatalf("expected %d ghosts in wave 2, got %d", WaveSize(2, s.Config), len(s.Ghosts))
	}
}

func TestContactDamageGatedByCooldown(t *testing.T) {
	s := newTestState(t)
	s.Phase = PhaseWave
	s.Wave = 1
	s.Ghosts = []Ghost{{
		Position:  s.Aim.CameraPosition,
		Height:    3,
		Radius:    0.8,
		MaxHealth: 50,
		Health:    50,
		Alive:     true,
	}}

	first := s.Step(0.01)
	second := s.Step(0.01)
	if !first.PlayerHit || second.PlayerHit {
		t.Fatalf("expected exactly one hit inside the cooldown window, got %v / %v", first.PlayerHit, second.PlayerHit)
	}
	if s.Player.Health != s.Config.MaxHealth-s.Config.ContactDamage {
		t.Fatalf("expected a single contact damage application, health %d", s.Player.Health)
	}

	for i := 0; i < 25; i++ {
		s.Step(0.05)
	}
	if s.Player.Health != s.Config.MaxHealth-2*s.Config.ContactDamage {
		t.Fatalf("expected second application after cooldown, health %d", s.Player.Health)
	}
}

func TestGodModeDisablesContactDamage(t *testing.T) {
	s := newTestState(t)
	s.Phase = PhaseWave
	s.Wave = 1
	s.GodMode = true
	s.Ghosts = []Ghost{{Position: s.Aim.CameraPosition, Height: 3, Radius: 0.8, MaxHealth: 50, Health: 50, Alive: true}}

	s.Step(0.01)
	if s.Player.Health != s.Config.MaxHealth {
		t.Fatalf("expected no contact damage in god mode, health %d", s.Player.Health)
	}
}

func TestRunEndsWhenPlayerDies(t *testing.T) {
	s := newTestState(t)
	s.Phase = PhaseWave
	s.Wave = 1
	s.Player.Health = s.Config.ContactDamage
	s.Ghosts = []Ghost{{Position: s.Aim.CameraPosition, Height: 3, Radius: 0.8, MaxHealth: 50, Health: 50, Alive: true}}

	ev := s.Step(0.01)
	if !ev.GameOver {
		t.Fatalf("expected game over on lethal contact")
	}
	if s.Phase != PhaseOver {
		t.Fatalf("expected run phase over")
	}
	if s.Step(0.05); s.Elapsed != 0.01 {
		t.Fatalf("expected simulation frozen after game over")
	}
}

func TestInvariantsHoldUnderFireSpam(t *testing.T) {
	s := newTestState(t)
	for i := 0; i < 2000; i++ {
		s.Step(0.016)
		s.Fire()
		if s.Player.Health < 0 || s.Player.Health > s.Config.MaxHealth {
			t.Fatalf("health %d out of bounds at step %d", s.Player.Health, i)
		}
		if s.Weapon.Rounds < 0 || s.Weapon.Rounds > s.Config.MagazineSize {
			t.Fatalf("rounds %d out of bounds at step %d", s.Weapon.Rounds, i)
		}
	}
}

func TestFireNearestGhostOnly(t *testing.T) {
	s := newTestState(t)
	s.Phase = PhaseWave
	s.Wave = 1

	// Two ghosts stacked along the firing line: only the nearer one takes the
	// hit.
	muzzle := s.Aim.MuzzlePosition()
	s.Aim.SetTarget(rl.NewVector3(muzzle.X, muzzle.Y, muzzle.Z-30))
	near := rl.NewVector3(muzzle.X, muzzle.Y, muzzle.Z-8)
	far := rl.NewVector3(muzzle.X, muzzle.Y, muzzle.Z-16)
	s.Ghosts = []Ghost{
		{Position: far, Height: 3, Radius: 0.8, MaxHealth: 50, Health: 50, Alive: true},
		{Position: near, Height: 3, Radius: 0.8, MaxHealth: 50, Health: 50, Alive: true},
	}

	res := s.Fire()
	if !res.Fired || !res.Hit {
		t.Fatalf("expected a hit, got %+v", res)
	}
	if res.Target != 1 {
		t.Fatalf("expected the nearer ghost (index 1) to take the hit, got %d", res.Target)
	}
	if s.Ghosts[1].Health != 25 {
		t.Fatalf("expected near ghost at 25 health, got %d", s.Ghosts[1].Health)
	}
	if s.Ghosts[0].Health != 50 {
		t.Fatalf("expected far ghost untouched, got %d", s.Ghosts[0].Health)
	}
	if s.Weapon.Rounds != s.Config.MagazineSize-1 {
		t.Fatalf("expected one round spent, got %d", s.Weapon.Rounds)
	}
}

func TestFireWithEmptyMagazineHitsNothing(t *testing.T) {
	s := newTestState(t)
	s.Phase = PhaseWave
	s.Wave = 1
	s.Weapon.Rounds = 0
	muzzle := s.Aim.MuzzlePosition()
	s.Aim.SetTarget(rl.NewVector3(muzzle.X, muzzle.Y, muzzle.Z-30))
	s.Ghosts = []Ghost{{Position: rl.NewVector3(muzzle.X, muzzle.Y, muzzle.Z-8), Height: 3, Radius: 0.8, MaxHealth: 50, Health: 50, Alive: true}}

	res := s.Fire()
	if res.Fired || res.Hit {
		t.Fatalf("expected empty magazine to fire nothing, got %+v", res)
	}
	if res.Denied != FireDeniedEmpty {
		t.Fatalf("expected empty denial, got %d", res.Denied)
	}
	if s.Weapon.Rounds != 0 {
		t.Fatalf("expected rounds unchanged at 0, got %d", s.Weapon.Rounds)
	}
	if s.Ghosts[0].Health != 50 {
		t.Fatalf("expected ghost untouched, got %d", s.Ghosts[0].Health)
	}
}

func TestSeededRunsSpawnIdentically(t *testing.T) {
	a := newTestState(t)
	b := newTestState(t)
	for i := 0; i < 100; i++ {
		a.Step(0.05)
		b.Step(0.05)
	}
	if len(a.Ghosts) != len(b.Ghosts) {
		t.Fatalf("expected identical wave sizes, got %d vs %d", len(a.Ghosts), len(b.Ghosts))
	}
	for i := range a.Ghosts {
		if a.Ghosts[i].Health != b.Ghosts[i].Health || a.Ghosts[i].Position != b.Ghosts[i].Position {
			t.Fatalf("expected identical seeded spawns at index %d", i)
		}
	}
}

package game

import (
	"strings"
	"testing"
)

func TestConsoleHealCommand(t *testing.T) {
	s := newTestState(t)
	s.Player.Health = 40

	res := s.ExecuteConsoleCommand("heal", []string{"30"})
	if !res.Handled {
		t.Fatalf("expected heal to be handled")
	}
	if s.Player.Health != 70 {
		t.Fatalf("expected health 70 after heal 30, got %d", s.Player.Health)
	}

	s.ExecuteConsoleCommand("heal", nil)
	if s.Player.Health != s.Player.MaxHealth {
		t.Fatalf("expected bare heal to restore full health, got %d", s.Player.Health)
	}
}

func TestConsoleAmmoAndSpawnCommands(t *testing.T) {
	s := newTestState(t)
	s.Weapon.Rounds = 2

	if res := s.ExecuteConsoleCommand("ammo", nil); !res.Handled {
		t.Fatalf("expected ammo to be handled")
	}
	if s.Weapon.Rounds != s.Weapon.Magazine {
		t.Fatalf("expected full magazine, got %d", s.Weapon.Rounds)
	}

	res := s.ExecuteConsoleCommand("spawn", []string{"3"})
	if !res.Handled {
		t.Fatalf("expected spawn to be handled")
	}
	if len(s.Ghosts) != 3 {
		t.Fatalf("expected 3 spawned ghosts, got %d", len(s.Ghosts))
	}

	if res := s.ExecuteConsoleCommand("spawn", []string{"999"}); !strings.Contains(res.Message, "1..50") {
		t.Fatalf("expected spawn bounds message, got %q", res.Message)
	}
}

func TestConsoleSensAdjustsAimDistance(t *testing.T) {
	s := newTestState(t)

	s.ExecuteConsoleCommand("sens", []string{"35"})
	if s.Config.AimDistance != 35 {
		t.Fatalf("expected aim distance 35, got %.1f", s.Config.AimDistance)
	}

	res := s.ExecuteConsoleCommand("sens", []string{"bogus"})
	if !strings.Contains(res.Message, "Usage") {
		t.Fatalf("expected usage message for bad argument, got %q", res.Message)
	}
	if s.Config.AimDistance != 35 {
		t.Fatalf("expected aim distance unchanged, got %.1f", s.Config.AimDistance)
	}
}

func TestConsoleGodToggle(t *testing.T) {
	s := newTestState(t)
	s.ExecuteConsoleCommand("god", nil)
	if !s.GodMode {
		t.Fatalf("expected god mode enabled")
	}
	s.ExecuteConsoleCommand("god", nil)
	if s.GodMode {
		t.Fatalf("expected god mode disabled again")
	}
}

func TestConsoleUnknownVerbUnhandled(t *testing.T) {
	s := newTestState(t)
	if res := s.ExecuteConsoleCommand("frobnicate", nil); res.Handled {
		t.Fatalf("expected unknown verb to be unhandled")
	}
}

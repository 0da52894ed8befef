package game

import (
	"fmt"
	"strconv"
)

// ConsoleResult is what a console command reports back to the overlay log.
type ConsoleResult struct {
	Handled bool
	Message string
}

// ExecuteConsoleCommand runs one parsed console command against the live run.
// These mirror the runtime calibration hooks the range supports: healing,
// magazine refills, extra spawns, and aim-distance tuning.
func (s *State) ExecuteConsoleCommand(verb string, args []string) ConsoleResult {
	switch verb {
	case "help":
		return ConsoleResult{
			Handled: true,
			Message: "Commands: heal [n], ammo, spawn [n], wave, sens <distance>, god, stats, quit.",
		}
	case "heal":
		amount := s.Player.MaxHealth
		if n, ok := intArg(args, 0); ok {
			amount = n
		}
		if amount <= 0 {
			return ConsoleResult{Handled: true, Message: "Heal amount must be positive."}
		}
		before := s.Player.Health
		s.Player.Heal(amount)
		return ConsoleResult{Handled: true, Message: fmt.Sprintf("Healed %d -> %d/%d.", before, s.Player.Health, s.Player.MaxHealth)}
	case "ammo":
		s.Weapon.Rounds = s.Weapon.Magazine
		return ConsoleResult{Handled: true, Message: fmt.Sprintf("Magazine refilled: %d/%d.", s.Weapon.Rounds, s.Weapon.Magazine)}
	case "spawn":
		count := 1
		if n, ok := intArg(args, 0); ok {
			count = n
		}
		if count < 1 || count > 50 {
			return ConsoleResult{Handled: true, Message: "Spawn count must be 1..50."}
		}
		before := len(s.Ghosts)
		s.spawnExtra(count)
		return ConsoleResult{Handled: true, Message: fmt.Sprintf("Spawned %d ghost(s), %d live.", len(s.Ghosts)-before, s.LiveGhosts())}
	case "wave":
		return ConsoleResult{Handled: true, Message: fmt.Sprintf("Wave %d, %d ghost(s) remaining, %d kill(s).", s.Wave, s.LiveGhosts(), s.Kills)}
	case "sens":
		n, ok := floatArg(args, 0)
		if !ok || n < 1 || n > 200 {
			return ConsoleResult{Handled: true, Message: "Usage: sens <aim distance 1..200>."}
		}
		s.Config.AimDistance = float32(n)
		return ConsoleResult{Handled: true, Message: fmt.Sprintf("Aim distance set to %.1f.", n)}
	case "god":
		s.GodMode = !s.GodMode
		if s.GodMode {
			return ConsoleResult{Handled: true, Message: "God mode on: contact damage disabled."}
		}
		return ConsoleResult{Handled: true, Message: "God mode off."}
	case "stats":
		return ConsoleResult{
			Handled: true,
			Message: fmt.Sprintf("HP %d/%d | rounds %d/%d | wave %d | kills %d | elapsed %.0fs",
				s.Player.Health, s.Player.MaxHealth, s.Weapon.Rounds, s.Weapon.Magazine, s.Wave, s.Kills, s.Elapsed),
		}
	}
	return ConsoleResult{Handled: false}
}

// spawnExtra appends ghosts to the current wave using the same spawn rules.
func (s *State) spawnExtra(count int) {
	s.Ghosts = append(s.Ghosts, s.rollGhosts(count)...)
}

func intArg(args []string, i int) (int, bool) {
	if i >= len(args) {
		return 0, false
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, false
	}
	return n, true
}

func floatArg(args []string, i int) (float64, bool) {
	if i >= len(args) {
		return 0, false
	}
	n, err := strconv.ParseFloat(args[i], 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

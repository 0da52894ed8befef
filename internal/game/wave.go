package game

import rl "github.com/gen2brain/raylib-go/raylib"

// WaveSize grows linearly: the documented 6 ghosts on wave 1, plus the growth
// step for every wave after.
func WaveSize(wave int, cfg Config) int {
	if wave < 1 {
		wave = 1
	}
	return cfg.FirstWaveCount + (wave-1)*cfg.WaveGrowth
}

// spawnWave replaces the arena contents with a fresh wave.
func (s *State) spawnWave(wave int) {
	s.Ghosts = s.rollGhosts(WaveSize(wave, s.Config))
}

// rollGhosts places count ghosts in an arc in front of the camera: lateral
// spread across the range, depth between the spawn distances with a little
// jitter, sizes and health rolled per ghost.
func (s *State) rollGhosts(count int) []Ghost {
	ghosts := make([]Ghost, 0, count)

	for i := 0; i < count; i++ {
		distance := uniform32(s.rng, s.Config.SpawnDistanceMin, s.Config.SpawnDistanceMax)
		x := uniform32(s.rng, -s.Config.SpawnSpread, s.Config.SpawnSpread)
		z := -distance + uniform32(s.rng, -5, 5)

		height := uniform32(s.rng, 2.5, 3.5)
		radius := uniform32(s.rng, 0.6, 1.0)
		health := uniformInt(s.rng, s.Config.GhostHealthMin, s.Config.GhostHealthMax)

		ghosts = append(ghosts, Ghost{
			Position:   rl.NewVector3(x, height/2, z),
			Height:     height,
			Radius:     radius,
			MaxHealth:  health,
			Health:     health,
			BaseSpeed:  s.Config.GhostBaseSpeed,
			Alive:      true,
			hoverPhase: float64(i) * 0.7,
		})
	}
	return ghosts
}

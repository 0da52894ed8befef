package game

import "fmt"

// Config holds the tunable simulation parameters for a run. Validate catches
// combinations the simulation cannot run with; a zero Seed is resolved from
// the wall clock in NewState.
type Config struct {
	Seed int64 `json:"seed"`

	// Weapon.
	MagazineSize int     `json:"magazine_size"`
	FireInterval float64 `json:"fire_interval"`
	ReloadTime   float64 `json:"reload_time"`
	ShotDamage   int     `json:"shot_damage"`
	MaxShotRange float32 `json:"max_shot_range"`

	// Player.
	MaxHealth      int     `json:"max_health"`
	ContactDamage  int     `json:"contact_damage"`
	DamageCooldown float64 `json:"damage_cooldown"`
	PlayerRadius   float32 `json:"player_radius"`

	// Ghosts.
	GhostHealthMin     int     `json:"ghost_health_min"`
	GhostHealthMax     int     `json:"ghost_health_max"`
	GhostBaseSpeed     float32 `json:"ghost_base_speed"`
	ProximityThreshold float32 `json:"proximity_threshold"`
	ProximityRampFloor float32 `json:"proximity_ramp_floor"`
	ProximitySpeedCap  float32 `json:"proximity_speed_cap"`
	StopDistance       float32 `json:"stop_distance"`

	// Waves.
	SpawnDistanceMin float32 `json:"spawn_distance_min"`
	SpawnDistanceMax float32 `json:"spawn_distance_max"`
	SpawnSpread      float32 `json:"spawn_spread"`
	FirstWaveCount   int     `json:"first_wave_count"`
	WaveGrowth       int     `json:"wave_growth"`
	Intermission     float64 `json:"intermission"`

	// Aiming.
	AimDistance float32 `json:"aim_distance"`
}

func DefaultConfig() Config {
	return Config{
		MagazineSize: 7,
		FireInterval: 0.2,
		ReloadTime:   2.0,
		ShotDamage:   25,
		MaxShotRange: 100,

		MaxHealth:      100,
		ContactDamage:  20,
		DamageCooldown: 1.0,
		PlayerRadius:   0.5,

		GhostHealthMin:     30,
		GhostHealthMax:     80,
		GhostBaseSpeed:     1.2,
		ProximityThreshold: 5.0,
		ProximityRampFloor: 2.0,
		ProximitySpeedCap:  1.5,
		StopDistance:       0.8,

		SpawnDistanceMin: 15,
		SpawnDistanceMax: 25,
		SpawnSpread:      10,
		FirstWaveCount:   6,
		WaveGrowth:       2,
		Intermission:     3.0,

		AimDistance: 20,
	}
}

func (c Config) Validate() error {
	if c.MagazineSize <= 0 {
		return fmt.Errorf("magazine size must be positive, got %d", c.MagazineSize)
	}
	if c.FireInterval < 0 || c.ReloadTime <= 0 {
		return fmt.Errorf("fire interval %.2f / reload time %.2f out of range", c.FireInterval, c.ReloadTime)
	}
	if c.MaxHealth <= 0 {
		return fmt.Errorf("max health must be positive, got %d", c.MaxHealth)
	}
	if c.ContactDamage < 0 || c.ShotDamage <= 0 {
		return fmt.Errorf("contact damage %d / shot damage %d out of range", c.ContactDamage, c.ShotDamage)
	}
	if c.GhostHealthMin <= 0 || c.GhostHealthMax < c.GhostHealthMin {
		return fmt.Errorf("ghost health range [%d, %d] invalid", c.GhostHealthMin, c.GhostHealthMax)
	}
	if c.ProximitySpeedCap < 1 {
		return fmt.Errorf("proximity speed cap must be >= 1, got %.2f", c.ProximitySpeedCap)
	}
	if c.ProximityRampFloor >= c.ProximityThreshold {
		return fmt.Errorf("proximity ramp floor %.2f must sit below threshold %.2f", c.ProximityRampFloor, c.ProximityThreshold)
	}
	if c.SpawnDistanceMin <= 0 || c.SpawnDistanceMax < c.SpawnDistanceMin {
		return fmt.Errorf("spawn distance range [%.1f, %.1f] invalid", c.SpawnDistanceMin, c.SpawnDistanceMax)
	}
	if c.FirstWaveCount <= 0 || c.WaveGrowth < 0 {
		return fmt.Errorf("wave sizing %d/+%d invalid", c.FirstWaveCount, c.WaveGrowth)
	}
	if c.AimDistance <= 0 || c.MaxShotRange <= 0 {
		return fmt.Errorf("aim distance %.1f / shot range %.1f must be positive", c.AimDistance, c.MaxShotRange)
	}
	return nil
}

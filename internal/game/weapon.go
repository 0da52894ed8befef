package game

import "math"

// FireDenied explains why a trigger pull produced no shot.
type FireDenied int

const (
	FireOK FireDenied = iota
	FireDeniedReloading
	FireDeniedEmpty
	FireDeniedCooldown
)

// Weapon is the magazine / fire-rate / reload state machine. It has no notion
// of world space; the aim rig supplies the firing ray.
type Weapon struct {
	Rounds   int
	Magazine int

	FireInterval float64
	ReloadTime   float64

	cooldownLeft float64
	reloading    bool
	reloadLeft   float64
}

func NewWeapon(magazine int, fireInterval, reloadTime float64) Weapon {
	return Weapon{
		Rounds:       magazine,
		Magazine:     magazine,
		FireInterval: fireInterval,
		ReloadTime:   reloadTime,
	}
}

// Update advances timers. A finished reload restores the magazine to exactly
// full capacity.
func (w *Weapon) Update(delta float64) {
	if w.cooldownLeft > 0 {
		w.cooldownLeft -= delta
		if w.cooldownLeft < 0 {
			w.cooldownLeft = 0
		}
	}
	if w.reloading {
		w.reloadLeft -= delta
		if w.reloadLeft <= 0 {
			w.reloadLeft = 0
			w.reloading = false
			w.Rounds = w.Magazine
		}
	}
}

// CheckFire reports whether the trigger can fire right now.
func (w *Weapon) CheckFire() FireDenied {
	switch {
	case w.reloading:
		return FireDeniedReloading
	case w.Rounds <= 0:
		return FireDeniedEmpty
	case w.cooldownLeft > 0:
		return FireDeniedCooldown
	default:
		return FireOK
	}
}

// consumeRound spends one round and arms the fire-rate cooldown. An empty
// magazine starts the automatic reload. Callers must have passed CheckFire.
func (w *Weapon) consumeRound() {
	w.Rounds--
	w.cooldownLeft = w.FireInterval
	if w.Rounds <= 0 {
		w.Rounds = 0
		w.StartReload()
	}
}

// StartReload begins a reload unless one is running or the magazine is full.
func (w *Weapon) StartReload() bool {
	if w.reloading || w.Rounds == w.Magazine {
		return false
	}
	w.reloading = true
	w.reloadLeft = w.ReloadTime
	return true
}

func (w *Weapon) Reloading() bool {
	return w.reloading
}

// ReloadProgress runs 0..1 while a reload is in flight and reports 1 when idle.
func (w *Weapon) ReloadProgress() float64 {
	if !w.reloading || w.ReloadTime <= 0 {
		return 1
	}
	p := 1 - w.reloadLeft/w.ReloadTime
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// SpinAngle is the reload animation angle in radians: two full turns over the
// reload, zero when idle.
func (w *Weapon) SpinAngle() float64 {
	if !w.reloading {
		return 0
	}
	return w.ReloadProgress() * 4 * math.Pi
}

package game

// Player tracks the defender's health and the contact-damage gate. The camera
// never moves, so the player has no position of its own beyond the camera
// anchor held by the aim rig.
type Player struct {
	Health       int
	MaxHealth    int
	CooldownLeft float64
	Alive        bool
}

func NewPlayer(maxHealth int) Player {
	return Player{
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Alive:     true,
	}
}

// Update winds down the damage cooldown.
func (p *Player) Update(delta float64) {
	if p.CooldownLeft > 0 {
		p.CooldownLeft -= delta
		if p.CooldownLeft < 0 {
			p.CooldownLeft = 0
		}
	}
}

// ApplyContactDamage applies one hit if the cooldown window has elapsed.
// Returns whether damage was actually taken; repeated contacts inside one
// window are absorbed.
func (p *Player) ApplyContactDamage(damage int, cooldown float64) bool {
	if !p.Alive || p.CooldownLeft > 0 {
		return false
	}
	p.Health -= damage
	p.CooldownLeft = cooldown
	if p.Health <= 0 {
		p.Health = 0
		p.Alive = false
	}
	return true
}

// Heal restores health, clamped to the maximum.
func (p *Player) Heal(amount int) {
	if !p.Alive || amount <= 0 {
		return
	}
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// HealthFraction is the 0..1 value the HUD health bar renders.
func (p *Player) HealthFraction() float64 {
	if p.MaxHealth == 0 {
		return 0
	}
	return float64(p.Health) / float64(p.MaxHealth)
}

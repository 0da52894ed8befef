package game

import rl "github.com/gen2brain/raylib-go/raylib"

// FireResult is the outcome of one trigger pull. A shot resolves instantly
// along the firing ray; only the nearest intersected ghost takes damage.
type FireResult struct {
	Fired  bool
	Denied FireDenied

	Hit      bool
	Killed   bool
	Target   int // index into Ghosts, valid when Hit
	Distance float32
}

// Fire attempts a shot with the current aim. Denied pulls (reloading, empty,
// cooldown) consume nothing and hit nothing.
func (s *State) Fire() FireResult {
	if s.Phase == PhaseOver {
		return FireResult{Denied: FireDeniedCooldown}
	}
	if denied := s.Weapon.CheckFire(); denied != FireOK {
		return FireResult{Denied: denied}
	}

	s.Weapon.consumeRound()
	res := FireResult{Fired: true, Target: -1}

	ray := s.Aim.FiringRay()
	idx, dist, ok := s.nearestHit(ray)
	if !ok {
		return res
	}

	res.Hit = true
	res.Target = idx
	res.Distance = dist
	if s.Ghosts[idx].TakeDamage(s.Config.ShotDamage) {
		res.Killed = true
		s.Kills++
	}
	return res
}

// nearestHit scans live ghosts for the closest ray intersection in range.
func (s *State) nearestHit(ray rl.Ray) (int, float32, bool) {
	bestIdx := -1
	var bestDist float32
	for i := range s.Ghosts {
		g := &s.Ghosts[i]
		if !g.Alive {
			continue
		}
		t, hit := RayCylinder(ray, g.Position, g.Radius, g.Height, s.Config.MaxShotRange)
		if !hit {
			continue
		}
		if bestIdx < 0 || t < bestDist {
			bestIdx = i
			bestDist = t
		}
	}
	return bestIdx, bestDist, bestIdx >= 0
}

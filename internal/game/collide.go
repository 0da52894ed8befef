package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RayCylinder intersects a ray with a vertical cylinder centred at centre
// (radius around the Y axis, total height straddling the centre) and returns
// the nearest hit distance within maxDist. Sides are solved as a quadratic in
// XZ and bounded by height; the top and bottom caps are tested as discs; a
// ray parallel to the axis only hits through the caps.
func RayCylinder(ray rl.Ray, centre rl.Vector3, radius, height, maxDist float32) (float32, bool) {
	ox := float64(ray.Position.X - centre.X)
	oy := float64(ray.Position.Y - centre.Y)
	oz := float64(ray.Position.Z - centre.Z)
	dx := float64(ray.Direction.X)
	dy := float64(ray.Direction.Y)
	dz := float64(ray.Direction.Z)

	r := float64(radius)
	halfH := float64(height) / 2
	limit := float64(maxDist)

	best := math.Inf(1)
	consider := func(t float64) {
		if t >= 0 && t <= limit && t < best {
			best = t
		}
	}

	a := dx*dx + dz*dz
	if a < 1e-9 {
		// Axis-parallel: inside the footprint the only entry is through a cap.
		if ox*ox+oz*oz <= r*r && dy != 0 {
			consider((-halfH - oy) / dy)
			consider((halfH - oy) / dy)
		}
	} else {
		b := 2 * (ox*dx + oz*dz)
		c := ox*ox + oz*oz - r*r
		disc := b*b - 4*a*c
		if disc >= 0 {
			sq := math.Sqrt(disc)
			for _, t := range [2]float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
				y := oy + t*dy
				if y >= -halfH && y <= halfH {
					consider(t)
				}
			}
		}
		if dy != 0 {
			for _, capY := range [2]float64{-halfH, halfH} {
				t := (capY - oy) / dy
				if t < 0 || t > limit {
					continue
				}
				hx := ox + t*dx
				hz := oz + t*dz
				if hx*hx+hz*hz <= r*r {
					consider(t)
				}
			}
		}
	}

	if math.IsInf(best, 1) {
		return 0, false
	}
	return float32(best), true
}

// PointInCylinder reports whether a world point lies inside the cylinder.
func PointInCylinder(point, centre rl.Vector3, radius, height float32) bool {
	dx := point.X - centre.X
	dz := point.Z - centre.Z
	if dx*dx+dz*dz > radius*radius {
		return false
	}
	halfH := height / 2
	return point.Y >= centre.Y-halfH && point.Y <= centre.Y+halfH
}

// CylinderSphereOverlap approximates the cylinder as a sphere of its larger
// extent, matching the contact-damage test the game needs at player scale.
func CylinderSphereOverlap(centre rl.Vector3, radius, height float32, sphereCentre rl.Vector3, sphereRadius float32) bool {
	effective := radius
	if height/2 > effective {
		effective = height / 2
	}
	return rl.Vector3Distance(centre, sphereCentre) <= effective+sphereRadius
}

// distanceXZ is the ground-plane distance between two points; the chase AI
// ignores hover height.
func distanceXZ(a, b rl.Vector3) float32 {
	dx := float64(a.X - b.X)
	dz := float64(a.Z - b.Z)
	return float32(math.Sqrt(dx*dx + dz*dz))
}

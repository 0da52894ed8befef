package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Weapon model axes. The pistol model's barrel runs along negative Z, and the
// barrel tip sits forward and slightly above the model origin.
var (
	weaponForward = rl.NewVector3(0, 0, -1)
	barrelOffset  = rl.NewVector3(0, 0.2, -1.0)
	weaponAnchor  = rl.NewVector3(0, -0.4, -0.8)
)

// AimRig converts the cursor's world-projected point into the weapon's
// orientation and firing ray. The camera is fixed; the weapon hangs at a
// constant offset below and in front of it.
type AimRig struct {
	CameraPosition rl.Vector3
	Target         rl.Vector3
	Orientation    rl.Quaternion
}

func NewAimRig(cameraPosition rl.Vector3) AimRig {
	rig := AimRig{
		CameraPosition: cameraPosition,
		Target:         rl.Vector3Add(cameraPosition, rl.NewVector3(0, 0, -10)),
		Orientation:    rl.QuaternionIdentity(),
	}
	rig.refresh()
	return rig
}

// SetTarget points the weapon at a world-space point and recomputes the
// orientation quaternion.
func (r *AimRig) SetTarget(target rl.Vector3) {
	r.Target = target
	r.refresh()
}

func (r *AimRig) refresh() {
	dir := rl.Vector3Subtract(r.Target, r.WeaponPosition())
	r.Orientation = aimQuaternion(weaponForward, dir)
}

// WeaponPosition is the model origin in world space.
func (r *AimRig) WeaponPosition() rl.Vector3 {
	return rl.Vector3Add(r.CameraPosition, weaponAnchor)
}

// MuzzlePosition is the barrel tip: the model origin plus the barrel offset
// rotated by the current orientation.
func (r *AimRig) MuzzlePosition() rl.Vector3 {
	tip := rl.Vector3RotateByQuaternion(barrelOffset, r.Orientation)
	return rl.Vector3Add(r.WeaponPosition(), tip)
}

// FiringRay runs from the muzzle toward the aim target. Bullets resolve
// instantaneously along this ray; there is no travelling projectile.
func (r *AimRig) FiringRay() rl.Ray {
	origin := r.MuzzlePosition()
	dir := rl.Vector3Subtract(r.Target, origin)
	if rl.Vector3Length(dir) < 1e-4 {
		dir = rl.Vector3RotateByQuaternion(weaponForward, r.Orientation)
	}
	return rl.Ray{Position: origin, Direction: rl.Vector3Normalize(dir)}
}

// aimQuaternion builds the rotation carrying from onto to via axis-angle.
// Degenerate cases: parallel vectors need no rotation; antiparallel vectors
// flip 180 degrees about Y.
func aimQuaternion(from, to rl.Vector3) rl.Quaternion {
	length := rl.Vector3Length(to)
	if length < 1e-4 {
		return rl.QuaternionIdentity()
	}
	to = rl.Vector3Scale(to, 1/length)

	cross := rl.Vector3CrossProduct(from, to)
	dot := rl.Vector3DotProduct(from, to)

	crossLen := rl.Vector3Length(cross)
	if crossLen < 1e-4 {
		if dot > 0 {
			return rl.QuaternionIdentity()
		}
		return rl.NewQuaternion(0, 1, 0, 0)
	}

	axis := rl.Vector3Scale(cross, 1/crossLen)
	angle := float32(math.Acos(clamp64(float64(dot), -1, 1)))
	return rl.QuaternionNormalize(rl.QuaternionFromAxisAngle(axis, angle))
}

func clamp64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

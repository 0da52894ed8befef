package gui

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/ghost-range/internal/game"
)

const weaponModelFile = "assets/models/pistol.glb"

// weaponView renders the aimed weapon: a loaded mesh when the asset exists,
// otherwise a blocky stand-in built from cubes.
type weaponView struct {
	model  rl.Model
	loaded bool
}

func (wv *weaponView) load() {
	if _, err := os.Stat(weaponModelFile); err != nil {
		return
	}
	model := rl.LoadModel(weaponModelFile)
	if model.MeshCount == 0 {
		return
	}
	wv.model = model
	wv.loaded = true
}

func (wv *weaponView) unload() {
	if wv.loaded {
		rl.UnloadModel(wv.model)
		wv.loaded = false
	}
}

// orientation composes the aim rotation with the reload barrel spin.
func (wv *weaponView) orientation(run *game.State) rl.Quaternion {
	q := run.Aim.Orientation
	if spin := run.Weapon.SpinAngle(); spin != 0 {
		q = rl.QuaternionMultiply(q, rl.QuaternionFromAxisAngle(rl.NewVector3(0, 0, 1), float32(spin)))
	}
	return q
}

func (wv *weaponView) draw(run *game.State) {
	q := wv.orientation(run)
	pos := run.Aim.WeaponPosition()

	if wv.loaded {
		wv.model.Transform = rl.QuaternionToMatrix(q)
		rl.DrawModel(wv.model, pos, 1, rl.White)
		return
	}

	// Stand-in: grip cube plus a barrel cube pushed out along the muzzle axis.
	body := rl.Vector3Add(pos, rl.Vector3RotateByQuaternion(rl.NewVector3(0, 0, -0.2), q))
	barrel := rl.Vector3Add(pos, rl.Vector3RotateByQuaternion(rl.NewVector3(0, 0.15, -0.6), q))
	rl.DrawCubeV(body, rl.NewVector3(0.16, 0.22, 0.5), rl.DarkGray)
	rl.DrawCubeV(barrel, rl.NewVector3(0.1, 0.1, 0.7), rl.Gray)
	rl.DrawSphere(run.Aim.MuzzlePosition(), 0.035, colorAccent)
}

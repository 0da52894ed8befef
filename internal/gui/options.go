package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type optionRow int

const (
	optionMute optionRow = iota
	optionAimDistance
	optionBack
	optionCount
)

func (ui *gameUI) updateOptions() {
	if rl.IsKeyPressed(rl.KeyDown) {
		ui.opts.Cursor = wrapIndex(ui.opts.Cursor+1, int(optionCount))
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		ui.opts.Cursor = wrapIndex(ui.opts.Cursor-1, int(optionCount))
	}

	changed := false
	switch optionRow(ui.opts.Cursor) {
	case optionMute:
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyRight) {
			ui.saved.Options.Muted = !ui.saved.Options.Muted
			ui.sounds.SetMuted(ui.cfg.Mute || ui.saved.Options.Muted)
			changed = true
		}
	case optionAimDistance:
		step := 0.0
		if rl.IsKeyPressed(rl.KeyLeft) {
			step = -5
		}
		if rl.IsKeyPressed(rl.KeyRight) {
			step = 5
		}
		if step != 0 {
			d := ui.aimDistanceSetting() + step
			ui.saved.Options.AimDistance = float64(clampInt(int(d), 5, 200))
			changed = true
		}
	case optionBack:
		if rl.IsKeyPressed(rl.KeyEnter) {
			ui.screen = screenMenu
		}
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.screen = screenMenu
	}

	if changed {
		if err := saveProfile(ui.savedPath, ui.saved); err != nil {
			ui.status = fmt.Sprintf("Save failed: %v", err)
		}
	}
}

// aimDistanceSetting returns the stored aim distance, falling back to the
// run default when the profile has never set one.
func (ui *gameUI) aimDistanceSetting() float64 {
	if ui.saved.Options.AimDistance > 0 {
		return ui.saved.Options.AimDistance
	}
	return 20
}

func (ui *gameUI) drawOptions() {
	panel := rl.NewRectangle(float32(ui.width/2-280), 120, 560, 340)
	drawPanel(panel, "Options")

	rows := []struct {
		Label string
		Value string
	}{
		{"Sound", onOff(!ui.saved.Options.Muted)},
		{"Aim distance", fmt.Sprintf("%.0f", ui.aimDistanceSetting())},
		{"Back", ""},
	}

	for i, row := range rows {
		y := int32(panel.Y) + 80 + int32(i*64)
		tint := colorText
		if i == ui.opts.Cursor {
			tint = colorAccent
			rl.DrawText(">", int32(panel.X)+22, y, typeScale.Body, colorAccent)
		}
		rl.DrawText(row.Label, int32(panel.X)+48, y, typeScale.Body, tint)
		if row.Value != "" {
			w := rl.MeasureText(row.Value, typeScale.Body)
			rl.DrawText(row.Value, int32(panel.X+panel.Width)-48-w, y, typeScale.Body, tint)
		}
	}

	drawTextCentered("Left/Right adjusts, Esc returns", panel, panel.Height-36, typeScale.Small, colorDim)
}

func onOff(on bool) string {
	if on {
		return "On"
	}
	return "Off"
}

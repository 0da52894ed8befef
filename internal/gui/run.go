package gui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/ghost-range/internal/game"
	"github.com/appengine-ltd/ghost-range/internal/parser"
)

const (
	tracerDuration = 0.06
	bannerDuration = 2.0
)

func (ui *gameUI) updateRun(delta float64) {
	run := ui.run
	if run == nil {
		ui.screen = screenMenu
		return
	}

	if rl.IsKeyPressed(rl.KeyGrave) {
		ui.console.Open = !ui.console.Open
	}

	if ui.console.Open {
		ui.updateConsole()
	} else {
		ui.updateRunInput(run)
	}
	ui.drainIntents(run)

	ev := run.Step(delta)
	ui.reactToEvents(ev)

	if ui.tracerLeft > 0 {
		ui.tracerLeft -= delta
	}
	if ui.bannerLeft > 0 {
		ui.bannerLeft -= delta
	}
}

// updateRunInput handles aim, trigger, and reload while the console is closed.
func (ui *gameUI) updateRunInput(run *game.State) {
	mouse := rl.GetMousePosition()
	pick := rl.GetScreenToWorldRay(mouse, ui.camera)
	target := rl.Vector3Add(pick.Position, rl.Vector3Scale(pick.Direction, run.Config.AimDistance))
	run.Aim.SetTarget(target)

	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		res := run.Fire()
		switch {
		case res.Fired:
			ui.sounds.PlayShot()
			ui.tracerRay = run.Aim.FiringRay()
			ui.tracerLeft = tracerDuration
			if res.Hit {
				ui.sounds.PlayHit()
			}
		case res.Denied == game.FireDeniedEmpty || res.Denied == game.FireDeniedReloading:
			if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
				ui.sounds.PlayDryFire()
			}
		}
	}

	if rl.IsKeyPressed(rl.KeyR) {
		if run.RequestReload() {
			ui.sounds.PlayReload()
		}
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.screen = screenMenu
	}
}

func (ui *gameUI) drainIntents(run *game.State) {
	for {
		intent, ok := ui.intents.Dequeue()
		if !ok {
			return
		}
		ui.executeIntent(run, intent)
	}
}

func (ui *gameUI) executeIntent(run *game.State, intent parser.Intent) {
	if intent.Clarify != nil {
		ui.console.appendLine("? " + intent.Clarify.Prompt)
		for _, opt := range intent.Clarify.Options {
			ui.console.appendLine("  - " + opt)
		}
		return
	}

	if intent.Verb == "quit" {
		// The "menu" spelling backs out to the menu; the rest quit outright.
		if strings.HasPrefix(intent.Normalised, "menu") {
			ui.screen = screenMenu
		} else {
			ui.quit = true
		}
		return
	}

	res := run.ExecuteConsoleCommand(intent.Verb, intent.Args)
	if !res.Handled {
		ui.console.appendLine(fmt.Sprintf("? unknown command %q", intent.Verb))
		return
	}
	if res.Message != "" {
		ui.console.appendLine(res.Message)
	}
}

func (ui *gameUI) reactToEvents(ev game.StepEvents) {
	if ev.PlayerHit {
		ui.sounds.PlayHurt()
	}
	if ev.WaveStarted > 0 {
		ui.sounds.PlayWaveHorn()
		ui.waveBanner = fmt.Sprintf("WAVE %d", ev.WaveStarted)
		ui.bannerLeft = bannerDuration
	}
	if ev.WaveCleared > 0 {
		ui.waveBanner = fmt.Sprintf("Wave %d cleared", ev.WaveCleared)
		ui.bannerLeft = bannerDuration
	}
	if ev.GameOver {
		ui.finishRun()
	}
}

// finishRun records the summary, updates the saved best, and shows game over.
func (ui *gameUI) finishRun() {
	run := ui.run
	ui.summary = runSummary{
		Wave:     run.Wave,
		Kills:    run.Kills,
		Survived: run.Elapsed,
	}

	candidate := bestRun{Wave: run.Wave, Kills: run.Kills, Survived: run.Elapsed}
	if betterRun(candidate, ui.saved.Best) {
		ui.saved.Best = candidate
		ui.summary.NewBest = true
		if err := saveProfile(ui.savedPath, ui.saved); err != nil {
			ui.status = fmt.Sprintf("Save failed: %v", err)
		}
	}
	ui.screen = screenGameOver
}

func (ui *gameUI) drawRun() {
	run := ui.run
	if run == nil {
		return
	}

	rl.BeginMode3D(ui.camera)
	ui.drawScene(run)
	rl.EndMode3D()

	ui.drawHUD(run)
	if ui.console.Open {
		ui.drawConsole()
	}
	if ui.bannerLeft > 0 {
		alpha := float32(1.0)
		if ui.bannerLeft < 0.5 {
			alpha = float32(ui.bannerLeft / 0.5)
		}
		r := rl.NewRectangle(0, float32(ui.height)/4, float32(ui.width), 60)
		drawTextCentered(ui.waveBanner, r, 0, typeScale.Title+10, rl.Fade(colorAccent, alpha))
	}
}

func (ui *gameUI) drawScene(run *game.State) {
	rl.DrawPlane(rl.NewVector3(0, 0, 0), rl.NewVector2(80, 80), colorGround)
	rl.DrawGrid(40, 2)

	for i := range run.Ghosts {
		g := &run.Ghosts[i]
		if !g.Alive {
			continue
		}
		base := rl.NewVector3(g.Position.X, g.Position.Y-g.Height/2, g.Position.Z)
		rl.DrawCylinder(base, g.Radius, g.Radius, g.Height, 12, colorGhost)
		rl.DrawCylinderWires(base, g.Radius, g.Radius, g.Height, 12, colorGhostRim)
	}

	if ui.tracerLeft > 0 {
		end := rl.Vector3Add(ui.tracerRay.Position, rl.Vector3Scale(ui.tracerRay.Direction, run.Config.MaxShotRange))
		rl.DrawLine3D(ui.tracerRay.Position, end, rl.Fade(colorAccent, 0.8))
	}

	rl.DrawSphere(run.Aim.Target, 0.08, colorWarn)
	ui.weapon.draw(run)
}

func (ui *gameUI) drawHUD(run *game.State) {
	// Ghost health bars, projected above each cylinder.
	for i := range run.Ghosts {
		g := &run.Ghosts[i]
		if !g.Alive {
			continue
		}
		top := rl.NewVector3(g.Position.X, g.Position.Y+g.Height/2+0.4, g.Position.Z)
		// Skip points behind the camera; projection wraps around otherwise.
		if top.Z >= ui.camera.Position.Z {
			continue
		}
		p := rl.GetWorldToScreen(top, ui.camera)
		bar := rl.NewRectangle(p.X-26, p.Y-6, 52, 7)
		drawBar(bar, g.HealthFraction(), colorDanger, "")
	}

	// Health.
	percent := run.Player.Health * 100 / run.Config.MaxHealth
	health := rl.NewRectangle(20, float32(ui.height-52), 260, 26)
	drawBar(health, float32(run.Player.HealthFraction()), healthBarColor(percent), fmt.Sprintf("HP %d", run.Player.Health))

	// Ammo pips.
	pips := ammoPipRects(300, float32(ui.height-50), 18, 6, run.Weapon.Magazine)
	for i, r := range pips {
		if i < run.Weapon.Rounds {
			rl.DrawRectangleRec(r, colorAccent)
		}
		rl.DrawRectangleLinesEx(r, 1, colorBorder)
	}
	if run.Weapon.Reloading() {
		reload := rl.NewRectangle(300, float32(ui.height-26), float32(len(pips))*24-6, 6)
		drawBar(reload, float32(run.Weapon.ReloadProgress()), colorWarn, "")
		rl.DrawText("RELOADING", 300, ui.height-74, typeScale.Small, colorWarn)
	}

	// Wave readout.
	right := fmt.Sprintf("Wave %d   Kills %d   %s", run.Wave, run.Kills, formatClock(run.Elapsed))
	w := rl.MeasureText(right, typeScale.Body)
	rl.DrawText(right, ui.width-20-w, 16, typeScale.Body, colorText)
	if run.Phase == game.PhaseIntermission {
		msg := fmt.Sprintf("Next wave in %.1f", run.IntermissionLeft)
		mw := rl.MeasureText(msg, typeScale.Body)
		rl.DrawText(msg, ui.width-20-mw, 44, typeScale.Body, colorDim)
	}
	if run.GodMode {
		rl.DrawText("GOD", ui.width-20-rl.MeasureText("GOD", typeScale.Small), 72, typeScale.Small, colorWarn)
	}

	// Crosshair.
	m := rl.GetMousePosition()
	rl.DrawLineEx(rl.NewVector2(m.X-8, m.Y), rl.NewVector2(m.X+8, m.Y), 1.5, colorAccent)
	rl.DrawLineEx(rl.NewVector2(m.X, m.Y-8), rl.NewVector2(m.X, m.Y+8), 1.5, colorAccent)
}

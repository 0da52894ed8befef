package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/ghost-range/internal/audio"
	"github.com/appengine-ltd/ghost-range/internal/game"
	"github.com/appengine-ltd/ghost-range/internal/parser"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Seed      int64
	Mute      bool
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	ui, err := newGameUI(a.cfg)
	if err != nil {
		return err
	}
	return ui.Run()
}

type screen int

const (
	screenMenu screen = iota
	screenOptions
	screenRun
	screenGameOver
)

type menuAction int

const (
	actionStart menuAction = iota
	actionOptions
	actionQuit
)

type menuItem struct {
	Label  string
	Action menuAction
}

type optionsState struct {
	Cursor int
}

// runSummary is what the game-over screen reports about the finished run.
type runSummary struct {
	Wave     int
	Kills    int
	Survived float64
	NewBest  bool
}

type gameUI struct {
	cfg AppConfig

	width  int32
	height int32
	quit   bool

	screen     screen
	menuCursor int
	opts       optionsState
	status     string
	showFPS    bool

	run     *game.State
	summary runSummary

	sounds  *audio.SoundManager
	parse   *parser.Parser
	console consoleState
	intents *intentQueue

	saved     savedProfile
	savedPath string

	camera      rl.Camera3D
	weapon      weaponView
	tracerLeft  float64
	tracerRay   rl.Ray
	waveBanner  string
	bannerLeft  float64

	lastTick time.Time
}

func newGameUI(cfg AppConfig) (*gameUI, error) {
	ui := &gameUI{
		cfg:       cfg,
		width:     1280,
		height:    720,
		screen:    screenMenu,
		sounds:    audio.NewSoundManager(),
		parse:     parser.New(),
		intents:   newIntentQueue(16),
		savedPath: defaultProfileFile,
	}

	saved, err := loadProfile(ui.savedPath)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	ui.saved = saved
	ui.sounds.SetMuted(cfg.Mute || saved.Options.Muted)

	ui.camera = rl.Camera3D{
		Position:   game.CameraPosition,
		Target:     rl.NewVector3(game.CameraPosition.X, game.CameraPosition.Y, game.CameraPosition.Z-10),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
	ui.lastTick = time.Now()
	return ui, nil
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "ghost-range")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	defaultFont := rl.GetFontDefault()
	rl.SetTextureFilter(defaultFont.Texture, rl.FilterBilinear)

	if err := ui.sounds.Initialize(); err != nil {
		// No audio device is not fatal; the range runs silent.
		ui.status = fmt.Sprintf("Audio disabled: %v", err)
	}
	ui.weapon.load()

	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(ui.lastTick).Seconds()
		if delta < 0 {
			delta = 0
		}
		ui.lastTick = now

		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update(delta)

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		ui.draw()
		if ui.showFPS {
			rl.DrawFPS(10, ui.height-26)
		}
		rl.EndDrawing()
	}

	ui.weapon.unload()
	ui.sounds.Cleanup()
	rl.CloseWindow()
	return nil
}

func (ui *gameUI) update(delta float64) {
	if rl.IsKeyPressed(rl.KeyF3) {
		ui.showFPS = !ui.showFPS
	}

	switch ui.screen {
	case screenMenu:
		ui.updateMenu()
	case screenOptions:
		ui.updateOptions()
	case screenRun:
		ui.updateRun(delta)
	case screenGameOver:
		ui.updateGameOver()
	}
}

func (ui *gameUI) draw() {
	switch ui.screen {
	case screenMenu:
		ui.drawMenu()
	case screenOptions:
		ui.drawOptions()
	case screenRun:
		ui.drawRun()
	case screenGameOver:
		ui.drawGameOver()
	}
}

func (ui *gameUI) menuItems() []menuItem {
	return []menuItem{
		{Label: "Start", Action: actionStart},
		{Label: "Options", Action: actionOptions},
		{Label: "Quit", Action: actionQuit},
	}
}

func (ui *gameUI) updateMenu() {
	items := ui.menuItems()
	if rl.IsKeyPressed(rl.KeyDown) {
		ui.menuCursor = wrapIndex(ui.menuCursor+1, len(items))
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		ui.menuCursor = wrapIndex(ui.menuCursor-1, len(items))
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		switch items[ui.menuCursor].Action {
		case actionStart:
			ui.startRun()
		case actionOptions:
			ui.screen = screenOptions
		case actionQuit:
			ui.quit = true
		}
	}
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		ui.quit = true
	}
}

func (ui *gameUI) startRun() {
	cfg := game.DefaultConfig()
	cfg.Seed = ui.cfg.Seed
	if ui.saved.Options.AimDistance > 0 {
		cfg.AimDistance = float32(ui.saved.Options.AimDistance)
	}

	run, err := game.NewState(cfg)
	if err != nil {
		ui.status = fmt.Sprintf("Cannot start run: %v", err)
		return
	}
	ui.run = run
	ui.console = consoleState{}
	ui.tracerLeft = 0
	ui.bannerLeft = 0
	ui.status = ""
	ui.screen = screenRun
}

func (ui *gameUI) drawMenu() {
	titleRect := rl.NewRectangle(20, 20, float32(ui.width-40), 120)
	drawPanel(titleRect, "GHOST RANGE")
	drawTextCentered(fmt.Sprintf("v%s (%s) %s", ui.cfg.Version, ui.cfg.Commit, ui.cfg.BuildDate), titleRect, 52, 18, colorDim)
	if best := ui.saved.Best; best.Kills > 0 {
		drawTextCentered(fmt.Sprintf("Best: wave %d, %d kills", best.Wave, best.Kills), titleRect, 82, 17, colorAccent)
	}

	items := ui.menuItems()
	menuRect := rl.NewRectangle(float32(ui.width/2-220), 185, 440, float32(120+len(items)*72))
	drawPanel(menuRect, "Main Menu")
	for i, item := range items {
		y := int32(menuRect.Y) + 70 + int32(i*72)
		r := rl.NewRectangle(menuRect.X+32, float32(y), menuRect.Width-64, 52)
		if i == ui.menuCursor {
			rl.DrawRectangleRounded(r, 0.3, 8, rl.Fade(colorAccent, 0.2))
			rl.DrawRectangleRoundedLinesEx(r, 0.3, 8, 2, colorAccent)
			rl.DrawText(item.Label, int32(r.X)+18, y+14, 28, colorAccent)
		} else {
			rl.DrawRectangleRounded(r, 0.3, 8, rl.Fade(colorPanel, 0.7))
			rl.DrawRectangleRoundedLinesEx(r, 0.3, 8, 1.5, colorBorder)
			rl.DrawText(item.Label, int32(r.X)+18, y+14, 28, colorText)
		}
	}

	hintRect := rl.NewRectangle(20, float32(ui.height-90), float32(ui.width-40), 70)
	drawPanel(hintRect, "")
	drawTextCentered("Mouse aims, left click fires, R reloads, ` opens the console", hintRect, 14, typeScale.Small, colorDim)
	if ui.status != "" {
		drawTextCentered(ui.status, hintRect, 38, typeScale.Small, colorWarn)
	}
}

func (ui *gameUI) updateGameOver() {
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
		ui.startRun()
	}
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyQ) {
		ui.screen = screenMenu
	}
}

func (ui *gameUI) drawGameOver() {
	panel := rl.NewRectangle(float32(ui.width/2-260), float32(ui.height/2-160), 520, 320)
	drawPanel(panel, "RUN OVER")

	lines := []string{
		fmt.Sprintf("Reached wave %d", ui.summary.Wave),
		fmt.Sprintf("%d ghosts destroyed", ui.summary.Kills),
		fmt.Sprintf("Survived %s", formatClock(ui.summary.Survived)),
	}
	for i, line := range lines {
		drawTextCentered(line, panel, 70+float32(i)*34, typeScale.Body, colorText)
	}
	if ui.summary.NewBest {
		drawTextCentered("New best run!", panel, 190, typeScale.Body, colorAccent)
	}
	drawTextCentered("Enter to retry, Esc for menu", panel, 260, typeScale.Small, colorDim)
}

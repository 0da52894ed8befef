package gui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const consoleLogLimit = 60

// consoleState is the drop-down developer console. Lines typed here go
// through the parser and land on the intent queue for the next frame.
type consoleState struct {
	Open  bool
	Input string
	Log   []string
}

func (c *consoleState) appendLine(line string) {
	c.Log = append(c.Log, line)
	if len(c.Log) > consoleLogLimit {
		c.Log = c.Log[len(c.Log)-consoleLogLimit:]
	}
}

func (ui *gameUI) updateConsole() {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch == '`' {
			continue
		}
		if ch >= 32 && ch < 127 && len(ui.console.Input) < 120 {
			ui.console.Input += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(ui.console.Input) > 0 {
		ui.console.Input = ui.console.Input[:len(ui.console.Input)-1]
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.console.Open = false
		return
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		line := strings.TrimSpace(ui.console.Input)
		ui.console.Input = ""
		if line == "" {
			return
		}
		ui.console.appendLine("> " + line)
		ui.intents.EnqueueIntent(ui.parse.Parse(line))
	}
}

func (ui *gameUI) drawConsole() {
	h := float32(ui.height) * 0.45
	panel := rl.NewRectangle(0, 0, float32(ui.width), h)
	rl.DrawRectangleRec(panel, rl.Fade(colorPanel, 0.92))
	rl.DrawLineEx(rl.NewVector2(0, h), rl.NewVector2(float32(ui.width), h), 2, colorBorder)

	lineHeight := int32(typeScale.Small + 4)
	inputY := int32(h) - lineHeight - 8
	visible := int(inputY-8) / int(lineHeight)
	log := ui.console.Log
	if len(log) > visible {
		log = log[len(log)-visible:]
	}
	y := inputY - int32(len(log))*lineHeight
	for _, line := range log {
		tint := colorDim
		if strings.HasPrefix(line, "> ") {
			tint = colorText
		} else if strings.HasPrefix(line, "? ") {
			tint = colorWarn
		}
		rl.DrawText(line, 12, y, typeScale.Small, tint)
		y += lineHeight
	}

	prompt := "> " + ui.console.Input + "_"
	rl.DrawText(prompt, 12, inputY, typeScale.Small, colorAccent)
}

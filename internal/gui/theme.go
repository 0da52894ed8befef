package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Night-range palette: dark blue field, phosphor green accents.
var (
	colorBG       = rl.NewColor(8, 12, 18, 255)
	colorPanel    = rl.NewColor(14, 24, 35, 255)
	colorBorder   = rl.NewColor(25, 200, 120, 255)
	colorText     = rl.NewColor(175, 245, 195, 255)
	colorDim      = rl.NewColor(108, 165, 124, 255)
	colorAccent   = rl.NewColor(60, 255, 145, 255)
	colorWarn     = rl.NewColor(255, 198, 96, 255)
	colorDanger   = rl.NewColor(255, 92, 92, 255)
	colorGround   = rl.NewColor(26, 34, 30, 255)
	colorGhost    = rl.NewColor(150, 210, 255, 120)
	colorGhostRim = rl.NewColor(190, 230, 255, 220)
)

type typographyScale struct {
	Title  int32
	Header int32
	Body   int32
	Small  int32
}

var typeScale = typographyScale{
	Title:  30,
	Header: 21,
	Body:   19,
	Small:  16,
}

func drawPanel(rect rl.Rectangle, title string) {
	rl.DrawRectangleRounded(rect, 0.08, 8, colorPanel)
	rl.DrawRectangleRoundedLinesEx(rect, 0.08, 8, 1.5, colorBorder)
	if title != "" {
		rl.DrawText(title, int32(rect.X)+18, int32(rect.Y)+12, typeScale.Header, colorAccent)
		y := rect.Y + float32(typeScale.Header) + 20
		rl.DrawLineEx(rl.NewVector2(rect.X+14, y), rl.NewVector2(rect.X+rect.Width-14, y), 1, rl.Fade(colorBorder, 0.6))
	}
}

func drawTextCentered(text string, rect rl.Rectangle, yOffset float32, fontSize int32, tint rl.Color) {
	w := rl.MeasureText(text, fontSize)
	x := int32(rect.X + rect.Width/2 - float32(w)/2)
	rl.DrawText(text, x, int32(rect.Y+yOffset), fontSize, tint)
}

// drawBar renders a labelled horizontal gauge with the given fill fraction.
func drawBar(rect rl.Rectangle, frac float32, fill rl.Color, label string) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	rl.DrawRectangleRec(rect, rl.Fade(colorPanel, 0.9))
	inner := rl.NewRectangle(rect.X+1, rect.Y+1, (rect.Width-2)*frac, rect.Height-2)
	if inner.Width > 0 {
		rl.DrawRectangleRec(inner, fill)
	}
	rl.DrawRectangleLinesEx(rect, 1, rl.Fade(colorBorder, 0.95))
	if label != "" {
		rl.DrawText(label, int32(rect.X)+6, int32(rect.Y)+int32(rect.Height)/2-8, typeScale.Small, colorText)
	}
}

// healthBarColor picks the gauge color from remaining health percent:
// accent above 50, amber above 25, red below.
func healthBarColor(percent int) rl.Color {
	switch {
	case percent > 50:
		return colorAccent
	case percent > 25:
		return colorWarn
	default:
		return colorDanger
	}
}

// ammoPipRects lays out one square pip per magazine slot, left to right.
func ammoPipRects(x, y, size, gap float32, magazine int) []rl.Rectangle {
	rects := make([]rl.Rectangle, magazine)
	for i := range rects {
		rects[i] = rl.NewRectangle(x+float32(i)*(size+gap), y, size, size)
	}
	return rects
}

func formatClock(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

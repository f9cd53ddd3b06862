package bouncer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-bouncer/internal/core"
)

// Visual characters for rendering
const (
	PadChar  = '█'
	BallChar = '●'
)

var kindColors = map[Kind]core.Color{
	KindInit:    core.ColorDefault,
	KindRegular: core.ColorYellow,
	KindBlack:   core.ColorBlack,
	KindWhite:   core.ColorWhite,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	for _, p := range g.sim.Pads {
		dst.FillRect(cellRect(p.Sprite), PadChar, core.ColorCyan)
	}
	for _, b := range g.sim.Balls.Active() {
		r := cellRect(b.Sprite)
		dst.FillRect(r, BallChar, kindColors[b.Kind])
	}

	if g.hud.score != "" {
		dst.DrawText(2, 1, g.hud.score, core.ColorDefault)
		healthColor := core.ColorGreen
		if g.hud.low {
			healthColor = core.ColorRed
		}
		dst.DrawText(dst.Width()-len(g.hud.health)-2, 1, g.hud.health, healthColor)
	}

	t := g.sim.Tracker

	switch {
	case g.err != nil:
		g.drawCenteredMessage(dst, "ERROR", g.err.Error())
	case g.sim.Over():
		g.drawCenteredMessage(dst, g.message, fmt.Sprintf("Score: %d  |  Press R to restart", t.Score))
	case g.sim.Paused():
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// cellRect converts a pixel sprite to the terminal cells it covers.
func cellRect(s core.Sprite) core.Rect {
	x0 := int(math.Floor(s.W() / CellWidth))
	y0 := int(math.Floor(s.N() / CellHeight))
	x1 := int(math.Ceil(s.E() / CellWidth))
	y1 := int(math.Ceil(s.S() / CellHeight))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorYellow)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, core.ColorDefault)
}

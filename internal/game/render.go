package game

import (
	"fmt"

	"github.com/antonvlasov/tui-pong/internal/config"
	"github.com/antonvlasov/tui-pong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// accentColor maps a profile accent name to a screen color.
func accentColor(name string) core.Color {
	switch name {
	case "green":
		return core.ColorGreen
	case "yellow":
		return core.ColorYellow
	case "red":
		return core.ColorRed
	default:
		return core.ColorWhite
	}
}

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.mode == ModeMenu {
		g.renderMenu(dst)
		return
	}
	g.renderPlaying(dst)
}

func (g *Game) renderMenu(dst *core.Screen) {
	h := dst.Height()

	titleY := h / 4
	dst.DrawTextCenteredColor(titleY, "P  O  N  G", core.ColorWhite)
	dst.DrawTextCentered(titleY+2, "Select Difficulty")

	for i, d := range config.Difficulties() {
		profile := g.cfg.Profile(d)
		line := fmt.Sprintf("%d - %s", i+1, d.Title())
		dst.DrawTextCenteredColor(titleY+4+i, line, accentColor(profile.Accent))
	}

	dst.DrawTextCenteredColor(h-4, "Press 1, 2 or 3 to select difficulty", core.ColorGray)
	dst.DrawTextCenteredColor(h-3, "Tab: past sessions  |  Esc: quit", core.ColorGray)
}

func (g *Game) renderPlaying(dst *core.Screen) {
	w := dst.Width()
	h := dst.Height()

	// HUD: scores over each court half, labels, difficulty accent.
	leftText := g.score.Text(SideLeft)
	rightText := g.score.Text(SideRight)
	dst.DrawTextColor(w/4-len(leftText)/2, 0, leftText, core.ColorWhite)
	dst.DrawTextColor(3*w/4-len(rightText)/2, 0, rightText, core.ColorWhite)
	dst.DrawText(w/4-3, 1, "PLAYER")
	dst.DrawText(3*w/4-1, 1, "CPU")

	profile := g.cfg.Profile(g.difficulty)
	diffText := fmt.Sprintf("Difficulty: %s", g.difficulty.Title())
	dst.DrawTextCenteredColor(2, diffText, accentColor(profile.Accent))

	// Center dashed line.
	centerX := w / 2
	for y := hudRows; y < h; y += 2 {
		dst.SetColor(centerX, y, NetChar, core.ColorGray)
	}

	g.drawPaddle(dst, g.player)
	g.drawPaddle(dst, g.cpu)
	dst.SetColor(int(g.ball.X), hudRows+int(g.ball.Y), BallChar, core.ColorWhite)

	dst.DrawTextColor(1, h-1, "W/S or Arrows: move  |  Esc: menu", core.ColorGray)
}

func (g *Game) drawPaddle(dst *core.Screen, p *Paddle) {
	for dx := 0; dx < int(p.Width); dx++ {
		for dy := 0; dy < int(p.Height); dy++ {
			dst.SetColor(int(p.X)+dx, hudRows+int(p.Y)+dy, PaddleChar, core.ColorWhite)
		}
	}
}

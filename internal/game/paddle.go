// Package game implements the Pong simulation: paddles, ball physics, the
// CPU opponent, scoring and the menu/playing session state machine. It is
// pure logic with no terminal dependencies; the platform layer drives it at
// a fixed tick rate and renders the screen buffer it fills.
package game

import (
	"github.com/antonvlasov/tui-pong/internal/core"
)

// Direction is a vertical movement request for a paddle.
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = -1
	DirDown Direction = 1
)

// Paddle is one player's bat. X is fixed per side; Y moves within the court.
type Paddle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Speed  float64 // Cells per tick

	courtH float64
}

// NewPaddle creates a paddle centered vertically in the court.
func NewPaddle(x, width, height, speed, courtH float64) *Paddle {
	return &Paddle{
		X:      x,
		Y:      courtH/2 - height/2,
		Width:  width,
		Height: height,
		Speed:  speed,
		courtH: courtH,
	}
}

// Move shifts the paddle by speed*dt in the requested direction.
// The position silently clamps to [0, courtH-height]; there are no error
// conditions.
func (p *Paddle) Move(dir Direction, dt float64) {
	p.Y += float64(dir) * p.Speed * dt
	p.clamp()
}

// SetCourtHeight adjusts the movement bounds after a resize and re-clamps.
func (p *Paddle) SetCourtHeight(h float64) {
	p.courtH = h
	p.clamp()
}

// Bounds returns the paddle's collision box.
func (p *Paddle) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// CenterY returns the vertical center of the paddle.
func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

func (p *Paddle) clamp() {
	p.Y = core.ClampF(p.Y, 0, p.courtH-p.Height)
}

package game

import "testing"

func TestPaddleMove(t *testing.T) {
	p := NewPaddle(2, 1, 5, 1.0, 20)

	startY := p.Y
	p.Move(DirDown, 1)
	if p.Y != startY+1 {
		t.Errorf("Move(DirDown, 1) moved to %f, expected %f", p.Y, startY+1)
	}

	p.Move(DirUp, 1)
	if p.Y != startY {
		t.Errorf("Move(DirUp, 1) moved to %f, expected %f", p.Y, startY)
	}

	p.Move(DirNone, 1)
	if p.Y != startY {
		t.Errorf("Move(DirNone, 1) moved to %f, expected %f", p.Y, startY)
	}
}

func TestPaddleClampHolds(t *testing.T) {
	const courtH = 20.0

	tests := []struct {
		name  string
		dir   Direction
		dt    float64
		moves int
	}{
		{"up once", DirUp, 1, 1},
		{"up far past bound", DirUp, 1, 100},
		{"up with huge dt", DirUp, 1e6, 1},
		{"down far past bound", DirDown, 1, 100},
		{"down with huge dt", DirDown, 1e6, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddle(2, 1, 5, 1.0, courtH)
			for i := 0; i < tc.moves; i++ {
				p.Move(tc.dir, tc.dt)
			}
			if p.Y < 0 || p.Y > courtH-p.Height {
				t.Errorf("paddle y = %f, expected within [0, %f]", p.Y, courtH-p.Height)
			}
		})
	}
}

func TestPaddleCenterY(t *testing.T) {
	p := NewPaddle(2, 1, 6, 1.0, 20)
	p.Y = 4

	if p.CenterY() != 7 {
		t.Errorf("CenterY() = %f, expected 7", p.CenterY())
	}
}

func TestPaddleSetCourtHeightReclamps(t *testing.T) {
	p := NewPaddle(2, 1, 5, 1.0, 20)
	p.Y = 14 // Near the bottom of a height-20 court

	p.SetCourtHeight(12)
	if p.Y != 7 {
		t.Errorf("after shrink, y = %f, expected 7 (courtH-height)", p.Y)
	}
}

package game

import "testing"

func TestScoreBoardIncrement(t *testing.T) {
	var s ScoreBoard

	s.Increment(SideLeft)
	s.Increment(SideLeft)
	s.Increment(SideRight)

	if s.Score(SideLeft) != 2 {
		t.Errorf("left score = %d, expected 2", s.Score(SideLeft))
	}
	if s.Score(SideRight) != 1 {
		t.Errorf("right score = %d, expected 1", s.Score(SideRight))
	}
}

func TestScoreBoardText(t *testing.T) {
	var s ScoreBoard
	for i := 0; i < 12; i++ {
		s.Increment(SideRight)
	}

	if s.Text(SideLeft) != "0" {
		t.Errorf("left text = %q, expected %q", s.Text(SideLeft), "0")
	}
	if s.Text(SideRight) != "12" {
		t.Errorf("right text = %q, expected %q", s.Text(SideRight), "12")
	}
}

func TestScoreBoardReset(t *testing.T) {
	var s ScoreBoard
	s.Increment(SideLeft)
	s.Increment(SideRight)

	s.Reset()

	if s.Score(SideLeft) != 0 || s.Score(SideRight) != 0 {
		t.Errorf("after reset scores = %d:%d, expected 0:0", s.Score(SideLeft), s.Score(SideRight))
	}
}

package game

import "strconv"

// ScoreBoard owns the two point counters for a session.
// Counters only grow between resets.
type ScoreBoard struct {
	left  int
	right int
}

// Increment adds one point to the given side.
func (s *ScoreBoard) Increment(side Side) {
	if side == SideLeft {
		s.left++
	} else {
		s.right++
	}
}

// Score returns the given side's counter.
func (s *ScoreBoard) Score(side Side) int {
	if side == SideLeft {
		return s.left
	}
	return s.right
}

// Text returns the given side's counter as a display-ready string.
func (s *ScoreBoard) Text(side Side) string {
	return strconv.Itoa(s.Score(side))
}

// Reset zeroes both counters. Called only on explicit session restart.
func (s *ScoreBoard) Reset() {
	s.left = 0
	s.right = 0
}

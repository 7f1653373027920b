package game

import (
	"math"

	"github.com/antonvlasov/tui-pong/internal/config"
)

// AIPlayer drives the CPU paddle on the right side of the court.
//
// While the ball approaches it predicts the intercept height, but only
// refreshes that prediction every reactionDelay ticks; the stale target in
// between is the difficulty's reaction lag. While the ball moves away it
// drifts back toward the court center. A dead-zone around the target keeps
// the paddle from jittering when it is close enough.
type AIPlayer struct {
	reactionDelay int
	deadZone      float64
	courtH        float64

	target    float64 // Target paddle-center y
	hasTarget bool
	tick      int
}

// NewAIPlayer creates an AI with the given difficulty profile.
func NewAIPlayer(profile config.Profile, courtH float64) *AIPlayer {
	delay := profile.ReactionDelay
	if delay < 1 {
		delay = 1
	}
	return &AIPlayer{
		reactionDelay: delay,
		deadZone:      profile.DeadZone,
		courtH:        courtH,
	}
}

// SetCourtHeight adjusts the prediction bounds after a resize.
func (ai *AIPlayer) SetCourtHeight(h float64) {
	ai.courtH = h
}

// Decide returns the movement direction for the AI paddle this tick.
// The paddle's own speed cap (set per difficulty) bounds how fast the
// decision is acted on.
func (ai *AIPlayer) Decide(ball *Ball, paddle *Paddle) Direction {
	ai.tick++

	if ball.VX > 0 {
		// Ball approaching: refresh the intercept prediction at the
		// profile's reaction cadence.
		if !ai.hasTarget || ai.tick%ai.reactionDelay == 0 {
			ai.target = ai.predictIntercept(ball, paddle.X)
			ai.hasTarget = true
		}
	} else {
		// Ball moving away: drift back to center and forget the old
		// intercept so the next approach is predicted fresh.
		ai.target = ai.courtH / 2
		ai.hasTarget = false
	}

	diff := ai.target - paddle.CenterY()
	if math.Abs(diff) <= ai.deadZone {
		return DirNone
	}
	if diff < 0 {
		return DirUp
	}
	return DirDown
}

// predictIntercept returns the ball-center y at the moment the ball reaches
// the paddle's front face, folding top/bottom wall reflections in.
func (ai *AIPlayer) predictIntercept(ball *Ball, paddleX float64) float64 {
	ticks := (paddleX - ball.Size - ball.X) / ball.VX
	if ticks < 0 {
		ticks = 0
	}

	// Travel in top-edge coordinates, then reflect into [0, courtH-size].
	y := ball.Y + ball.VY*ticks
	limit := ai.courtH - ball.Size
	if limit <= 0 {
		return ai.courtH / 2
	}

	period := 2 * limit
	y = math.Mod(y, period)
	if y < 0 {
		y += period
	}
	if y > limit {
		y = period - y
	}

	return y + ball.Size/2
}

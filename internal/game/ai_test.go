package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/antonvlasov/tui-pong/internal/config"
)

func TestAIDriftsToCenterWhenBallMovingAway(t *testing.T) {
	profile := config.Default().Profile(config.DifficultyHard)
	ai := NewAIPlayer(profile, 20)

	paddle := NewPaddle(77, 1, 5, 1.0, 20)
	paddle.Y = 0 // Top of the court, center at 2.5

	b := NewBall(testPhysics(), 0.5, 80, 20, rand.New(rand.NewSource(1)))
	b.X, b.Y = 40, 10
	b.VX, b.VY = -0.5, 0.2 // Moving toward the human

	if dir := ai.Decide(b, paddle); dir != DirDown {
		t.Errorf("Decide = %v, expected DirDown toward court center", dir)
	}
}

func TestAIDeadZoneSuppressesMovement(t *testing.T) {
	profile := config.Default().Profile(config.DifficultyEasy)
	ai := NewAIPlayer(profile, 20)

	paddle := NewPaddle(77, 1, 5, 1.0, 20)
	paddle.Y = 10 - paddle.Height/2 // Centered on the court center

	b := NewBall(testPhysics(), 0.5, 80, 20, rand.New(rand.NewSource(1)))
	b.X, b.Y = 40, 10.5 // Intercept lands within easy's wide dead-zone
	b.VX, b.VY = 0.5, 0

	if dir := ai.Decide(b, paddle); dir != DirNone {
		t.Errorf("Decide = %v, expected DirNone inside the dead-zone", dir)
	}
}

func TestAITracksIncomingBall(t *testing.T) {
	profile := config.Default().Profile(config.DifficultyHard)
	ai := NewAIPlayer(profile, 20)

	paddle := NewPaddle(77, 1, 5, 1.0, 20)
	paddle.Y = 2 // High up; ball heading low

	b := NewBall(testPhysics(), 0.5, 80, 20, rand.New(rand.NewSource(1)))
	b.X, b.Y = 60, 14
	b.VX, b.VY = 0.5, 0 // Straight shot at y=14

	if dir := ai.Decide(b, paddle); dir != DirDown {
		t.Errorf("Decide = %v, expected DirDown toward the intercept", dir)
	}
}

func TestAIPredictionFoldsWallReflections(t *testing.T) {
	profile := config.Default().Profile(config.DifficultyHard)
	ai := NewAIPlayer(profile, 20)

	b := NewBall(testPhysics(), 0.5, 80, 20, rand.New(rand.NewSource(1)))
	b.X, b.Y = 67, 18
	b.VX, b.VY = 0.5, 0.5 // Hits the bottom wall before reaching x=77

	got := ai.predictIntercept(b, 77)

	// 18 ticks of travel: raw y=27, reflected in [0,19] -> 11, center 11.5.
	want := 11.5
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("predictIntercept = %f, expected %f", got, want)
	}
}

// trackingError runs a fixed ball trajectory against one difficulty profile
// and returns the paddle's mean distance from the ball height.
func trackingError(t *testing.T, d config.Difficulty) float64 {
	t.Helper()

	cfg := config.Default()
	profile := cfg.Profile(d)
	const courtH = 21.0

	ai := NewAIPlayer(profile, courtH)
	paddle := NewPaddle(77, 1, 5, cfg.Physics.PaddleSpeed*profile.AISpeedMultiplier, courtH)

	b := NewBall(testPhysics(), 0.5, 80, courtH, rand.New(rand.NewSource(7)))

	var total float64
	var samples int

	// Several passes of the same approach path, varied starting heights.
	starts := []float64{3, 16, 9, 1, 12, 18}
	for _, startY := range starts {
		b.X, b.Y = 2, startY
		b.VX, b.VY = 0.5, 0.35

		for b.X < 75 {
			dir := ai.Decide(b, paddle)
			paddle.Move(dir, 1)

			total += math.Abs(paddle.CenterY() - b.CenterY())
			samples++

			// Advance the scripted trajectory with wall reflection.
			b.X += b.VX
			b.Y += b.VY
			if b.Y <= 0 && b.VY < 0 {
				b.Y, b.VY = 0, -b.VY
			}
			if b.Y+b.Size >= courtH && b.VY > 0 {
				b.Y, b.VY = courtH-b.Size, -b.VY
			}
		}
	}

	return total / float64(samples)
}

func TestAIDifficultyMonotonicity(t *testing.T) {
	easy := trackingError(t, config.DifficultyEasy)
	medium := trackingError(t, config.DifficultyMedium)
	hard := trackingError(t, config.DifficultyHard)

	if hard > medium {
		t.Errorf("hard tracking error %f should be <= medium %f", hard, medium)
	}
	if medium > easy {
		t.Errorf("medium tracking error %f should be <= easy %f", medium, easy)
	}
}

package game

import (
	"math"
	"math/rand"

	"github.com/antonvlasov/tui-pong/internal/core"
)

// Side identifies a court half and its owner: the human plays left, the CPU
// plays right.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// EventKind classifies what happened to the ball during one update.
type EventKind int

const (
	EventWallBounce EventKind = iota
	EventPaddleHit
	EventScore
)

// Event is emitted by Ball.Update for the orchestrator to act on
// (sound triggers, score bookkeeping, serve).
type Event struct {
	Kind   EventKind
	Scorer Side // Valid for EventScore only
}

// Ball owns its position, velocity and collision response.
// Velocities are in cells per tick; positions are the top-left corner of the
// ball's bounding box.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Size   float64

	baseSpeed  float64 // Session base |vx|, set per difficulty
	escalation float64 // |vx| multiplier per paddle hit
	maxSpeed   float64 // Cap on |vx|
	maxDeflect float64 // |vy| from an edge hit
	serveAngle float64 // Max |vy/vx| ratio on serve

	courtW, courtH float64
	rng            *rand.Rand
}

// NewBall creates a ball for one session. baseSpeed already includes the
// difficulty multiplier; call Serve before the first update.
func NewBall(phys Physics, baseSpeed, courtW, courtH float64, rng *rand.Rand) *Ball {
	return &Ball{
		Size:       1,
		baseSpeed:  baseSpeed,
		escalation: phys.SpeedEscalation,
		maxSpeed:   baseSpeed * phys.MaxSpeedFactor,
		maxDeflect: phys.MaxDeflection,
		serveAngle: phys.ServeAngle,
		courtW:     courtW,
		courtH:     courtH,
		rng:        rng,
	}
}

// Physics is the subset of configuration the ball needs. Mirrors the YAML
// physics section so the game can pass it through without conversion.
type Physics struct {
	SpeedEscalation float64
	MaxSpeedFactor  float64
	MaxDeflection   float64
	ServeAngle      float64
}

// Serve centers the ball and launches it in a fresh randomized direction at
// the session's base speed. Called at session start and after every score.
func (b *Ball) Serve() {
	b.X = b.courtW/2 - b.Size/2
	b.Y = b.courtH/2 - b.Size/2

	b.VX = b.baseSpeed
	if b.rng.Intn(2) == 0 {
		b.VX = -b.VX
	}
	b.VY = b.baseSpeed * b.serveAngle * (b.rng.Float64()*2 - 1)
}

// Bounds returns the ball's collision box.
func (b *Ball) Bounds() core.RectF {
	return core.NewRectF(b.X, b.Y, b.Size, b.Size)
}

// CenterY returns the vertical center of the ball.
func (b *Ball) CenterY() float64 {
	return b.Y + b.Size/2
}

// SetCourt adjusts the court dimensions after a resize.
func (b *Ball) SetCourt(w, h float64) {
	b.courtW = w
	b.courtH = h
	b.Y = core.ClampF(b.Y, 0, h-b.Size)
}

// Update advances the ball by one step of dt ticks and resolves collisions.
// Wall bounces and paddle hits are handled in place; a score crossing is only
// reported, the caller decides when to re-serve.
func (b *Ball) Update(dt float64, left, right *Paddle) []Event {
	var events []Event

	b.X += b.VX * dt
	b.Y += b.VY * dt

	// Top/bottom walls: reflect vy, clamp back inside.
	if b.Y <= 0 && b.VY < 0 {
		b.Y = 0
		b.VY = -b.VY
		events = append(events, Event{Kind: EventWallBounce})
	}
	if b.Y+b.Size >= b.courtH && b.VY > 0 {
		b.Y = b.courtH - b.Size
		b.VY = -b.VY
		events = append(events, Event{Kind: EventWallBounce})
	}

	// Only the paddle on the side the ball is moving toward is checked,
	// so one tick can never resolve against both.
	if b.VX < 0 {
		if b.Bounds().Intersects(left.Bounds()) {
			b.X = left.X + left.Width
			b.reflectOff(left)
			events = append(events, Event{Kind: EventPaddleHit})
		}
	} else if b.VX > 0 {
		if b.Bounds().Intersects(right.Bounds()) {
			b.X = right.X - b.Size
			b.reflectOff(right)
			events = append(events, Event{Kind: EventPaddleHit})
		}
	}

	// Out past an edge: the opposite side scores.
	if b.X+b.Size < 0 {
		events = append(events, Event{Kind: EventScore, Scorer: SideRight})
	} else if b.X > b.courtW {
		events = append(events, Event{Kind: EventScore, Scorer: SideLeft})
	}

	return events
}

// reflectOff reverses the horizontal direction with a slight speed-up and
// sets the vertical velocity from the hit offset: center hits return
// straight, edge hits deflect at maxDeflect.
func (b *Ball) reflectOff(p *Paddle) {
	speed := math.Min(math.Abs(b.VX)*b.escalation, b.maxSpeed)
	if b.VX < 0 {
		b.VX = speed
	} else {
		b.VX = -speed
	}

	hitPos := (b.CenterY() - p.Y) / p.Height
	hitPos = core.ClampF(hitPos, 0, 1)
	b.VY = (hitPos - 0.5) * 2 * b.maxDeflect
}

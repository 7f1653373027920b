package game

import (
	"math/rand"

	"github.com/antonvlasov/tui-pong/internal/audio"
	"github.com/antonvlasov/tui-pong/internal/config"
	"github.com/antonvlasov/tui-pong/internal/core"
)

// Mode is the game's top-level state: the difficulty menu or an active
// session.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
)

// hudRows is the number of screen rows reserved above the court for scores,
// labels and the difficulty indicator.
const hudRows = 3

// minCourtH keeps the simulation sane on very small terminals.
const minCourtH = 8

// Game orchestrates one ball, two paddles, the AI opponent and the
// scoreboard, and owns the menu/playing state machine. The platform layer
// calls Step once per tick and Render once per frame.
type Game struct {
	cfg    config.Config
	sounds audio.Player
	rt     core.RuntimeConfig
	rng    *rand.Rand

	mode       Mode
	difficulty config.Difficulty

	ball   *Ball
	player *Paddle
	cpu    *Paddle
	ai     *AIPlayer
	score  ScoreBoard
	ticks  int
}

// New creates a game. The sound player must be non-nil; pass audio.Muted{}
// to run silent.
func New(cfg config.Config, sounds audio.Player) *Game {
	return &Game{
		cfg:    cfg,
		sounds: sounds,
		mode:   ModeMenu,
	}
}

// Reset initializes the game into the menu. The RuntimeConfig provides
// screen dimensions and the RNG seed for deterministic simulation.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.mode = ModeMenu
	g.difficulty = ""
	g.ticks = 0
	g.score.Reset()
}

// courtSize returns the playable area below the HUD.
func (g *Game) courtSize() (w, h float64) {
	ch := g.rt.ScreenH - hudRows
	if ch < minCourtH {
		ch = minCourtH
	}
	return float64(g.rt.ScreenW), float64(ch)
}

// StartSession initializes a fresh session at the given difficulty and
// switches to playing. The difficulty profile is fixed for the session.
func (g *Game) StartSession(d config.Difficulty) {
	profile := g.cfg.Profile(d)
	phys := g.cfg.Physics
	w, h := g.courtSize()

	paddleH := float64(core.Clamp(int(h)/g.cfg.Paddles.HeightDivisor, g.cfg.Paddles.MinHeight, g.cfg.Paddles.MaxHeight))
	paddleW := float64(g.cfg.Paddles.Width)
	offset := float64(g.cfg.Paddles.Offset)

	g.player = NewPaddle(offset, paddleW, paddleH, phys.PaddleSpeed, h)
	g.cpu = NewPaddle(w-offset-paddleW, paddleW, paddleH, phys.PaddleSpeed*profile.AISpeedMultiplier, h)

	base := phys.BallSpeed * profile.BallSpeedMultiplier
	g.ball = NewBall(Physics{
		SpeedEscalation: phys.SpeedEscalation,
		MaxSpeedFactor:  phys.MaxSpeedFactor,
		MaxDeflection:   phys.MaxDeflection,
		ServeAngle:      phys.ServeAngle,
	}, base, w, h, g.rng)
	g.ball.Serve()

	g.ai = NewAIPlayer(profile, h)
	g.score.Reset()
	g.ticks = 0
	g.difficulty = d
	g.mode = ModePlaying
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.mode == ModeMenu {
		return g.stepMenu(in)
	}
	return g.stepPlaying(in)
}

func (g *Game) stepMenu(in core.InputFrame) core.StepResult {
	switch {
	case in.Has(core.ActionBack) || in.Has(core.ActionQuit):
		return core.StepResult{State: g.State(), Quit: true}
	case in.Has(core.ActionScores):
		return core.StepResult{State: g.State(), OpenScores: true}
	case in.Has(core.ActionSelectEasy):
		g.StartSession(config.DifficultyEasy)
	case in.Has(core.ActionSelectMedium):
		g.StartSession(config.DifficultyMedium)
	case in.Has(core.ActionSelectHard):
		g.StartSession(config.DifficultyHard)
	}
	// Unrecognized input in the menu is ignored.
	return core.StepResult{State: g.State()}
}

func (g *Game) stepPlaying(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionBack) {
		session := g.endSession()
		return core.StepResult{State: g.State(), Session: session}
	}

	g.ticks++

	// Input -> human paddle, AI decision -> CPU paddle, then ball physics.
	// Fixed order keeps the simulation deterministic.
	if in.Has(core.ActionUp) {
		g.player.Move(DirUp, 1)
	}
	if in.Has(core.ActionDown) {
		g.player.Move(DirDown, 1)
	}

	g.cpu.Move(g.ai.Decide(g.ball, g.cpu), 1)

	for _, ev := range g.ball.Update(1, g.player, g.cpu) {
		switch ev.Kind {
		case EventWallBounce:
			g.sounds.Play(audio.WallBounce)
		case EventPaddleHit:
			g.sounds.Play(audio.PaddleHit)
		case EventScore:
			g.score.Increment(ev.Scorer)
			g.sounds.Play(audio.Score)
			g.ball.Serve()
		}
	}

	return core.StepResult{State: g.State()}
}

// endSession returns to the menu, discarding play state and producing the
// session summary exactly once.
func (g *Game) endSession() *core.SessionResult {
	session := g.sessionResult()
	g.mode = ModeMenu
	g.difficulty = ""
	g.score.Reset()
	g.ticks = 0
	return session
}

// Abandon ends an active session without a menu transition, e.g. when the
// player quits mid-game. Returns nil when no session is active.
func (g *Game) Abandon() *core.SessionResult {
	if g.mode != ModePlaying {
		return nil
	}
	return g.endSession()
}

func (g *Game) sessionResult() *core.SessionResult {
	return &core.SessionResult{
		Difficulty:  string(g.difficulty),
		PlayerScore: g.score.Score(SideLeft),
		CPUScore:    g.score.Score(SideRight),
		Ticks:       g.ticks,
	}
}

// Resize adjusts the court to a new terminal size without discarding the
// session: paddles re-clamp, the CPU paddle follows the right edge.
func (g *Game) Resize(w, h int) {
	g.rt.ScreenW = w
	g.rt.ScreenH = h

	if g.mode != ModePlaying {
		return
	}

	cw, ch := g.courtSize()
	g.player.SetCourtHeight(ch)
	g.cpu.SetCourtHeight(ch)
	g.cpu.X = cw - float64(g.cfg.Paddles.Offset) - g.cpu.Width
	g.ball.SetCourt(cw, ch)
	g.ai.SetCourtHeight(ch)
}

// Mode returns the current top-level state.
func (g *Game) Mode() Mode {
	return g.mode
}

// State returns the externally visible game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		InMenu:      g.mode == ModeMenu,
		PlayerScore: g.score.Score(SideLeft),
		CPUScore:    g.score.Score(SideRight),
	}
	if g.mode == ModePlaying {
		st.Difficulty = string(g.difficulty)
	}
	return st
}

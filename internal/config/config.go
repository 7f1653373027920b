// Package config provides YAML-based configuration loading and difficulty
// profiles for the game.
package config

// Config contains all tunable parameters for a game session.
type Config struct {
	Physics  Physics            `yaml:"physics"`
	Paddles  Paddles            `yaml:"paddles"`
	Profiles map[string]Profile `yaml:"difficulties"`
}

// Physics defines ball and paddle motion parameters.
// Speeds are in cells per simulation tick.
type Physics struct {
	BallSpeed       float64 `yaml:"ball_speed"`       // Base horizontal ball speed
	ServeAngle      float64 `yaml:"serve_angle"`      // Max |vy/vx| ratio on serve
	SpeedEscalation float64 `yaml:"speed_escalation"` // |vx| multiplier per paddle hit
	MaxSpeedFactor  float64 `yaml:"max_speed_factor"` // Cap on |vx| relative to session base speed
	MaxDeflection   float64 `yaml:"max_deflection"`   // |vy| from an edge hit
	PaddleSpeed     float64 `yaml:"paddle_speed"`     // Human paddle speed
}

// Paddles defines paddle geometry. Height adapts to the court: courtH divided
// by HeightDivisor, clamped to [MinHeight, MaxHeight].
type Paddles struct {
	Width         int `yaml:"width"`
	Offset        int `yaml:"offset"` // Distance from the court edge
	HeightDivisor int `yaml:"height_divisor"`
	MinHeight     int `yaml:"min_height"`
	MaxHeight     int `yaml:"max_height"`
}

// Profile is one difficulty level's tuning. Immutable once a session starts.
type Profile struct {
	BallSpeedMultiplier float64 `yaml:"ball_speed_multiplier"`
	AISpeedMultiplier   float64 `yaml:"ai_speed_multiplier"` // Cap relative to paddle_speed
	ReactionDelay       int     `yaml:"reaction_delay"`      // Ticks between AI target updates
	DeadZone            float64 `yaml:"dead_zone"`           // Cells around the target the AI ignores
	Accent              string  `yaml:"accent"`              // green, yellow or red
}

// Profile returns the tuning for a difficulty, falling back to the built-in
// default when the config file omits the level.
func (c Config) Profile(d Difficulty) Profile {
	if p, ok := c.Profiles[string(d)]; ok {
		return p
	}
	return Default().Profiles[string(d)]
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultMatchesEmbeddedYAML(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML failed to parse: %v", err)
	}

	def := Default()
	if cfg.Physics != def.Physics {
		t.Errorf("embedded physics %+v differs from Default() %+v", cfg.Physics, def.Physics)
	}
	if cfg.Paddles != def.Paddles {
		t.Errorf("embedded paddles %+v differs from Default() %+v", cfg.Paddles, def.Paddles)
	}
	for _, d := range Difficulties() {
		if cfg.Profile(d) != def.Profile(d) {
			t.Errorf("embedded %s profile %+v differs from Default() %+v", d, cfg.Profile(d), def.Profile(d))
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pong.yaml")

	content := `
physics:
  ball_speed: 0.75
  paddle_speed: 2.0
difficulties:
  hard:
    reaction_delay: 2
    dead_zone: 0.25
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Physics.BallSpeed != 0.75 {
		t.Errorf("ball_speed = %f, expected 0.75", cfg.Physics.BallSpeed)
	}
	if cfg.Physics.PaddleSpeed != 2.0 {
		t.Errorf("paddle_speed = %f, expected 2.0", cfg.Physics.PaddleSpeed)
	}
	if cfg.Profile(DifficultyHard).ReactionDelay != 2 {
		t.Errorf("hard reaction_delay = %d, expected 2", cfg.Profile(DifficultyHard).ReactionDelay)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load("/nonexistent/pong.yaml")
	if err == nil {
		t.Error("Load with a missing custom path should fail")
	}
}

func TestProfileFallback(t *testing.T) {
	// A config without difficulty sections falls back to built-in profiles.
	var cfg Config

	for _, d := range Difficulties() {
		p := cfg.Profile(d)
		if p.BallSpeedMultiplier == 0 {
			t.Errorf("Profile(%s) should fall back to defaults, got zero multiplier", d)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"medium", DifficultyMedium, false},
		{"hard", DifficultyHard, false},
		{"extreme", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDifficulty(%q) should fail", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDifficulty(%q) failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestDifficultyMonotonicProfiles(t *testing.T) {
	// The built-in profiles must order AI capability easy < medium < hard.
	def := Default()
	easy := def.Profile(DifficultyEasy)
	medium := def.Profile(DifficultyMedium)
	hard := def.Profile(DifficultyHard)

	if !(easy.AISpeedMultiplier < medium.AISpeedMultiplier && medium.AISpeedMultiplier < hard.AISpeedMultiplier) {
		t.Error("AI speed multipliers should increase with difficulty")
	}
	if !(easy.ReactionDelay > medium.ReactionDelay && medium.ReactionDelay > hard.ReactionDelay) {
		t.Error("reaction delays should decrease with difficulty")
	}
	if !(easy.DeadZone > medium.DeadZone && medium.DeadZone > hard.DeadZone) {
		t.Error("dead zones should shrink with difficulty")
	}
}

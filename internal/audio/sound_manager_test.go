package audio

import (
	"testing"
)

// TestManagerGracefulDegradation verifies audio operations don't panic when
// the speaker was never initialized.
func TestManagerGracefulDegradation(t *testing.T) {
	m := NewManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	m.Play(PaddleHit)
	m.Play(WallBounce)
	m.Play(Score)
	m.Cleanup()
}

// TestManagerInitialization verifies the manager can be initialized and
// cleaned up. Speaker init may fail in CI without an audio device; that is
// the degradation path, not a test failure.
func TestManagerInitialization(t *testing.T) {
	m := NewManager()

	err := m.Initialize()
	if err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	m.Play(Score)
	m.Cleanup()
}

// TestManagerDoubleInitialization verifies double initialization is a no-op.
func TestManagerDoubleInitialization(t *testing.T) {
	m := NewManager()

	if err := m.Initialize(); err != nil {
		t.Logf("First initialization failed (expected in test environment): %v", err)
		return
	}

	if err := m.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	m.Cleanup()
}

func TestToneGeneratorBounded(t *testing.T) {
	g := NewToneGenerator(sampleRate, 440)

	buf := make([][2]float64, 4096)
	n, ok := g.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("Stream returned n=%d ok=%v, expected full buffer", n, ok)
	}

	for i, s := range buf {
		if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
			t.Fatalf("sample %d out of range: %v", i, s)
		}
	}
}

func TestMutedPlayer(t *testing.T) {
	var p Player = Muted{}

	// Must be callable with any kind without side effects.
	p.Play(PaddleHit)
	p.Play(WallBounce)
	p.Play(Score)
	p.Play(Kind(99))
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/antonvlasov/tui-pong/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestKeyMapperBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{"w", runeKey('w'), core.ActionUp, false},
		{"up arrow", tea.KeyMsg(tea.Key{Type: tea.KeyUp}), core.ActionUp, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"down arrow", tea.KeyMsg(tea.Key{Type: tea.KeyDown}), core.ActionDown, false},
		{"1", runeKey('1'), core.ActionSelectEasy, false},
		{"2", runeKey('2'), core.ActionSelectMedium, false},
		{"3", runeKey('3'), core.ActionSelectHard, false},
		{"esc", tea.KeyMsg(tea.Key{Type: tea.KeyEsc}), core.ActionBack, false},
		{"tab", tea.KeyMsg(tea.Key{Type: tea.KeyTab}), core.ActionScores, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg(tea.Key{Type: tea.KeyCtrlC}), core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.want {
				t.Errorf("MapKey(%s) action = %v, expected %v", tc.msg, action, tc.want)
			}
			if quit != tc.quit {
				t.Errorf("MapKey(%s) quit = %v, expected %v", tc.msg, quit, tc.quit)
			}
		})
	}
}

func TestKeyMapperFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(runeKey('w'), &frame); quit {
		t.Error("w should not be a quit request")
	}
	if !frame.Has(core.ActionUp) {
		t.Error("frame should carry ActionUp after w")
	}

	frame.Clear()
	if quit := km.MapKeyToFrame(runeKey('x'), &frame); quit {
		t.Error("unbound key should not be a quit request")
	}
	if len(frame.Actions) != 0 {
		t.Error("unbound key should not set any action")
	}
}

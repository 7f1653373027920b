package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions so the simulation never sees
// raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionUp                  // W, Up arrow - move paddle up
	ActionDown                // S, Down arrow - move paddle down
	ActionSelectEasy          // 1 - start a session on easy
	ActionSelectMedium        // 2 - start a session on medium
	ActionSelectHard          // 3 - start a session on hard
	ActionBack                // Esc - back to menu (in game) or quit (in menu)
	ActionScores              // Tab - open the session history view from the menu
	ActionQuit                // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionSelectEasy:
		return "SelectEasy"
	case ActionSelectMedium:
		return "SelectMedium"
	case ActionSelectHard:
		return "SelectHard"
	case ActionBack:
		return "Back"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

package game

// Mode is the top-level state of the game.
type Mode int

const (
	ModeMainMenu Mode = iota
	ModeLevelSelect
	ModePlaying
	ModePaused
	ModeWon
	ModeLost
	ModeExit // Terminal; the process stops once this is reached
)

// String returns a readable mode name for logs.
func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "main-menu"
	case ModeLevelSelect:
		return "level-select"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeWon:
		return "won"
	case ModeLost:
		return "lost"
	case ModeExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Event is an input to the state machine.
type Event int

const (
	EventPlay        Event = iota // Main menu: start
	EventQuit                     // Main menu: quit the game
	EventSelectLevel              // Level select: a valid level was chosen
	EventCancel                   // Level select: back out
	EventPause                    // Playing: pause
	EventResume                   // Paused: back to playing
	EventWin                      // Playing: rules reported Won
	EventLose                     // Playing: timer expired
	EventBackToMenu               // Abandon whatever is on screen
	EventRetry                    // Won/Lost: back to level select
)

// Transition returns the mode that follows from applying event in mode.
// ok is false when the event is not legal in that mode; the caller ignores
// such events rather than treating them as errors.
func Transition(mode Mode, event Event) (next Mode, ok bool) {
	switch mode {
	case ModeMainMenu:
		switch event {
		case EventPlay:
			return ModeLevelSelect, true
		case EventQuit:
			return ModeExit, true
		}

	case ModeLevelSelect:
		switch event {
		case EventSelectLevel:
			return ModePlaying, true
		case EventCancel, EventBackToMenu:
			return ModeMainMenu, true
		}

	case ModePlaying:
		switch event {
		case EventPause:
			return ModePaused, true
		case EventWin:
			return ModeWon, true
		case EventLose:
			return ModeLost, true
		case EventBackToMenu:
			return ModeMainMenu, true
		}

	case ModePaused:
		switch event {
		case EventResume:
			return ModePlaying, true
		case EventBackToMenu:
			return ModeMainMenu, true
		}

	case ModeWon, ModeLost:
		switch event {
		case EventBackToMenu:
			return ModeMainMenu, true
		case EventRetry:
			return ModeLevelSelect, true
		}
	}

	return mode, false
}

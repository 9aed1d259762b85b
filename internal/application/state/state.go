package state

// GameState represents the current state of the game
type GameState int

const (
	StateBoot GameState = iota
	StatePreloading
	StateMenu
	StateHowToPlay
	StatePlaying
	StatePaused
	StateLevelComplete
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateBoot:
		return "Boot"
	case StatePreloading:
		return "Preloading"
	case StateMenu:
		return "Menu"
	case StateHowToPlay:
		return "HowToPlay"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateLevelComplete:
		return "LevelComplete"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// InLevel reports whether a level is loaded in this state.
func (s GameState) InLevel() bool {
	return s == StatePlaying || s == StatePaused || s == StateLevelComplete
}

// Event is an input that moves the machine between states.
type Event int

const (
	EventPreload Event = iota
	EventReady
	EventShowHelp
	EventCloseHelp
	EventStart
	EventPause
	EventResume
	EventRestart
	EventQuitToMenu
	EventComplete
	EventAdvance
	EventReturnToMenu
)

var eventNames = [...]string{
	EventPreload:      "Preload",
	EventReady:        "Ready",
	EventShowHelp:     "ShowHelp",
	EventCloseHelp:    "CloseHelp",
	EventStart:        "Start",
	EventPause:        "Pause",
	EventResume:       "Resume",
	EventRestart:      "Restart",
	EventQuitToMenu:   "QuitToMenu",
	EventComplete:     "Complete",
	EventAdvance:      "Advance",
	EventReturnToMenu: "ReturnToMenu",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "Unknown"
	}
	return eventNames[e]
}

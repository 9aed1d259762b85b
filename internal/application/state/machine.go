package state

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTransition is returned when an event is not allowed in the
	// current state.
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrUnknownLevel is returned when starting a level outside 1..levels.
	ErrUnknownLevel = errors.New("unknown level")
)

// Payload is the data carried alongside the current state.
type Payload struct {
	Level   int // 1-based; 0 outside a level
	Elapsed time.Duration
	Letters []string
}

// Listener observes every successful transition.
type Listener func(from, to GameState, p Payload)

type edge struct {
	from  GameState
	event Event
}

// transitions lists the allowed moves. Advance from the last level is
// redirected to StateGameOver.
var transitions = map[edge]GameState{
	{StateBoot, EventPreload}:             StatePreloading,
	{StatePreloading, EventReady}:         StateMenu,
	{StateMenu, EventShowHelp}:            StateHowToPlay,
	{StateHowToPlay, EventCloseHelp}:      StateMenu,
	{StateMenu, EventStart}:               StatePlaying,
	{StatePlaying, EventPause}:            StatePaused,
	{StatePaused, EventResume}:            StatePlaying,
	{StatePaused, EventRestart}:           StatePlaying,
	{StatePlaying, EventRestart}:          StatePlaying,
	{StatePaused, EventQuitToMenu}:        StateMenu,
	{StatePlaying, EventComplete}:         StateLevelComplete,
	{StateLevelComplete, EventAdvance}:    StatePlaying,
	{StateGameOver, EventReturnToMenu}:    StateMenu,
	{StateLevelComplete, EventQuitToMenu}: StateMenu,
}

// Machine drives the game flow from boot to game over.
type Machine struct {
	current   GameState
	payload   Payload
	levels    int
	listeners []Listener
}

// NewMachine creates a machine in StateBoot for a game of the given number
// of levels.
func NewMachine(levels int) *Machine {
	return &Machine{current: StateBoot, levels: levels}
}

// Current returns the current state.
func (m *Machine) Current() GameState {
	return m.current
}

// Payload returns a copy of the current payload.
func (m *Machine) Payload() Payload {
	p := m.payload
	p.Letters = append([]string(nil), m.payload.Letters...)
	return p
}

// Levels returns the number of levels in the game.
func (m *Machine) Levels() int {
	return m.levels
}

// OnTransition registers a listener called after every transition.
func (m *Machine) OnTransition(l Listener) {
	m.listeners = append(m.listeners, l)
}

// Can reports whether e is allowed in the current state.
func (m *Machine) Can(e Event) bool {
	_, ok := transitions[edge{m.current, e}]
	return ok
}

func (m *Machine) move(e Event, update func(to GameState) (GameState, Payload)) error {
	to, ok := transitions[edge{m.current, e}]
	if !ok {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, e, m.current)
	}

	from := m.current
	p := m.payload
	if update != nil {
		to, p = update(to)
	}
	m.current = to
	m.payload = p

	for _, l := range m.listeners {
		l(from, to, m.Payload())
	}
	return nil
}

func (m *Machine) Preload() error {
	return m.move(EventPreload, nil)
}

func (m *Machine) Ready() error {
	return m.move(EventReady, nil)
}

func (m *Machine) ShowHelp() error {
	return m.move(EventShowHelp, nil)
}

func (m *Machine) CloseHelp() error {
	return m.move(EventCloseHelp, nil)
}

// Start begins the given level from the menu.
func (m *Machine) Start(level int) error {
	if level < 1 || level > m.levels {
		return fmt.Errorf("%w: %d (have %d)", ErrUnknownLevel, level, m.levels)
	}
	return m.move(EventStart, func(to GameState) (GameState, Payload) {
		return to, Payload{Level: level}
	})
}

func (m *Machine) Pause() error {
	return m.move(EventPause, nil)
}

func (m *Machine) Resume() error {
	return m.move(EventResume, nil)
}

// Restart replays the current level with a fresh payload.
func (m *Machine) Restart() error {
	return m.move(EventRestart, func(to GameState) (GameState, Payload) {
		return to, Payload{Level: m.payload.Level}
	})
}

// QuitToMenu abandons the current level.
func (m *Machine) QuitToMenu() error {
	return m.move(EventQuitToMenu, func(to GameState) (GameState, Payload) {
		return to, Payload{}
	})
}

// CompleteLevel records the finished run of the current level.
func (m *Machine) CompleteLevel(elapsed time.Duration, letters []string) error {
	return m.move(EventComplete, func(to GameState) (GameState, Payload) {
		return to, Payload{
			Level:   m.payload.Level,
			Elapsed: elapsed,
			Letters: append([]string(nil), letters...),
		}
	})
}

// Advance moves to the next level, or to StateGameOver after the last one.
// The GameOver payload keeps the final level's results.
func (m *Machine) Advance() error {
	return m.move(EventAdvance, func(to GameState) (GameState, Payload) {
		if m.payload.Level >= m.levels {
			return StateGameOver, m.payload
		}
		return to, Payload{Level: m.payload.Level + 1}
	})
}

// ReturnToMenu leaves the game over screen.
func (m *Machine) ReturnToMenu() error {
	return m.move(EventReturnToMenu, func(to GameState) (GameState, Payload) {
		return to, Payload{}
	})
}

// Fire dispatches e to the matching transition. EventStart begins level 1
// and EventComplete keeps the payload's elapsed time and letters.
func (m *Machine) Fire(e Event) error {
	switch e {
	case EventPreload:
		return m.Preload()
	case EventReady:
		return m.Ready()
	case EventShowHelp:
		return m.ShowHelp()
	case EventCloseHelp:
		return m.CloseHelp()
	case EventStart:
		return m.Start(1)
	case EventPause:
		return m.Pause()
	case EventResume:
		return m.Resume()
	case EventRestart:
		return m.Restart()
	case EventQuitToMenu:
		return m.QuitToMenu()
	case EventComplete:
		return m.CompleteLevel(m.payload.Elapsed, m.payload.Letters)
	case EventAdvance:
		return m.Advance()
	case EventReturnToMenu:
		return m.ReturnToMenu()
	default:
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, e, m.current)
	}
}

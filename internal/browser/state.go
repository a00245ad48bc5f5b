// Package browser is the roster browser's state machine. Apply is the only
// way state changes and Project is a read-only view of it, so neither needs
// a terminal to be exercised.
package browser

import "github.com/katyella/lazyroster/internal/roster"

const noSelection = -1

// State is the selection over an immutable player sequence
type State struct {
	players  []roster.Player
	index    int
	active   *roster.Player
	quitting bool
}

// NewState starts with no selection and no active player
func NewState(players []roster.Player) State {
	return State{players: players, index: noSelection}
}

// Len returns the number of players
func (s State) Len() int {
	return len(s.players)
}

// Players returns the player sequence. Callers must not modify it.
func (s State) Players() []roster.Player {
	return s.players
}

// Index returns the selected index and whether one is set
func (s State) Index() (int, bool) {
	if s.index == noSelection {
		return 0, false
	}
	return s.index, true
}

// Selected returns the player under the cursor
func (s State) Selected() (roster.Player, bool) {
	i, ok := s.Index()
	if !ok {
		return roster.Player{}, false
	}
	return s.players[i], true
}

// Active returns the snapshot materialized by the last Select
func (s State) Active() (roster.Player, bool) {
	if s.active == nil {
		return roster.Player{}, false
	}
	return *s.active, true
}

// Quitting reports whether a Quit event has been applied
func (s State) Quitting() bool {
	return s.quitting
}

// EventType enumerates the inputs the browser reacts to
type EventType int

const (
	EventNone EventType = iota
	EventMoveUp
	EventMoveDown
	EventTop
	EventBottom
	EventJump
	EventSelect
	EventDeselect
	EventQuit
)

func (t EventType) String() string {
	switch t {
	case EventMoveUp:
		return "move_up"
	case EventMoveDown:
		return "move_down"
	case EventTop:
		return "top"
	case EventBottom:
		return "bottom"
	case EventJump:
		return "jump"
	case EventSelect:
		return "select"
	case EventDeselect:
		return "deselect"
	case EventQuit:
		return "quit"
	default:
		return "none"
	}
}

// Event is one input. Index is only read by EventJump.
type Event struct {
	Type  EventType
	Index int
}

// Convenience constructors
var (
	MoveUp   = Event{Type: EventMoveUp}
	MoveDown = Event{Type: EventMoveDown}
	Top      = Event{Type: EventTop}
	Bottom   = Event{Type: EventBottom}
	Select   = Event{Type: EventSelect}
	Deselect = Event{Type: EventDeselect}
	Quit     = Event{Type: EventQuit}
)

// JumpTo moves the cursor straight to index i
func JumpTo(i int) Event {
	return Event{Type: EventJump, Index: i}
}

// Apply returns the state that results from e. The index, when set, always
// stays within [0, Len()-1]; with no players it stays unset.
func Apply(s State, e Event) State {
	n := len(s.players)

	switch e.Type {
	case EventMoveUp:
		switch {
		case n == 0:
		case s.index == noSelection:
			s.index = 0
		case s.index > 0:
			s.index--
		}

	case EventMoveDown:
		switch {
		case n == 0:
		case s.index == noSelection:
			s.index = 0
		case s.index < n-1:
			s.index++
		}

	case EventTop:
		if n > 0 {
			s.index = 0
		}

	case EventBottom:
		if n > 0 {
			s.index = n - 1
		}

	case EventJump:
		if e.Index >= 0 && e.Index < n {
			s.index = e.Index
		}

	case EventSelect:
		if s.index != noSelection {
			snapshot := s.players[s.index]
			s.active = &snapshot
		}

	case EventDeselect:
		s.active = nil

	case EventQuit:
		s.quitting = true
	}

	return s
}

// ApplyAll folds events over s in order
func ApplyAll(s State, events ...Event) State {
	for _, e := range events {
		s = Apply(s, e)
	}
	return s
}

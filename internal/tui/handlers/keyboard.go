package handlers

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/katyella/lazyroster/internal/browser"
)

// Action is a key press the app handles itself rather than passing to
// the browser state machine
type Action int

const (
	ActionNone Action = iota
	ActionSearch
	ActionCopy
	ActionHelp
	ActionScroll
)

// KeyMap holds every binding the browser responds to
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Select   key.Binding
	Back     key.Binding
	Search   key.Binding
	Copy     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll details up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll details down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Search, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Select, k.Back, k.PageUp, k.PageDown},
		{k.Search, k.Copy, k.Help, k.Quit},
	}
}

// Resolve maps a key press to a browser event or an app action. Keys that
// are bound to neither return (browser.Event{}, ActionNone).
func (k KeyMap) Resolve(msg tea.KeyMsg) (browser.Event, Action) {
	switch {
	case key.Matches(msg, k.Quit):
		return browser.Quit, ActionNone
	case key.Matches(msg, k.Up):
		return browser.MoveUp, ActionNone
	case key.Matches(msg, k.Down):
		return browser.MoveDown, ActionNone
	case key.Matches(msg, k.Top):
		return browser.Top, ActionNone
	case key.Matches(msg, k.Bottom):
		return browser.Bottom, ActionNone
	case key.Matches(msg, k.Select):
		return browser.Select, ActionNone
	case key.Matches(msg, k.Back):
		return browser.Deselect, ActionNone
	case key.Matches(msg, k.Search):
		return browser.Event{}, ActionSearch
	case key.Matches(msg, k.Copy):
		return browser.Event{}, ActionCopy
	case key.Matches(msg, k.Help):
		return browser.Event{}, ActionHelp
	case key.Matches(msg, k.PageUp, k.PageDown):
		return browser.Event{}, ActionScroll
	}
	return browser.Event{}, ActionNone
}

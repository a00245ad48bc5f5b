package components

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Component represents a UI component that can be rendered and handle events
type Component interface {
	// Init initializes the component and returns any initial commands
	Init() tea.Cmd

	// Update handles messages and updates the component state
	Update(msg tea.Msg) (tea.Cmd, error)

	// View renders the component to a string
	View() string

	// SetSize updates the component's dimensions
	SetSize(width, height int)

	// GetSize returns the component's current dimensions
	GetSize() (width, height int)
}

// BaseComponent provides common functionality for all components
type BaseComponent struct {
	focused bool
	width   int
	height  int
}

// Focus sets the component as focused
func (b *BaseComponent) Focus() {
	b.focused = true
}

// Blur removes focus from the component
func (b *BaseComponent) Blur() {
	b.focused = false
}

// IsFocused returns whether the component is currently focused
func (b *BaseComponent) IsFocused() bool {
	return b.focused
}

// SetSize updates the component's dimensions
func (b *BaseComponent) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// GetSize returns the component's current dimensions
func (b *BaseComponent) GetSize() (width, height int) {
	return b.width, b.height
}

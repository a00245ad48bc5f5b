package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/katyella/lazyroster/internal/constants"
	"github.com/sahilm/fuzzy"
)

// SearchComponent is a one-line fuzzy finder over a fixed set of names.
// It never filters the list; it only reports which entry matches best.
type SearchComponent struct {
	BaseComponent

	input textinput.Model
	names []string
}

// NewSearchComponent creates a search box over names
func NewSearchComponent(names []string) *SearchComponent {
	ti := textinput.New()
	ti.Prompt = constants.SearchPrompt
	ti.Placeholder = constants.SearchPlaceholder
	ti.CharLimit = constants.SearchInputCharLimit
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(constants.ColorCyan)).Bold(true)

	return &SearchComponent{
		input: ti,
		names: names,
	}
}

// Init initializes the search component
func (s *SearchComponent) Init() tea.Cmd {
	return nil
}

// Open clears the query and starts accepting input
func (s *SearchComponent) Open() tea.Cmd {
	s.input.Reset()
	s.Focus()
	return s.input.Focus()
}

// Close stops accepting input
func (s *SearchComponent) Close() {
	s.input.Blur()
	s.Blur()
}

// Update forwards key input to the text box while open
func (s *SearchComponent) Update(msg tea.Msg) (tea.Cmd, error) {
	if !s.IsFocused() {
		return nil, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd, nil
}

// Query returns the current text
func (s *SearchComponent) Query() string {
	return s.input.Value()
}

// BestMatch returns the index of the highest scoring name for the query
func (s *SearchComponent) BestMatch() (int, bool) {
	return BestMatch(s.input.Value(), s.names)
}

// View renders the prompt and query
func (s *SearchComponent) View() string {
	return s.input.View()
}

// BestMatch fuzzy-matches pattern against names. An empty pattern or no
// match reports false.
func BestMatch(pattern string, names []string) (int, bool) {
	if pattern == "" {
		return -1, false
	}
	matches := fuzzy.Find(pattern, names)
	if len(matches) == 0 {
		return -1, false
	}
	return matches[0].Index, true
}

package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/katyella/lazyroster/internal/constants"
)

// HeaderComponent renders the application header
type HeaderComponent struct {
	BaseComponent

	title   string
	version string
	team    string
	count   int

	titleStyle     lipgloss.Style
	infoStyle      lipgloss.Style
	separatorStyle lipgloss.Style
}

// NewHeaderComponent creates a new header component
func NewHeaderComponent(title, version string) *HeaderComponent {
	return &HeaderComponent{
		title:   title,
		version: version,

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(constants.ColorBlue)),

		infoStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(constants.ColorGreen)),

		separatorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(constants.ColorDarkGray)),
	}
}

// Init initializes the header component
func (h *HeaderComponent) Init() tea.Cmd {
	return nil
}

// Update is a no-op; the roster does not change after startup
func (h *HeaderComponent) Update(msg tea.Msg) (tea.Cmd, error) {
	return nil, nil
}

// SetRoster sets the team code and player count shown on the right
func (h *HeaderComponent) SetRoster(team string, count int) {
	h.team = team
	h.count = count
}

// View renders the header component
func (h *HeaderComponent) View() string {
	if h.width == 0 {
		return ""
	}

	titleText := h.title
	if h.version != "" {
		titleText = fmt.Sprintf("%s %s", h.title, h.version)
	}
	title := h.titleStyle.Render(titleText)
	info := h.infoStyle.Render(h.rosterInfo())

	spacing := h.width - lipgloss.Width(title) - lipgloss.Width(info) - 2

	var topLine string
	if spacing > 0 {
		topLine = " " + title + strings.Repeat(" ", spacing) + info + " "
	} else {
		// Not enough space, show only title
		topLine = " " + title
	}

	separator := h.separatorStyle.Render(strings.Repeat("─", h.width))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		topLine,
		separator,
	)
}

func (h *HeaderComponent) rosterInfo() string {
	noun := "players"
	if h.count == 1 {
		noun = "player"
	}
	if h.team == "" {
		return fmt.Sprintf("● %d %s", h.count, noun)
	}
	return fmt.Sprintf("● %s | %d %s", h.team, h.count, noun)
}

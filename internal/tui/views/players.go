package views

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/katyella/lazyroster/internal/browser"
	"github.com/katyella/lazyroster/internal/constants"
	"github.com/katyella/lazyroster/internal/roster"
	"github.com/katyella/lazyroster/internal/tui/components"
	"github.com/mattn/go-runewidth"
)

// PlayersView handles the player list pane
type PlayersView struct {
	panel *components.PanelComponent
	rows  []browser.Row
	style PlayerStyle
}

// PlayerStyle contains styles for player rows
type PlayerStyle struct {
	activeStyle   lipgloss.Style
	minorStyle    lipgloss.Style
	inactiveStyle lipgloss.Style
	jerseyStyle   lipgloss.Style
}

// NewPlayersView creates a new player list view
func NewPlayersView() *PlayersView {
	view := &PlayersView{
		panel: components.NewPanelComponent(constants.ListPanelTitle),
		style: PlayerStyle{
			activeStyle: lipgloss.NewStyle().
				Foreground(lipgloss.Color(constants.ColorGreen)),
			minorStyle: lipgloss.NewStyle().
				Foreground(lipgloss.Color(constants.ColorYellow)),
			inactiveStyle: lipgloss.NewStyle().
				Foreground(lipgloss.Color(constants.ColorGray)),
			jerseyStyle: lipgloss.NewStyle().
				Foreground(lipgloss.Color(constants.ColorCyan)),
		},
	}

	view.panel.SetPlaceholder(constants.EmptyRosterMessage)
	view.panel.Focus()
	return view
}

// Init initializes the players view
func (v *PlayersView) Init() tea.Cmd {
	return v.panel.Init()
}

// Update handles messages for the players view
func (v *PlayersView) Update(msg tea.Msg) (tea.Cmd, error) {
	return v.panel.Update(msg)
}

// View renders the players view
func (v *PlayersView) View() string {
	return v.panel.View()
}

// SetRows replaces the list with the projected rows
func (v *PlayersView) SetRows(rows []browser.Row) {
	v.rows = rows

	lines := make([]string, len(rows))
	plain := make([]string, len(rows))
	highlight := -1
	for i, row := range rows {
		lines[i] = v.renderRow(row)
		plain[i] = FormatRow(row)
		if row.Highlighted {
			highlight = i
		}
	}

	v.panel.SetLines(lines, plain)
	v.panel.SetHighlight(highlight)
}

// Rows returns the rows currently shown
func (v *PlayersView) Rows() []browser.Row {
	return v.rows
}

// Highlight returns the highlighted row, or -1
func (v *PlayersView) Highlight() int {
	return v.panel.Highlight()
}

// ScrollOffset returns the first visible row
func (v *PlayersView) ScrollOffset() int {
	return v.panel.ScrollOffset()
}

func (v *PlayersView) renderRow(row browser.Row) string {
	jersey, position, name, status := rowColumns(row)
	return fmt.Sprintf("%s %s %s %s",
		v.style.jerseyStyle.Render(jersey),
		position,
		name,
		v.statusStyle(row.Status).Render(status),
	)
}

func (v *PlayersView) statusStyle(s roster.Status) lipgloss.Style {
	switch s {
	case roster.StatusActive:
		return v.style.activeStyle
	case roster.StatusMinor:
		return v.style.minorStyle
	default:
		return v.style.inactiveStyle
	}
}

// FormatRow renders a row without styling
func FormatRow(row browser.Row) string {
	jersey, position, name, status := rowColumns(row)
	return fmt.Sprintf("%s %s %s %s", jersey, position, name, status)
}

func rowColumns(row browser.Row) (jersey, position, name, status string) {
	name = runewidth.Truncate(row.Name, constants.NameTruncateLength, "…")
	return fmt.Sprintf("%-4s", row.Jersey),
		fmt.Sprintf("%-2s", row.Position),
		runewidth.FillRight(name, constants.NameColumnWidth),
		row.Status.String()
}

// Component interface implementation
func (v *PlayersView) SetSize(w, h int)    { v.panel.SetSize(w, h) }
func (v *PlayersView) GetSize() (int, int) { return v.panel.GetSize() }

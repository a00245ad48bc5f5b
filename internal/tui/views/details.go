package views

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/katyella/lazyroster/internal/browser"
	"github.com/katyella/lazyroster/internal/constants"
)

// DetailsView handles the detail pane for the active player
type DetailsView struct {
	viewport viewport.Model
	detail   *browser.Detail
	width    int
	height   int
	style    DetailsStyle
}

// DetailsStyle contains styles for details rendering
type DetailsStyle struct {
	boxStyle     lipgloss.Style
	titleStyle   lipgloss.Style
	sectionStyle lipgloss.Style
	keyStyle     lipgloss.Style
	valueStyle   lipgloss.Style
}

// NewDetailsView creates a new details view
func NewDetailsView() *DetailsView {
	return &DetailsView{
		viewport: viewport.New(0, 0),
		style: DetailsStyle{
			boxStyle: lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(constants.ColorBlue)).
				Padding(0, 1),
			titleStyle: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(constants.ColorBlue)),
			sectionStyle: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(constants.ColorCyan)),
			keyStyle: lipgloss.NewStyle().
				Foreground(lipgloss.Color(constants.ColorBlue)),
			valueStyle: lipgloss.NewStyle().
				Foreground(lipgloss.Color(constants.ColorWhite)),
		},
	}
}

// Init initializes the details view
func (v *DetailsView) Init() tea.Cmd {
	return nil
}

// Update forwards scroll keys to the viewport
func (v *DetailsView) Update(msg tea.Msg) (tea.Cmd, error) {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd, nil
}

// ShowDetail displays d; nil clears the pane
func (v *DetailsView) ShowDetail(d *browser.Detail) {
	changed := !sameDetail(v.detail, d)
	v.detail = d
	v.viewport.SetContent(v.renderContent())
	if changed {
		v.viewport.GotoTop()
	}
}

// Detail returns the detail currently shown
func (v *DetailsView) Detail() *browser.Detail {
	return v.detail
}

// View renders the details view
func (v *DetailsView) View() string {
	if v.width == 0 || v.height == 0 {
		return ""
	}

	clip := lipgloss.NewStyle().MaxWidth(max(v.width-constants.PanelChromeWidth, 1))
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		clip.Render(v.style.titleStyle.Render(constants.DetailsPanelTitle)),
		v.viewport.View(),
	)

	return v.style.boxStyle.
		Width(max(v.width-2, 0)).
		Height(max(v.height-constants.PanelChromeHeight, 0)).
		Render(body)
}

// SetSize sizes the box and the viewport inside it
func (v *DetailsView) SetSize(w, h int) {
	v.width = w
	v.height = h
	v.viewport.Width = max(w-constants.PanelChromeWidth, 0)
	v.viewport.Height = max(h-constants.PanelChromeHeight-1, 0)
	v.viewport.SetContent(v.renderContent())
}

// GetSize returns the current dimensions
func (v *DetailsView) GetSize() (int, int) { return v.width, v.height }

// ScrollOffset returns the viewport's first visible line
func (v *DetailsView) ScrollOffset() int {
	return v.viewport.YOffset
}

func (v *DetailsView) renderContent() string {
	if v.detail == nil {
		return ""
	}

	labelWidth := 0
	for _, f := range v.detail.Fields {
		labelWidth = max(labelWidth, len(f.Label))
	}

	lines := []string{v.style.sectionStyle.Render(v.detail.Title), ""}
	for _, f := range v.detail.Fields {
		key := v.style.keyStyle.Render(fmt.Sprintf("%-*s", labelWidth+1, f.Label+":"))
		lines = append(lines, fmt.Sprintf("%s %s", key, v.style.valueStyle.Render(f.Value)))
	}

	clip := lipgloss.NewStyle().MaxWidth(max(v.viewport.Width, 1))
	for i, line := range lines {
		lines[i] = clip.Render(line)
	}
	return strings.Join(lines, "\n")
}

func sameDetail(a, b *browser.Detail) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Title == b.Title && slices.Equal(a.Fields, b.Fields)
}

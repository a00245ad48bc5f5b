package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/katyella/lazyroster/internal/constants"
)

// PanelComponent is a bordered, titled box showing a window of lines.
// It does not own the selection; callers tell it which line to highlight
// and it scrolls to keep that line visible.
type PanelComponent struct {
	BaseComponent

	title       string
	borderStyle lipgloss.Style
	titleStyle  lipgloss.Style
	selectStyle lipgloss.Style

	placeholder  string
	lines        []string
	plainLines   []string
	scrollOffset int
	highlight    int
}

// NewPanelComponent creates a new panel component
func NewPanelComponent(title string) *PanelComponent {
	return &PanelComponent{
		title:     title,
		highlight: -1,

		borderStyle: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(constants.ColorGray)).
			Padding(0, 1),

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(constants.ColorBlue)),

		selectStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(constants.ColorWhite)).
			Background(lipgloss.Color(constants.ColorDarkGray)),
	}
}

// Init initializes the panel component
func (p *PanelComponent) Init() tea.Cmd {
	return nil
}

// Update is a no-op: panels are driven by SetLines and SetHighlight
func (p *PanelComponent) Update(msg tea.Msg) (tea.Cmd, error) {
	return nil, nil
}

// SetPlaceholder sets the text shown when there are no lines
func (p *PanelComponent) SetPlaceholder(text string) {
	p.placeholder = text
}

// SetLines replaces the content. plain is the unstyled text of each line,
// used when the line is highlighted; it may be nil.
func (p *PanelComponent) SetLines(lines, plain []string) {
	p.lines = lines
	p.plainLines = plain
	if p.highlight >= len(lines) {
		p.highlight = -1
	}
	p.ensureHighlightVisible()
}

// SetHighlight marks line i as highlighted; a negative i clears it
func (p *PanelComponent) SetHighlight(i int) {
	if i >= len(p.lines) {
		i = -1
	}
	p.highlight = i
	p.ensureHighlightVisible()
}

// Highlight returns the highlighted line, or -1
func (p *PanelComponent) Highlight() int {
	return p.highlight
}

// SetSize updates dimensions and keeps the highlight in view
func (p *PanelComponent) SetSize(width, height int) {
	p.BaseComponent.SetSize(width, height)
	p.ensureHighlightVisible()
}

// View renders the panel component
func (p *PanelComponent) View() string {
	if p.width == 0 || p.height == 0 {
		return ""
	}

	style := p.borderStyle.
		Width(max(p.width-2, 0)).
		Height(max(p.height-constants.PanelChromeHeight, 0))
	if p.IsFocused() {
		style = style.BorderForeground(lipgloss.Color(constants.ColorBlue))
	}

	return style.Render(p.prepareContent())
}

// visibleHeight is the number of content lines below the title
func (p *PanelComponent) visibleHeight() int {
	return p.height - constants.PanelChromeHeight - 1
}

func (p *PanelComponent) innerWidth() int {
	return p.width - constants.PanelChromeWidth
}

func (p *PanelComponent) prepareContent() string {
	clip := lipgloss.NewStyle().MaxWidth(max(p.innerWidth(), 1))
	out := []string{clip.Render(p.titleStyle.Render(p.title))}

	visible := p.visibleHeight()
	if visible <= 0 {
		return strings.Join(out, "\n")
	}

	if len(p.lines) == 0 {
		if p.placeholder != "" {
			out = append(out, clip.Render(p.placeholder))
		}
		return strings.Join(out, "\n")
	}

	start := p.scrollOffset
	end := min(start+visible, len(p.lines))

	for i := start; i < end; i++ {
		line := p.lines[i]
		if i == p.highlight {
			text := line
			if i < len(p.plainLines) {
				text = p.plainLines[i]
			}
			line = p.selectStyle.Width(max(p.innerWidth(), 0)).Render(clip.Render(text))
		}
		out = append(out, clip.Render(line))
	}

	return strings.Join(out, "\n")
}

func (p *PanelComponent) adjustScroll() {
	maxScroll := max(len(p.lines)-p.visibleHeight(), 0)
	p.scrollOffset = min(max(p.scrollOffset, 0), maxScroll)
}

// ensureHighlightVisible adjusts scroll to keep the highlighted line in view
func (p *PanelComponent) ensureHighlightVisible() {
	visible := p.visibleHeight()
	if p.highlight >= 0 && visible > 0 {
		if p.highlight < p.scrollOffset {
			p.scrollOffset = p.highlight
		}
		if p.highlight >= p.scrollOffset+visible {
			p.scrollOffset = p.highlight - visible + 1
		}
	}
	p.adjustScroll()
}

// ScrollOffset returns the first visible line
func (p *PanelComponent) ScrollOffset() int {
	return p.scrollOffset
}

package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/katyella/lazyroster/internal/constants"
)

// LayoutManager manages the overall screen layout
type LayoutManager struct {
	width  int
	height int

	// Layout configuration
	showDetails     bool
	headerHeight    int
	statusBarHeight int

	// Calculated dimensions
	contentHeight int
	listWidth     int
	detailsWidth  int
}

// NewLayoutManager creates a new layout manager with the detail pane hidden
func NewLayoutManager() *LayoutManager {
	return &LayoutManager{
		headerHeight:    constants.HeaderHeight,
		statusBarHeight: constants.StatusBarHeight,
	}
}

// SetSize updates the terminal dimensions
func (l *LayoutManager) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.recalculate()
}

// SetDetailsVisible shows or hides the detail pane
func (l *LayoutManager) SetDetailsVisible(show bool) {
	l.showDetails = show
	l.recalculate()
}

// SetStatusBarHeight changes the reserved status bar height (full help is taller)
func (l *LayoutManager) SetStatusBarHeight(height int) {
	l.statusBarHeight = height
	l.recalculate()
}

// recalculate updates all calculated dimensions
func (l *LayoutManager) recalculate() {
	l.contentHeight = max(l.height-l.headerHeight-l.statusBarHeight, 0)

	if !l.showDetails {
		l.listWidth = l.width
		l.detailsWidth = 0
		return
	}

	l.listWidth = int(float64(l.width) * constants.ListPanelWidthRatio)
	l.detailsWidth = l.width - l.listWidth
	if l.detailsWidth < constants.MinDetailsWidth && l.width > constants.MinDetailsWidth {
		l.detailsWidth = constants.MinDetailsWidth
		l.listWidth = l.width - l.detailsWidth
	}
}

// GetDimensions returns the calculated dimensions for all panels
func (l *LayoutManager) GetDimensions() LayoutDimensions {
	return LayoutDimensions{
		Width:           l.width,
		Height:          l.height,
		HeaderHeight:    l.headerHeight,
		StatusBarHeight: l.statusBarHeight,
		ContentHeight:   l.contentHeight,
		ListWidth:       l.listWidth,
		DetailsWidth:    l.detailsWidth,
	}
}

// LayoutDimensions contains all calculated layout dimensions
type LayoutDimensions struct {
	// Terminal dimensions
	Width  int
	Height int

	// Fixed heights
	HeaderHeight    int
	StatusBarHeight int

	// Content area
	ContentHeight int

	// Panel widths
	ListWidth    int
	DetailsWidth int
}

// RenderLayout combines components into the final layout. The detail pane
// is only drawn when it has width.
func RenderLayout(dimensions LayoutDimensions, header, list, details, statusBar string) string {
	var content string

	if dimensions.DetailsWidth > 0 {
		listStyle := lipgloss.NewStyle().
			Width(dimensions.ListWidth).
			Height(dimensions.ContentHeight)

		detailsStyle := lipgloss.NewStyle().
			Width(dimensions.DetailsWidth).
			Height(dimensions.ContentHeight)

		content = lipgloss.JoinHorizontal(
			lipgloss.Top,
			listStyle.Render(list),
			detailsStyle.Render(details),
		)
	} else {
		listStyle := lipgloss.NewStyle().
			Width(dimensions.Width).
			Height(dimensions.ContentHeight)

		content = listStyle.Render(list)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		statusBar,
	)
}

package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/katyella/lazyroster/internal/constants"
)

// StatusBarComponent renders the bottom status bar: key help, or a
// transient notification, or an error, or a prompt that replaces them all.
type StatusBarComponent struct {
	BaseComponent

	help   help.Model
	keys   help.KeyMap
	prompt string

	notification   string
	notificationID int
	errorMessage   string

	notificationStyle lipgloss.Style
	errorStyle        lipgloss.Style
	separatorStyle    lipgloss.Style
}

// NewStatusBarComponent creates a new status bar showing help for keys
func NewStatusBarComponent(keys help.KeyMap) *StatusBarComponent {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(constants.ColorCyan)).Bold(true)
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(constants.ColorGray))
	h.Styles.FullDesc = h.Styles.ShortDesc
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(constants.ColorDarkGray))
	h.Styles.FullSeparator = h.Styles.ShortSeparator

	return &StatusBarComponent{
		help: h,
		keys: keys,

		notificationStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(constants.ColorGreen)),

		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(constants.ColorRed)).
			Bold(true),

		separatorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(constants.ColorDarkGray)),
	}
}

// Init initializes the status bar component
func (s *StatusBarComponent) Init() tea.Cmd {
	return nil
}

// Update handles messages for the status bar component
func (s *StatusBarComponent) Update(msg tea.Msg) (tea.Cmd, error) {
	switch msg := msg.(type) {
	case NotificationMsg:
		return s.SetNotification(msg.Message, msg.Duration), nil

	case ErrorMsg:
		s.SetError(msg.Message)

	case ClearNotificationMsg:
		if msg.ID == s.notificationID {
			s.notification = ""
		}
	}

	return nil, nil
}

// SetSize updates dimensions and the help width
func (s *StatusBarComponent) SetSize(width, height int) {
	s.BaseComponent.SetSize(width, height)
	s.help.Width = width
}

// ToggleFullHelp switches between one-line and full help
func (s *StatusBarComponent) ToggleFullHelp() {
	s.help.ShowAll = !s.help.ShowAll
}

// ShowingFullHelp reports whether the full help is shown
func (s *StatusBarComponent) ShowingFullHelp() bool {
	return s.help.ShowAll
}

// SetPrompt replaces the status line with an input prompt; "" restores it
func (s *StatusBarComponent) SetPrompt(view string) {
	s.prompt = view
}

// SetNotification displays a message until duration elapses
func (s *StatusBarComponent) SetNotification(message string, duration time.Duration) tea.Cmd {
	s.notificationID++
	s.notification = message
	s.errorMessage = ""

	id := s.notificationID
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return ClearNotificationMsg{ID: id}
	})
}

// SetError displays an error message until the next notification
func (s *StatusBarComponent) SetError(message string) {
	s.errorMessage = message
	s.notification = ""
}

// Notification returns the current notification text
func (s *StatusBarComponent) Notification() string {
	return s.notification
}

// ErrorMessage returns the current error text
func (s *StatusBarComponent) ErrorMessage() string {
	return s.errorMessage
}

// Height returns the number of lines View will produce
func (s *StatusBarComponent) Height() int {
	return lipgloss.Height(s.View())
}

// View renders the status bar component
func (s *StatusBarComponent) View() string {
	separator := s.separatorStyle.Render(strings.Repeat("─", max(s.width, 0)))

	var statusLine string

	// Priority: prompt > error > notification > help
	switch {
	case s.prompt != "":
		statusLine = " " + s.prompt
	case s.errorMessage != "":
		statusLine = s.errorStyle.Render(fmt.Sprintf(" ✗ %s", s.errorMessage))
	case s.notification != "":
		statusLine = s.notificationStyle.Render(fmt.Sprintf(" ✓ %s", s.notification))
	default:
		statusLine = " " + s.help.View(s.keys)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		separator,
		statusLine,
	)
}

// Messages for status bar updates
type (
	// NotificationMsg displays a temporary notification
	NotificationMsg struct {
		Message  string
		Duration time.Duration
	}

	// ErrorMsg displays an error message
	ErrorMsg struct {
		Message string
	}

	// ClearNotificationMsg clears the notification it was scheduled for
	ClearNotificationMsg struct {
		ID int
	}
)

// Package tui is the interactive roster browser: a Bubble Tea model that
// feeds key presses into the browser state machine and draws its frames.
package tui

import (
	"fmt"
	"log"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/katyella/lazyroster/internal/browser"
	"github.com/katyella/lazyroster/internal/constants"
	"github.com/katyella/lazyroster/internal/logging"
	"github.com/katyella/lazyroster/internal/roster"
	"github.com/katyella/lazyroster/internal/tui/components"
	"github.com/katyella/lazyroster/internal/tui/handlers"
	"github.com/katyella/lazyroster/internal/tui/views"
)

// Options configures a new App
type Options struct {
	Version string
	Team    string
	Players []roster.Player
	Logger  *log.Logger

	// Clipboard writes text to the system clipboard. Defaults to
	// clipboard.WriteAll.
	Clipboard func(string) error
}

// App is the main TUI application
type App struct {
	// Core properties
	version string
	Logger  *log.Logger
	keys    handlers.KeyMap

	// Components
	header    *components.HeaderComponent
	statusBar *components.StatusBarComponent
	search    *components.SearchComponent
	players   *views.PlayersView
	details   *views.DetailsView

	// Layout
	layout *components.LayoutManager

	// State
	state     browser.State
	searching bool
	copyText  func(string) error

	// Terminal size
	width  int
	height int
}

// NewApp creates a new TUI application over a fetched roster. When the
// roster is not empty the cursor starts on the first player.
func NewApp(opts Options) *App {
	keys := handlers.DefaultKeyMap()

	names := make([]string, len(opts.Players))
	for i, p := range opts.Players {
		names[i] = p.FullName()
	}

	app := &App{
		version:   opts.Version,
		Logger:    opts.Logger,
		keys:      keys,
		header:    components.NewHeaderComponent(constants.AppTitle, opts.Version),
		statusBar: components.NewStatusBarComponent(keys),
		search:    components.NewSearchComponent(names),
		players:   views.NewPlayersView(),
		details:   views.NewDetailsView(),
		layout:    components.NewLayoutManager(),
		state:     browser.NewState(opts.Players),
		copyText:  opts.Clipboard,
	}
	if app.copyText == nil {
		app.copyText = clipboard.WriteAll
	}

	if app.state.Len() > 0 {
		app.state = browser.Apply(app.state, browser.Top)
	}

	app.header.SetRoster(opts.Team, len(opts.Players))
	app.refresh()

	return app
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles all messages and updates the application state
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout.SetSize(msg.Width, msg.Height)
		a.updateComponentSizes()
		return a, nil

	case tea.KeyMsg:
		if a.searching {
			return a, a.handleSearchKey(msg)
		}
		return a, a.handleKey(msg)

	case components.NotificationMsg, components.ErrorMsg, components.ClearNotificationMsg:
		cmd, _ := a.statusBar.Update(msg)
		return a, cmd
	}

	// Cursor blink and other input plumbing
	if a.searching {
		cmd, _ := a.search.Update(msg)
		a.statusBar.SetPrompt(a.search.View())
		return a, cmd
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	event, action := a.keys.Resolve(msg)

	switch action {
	case handlers.ActionSearch:
		a.searching = true
		cmd := a.search.Open()
		a.statusBar.SetPrompt(a.search.View())
		return cmd

	case handlers.ActionCopy:
		return a.copySelected()

	case handlers.ActionHelp:
		a.statusBar.ToggleFullHelp()
		logging.Debug(a.Logger, "full help shown: %v", a.statusBar.ShowingFullHelp())
		a.updateComponentSizes()
		return nil

	case handlers.ActionScroll:
		if _, ok := a.state.Active(); !ok {
			return nil
		}
		cmd, _ := a.details.Update(msg)
		return cmd
	}

	if event.Type == browser.EventNone {
		return nil
	}
	return a.apply(event)
}

func (a *App) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return a.apply(browser.Quit)

	case "esc":
		a.closeSearch()
		return nil

	case "enter":
		query := a.search.Query()
		idx, ok := a.search.BestMatch()
		a.closeSearch()
		if !ok {
			if query == "" {
				return nil
			}
			return a.statusBar.SetNotification(fmt.Sprintf(constants.NoMatchMessage, query), constants.NotificationDuration)
		}
		return a.apply(browser.JumpTo(idx))
	}

	cmd, _ := a.search.Update(msg)
	a.statusBar.SetPrompt(a.search.View())
	return cmd
}

func (a *App) closeSearch() {
	a.searching = false
	a.search.Close()
	a.statusBar.SetPrompt("")
}

// apply runs one event through the state machine and redraws
func (a *App) apply(event browser.Event) tea.Cmd {
	a.state = browser.Apply(a.state, event)
	if idx, ok := a.state.Index(); ok {
		logging.Debug(a.Logger, "event %s -> index %d", event.Type, idx)
	} else {
		logging.Debug(a.Logger, "event %s -> no selection", event.Type)
	}

	if a.state.Quitting() {
		logging.Info(a.Logger, "quit requested")
		return tea.Quit
	}

	a.refresh()
	return nil
}

func (a *App) copySelected() tea.Cmd {
	player, ok := a.state.Selected()
	if !ok {
		return a.statusBar.SetNotification(constants.NothingSelectedMessage, constants.NotificationDuration)
	}

	summary, name := player.Summary(), player.FullName()
	write, logger := a.copyText, a.Logger
	return func() tea.Msg {
		if err := write(summary); err != nil {
			logging.Warn(logger, "clipboard write failed: %v", err)
			return components.ErrorMsg{Message: fmt.Sprintf("clipboard: %v", err)}
		}
		return components.NotificationMsg{
			Message:  fmt.Sprintf(constants.CopiedMessage, name),
			Duration: constants.NotificationDuration,
		}
	}
}

// refresh projects the current state into the views
func (a *App) refresh() {
	frame := browser.Project(a.state)
	a.players.SetRows(frame.Rows)
	a.details.ShowDetail(frame.Detail)
	a.layout.SetDetailsVisible(frame.HasDetail())
	a.updateComponentSizes()
}

// updateComponentSizes updates all component sizes based on layout
func (a *App) updateComponentSizes() {
	a.statusBar.SetSize(a.width, constants.StatusBarHeight)
	a.layout.SetStatusBarHeight(a.statusBar.Height())

	dims := a.layout.GetDimensions()
	a.header.SetSize(dims.Width, dims.HeaderHeight)
	a.players.SetSize(dims.ListWidth, dims.ContentHeight)
	a.details.SetSize(dims.DetailsWidth, dims.ContentHeight)
}

// View renders the application
func (a *App) View() string {
	if a.state.Quitting() {
		return ""
	}
	if a.width == 0 || a.height == 0 {
		return constants.InitializingMessage
	}

	dims := a.layout.GetDimensions()

	var details string
	if dims.DetailsWidth > 0 {
		details = a.details.View()
	}

	return components.RenderLayout(dims, a.header.View(), a.players.View(), details, a.statusBar.View())
}

// State returns the current browser state
func (a *App) State() browser.State {
	return a.state
}

// Searching reports whether the search prompt is open
func (a *App) Searching() bool {
	return a.searching
}

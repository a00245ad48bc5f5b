package ui

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/katyella/lazyroster/internal/constants"
	apperrors "github.com/katyella/lazyroster/internal/errors"
	"github.com/katyella/lazyroster/internal/logging"
	"github.com/katyella/lazyroster/internal/roster"
	"github.com/katyella/lazyroster/internal/tui"
)

// ProgramOptions holds configuration for the Bubble Tea program
type ProgramOptions struct {
	Version   string
	Team      string
	Debug     bool
	AltScreen bool
	Logger    *log.Logger

	// Input and Output override the terminal; nil means stdin/stdout
	Input  io.Reader
	Output io.Writer

	// Clipboard overrides the system clipboard writer
	Clipboard func(string) error
}

// DefaultProgramOptions returns sensible defaults for the TUI program
func DefaultProgramOptions() ProgramOptions {
	return ProgramOptions{
		Version:   "dev",
		Debug:     false,
		AltScreen: true, // Use alternate screen buffer
	}
}

// NewProgram creates a new Bubble Tea program browsing players
func NewProgram(players []roster.Player, opts ProgramOptions) *tea.Program {
	app := tui.NewApp(tui.Options{
		Version:   opts.Version,
		Team:      opts.Team,
		Players:   players,
		Logger:    opts.Logger,
		Clipboard: opts.Clipboard,
	})

	var programOpts []tea.ProgramOption

	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	logging.Info(opts.Logger, "Creating Bubble Tea program with options: AltScreen=%v, players=%d",
		opts.AltScreen, len(players))

	return tea.NewProgram(app, programOpts...)
}

// RunTUI runs the browser until the user quits. Failures to drive the
// terminal come back as terminal errors.
func RunTUI(players []roster.Player, opts ProgramOptions) error {
	program := NewProgram(players, opts)

	model, err := program.Run()
	if err != nil {
		logging.Error(opts.Logger, "TUI program failed: %v", err)
		return apperrors.NewTerminalError(constants.ErrTerminal, err)
	}

	if app, ok := model.(*tui.App); ok && opts.Debug {
		logging.Info(app.Logger, "TUI program exited successfully")
	}

	return nil
}

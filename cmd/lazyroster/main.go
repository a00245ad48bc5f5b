package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/katyella/lazyroster/internal/config"
	"github.com/katyella/lazyroster/internal/console"
	"github.com/katyella/lazyroster/internal/constants"
	apperrors "github.com/katyella/lazyroster/internal/errors"
	"github.com/katyella/lazyroster/internal/logging"
	"github.com/katyella/lazyroster/internal/sportsdata"
	"github.com/katyella/lazyroster/internal/ui"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the raw flag values
type options struct {
	configPath  string
	team        string
	baseURL     string
	league      string
	fixture     string
	dump        bool
	debug       bool
	noAltScreen bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		stop()
		os.Exit(1)
	}
}

// formatError prefixes err with its category and hints at a retry when the
// failure might be transient
func formatError(err error) string {
	var appErr *apperrors.AppError
	if !stderrors.As(err, &appErr) {
		return fmt.Sprintf("Error: %v", err)
	}

	msg := fmt.Sprintf("%s: %v", appErr.GetTypeString(), err)
	if appErr.IsRecoverable() {
		msg += "\n" + constants.RetryHint
	}
	return msg
}

func newRootCmd() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "lazyroster",
		Short: "lazyroster - browse an NHL team roster in the terminal",
		Long: `lazyroster fetches a team's players from the SportsDataIO NHL API and
shows them in a two-pane terminal browser.

The API key is read from SPORTS_DATA_IO_NHL_KEY (environment or .env).
Press ? for help once inside the application.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	// Add flags
	flags := rootCmd.Flags()
	flags.StringVarP(&opts.team, "team", "t", constants.DefaultTeam, "Team key to fetch, e.g. DAL")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to config file (defaults to $HOME/.lazyroster/config.yaml)")
	flags.StringVar(&opts.baseURL, "base-url", "", "API base URL")
	flags.StringVar(&opts.league, "league", "", "League path segment")
	flags.StringVar(&opts.fixture, "fixture", "", "Read players from a JSON file instead of the API")
	flags.BoolVar(&opts.dump, "dump", false, "Print the roster as a table and exit")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "Enable debug mode (logs to lazyroster.log)")
	flags.BoolVar(&opts.noAltScreen, "no-alt-screen", false, "Disable alternate screen buffer")

	return rootCmd
}

// run resolves configuration, fetches the roster once and hands it to the
// console dump or the browser
func run(cmd *cobra.Command, opts options) error {
	cfg, err := config.Load(config.LoadOptions{ConfigPath: opts.configPath})
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg, opts)

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.SetupLogger(cfg.Debug)
	logging.Info(logger, "Starting lazyroster %s for team %s", version, cfg.Team)

	players, err := newSource(cfg, logger).Players(cmd.Context(), cfg.Team)
	if err != nil {
		logging.Error(logger, "Fetch failed: %v", err)
		return err
	}
	logging.Info(logger, "Fetched %d players", len(players))

	if opts.dump {
		return console.Dump(cmd.OutOrStdout(), players)
	}

	return ui.RunTUI(players, ui.ProgramOptions{
		Version:   version,
		Team:      cfg.Team,
		Debug:     cfg.Debug,
		AltScreen: !opts.noAltScreen,
		Logger:    logger,
	})
}

// applyFlags overrides cfg with the flags the user actually set
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts options) {
	flags := cmd.Flags()
	if flags.Changed("team") {
		cfg.Team = opts.team
	}
	if flags.Changed("base-url") {
		cfg.BaseURL = opts.baseURL
	}
	if flags.Changed("league") {
		cfg.League = opts.league
	}
	if flags.Changed("fixture") {
		cfg.Fixture = opts.fixture
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
}

func newSource(cfg *config.Config, logger *log.Logger) sportsdata.Source {
	if cfg.Fixture != "" {
		logging.Info(logger, "Using fixture %s", cfg.Fixture)
		return sportsdata.NewFileSource(cfg.Fixture)
	}
	return sportsdata.NewClient(sportsdata.Config{
		BaseURL: cfg.BaseURL,
		League:  cfg.League,
		APIKey:  cfg.APIKey,
		Logger:  logger,
	})
}

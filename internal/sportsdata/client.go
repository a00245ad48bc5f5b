package sportsdata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/katyella/lazyroster/internal/constants"
	apperrors "github.com/katyella/lazyroster/internal/errors"
	"github.com/katyella/lazyroster/internal/logging"
	"github.com/katyella/lazyroster/internal/roster"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	League     string
	APIKey     string
	HTTPClient *http.Client
	Logger     *log.Logger
}

// Client fetches a team's players from the SportsDataIO scores API.
type Client struct {
	baseURL    string
	league     string
	apiKey     string
	httpClient httpDoer
	logger     *log.Logger
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		league:     normalizeLeague(cfg.League),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
	}
}

// Players issues one GET for the team's full roster. There is no retry and
// no pagination: the upstream returns every player in a single response.
func (c *Client) Players(ctx context.Context, team string) ([]roster.Player, error) {
	team = normalizeTeam(team)
	if team == "" {
		return nil, apperrors.New(apperrors.ErrorConfiguration, constants.ErrMissingTeam)
	}

	req, err := c.buildRequest(ctx, team)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrorInternal, "build roster request", err)
	}

	logging.Debug(c.logger, "GET %s", redactURL(req.URL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewTransportError(constants.ErrRequestFailed, redactError(err)).
			WithContext("team", team)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, constants.ErrorBodyExcerptLimit))
		logging.Warn(c.logger, "roster request for %s returned %d", team, resp.StatusCode)
		return nil, apperrors.NewProtocolError(
			fmt.Sprintf("%s %d", constants.ErrUnexpectedStatus, resp.StatusCode),
			bodyError(body),
		).WithContext("status", resp.StatusCode).WithContext("team", team)
	}

	players, err := roster.DecodePlayers(resp.Body)
	if err != nil {
		return nil, apperrors.NewSchemaError(constants.ErrDecodeRoster, err).WithContext("team", team)
	}

	logging.Info(c.logger, "fetched %d players for %s", len(players), team)
	return players, nil
}

func (c *Client) buildRequest(ctx context.Context, team string) (*http.Request, error) {
	path := fmt.Sprintf(constants.PlayersPathFormat, url.PathEscape(c.league), url.PathEscape(team))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set(constants.APIKeyQueryParam, c.apiKey)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// redactError strips the API key from the URL that net/http embeds in its errors
func redactError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		parsed, parseErr := url.Parse(urlErr.URL)
		if parseErr != nil {
			return &url.Error{Op: urlErr.Op, URL: constants.RedactedValue, Err: urlErr.Err}
		}
		return &url.Error{Op: urlErr.Op, URL: redactURL(parsed), Err: urlErr.Err}
	}
	return err
}

func bodyError(body []byte) error {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil
	}
	return errors.New(trimmed)
}

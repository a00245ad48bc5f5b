package sportsdata

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/katyella/lazyroster/internal/constants"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// resolveHTTPClient returns a client without a timeout: a slow upstream
// blocks startup until the caller's context gives up.
func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = constants.DefaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func normalizeLeague(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return constants.DefaultLeague
	}
	return raw
}

func normalizeTeam(team string) string {
	return strings.ToUpper(strings.TrimSpace(team))
}

// redactURL hides the API key so URLs are safe to log
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	clone := *u
	q := clone.Query()
	if q.Has(constants.APIKeyQueryParam) {
		q.Set(constants.APIKeyQueryParam, constants.RedactedValue)
		clone.RawQuery = q.Encode()
	}
	return clone.String()
}

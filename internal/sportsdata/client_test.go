package sportsdata

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	apperrors "github.com/katyella/lazyroster/internal/errors"
	"github.com/katyella/lazyroster/internal/roster"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

const twoPlayers = `[
	{"PlayerID": 1, "FirstName": "Jason", "LastName": "Robertson", "Status": "Active", "TeamID": 9, "Team": "DAL", "Position": "LW", "Jersey": 21, "Shoots": "L", "Height": 75, "Weight": 201},
	{"PlayerID": 2, "FirstName": "Matt", "LastName": "Duchene", "Status": "Active", "TeamID": 9, "Team": "DAL", "Position": "RW", "Unknown": true}
]`

func TestPlayersBuildsURLAndDecodes(t *testing.T) {
	var captured *http.Request
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, twoPlayers), nil
	})

	client := NewClient(Config{
		BaseURL:    "https://api.example.com/",
		APIKey:     "secret",
		HTTPClient: &http.Client{Transport: rt},
	})

	players, err := client.Players(context.Background(), "dal")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if captured.Method != http.MethodGet {
		t.Errorf("expected GET, got %s", captured.Method)
	}
	if captured.URL.Host != "api.example.com" {
		t.Errorf("unexpected host %s", captured.URL.Host)
	}
	if captured.URL.Path != "/v3/nhl/scores/json/Players/DAL" {
		t.Errorf("unexpected path %s", captured.URL.Path)
	}
	if captured.URL.Query().Get("key") != "secret" {
		t.Errorf("expected key query param, got %s", captured.URL.RawQuery)
	}

	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}
	if players[0].Position != roster.PositionLeftWing || players[1].Position != roster.PositionRightWing {
		t.Errorf("unexpected positions %v %v", players[0].Position, players[1].Position)
	}
}

func TestPlayersUsesConfiguredLeague(t *testing.T) {
	var path string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		path = req.URL.Path
		return jsonResponse(http.StatusOK, `[]`), nil
	})

	client := NewClient(Config{League: "NHL", APIKey: "k", HTTPClient: &http.Client{Transport: rt}})
	if _, err := client.Players(context.Background(), "BOS"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/v3/nhl/scores/json/Players/BOS" {
		t.Errorf("unexpected path %s", path)
	}
}

func TestPlayersErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		rt       roundTripperFunc
		expected apperrors.ErrorType
	}{
		{
			name: "transport failure",
			rt: func(*http.Request) (*http.Response, error) {
				return nil, errors.New("dial tcp: lookup api.example.com: no such host")
			},
			expected: apperrors.ErrorTransport,
		},
		{
			name: "non-2xx status",
			rt: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusUnauthorized, `{"message":"invalid key"}`), nil
			},
			expected: apperrors.ErrorProtocol,
		},
		{
			name: "server error",
			rt: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusBadGateway, ``), nil
			},
			expected: apperrors.ErrorProtocol,
		},
		{
			name: "schema mismatch",
			rt: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `[{"PlayerID": 1}]`), nil
			},
			expected: apperrors.ErrorSchema,
		},
		{
			name: "null body",
			rt: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `null`), nil
			},
			expected: apperrors.ErrorSchema,
		},
		{
			name: "trailing garbage",
			rt: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `[] <html>oops</html>`), nil
			},
			expected: apperrors.ErrorSchema,
		},
		{
			name: "malformed json",
			rt: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `<html>`), nil
			},
			expected: apperrors.ErrorSchema,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(Config{APIKey: "secret", HTTPClient: &http.Client{Transport: tt.rt}})

			players, err := client.Players(context.Background(), "DAL")
			if err == nil {
				t.Fatal("expected an error")
			}
			if players != nil {
				t.Errorf("expected no players on failure, got %d", len(players))
			}
			if got := apperrors.TypeOf(err); got != tt.expected {
				t.Errorf("expected error type %v, got %v (%v)", tt.expected, got, err)
			}
		})
	}
}

func TestPlayersNeverLeaksAPIKey(t *testing.T) {
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection reset by peer")
	})
	client := NewClient(Config{APIKey: "topsecret", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.Players(context.Background(), "DAL")
	if err == nil {
		t.Fatal("expected an error")
	}
	if strings.Contains(err.Error(), "topsecret") {
		t.Errorf("error leaks API key: %v", err)
	}
	if !strings.Contains(err.Error(), "REDACTED") {
		t.Errorf("expected redacted URL in error, got %v", err)
	}
}

func TestPlayersProtocolErrorCarriesStatus(t *testing.T) {
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusForbidden, "quota exceeded"), nil
	})
	client := NewClient(Config{APIKey: "k", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.Players(context.Background(), "DAL")

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Context["status"] != http.StatusForbidden {
		t.Errorf("expected status context 403, got %v", appErr.Context["status"])
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("expected body excerpt in error, got %v", err)
	}
}

func TestPlayersRejectsEmptyTeam(t *testing.T) {
	called := false
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		called = true
		return jsonResponse(http.StatusOK, `[]`), nil
	})
	client := NewClient(Config{APIKey: "k", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.Players(context.Background(), "  ")
	if apperrors.TypeOf(err) != apperrors.ErrorConfiguration {
		t.Errorf("expected configuration error, got %v", err)
	}
	if called {
		t.Error("expected no request for an empty team")
	}
}

func TestPlayersHonoursContext(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, req.Context().Err()
	})
	client := NewClient(Config{APIKey: "k", HTTPClient: &http.Client{Transport: rt}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Players(ctx, "DAL")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
}

package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katyella/lazyroster/internal/constants"
	apperrors "github.com/katyella/lazyroster/internal/errors"
)

var fixturePath = filepath.Join("..", "..", "internal", "roster", "testdata", "players.json")

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{constants.EnvAPIKey, constants.EnvTeam, constants.EnvBaseURL, constants.EnvLeague} {
		t.Setenv(key, "")
	}
}

func execute(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDumpFixture(t *testing.T) {
	isolate(t)

	out, err := execute("--fixture", fixturePath, "--dump")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Jamie Benn", "Miro Heiskanen", "Jake Oettinger", "NAME"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump should contain %q, got:\n%s", want, out)
		}
	}
}

func TestDumpFixtureOtherTeam(t *testing.T) {
	isolate(t)

	out, err := execute("--fixture", fixturePath, "--dump", "--team", "BOS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "Jamie Benn") {
		t.Errorf("BOS dump should not list DAL players, got:\n%s", out)
	}
}

func TestTeamFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv(constants.EnvTeam, "BOS")

	out, err := execute("--fixture", fixturePath, "--dump")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "Jamie Benn") {
		t.Errorf("environment team should apply when --team is not set, got:\n%s", out)
	}
}

func TestMissingAPIKey(t *testing.T) {
	isolate(t)

	_, err := execute("--dump")
	if err == nil {
		t.Fatal("expected an error without an API key")
	}
	if got := apperrors.TypeOf(err); got != apperrors.ErrorConfiguration {
		t.Errorf("expected a configuration error, got %v", got)
	}
}

func TestMissingAPIKeyDiagnostic(t *testing.T) {
	isolate(t)

	_, err := execute("--dump")
	msg := formatError(err)
	if !strings.HasPrefix(msg, "Configuration Error: ") {
		t.Errorf("expected a configuration prefix, got %q", msg)
	}
	if !strings.Contains(msg, constants.EnvAPIKey) {
		t.Errorf("diagnostic should name %s, got %q", constants.EnvAPIKey, msg)
	}
	if strings.Contains(msg, constants.RetryHint) {
		t.Errorf("configuration errors should not suggest a retry, got %q", msg)
	}
}

func TestFormatError(t *testing.T) {
	testCases := []struct {
		name      string
		err       error
		prefix    string
		wantRetry bool
	}{
		{
			name:      "transport",
			err:       apperrors.NewTransportError(constants.ErrRequestFailed, errors.New("dial tcp: refused")),
			prefix:    "Transport Error: " + constants.ErrRequestFailed,
			wantRetry: true,
		},
		{
			name:      "protocol",
			err:       apperrors.NewProtocolError(constants.ErrUnexpectedStatus, nil),
			prefix:    "Protocol Error: ",
			wantRetry: true,
		},
		{
			name:   "schema",
			err:    apperrors.NewSchemaError(constants.ErrDecodeRoster, errors.New("bad")),
			prefix: "Schema Error: ",
		},
		{
			name:   "untyped",
			err:    errors.New("unknown flag: --nope"),
			prefix: "Error: unknown flag",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg := formatError(tc.err)
			if !strings.HasPrefix(msg, tc.prefix) {
				t.Errorf("expected prefix %q, got %q", tc.prefix, msg)
			}
			if got := strings.Contains(msg, constants.RetryHint); got != tc.wantRetry {
				t.Errorf("retry hint present = %v, want %v (%q)", got, tc.wantRetry, msg)
			}
		})
	}
}

func TestMissingFixture(t *testing.T) {
	isolate(t)

	_, err := execute("--fixture", filepath.Join(t.TempDir(), "nope.json"), "--dump")
	if apperrors.TypeOf(err) != apperrors.ErrorConfiguration {
		t.Errorf("expected a configuration error, got %v", err)
	}
}

func TestMissingConfigFile(t *testing.T) {
	isolate(t)

	_, err := execute("--config", filepath.Join(t.TempDir(), "missing.yaml"), "--fixture", fixturePath, "--dump")
	if apperrors.TypeOf(err) != apperrors.ErrorConfiguration {
		t.Errorf("expected a configuration error, got %v", err)
	}
}

func TestRejectsArguments(t *testing.T) {
	isolate(t)

	if _, err := execute("extra"); err == nil {
		t.Error("positional arguments should be rejected")
	}
}

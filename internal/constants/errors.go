package constants

// Error message constants
const (
	// ErrMissingAPIKey is returned when no API key is configured
	ErrMissingAPIKey = "missing API key: set " + EnvAPIKey + " or use --fixture"

	// ErrMissingTeam is returned when the team code is empty
	ErrMissingTeam = "team code must not be empty"

	// ErrRequestFailed is returned when the roster request cannot be sent or completed
	ErrRequestFailed = "roster request failed"

	// ErrUnexpectedStatus is returned for non-2xx roster responses
	ErrUnexpectedStatus = "unexpected response status"

	// ErrDecodeRoster is returned when the roster payload does not match the schema
	ErrDecodeRoster = "failed to decode roster"

	// ErrTerminal is returned when the terminal program fails
	ErrTerminal = "terminal UI failed"

	// RetryHint follows errors that may clear up on their own
	RetryHint = "This may be temporary; try again in a moment."
)

// RedactedValue replaces secrets in logged URLs and errors
const RedactedValue = "REDACTED"

// Package constants provides centralized constant definitions for lazyroster.
// Magic numbers, strings and configuration defaults live here so that the
// fetcher, the config loader and the terminal UI agree on them.
//
// The constants are organized into logical categories:
//   - api.go: upstream API host, paths and environment variable names
//   - paths.go: config and log file locations
//   - time.go: timeouts and UI timing
//   - ui.go: layout ratios, dimensions and user-facing messages
//   - colors.go: terminal color codes
//   - status.go: player status and position labels
//   - errors.go: error message fragments
//   - http.go: HTTP-related limits
//   - limits.go: size limits
package constants

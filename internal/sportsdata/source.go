// Package sportsdata fetches a team's roster, either from the SportsDataIO
// API or from a JSON file with the same shape.
package sportsdata

import (
	"context"

	"github.com/katyella/lazyroster/internal/roster"
)

// Source produces the roster for one team
type Source interface {
	Players(ctx context.Context, team string) ([]roster.Player, error)
}

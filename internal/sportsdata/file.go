package sportsdata

import (
	"context"
	"os"
	"strings"

	apperrors "github.com/katyella/lazyroster/internal/errors"
	"github.com/katyella/lazyroster/internal/roster"
)

// FileSource reads a saved Players response from disk, useful offline and
// for demos without an API key.
type FileSource struct {
	Path string
}

// NewFileSource creates a file-backed source.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Players decodes the file and keeps the rows belonging to team. An empty
// team keeps every row.
func (f *FileSource) Players(ctx context.Context, team string) ([]roster.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewTransportError("roster read cancelled", err).WithContext("path", f.Path)
	}

	file, err := os.Open(f.Path)
	if err != nil {
		return nil, apperrors.NewConfigError("open roster file", err).WithContext("path", f.Path)
	}
	defer file.Close()

	players, err := roster.DecodePlayers(file)
	if err != nil {
		return nil, apperrors.NewSchemaError("failed to decode roster file", err).WithContext("path", f.Path)
	}

	team = normalizeTeam(team)
	if team == "" {
		return players, nil
	}

	filtered := make([]roster.Player, 0, len(players))
	for _, p := range players {
		if strings.EqualFold(p.Team, team) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

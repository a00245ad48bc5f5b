// Package console prints a roster without the interactive browser.
package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/katyella/lazyroster/internal/constants"
	"github.com/katyella/lazyroster/internal/roster"
)

// Headers are the column titles of the dump, in order
var Headers = []string{"ID", "NAME", "POS", "#", "STATUS", "HT", "WT", "SHOOTS"}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(constants.ColorCyan)).
			Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(constants.ColorDarkGray))
)

// Row returns the table cells for one player
func Row(p roster.Player) []string {
	return []string{
		strconv.FormatInt(p.PlayerID, 10),
		p.FullName(),
		p.Position.Code(),
		p.JerseyString(),
		p.Status.String(),
		p.HeightString(),
		p.WeightString(),
		p.Handedness(),
	}
}

// Render builds the roster table. An empty roster renders the header only.
func Render(players []roster.Player) string {
	rows := make([][]string, len(players))
	for i, p := range players {
		rows[i] = Row(p)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(Headers...).
		Rows(rows...)

	return t.Render()
}

// Dump writes the roster table to w
func Dump(w io.Writer, players []roster.Player) error {
	_, err := fmt.Fprintln(w, Render(players))
	return err
}

package browser

import (
	"fmt"

	"github.com/katyella/lazyroster/internal/constants"
	"github.com/katyella/lazyroster/internal/roster"
)

// Row is one line of the list pane
type Row struct {
	Index       int
	Name        string
	Position    string
	Jersey      string
	Status      roster.Status
	Highlighted bool
}

// Field is one label/value line of the detail pane
type Field struct {
	Label string
	Value string
}

// Detail is the content of the detail pane
type Detail struct {
	Title  string
	Fields []Field
}

// Frame is everything the terminal needs to draw one screen
type Frame struct {
	Rows   []Row
	Detail *Detail
}

// HasDetail reports whether the detail pane should be drawn
func (f Frame) HasDetail() bool {
	return f.Detail != nil
}

// Project renders s into a Frame without touching it
func Project(s State) Frame {
	selected, hasSelection := s.Index()

	rows := make([]Row, 0, len(s.players))
	for i, p := range s.players {
		rows = append(rows, Row{
			Index:       i,
			Name:        p.FullName(),
			Position:    p.Position.Code(),
			Jersey:      p.JerseyString(),
			Status:      p.Status,
			Highlighted: hasSelection && i == selected,
		})
	}

	frame := Frame{Rows: rows}
	if active, ok := s.Active(); ok {
		frame.Detail = projectDetail(active)
	}
	return frame
}

func projectDetail(p roster.Player) *Detail {
	return &Detail{
		Title: fmt.Sprintf("%s %s", p.JerseyString(), p.FullName()),
		Fields: []Field{
			{Label: "Player ID", Value: fmt.Sprintf("%d", p.PlayerID)},
			{Label: "Team", Value: p.Team},
			{Label: "Position", Value: p.Position.String()},
			{Label: "Status", Value: p.Status.String()},
			{Label: "Jersey", Value: p.JerseyString()},
			{Label: "Shoots", Value: handString(p.Shoots)},
			{Label: "Catches", Value: handString(p.Catches)},
			{Label: "Height", Value: p.HeightString()},
			{Label: "Weight", Value: p.WeightString()},
			{Label: "Born", Value: p.BirthDay()},
			{Label: "Birthplace", Value: p.BirthPlace()},
			{Label: "Photo", Value: valueOrNone(p.PhotoURL)},
		},
	}
}

func handString(h *roster.Hand) string {
	if h == nil {
		return constants.NoneValue
	}
	return h.String()
}

func valueOrNone(v string) string {
	if v == "" {
		return constants.NoneValue
	}
	return v
}

// Package roster holds the player record fetched from the upstream API and
// the closed enumerations it is built from.
package roster

import (
	"fmt"
	"strings"

	"github.com/katyella/lazyroster/internal/constants"
)

// Position is a player's position on the ice
type Position int

const (
	PositionCenter Position = iota
	PositionDefense
	PositionGoalie
	PositionLeftWing
	PositionRightWing
)

// String returns the display name of the position
func (p Position) String() string {
	switch p {
	case PositionCenter:
		return "Center"
	case PositionDefense:
		return "Defense"
	case PositionGoalie:
		return "Goalie"
	case PositionLeftWing:
		return "LeftWing"
	case PositionRightWing:
		return "RightWing"
	default:
		return "Unknown"
	}
}

// Code returns the upstream abbreviation (C, D, G, LW, RW)
func (p Position) Code() string {
	switch p {
	case PositionCenter:
		return constants.PositionCodeCenter
	case PositionDefense:
		return constants.PositionCodeDefense
	case PositionGoalie:
		return constants.PositionCodeGoalie
	case PositionLeftWing:
		return constants.PositionCodeLeftWing
	case PositionRightWing:
		return constants.PositionCodeRightWing
	default:
		return "?"
	}
}

// ParsePosition maps an upstream position code to a Position
func ParsePosition(code string) (Position, error) {
	switch code {
	case constants.PositionCodeCenter:
		return PositionCenter, nil
	case constants.PositionCodeDefense:
		return PositionDefense, nil
	case constants.PositionCodeGoalie:
		return PositionGoalie, nil
	case constants.PositionCodeLeftWing:
		return PositionLeftWing, nil
	case constants.PositionCodeRightWing:
		return PositionRightWing, nil
	default:
		return 0, fmt.Errorf("unknown position %q", code)
	}
}

// Status is a player's roster status
type Status int

const (
	StatusActive Status = iota
	StatusMinor
	StatusInactive
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return constants.StatusActive
	case StatusMinor:
		return constants.StatusMinor
	case StatusInactive:
		return constants.StatusInactive
	default:
		return "Unknown"
	}
}

// ParseStatus maps an upstream status label to a Status
func ParseStatus(label string) (Status, error) {
	switch label {
	case constants.StatusActive:
		return StatusActive, nil
	case constants.StatusMinor, constants.StatusMinors:
		return StatusMinor, nil
	case constants.StatusInactive:
		return StatusInactive, nil
	default:
		return 0, fmt.Errorf("unknown status %q", label)
	}
}

// Hand is the side a player shoots or catches with
type Hand int

const (
	HandLeft Hand = iota
	HandRight
)

func (h Hand) String() string {
	if h == HandRight {
		return "Right"
	}
	return "Left"
}

// ParseHand maps an upstream handedness code. The second return value is
// false when the code means "not recorded".
func ParseHand(code string) (Hand, bool, error) {
	switch code {
	case constants.HandCodeLeft:
		return HandLeft, true, nil
	case constants.HandCodeRight:
		return HandRight, true, nil
	case constants.HandCodeNone, "":
		return 0, false, nil
	default:
		return 0, false, fmt.Errorf("unknown hand %q", code)
	}
}

// Player is one roster entry. Values are immutable once decoded.
type Player struct {
	PlayerID   int64
	FirstName  string
	LastName   string
	Status     Status
	TeamID     int64
	Team       string
	Position   Position
	Jersey     *int
	Catches    *Hand
	Shoots     *Hand
	Height     int // inches
	Weight     int // pounds
	BirthDate  string
	BirthCity  string
	BirthState *string
	PhotoURL   string
}

// FullName returns "First Last"
func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// JerseyString returns "#14", or NoneValue without a jersey number
func (p Player) JerseyString() string {
	if p.Jersey == nil {
		return constants.NoneValue
	}
	return fmt.Sprintf("#%d", *p.Jersey)
}

// HeightString formats Height as feet and inches, e.g. 6'2"
func (p Player) HeightString() string {
	if p.Height <= 0 {
		return constants.NoneValue
	}
	return fmt.Sprintf("%d'%d\"", p.Height/12, p.Height%12)
}

// WeightString formats Weight in pounds
func (p Player) WeightString() string {
	if p.Weight <= 0 {
		return constants.NoneValue
	}
	return fmt.Sprintf("%d lb", p.Weight)
}

// BirthDay returns the date part of BirthDate (the API sends a timestamp)
func (p Player) BirthDay() string {
	if p.BirthDate == "" {
		return constants.NoneValue
	}
	if i := strings.IndexByte(p.BirthDate, 'T'); i > 0 {
		return p.BirthDate[:i]
	}
	return p.BirthDate
}

// BirthPlace returns "City, ST", "City" or NoneValue
func (p Player) BirthPlace() string {
	switch {
	case p.BirthCity == "":
		return constants.NoneValue
	case p.BirthState != nil && *p.BirthState != "":
		return p.BirthCity + ", " + *p.BirthState
	default:
		return p.BirthCity
	}
}

// Handedness returns the shooting hand, or the catching hand for goalies
// that only record one.
func (p Player) Handedness() string {
	switch {
	case p.Shoots != nil:
		return p.Shoots.String()
	case p.Catches != nil:
		return p.Catches.String()
	default:
		return constants.NoneValue
	}
}

// Summary is the single line copied to the clipboard
func (p Player) Summary() string {
	return fmt.Sprintf("%s %s %s (%s) %s", p.JerseyString(), p.FullName(), p.Position.Code(), p.Team, p.Status)
}

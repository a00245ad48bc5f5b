package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNullPayload is returned when the body is JSON null instead of an array
	ErrNullPayload = errors.New("players payload is null")

	// ErrTrailingData is returned when anything but whitespace follows the array
	ErrTrailingData = errors.New("unexpected data after players array")
)

// playerResponse mirrors one element of the upstream Players array. Required
// fields are pointers so a missing key can be told apart from a zero value.
type playerResponse struct {
	PlayerID   *int64  `json:"PlayerID"`
	FirstName  *string `json:"FirstName"`
	LastName   *string `json:"LastName"`
	Status     *string `json:"Status"`
	TeamID     int64   `json:"TeamID"`
	Team       *string `json:"Team"`
	Position   *string `json:"Position"`
	Jersey     *int    `json:"Jersey"`
	Catches    *string `json:"Catches"`
	Shoots     *string `json:"Shoots"`
	Height     int     `json:"Height"`
	Weight     int     `json:"Weight"`
	BirthDate  string  `json:"BirthDate"`
	BirthCity  string  `json:"BirthCity"`
	BirthState *string `json:"BirthState"`
	PhotoURL   string  `json:"PhotoUrl"`
}

// DecodeError reports which array element failed and why
type DecodeError struct {
	Index int
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("player %d: field %s: %v", e.Index, e.Field, e.Err)
	}
	return fmt.Sprintf("player %d: missing required field %s", e.Index, e.Field)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodePlayers reads a JSON array of players. Unknown fields are ignored;
// a missing required field or an unknown enum value fails the whole decode.
// The body must be exactly one array: null and trailing input are rejected.
func DecodePlayers(r io.Reader) ([]Player, error) {
	dec := json.NewDecoder(r)

	var payload []playerResponse
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, ErrNullPayload
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, ErrTrailingData
	}

	players := make([]Player, 0, len(payload))
	for i, raw := range payload {
		p, err := mapPlayer(i, raw)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}

func mapPlayer(index int, raw playerResponse) (Player, error) {
	missing := func(field string) error {
		return &DecodeError{Index: index, Field: field}
	}
	invalid := func(field string, err error) error {
		return &DecodeError{Index: index, Field: field, Err: err}
	}

	switch {
	case raw.PlayerID == nil:
		return Player{}, missing("PlayerID")
	case raw.FirstName == nil:
		return Player{}, missing("FirstName")
	case raw.LastName == nil:
		return Player{}, missing("LastName")
	case raw.Status == nil:
		return Player{}, missing("Status")
	case raw.Team == nil:
		return Player{}, missing("Team")
	case raw.Position == nil:
		return Player{}, missing("Position")
	}

	status, err := ParseStatus(*raw.Status)
	if err != nil {
		return Player{}, invalid("Status", err)
	}
	position, err := ParsePosition(*raw.Position)
	if err != nil {
		return Player{}, invalid("Position", err)
	}
	catches, err := mapHand(raw.Catches)
	if err != nil {
		return Player{}, invalid("Catches", err)
	}
	shoots, err := mapHand(raw.Shoots)
	if err != nil {
		return Player{}, invalid("Shoots", err)
	}

	return Player{
		PlayerID:   *raw.PlayerID,
		FirstName:  *raw.FirstName,
		LastName:   *raw.LastName,
		Status:     status,
		TeamID:     raw.TeamID,
		Team:       *raw.Team,
		Position:   position,
		Jersey:     raw.Jersey,
		Catches:    catches,
		Shoots:     shoots,
		Height:     raw.Height,
		Weight:     raw.Weight,
		BirthDate:  raw.BirthDate,
		BirthCity:  raw.BirthCity,
		BirthState: raw.BirthState,
		PhotoURL:   raw.PhotoURL,
	}, nil
}

func mapHand(code *string) (*Hand, error) {
	if code == nil {
		return nil, nil
	}
	hand, ok, err := ParseHand(*code)
	if err != nil || !ok {
		return nil, err
	}
	return &hand, nil
}

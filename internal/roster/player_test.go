package roster

import "testing"

func TestPositionCodesRoundTrip(t *testing.T) {
	for _, p := range []Position{PositionCenter, PositionDefense, PositionGoalie, PositionLeftWing, PositionRightWing} {
		parsed, err := ParsePosition(p.Code())
		if err != nil {
			t.Fatalf("ParsePosition(%s): %v", p.Code(), err)
		}
		if parsed != p {
			t.Errorf("ParsePosition(%s) = %v, want %v", p.Code(), parsed, p)
		}
	}
}

func TestDisplayHelpers(t *testing.T) {
	jersey := 91
	state := "ON"
	right := HandRight
	p := Player{
		FirstName:  "Tyler",
		LastName:   "Seguin",
		Position:   PositionCenter,
		Status:     StatusActive,
		Team:       "DAL",
		Jersey:     &jersey,
		Shoots:     &right,
		Height:     73,
		Weight:     200,
		BirthDate:  "1992-01-31T00:00:00",
		BirthCity:  "Brampton",
		BirthState: &state,
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"full name", p.FullName(), "Tyler Seguin"},
		{"jersey", p.JerseyString(), "#91"},
		{"height", p.HeightString(), `6'1"`},
		{"weight", p.WeightString(), "200 lb"},
		{"birth day", p.BirthDay(), "1992-01-31"},
		{"birth place", p.BirthPlace(), "Brampton, ON"},
		{"handedness", p.Handedness(), "Right"},
		{"summary", p.Summary(), "#91 Tyler Seguin C (DAL) Active"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestDisplayHelpersAbsentValues(t *testing.T) {
	p := Player{FirstName: "Jake", LastName: "Oettinger"}

	if p.JerseyString() != "-" {
		t.Errorf("expected - for missing jersey, got %s", p.JerseyString())
	}
	if p.HeightString() != "-" || p.WeightString() != "-" {
		t.Error("expected - for missing physicals")
	}
	if p.BirthPlace() != "-" || p.BirthDay() != "-" {
		t.Error("expected - for missing birth info")
	}
	if p.Handedness() != "-" {
		t.Errorf("expected - for missing handedness, got %s", p.Handedness())
	}

	left := HandLeft
	p.Catches = &left
	if p.Handedness() != "Left" {
		t.Errorf("expected catching hand fallback, got %s", p.Handedness())
	}
}

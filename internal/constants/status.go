package constants

// Player status labels as sent by the upstream API
const (
	// StatusActive is a player currently playing for the team
	StatusActive = "Active"

	// StatusMinor is a player on the affiliated minor league team
	StatusMinor = "Minor"

	// StatusMinors is the plural form some responses use for StatusMinor
	StatusMinors = "Minors"

	// StatusInactive is a player not currently available
	StatusInactive = "Inactive"
)

// Position codes as sent by the upstream API
const (
	PositionCodeCenter    = "C"
	PositionCodeDefense   = "D"
	PositionCodeGoalie    = "G"
	PositionCodeLeftWing  = "LW"
	PositionCodeRightWing = "RW"
)

// Handedness codes as sent by the upstream API
const (
	HandCodeLeft  = "L"
	HandCodeRight = "R"
	HandCodeNone  = "-"
)

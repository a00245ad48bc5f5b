package constants

// Display limits
const (
	// NameColumnWidth is the width of the name column in the player list
	NameColumnWidth = 24

	// NameTruncateLength is the length names are truncated to in the list
	NameTruncateLength = 24

	// SearchInputCharLimit bounds the search prompt input
	SearchInputCharLimit = 40
)

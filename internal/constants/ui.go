package constants

// UI dimensions
const (
	// HeaderHeight is the height of the header in lines (title + separator)
	HeaderHeight = 2

	// StatusBarHeight is the height of the status bar in lines (separator + status)
	StatusBarHeight = 2

	// PanelChromeHeight accounts for panel borders
	PanelChromeHeight = 2

	// PanelChromeWidth accounts for panel borders and padding
	PanelChromeWidth = 4
)

// Layout constants
const (
	// ListPanelWidthRatio is the width ratio for the list pane when details are shown
	ListPanelWidthRatio = 1.0 / 2.0

	// MinDetailsWidth keeps the detail pane readable on narrow terminals
	MinDetailsWidth = 30
)

// UI Messages
const (
	// AppTitle is shown in the header
	AppTitle = "lazyroster"

	// InitializingMessage is shown until the first window size arrives
	InitializingMessage = "Initializing lazyroster..."

	// EmptyRosterMessage is shown when the roster has no players
	EmptyRosterMessage = "No players on this roster"

	// ListPanelTitle is the title of the list pane
	ListPanelTitle = "Players"

	// DetailsPanelTitle is the title of the detail pane
	DetailsPanelTitle = "Player"

	// SearchPrompt prefixes the search input
	SearchPrompt = "/ "

	// SearchPlaceholder is shown in an empty search input
	SearchPlaceholder = "search players"

	// NoMatchMessage is shown when a search finds nothing
	NoMatchMessage = "no player matches %q"

	// CopiedMessage is shown after copying a player to the clipboard
	CopiedMessage = "copied %s"

	// NothingSelectedMessage is shown when an action needs a selection
	NothingSelectedMessage = "no player selected"

	// NoneValue is shown for absent optional fields
	NoneValue = "-"
)

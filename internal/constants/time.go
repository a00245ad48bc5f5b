package constants

import "time"

// UI timing
const (
	// NotificationDuration is how long status bar notifications stay visible
	NotificationDuration = 3 * time.Second
)

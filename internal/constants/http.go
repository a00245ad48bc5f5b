package constants

// HTTP response handling
const (
	// ErrorBodyExcerptLimit caps how much of a non-2xx body is kept in errors (bytes)
	ErrorBodyExcerptLimit = 512
)

package constants

// Upstream SportsDataIO API
const (
	// DefaultBaseURL is the SportsDataIO API host
	DefaultBaseURL = "https://api.sportsdata.io"

	// DefaultLeague is the league path segment used in roster requests
	DefaultLeague = "nhl"

	// PlayersPathFormat is formatted with league and team code
	PlayersPathFormat = "/v3/%s/scores/json/Players/%s"

	// APIKeyQueryParam is the query parameter carrying the API key
	APIKeyQueryParam = "key"

	// DefaultTeam is the team browsed when none is configured
	DefaultTeam = "DAL"
)

// Environment variables
const (
	// EnvAPIKey holds the SportsDataIO NHL subscription key
	EnvAPIKey = "SPORTS_DATA_IO_NHL_KEY"

	// EnvTeam overrides the configured team code
	EnvTeam = "LAZYROSTER_TEAM"

	// EnvBaseURL overrides the API host
	EnvBaseURL = "LAZYROSTER_BASE_URL"

	// EnvLeague overrides the league path segment
	EnvLeague = "LAZYROSTER_LEAGUE"
)

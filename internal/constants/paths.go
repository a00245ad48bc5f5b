package constants

// lazyroster application paths
const (
	// ConfigDirName is the directory under $HOME holding lazyroster configuration
	ConfigDirName = ".lazyroster"

	// ConfigFileName is the filename for lazyroster configuration
	ConfigFileName = "config.yaml"

	// DotEnvFileName is read from the working directory before the environment
	DotEnvFileName = ".env"

	// LogFileName is the default log file name
	LogFileName = "lazyroster.log"

	// LogFilePermissions defines the permissions for log files
	LogFilePermissions = 0666
)

package entities

import "errors"

var (
	// ErrBuildToolUnavailable is returned when the build tool process cannot be started.
	ErrBuildToolUnavailable = errors.New("build tool unavailable")

	// ErrChangelogUnreadable is returned when the input changelog cannot be read.
	ErrChangelogUnreadable = errors.New("changelog unreadable")

	// ErrConfigNotFound is returned by FindConfigFile when no file exists.
	ErrConfigNotFound = errors.New("config file not found in default locations")
)

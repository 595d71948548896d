package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidLocalConfigs indicates invalid directory settings
	// (for example, an empty local or download directory path).
	ErrInvalidLocalConfigs = errors.New("invalid local directory configuration")
	// ErrInvalidDownloadConfigs indicates invalid transfer settings
	// (for example, a non-positive chunk size or retry count).
	ErrInvalidDownloadConfigs = errors.New("invalid download configuration")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// DefaultConfigPath is the JSON config file used when no -c/-config flag is
// provided.
const DefaultConfigPath = "sync_config.json"

// StructuredConfig is the top-level configuration container for the
// synchronizer. It aggregates all sub-configurations and is populated by
// merging values from environment variables, the JSON config file, and the
// built-in defaults; command-line overrides are applied on top.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the remote endpoint and its basic-auth credentials.
	Server Server `envPrefix:"SERVER_"`

	// Local holds the two local directory roots consulted during planning.
	Local Local `envPrefix:"LOCAL_"`

	// Download holds transfer tuning: retries, delays, chunking, timeouts,
	// and the progress emission interval.
	Download Download `envPrefix:"DOWNLOAD_"`

	// Filter holds the regex allow-list gating which candidates transfer.
	Filter Filter `envPrefix:"FILTER_"`
}

// Server holds the remote server address and credentials.
type Server struct {
	// URL is the base URL of the password-protected directory listing
	// (e.g. "http://example.com/files/").
	// Env: SERVER_URL
	URL string `env:"URL" json:"url"`

	// Username is the basic-auth user name.
	// Env: SERVER_USERNAME
	Username string `env:"USERNAME" json:"username"`

	// Password is the basic-auth password. Prefer the config file or env
	// over the -password flag so it does not land in shell history.
	// Env: SERVER_PASSWORD
	Password string `env:"PASSWORD" json:"password"`
}

// Local holds the directory roots that together form the local inventory.
type Local struct {
	// Dir is where already-present files live; files found here are never
	// re-downloaded.
	// Env: LOCAL_DIR
	Dir string `env:"DIR" json:"local_dir"`

	// DownloadDir is where new and partial downloads are written. A file's
	// on-disk length in this directory is its resume checkpoint.
	// Env: LOCAL_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR" json:"download_dir"`
}

// Download holds transfer tuning parameters.
type Download struct {
	// MaxRetries is the number of attempts per file before giving up.
	// Env: DOWNLOAD_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES" json:"max_retries"`

	// RetryDelay is the fixed sleep between attempts (e.g. "5s").
	// Env: DOWNLOAD_RETRY_DELAY
	RetryDelay time.Duration `env:"RETRY_DELAY" json:"retry_delay"`

	// ChunkSize is the streaming buffer size in bytes. Cancellation is
	// polled between chunks, so smaller chunks react faster.
	// Env: DOWNLOAD_CHUNK_SIZE
	ChunkSize int `env:"CHUNK_SIZE" json:"chunk_size"`

	// ProgressInterval is the minimum time between progress emissions.
	// Env: DOWNLOAD_PROGRESS_INTERVAL
	ProgressInterval time.Duration `env:"PROGRESS_INTERVAL" json:"progress_interval"`

	// ConnectTimeout bounds dialing the remote server.
	// Env: DOWNLOAD_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" json:"connect_timeout"`

	// ReadTimeout bounds the wait for response headers so a hung
	// connection does not block indefinitely.
	// Env: DOWNLOAD_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT" json:"read_timeout"`
}

// Filter holds the name-filter settings. Filtering is disabled by default:
// with no pattern opted in, no files are downloaded.
type Filter struct {
	// Enabled turns the regex allow-list on. When false, every candidate
	// is rejected; transfers require explicit opt-in.
	// Env: FILTER_ENABLED
	Enabled bool `env:"ENABLED" json:"enabled"`

	// Pattern is the regular expression matched (search semantics)
	// against candidate names. An empty pattern with filtering enabled
	// matches everything.
	// Env: FILTER_PATTERN
	Pattern string `env:"PATTERN" json:"pattern"`

	// CaseSensitive controls whether Pattern matching honors case.
	// Env: FILTER_CASE_SENSITIVE
	CaseSensitive bool `env:"CASE_SENSITIVE" json:"case_sensitive"`
}

// Defaults returns the built-in configuration used as the lowest-priority
// merge source and as the seed for interactive first-run setup.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Local: Local{
			Dir:         "current_files",
			DownloadDir: "new_downloads",
		},
		Download: Download{
			MaxRetries:       3,
			RetryDelay:       5 * time.Second,
			ChunkSize:        8192,
			ProgressInterval: time.Second,
			ConnectTimeout:   10 * time.Second,
			ReadTimeout:      30 * time.Second,
		},
		Filter: Filter{
			Enabled:       false,
			Pattern:       ".*",
			CaseSensitive: false,
		},
	}
}

// Load assembles the merged configuration from the environment, the JSON
// file at path (skipped when the file does not exist), and the defaults, in
// that priority order. Command-line overrides are not part of the merge; the
// application applies them afterwards via [Flags.Apply].
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func Load(path string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFile(path).
		withDefaults().
		build()
}

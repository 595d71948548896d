package config

import (
	"flag"
	"os"
)

// Flags holds the parsed command-line surface of the synchronizer. Unlike
// the other config sources, flags are kept separate from the merge: several
// of them are tri-state overrides (e.g. -enable-filter vs -disable-filter)
// that must only take effect when the operator actually provided them, which
// a zero-value merge cannot express.
type Flags struct {
	// ConfigPath is the JSON config file location (-c / -config).
	ConfigPath string

	// Extension restricts the sync run to files with this suffix
	// (-e / -extension), e.g. ".laz". Empty means all files.
	Extension string

	// Server overrides (-u/-url, -username, -password).
	URL      string
	Username string
	Password string

	// Directory overrides (-local-dir, -download-dir).
	LocalDir    string
	DownloadDir string

	// FilterPattern overrides the pattern and enables filtering (-filter).
	FilterPattern string

	// EnableFilter / DisableFilter toggle filtering without changing the
	// configured pattern (-enable-filter, -disable-filter).
	EnableFilter  bool
	DisableFilter bool

	// Verbose enables debug-level logging (-verbose).
	Verbose bool

	// NoColor suppresses styled terminal output (-no-color).
	NoColor bool

	provided map[string]bool
}

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-c/-config config file path (default: sync_config.json)
//	-e/-extension file extension to synchronize, e.g. ".laz"
//	-u/-url override server URL from config file
//	-username override server username from config file
//	-password override server password (not recommended, use config file)
//	-local-dir override existing-files directory
//	-download-dir override download directory
//	-filter override regex filter pattern and enable filtering
//	-enable-filter enable filtering with the configured pattern
//	-disable-filter disable filtering (no files will be downloaded)
//	-verbose enable verbose logging
//	-no-color disable colored output
func ParseFlags() *Flags {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) *Flags {
	f := &Flags{provided: make(map[string]bool)}

	fs.StringVar(&f.ConfigPath, "c", DefaultConfigPath, "Config file path")
	fs.StringVar(&f.ConfigPath, "config", DefaultConfigPath, "Config file path (alias)")
	fs.StringVar(&f.Extension, "e", "", "File extension to synchronize (e.g. '.laz')")
	fs.StringVar(&f.Extension, "extension", "", "File extension to synchronize (alias)")
	fs.StringVar(&f.URL, "u", "", "Override server URL from config file")
	fs.StringVar(&f.URL, "url", "", "Override server URL from config file (alias)")
	fs.StringVar(&f.Username, "username", "", "Override server username from config file")
	fs.StringVar(&f.Password, "password", "", "Override server password from config file")
	fs.StringVar(&f.LocalDir, "local-dir", "", "Override local directory path from config file")
	fs.StringVar(&f.DownloadDir, "download-dir", "", "Override download directory path from config file")
	fs.StringVar(&f.FilterPattern, "filter", "", "Override regex filter pattern and enable filtering")
	fs.BoolVar(&f.EnableFilter, "enable-filter", false, "Enable regex filtering with pattern from config file")
	fs.BoolVar(&f.DisableFilter, "disable-filter", false, "Disable regex filtering (no files will be downloaded)")
	fs.BoolVar(&f.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&f.NoColor, "no-color", false, "Disable colored output")

	_ = fs.Parse(args)

	fs.Visit(func(fl *flag.Flag) {
		f.provided[fl.Name] = true
	})

	return f
}

// Provided reports whether the named flag was explicitly given on the
// command line.
func (f *Flags) Provided(name string) bool {
	return f.provided[name]
}

// Apply writes the operator-provided overrides into cfg and returns the
// list of override names that were applied. The application persists the
// overridden config back to the file so later runs reuse them.
func (f *Flags) Apply(cfg *StructuredConfig) []string {
	var applied []string

	if f.URL != "" {
		cfg.Server.URL = f.URL
		applied = append(applied, "url")
	}
	if f.Username != "" {
		cfg.Server.Username = f.Username
		applied = append(applied, "username")
	}
	if f.Password != "" {
		cfg.Server.Password = f.Password
		applied = append(applied, "password")
	}
	if f.LocalDir != "" {
		cfg.Local.Dir = f.LocalDir
		applied = append(applied, "local-dir")
	}
	if f.DownloadDir != "" {
		cfg.Local.DownloadDir = f.DownloadDir
		applied = append(applied, "download-dir")
	}
	if f.FilterPattern != "" {
		cfg.Filter.Pattern = f.FilterPattern
		cfg.Filter.Enabled = true
		applied = append(applied, "filter")
	}
	if f.Provided("enable-filter") && f.EnableFilter {
		cfg.Filter.Enabled = true
		applied = append(applied, "enable-filter")
	}
	if f.Provided("disable-filter") && f.DisableFilter {
		cfg.Filter.Enabled = false
		applied = append(applied, "disable-filter")
	}

	return applied
}

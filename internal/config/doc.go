// Package config provides configuration loading, merging, validation, and
// persistence facilities for the synchronizer.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flag overrides (applied explicitly via [Flags.Apply])
//  2. Environment variables (a .env file is honored when present)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [Load] for assembling the merged configuration
// and [StructuredConfig.Save] for writing the JSON file back, which the
// application does after interactive first-run setup and after persisting
// command-line overrides.
package config

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants required before a sync run can start.
//
// Server credentials are deliberately not validated here: the application
// detects missing credentials via [StructuredConfig.MissingCredentials] and
// prompts for them interactively instead of failing.
func (cfg *StructuredConfig) validate() error {
	if cfg.Local.Dir == "" || cfg.Local.DownloadDir == "" {
		return ErrInvalidLocalConfigs
	}

	if cfg.Download.MaxRetries < 1 || cfg.Download.ChunkSize <= 0 ||
		cfg.Download.RetryDelay < 0 || cfg.Download.ProgressInterval <= 0 {
		return ErrInvalidDownloadConfigs
	}

	return nil
}

// MissingCredentials returns the names of server credential fields that are
// empty ("url", "username", "password"), in that order. An empty result
// means the connection can be attempted without prompting the operator.
func (cfg *StructuredConfig) MissingCredentials() []string {
	var missing []string

	if strings.TrimSpace(cfg.Server.URL) == "" {
		missing = append(missing, "url")
	}
	if strings.TrimSpace(cfg.Server.Username) == "" {
		missing = append(missing, "username")
	}
	if strings.TrimSpace(cfg.Server.Password) == "" {
		missing = append(missing, "password")
	}

	return missing
}

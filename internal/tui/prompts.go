// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/MKhiriev/go-file-syncer/internal/config"
)

// PromptInitialConfig walks the operator through first-run setup. Every
// answer is seeded with the built-in default where one exists; the result
// is a complete configuration ready to validate and save.
func (p *TerminalPresenter) PromptInitialConfig(defaults *config.StructuredConfig) (*config.StructuredConfig, error) {
	fmt.Fprintln(p.out, p.st.Title.Render("First run: configuration setup"))

	cfg := *defaults

	var err error
	if cfg.Server.URL, err = p.promptLine("Server URL", cfg.Server.URL); err != nil {
		return nil, err
	}
	if cfg.Server.Username, err = p.promptLine("Username", cfg.Server.Username); err != nil {
		return nil, err
	}
	if cfg.Server.Password, err = p.promptPassword("Password"); err != nil {
		return nil, err
	}
	if cfg.Local.Dir, err = p.promptLine("Local files directory", cfg.Local.Dir); err != nil {
		return nil, err
	}
	if cfg.Local.DownloadDir, err = p.promptLine("Download directory", cfg.Local.DownloadDir); err != nil {
		return nil, err
	}

	if p.Confirm("Enable file name filtering?") {
		cfg.Filter.Enabled = true
		if cfg.Filter.Pattern, err = p.promptLine("Filter pattern (regex)", cfg.Filter.Pattern); err != nil {
			return nil, err
		}
		cfg.Filter.CaseSensitive = p.Confirm("Case-sensitive matching?")
	}

	return &cfg, nil
}

// PromptMissingCredentials asks for each named credential field and fills
// it in on cfg. Field names follow config.MissingCredentials.
func (p *TerminalPresenter) PromptMissingCredentials(cfg *config.StructuredConfig, missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	fmt.Fprintln(p.out, p.st.Warn.Render("Missing server credentials."))

	var err error
	for _, field := range missing {
		switch field {
		case "url":
			cfg.Server.URL, err = p.promptLine("Server URL", "")
		case "username":
			cfg.Server.Username, err = p.promptLine("Username", "")
		case "password":
			cfg.Server.Password, err = p.promptPassword("Password")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// promptLine asks for one value, returning def when the operator just
// presses enter.
func (p *TerminalPresenter) promptLine(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}

	value := strings.TrimSpace(line)
	if value == "" {
		return def, nil
	}
	return value, nil
}

// promptPassword reads a password without echo when stdin is a terminal,
// falling back to a plain line read otherwise (pipes, tests).
func (p *TerminalPresenter) promptPassword(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(line), nil
}

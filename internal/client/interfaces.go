// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the application: flag parsing, configuration
// loading with interactive first-run setup, adapter and store construction,
// signal handling, and the exit-code mapping around one sync run.
package client

// Client is the application entry point used by main.
type Client interface {
	// Run executes one sync run and returns the process exit code:
	// 0 on success, 1 on failure or declined confirmation, 2 on
	// operator-requested cancellation.
	Run() int
}

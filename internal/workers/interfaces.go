// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers hosts the background goroutines that run alongside a sync
// run. Currently that is the interrupt watcher, which translates operator
// signals into the cooperative cancellation flag polled by the transfer
// pipeline.
package workers

// Worker is a long-running background task started once per process.
type Worker interface {
	Run()
}

// Canceller is the subset of the cancellation token the watcher needs.
// Declared here so the package does not depend on the service layer.
type Canceller interface {
	Cancel()
}

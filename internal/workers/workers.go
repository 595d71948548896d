// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "github.com/MKhiriev/go-file-syncer/internal/logger"

// Workers aggregates the background tasks of one process.
type Workers struct {
	Interrupts *InterruptWatcher
}

// NewWorkers wires the background tasks over the cancellation token.
func NewWorkers(token Canceller, log *logger.Logger) *Workers {
	return &Workers{
		Interrupts: NewInterruptWatcher(token, log),
	}
}

// Start launches every worker in its own goroutine.
func (w *Workers) Start() {
	go w.Interrupts.Run()
}

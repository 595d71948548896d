// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-file-syncer/internal/logger"
)

// ExitCodeCancelled is the process exit code for operator-requested
// termination.
const ExitCodeCancelled = 2

// InterruptWatcher turns SIGINT/SIGTERM into cooperative cancellation. The
// first signal sets the cancellation flag and lets the pipeline finish its
// current chunk and flush; a second signal while the first is still being
// honored terminates the process immediately with no cleanup guarantee.
type InterruptWatcher struct {
	token Canceller
	log   *logger.Logger

	signals chan os.Signal
	exit    func(int)
}

// NewInterruptWatcher builds a watcher that cancels token on the first
// interrupt.
func NewInterruptWatcher(token Canceller, log *logger.Logger) *InterruptWatcher {
	signals := make(chan os.Signal, 2)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	return &InterruptWatcher{
		token:   token,
		log:     log,
		signals: signals,
		exit:    os.Exit,
	}
}

// Run blocks on the signal channel; start it in its own goroutine.
func (w *InterruptWatcher) Run() {
	sig, ok := <-w.signals
	if !ok {
		return
	}
	w.log.Warn().Str("signal", sig.String()).
		Msg("interrupt received, finishing current chunk (press again to force quit)")
	w.token.Cancel()

	if _, ok := <-w.signals; !ok {
		return
	}
	w.log.Error().Msg("second interrupt, terminating immediately")
	w.exit(ExitCodeCancelled)
}

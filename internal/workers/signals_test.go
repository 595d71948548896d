// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-file-syncer/internal/logger"
)

type stubCanceller struct {
	cancelled atomic.Bool
}

func (c *stubCanceller) Cancel() { c.cancelled.Store(true) }

func newTestWatcher(token Canceller, exit func(int)) (*InterruptWatcher, chan os.Signal) {
	signals := make(chan os.Signal, 2)
	w := &InterruptWatcher{
		token:   token,
		log:     logger.Nop(),
		signals: signals,
		exit:    exit,
	}
	return w, signals
}

func TestInterruptWatcher_FirstSignalCancels(t *testing.T) {
	token := &stubCanceller{}
	w, signals := newTestWatcher(token, func(int) {
		t.Error("exit must not be called on the first signal")
	})
	go w.Run()

	signals <- os.Interrupt

	assert.Eventually(t, token.cancelled.Load, time.Second, 10*time.Millisecond)
}

func TestInterruptWatcher_SecondSignalForcesExit(t *testing.T) {
	token := &stubCanceller{}
	exitCode := make(chan int, 1)
	w, signals := newTestWatcher(token, func(code int) { exitCode <- code })
	go w.Run()

	signals <- os.Interrupt
	signals <- os.Interrupt

	select {
	case code := <-exitCode:
		assert.Equal(t, ExitCodeCancelled, code)
	case <-time.After(time.Second):
		t.Fatal("second interrupt did not terminate the process")
	}
	assert.True(t, token.cancelled.Load())
}

func TestInterruptWatcher_ClosedChannelStopsQuietly(t *testing.T) {
	token := &stubCanceller{}
	w, signals := newTestWatcher(token, func(int) {
		t.Error("exit must not be called on channel close")
	})

	done := make(chan struct{})
	go func() {
		w.Run()
		close(done)
	}()

	close(signals)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on channel close")
	}
	assert.False(t, token.cancelled.Load())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
)

// CancelToken is the single process-wide cancellation flag set
// asynchronously by the interrupt watcher and polled by the transfer
// pipeline at well-defined points: before each attempt, before each chunk
// write, and between files. Polling rather than preemption guarantees the
// current chunk is flushed before stopping, so partial files are never left
// mid-chunk.
//
// The token also carries a context derived from the parent; blocking
// network calls use it so an in-flight request unblocks promptly instead of
// waiting for the next poll point.
type CancelToken struct {
	ctx    context.Context
	cancel context.CancelFunc
	flag   atomic.Bool
}

// NewCancelToken derives a token from parent. Cancelling the parent context
// does not set the flag; use Cancel for operator-initiated termination.
func NewCancelToken(parent context.Context) *CancelToken {
	ctx, cancel := context.WithCancel(parent)
	return &CancelToken{ctx: ctx, cancel: cancel}
}

// Cancel sets the flag and cancels the derived context. Safe to call from
// any goroutine, any number of times.
func (t *CancelToken) Cancel() {
	t.flag.Store(true)
	t.cancel()
}

// Cancelled reports whether Cancel has been called.
func (t *CancelToken) Cancelled() bool {
	return t.flag.Load()
}

// Context returns the derived context for blocking calls.
func (t *CancelToken) Context() context.Context {
	return t.ctx
}

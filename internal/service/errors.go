// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrCancelled marks an operation that stopped because the operator
	// requested termination. It is a normal terminal outcome, not a
	// failure; the orchestrator maps it to a cancelled result.
	ErrCancelled = errors.New("sync cancelled by operator")

	// ErrTruncatedTransfer is returned when a stream ends without error
	// but the bytes received fall short of the expected total. Some
	// servers close connections early without an error status.
	ErrTruncatedTransfer = errors.New("transfer ended before expected size")

	// ErrInvalidFilterPattern marks a filter pattern that does not
	// compile. It downgrades filtering to reject-all for the run and is
	// surfaced as a warning, never a fatal error.
	ErrInvalidFilterPattern = errors.New("invalid filter pattern")

	// ErrConfirmationDeclined is returned when the operator declines the
	// pre-transfer confirmation.
	ErrConfirmationDeclined = errors.New("download not confirmed")
)

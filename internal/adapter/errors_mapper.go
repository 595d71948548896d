// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
)

// mapHTTPError translates a non-success status code into one of the
// package sentinel errors. Returns nil for 2xx.
func mapHTTPError(statusCode int, status string) error {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, status)
	case statusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, status)
	case statusCode >= 500:
		return fmt.Errorf("%w: %s", ErrServerFailure, status)
	default:
		return fmt.Errorf("%w: %s", ErrUnexpectedStatus, status)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrConnection is returned when the server cannot be reached or the
	// request fails at the transport level (DNS, dial, TLS, timeout).
	ErrConnection = errors.New("server connection failed")

	// ErrUnauthorized is returned when the server rejects the configured
	// credentials (HTTP 401 or 403).
	ErrUnauthorized = errors.New("server rejected credentials")

	// ErrNotFound is returned when the requested resource does not exist
	// on the server (HTTP 404).
	ErrNotFound = errors.New("remote resource not found")

	// ErrServerFailure is returned for 5xx responses.
	ErrServerFailure = errors.New("server-side failure")

	// ErrUnexpectedStatus is returned for any other non-success status.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrListingParse is returned when the directory listing response
	// cannot be parsed as an autoindex HTML page.
	ErrListingParse = errors.New("directory listing parse failed")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the remote file server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync
// engine from the underlying protocol. The package ships an HTTP
// implementation ([NewHTTPServerAdapter]) that authenticates with basic
// credentials, parses Apache-style autoindex listings, and opens streaming
// byte-range requests for resumable transfers.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401/403).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-file-syncer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the remote
// file server. Implementations are responsible for authentication, listing
// retrieval and parsing, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// TestConnection performs a single authenticated request against the
	// listing URL to validate credentials and reachability before any
	// transfer is attempted. Returns [ErrUnauthorized] for rejected
	// credentials or [ErrConnection] (wrapped) for transport failures.
	TestConnection(ctx context.Context) error

	// List fetches and parses the remote directory listing, returning one
	// descriptor per file whose name ends with extension (case-insensitive;
	// empty extension keeps everything). Order follows the listing.
	// Transient failures are retried up to the configured budget with a
	// fixed delay; ctx cancellation aborts between attempts. Exhausting
	// the budget returns [ErrConnection] (wrapped).
	List(ctx context.Context, extension string) ([]models.FileInfo, error)

	// OpenRange starts a streaming GET of fileURL. When offset is
	// positive a byte-range header is attached; the returned
	// [RangeResponse].Resumed reports whether the server honored it.
	// The caller owns Body and must close it on every path.
	OpenRange(ctx context.Context, fileURL string, offset uint64) (*RangeResponse, error)
}

// RangeResponse is one open download stream together with the size
// accounting derived from the response headers.
type RangeResponse struct {
	// Body streams the response payload. Always non-nil on success.
	Body io.ReadCloser

	// TotalSize is the full remote file size. When the range was honored
	// it is the Content-Range total, falling back to Content-Length plus
	// the requested offset when the total is absent. When the body starts
	// at byte 0 it is the plain Content-Length. Zero when the server did
	// not report a usable length.
	TotalSize uint64

	// Resumed is true when the server answered 206 Partial Content to a
	// range request. When a range was requested but Resumed is false, the
	// body contains the whole file from byte 0 and appending it to an
	// existing partial file would corrupt it.
	Resumed bool
}

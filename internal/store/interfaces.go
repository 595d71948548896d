// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store manages the two local directories the sync engine works
// with: the archive of already-present files and the directory that
// receives new downloads. It is backed by [afero.Fs] so tests run against
// an in-memory filesystem.
package store

import "io"

//go:generate mockgen -source=interfaces.go -destination=../mock/local_store_mock.go -package=mock

// LocalStore abstracts local filesystem state for the sync engine.
type LocalStore interface {
	// EnsureDirs creates the archive and download directories if they do
	// not exist yet.
	EnsureDirs() error

	// Names returns the set of file names present in either directory,
	// keeping only names ending with extension (case-insensitive; empty
	// extension keeps everything). A file found in both directories
	// appears once.
	Names(extension string) (map[string]struct{}, error)

	// Sizes returns name -> size in bytes for every regular file in the
	// download directory. Partially transferred files report the bytes
	// written so far.
	Sizes() (map[string]uint64, error)

	// SizeOf returns the current on-disk size of name in the download
	// directory, or 0 when the file does not exist.
	SizeOf(name string) (uint64, error)

	// OpenWrite opens the download-directory file for name. With resume
	// true the file is opened for append so existing bytes are kept;
	// otherwise it is truncated to zero.
	OpenWrite(name string, resume bool) (io.WriteCloser, error)

	// DownloadPath returns the path of name inside the download
	// directory, for display purposes.
	DownloadPath(name string) string
}

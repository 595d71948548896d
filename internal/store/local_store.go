// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/MKhiriev/go-file-syncer/internal/config"
)

type localStore struct {
	fs          afero.Fs
	localDir    string
	downloadDir string
}

// NewLocalStore builds a LocalStore over the configured directories.
func NewLocalStore(fs afero.Fs, cfg config.Local) LocalStore {
	return &localStore{
		fs:          fs,
		localDir:    cfg.Dir,
		downloadDir: cfg.DownloadDir,
	}
}

func (s *localStore) EnsureDirs() error {
	for _, dir := range []string{s.localDir, s.downloadDir} {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

func (s *localStore) Names(extension string) (map[string]struct{}, error) {
	names := make(map[string]struct{})
	suffix := strings.ToLower(extension)

	for _, dir := range []string{s.localDir, s.downloadDir} {
		entries, err := afero.ReadDir(s.fs, dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read directory %s: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if suffix != "" && !strings.HasSuffix(strings.ToLower(entry.Name()), suffix) {
				continue
			}
			names[entry.Name()] = struct{}{}
		}
	}

	return names, nil
}

func (s *localStore) Sizes() (map[string]uint64, error) {
	sizes := make(map[string]uint64)

	entries, err := afero.ReadDir(s.fs, s.downloadDir)
	if err != nil {
		if os.IsNotExist(err) {
			return sizes, nil
		}
		return nil, fmt.Errorf("read directory %s: %w", s.downloadDir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || entry.Size() < 0 {
			continue
		}
		sizes[entry.Name()] = uint64(entry.Size())
	}

	return sizes, nil
}

func (s *localStore) SizeOf(name string) (uint64, error) {
	info, err := s.fs.Stat(s.DownloadPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("stat %s: %w", name, err)
	}
	if info.Size() < 0 {
		return 0, nil
	}
	return uint64(info.Size()), nil
}

func (s *localStore) OpenWrite(name string, resume bool) (io.WriteCloser, error) {
	flags := os.O_WRONLY | os.O_CREATE
	if resume {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := s.fs.OpenFile(s.DownloadPath(name), flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open %s for writing: %w", name, err)
	}
	return f, nil
}

func (s *localStore) DownloadPath(name string) string {
	return filepath.Join(s.downloadDir, name)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-file-syncer/internal/adapter"
	"github.com/MKhiriev/go-file-syncer/internal/config"
	"github.com/MKhiriev/go-file-syncer/internal/logger"
	"github.com/MKhiriev/go-file-syncer/internal/store"
	"github.com/MKhiriev/go-file-syncer/models"
)

type rangeFetcher struct {
	server    adapter.ServerAdapter
	store     store.LocalStore
	presenter Presenter
	cfg       config.Download
	log       *logger.Logger

	// injectable for tests
	sleep func(time.Duration)
	now   func() time.Time
}

// NewFetcher builds the range-resuming Fetcher.
func NewFetcher(server adapter.ServerAdapter, st store.LocalStore, presenter Presenter, cfg config.Download, log *logger.Logger) Fetcher {
	return &rangeFetcher{
		server:    server,
		store:     st,
		presenter: presenter,
		cfg:       cfg,
		log:       log,
		sleep:     time.Sleep,
		now:       time.Now,
	}
}

// Fetch transfers one plan entry. Transient failures are retried up to the
// configured budget with a fixed delay; before each retry the on-disk size
// is re-read so bytes written by the failed attempt are kept as the new
// resume checkpoint. BytesWritten accumulates across attempts.
func (f *rangeFetcher) Fetch(token *CancelToken, entry models.PlanEntry) models.FetchResult {
	resumeFrom := entry.ResumeFrom
	var moved uint64

	for attempt := 1; attempt <= f.cfg.MaxRetries; attempt++ {
		if token.Cancelled() {
			return models.FetchResult{Status: models.FetchCancelled, BytesWritten: moved}
		}

		if attempt > 1 {
			f.log.Warn().
				Str("file", entry.File.Name).
				Int("attempt", attempt).
				Int("max", f.cfg.MaxRetries).
				Dur("delay", f.cfg.RetryDelay).
				Msg("retrying download")
			f.sleep(f.cfg.RetryDelay)
			if token.Cancelled() {
				return models.FetchResult{Status: models.FetchCancelled, BytesWritten: moved}
			}
			if size, err := f.store.SizeOf(entry.File.Name); err == nil {
				resumeFrom = size
			}
		}

		written, err := f.transfer(token, entry, resumeFrom)
		moved += written

		switch {
		case err == nil:
			return models.FetchResult{Status: models.FetchSuccess, BytesWritten: moved}
		case errors.Is(err, ErrCancelled):
			return models.FetchResult{Status: models.FetchCancelled, BytesWritten: moved}
		case errors.Is(err, ErrTruncatedTransfer):
			// The stream ended cleanly but short; retrying would only
			// re-fetch the same truncated content.
			f.log.Error().Err(err).Str("file", entry.File.Name).Msg("download truncated")
			return models.FetchResult{Status: models.FetchFailed, BytesWritten: moved}
		default:
			f.log.Warn().Err(err).
				Str("file", entry.File.Name).
				Int("attempt", attempt).
				Msg("download attempt failed")
		}
	}

	return models.FetchResult{Status: models.FetchFailed, BytesWritten: moved}
}

// transfer performs a single attempt: open the range, stream chunks to
// disk, verify the final length. The local file handle never outlives the
// call and is closed on every exit path.
func (f *rangeFetcher) transfer(token *CancelToken, entry models.PlanEntry, resumeFrom uint64) (written uint64, err error) {
	rr, err := f.server.OpenRange(token.Context(), entry.File.URL, resumeFrom)
	if err != nil {
		return 0, err
	}

	if resumeFrom > 0 && !rr.Resumed {
		// Server ignored the range header and is sending the whole file
		// from byte 0. Appending would corrupt the partial, so restart
		// with the stream already in hand.
		f.log.Warn().Str("file", entry.File.Name).
			Msg("server ignored byte-range request, restarting from byte 0")
		resumeFrom = 0
	}

	defer func() {
		if cerr := rr.Body.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	total := rr.TotalSize
	if total == 0 {
		total = entry.File.Size
	}

	out, err := f.store.OpenWrite(entry.File.Name, resumeFrom > 0)
	if err != nil {
		return 0, err
	}

	tracker := newProgressTracker(f.presenter, f.cfg.ProgressInterval, f.now, entry.File.Name, total)
	current := resumeFrom
	buf := make([]byte, f.cfg.ChunkSize)

	for {
		if token.Cancelled() {
			// Flush and close cleanly: the file stays at a valid partial
			// length for a future resume.
			_ = out.Close()
			return written, ErrCancelled
		}

		n, rerr := rr.Body.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				_ = out.Close()
				return written, werr
			}
			written += uint64(n)
			current += uint64(n)
			tracker.Update(current)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			_ = out.Close()
			return written, rerr
		}
	}

	if cerr := out.Close(); cerr != nil {
		return written, cerr
	}
	tracker.Finish(current)

	if current < total {
		return written, fmt.Errorf("%w: wrote %d of %d bytes", ErrTruncatedTransfer, current, total)
	}
	return written, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-file-syncer/internal/adapter"
	"github.com/MKhiriev/go-file-syncer/internal/config"
	"github.com/MKhiriev/go-file-syncer/internal/logger"
	"github.com/MKhiriev/go-file-syncer/models"
)

func newTestFetcher(t *testing.T, server adapter.ServerAdapter, st *memStore) (*rangeFetcher, *recordingPresenter, *int) {
	t.Helper()
	pres := &recordingPresenter{}

	f := NewFetcher(server, st, pres, config.Download{
		MaxRetries:       3,
		RetryDelay:       5 * time.Second,
		ChunkSize:        8,
		ProgressInterval: time.Hour,
	}, logger.Nop()).(*rangeFetcher)

	sleeps := 0
	f.sleep = func(time.Duration) { sleeps++ }
	return f, pres, &sleeps
}

func body(data []byte) func() *adapter.RangeResponse {
	return func() *adapter.RangeResponse {
		return &adapter.RangeResponse{Body: io.NopCloser(bytes.NewReader(data))}
	}
}

func rangeBody(data []byte, total uint64, resumed bool) func() *adapter.RangeResponse {
	return func() *adapter.RangeResponse {
		return &adapter.RangeResponse{
			Body:      io.NopCloser(bytes.NewReader(data)),
			TotalSize: total,
			Resumed:   resumed,
		}
	}
}

func fill(b byte, n int) []byte { return bytes.Repeat([]byte{b}, n) }

func TestFetcher_FreshDownload(t *testing.T) {
	server := &stubServer{replies: []openReply{
		{resp: rangeBody(fill('x', 100), 100, false)},
	}}
	st := newMemStore()
	f, _, _ := newTestFetcher(t, server, st)
	token := NewCancelToken(context.Background())

	result := f.Fetch(token, models.PlanEntry{File: models.FileInfo{Name: "f.laz", Size: 100}})

	assert.Equal(t, models.FetchSuccess, result.Status)
	assert.Equal(t, uint64(100), result.BytesWritten)
	assert.Equal(t, []uint64{0}, server.offsets)
	assert.Equal(t, fill('x', 100), st.files["f.laz"])
}

func TestFetcher_ResumeSendsOffsetAndAppends(t *testing.T) {
	server := &stubServer{replies: []openReply{
		{resp: rangeBody(fill('b', 600), 1000, true)},
	}}
	st := newMemStore()
	st.files["f.laz"] = fill('a', 400)
	f, _, _ := newTestFetcher(t, server, st)
	token := NewCancelToken(context.Background())

	result := f.Fetch(token, models.PlanEntry{
		File:       models.FileInfo{Name: "f.laz", Size: 1000},
		ResumeFrom: 400,
	})

	assert.Equal(t, models.FetchSuccess, result.Status)
	assert.Equal(t, uint64(600), result.BytesWritten)
	assert.Equal(t, []uint64{400}, server.offsets)

	require.Len(t, st.files["f.laz"], 1000)
	assert.Equal(t, fill('a', 400), st.files["f.laz"][:400])
	assert.Equal(t, fill('b', 600), st.files["f.laz"][400:])
}

func TestFetcher_RangeIgnoredRestartsFromZero(t *testing.T) {
	// The server answers a range request with the whole file; the stale
	// partial must be truncated, not appended to.
	server := &stubServer{replies: []openReply{
		{resp: rangeBody(fill('n', 1000), 1000, false)},
	}}
	st := newMemStore()
	st.files["f.laz"] = fill('o', 400)
	f, _, _ := newTestFetcher(t, server, st)
	token := NewCancelToken(context.Background())

	result := f.Fetch(token, models.PlanEntry{
		File:       models.FileInfo{Name: "f.laz", Size: 1000},
		ResumeFrom: 400,
	})

	assert.Equal(t, models.FetchSuccess, result.Status)
	assert.Equal(t, uint64(1000), result.BytesWritten)
	assert.Equal(t, fill('n', 1000), st.files["f.laz"])
}

func TestFetcher_TruncatedStreamFailsWithoutRetry(t *testing.T) {
	server := &stubServer{replies: []openReply{
		{resp: rangeBody(fill('x', 800), 1000, false)},
	}}
	st := newMemStore()
	f, _, _ := newTestFetcher(t, server, st)
	token := NewCancelToken(context.Background())

	result := f.Fetch(token, models.PlanEntry{File: models.FileInfo{Name: "f.laz", Size: 1000}})

	assert.Equal(t, models.FetchFailed, result.Status)
	assert.Equal(t, uint64(800), result.BytesWritten)
	// Retrying would only re-fetch the same short content.
	assert.Len(t, server.offsets, 1)
}

// flakyReader serves its data and then fails with err instead of EOF.
type flakyReader struct {
	data []byte
	err  error
}

func (r *flakyReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestFetcher_RetryResumesFromNewCheckpoint(t *testing.T) {
	connReset := errors.New("connection reset")
	server := &stubServer{replies: []openReply{
		{resp: func() *adapter.RangeResponse {
			return &adapter.RangeResponse{
				Body:      io.NopCloser(&flakyReader{data: fill('a', 300), err: connReset}),
				TotalSize: 1000,
			}
		}},
		{resp: rangeBody(fill('b', 700), 1000, true)},
	}}
	st := newMemStore()
	f, _, sleeps := newTestFetcher(t, server, st)
	token := NewCancelToken(context.Background())

	result := f.Fetch(token, models.PlanEntry{File: models.FileInfo{Name: "f.laz", Size: 1000}})

	assert.Equal(t, models.FetchSuccess, result.Status)
	assert.Equal(t, uint64(1000), result.BytesWritten)
	// Second attempt resumed from the 300 bytes the first one managed.
	assert.Equal(t, []uint64{0, 300}, server.offsets)
	assert.Equal(t, 1, *sleeps)
	assert.Len(t, st.files["f.laz"], 1000)
}

func TestFetcher_ExhaustedRetries(t *testing.T) {
	connReset := errors.New("connection reset")
	server := &stubServer{replies: []openReply{
		{err: connReset}, {err: connReset}, {err: connReset},
	}}
	st := newMemStore()
	f, _, sleeps := newTestFetcher(t, server, st)
	token := NewCancelToken(context.Background())

	result := f.Fetch(token, models.PlanEntry{File: models.FileInfo{Name: "f.laz", Size: 100}})

	assert.Equal(t, models.FetchFailed, result.Status)
	assert.Zero(t, result.BytesWritten)
	assert.Len(t, server.offsets, 3)
	assert.Equal(t, 2, *sleeps)
}

// cancellingReader cancels the token while serving its first chunk, as the
// interrupt watcher would from another goroutine.
type cancellingReader struct {
	token *CancelToken
	data  []byte
	read  bool
}

func (r *cancellingReader) Read(p []byte) (int, error) {
	if r.read {
		return 0, io.EOF
	}
	r.read = true
	r.token.Cancel()
	return copy(p, r.data), nil
}

func TestFetcher_CancellationKeepsPartialFile(t *testing.T) {
	token := NewCancelToken(context.Background())
	server := &stubServer{replies: []openReply{
		{resp: func() *adapter.RangeResponse {
			return &adapter.RangeResponse{
				Body:      io.NopCloser(&cancellingReader{token: token, data: fill('x', 8)}),
				TotalSize: 1000,
			}
		}},
	}}
	st := newMemStore()
	f, _, _ := newTestFetcher(t, server, st)

	result := f.Fetch(token, models.PlanEntry{File: models.FileInfo{Name: "f.laz", Size: 1000}})

	assert.Equal(t, models.FetchCancelled, result.Status)
	assert.Equal(t, uint64(8), result.BytesWritten)
	// The interrupted chunk was flushed, not discarded.
	assert.Equal(t, fill('x', 8), st.files["f.laz"])
	assert.Len(t, server.offsets, 1)
}

func TestFetcher_CancelledBeforeFirstAttempt(t *testing.T) {
	server := &stubServer{}
	st := newMemStore()
	f, _, _ := newTestFetcher(t, server, st)

	token := NewCancelToken(context.Background())
	token.Cancel()

	result := f.Fetch(token, models.PlanEntry{File: models.FileInfo{Name: "f.laz", Size: 100}})

	assert.Equal(t, models.FetchCancelled, result.Status)
	assert.Empty(t, server.offsets)
}

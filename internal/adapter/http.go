// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-file-syncer/internal/config"
	"github.com/MKhiriev/go-file-syncer/internal/logger"
	"github.com/MKhiriev/go-file-syncer/internal/utils"
	"github.com/MKhiriev/go-file-syncer/models"
)

// httpServerAdapter talks to an HTTP server exposing an Apache-style
// autoindex listing protected by basic auth.
type httpServerAdapter struct {
	client     *utils.HTTPClient
	dirURL     *url.URL
	maxRetries int
	retryDelay time.Duration
	log        *logger.Logger
}

// NewHTTPServerAdapter builds a ServerAdapter for the configured server.
// The listing URL is normalized once here; credentials are attached to
// every request via basic auth.
func NewHTTPServerAdapter(server config.Server, download config.Download, log *logger.Logger) (ServerAdapter, error) {
	dirURL, err := normalizeBaseURL(server.URL)
	if err != nil {
		return nil, err
	}

	client := utils.NewHTTPClient(download.ConnectTimeout, download.ReadTimeout)
	client.SetBasicAuth(server.Username, server.Password)

	return &httpServerAdapter{
		client:     client,
		dirURL:     dirURL,
		maxRetries: download.MaxRetries,
		retryDelay: download.RetryDelay,
		log:        log,
	}, nil
}

// normalizeBaseURL validates the listing URL and guarantees a trailing
// slash so that relative hrefs resolve into the directory rather than
// its parent.
func normalizeBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty server URL", ErrConnection)
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid server URL: %v", ErrConnection, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: server URL has no host: %s", ErrConnection, raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}

func (a *httpServerAdapter) TestConnection(ctx context.Context) error {
	resp, err := a.client.R().SetContext(ctx).Get(a.dirURL.String())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return mapHTTPError(resp.StatusCode(), resp.Status())
}

func (a *httpServerAdapter) List(ctx context.Context, extension string) ([]models.FileInfo, error) {
	backoff := retry.WithMaxRetries(uint64(a.maxRetries-1), retry.NewConstant(constantDelay(a.retryDelay)))

	var files []models.FileInfo
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			a.log.Warn().Int("attempt", attempt).Int("max", a.maxRetries).Msg("retrying directory listing")
		}

		resp, err := a.client.R().SetContext(ctx).Get(a.dirURL.String())
		if err != nil {
			return retry.RetryableError(fmt.Errorf("%w: %v", ErrConnection, err))
		}
		if err := mapHTTPError(resp.StatusCode(), resp.Status()); err != nil {
			if errors.Is(err, ErrServerFailure) {
				return retry.RetryableError(err)
			}
			return err
		}

		parsed, err := parseListing(bytes.NewReader(resp.Body()), a.dirURL, extension)
		if err != nil {
			return err
		}
		files = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.log.Debug().Int("files", len(files)).Str("extension", extension).Msg("directory listing fetched")
	return files, nil
}

func (a *httpServerAdapter) OpenRange(ctx context.Context, fileURL string, offset uint64) (*RangeResponse, error) {
	req := a.client.R().SetContext(ctx).SetDoNotParseResponse(true)
	if offset > 0 {
		req.SetHeader("Range", fmt.Sprintf("bytes=%d-", offset))
	}

	resp, err := req.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	if err := mapHTTPError(resp.StatusCode(), resp.Status()); err != nil {
		_ = resp.RawBody().Close()
		return nil, err
	}

	out := &RangeResponse{Body: resp.RawBody()}

	if offset > 0 && resp.StatusCode() == http.StatusPartialContent {
		out.Resumed = true
		out.TotalSize = parseContentRangeTotal(resp.Header().Get("Content-Range"))
		if out.TotalSize == 0 {
			// Degraded server: fall back to length accounting.
			out.TotalSize = contentLength(resp.RawResponse.ContentLength) + offset
		}
		return out, nil
	}

	// Either no range was requested or the server ignored it and sent
	// the whole file from byte 0.
	out.TotalSize = contentLength(resp.RawResponse.ContentLength)
	return out, nil
}

// parseContentRangeTotal extracts the total size from a Content-Range
// header ("bytes 400-999/1000"). Returns 0 for missing, malformed or
// unknown ("*") totals.
func parseContentRangeTotal(header string) uint64 {
	idx := strings.LastIndexByte(header, '/')
	if idx < 0 {
		return 0
	}
	total, err := strconv.ParseUint(strings.TrimSpace(header[idx+1:]), 10, 64)
	if err != nil {
		return 0
	}
	return total
}

func contentLength(n int64) uint64 {
	if n < 0 {
		return 0
	}
	return uint64(n)
}

// constantDelay keeps go-retry happy: NewConstant panics on non-positive
// intervals, and tests run with a zero delay.
func constantDelay(d time.Duration) time.Duration {
	if d <= 0 {
		return time.Nanosecond
	}
	return d
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-file-syncer/internal/config"
	"github.com/MKhiriev/go-file-syncer/internal/service"
	"github.com/MKhiriev/go-file-syncer/models"
)

func newTestPresenter(input string) (*TerminalPresenter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	p := &TerminalPresenter{
		out: out,
		in:  bufio.NewReader(strings.NewReader(input)),
		st:  newStyles(true),
	}
	return p, out
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes short", "y\n", true},
		{"yes long", "YES\n", true},
		{"no", "n\n", false},
		{"empty defaults to no", "\n", false},
		{"eof defaults to no", "", false},
		{"garbage", "maybe\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPresenter(tt.input)
			got := p.Confirm("Proceed?")
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Proceed? [y/N]:")
		})
	}
}

func TestFileStart_ResumeWording(t *testing.T) {
	p, out := newTestPresenter("")

	p.FileStart(models.PlanEntry{File: models.FileInfo{Name: "a.laz", Size: 1000}}, 1, 2)
	p.FileStart(models.PlanEntry{File: models.FileInfo{Name: "b.laz", Size: 1000}, ResumeFrom: 400}, 2, 2)

	s := out.String()
	assert.Contains(t, s, "File 1 of 2: Downloading a.laz...")
	assert.Contains(t, s, "File 2 of 2: Resuming b.laz (from 400 B)...")
}

func TestPlanSummary(t *testing.T) {
	p, out := newTestPresenter("")

	plan := &service.PlanResult{
		Entries: []models.PlanEntry{
			{File: models.FileInfo{Name: "a.laz", Size: 1000}, ResumeFrom: 400},
			{File: models.FileInfo{Name: "b.laz", Size: 2000}},
		},
		Partials: []models.PartialDownload{
			{Name: "a.laz", LocalSize: 400, RemoteSize: 1000, PercentComplete: 40},
		},
		FilteredOut: []string{"c.txt"},
	}

	p.PlanSummary(plan, 2600)

	s := out.String()
	assert.Contains(t, s, "a.laz  1000 B (resume from 400 B, 600 B remaining)")
	assert.Contains(t, s, "b.laz  2.0 KB")
	assert.Contains(t, s, "Resumable downloads:")
	assert.Contains(t, s, "a.laz: 40.0% complete (400 B of 1000 B)")
	assert.Contains(t, s, "(1 file(s) filtered out)")
	assert.Contains(t, s, "Total to transfer: 2.5 KB")
	assert.Contains(t, s, "Press Ctrl+C to gracefully terminate the download.")
}

func TestProgressLine(t *testing.T) {
	p, out := newTestPresenter("")

	p.Progress(service.ProgressEvent{
		Name:    "a.laz",
		Current: 450,
		Total:   1000,
		Percent: 45,
		Speed:   250,
		ETA:     2*time.Second + 200*time.Millisecond,
		HasETA:  true,
	})

	s := out.String()
	assert.True(t, strings.HasPrefix(s, "\r"))
	assert.Contains(t, s, "45.0%")
	assert.Contains(t, s, "450 B / 1000 B")
	assert.Contains(t, s, "250 B/s")
	assert.Contains(t, s, "ETA 0m 2s")
	// Still redrawing in place, no newline yet.
	assert.NotContains(t, s, "\n")
}

func TestProgressLine_DoneFinishesLine(t *testing.T) {
	p, out := newTestPresenter("")

	p.Progress(service.ProgressEvent{Name: "a.laz", Current: 1000, Total: 1000, Percent: 100, Done: true})

	assert.True(t, strings.HasSuffix(out.String(), "\n"))
	assert.False(t, p.progressOpen)
}

func TestProgressLine_UnknownTotal(t *testing.T) {
	p, out := newTestPresenter("")

	p.Progress(service.ProgressEvent{Name: "a.laz", Current: 500, Speed: 100})

	s := out.String()
	assert.NotContains(t, s, "%")
	assert.Contains(t, s, "500 B")
	assert.Contains(t, s, "ETA --")
}

func TestFinalSummary_CapsFilteredList(t *testing.T) {
	p, out := newTestPresenter("")

	result := &models.SyncResult{}
	for i := 0; i < 14; i++ {
		result.FilteredOut = append(result.FilteredOut, fmt.Sprintf("file-%02d.laz", i))
	}

	p.FinalSummary(result, service.FilterSpec{})

	s := out.String()
	assert.Contains(t, s, "Filtered out (14):")
	assert.Contains(t, s, "file-09.laz")
	assert.NotContains(t, s, "file-10.laz")
	assert.Contains(t, s, "... and 4 more")
}

func TestFinalSummary_Outcomes(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		p, out := newTestPresenter("")
		p.FinalSummary(&models.SyncResult{Downloaded: []string{"a.laz"}}, service.FilterSpec{})
		assert.Contains(t, out.String(), "Sync complete.")
		assert.Contains(t, out.String(), "a.laz")
	})

	t.Run("failures include resume hint", func(t *testing.T) {
		p, out := newTestPresenter("")
		p.FinalSummary(&models.SyncResult{Failed: []string{"b.laz"}}, service.FilterSpec{})
		assert.Contains(t, out.String(), "Sync finished with failures.")
		assert.Contains(t, out.String(), "Rerun to resume")
	})

	t.Run("cancelled", func(t *testing.T) {
		p, out := newTestPresenter("")
		p.FinalSummary(&models.SyncResult{Cancelled: true}, service.FilterSpec{})
		assert.Contains(t, out.String(), "Sync cancelled.")
	})
}

func TestPromptMissingCredentials(t *testing.T) {
	p, out := newTestPresenter("http://h/files\noperator\n")

	cfg := config.Defaults()
	require.NoError(t, p.PromptMissingCredentials(cfg, []string{"url", "username"}))

	assert.Equal(t, "http://h/files", cfg.Server.URL)
	assert.Equal(t, "operator", cfg.Server.Username)
	assert.Contains(t, out.String(), "Missing server credentials.")
}

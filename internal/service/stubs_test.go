// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"io"

	"github.com/MKhiriev/go-file-syncer/internal/adapter"
	"github.com/MKhiriev/go-file-syncer/models"
)

// recordingPresenter captures every presenter event for assertions.
type recordingPresenter struct {
	progress       []ProgressEvent
	started        []string
	ended          []models.FetchResult
	planSummaries  int
	finalSummaries int
	estimate       uint64
	filterWarned   bool
	patternWarned  bool
}

func (p *recordingPresenter) Banner(_, _, _ string)  {}
func (p *recordingPresenter) FilterDisabledWarning() { p.filterWarned = true }
func (p *recordingPresenter) InvalidPatternWarning(string, error) {
	p.patternWarned = true
}
func (p *recordingPresenter) PlanSummary(_ *PlanResult, estimate uint64) {
	p.planSummaries++
	p.estimate = estimate
}
func (p *recordingPresenter) FileStart(entry models.PlanEntry, _, _ int) {
	p.started = append(p.started, entry.File.Name)
}
func (p *recordingPresenter) FileEnd(_ models.PlanEntry, result models.FetchResult) {
	p.ended = append(p.ended, result)
}
func (p *recordingPresenter) Progress(ev ProgressEvent) { p.progress = append(p.progress, ev) }
func (p *recordingPresenter) FinalSummary(_ *models.SyncResult, _ FilterSpec) {
	p.finalSummaries++
}

// stubConfirmer answers scripted responses in order; unscripted questions
// decline.
type stubConfirmer struct {
	answers   []bool
	questions []string
}

func (c *stubConfirmer) Confirm(question string) bool {
	c.questions = append(c.questions, question)
	if len(c.answers) == 0 {
		return false
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return answer
}

// stubPlanner — простой стаб Planner, не требует mockgen (избегаем цикл
// импортов с internal/mock).
type stubPlanner struct {
	plan      *PlanResult
	err       error
	gotFilter FilterSpec
}

func (s *stubPlanner) Plan(_ []models.FileInfo, _ string, filter FilterSpec) (*PlanResult, error) {
	s.gotFilter = filter
	if s.err != nil {
		return nil, s.err
	}
	if s.plan == nil {
		return &PlanResult{}, nil
	}
	return s.plan, nil
}

// stubFetcher returns scripted per-file results and records call order.
type stubFetcher struct {
	results map[string]models.FetchResult
	onFetch func(token *CancelToken, entry models.PlanEntry)
	fetched []string
}

func (s *stubFetcher) Fetch(token *CancelToken, entry models.PlanEntry) models.FetchResult {
	s.fetched = append(s.fetched, entry.File.Name)
	if s.onFetch != nil {
		s.onFetch(token, entry)
	}
	return s.results[entry.File.Name]
}

// memStore keeps file contents in a map; enough LocalStore for the fetcher.
type memStore struct {
	files map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{files: make(map[string][]byte)}
}

func (m *memStore) EnsureDirs() error { return nil }

func (m *memStore) Names(string) (map[string]struct{}, error) {
	names := make(map[string]struct{}, len(m.files))
	for name := range m.files {
		names[name] = struct{}{}
	}
	return names, nil
}

func (m *memStore) Sizes() (map[string]uint64, error) {
	sizes := make(map[string]uint64, len(m.files))
	for name, data := range m.files {
		sizes[name] = uint64(len(data))
	}
	return sizes, nil
}

func (m *memStore) SizeOf(name string) (uint64, error) {
	return uint64(len(m.files[name])), nil
}

func (m *memStore) OpenWrite(name string, resume bool) (io.WriteCloser, error) {
	if !resume {
		m.files[name] = nil
	}
	return &memFile{store: m, name: name}, nil
}

func (m *memStore) DownloadPath(name string) string { return name }

type memFile struct {
	store *memStore
	name  string
}

func (f *memFile) Write(p []byte) (int, error) {
	f.store.files[f.name] = append(f.store.files[f.name], p...)
	return len(p), nil
}

func (f *memFile) Close() error { return nil }

// stubServer serves scripted OpenRange replies and records requested
// offsets.
type openReply struct {
	resp func() *adapter.RangeResponse
	err  error
}

type stubServer struct {
	replies []openReply
	offsets []uint64
}

func (s *stubServer) TestConnection(context.Context) error { return nil }

func (s *stubServer) List(context.Context, string) ([]models.FileInfo, error) {
	return nil, nil
}

func (s *stubServer) OpenRange(_ context.Context, _ string, offset uint64) (*adapter.RangeResponse, error) {
	s.offsets = append(s.offsets, offset)
	if len(s.replies) == 0 {
		return nil, errors.New("unexpected OpenRange call")
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	if reply.err != nil {
		return nil, reply.err
	}
	return reply.resp(), nil
}

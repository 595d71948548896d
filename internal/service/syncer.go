// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-file-syncer/internal/adapter"
	"github.com/MKhiriev/go-file-syncer/internal/config"
	"github.com/MKhiriev/go-file-syncer/internal/logger"
	"github.com/MKhiriev/go-file-syncer/models"
)

type syncOrchestrator struct {
	server    adapter.ServerAdapter
	planner   Planner
	fetcher   Fetcher
	presenter Presenter
	confirmer Confirmer
	filter    FilterSpec
	log       *logger.Logger

	state models.RunState
	clock func() time.Time
}

// NewSyncer builds the run orchestrator.
func NewSyncer(server adapter.ServerAdapter, planner Planner, fetcher Fetcher, presenter Presenter, confirmer Confirmer, filterCfg config.Filter, log *logger.Logger) Syncer {
	return &syncOrchestrator{
		server:    server,
		planner:   planner,
		fetcher:   fetcher,
		presenter: presenter,
		confirmer: confirmer,
		filter: FilterSpec{
			Enabled:       filterCfg.Enabled,
			Pattern:       filterCfg.Pattern,
			CaseSensitive: filterCfg.CaseSensitive,
		},
		log:   log,
		state: models.StateIdle,
		clock: time.Now,
	}
}

// Sync runs the full sequence: filter confirmation, listing, planning,
// pre-transfer confirmation, sequential transfers, summary. Operator
// cancellation yields a cancelled result rather than an error; only listing
// failures are run-fatal.
func (s *syncOrchestrator) Sync(token *CancelToken, extension string) (*models.SyncResult, error) {
	result := &models.SyncResult{}
	filter := s.filter

	if !filter.Enabled {
		s.presenter.FilterDisabledWarning()
		if !s.confirmer.Confirm("Download ALL missing files without filtering?") {
			s.log.Info().Msg("filtering declined, nothing to do")
			s.transition(models.StateDone)
			s.presenter.FinalSummary(result, filter)
			return result, nil
		}
		// Explicit opt-in: proceed with an effectively match-all pattern.
		filter = FilterSpec{Enabled: true, Pattern: ".*"}
	}

	s.transition(models.StateListing)
	remote, err := s.server.List(token.Context(), extension)
	if err != nil {
		if token.Cancelled() {
			return s.cancelled(result, filter), nil
		}
		return nil, fmt.Errorf("fetch directory listing: %w", err)
	}
	if token.Cancelled() {
		return s.cancelled(result, filter), nil
	}

	s.transition(models.StatePlanning)
	plan, err := s.planner.Plan(remote, extension, filter)
	if err != nil {
		return nil, fmt.Errorf("compute download plan: %w", err)
	}
	result.FilteredOut = plan.FilteredOut
	if plan.PatternErr != nil {
		s.presenter.InvalidPatternWarning(filter.Pattern, plan.PatternErr)
	}

	if len(plan.Entries) == 0 {
		s.log.Info().Int("filtered_out", len(plan.FilteredOut)).Msg("nothing to download")
		s.transition(models.StateDone)
		s.presenter.FinalSummary(result, filter)
		return result, nil
	}

	s.transition(models.StateAwaitingConfirmation)
	estimate := plan.TotalBytes()
	s.presenter.PlanSummary(plan, estimate)
	if token.Cancelled() {
		return s.cancelled(result, filter), nil
	}
	if !s.confirmer.Confirm(fmt.Sprintf("Download %d file(s)?", len(plan.Entries))) {
		return nil, ErrConfirmationDeclined
	}

	s.transition(models.StateTransferring)
	result.StartedAt = s.clock()
	total := len(plan.Entries)
	for i, entry := range plan.Entries {
		if token.Cancelled() {
			break
		}

		s.presenter.FileStart(entry, i+1, total)
		fetched := s.fetcher.Fetch(token, entry)
		s.presenter.FileEnd(entry, fetched)

		result.TotalBytesMoved += fetched.BytesWritten
		if fetched.Status == models.FetchSuccess {
			result.Downloaded = append(result.Downloaded, entry.File.Name)
		} else {
			result.Failed = append(result.Failed, entry.File.Name)
		}
	}

	if token.Cancelled() {
		return s.cancelled(result, filter), nil
	}

	s.transition(models.StateSummarizing)
	s.presenter.FinalSummary(result, filter)
	s.transition(models.StateDone)
	return result, nil
}

// cancelled finishes a run that the operator interrupted: flush the
// summary, mark the result, report no error.
func (s *syncOrchestrator) cancelled(result *models.SyncResult, filter FilterSpec) *models.SyncResult {
	result.Cancelled = true
	s.transition(models.StateCancelled)
	s.log.Info().Msg("sync cancelled")
	s.presenter.FinalSummary(result, filter)
	return result
}

func (s *syncOrchestrator) transition(next models.RunState) {
	s.log.Debug().Stringer("from", s.state).Stringer("to", next).Msg("state transition")
	s.state = next
}

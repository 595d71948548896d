// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the synchronization core: reconciliation
// planning, resumable range fetching with retry, rate-limited progress
// tracking, and the orchestrator that drives one sync run end to end.
//
// The package depends on the adapter and store abstractions for I/O and on
// the Presenter/Confirmer ports for all operator interaction; it never
// formats terminal output directly.
package service

import (
	"time"

	"github.com/MKhiriev/go-file-syncer/models"
)

// Planner computes the download plan for one run by reconciling the remote
// listing against local filesystem state.
type Planner interface {
	// Plan splits remote into plan entries and filtered-out names.
	// A remote file is a candidate iff it is absent locally or present
	// with a smaller on-disk size (partial). Candidates then pass through
	// the name filter; with filtering disabled or a non-compiling
	// pattern every candidate is rejected. Input order is preserved.
	Plan(remote []models.FileInfo, extension string, filter FilterSpec) (*PlanResult, error)
}

// Fetcher transfers one plan entry to the download directory, resuming from
// the entry's byte offset and retrying transient failures up to the
// configured budget.
type Fetcher interface {
	Fetch(token *CancelToken, entry models.PlanEntry) models.FetchResult
}

// Syncer drives one complete sync run.
type Syncer interface {
	// Sync performs the listing-plan-confirm-transfer-summarize sequence
	// and returns the aggregated result. Operator cancellation yields a
	// result with Cancelled set, not an error; a declined pre-transfer
	// confirmation returns ErrConfirmationDeclined.
	Sync(token *CancelToken, extension string) (*models.SyncResult, error)
}

// Presenter receives structured run events and renders them for the
// operator. Implementations must be cheap and must never fail into the
// transfer path.
type Presenter interface {
	// Banner is shown once at startup with the effective endpoints.
	Banner(serverURL, localDir, downloadDir string)

	// FilterDisabledWarning announces the reject-all default before the
	// operator is asked whether to proceed with a match-all pattern.
	FilterDisabledWarning()

	// InvalidPatternWarning announces that pattern did not compile and
	// filtering degraded to reject-all for this run.
	InvalidPatternWarning(pattern string, err error)

	// PlanSummary shows the computed plan and the advisory byte estimate
	// before the pre-transfer confirmation.
	PlanSummary(plan *PlanResult, estimate uint64)

	// FileStart announces entry as transfer index (1-based) of total.
	FileStart(entry models.PlanEntry, index, total int)

	// FileEnd reports the terminal outcome of one entry.
	FileEnd(entry models.PlanEntry, result models.FetchResult)

	// Progress renders one rate-limited progress tick.
	Progress(ev ProgressEvent)

	// FinalSummary renders the aggregated run outcome.
	FinalSummary(result *models.SyncResult, filter FilterSpec)
}

// Confirmer asks the operator a yes/no question and blocks for the answer.
type Confirmer interface {
	Confirm(question string) bool
}

// FilterSpec is the effective name-filter configuration for one run.
type FilterSpec struct {
	Enabled       bool
	Pattern       string
	CaseSensitive bool
}

// PlanResult is the outcome of one planning pass.
type PlanResult struct {
	// Entries is the ordered download plan.
	Entries []models.PlanEntry

	// FilteredOut holds candidate names rejected by the filter, in
	// listing order.
	FilteredOut []string

	// Partials describes the resumable files found during planning, for
	// the plan summary.
	Partials []models.PartialDownload

	// PatternErr is the compile error when the pattern was invalid and
	// filtering degraded to reject-all; nil otherwise.
	PatternErr error
}

// TotalBytes returns the advisory pre-transfer estimate: the sum of
// remaining bytes over all entries.
func (r *PlanResult) TotalBytes() uint64 {
	var total uint64
	for _, e := range r.Entries {
		total += e.RemainingBytes()
	}
	return total
}

// ProgressEvent is one rendered-progress tick for a single transfer.
type ProgressEvent struct {
	// Name is the file being transferred.
	Name string

	// Current is the absolute byte position, including resumed bytes.
	Current uint64

	// Total is the expected final size; zero when the server did not
	// report one.
	Total uint64

	// Percent is Current/Total as 0-100, zero when Total is unknown.
	Percent float64

	// Speed is the average transfer rate in bytes per second since the
	// transfer started.
	Speed float64

	// ETA estimates the remaining time at the current speed. Valid only
	// when HasETA is true; indeterminate otherwise.
	ETA    time.Duration
	HasETA bool

	// Done marks the final tick of a transfer.
	Done bool
}

package models

import "time"

// FetchStatus is the terminal outcome of a single fetch call.
// Every fetch produces exactly one of these values.
type FetchStatus int

const (
	// FetchSuccess means the file was transferred completely and the
	// on-disk length covers the expected total size.
	FetchSuccess FetchStatus = iota

	// FetchFailed means the transfer did not complete: retries were
	// exhausted, or the final on-disk length was short of the expected
	// total (truncated transfer).
	FetchFailed

	// FetchCancelled means the operator requested termination while the
	// transfer was in flight. The partial file is left intact for a
	// future resume.
	FetchCancelled
)

// String implements fmt.Stringer.
func (s FetchStatus) String() string {
	switch s {
	case FetchSuccess:
		return "success"
	case FetchFailed:
		return "failed"
	case FetchCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// FetchResult reports the outcome of one fetch call together with the number
// of bytes actually written to disk during that call, across all attempts.
type FetchResult struct {
	Status       FetchStatus `json:"status"`
	BytesWritten uint64      `json:"bytes_written"`
}

// SyncResult aggregates the outcome of one sync run. It is owned exclusively
// by the orchestrator for the duration of the run and discarded afterwards.
type SyncResult struct {
	// Downloaded holds the names of successfully transferred files, in
	// transfer order.
	Downloaded []string `json:"downloaded"`

	// Failed holds the names of files whose transfer did not succeed, in
	// transfer order. A rerun resumes these from the bytes on disk.
	Failed []string `json:"failed"`

	// FilteredOut holds the names of candidates rejected by the name
	// filter, in listing order.
	FilteredOut []string `json:"filtered_out"`

	// TotalBytesMoved counts bytes actually written to disk during the
	// run, independent of the pre-transfer estimate.
	TotalBytesMoved uint64 `json:"total_bytes_moved"`

	// StartedAt marks the beginning of the transfer phase.
	StartedAt time.Time `json:"started_at"`

	// Cancelled is set when the operator interrupted the run.
	Cancelled bool `json:"cancelled"`
}

// OK reports whether the run completed with every planned transfer
// succeeding and no cancellation.
func (r *SyncResult) OK() bool {
	return !r.Cancelled && len(r.Failed) == 0
}

// Elapsed returns the wall-clock duration since the transfer phase started,
// or zero if no transfer was attempted.
func (r *SyncResult) Elapsed() time.Duration {
	if r.StartedAt.IsZero() {
		return 0
	}
	return time.Since(r.StartedAt)
}

// AverageSpeed returns the mean transfer rate in bytes per second over the
// whole run, or zero when nothing was moved.
func (r *SyncResult) AverageSpeed() float64 {
	elapsed := r.Elapsed().Seconds()
	if elapsed <= 0 || r.TotalBytesMoved == 0 {
		return 0
	}
	return float64(r.TotalBytesMoved) / elapsed
}

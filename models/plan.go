package models

// PlanEntry is one unit of the download plan computed for a sync run.
// Entries are computed once per run and consumed once, in listing order.
type PlanEntry struct {
	// File is the remote descriptor this entry will transfer.
	File FileInfo `json:"file"`

	// ResumeFrom is the byte offset the transfer starts at: zero for a
	// fresh download, the current on-disk length for a resumption.
	ResumeFrom uint64 `json:"resume_from"`
}

// IsResume reports whether the entry continues a partial download.
func (e PlanEntry) IsResume() bool {
	return e.ResumeFrom > 0
}

// RemainingBytes returns the advisory number of bytes left to transfer for
// this entry. The actual number moved is accounted per fetch call, because a
// resumed transfer may turn into a full restart.
func (e PlanEntry) RemainingBytes() uint64 {
	if e.File.Size < e.ResumeFrom {
		return 0
	}
	return e.File.Size - e.ResumeFrom
}

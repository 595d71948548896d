package models

// FileInfo is an immutable snapshot of a single entry in the remote
// directory listing at the moment the listing was fetched. It carries no
// local identity; a new snapshot is produced on every sync run.
type FileInfo struct {
	// Name is the file name exactly as it appears in the listing.
	Name string `json:"name"`

	// URL is the absolute download URL for this file.
	URL string `json:"url"`

	// Size is the remote file size in bytes as reported by the listing.
	Size uint64 `json:"size"`

	// LastModified is the modification date cell of the listing, kept as
	// an opaque string. It is shown to the operator but never compared.
	LastModified string `json:"last_modified"`
}

// PartialDownload describes a locally present file that is shorter than its
// remote counterpart. It is derived during planning and never persisted.
// Invariant: LocalSize < RemoteSize.
type PartialDownload struct {
	// Name is the file name shared by the local and remote copy.
	Name string `json:"name"`

	// LocalSize is the current on-disk length in bytes.
	LocalSize uint64 `json:"local_size"`

	// RemoteSize is the full size reported by the remote listing.
	RemoteSize uint64 `json:"remote_size"`

	// PercentComplete is LocalSize/RemoteSize expressed as 0–100.
	PercentComplete float64 `json:"percent_complete"`
}

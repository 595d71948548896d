package models

// RunState tracks where a sync run currently is in its lifecycle.
// The normal progression is Idle → Listing → Planning →
// AwaitingConfirmation → Transferring → Summarizing → Done.
// StateCancelled is reachable from every state except StateDone; once
// entered, the run only flushes the current file and produces a summary.
type RunState int

const (
	StateIdle RunState = iota
	StateListing
	StatePlanning
	StateAwaitingConfirmation
	StateTransferring
	StateSummarizing
	StateDone
	StateCancelled
)

// String implements fmt.Stringer.
func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateListing:
		return "listing"
	case StatePlanning:
		return "planning"
	case StateAwaitingConfirmation:
		return "awaiting_confirmation"
	case StateTransferring:
		return "transferring"
	case StateSummarizing:
		return "summarizing"
	case StateDone:
		return "done"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

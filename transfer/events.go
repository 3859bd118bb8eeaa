package transfer

// Status is the lifecycle state of a transfer job.
type Status int

const (
	// StatusIdle means no job has run or the last one was consumed
	StatusIdle Status = iota

	// StatusRunning means a job is in flight
	StatusRunning

	// StatusCompleted means the last job sent every word
	StatusCompleted

	// StatusFailed means the last job aborted on an error
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// EventKind discriminates the events a job publishes.
type EventKind int

const (
	// EventSending is published before a word's command goes out
	EventSending EventKind = iota

	// EventSent is published after a word's command was delivered,
	// carrying the firmware's response (possibly empty on timeout)
	EventSent

	// EventCompleted is the final summary of a successful job
	EventCompleted

	// EventFailed is the final event of an aborted job
	EventFailed
)

// Event is one progress notification from a running job. Events are
// delivered in order on the channel returned by Start; the channel is
// closed after the terminal EventCompleted or EventFailed.
type Event struct {
	// Kind discriminates the event
	Kind EventKind

	// Index is the 0-based word index (Sending, Sent, Failed)
	Index int

	// Command is the formatted wire line (Sending, Sent, Failed)
	Command string

	// Response is the firmware reply; empty means no answer (Sent)
	Response string

	// Count is the number of words sent (Completed)
	Count int

	// Checksum is the image fingerprint (Completed)
	Checksum uint16

	// Err is the terminal *TransferError (Failed)
	Err error
}

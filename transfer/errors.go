package transfer

import (
	"errors"
	"fmt"
)

// ErrBusy is returned by Start while a previous job is still running.
var ErrBusy = errors.New("a transfer is already running")

// ErrNoImage is returned by Start when no gamma image is supplied.
var ErrNoImage = errors.New("no gamma image loaded")

// TransferError reports a transport failure during a bulk upload. The
// job stops at Index; words before it were written and are not rolled
// back.
type TransferError struct {
	// Index is the 0-based word index the failure occurred at
	Index int

	// Command is the line that could not be delivered
	Command string

	// Err is the underlying transport error
	Err error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("gamma upload failed at index %d: %v", e.Index, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

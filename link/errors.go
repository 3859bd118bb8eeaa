package link

import (
	"errors"
	"fmt"
)

// ErrNotConnected is returned when a command is attempted with no open
// connection. It is fatal to that single operation only.
var ErrNotConnected = errors.New("not connected to device")

// ConnectionError indicates the physical link could not be opened or
// initialized.
type ConnectionError struct {
	// Port is the port identifier the open was attempted on
	Port string

	// Err is the underlying cause
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to open port %s: %v", e.Port, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

package protocol

import "fmt"

// InvalidInputError indicates a value that could not be parsed in the
// encoding its namespace requires.
type InvalidInputError struct {
	// Value is the rejected input as supplied by the caller
	Value string

	// Reason describes why the value was rejected
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Value, e.Reason)
}

// OutOfRangeError indicates a parseable signed value outside the bound
// of its namespace.
type OutOfRangeError struct {
	// Value is the parsed value
	Value int

	// Min and Max are the inclusive namespace bounds
	Min int
	Max int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("value %d out of range: must be between %d and %d", e.Value, e.Min, e.Max)
}

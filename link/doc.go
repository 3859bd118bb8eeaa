// Package link owns the serial connection to the CrossLink demo board
// and implements the command/response cycle of its ASCII console.
//
// # Basic Usage
//
//	l, err := link.Connect("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer l.Close()
//
//	resp, err := l.ReadSensorReg(protocol.RegAnalogGain)
//
// Connect opens the port at 115200 8N1, waits a short settle delay and
// silences unsolicited firmware chatter with "V OFF". Exactly one
// connection is held per Link; Close is idempotent.
//
// # Command/Response Cycle
//
// SendCommand writes one CR LF terminated line and polls for a reply
// until the response timeout elapses. The first non-empty line, with
// its '>' prompt marker and surrounding whitespace stripped, is the
// response. A timeout is not an error: SendCommand returns the empty
// string with a nil error, and callers interpret that as "no answer".
//
// A mutex serializes commands, so a bulk gamma upload in flight holds
// the port for the duration of each command and observers must not
// interleave traffic of their own.
//
// # Hardware Independence
//
// The Link talks to any Device (io.ReadWriter + Close). Connect wires
// in a go.bug.st/serial port; NewWithDevice accepts an injected
// transport for tests and simulations. A Device whose Read returns
// (0, nil) is treated as a poll tick, matching serial read timeout
// semantics.
package link

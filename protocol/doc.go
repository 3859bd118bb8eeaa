// Package protocol implements the ASCII command protocol spoken by the
// CrossLink demo firmware over its UART console.
//
// # Protocol Overview
//
// Commands are single CR LF terminated lines of the form:
//
//	<NS> <OP> <ADDR> [VALUE]
//
// Where:
//   - NS = one-letter namespace selecting the target subsystem
//     (S sensor register, C color correction matrix, T translation
//     matrix, F FPGA address space, G preset gamma, V verbosity)
//   - OP = R (read), W (write) or U (upload trigger, CCM only)
//   - ADDR = namespace-scoped hex token
//   - VALUE = uppercase hex (S/F/G) or signed decimal (C/T)
//
// Responses are free-text lines; the firmware prefixes some of them
// with a '>' prompt marker which the link layer strips.
//
// # Command Builders
//
// Use the Build* functions to create command lines:
//
//	line, err := protocol.BuildSensorWrite("0157", "0x1F") // "S W 0157 1F"
//	line, err := protocol.BuildCCMWrite("05", "+07")       // "C W 05 7"
//
// Builders normalize and validate their operands; a line is never built
// from a value the firmware would reject. Validation failures are
// reported as *InvalidInputError or *OutOfRangeError.
//
// # Value Conversion
//
// NormalizeHex and FormatSigned implement the two wire encodings;
// DisplayHex and DisplayWord convert firmware responses back into the
// form shown to the operator.
package protocol

package link

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"go.bug.st/serial"

	"github.com/KevinBeach/crosslinkdemo-console/protocol"
)

// Device is the byte-level transport the Link talks through. Connect
// provides a serial port implementation; tests and simulations inject
// their own. Read should return (0, nil) when no data arrives within
// the transport's own read timeout.
type Device interface {
	io.ReadWriter
	Close() error
}

// drainer is implemented by transports that can block until buffered
// output reaches the device. Flushing is best-effort.
type drainer interface {
	Drain() error
}

// Link owns the connection to the demo board. Exactly one connection
// is held at a time; all commands are serialized on an internal mutex,
// so a bulk upload in progress excludes competing traffic.
type Link struct {
	cfg  Config
	port string

	// cmdMu serializes the write/poll cycle of SendCommand.
	cmdMu   sync.Mutex
	pending []byte

	// stateMu guards dev so Close can race an in-flight command.
	stateMu sync.Mutex
	dev     Device
}

// Connect opens the named serial port at the configured baud rate,
// waits the settle delay, and silences unsolicited firmware output
// with a "V OFF" command. Any open or initialization failure is
// reported as a *ConnectionError carrying the underlying cause.
func Connect(port string, opts ...Option) (*Link, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p, err := serial.Open(port, &serial.Mode{BaudRate: cfg.BaudRate})
	if err != nil {
		return nil, &ConnectionError{Port: port, Err: err}
	}
	if err := p.SetReadTimeout(cfg.PollInterval); err != nil {
		_ = p.Close()
		return nil, &ConnectionError{Port: port, Err: err}
	}

	l := &Link{cfg: cfg, port: port, dev: p}

	// Give the firmware a moment to settle before the first command.
	time.Sleep(cfg.SettleDelay)

	if _, err := l.SendCommand(protocol.BuildVerboseOff()); err != nil {
		l.Close()
		return nil, &ConnectionError{Port: port, Err: err}
	}

	l.logInfo("connected", "port", port, "baud", cfg.BaudRate)
	return l, nil
}

// NewWithDevice wraps an already-open transport. No settle delay is
// applied and no initialization command is sent; the caller owns device
// setup.
func NewWithDevice(dev Device, opts ...Option) *Link {
	if dev == nil {
		panic("device cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Link{cfg: cfg, dev: dev}
}

// Close shuts the connection down. It is idempotent and never fails:
// close-time transport errors are logged, not surfaced. Closing while
// a bulk transfer is running makes its next command fail, which the
// transfer engine treats as fatal for the job.
func (l *Link) Close() {
	l.stateMu.Lock()
	dev := l.dev
	l.dev = nil
	l.stateMu.Unlock()

	if dev == nil {
		return
	}
	if err := dev.Close(); err != nil {
		l.logError("close failed", "port", l.port, "error", err)
		return
	}
	l.logInfo("disconnected", "port", l.port)
}

// IsConnected reports whether the Link currently holds an open
// connection.
func (l *Link) IsConnected() bool {
	return l.device() != nil
}

// Port returns the port identifier this Link was connected on, or the
// empty string for injected devices.
func (l *Link) Port() string {
	return l.port
}

// SendCommand writes one command line and returns the first non-empty
// response line, with the '>' prompt marker and surrounding whitespace
// stripped. If no reply arrives before the response timeout elapses it
// returns the empty string with a nil error; callers interpret that as
// "no answer", not a failure.
//
// Errors are returned only for a missing connection (ErrNotConnected)
// or a transport-level write/read failure.
func (l *Link) SendCommand(cmd string) (string, error) {
	l.cmdMu.Lock()
	defer l.cmdMu.Unlock()

	dev := l.device()
	if dev == nil {
		return "", ErrNotConnected
	}

	l.logDebug("send", "command", cmd)

	if _, err := io.WriteString(dev, cmd+"\r\n"); err != nil {
		return "", fmt.Errorf("write command: %w", err)
	}
	if d, ok := dev.(drainer); ok {
		_ = d.Drain()
	}

	deadline := time.Now().Add(l.cfg.Timeout)
	buf := make([]byte, 256)

	for {
		for {
			line, ok := l.nextLine()
			if !ok {
				break
			}
			if text := cleanResponse(line); text != "" {
				l.logDebug("recv", "command", cmd, "response", text)
				return text, nil
			}
		}

		if !time.Now().Before(deadline) {
			l.logDebug("no answer", "command", cmd)
			return "", nil
		}

		n, err := dev.Read(buf)
		if err != nil {
			return "", fmt.Errorf("read response: %w", err)
		}
		if n == 0 {
			// Poll tick without data; loop re-checks the deadline.
			continue
		}
		l.pending = append(l.pending, buf[:n]...)
	}
}

// device returns the current transport under the state lock.
func (l *Link) device() Device {
	l.stateMu.Lock()
	defer l.stateMu.Unlock()
	return l.dev
}

// nextLine extracts one newline-terminated line from the pending
// buffer. Partial trailing data stays buffered for the next poll.
func (l *Link) nextLine() ([]byte, bool) {
	for i, b := range l.pending {
		if b == '\n' {
			line := make([]byte, i)
			copy(line, l.pending[:i])
			l.pending = l.pending[i+1:]
			return line, true
		}
	}
	return nil, false
}

// cleanResponse decodes a raw response line permissively: non-ASCII
// bytes are dropped, then the leading '>' prompt run and surrounding
// whitespace are stripped.
func cleanResponse(raw []byte) string {
	ascii := make([]byte, 0, len(raw))
	for _, b := range raw {
		if b < 0x80 {
			ascii = append(ascii, b)
		}
	}

	text := strings.TrimSpace(string(ascii))
	text = strings.TrimLeft(text, "> ")
	return strings.TrimSpace(text)
}

func (l *Link) logDebug(msg string, keysAndValues ...interface{}) {
	if l.cfg.Logger != nil {
		l.cfg.Logger.Debug(msg, keysAndValues...)
	}
}

func (l *Link) logInfo(msg string, keysAndValues ...interface{}) {
	if l.cfg.Logger != nil {
		l.cfg.Logger.Info(msg, keysAndValues...)
	}
}

func (l *Link) logError(msg string, keysAndValues ...interface{}) {
	if l.cfg.Logger != nil {
		l.cfg.Logger.Error(msg, keysAndValues...)
	}
}

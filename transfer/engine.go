package transfer

import (
	"context"
	"fmt"
	"sync"

	"github.com/KevinBeach/crosslinkdemo-console/link"
	"github.com/KevinBeach/crosslinkdemo-console/memfile"
	"github.com/KevinBeach/crosslinkdemo-console/protocol"
)

// Commander is the slice of the link the engine needs. *link.Link
// satisfies it; tests substitute a recording stub.
type Commander interface {
	// SendCommand performs one command/response cycle
	SendCommand(cmd string) (string, error)

	// IsConnected reports whether the transport is open
	IsConnected() bool
}

// Engine owns the bulk gamma upload. One job runs at a time; starting
// a second while the first is running is rejected with ErrBusy.
type Engine struct {
	link Commander
	cfg  Config

	mu      sync.Mutex
	status  Status
	index   int
	lastErr error
}

// New creates an Engine bound to the given link.
func New(l Commander, opts ...Option) *Engine {
	if l == nil {
		panic("link cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{link: l, cfg: cfg}
}

// Start begins uploading the image on a worker goroutine and returns
// the job's ordered event channel. The channel is closed after the
// terminal EventCompleted or EventFailed.
//
// Preconditions: the image must be non-nil and the link connected;
// violations are rejected without state change. While the job runs the
// caller must not issue competing commands through the same link.
func (e *Engine) Start(ctx context.Context, img *memfile.Image) (<-chan Event, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	if !e.link.IsConnected() {
		return nil, link.ErrNotConnected
	}

	e.mu.Lock()
	if e.status == StatusRunning {
		e.mu.Unlock()
		return nil, ErrBusy
	}
	e.status = StatusRunning
	e.index = 0
	e.lastErr = nil
	e.mu.Unlock()

	events := make(chan Event, e.cfg.EventBuffer)
	go e.run(ctx, img, events)

	e.logInfo("gamma upload started", "words", memfile.WordCount, "checksum", fmt.Sprintf("0x%04X", img.Checksum()))
	return events, nil
}

// Status returns the current job state.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Index returns the index of the word most recently attempted.
func (e *Engine) Index() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.index
}

// Err returns the terminal error of the last job, or nil.
func (e *Engine) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// run executes one job. Addresses start at the configured base and
// advance by the word stride; a transport error aborts the remaining
// indices with no retry and no rollback.
func (e *Engine) run(ctx context.Context, img *memfile.Image, events chan<- Event) {
	defer close(events)

	base := e.cfg.BaseAddress

	for i := 0; i < memfile.WordCount; i++ {
		if err := ctx.Err(); err != nil {
			e.fail(ctx, events, i, "", fmt.Errorf("cancelled: %w", err))
			return
		}

		addr := fmt.Sprintf("%X", base)
		data := fmt.Sprintf("%08X", img.Word(i))
		cmd, err := protocol.BuildFpgaWrite(addr, e.cfg.SubOffset, data)
		if err != nil {
			e.fail(ctx, events, i, "", err)
			return
		}

		e.setIndex(i)
		e.emit(ctx, events, Event{Kind: EventSending, Index: i, Command: cmd})

		resp, err := e.link.SendCommand(cmd)
		if err != nil {
			e.fail(ctx, events, i, cmd, err)
			return
		}

		// An empty response is a per-command timeout, not a failure;
		// the write is assumed delivered and the upload continues.
		e.emit(ctx, events, Event{Kind: EventSent, Index: i, Command: cmd, Response: resp})

		base += protocol.GammaWordStride
	}

	e.mu.Lock()
	e.status = StatusCompleted
	e.mu.Unlock()

	e.emit(ctx, events, Event{Kind: EventCompleted, Count: memfile.WordCount, Checksum: img.Checksum()})
	e.logInfo("gamma upload complete", "words", memfile.WordCount)
}

// fail records the terminal error, publishes the Failed event and
// leaves already-written words in place.
func (e *Engine) fail(ctx context.Context, events chan<- Event, index int, cmd string, cause error) {
	terr := &TransferError{Index: index, Command: cmd, Err: cause}

	e.mu.Lock()
	e.status = StatusFailed
	e.index = index
	e.lastErr = terr
	e.mu.Unlock()

	e.emit(ctx, events, Event{Kind: EventFailed, Index: index, Command: cmd, Err: terr})
	e.logError("gamma upload failed", "index", index, "error", cause)
}

func (e *Engine) setIndex(i int) {
	e.mu.Lock()
	e.index = i
	e.mu.Unlock()
}

// emit delivers an event in order. Delivery is preferred even when the
// context is already dead; only a full channel with a dead context
// drops the event.
func (e *Engine) emit(ctx context.Context, events chan<- Event, ev Event) {
	select {
	case events <- ev:
	default:
		select {
		case events <- ev:
		case <-ctx.Done():
		}
	}
}

func (e *Engine) logInfo(msg string, keysAndValues ...interface{}) {
	if e.cfg.Logger != nil {
		e.cfg.Logger.Info(msg, keysAndValues...)
	}
}

func (e *Engine) logError(msg string, keysAndValues ...interface{}) {
	if e.cfg.Logger != nil {
		e.cfg.Logger.Error(msg, keysAndValues...)
	}
}

package transfer

import (
	"github.com/KevinBeach/crosslinkdemo-console/link"
	"github.com/KevinBeach/crosslinkdemo-console/memfile"
	"github.com/KevinBeach/crosslinkdemo-console/protocol"
)

// Config holds the engine configuration.
type Config struct {
	// BaseAddress is the FPGA address of LUT word 0
	BaseAddress uint32

	// SubOffset is the fixed 2-digit sub-offset of every write
	SubOffset string

	// EventBuffer is the capacity of the event channel
	EventBuffer int

	// Logger is used for logging job progress (optional)
	Logger link.Logger
}

// defaultConfig returns the default configuration: the demo firmware's
// gamma base address with an event buffer large enough to hold a full
// job's events without blocking the worker.
func defaultConfig() Config {
	return Config{
		BaseAddress: protocol.GammaBaseAddr,
		SubOffset:   protocol.DefaultSubOffset,
		EventBuffer: 2*memfile.WordCount + 2,
	}
}

// Option is a functional option for configuring the Engine.
type Option func(*Config)

// WithBaseAddress overrides the FPGA address LUT word 0 is written to.
func WithBaseAddress(addr uint32) Option {
	return func(c *Config) {
		c.BaseAddress = addr
	}
}

// WithSubOffset overrides the fixed sub-offset token.
func WithSubOffset(sub string) Option {
	return func(c *Config) {
		if sub != "" {
			c.SubOffset = sub
		}
	}
}

// WithEventBuffer sets the event channel capacity. A slow consumer
// with a smaller buffer back-pressures the upload rather than dropping
// events.
func WithEventBuffer(n int) Option {
	return func(c *Config) {
		if n >= 0 {
			c.EventBuffer = n
		}
	}
}

// WithLogger sets a logger for job lifecycle and failures.
func WithLogger(logger link.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

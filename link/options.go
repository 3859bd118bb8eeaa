package link

import "time"

// Config holds the link configuration.
type Config struct {
	// BaudRate is the serial line rate
	BaudRate int

	// Timeout bounds how long SendCommand waits for a reply
	Timeout time.Duration

	// SettleDelay is the pause after opening the port before the first
	// command, giving the firmware time to finish its banner
	SettleDelay time.Duration

	// PollInterval is the read timeout of a single poll of the port
	PollInterval time.Duration

	// Logger is used for logging operations (optional)
	Logger Logger
}

// defaultConfig returns the default configuration matching the demo
// firmware: 115200 baud, 1 second response timeout, 100ms settle delay.
func defaultConfig() Config {
	return Config{
		BaudRate:     115200,
		Timeout:      time.Second,
		SettleDelay:  100 * time.Millisecond,
		PollInterval: 50 * time.Millisecond,
	}
}

// Option is a functional option for configuring the Link.
type Option func(*Config)

// WithBaudRate sets the serial line rate.
func WithBaudRate(baud int) Option {
	return func(c *Config) {
		if baud > 0 {
			c.BaudRate = baud
		}
	}
}

// WithTimeout sets the per-command response timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.Timeout = timeout
		}
	}
}

// WithSettleDelay sets the pause between opening the port and sending
// the first command.
func WithSettleDelay(delay time.Duration) Option {
	return func(c *Config) {
		if delay >= 0 {
			c.SettleDelay = delay
		}
	}
}

// WithPollInterval sets the read timeout of a single port poll. Shorter
// intervals react faster to the response deadline at the cost of more
// wakeups.
func WithPollInterval(interval time.Duration) Option {
	return func(c *Config) {
		if interval > 0 {
			c.PollInterval = interval
		}
	}
}

// WithLogger sets a logger for link operations.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

package hidio

import (
	"fmt"
	"log/slog"
	"sync"
)

// DefaultAttempts is the write budget per Send call.
const DefaultAttempts = 3

// Conn is a device connection with retry. A failed write closes the stale
// handle and reopens the device before the next attempt; the final attempt
// fails without a trailing reconnect so the caller decides what happens
// next.
type Conn struct {
	transport Transport
	vendorID  uint16
	productID uint16
	attempts  int
	log       *slog.Logger

	mu  sync.Mutex
	dev Device
}

// Option adjusts a Conn before the first open.
type Option func(*Conn)

// WithAttempts overrides the per-send write budget. Values below one are
// ignored.
func WithAttempts(n int) Option {
	return func(c *Conn) {
		if n > 0 {
			c.attempts = n
		}
	}
}

// WithLogger routes connection events to the given logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Conn) {
		if l != nil {
			c.log = l
		}
	}
}

// Dial opens the device once and returns the connection. The id pair is
// remembered for reconnects.
func Dial(t Transport, vendorID, productID uint16, opts ...Option) (*Conn, error) {
	c := &Conn{
		transport: t,
		vendorID:  vendorID,
		productID: productID,
		attempts:  DefaultAttempts,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	dev, err := t.Open(vendorID, productID)
	if err != nil {
		return nil, err
	}
	c.dev = dev
	return c, nil
}

// Send writes data to the device. Each failed write drops the handle and
// reopens the device before the next attempt. When a reconnect itself
// fails its error is returned immediately; when every attempt fails the
// error carries both the exhaustion sentinel and the last write error.
func (c *Conn) Send(data []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dev == nil {
		return 0, fmt.Errorf("%w: no open handle, reconnect first", ErrDeviceNotFound)
	}

	var lastErr error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		n, err := c.dev.Write(data)
		if err == nil {
			return n, nil
		}
		lastErr = err
		c.log.Warn("hid write failed",
			"attempt", attempt,
			"attempts", c.attempts,
			"error", err,
		)
		if attempt == c.attempts {
			break
		}
		if err := c.reconnectLocked(); err != nil {
			return 0, err
		}
	}
	return 0, fmt.Errorf("%w after %d attempts: %w", ErrSendExhausted, c.attempts, lastErr)
}

// Reconnect drops the current handle and reopens the device.
func (c *Conn) Reconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reconnectLocked()
}

func (c *Conn) reconnectLocked() error {
	if c.dev != nil {
		if err := c.dev.Close(); err != nil {
			c.log.Warn("closing stale handle failed", "error", err)
		}
		c.dev = nil
	}
	dev, err := c.transport.Open(c.vendorID, c.productID)
	if err != nil {
		return fmt.Errorf("reconnect: %w", err)
	}
	c.dev = dev
	c.log.Debug("device reopened", "device", fmt.Sprintf("%04x:%04x", c.vendorID, c.productID))
	return nil
}

// Close releases the device handle. Safe to call more than once.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dev == nil {
		return nil
	}
	err := c.dev.Close()
	c.dev = nil
	return err
}

package dualsense

import (
	"log/slog"
	"sync"

	"github.com/ds5tools/ds5ctl/hidio"
)

// Controller pairs an output report with the connection that delivers it.
// All methods are safe for concurrent use; mutation goes through Apply so
// an invalid change never replaces the held state.
type Controller struct {
	conn *hidio.Conn
	log  *slog.Logger

	mu          sync.Mutex
	report      OutputReport
	lastWritten int
}

// NewController wraps an open connection. The held report starts at the
// defaults with the DS5 operating mode selected, so a bare Send already
// addresses the native personality.
func NewController(conn *hidio.Conn, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	report := *NewOutputReport()
	report.OperatingMode.Set(ModeDS5, true)
	return &Controller{
		conn:   conn,
		log:    logger,
		report: report,
	}
}

// Snapshot returns a copy of the held report.
func (c *Controller) Snapshot() OutputReport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.report
}

// Apply mutates the held report through fn. The change is validated on a
// copy first; on failure the held state is untouched and the error is
// returned.
func (c *Controller) Apply(fn func(*OutputReport)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.report
	fn(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	c.report = next
	return nil
}

// Encode renders the held report as its 64-byte payload.
func (c *Controller) Encode() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.report.Encode()
}

// EncodeHex renders the held report as a hex string.
func (c *Controller) EncodeHex() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.report.EncodeHex()
}

// Send encodes the held report and writes it to the device.
func (c *Controller) Send() (int, error) {
	return c.SendRaw(c.Encode())
}

// SendRaw writes an arbitrary payload to the device, fitted to the full
// report size. Short payloads address the leading fields only.
func (c *Controller) SendRaw(data []byte) (int, error) {
	padded := FitReport(data)
	n, err := c.conn.Send(padded)
	if err != nil {
		return n, err
	}
	c.mu.Lock()
	c.lastWritten = n
	c.mu.Unlock()
	c.log.Debug("report written", "bytes", n)
	return n, nil
}

// LastWritten returns the byte count of the most recent successful write.
func (c *Controller) LastWritten() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastWritten
}

// Reconnect drops and reopens the underlying device handle.
func (c *Controller) Reconnect() error {
	return c.conn.Reconnect()
}

// Close releases the underlying device handle.
func (c *Controller) Close() error {
	return c.conn.Close()
}

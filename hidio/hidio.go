// Package hidio wraps raw HID access behind small contracts so the send
// path can be exercised against scripted fakes. The production Transport
// is HIDAPI; Conn layers retry-with-reconnect on top of whichever
// Transport opened the device.
package hidio

import "errors"

var (
	// ErrDeviceNotFound reports that no device matched the requested
	// vendor/product pair, or that a connection has no open handle.
	ErrDeviceNotFound = errors.New("hid device not found")

	// ErrSendExhausted reports that a write failed on every attempt of
	// the retry budget.
	ErrSendExhausted = errors.New("send attempts exhausted")
)

// Device is one open HID handle.
type Device interface {
	Write(p []byte) (int, error)
	Close() error
}

// Transport opens devices by vendor/product id.
type Transport interface {
	Open(vendorID, productID uint16) (Device, error)
}

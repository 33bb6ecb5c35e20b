package hidio_test

import (
	"errors"
	"testing"

	"github.com/ds5tools/ds5ctl/hidio"
	ds5testing "github.com/ds5tools/ds5ctl/internal/testing"
	"github.com/stretchr/testify/assert"
)

func TestSendFirstAttemptSucceeds(t *testing.T) {
	transport := &ds5testing.FakeTransport{}
	conn, err := hidio.Dial(transport, 0x054C, 0x0CE6)
	if !assert.NoError(t, err) {
		return
	}

	payload := []byte{0x02, 0x00, 0x01}
	n, err := conn.Send(payload)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, len(payload), n)
	assert.Len(t, transport.Device.Writes, 1)
	assert.Equal(t, 1, transport.Opens)
}

func TestSendRetriesTransientFailure(t *testing.T) {
	errWrite := errors.New("pipe broke")
	device := &ds5testing.FakeDevice{WriteErrs: []error{errWrite, errWrite}}
	transport := &ds5testing.FakeTransport{Device: device}

	conn, err := hidio.Dial(transport, 0x054C, 0x0CE6)
	if !assert.NoError(t, err) {
		return
	}

	payload := []byte{0x02, 0x00, 0x01}
	n, err := conn.Send(payload)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, len(payload), n)

	// Two failures, one success; each failure dropped and reopened the handle.
	assert.Len(t, device.Writes, 3)
	assert.Equal(t, 3, transport.Opens)
	assert.Equal(t, 2, device.Closed)
}

func TestSendExhaustsRetryBudget(t *testing.T) {
	errWrite := errors.New("pipe broke")
	device := &ds5testing.FakeDevice{WriteErrs: []error{errWrite, errWrite, errWrite}}
	transport := &ds5testing.FakeTransport{Device: device}

	conn, err := hidio.Dial(transport, 0x054C, 0x0CE6)
	if !assert.NoError(t, err) {
		return
	}

	_, err = conn.Send([]byte{0x02})
	assert.ErrorIs(t, err, hidio.ErrSendExhausted)
	assert.ErrorIs(t, err, errWrite)

	// The final attempt fails without a trailing reconnect.
	assert.Len(t, device.Writes, 3)
	assert.Equal(t, 3, transport.Opens)
	assert.Equal(t, 2, device.Closed)
}

func TestSendReconnectFailureSurfaces(t *testing.T) {
	errWrite := errors.New("pipe broke")
	errOpen := errors.New("device vanished")
	device := &ds5testing.FakeDevice{WriteErrs: []error{errWrite}}
	transport := &ds5testing.FakeTransport{Device: device, OpenErrs: []error{nil, errOpen}}

	conn, err := hidio.Dial(transport, 0x054C, 0x0CE6)
	if !assert.NoError(t, err) {
		return
	}

	_, err = conn.Send([]byte{0x02})
	assert.ErrorIs(t, err, errOpen)
	assert.NotErrorIs(t, err, hidio.ErrSendExhausted)

	assert.Len(t, device.Writes, 1)
	assert.Equal(t, 2, transport.Opens)
	assert.Equal(t, 1, device.Closed)
}

func TestSendWithSingleAttempt(t *testing.T) {
	errWrite := errors.New("pipe broke")
	device := &ds5testing.FakeDevice{WriteErrs: []error{errWrite}}
	transport := &ds5testing.FakeTransport{Device: device}

	conn, err := hidio.Dial(transport, 0x054C, 0x0CE6, hidio.WithAttempts(1))
	if !assert.NoError(t, err) {
		return
	}

	_, err = conn.Send([]byte{0x02})
	assert.ErrorIs(t, err, hidio.ErrSendExhausted)
	assert.Len(t, device.Writes, 1)
	assert.Equal(t, 1, transport.Opens)
}

func TestDialOpenFailure(t *testing.T) {
	errOpen := errors.New("device vanished")
	transport := &ds5testing.FakeTransport{OpenErrs: []error{errOpen}}

	conn, err := hidio.Dial(transport, 0x054C, 0x0CE6)
	assert.Nil(t, conn)
	assert.ErrorIs(t, err, errOpen)
}

func TestSendAfterClose(t *testing.T) {
	transport := &ds5testing.FakeTransport{}
	conn, err := hidio.Dial(transport, 0x054C, 0x0CE6)
	if !assert.NoError(t, err) {
		return
	}

	assert.NoError(t, conn.Close())
	assert.NoError(t, conn.Close())
	assert.Equal(t, 1, transport.Device.Closed)

	_, err = conn.Send([]byte{0x02})
	assert.ErrorIs(t, err, hidio.ErrDeviceNotFound)

	if !assert.NoError(t, conn.Reconnect()) {
		return
	}
	assert.Equal(t, 2, transport.Opens)

	_, err = conn.Send([]byte{0x02})
	assert.NoError(t, err)
}

package dualsense_test

import (
	"testing"

	"github.com/ds5tools/ds5ctl/device/dualsense"
	"github.com/ds5tools/ds5ctl/hidio"
	ds5testing "github.com/ds5tools/ds5ctl/internal/testing"
	"github.com/stretchr/testify/assert"
)

func newTestController(t *testing.T) (*dualsense.Controller, *ds5testing.FakeTransport) {
	t.Helper()
	transport := &ds5testing.FakeTransport{}
	conn, err := hidio.Dial(transport, dualsense.DefaultVID, dualsense.DefaultPID)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return dualsense.NewController(conn, nil), transport
}

func TestControllerDefaults(t *testing.T) {
	ctl, _ := newTestController(t)

	report := ctl.Snapshot()
	assert.True(t, report.OperatingMode.Has(dualsense.ModeDS5))
	assert.Equal(t, dualsense.LightbarLightOn, report.LightbarSetup)

	encoded := ctl.Encode()
	assert.Equal(t, uint8(0x02), encoded[0x00])
	assert.Equal(t, uint8(0x01), encoded[0x2A])
}

func TestControllerApply(t *testing.T) {
	ctl, _ := newTestController(t)

	err := ctl.Apply(func(r *dualsense.OutputReport) {
		r.PlayerLEDs.Set(dualsense.PlayerLEDCenter, true)
		r.MuteButtonLED = dualsense.MuteLEDPulse
	})
	if !assert.NoError(t, err) {
		return
	}
	report := ctl.Snapshot()
	assert.True(t, report.PlayerLEDs.Has(dualsense.PlayerLEDCenter))
	assert.Equal(t, dualsense.MuteLEDPulse, report.MuteButtonLED)
}

func TestControllerApplyRejectsInvalidState(t *testing.T) {
	ctl, _ := newTestController(t)

	err := ctl.Apply(func(r *dualsense.OutputReport) {
		r.MuteButtonLED = dualsense.MuteButtonLED(9)
	})
	assert.ErrorIs(t, err, dualsense.ErrInvalidFlagValue)
	assert.Equal(t, dualsense.MuteLEDOff, ctl.Snapshot().MuteButtonLED)
}

func TestControllerSend(t *testing.T) {
	ctl, transport := newTestController(t)

	n, err := ctl.Send()
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, dualsense.OutputReportSize, n)
	assert.Equal(t, dualsense.OutputReportSize, ctl.LastWritten())

	if !assert.Len(t, transport.Device.Writes, 1) {
		return
	}
	written := transport.Device.Writes[0]
	assert.Len(t, written, dualsense.OutputReportSize)
	assert.Equal(t, uint8(0x02), written[0x00])
	assert.Equal(t, uint8(0x01), written[0x2A])
}

func TestControllerSendRawPads(t *testing.T) {
	ctl, transport := newTestController(t)

	n, err := ctl.SendRaw([]byte{0xAA})
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, dualsense.OutputReportSize, n)

	if !assert.Len(t, transport.Device.Writes, 1) {
		return
	}
	written := transport.Device.Writes[0]
	assert.Len(t, written, dualsense.OutputReportSize)
	assert.Equal(t, uint8(0xAA), written[0])
	assert.Equal(t, uint8(0x00), written[1])
}

package dualsense_test

import (
	"testing"

	"github.com/ds5tools/ds5ctl/device/dualsense"
	"github.com/stretchr/testify/assert"
)

func TestFlagSetAndHas(t *testing.T) {
	var mode dualsense.OperatingMode
	mode.Set(dualsense.ModeDS5, true)
	assert.Equal(t, dualsense.ModeDS5, mode)
	assert.True(t, mode.Has(dualsense.ModeDS5))
	assert.False(t, mode.Has(dualsense.ModeDS4Compatibility))

	mode.Set(dualsense.ModeDS4Compatibility, true)
	assert.Equal(t, uint8(0x03), uint8(mode))
	mode.Set(dualsense.ModeDS5, false)
	assert.Equal(t, dualsense.ModeDS4Compatibility, mode)

	var phys dualsense.PhysicalEffectControl
	phys.Set(dualsense.PhysEffectHaptics, true)
	assert.Equal(t, uint8(0x03), uint8(phys))
	phys.Set(dualsense.PhysEffectHaptics, false)
	assert.Equal(t, uint8(0x00), uint8(phys))
}

func TestPlayerLEDComposites(t *testing.T) {
	var leds dualsense.PlayerLED
	leds.Set(dualsense.PlayerLEDInner, true)
	assert.Equal(t, uint8(0x0A), uint8(leds))
	assert.True(t, leds.Has(dualsense.PlayerLEDInner))

	leds.Set(dualsense.PlayerLEDOuter, true)
	leds.Set(dualsense.PlayerLEDCenter, true)
	assert.Equal(t, uint8(0x1F), uint8(leds))

	leds.Set(dualsense.PlayerLEDInner, false)
	assert.Equal(t, uint8(0x15), uint8(leds))
	assert.False(t, leds.Has(dualsense.PlayerLEDInner))
	assert.True(t, leds.Has(dualsense.PlayerLEDOuter))

	// Toggling a composite on and off again restores the raw byte.
	before := leds
	leds.Set(dualsense.PlayerLEDInner, true)
	leds.Set(dualsense.PlayerLEDInner, false)
	assert.Equal(t, before, leds)

	// A strict subset of a composite does not satisfy Has.
	partial := dualsense.PlayerLED(0x07)
	assert.True(t, partial.Has(dualsense.PlayerLEDCenter))
	assert.False(t, partial.Has(dualsense.PlayerLEDInner))
	assert.False(t, partial.Has(dualsense.PlayerLEDOuter))
}

func TestEnumValid(t *testing.T) {
	assert.True(t, dualsense.MuteLEDOff.Valid())
	assert.True(t, dualsense.MuteLEDOn.Valid())
	assert.True(t, dualsense.MuteLEDPulse.Valid())
	assert.False(t, dualsense.MuteButtonLED(3).Valid())

	assert.True(t, dualsense.LightbarLightOn.Valid())
	assert.True(t, dualsense.LightbarLightOut.Valid())
	assert.False(t, dualsense.LightbarSetup(0).Valid())
	assert.False(t, dualsense.LightbarSetup(3).Valid())
}

func TestParseFlags(t *testing.T) {
	mode, err := dualsense.ParseOperatingMode([]string{"ds5"})
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, dualsense.ModeDS5, mode)

	mode, err = dualsense.ParseOperatingMode([]string{"ds5", "ds4-compat"})
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, uint8(0x03), uint8(mode))

	leds, err := dualsense.ParsePlayerLEDs([]string{"center", "outer"})
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, uint8(0x15), uint8(leds))

	effects, err := dualsense.ParsePhysicalEffects(nil)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, uint8(0x00), uint8(effects))

	_, err = dualsense.ParseLightEffects([]string{"lightbar", "disco"})
	assert.ErrorIs(t, err, dualsense.ErrInvalidFlagValue)

	mute, err := dualsense.ParseMuteButtonLED("pulse")
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, dualsense.MuteLEDPulse, mute)

	_, err = dualsense.ParseMuteButtonLED("blink")
	assert.ErrorIs(t, err, dualsense.ErrInvalidFlagValue)

	setup, err := dualsense.ParseLightbarSetup("light-out")
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, dualsense.LightbarLightOut, setup)

	_, err = dualsense.ParseLightbarSetup("bogus")
	assert.ErrorIs(t, err, dualsense.ErrInvalidFlagValue)
}

func TestFlagString(t *testing.T) {
	assert.Equal(t, "none", dualsense.PlayerLED(0).String())
	assert.Equal(t, "center|inner", (dualsense.PlayerLEDCenter | dualsense.PlayerLEDInner).String())
	assert.Equal(t, "mic-mute-led|0x20", dualsense.LightEffectControl(0x21).String())
	assert.Equal(t, "off", dualsense.MuteLEDOff.String())
	assert.Equal(t, "0x05", dualsense.MuteButtonLED(5).String())
	assert.Equal(t, "light-on", dualsense.LightbarLightOn.String())
}

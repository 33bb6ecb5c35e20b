package dualsense

import (
	"encoding/hex"
	"fmt"
	"io"
)

// OutputReport is the full writable state of the controller: rumble, the
// adaptive triggers, the lightbar, and the LED groups. The zero value
// encodes as an all-zero report; NewOutputReport seeds the fields a report
// meant for sending needs.
type OutputReport struct {
	OperatingMode   OperatingMode
	PhysicalEffects PhysicalEffectControl
	LightEffects    LightEffectControl
	MotorRight      uint8 // (0-255)
	MotorLeft       uint8 // (0-255)
	MuteButtonLED   MuteButtonLED
	PowerSave       PowerSaveControl
	RightTrigger    TriggerEffect
	LeftTrigger     TriggerEffect
	LightbarControl LightbarControl
	LightbarSetup   LightbarSetup
	LEDBrightness   uint8 // (0-255)
	PlayerLEDs      PlayerLED
	LightbarRed     uint8 // (0-255)
	LightbarGreen   uint8 // (0-255)
	LightbarBlue    uint8 // (0-255)
}

// NewOutputReport returns a report with the enum fields at their defaults.
// Flag fields start empty; callers opt into each subsystem explicitly.
func NewOutputReport() *OutputReport {
	return &OutputReport{
		LightbarSetup: LightbarLightOn,
	}
}

// Validate checks the enum fields against their legal sets. Bitmask fields
// need no check: every combination is representable.
func (r *OutputReport) Validate() error {
	if !r.MuteButtonLED.Valid() {
		return fmt.Errorf("%w: mute button led 0x%02x", ErrInvalidFlagValue, uint8(r.MuteButtonLED))
	}
	if !r.LightbarSetup.Valid() {
		return fmt.Errorf("%w: lightbar setup 0x%02x", ErrInvalidFlagValue, uint8(r.LightbarSetup))
	}
	return nil
}

// Encode renders the report as the 64-byte payload the controller expects.
// Every field lives at a hardware-fixed offset; gaps stay zero.
func (r *OutputReport) Encode() []byte {
	b := make([]byte, OutputReportSize)
	b[OutOffsetOperatingMode] = uint8(r.OperatingMode)
	b[OutOffsetPhysicalEffects] = uint8(r.PhysicalEffects)
	b[OutOffsetLightEffects] = uint8(r.LightEffects)
	b[OutOffsetMotorRight] = r.MotorRight
	b[OutOffsetMotorLeft] = r.MotorLeft
	b[OutOffsetMuteButtonLED] = uint8(r.MuteButtonLED)
	b[OutOffsetPowerSave] = uint8(r.PowerSave)
	right := EncodeTriggerEffect(r.RightTrigger)
	copy(b[OutOffsetRightTrigger:], right[:])
	left := EncodeTriggerEffect(r.LeftTrigger)
	copy(b[OutOffsetLeftTrigger:], left[:])
	b[OutOffsetLightbarControl] = uint8(r.LightbarControl)
	b[OutOffsetLightbarSetup] = uint8(r.LightbarSetup)
	b[OutOffsetLEDBrightness] = r.LEDBrightness
	b[OutOffsetPlayerLEDs] = uint8(r.PlayerLEDs)
	b[OutOffsetLightbarRed] = r.LightbarRed
	b[OutOffsetLightbarGreen] = r.LightbarGreen
	b[OutOffsetLightbarBlue] = r.LightbarBlue
	return b
}

// EncodeHex renders the encoded report as a lowercase hex string, 128
// characters for the 64-byte payload.
func (r *OutputReport) EncodeHex() string {
	return hex.EncodeToString(r.Encode())
}

// DecodeReport reads a 64-byte payload back into a report. Trigger bytes
// with an unknown tag fail the whole decode.
func DecodeReport(data []byte) (*OutputReport, error) {
	if len(data) < OutputReportSize {
		return nil, io.ErrUnexpectedEOF
	}
	right, err := DecodeTriggerEffect(data[OutOffsetRightTrigger:])
	if err != nil {
		return nil, fmt.Errorf("right trigger: %w", err)
	}
	left, err := DecodeTriggerEffect(data[OutOffsetLeftTrigger:])
	if err != nil {
		return nil, fmt.Errorf("left trigger: %w", err)
	}
	return &OutputReport{
		OperatingMode:   OperatingMode(data[OutOffsetOperatingMode]),
		PhysicalEffects: PhysicalEffectControl(data[OutOffsetPhysicalEffects]),
		LightEffects:    LightEffectControl(data[OutOffsetLightEffects]),
		MotorRight:      data[OutOffsetMotorRight],
		MotorLeft:       data[OutOffsetMotorLeft],
		MuteButtonLED:   MuteButtonLED(data[OutOffsetMuteButtonLED]),
		PowerSave:       PowerSaveControl(data[OutOffsetPowerSave]),
		RightTrigger:    right,
		LeftTrigger:     left,
		LightbarControl: LightbarControl(data[OutOffsetLightbarControl]),
		LightbarSetup:   LightbarSetup(data[OutOffsetLightbarSetup]),
		LEDBrightness:   data[OutOffsetLEDBrightness],
		PlayerLEDs:      PlayerLED(data[OutOffsetPlayerLEDs]),
		LightbarRed:     data[OutOffsetLightbarRed],
		LightbarGreen:   data[OutOffsetLightbarGreen],
		LightbarBlue:    data[OutOffsetLightbarBlue],
	}, nil
}

// FitReport returns data fitted to the full report size: longer payloads
// are truncated, shorter ones zero-padded on the right. The result is
// always a fresh buffer.
func FitReport(data []byte) []byte {
	b := make([]byte, OutputReportSize)
	copy(b, data)
	return b
}

// Field describes one region of the output report.
type Field struct {
	Offset int
	Width  int
	Name   string
}

// Layout lists every report region in offset order, reserved gaps included.
// The widths sum to the full report size.
func Layout() []Field {
	return []Field{
		{OutOffsetOperatingMode, 1, "operating_mode"},
		{OutOffsetPhysicalEffects, 1, "physical_effect_control"},
		{OutOffsetLightEffects, 1, "light_effect_control"},
		{OutOffsetMotorRight, 1, "motor_right"},
		{OutOffsetMotorLeft, 1, "motor_left"},
		{0x05, 4, "reserved"},
		{OutOffsetMuteButtonLED, 1, "mute_button_led"},
		{OutOffsetPowerSave, 1, "power_save_control"},
		{OutOffsetRightTrigger, TriggerEffectSize, "right_trigger_effect"},
		{OutOffsetLeftTrigger, TriggerEffectSize, "left_trigger_effect"},
		{0x21, 8, "reserved"},
		{OutOffsetLightbarControl, 1, "lightbar_control"},
		{OutOffsetLightbarSetup, 1, "lightbar_setup"},
		{OutOffsetLEDBrightness, 1, "led_brightness"},
		{OutOffsetPlayerLEDs, 1, "player_leds"},
		{OutOffsetLightbarRed, 1, "lightbar_red"},
		{OutOffsetLightbarGreen, 1, "lightbar_green"},
		{OutOffsetLightbarBlue, 1, "lightbar_blue"},
		{0x30, 16, "zero_fill"},
	}
}

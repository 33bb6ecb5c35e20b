package dualsense

// USB identity of the DualSense controller. Treated as configuration, not
// protocol logic: the CLI can point the tool at a different id pair.
const (
	DefaultVID = 0x054C
	DefaultPID = 0x0CE6
)

const (
	// OutputReportSize is the fixed width of the USB output report.
	OutputReportSize = 64

	// TriggerEffectSize is the trigger sub-report width: one type tag plus
	// a 10-byte parameter block.
	TriggerEffectSize = 11
)

// Trigger effect type tags understood by the firmware.
const (
	EffectTagOff                  = 0x00
	EffectTagContinuousResistance = 0x01
	EffectTagSectionResistance    = 0x02
	EffectTagVibrating            = 0x06
	EffectTagExtended             = 0x23
	EffectTagCalibrate            = 0xFC
)

// Absolute byte offsets within the output report. The layout is strictly
// sequential with two reserved regions (4 bytes at 0x05, 8 bytes at 0x21)
// whose meaning is undiscovered; they always encode as zero.
const (
	OutOffsetOperatingMode   = 0x00
	OutOffsetPhysicalEffects = 0x01
	OutOffsetLightEffects    = 0x02
	OutOffsetMotorRight      = 0x03
	OutOffsetMotorLeft       = 0x04

	// OutOffsetMuteButtonLED follows the sequential layout. An earlier
	// capture marked this field at 0x08, which contradicts the field order;
	// verify on hardware before trusting either claim.
	OutOffsetMuteButtonLED = 0x09
	OutOffsetPowerSave     = 0x0A

	OutOffsetRightTrigger = 0x0B
	OutOffsetLeftTrigger  = 0x16

	OutOffsetLightbarControl = 0x29
	OutOffsetLightbarSetup   = 0x2A
	OutOffsetLEDBrightness   = 0x2B
	OutOffsetPlayerLEDs      = 0x2C
	OutOffsetLightbarRed     = 0x2D
	OutOffsetLightbarGreen   = 0x2E
	OutOffsetLightbarBlue    = 0x2F
)

package cmd

import (
	"testing"

	"github.com/ds5tools/ds5ctl/device/dualsense"
	"github.com/stretchr/testify/assert"
)

func TestTriggerFlagsBuild(t *testing.T) {
	type testCase struct {
		name     string
		flags    TriggerFlags
		expected dualsense.TriggerEffect
	}

	cases := []testCase{
		{
			name:     "off",
			flags:    TriggerFlags{Mode: "off"},
			expected: dualsense.NoEffect{},
		},
		{
			name:     "empty mode means off",
			flags:    TriggerFlags{},
			expected: dualsense.NoEffect{},
		},
		{
			name:     "continuous",
			flags:    TriggerFlags{Mode: "continuous", Start: 10, Force: 20},
			expected: dualsense.ContinuousResistance{StartPos: 10, Force: 20},
		},
		{
			name:     "section",
			flags:    TriggerFlags{Mode: "section", Start: 30, Force: 40},
			expected: dualsense.SectionResistance{StartPos: 30, Force: 40},
		},
		{
			name:     "vibrating",
			flags:    TriggerFlags{Mode: "vibrating", Frequency: 50, OffTime: 6},
			expected: dualsense.Vibrating{Frequency: 50, OffTime: 6},
		},
		{
			name: "extended",
			flags: TriggerFlags{
				Mode:      "extended",
				Start:     255,
				Keep:      true,
				Begin:     10,
				Middle:    20,
				End:       30,
				Frequency: 100,
			},
			expected: dualsense.EffectExtended{
				StartPos:    255,
				KeepEffect:  true,
				BeginForce:  10,
				MiddleForce: 20,
				EndForce:    30,
				Frequency:   100,
			},
		},
		{
			name:     "calibrate",
			flags:    TriggerFlags{Mode: "calibrate"},
			expected: dualsense.Calibrate{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.flags.Build()
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, tc.expected, got)
		})
	}

	_, err := (&TriggerFlags{Mode: "warble"}).Build()
	assert.Error(t, err)
}

func TestSendBuildReport(t *testing.T) {
	s := Send{
		Mode:          []string{"ds5"},
		Effects:       []string{"haptics", "trigger-right"},
		LightEffects:  []string{"lightbar", "player-indicator"},
		MotorRight:    0x20,
		MotorLeft:     0x10,
		MuteLED:       "pulse",
		MicMute:       true,
		RightTrigger:  TriggerFlags{Mode: "continuous", Start: 5, Force: 6},
		Lightbar:      true,
		LightbarSetup: "light-on",
		Brightness:    0x7F,
		PlayerLEDs:    []string{"center", "inner"},
		Red:           1,
		Green:         2,
		Blue:          3,
	}

	report, err := s.buildReport()
	if !assert.NoError(t, err) {
		return
	}

	assert.True(t, report.OperatingMode.Has(dualsense.ModeDS5))
	assert.True(t, report.PhysicalEffects.Has(dualsense.PhysEffectHaptics))
	assert.True(t, report.PhysicalEffects.Has(dualsense.PhysEffectTriggerRight))
	assert.False(t, report.PhysicalEffects.Has(dualsense.PhysEffectTriggerLeft))
	assert.True(t, report.LightEffects.Has(dualsense.LightEffectLightbar))
	assert.Equal(t, uint8(0x20), report.MotorRight)
	assert.Equal(t, uint8(0x10), report.MotorLeft)
	assert.Equal(t, dualsense.MuteLEDPulse, report.MuteButtonLED)
	assert.True(t, report.PowerSave.Has(dualsense.PowerSaveMicMute))
	assert.Equal(t, dualsense.ContinuousResistance{StartPos: 5, Force: 6}, report.RightTrigger)
	assert.Equal(t, dualsense.NoEffect{}, report.LeftTrigger)
	assert.True(t, report.LightbarControl.Has(dualsense.LightbarCtlEnable))
	assert.Equal(t, dualsense.LightbarLightOn, report.LightbarSetup)
	assert.Equal(t, uint8(0x7F), report.LEDBrightness)
	assert.True(t, report.PlayerLEDs.Has(dualsense.PlayerLEDCenter))
	assert.True(t, report.PlayerLEDs.Has(dualsense.PlayerLEDInner))
	assert.Equal(t, uint8(1), report.LightbarRed)
	assert.Equal(t, uint8(2), report.LightbarGreen)
	assert.Equal(t, uint8(3), report.LightbarBlue)
}

func TestSendBuildReportZeroValue(t *testing.T) {
	// Empty strings and nil slices resolve to the field defaults.
	report, err := (&Send{}).buildReport()
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, dualsense.OperatingMode(0), report.OperatingMode)
	assert.Equal(t, dualsense.MuteLEDOff, report.MuteButtonLED)
	assert.Equal(t, dualsense.LightbarLightOn, report.LightbarSetup)
}

func TestSendBuildReportErrors(t *testing.T) {
	_, err := (&Send{Effects: []string{"warp"}}).buildReport()
	assert.ErrorIs(t, err, dualsense.ErrInvalidFlagValue)

	_, err = (&Send{MuteLED: "blink"}).buildReport()
	assert.ErrorIs(t, err, dualsense.ErrInvalidFlagValue)

	_, err = (&Send{RightTrigger: TriggerFlags{Mode: "warble"}}).buildReport()
	assert.ErrorContains(t, err, "right trigger")
}

func TestParseHex(t *testing.T) {
	data, err := parseHex("0202ff")
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, []byte{0x02, 0x02, 0xFF}, data)

	data, err = parseHex("02 02\tff\n00")
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, []byte{0x02, 0x02, 0xFF, 0x00}, data)

	_, err = parseHex("02f")
	assert.Error(t, err)

	_, err = parseHex("zz")
	assert.Error(t, err)
}

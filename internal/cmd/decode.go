package cmd

import (
	"fmt"

	"github.com/ds5tools/ds5ctl/device/dualsense"
)

// Decode pretty-prints a captured output report, field by field.
type Decode struct {
	Data string `arg:"" help:"Report payload as hex, spaces allowed"`
}

// Run is called by Kong when the decode command is executed.
func (d *Decode) Run() error {
	data, err := parseHex(d.Data)
	if err != nil {
		return err
	}
	report, err := dualsense.DecodeReport(dualsense.FitReport(data))
	if err != nil {
		return err
	}
	fmt.Printf("operating_mode:          %s\n", report.OperatingMode)
	fmt.Printf("physical_effect_control: %s\n", report.PhysicalEffects)
	fmt.Printf("light_effect_control:    %s\n", report.LightEffects)
	fmt.Printf("motor_right:             %d\n", report.MotorRight)
	fmt.Printf("motor_left:              %d\n", report.MotorLeft)
	fmt.Printf("mute_button_led:         %s\n", report.MuteButtonLED)
	fmt.Printf("power_save_control:      %s\n", report.PowerSave)
	fmt.Printf("right_trigger_effect:    %s\n", report.RightTrigger)
	fmt.Printf("left_trigger_effect:     %s\n", report.LeftTrigger)
	fmt.Printf("lightbar_control:        %s\n", report.LightbarControl)
	fmt.Printf("lightbar_setup:          %s\n", report.LightbarSetup)
	fmt.Printf("led_brightness:          %d\n", report.LEDBrightness)
	fmt.Printf("player_leds:             %s\n", report.PlayerLEDs)
	fmt.Printf("lightbar_rgb:            #%02x%02x%02x\n",
		report.LightbarRed, report.LightbarGreen, report.LightbarBlue)
	return nil
}

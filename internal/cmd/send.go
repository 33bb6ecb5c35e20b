package cmd

import (
	"fmt"
	"log/slog"

	"github.com/ds5tools/ds5ctl/device/dualsense"
	"github.com/ds5tools/ds5ctl/hidio"
	"github.com/ds5tools/ds5ctl/internal/log"
)

// DeviceFlags selects which attached controller to address.
type DeviceFlags struct {
	VendorID  uint16 `help:"USB vendor id" default:"0x054c" env:"DS5CTL_VENDOR_ID"`
	ProductID uint16 `help:"USB product id" default:"0x0ce6" env:"DS5CTL_PRODUCT_ID"`
}

// TriggerFlags describes one adaptive trigger effect on the command line.
type TriggerFlags struct {
	Mode      string `help:"Effect mode" enum:"off,continuous,section,vibrating,extended,calibrate" default:"off"`
	Start     uint8  `help:"Start position (0-255)"`
	Force     uint8  `help:"Resistance force (0-255)"`
	Frequency uint8  `help:"Vibration frequency (0-255)"`
	OffTime   uint8  `help:"Off time between vibration bursts (0-255)"`
	Keep      bool   `help:"Keep the effect applied after full pull (extended mode)"`
	Begin     uint8  `help:"Force at the start of the pull (extended mode, 0-255)"`
	Middle    uint8  `help:"Force at the middle of the pull (extended mode, 0-255)"`
	End       uint8  `help:"Force at the end of the pull (extended mode, 0-255)"`
}

// Build resolves the flag set into a trigger effect variant.
func (t *TriggerFlags) Build() (dualsense.TriggerEffect, error) {
	switch t.Mode {
	case "off", "":
		return dualsense.NoEffect{}, nil
	case "continuous":
		return dualsense.ContinuousResistance{StartPos: t.Start, Force: t.Force}, nil
	case "section":
		return dualsense.SectionResistance{StartPos: t.Start, Force: t.Force}, nil
	case "vibrating":
		return dualsense.Vibrating{Frequency: t.Frequency, OffTime: t.OffTime}, nil
	case "extended":
		return dualsense.EffectExtended{
			StartPos:    t.Start,
			KeepEffect:  t.Keep,
			BeginForce:  t.Begin,
			MiddleForce: t.Middle,
			EndForce:    t.End,
			Frequency:   t.Frequency,
		}, nil
	case "calibrate":
		return dualsense.Calibrate{}, nil
	}
	return nil, fmt.Errorf("unknown trigger mode %q", t.Mode)
}

// Send builds an output report from flags and writes it to the controller.
type Send struct {
	Device DeviceFlags `embed:"" prefix:"device."`

	Mode         []string     `help:"Operating mode flags (ds4-compat, ds5)" default:"ds5"`
	Effects      []string     `help:"Physical effect flags (haptics, trigger-right, trigger-left)"`
	LightEffects []string     `help:"Light effect flags (mic-mute-led, power-save, lightbar, release-leds, player-indicator)"`
	MotorRight   uint8        `help:"Right rumble motor power (0-255)"`
	MotorLeft    uint8        `help:"Left rumble motor power (0-255)"`
	MuteLED      string       `help:"Mute button LED mode" enum:"off,on,pulse" default:"off"`
	MicMute      bool         `help:"Mute the microphone"`
	RightTrigger TriggerFlags `embed:"" prefix:"right-trigger."`
	LeftTrigger  TriggerFlags `embed:"" prefix:"left-trigger."`

	Lightbar      bool     `help:"Enable the lightbar"`
	LightbarSetup string   `help:"Lightbar startup behavior" enum:"light-on,light-out" default:"light-on"`
	Brightness    uint8    `help:"Player LED brightness (0-255)"`
	PlayerLEDs    []string `help:"Player LED flags (center, inner, outer)"`
	Red           uint8    `help:"Lightbar red (0-255)"`
	Green         uint8    `help:"Lightbar green (0-255)"`
	Blue          uint8    `help:"Lightbar blue (0-255)"`

	DryRun bool `help:"Print the encoded report as hex instead of sending"`
}

// Run is called by Kong when the send command is executed.
func (s *Send) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	report, err := s.buildReport()
	if err != nil {
		return err
	}
	if s.DryRun {
		fmt.Println(report.EncodeHex())
		return nil
	}

	ctl, cleanup, err := openController(s.Device, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := ctl.Apply(func(r *dualsense.OutputReport) { *r = *report }); err != nil {
		return err
	}
	data := ctl.Encode()
	rawLogger.Log(true, data)
	n, err := ctl.SendRaw(data)
	if err != nil {
		return err
	}
	logger.Info("report sent",
		"bytes", n,
		"device", fmt.Sprintf("%04x:%04x", s.Device.VendorID, s.Device.ProductID),
	)
	return nil
}

// buildReport folds every flag into a validated output report before any
// device I/O happens.
func (s *Send) buildReport() (*dualsense.OutputReport, error) {
	r := dualsense.NewOutputReport()

	mode, err := dualsense.ParseOperatingMode(s.Mode)
	if err != nil {
		return nil, err
	}
	r.OperatingMode = mode

	effects, err := dualsense.ParsePhysicalEffects(s.Effects)
	if err != nil {
		return nil, err
	}
	r.PhysicalEffects = effects

	lights, err := dualsense.ParseLightEffects(s.LightEffects)
	if err != nil {
		return nil, err
	}
	r.LightEffects = lights

	r.MotorRight = s.MotorRight
	r.MotorLeft = s.MotorLeft

	mute, err := dualsense.ParseMuteButtonLED(s.MuteLED)
	if err != nil {
		return nil, err
	}
	r.MuteButtonLED = mute
	r.PowerSave.Set(dualsense.PowerSaveMicMute, s.MicMute)

	right, err := s.RightTrigger.Build()
	if err != nil {
		return nil, fmt.Errorf("right trigger: %w", err)
	}
	r.RightTrigger = right

	left, err := s.LeftTrigger.Build()
	if err != nil {
		return nil, fmt.Errorf("left trigger: %w", err)
	}
	r.LeftTrigger = left

	r.LightbarControl.Set(dualsense.LightbarCtlEnable, s.Lightbar)

	setup, err := dualsense.ParseLightbarSetup(s.LightbarSetup)
	if err != nil {
		return nil, err
	}
	r.LightbarSetup = setup
	r.LEDBrightness = s.Brightness

	leds, err := dualsense.ParsePlayerLEDs(s.PlayerLEDs)
	if err != nil {
		return nil, err
	}
	r.PlayerLEDs = leds

	r.LightbarRed = s.Red
	r.LightbarGreen = s.Green
	r.LightbarBlue = s.Blue

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// openController opens the HID transport and wraps it in a controller.
// The returned cleanup closes the handle and finalizes the library.
func openController(d DeviceFlags, logger *slog.Logger) (*dualsense.Controller, func(), error) {
	if err := hidio.Init(); err != nil {
		return nil, nil, fmt.Errorf("hid init: %w", err)
	}
	conn, err := hidio.Dial(hidio.HIDAPI{}, d.VendorID, d.ProductID, hidio.WithLogger(logger))
	if err != nil {
		_ = hidio.Exit()
		return nil, nil, err
	}
	ctl := dualsense.NewController(conn, logger)
	cleanup := func() {
		_ = ctl.Close()
		_ = hidio.Exit()
	}
	return ctl, cleanup, nil
}

package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ds5tools/ds5ctl/device/dualsense"
	"github.com/ds5tools/ds5ctl/internal/log"
)

// Sweep ramps the lightbar and player LED brightness until interrupted.
// Useful as a quick end-to-end check that reports reach the controller.
type Sweep struct {
	Device DeviceFlags `embed:"" prefix:"device."`

	Interval time.Duration `help:"Delay between reports" default:"200ms"`
	Step     uint8         `help:"Brightness increment per report" default:"10"`
}

// Run is called by Kong when the sweep command is executed.
func (s *Sweep) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctl, cleanup, err := openController(s.Device, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := ctl.Apply(func(r *dualsense.OutputReport) {
		r.LightEffects.Set(dualsense.LightEffectLightbar, true)
		r.LightEffects.Set(dualsense.LightEffectPlayerIndicator, true)
		r.LightbarControl.Set(dualsense.LightbarCtlEnable, true)
		r.PlayerLEDs.Set(dualsense.PlayerLEDCenter, true)
	}); err != nil {
		return err
	}

	logger.Info("sweeping lightbar", "interval", s.Interval, "step", s.Step)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	var level uint8
	for {
		select {
		case <-ctx.Done():
			logger.Info("sweep stopped")
			return nil
		case <-ticker.C:
		}

		if err := ctl.Apply(func(r *dualsense.OutputReport) {
			r.LEDBrightness = level
			r.LightbarBlue = level
		}); err != nil {
			return err
		}
		data := ctl.Encode()
		rawLogger.Log(true, data)
		if _, err := ctl.SendRaw(data); err != nil {
			return err
		}
		level += s.Step
	}
}

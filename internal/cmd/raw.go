package cmd

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ds5tools/ds5ctl/device/dualsense"
	"github.com/ds5tools/ds5ctl/internal/log"
)

// Raw sends a hand-assembled payload, zero-padded to the full report size.
type Raw struct {
	Device DeviceFlags `embed:"" prefix:"device."`

	Data   string `arg:"" help:"Report payload as hex, spaces allowed"`
	DryRun bool   `help:"Print the padded report as hex instead of sending"`
}

// Run is called by Kong when the raw command is executed.
func (r *Raw) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	data, err := parseHex(r.Data)
	if err != nil {
		return err
	}
	if len(data) > dualsense.OutputReportSize {
		logger.Warn("payload truncated to report size",
			"payload", len(data),
			"report", dualsense.OutputReportSize,
		)
	}
	payload := dualsense.FitReport(data)
	if r.DryRun {
		fmt.Println(hex.EncodeToString(payload))
		return nil
	}

	ctl, cleanup, err := openController(r.Device, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	rawLogger.Log(true, payload)
	n, err := ctl.SendRaw(payload)
	if err != nil {
		return err
	}
	logger.Info("report sent", "bytes", n)
	return nil
}

// parseHex decodes a hex string, tolerating whitespace between bytes.
func parseHex(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n':
			return -1
		}
		return r
	}, s)
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex payload: %w", err)
	}
	return data, nil
}

//go:build !linux

package cmd

import (
	"errors"
	"log/slog"
)

func udevInstall(_ DeviceFlags, _ *slog.Logger) error {
	return errors.New("udev rules are linux-only")
}

func udevRemove(_ *slog.Logger) error {
	return errors.New("udev rules are linux-only")
}

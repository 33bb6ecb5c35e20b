//go:build linux

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

const rulePath = "/etc/udev/rules.d/70-ds5ctl.rules"

func udevInstall(d DeviceFlags, logger *slog.Logger) error {
	rule := udevRuleContent(d.VendorID, d.ProductID)
	if err := os.WriteFile(rulePath, []byte(rule), 0o644); err != nil {
		return err
	}

	steps := [][]string{
		{"control", "--reload-rules"},
		{"trigger"},
	}
	for _, args := range steps {
		if err := runUdevadm(args...); err != nil {
			return err
		}
	}

	logger.Info("udev rule installed", "path", rulePath)
	return nil
}

func udevRemove(logger *slog.Logger) error {
	var errs []error

	if err := os.Remove(rulePath); err != nil && !os.IsNotExist(err) {
		errs = append(errs, err)
	}
	if err := runUdevadm("control", "--reload-rules"); err != nil {
		errs = append(errs, err)
	}
	if err := runUdevadm("trigger"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	logger.Info("udev rule removed", "path", rulePath)
	return nil
}

func udevRuleContent(vendorID, productID uint16) string {
	return fmt.Sprintf(`KERNEL=="hidraw*", ATTRS{idVendor}=="%04x", ATTRS{idProduct}=="%04x", MODE="0660", TAG+="uaccess"
`, vendorID, productID)
}

func runUdevadm(args ...string) error {
	cmd := exec.Command("udevadm", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("udevadm %s failed: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return nil
}

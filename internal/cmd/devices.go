package cmd

import (
	"fmt"
	"log/slog"

	"github.com/ds5tools/ds5ctl/hidio"
)

// Devices lists attached HID devices matching the id filter.
type Devices struct {
	Device DeviceFlags `embed:"" prefix:"device."`

	All bool `help:"List every HID device instead of filtering by id"`
}

// Run is called by Kong when the devices command is executed.
func (d *Devices) Run(logger *slog.Logger) error {
	if err := hidio.Init(); err != nil {
		return fmt.Errorf("hid init: %w", err)
	}
	defer func() { _ = hidio.Exit() }()

	vid, pid := d.Device.VendorID, d.Device.ProductID
	if d.All {
		vid, pid = 0, 0
	}
	infos, err := hidio.Enumerate(vid, pid)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		logger.Info("no matching devices", "device", fmt.Sprintf("%04x:%04x", vid, pid))
		return nil
	}
	for _, info := range infos {
		fmt.Printf("%04x:%04x if=%d %s %s (%s)\n",
			info.VendorID, info.ProductID, info.Interface,
			info.Manufacturer, info.Product, info.Path)
	}
	return nil
}

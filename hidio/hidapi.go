package hidio

import (
	"fmt"

	"github.com/sstallion/go-hid"
)

// Init prepares the hidapi library. Call once before the first Open.
func Init() error {
	return hid.Init()
}

// Exit finalizes the hidapi library. Call once after the last Close.
func Exit() error {
	return hid.Exit()
}

// HIDAPI is the production Transport, backed by hidapi via go-hid.
type HIDAPI struct{}

// Open opens the first device matching the vendor/product pair.
func (HIDAPI) Open(vendorID, productID uint16) (Device, error) {
	dev, err := hid.OpenFirst(vendorID, productID)
	if err != nil {
		return nil, fmt.Errorf("%w: %04x:%04x: %v", ErrDeviceNotFound, vendorID, productID, err)
	}
	return dev, nil
}

// Info describes one enumerated device.
type Info struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	Manufacturer string
	Product      string
	Interface    int
}

// Enumerate lists attached HID devices matching the vendor/product pair.
// A zero id matches any value for that field.
func Enumerate(vendorID, productID uint16) ([]Info, error) {
	var infos []Info
	err := hid.Enumerate(vendorID, productID, func(d *hid.DeviceInfo) error {
		infos = append(infos, Info{
			Path:         d.Path,
			VendorID:     d.VendorID,
			ProductID:    d.ProductID,
			Manufacturer: d.MfrStr,
			Product:      d.ProductStr,
			Interface:    d.InterfaceNbr,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return infos, nil
}

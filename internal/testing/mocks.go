// Package testing provides scripted hidio fakes for exercising the send
// path without hardware.
package testing

import "github.com/ds5tools/ds5ctl/hidio"

// FakeDevice records writes and plays back scripted write errors. Each
// Write consumes one entry of WriteErrs; once the script is exhausted
// every write succeeds.
type FakeDevice struct {
	WriteErrs []error
	Writes    [][]byte
	Closed    int
}

func (d *FakeDevice) Write(p []byte) (int, error) {
	buf := make([]byte, len(p))
	copy(buf, p)
	d.Writes = append(d.Writes, buf)
	if len(d.WriteErrs) > 0 {
		err := d.WriteErrs[0]
		d.WriteErrs = d.WriteErrs[1:]
		if err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

func (d *FakeDevice) Close() error {
	d.Closed++
	return nil
}

// FakeTransport hands out the same FakeDevice on every open, so one write
// script can span reconnects. Each Open consumes one entry of OpenErrs;
// once the script is exhausted every open succeeds.
type FakeTransport struct {
	Device   *FakeDevice
	OpenErrs []error
	Opens    int
}

func (t *FakeTransport) Open(vendorID, productID uint16) (hidio.Device, error) {
	t.Opens++
	if len(t.OpenErrs) > 0 {
		err := t.OpenErrs[0]
		t.OpenErrs = t.OpenErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	if t.Device == nil {
		t.Device = &FakeDevice{}
	}
	return t.Device, nil
}

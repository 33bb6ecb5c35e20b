package cmd

import (
	"fmt"

	"github.com/ds5tools/ds5ctl/device/dualsense"
)

// Layout prints the byte layout of the output report.
type Layout struct{}

// Run is called by Kong when the layout command is executed.
func (l *Layout) Run() error {
	fmt.Println("offset size field")
	for _, f := range dualsense.Layout() {
		fmt.Printf("0x%02x   %-4d %s\n", f.Offset, f.Width, f.Name)
	}
	return nil
}

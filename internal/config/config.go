// Package config defines the CLI structure and configuration for ds5ctl.
package config

import (
	"github.com/ds5tools/ds5ctl/internal/cmd"
)

type Log struct {
	Level   string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"DS5CTL_LOG_LEVEL"`
	File    string `help:"Log file path (default: none; logs only to console)" env:"DS5CTL_LOG_FILE"`
	RawFile string `help:"Raw report log file path (default: none)" env:"DS5CTL_LOG_RAW_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log `embed:"" prefix:"log."`

	Config string `help:"Config file path" short:"c" env:"DS5CTL_CONFIG"`

	Send    cmd.Send          `cmd:"" help:"Build an output report from flags and send it"`
	Raw     cmd.Raw           `cmd:"" help:"Send a hand-assembled report payload"`
	Decode  cmd.Decode        `cmd:"" help:"Pretty-print a captured output report"`
	Layout  cmd.Layout        `cmd:"" help:"Print the output report byte layout"`
	Devices cmd.Devices       `cmd:"" help:"List attached HID devices"`
	Sweep   cmd.Sweep         `cmd:"" help:"Ramp the lightbar until interrupted"`
	Cfg     cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration file helpers"`
	Udev    cmd.UdevCommand   `cmd:"" help:"Manage the hidraw udev rule"`
}

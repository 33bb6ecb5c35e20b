package cmd

import "log/slog"

// UdevCommand groups udev rule subcommands.
type UdevCommand struct {
	Install UdevInstall `cmd:"" help:"Install a udev rule granting hidraw access to the controller"`
	Remove  UdevRemove  `cmd:"" help:"Remove the ds5ctl udev rule"`
}

// UdevInstall writes the hidraw access rule and reloads udev.
type UdevInstall struct {
	Device DeviceFlags `embed:"" prefix:"device."`
}

// UdevRemove deletes the rule file and reloads udev.
type UdevRemove struct{}

// Run is called by Kong when the udev install command is executed.
func (c *UdevInstall) Run(logger *slog.Logger) error {
	return udevInstall(c.Device, logger)
}

// Run is called by Kong when the udev remove command is executed.
func (c *UdevRemove) Run(logger *slog.Logger) error {
	return udevRemove(logger)
}

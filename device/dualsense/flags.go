package dualsense

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFlagValue reports a value outside a field's legal set. Bitmask
// domains accept any combination, so only enum fields and unknown flag
// names produce it.
var ErrInvalidFlagValue = errors.New("invalid flag value")

// OperatingMode selects which controller personality the report addresses.
type OperatingMode uint8

const (
	ModeDS4Compatibility OperatingMode = 1 << 0
	ModeDS5              OperatingMode = 1 << 1
)

// PhysicalEffectControl gates the haptic subsystems the report may touch.
type PhysicalEffectControl uint8

const (
	// PhysEffectHaptics spans two bits; both latch together.
	PhysEffectHaptics      PhysicalEffectControl = 1<<0 | 1<<1
	PhysEffectTriggerRight PhysicalEffectControl = 1 << 2
	PhysEffectTriggerLeft  PhysicalEffectControl = 1 << 3
)

// LightEffectControl gates which LED subsystems the report may touch.
type LightEffectControl uint8

const (
	LightEffectMicMuteLED      LightEffectControl = 1 << 0
	LightEffectPowerSave       LightEffectControl = 1 << 1
	LightEffectLightbar        LightEffectControl = 1 << 2
	LightEffectReleaseLEDs     LightEffectControl = 1 << 3
	LightEffectPlayerIndicator LightEffectControl = 1 << 4
)

// LightbarControl carries the lightbar enable latch.
type LightbarControl uint8

const (
	LightbarCtlEnable LightbarControl = 1 << 2
)

// PowerSaveControl carries power-related toggles.
type PowerSaveControl uint8

const (
	PowerSaveMicMute PowerSaveControl = 1 << 4
)

// PlayerLED addresses the five indicator LEDs below the touchpad. Inner and
// Outer are two-bit composite masks: the pairs flanking the center LED act
// as one named unit and are always set or cleared together.
type PlayerLED uint8

const (
	PlayerLEDCenter PlayerLED = 1 << 2
	PlayerLEDInner  PlayerLED = 1<<1 | 1<<3
	PlayerLEDOuter  PlayerLED = 1<<0 | 1<<4
)

// setBits turns every bit of mask on or off in raw as one unit.
func setBits(raw, mask uint8, on bool) uint8 {
	if on {
		return raw | mask
	}
	return raw &^ mask
}

// hasBits reports whether every bit of mask is present in raw.
func hasBits(raw, mask uint8) bool { return raw&mask == mask }

// Set turns the named flag on or off. Composite flags flip all their bits
// together; a strict subset of a composite is never produced.
func (m *OperatingMode) Set(f OperatingMode, on bool) {
	*m = OperatingMode(setBits(uint8(*m), uint8(f), on))
}

// Has reports whether every bit of the named flag is set.
func (m OperatingMode) Has(f OperatingMode) bool { return hasBits(uint8(m), uint8(f)) }

func (m *PhysicalEffectControl) Set(f PhysicalEffectControl, on bool) {
	*m = PhysicalEffectControl(setBits(uint8(*m), uint8(f), on))
}

func (m PhysicalEffectControl) Has(f PhysicalEffectControl) bool { return hasBits(uint8(m), uint8(f)) }

func (m *LightEffectControl) Set(f LightEffectControl, on bool) {
	*m = LightEffectControl(setBits(uint8(*m), uint8(f), on))
}

func (m LightEffectControl) Has(f LightEffectControl) bool { return hasBits(uint8(m), uint8(f)) }

func (m *LightbarControl) Set(f LightbarControl, on bool) {
	*m = LightbarControl(setBits(uint8(*m), uint8(f), on))
}

func (m LightbarControl) Has(f LightbarControl) bool { return hasBits(uint8(m), uint8(f)) }

func (m *PowerSaveControl) Set(f PowerSaveControl, on bool) {
	*m = PowerSaveControl(setBits(uint8(*m), uint8(f), on))
}

func (m PowerSaveControl) Has(f PowerSaveControl) bool { return hasBits(uint8(m), uint8(f)) }

func (m *PlayerLED) Set(f PlayerLED, on bool) {
	*m = PlayerLED(setBits(uint8(*m), uint8(f), on))
}

func (m PlayerLED) Has(f PlayerLED) bool { return hasBits(uint8(m), uint8(f)) }

// MuteButtonLED selects the mute button LED behavior. A plain enumeration,
// not a bitmask: values outside the legal set are rejected when the model
// is mutated.
type MuteButtonLED uint8

const (
	MuteLEDOff   MuteButtonLED = 0
	MuteLEDOn    MuteButtonLED = 1
	MuteLEDPulse MuteButtonLED = 2
)

// Valid reports whether the value is a member of the enumeration.
func (m MuteButtonLED) Valid() bool {
	switch m {
	case MuteLEDOff, MuteLEDOn, MuteLEDPulse:
		return true
	}
	return false
}

func (m MuteButtonLED) String() string {
	switch m {
	case MuteLEDOff:
		return "off"
	case MuteLEDOn:
		return "on"
	case MuteLEDPulse:
		return "pulse"
	}
	return fmt.Sprintf("0x%02x", uint8(m))
}

// LightbarSetup selects the lightbar startup behavior. Also a plain
// enumeration; zero only appears in a never-mutated report and is not a
// legal value to set.
type LightbarSetup uint8

const (
	LightbarLightOn  LightbarSetup = 1
	LightbarLightOut LightbarSetup = 2
)

func (s LightbarSetup) Valid() bool {
	switch s {
	case LightbarLightOn, LightbarLightOut:
		return true
	}
	return false
}

func (s LightbarSetup) String() string {
	switch s {
	case LightbarLightOn:
		return "light-on"
	case LightbarLightOut:
		return "light-out"
	}
	return fmt.Sprintf("0x%02x", uint8(s))
}

type flagName struct {
	mask uint8
	name string
}

var (
	operatingModeNames = []flagName{
		{uint8(ModeDS4Compatibility), "ds4-compat"},
		{uint8(ModeDS5), "ds5"},
	}
	physicalEffectNames = []flagName{
		{uint8(PhysEffectHaptics), "haptics"},
		{uint8(PhysEffectTriggerRight), "trigger-right"},
		{uint8(PhysEffectTriggerLeft), "trigger-left"},
	}
	lightEffectNames = []flagName{
		{uint8(LightEffectMicMuteLED), "mic-mute-led"},
		{uint8(LightEffectPowerSave), "power-save"},
		{uint8(LightEffectLightbar), "lightbar"},
		{uint8(LightEffectReleaseLEDs), "release-leds"},
		{uint8(LightEffectPlayerIndicator), "player-indicator"},
	}
	lightbarControlNames = []flagName{
		{uint8(LightbarCtlEnable), "enable"},
	}
	powerSaveNames = []flagName{
		{uint8(PowerSaveMicMute), "mic-mute"},
	}
	playerLEDNames = []flagName{
		{uint8(PlayerLEDCenter), "center"},
		{uint8(PlayerLEDInner), "inner"},
		{uint8(PlayerLEDOuter), "outer"},
	}
)

// flagString renders raw as named flags joined by |, greedily matching the
// domain's name table and appending any leftover bits as hex.
func flagString(raw uint8, names []flagName) string {
	if raw == 0 {
		return "none"
	}
	var parts []string
	rest := raw
	for _, n := range names {
		if raw&n.mask == n.mask {
			parts = append(parts, n.name)
			rest &^= n.mask
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%02x", rest))
	}
	return strings.Join(parts, "|")
}

func (m OperatingMode) String() string         { return flagString(uint8(m), operatingModeNames) }
func (m PhysicalEffectControl) String() string { return flagString(uint8(m), physicalEffectNames) }
func (m LightEffectControl) String() string    { return flagString(uint8(m), lightEffectNames) }
func (m LightbarControl) String() string       { return flagString(uint8(m), lightbarControlNames) }
func (m PowerSaveControl) String() string      { return flagString(uint8(m), powerSaveNames) }
func (m PlayerLED) String() string             { return flagString(uint8(m), playerLEDNames) }

// parseFlagNames folds flag names into a raw byte using the domain's name
// table. Unknown names are rejected before any bit is committed.
func parseFlagNames(names []string, table []flagName, domain string) (uint8, error) {
	var raw uint8
	for _, n := range names {
		found := false
		for _, f := range table {
			if f.name == n {
				raw |= f.mask
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %s %q", ErrInvalidFlagValue, domain, n)
		}
	}
	return raw, nil
}

// ParseOperatingMode folds operating mode flag names into a mask.
func ParseOperatingMode(names []string) (OperatingMode, error) {
	raw, err := parseFlagNames(names, operatingModeNames, "operating mode")
	return OperatingMode(raw), err
}

// ParsePhysicalEffects folds physical effect flag names into a mask.
func ParsePhysicalEffects(names []string) (PhysicalEffectControl, error) {
	raw, err := parseFlagNames(names, physicalEffectNames, "physical effect")
	return PhysicalEffectControl(raw), err
}

// ParseLightEffects folds light effect flag names into a mask.
func ParseLightEffects(names []string) (LightEffectControl, error) {
	raw, err := parseFlagNames(names, lightEffectNames, "light effect")
	return LightEffectControl(raw), err
}

// ParsePlayerLEDs folds player indicator flag names into a mask.
func ParsePlayerLEDs(names []string) (PlayerLED, error) {
	raw, err := parseFlagNames(names, playerLEDNames, "player led")
	return PlayerLED(raw), err
}

// ParseMuteButtonLED resolves a mute button LED mode name.
func ParseMuteButtonLED(s string) (MuteButtonLED, error) {
	switch s {
	case "off", "":
		return MuteLEDOff, nil
	case "on":
		return MuteLEDOn, nil
	case "pulse":
		return MuteLEDPulse, nil
	}
	return 0, fmt.Errorf("%w: mute button led %q", ErrInvalidFlagValue, s)
}

// ParseLightbarSetup resolves a lightbar setup mode name.
func ParseLightbarSetup(s string) (LightbarSetup, error) {
	switch s {
	case "light-on", "":
		return LightbarLightOn, nil
	case "light-out":
		return LightbarLightOut, nil
	}
	return 0, fmt.Errorf("%w: lightbar setup %q", ErrInvalidFlagValue, s)
}

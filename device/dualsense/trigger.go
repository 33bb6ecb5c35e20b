package dualsense

import (
	"fmt"
	"io"
)

// TriggerEffect is one adaptive trigger program. The set of variants is
// closed: each encodes to an 11-byte sub-report of tag byte plus 10-byte
// parameter body, and EncodeTriggerEffect switches over all of them.
type TriggerEffect interface {
	triggerEffect()
}

// NoEffect disables the adaptive trigger.
type NoEffect struct{}

// ContinuousResistance applies constant resistance from a start position.
type ContinuousResistance struct {
	StartPos uint8 // (0-255)
	Force    uint8 // (0-255)
}

// SectionResistance applies resistance across a section of trigger travel.
type SectionResistance struct {
	StartPos uint8 // (0-255)
	Force    uint8 // (0-255)
}

// Vibrating drives the trigger with a vibration pattern.
type Vibrating struct {
	Frequency uint8 // (0-255)
	OffTime   uint8 // (0-255)
}

// EffectExtended is the parameterized effect: a force ramp over the pull
// with an optional sustain after full pull and a vibration frequency.
type EffectExtended struct {
	StartPos    uint8 // (0-255)
	KeepEffect  bool
	BeginForce  uint8 // (0-255)
	MiddleForce uint8 // (0-255)
	EndForce    uint8 // (0-255)
	Frequency   uint8 // (0-255)
}

// Calibrate puts the trigger into its calibration routine.
type Calibrate struct{}

func (NoEffect) triggerEffect()             {}
func (ContinuousResistance) triggerEffect() {}
func (SectionResistance) triggerEffect()    {}
func (Vibrating) triggerEffect()            {}
func (EffectExtended) triggerEffect()       {}
func (Calibrate) triggerEffect()            {}

func (NoEffect) String() string { return "off" }

func (e ContinuousResistance) String() string {
	return fmt.Sprintf("continuous(start=%d force=%d)", e.StartPos, e.Force)
}

func (e SectionResistance) String() string {
	return fmt.Sprintf("section(start=%d force=%d)", e.StartPos, e.Force)
}

func (e Vibrating) String() string {
	return fmt.Sprintf("vibrating(freq=%d off-time=%d)", e.Frequency, e.OffTime)
}

func (e EffectExtended) String() string {
	return fmt.Sprintf("extended(start=%d keep=%t begin=%d middle=%d end=%d freq=%d)",
		e.StartPos, e.KeepEffect, e.BeginForce, e.MiddleForce, e.EndForce, e.Frequency)
}

func (Calibrate) String() string { return "calibrate" }

// EncodeTriggerEffect renders an effect as its 11-byte sub-report. A nil
// effect encodes like NoEffect, so a zero-valued report stays all zero.
// Unused body bytes always encode as zero.
func EncodeTriggerEffect(e TriggerEffect) [TriggerEffectSize]byte {
	var b [TriggerEffectSize]byte
	switch e := e.(type) {
	case nil, NoEffect:
		b[0] = EffectTagOff
	case ContinuousResistance:
		b[0] = EffectTagContinuousResistance
		b[1] = e.StartPos
		b[2] = e.Force
	case SectionResistance:
		b[0] = EffectTagSectionResistance
		b[1] = e.StartPos
		b[2] = e.Force
	case Vibrating:
		b[0] = EffectTagVibrating
		b[1] = e.Frequency
		b[2] = e.OffTime
	case EffectExtended:
		b[0] = EffectTagExtended
		b[1] = 0xFF - e.StartPos
		if e.KeepEffect {
			b[2] = 0x02
		}
		b[4] = e.BeginForce
		b[5] = e.MiddleForce
		b[6] = e.EndForce
		b[9] = max(1, e.Frequency/2)
	case Calibrate:
		b[0] = EffectTagCalibrate
	}
	return b
}

// DecodeTriggerEffect reads an 11-byte sub-report back into its variant.
// The extended frequency is halved on encode, so the reconstructed value
// is the nearest even frequency, saturating at 255.
func DecodeTriggerEffect(b []byte) (TriggerEffect, error) {
	if len(b) < TriggerEffectSize {
		return nil, io.ErrUnexpectedEOF
	}
	switch b[0] {
	case EffectTagOff:
		return NoEffect{}, nil
	case EffectTagContinuousResistance:
		return ContinuousResistance{StartPos: b[1], Force: b[2]}, nil
	case EffectTagSectionResistance:
		return SectionResistance{StartPos: b[1], Force: b[2]}, nil
	case EffectTagVibrating:
		return Vibrating{Frequency: b[1], OffTime: b[2]}, nil
	case EffectTagExtended:
		freq := int(b[9]) * 2
		if freq > 0xFF {
			freq = 0xFF
		}
		return EffectExtended{
			StartPos:    0xFF - b[1],
			KeepEffect:  b[2]&0x02 != 0,
			BeginForce:  b[4],
			MiddleForce: b[5],
			EndForce:    b[6],
			Frequency:   uint8(freq),
		}, nil
	case EffectTagCalibrate:
		return Calibrate{}, nil
	}
	return nil, fmt.Errorf("unknown trigger effect tag 0x%02x", b[0])
}

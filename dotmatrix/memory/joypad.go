package memory

import "github.com/valerio/go-dotmatrix/dotmatrix/bit"

// JoypadKey represents a key on the Gameboy joypad
type JoypadKey uint8

const (
	JoypadRight JoypadKey = iota
	JoypadLeft
	JoypadUp
	JoypadDown
	JoypadA
	JoypadB
	JoypadSelect
	JoypadStart
)

// Joypad models the 4x2 key matrix behind the P1 register. The two select
// lines (P14 directions, P15 buttons, active low) gate which half of the
// matrix appears on the low four bits. A falling edge on any gated bit
// raises the Joypad interrupt request flag.
type Joypad struct {
	buttons uint8 // A/B/Select/Start, low bits, 1 = released
	dpad    uint8 // Right/Left/Up/Down, low bits, 1 = released
	p1      uint8 // selection bits 4-5 as last written

	// RequestJoypadInt is raised on a key-press edge; the MMU folds it into IF.
	RequestJoypadInt bool
}

// NewJoypad creates a joypad with all keys released and nothing selected.
func NewJoypad() *Joypad {
	return &Joypad{
		buttons: 0x0F,
		dpad:    0x0F,
		p1:      0x30,
	}
}

// Read composes the P1 register: bits 6-7 always 1, selection bits as
// written, and the gated key bits.
//
// The mapping:
//   - if bit 4 is low, bits 0-3 are the 4 d-pad directions
//   - if bit 5 is low, bits 0-3 are A, B, Select, Start
//   - if both are low, hardware ANDs both button sets
//   - if neither is low, the bus floats high (0x0F)
//
// Note that 1 -> key released, 0 -> key pressed.
func (j *Joypad) Read() uint8 {
	result := uint8(0b1100_0000) | (j.p1 & 0b0011_0000)
	result |= j.gatedBits()
	return result
}

func (j *Joypad) gatedBits() uint8 {
	selectDpad := !bit.IsSet(4, j.p1)
	selectButtons := !bit.IsSet(5, j.p1)

	switch {
	case selectButtons && !selectDpad:
		return j.buttons & 0x0F
	case selectDpad && !selectButtons:
		return j.dpad & 0x0F
	case selectButtons && selectDpad:
		return j.buttons & j.dpad & 0x0F
	default:
		return 0x0F
	}
}

// Write stores the selection bits; everything else in P1 is read-only.
func (j *Joypad) Write(value uint8) {
	j.p1 = value & 0b0011_0000
}

// Press updates the matrix for a key press and detects interrupt edges.
func (j *Joypad) Press(key JoypadKey) {
	before := j.gatedBits()

	switch key {
	case JoypadRight:
		j.dpad = bit.Reset(0, j.dpad)
	case JoypadLeft:
		j.dpad = bit.Reset(1, j.dpad)
	case JoypadUp:
		j.dpad = bit.Reset(2, j.dpad)
	case JoypadDown:
		j.dpad = bit.Reset(3, j.dpad)
	case JoypadA:
		j.buttons = bit.Reset(0, j.buttons)
	case JoypadB:
		j.buttons = bit.Reset(1, j.buttons)
	case JoypadSelect:
		j.buttons = bit.Reset(2, j.buttons)
	case JoypadStart:
		j.buttons = bit.Reset(3, j.buttons)
	}

	// interrupt on a 1->0 transition of any gated line
	if before & ^j.gatedBits() != 0 {
		j.RequestJoypadInt = true
	}
}

// Release updates the matrix for a key release.
func (j *Joypad) Release(key JoypadKey) {
	switch key {
	case JoypadRight:
		j.dpad = bit.Set(0, j.dpad)
	case JoypadLeft:
		j.dpad = bit.Set(1, j.dpad)
	case JoypadUp:
		j.dpad = bit.Set(2, j.dpad)
	case JoypadDown:
		j.dpad = bit.Set(3, j.dpad)
	case JoypadA:
		j.buttons = bit.Set(0, j.buttons)
	case JoypadB:
		j.buttons = bit.Set(1, j.buttons)
	case JoypadSelect:
		j.buttons = bit.Set(2, j.buttons)
	case JoypadStart:
		j.buttons = bit.Set(3, j.buttons)
	}
}

package cpu

import (
	"errors"
	"fmt"

	"github.com/valerio/go-dotmatrix/dotmatrix/addr"
	"github.com/valerio/go-dotmatrix/dotmatrix/bit"
	"github.com/valerio/go-dotmatrix/dotmatrix/memory"
)

// ErrIllegalOpcode is returned when the program runs into one of the eleven
// unassigned LR35902 opcodes. The core does not recover.
var ErrIllegalOpcode = errors.New("cpu: illegal opcode")

// Flag is one of the 4 possible flags used in the flag register (high part of AF)
type Flag uint8

const (
	zeroFlag      Flag = 0x80
	subFlag       Flag = 0x40
	halfCarryFlag Flag = 0x20
	carryFlag     Flag = 0x10
)

// CPU is the main struct holding LR35902 state.
//
// Every memory access goes through readByte/writeByte, which forward 4
// T-cycles to the MMU's Clock so the timer, PPU and APU observe state at the
// instant of the access. Instructions add their internal (non-bus) cycles
// with explicit clock calls.
type CPU struct {
	memory *memory.MMU

	a, f uint8
	b, c uint8
	d, e uint8
	h, l uint8
	sp   uint16
	pc   uint16

	ime      bool
	imeDelay int
	halted   bool
	stopped  bool
	haltBug  bool

	currentOpcode uint8
	cycles        int
}

// New returns a CPU attached to the given MMU, in the post-boot state.
func New(mmu *memory.MMU) *CPU {
	c := &CPU{memory: mmu}
	c.SimulateBoot()
	return c
}

// SimulateBoot applies the register and I/O snapshot the boot ROM leaves
// behind, then points PC at the cartridge entry.
func (c *CPU) SimulateBoot() {
	if c.memory.IsCGB() {
		c.setAF(0x11B0)
	} else {
		c.setAF(0x01B0)
	}
	c.setBC(0x0013)
	c.setDE(0x00D8)
	c.setHL(0x014D)
	c.sp = 0xFFFE
	c.pc = 0x0100

	for _, reg := range []struct {
		addr  uint16
		value uint8
	}{
		{0xFF05, 0x00}, {0xFF06, 0x00}, {0xFF07, 0x00},
		// power the APU on first so the channel register writes stick
		{0xFF26, 0xF1},
		{0xFF10, 0x80}, {0xFF11, 0xBF}, {0xFF12, 0xF3}, {0xFF14, 0xBF},
		{0xFF16, 0x3F}, {0xFF17, 0x00}, {0xFF19, 0xBF},
		{0xFF1A, 0x7F}, {0xFF1B, 0xFF}, {0xFF1C, 0x9F}, {0xFF1E, 0xBF},
		{0xFF20, 0xFF}, {0xFF21, 0x00}, {0xFF22, 0x00}, {0xFF23, 0xBF},
		{0xFF24, 0x77}, {0xFF25, 0xF3},
		{0xFF40, 0x91}, {0xFF41, 0x81}, {0xFF42, 0x00}, {0xFF43, 0x00},
		{0xFF45, 0x00}, {0xFF47, 0xFC}, {0xFF48, 0xFF}, {0xFF49, 0xFF},
		{0xFF4A, 0x00}, {0xFF4B, 0x00},
		{0xFFFF, 0x00},
	} {
		c.memory.Write(reg.addr, reg.value)
	}
}

// Exec advances by one instruction (or one DMA/halt step) and returns the
// number of T-cycles consumed.
func (c *CPU) Exec() (int, error) {
	c.cycles = 0

	if c.halted {
		c.haltTick()
		return c.cycles, nil
	}
	if c.stopped {
		c.stopTick()
		return c.cycles, nil
	}

	switch {
	case c.memory.Hdma.Type == memory.GPDma:
		c.gdmaTick()
	case c.memory.Hdma.Type == memory.HBlankDma && c.memory.InHBlank():
		c.hdmaTick()
	default:
		if err := c.cpuTick(); err != nil {
			return c.cycles, err
		}
	}

	return c.cycles, nil
}

func (c *CPU) cpuTick() error {
	c.serviceInterrupts()

	opcode := c.fetch()
	c.currentOpcode = opcode

	var op Opcode
	if opcode == 0xCB {
		op = opcodeCBTable[c.readImmediate()]
	} else {
		op = opcodeTable[opcode]
	}
	if op == nil {
		return fmt.Errorf("%w: 0x%02X at 0x%04X", ErrIllegalOpcode, opcode, c.pc-1)
	}
	op(c)

	// EI enables interrupts after the instruction that follows it
	if c.imeDelay > 0 {
		c.imeDelay--
		if c.imeDelay == 0 {
			c.ime = true
		}
	}

	return nil
}

func (c *CPU) haltTick() {
	c.clock(4)
	c.serviceInterrupts()
}

func (c *CPU) stopTick() {
	c.clock(4)
	// a pressed key on any selected line wakes the CPU
	if c.memory.Read(addr.P1)&0x0F != 0x0F {
		c.leaveStopMode()
		c.clock(8)
	}
}

// leaveStopMode burns the 8192 T-cycle (2048 M-cycle) wake delay.
func (c *CPU) leaveStopMode() {
	c.stopped = false
	for n := 0; n < 0x200; n++ {
		c.clock(0x10)
	}
}

func (c *CPU) gdmaTick() {
	c.clock(4)
	cycles := c.memory.GDmaTick()
	if c.memory.DoubleSpeed {
		cycles *= 2
	}
	c.clock(cycles)
}

func (c *CPU) hdmaTick() {
	if c.memory.Hdma.NewHdma {
		c.memory.Hdma.NewHdma = false
		c.clock(4)
	}
	cycles := c.memory.HDmaTick()
	if c.memory.DoubleSpeed {
		cycles *= 2
	}
	c.clock(cycles)
}

// serviceInterrupts checks IE & IF and services the lowest pending interrupt.
// Any pending enabled interrupt also wakes a halted CPU, IME or not. The
// poll goes through the MMU's latch accessors rather than bus reads: the
// latch sits on the CPU side of the bus, out of reach of OAM DMA blocking.
func (c *CPU) serviceInterrupts() {
	pending := c.pendingInterrupts()

	if pending == 0 {
		return
	}

	if c.halted {
		c.halted = false
		c.clock(4)
	}

	if !c.ime {
		return
	}

	for i := uint8(0); i < 5; i++ {
		mask := uint8(1) << i
		if pending&mask == 0 {
			continue
		}

		c.ime = false
		c.imeDelay = 0
		c.memory.AcknowledgeInterrupt(i)

		// push PC high then low; the two bus writes plus the idle cycles
		// cost 20 T-cycles in total
		c.sp--
		c.writeByte(c.sp, bit.High(c.pc))
		c.sp--
		c.writeByte(c.sp, bit.Low(c.pc))
		c.pc = 0x0040 + 8*uint16(i)
		c.clock(12)
		break
	}
}

// clock accounts internal cycles and forwards them to the clocked devices.
func (c *CPU) clock(cycles int) {
	c.cycles += c.memory.Clock(cycles)
}

// fetch reads the next opcode byte. A pending HALT bug makes PC stick for
// exactly one fetch.
func (c *CPU) fetch() uint8 {
	value := c.readByte(c.pc)
	if c.haltBug {
		c.haltBug = false
	} else {
		c.pc++
	}
	return value
}

// readImmediate reads an operand byte at PC.
func (c *CPU) readImmediate() uint8 {
	value := c.readByte(c.pc)
	c.pc++
	return value
}

// readImmediateWord reads a 16-bit little-endian operand at PC.
func (c *CPU) readImmediateWord() uint16 {
	low := c.readImmediate()
	high := c.readImmediate()
	return bit.Combine(high, low)
}

func (c *CPU) readByte(address uint16) uint8 {
	value := c.memory.Read(address)
	c.clock(4)
	return value
}

func (c *CPU) writeByte(address uint16, value uint8) {
	c.memory.Write(address, value)
	c.clock(4)
}

// halt enters HALT, or arms the HALT bug when interrupts are already
// pending with IME off: the byte after HALT is then executed twice.
func (c *CPU) halt() {
	if !c.ime && c.pendingInterrupts() != 0 {
		c.haltBug = true
		return
	}
	c.halted = true
}

// pendingInterrupts returns the enabled-and-requested interrupt bits.
func (c *CPU) pendingInterrupts() uint8 {
	return c.memory.InterruptEnable() & c.memory.RequestedInterrupts() & 0x1F
}

// stop enters STOP, or performs the speed switch when KEY1 has the prepare
// bit armed (CGB). The switch leaves STOP after 2050 M-cycles: the 8192
// T-cycle wake delay plus 8 T-cycles.
func (c *CPU) stop() {
	if c.memory.PrepareSpeedSwitch {
		c.memory.ToggleSpeed()
		c.stopped = true
		c.leaveStopMode()
		c.clock(8)
		return
	}
	c.stopped = true
}

// register pair accessors

func (c *CPU) getAF() uint16 { return bit.Combine(c.a, c.f) }
func (c *CPU) getBC() uint16 { return bit.Combine(c.b, c.c) }
func (c *CPU) getDE() uint16 { return bit.Combine(c.d, c.e) }
func (c *CPU) getHL() uint16 { return bit.Combine(c.h, c.l) }

func (c *CPU) setAF(value uint16) {
	c.a = bit.High(value)
	// the low nibble of F is hardwired to zero
	c.f = bit.Low(value) & 0xF0
}

func (c *CPU) setBC(value uint16) {
	c.b = bit.High(value)
	c.c = bit.Low(value)
}

func (c *CPU) setDE(value uint16) {
	c.d = bit.High(value)
	c.e = bit.Low(value)
}

func (c *CPU) setHL(value uint16) {
	c.h = bit.High(value)
	c.l = bit.Low(value)
}

// flag helpers

func (c *CPU) setFlag(flag Flag) {
	c.f |= uint8(flag)
}

func (c *CPU) resetFlag(flag Flag) {
	c.f &^= uint8(flag)
}

func (c *CPU) isSetFlag(flag Flag) bool {
	return c.f&uint8(flag) != 0
}

func (c *CPU) setFlagToCondition(flag Flag, condition bool) {
	if condition {
		c.setFlag(flag)
	} else {
		c.resetFlag(flag)
	}
}

func (c *CPU) flagToBit(flag Flag) uint8 {
	if c.isSetFlag(flag) {
		return 1
	}
	return 0
}

// accessors used by the orchestrator and tests

// GetPC returns the current program counter.
func (c *CPU) GetPC() uint16 {
	return c.pc
}

// IsHalted reports whether the CPU is in HALT.
func (c *CPU) IsHalted() bool {
	return c.halted
}

// IsStopped reports whether the CPU is in STOP.
func (c *CPU) IsStopped() bool {
	return c.stopped
}

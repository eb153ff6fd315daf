package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-dotmatrix/dotmatrix/addr"
	"github.com/valerio/go-dotmatrix/dotmatrix/cart"
	"github.com/valerio/go-dotmatrix/dotmatrix/memory"
)

// newTestCPU builds a CPU on a plain 32KB ROM-only cartridge. Code under
// test is written into WRAM and PC pointed at it, so tests don't need to
// assemble real cartridges. The LCD is turned off to keep OAM/VRAM open.
func newTestCPU(t *testing.T) *CPU {
	t.Helper()

	rom := make([]byte, 0x8000)
	c, err := cart.New(rom, nil)
	require.NoError(t, err)

	mmu := memory.New(c)
	cpu := New(mmu)
	mmu.Write(addr.LCDC, 0x00)
	mmu.Write(addr.IE, 0x00)
	mmu.Write(addr.IF, 0x00)
	return cpu
}

// loadProgram writes opcodes into WRAM and points PC at them.
func loadProgram(c *CPU, code ...byte) {
	base := uint16(0xC000)
	for i, b := range code {
		c.memory.Write(base+uint16(i), b)
	}
	c.pc = base
}

func step(t *testing.T, c *CPU) int {
	t.Helper()
	cycles, err := c.Exec()
	require.NoError(t, err)
	return cycles
}

func TestBasicLoads(t *testing.T) {
	c := newTestCPU(t)

	loadProgram(c, 0x06, 0x42) // LD B, 0x42
	cycles := step(t, c)
	assert.Equal(t, 8, cycles)
	assert.Equal(t, uint8(0x42), c.b)

	loadProgram(c, 0x78) // LD A, B
	cycles = step(t, c)
	assert.Equal(t, 4, cycles)
	assert.Equal(t, uint8(0x42), c.a)

	loadProgram(c, 0x21, 0x34, 0x12) // LD HL, 0x1234
	cycles = step(t, c)
	assert.Equal(t, 12, cycles)
	assert.Equal(t, uint16(0x1234), c.getHL())
}

func TestLoadThroughHL(t *testing.T) {
	c := newTestCPU(t)

	c.setHL(0xC100)
	c.a = 0x99
	loadProgram(c, 0x77) // LD (HL), A
	cycles := step(t, c)
	assert.Equal(t, 8, cycles)
	assert.Equal(t, uint8(0x99), c.memory.Read(0xC100))

	c.b = 0
	loadProgram(c, 0x46) // LD B, (HL)
	step(t, c)
	assert.Equal(t, uint8(0x99), c.b)
}

func TestAddFlags(t *testing.T) {
	tests := []struct {
		name    string
		a, v    uint8
		result  uint8
		z, h, c bool
	}{
		{"no flags", 0x01, 0x02, 0x03, false, false, false},
		{"half carry", 0x0F, 0x01, 0x10, false, true, false},
		{"carry and zero", 0xFF, 0x01, 0x00, true, true, true},
		{"carry only", 0xF0, 0x20, 0x10, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCPU(t)
			c.a = tt.a
			c.add(tt.v)
			assert.Equal(t, tt.result, c.a)
			assert.Equal(t, tt.z, c.isSetFlag(zeroFlag))
			assert.Equal(t, tt.h, c.isSetFlag(halfCarryFlag))
			assert.Equal(t, tt.c, c.isSetFlag(carryFlag))
			assert.False(t, c.isSetFlag(subFlag))
		})
	}
}

func TestSubFlags(t *testing.T) {
	c := newTestCPU(t)

	c.a = 0x10
	c.sub(0x01)
	assert.Equal(t, uint8(0x0F), c.a)
	assert.True(t, c.isSetFlag(subFlag))
	assert.True(t, c.isSetFlag(halfCarryFlag))
	assert.False(t, c.isSetFlag(carryFlag))

	c.a = 0x00
	c.sub(0x01)
	assert.Equal(t, uint8(0xFF), c.a)
	assert.True(t, c.isSetFlag(carryFlag))
}

func TestAdcSbcUseCarry(t *testing.T) {
	c := newTestCPU(t)

	c.a = 0x00
	c.setFlag(carryFlag)
	c.adc(0xFF)
	assert.Equal(t, uint8(0x00), c.a)
	assert.True(t, c.isSetFlag(zeroFlag))
	assert.True(t, c.isSetFlag(carryFlag))

	c.a = 0x00
	c.setFlag(carryFlag)
	c.sbc(0x00)
	assert.Equal(t, uint8(0xFF), c.a)
	assert.True(t, c.isSetFlag(carryFlag))
	assert.True(t, c.isSetFlag(halfCarryFlag))
}

func TestIncDecFlags(t *testing.T) {
	c := newTestCPU(t)

	c.b = 0x0F
	c.inc(&c.b)
	assert.Equal(t, uint8(0x10), c.b)
	assert.True(t, c.isSetFlag(halfCarryFlag))

	c.b = 0xFF
	c.inc(&c.b)
	assert.True(t, c.isSetFlag(zeroFlag))

	// INC/DEC never touch carry
	c.setFlag(carryFlag)
	c.b = 0x10
	c.dec(&c.b)
	assert.Equal(t, uint8(0x0F), c.b)
	assert.True(t, c.isSetFlag(halfCarryFlag))
	assert.True(t, c.isSetFlag(carryFlag))
}

func TestDAA(t *testing.T) {
	tests := []struct {
		name   string
		a      uint8
		add    uint8
		result uint8
	}{
		{"no adjust", 0x12, 0x34, 0x46},
		{"low nibble adjust", 0x19, 0x28, 0x47},
		{"high nibble adjust", 0x90, 0x20, 0x10},
		{"both nibbles", 0x99, 0x99, 0x98},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCPU(t)
			c.a = tt.a
			c.add(tt.add)
			c.daa()
			assert.Equal(t, tt.result, c.a)
		})
	}
}

func TestStackPushPop(t *testing.T) {
	c := newTestCPU(t)
	c.sp = 0xFFFE

	c.pushStack(0x1234)
	// high byte pushed first, so it sits at the higher address
	assert.Equal(t, uint8(0x12), c.memory.Read(0xFFFD))
	assert.Equal(t, uint8(0x34), c.memory.Read(0xFFFC))
	assert.Equal(t, uint16(0xFFFC), c.sp)

	assert.Equal(t, uint16(0x1234), c.popStack())
	assert.Equal(t, uint16(0xFFFE), c.sp)
}

func TestPushPopOpcodeCycles(t *testing.T) {
	c := newTestCPU(t)
	c.sp = 0xFFFE
	c.setBC(0xBEEF)

	loadProgram(c, 0xC5) // PUSH BC
	assert.Equal(t, 16, step(t, c))

	c.setBC(0)
	loadProgram(c, 0xC1) // POP BC
	assert.Equal(t, 12, step(t, c))
	assert.Equal(t, uint16(0xBEEF), c.getBC())
}

func TestPopAFMasksLowNibble(t *testing.T) {
	c := newTestCPU(t)
	c.sp = 0xFFFC
	c.memory.Write(0xFFFC, 0xFF)
	c.memory.Write(0xFFFD, 0xAB)

	loadProgram(c, 0xF1) // POP AF
	step(t, c)
	assert.Equal(t, uint8(0xAB), c.a)
	assert.Equal(t, uint8(0xF0), c.f, "low nibble of F is hardwired to zero")
}

func TestJumpsAndCalls(t *testing.T) {
	t.Run("JR taken/not taken cycles", func(t *testing.T) {
		c := newTestCPU(t)
		loadProgram(c, 0x20, 0x05) // JR NZ, +5
		c.resetFlag(zeroFlag)
		assert.Equal(t, 12, step(t, c))
		assert.Equal(t, uint16(0xC007), c.pc)

		loadProgram(c, 0x20, 0x05)
		c.setFlag(zeroFlag)
		assert.Equal(t, 8, step(t, c))
		assert.Equal(t, uint16(0xC002), c.pc)
	})

	t.Run("JR negative offset", func(t *testing.T) {
		c := newTestCPU(t)
		loadProgram(c, 0x18, 0xFE) // JR -2: loop back onto itself
		step(t, c)
		assert.Equal(t, uint16(0xC000), c.pc)
	})

	t.Run("JP", func(t *testing.T) {
		c := newTestCPU(t)
		loadProgram(c, 0xC3, 0x00, 0xD0) // JP 0xD000
		assert.Equal(t, 16, step(t, c))
		assert.Equal(t, uint16(0xD000), c.pc)
	})

	t.Run("JP (HL)", func(t *testing.T) {
		c := newTestCPU(t)
		c.setHL(0xD000)
		loadProgram(c, 0xE9)
		assert.Equal(t, 4, step(t, c))
		assert.Equal(t, uint16(0xD000), c.pc)
	})

	t.Run("CALL and RET", func(t *testing.T) {
		c := newTestCPU(t)
		c.sp = 0xFFFE
		loadProgram(c, 0xCD, 0x00, 0xD0) // CALL 0xD000
		assert.Equal(t, 24, step(t, c))
		assert.Equal(t, uint16(0xD000), c.pc)

		c.memory.Write(0xD000, 0xC9) // RET
		assert.Equal(t, 16, step(t, c))
		assert.Equal(t, uint16(0xC003), c.pc)
	})

	t.Run("RET conditional cycles", func(t *testing.T) {
		c := newTestCPU(t)
		c.sp = 0xFFFC
		c.memory.Write(0xFFFC, 0x00)
		c.memory.Write(0xFFFD, 0xD0)

		loadProgram(c, 0xC0) // RET NZ, not taken
		c.setFlag(zeroFlag)
		assert.Equal(t, 8, step(t, c))

		loadProgram(c, 0xC0) // RET NZ, taken
		c.resetFlag(zeroFlag)
		assert.Equal(t, 20, step(t, c))
		assert.Equal(t, uint16(0xD000), c.pc)
	})
}

func TestAddSPSigned(t *testing.T) {
	c := newTestCPU(t)
	c.sp = 0xFFF8
	loadProgram(c, 0xE8, 0x08) // ADD SP, +8
	assert.Equal(t, 16, step(t, c))
	assert.Equal(t, uint16(0x0000), c.sp)
	// H from bit 3, C from bit 7 of the unsigned addition
	assert.True(t, c.isSetFlag(halfCarryFlag))
	assert.True(t, c.isSetFlag(carryFlag))
	assert.False(t, c.isSetFlag(zeroFlag))

	c.sp = 0x000F
	loadProgram(c, 0xF8, 0xFF) // LD HL, SP-1
	assert.Equal(t, 12, step(t, c))
	assert.Equal(t, uint16(0x000E), c.getHL())
}

func TestLDnnSP(t *testing.T) {
	c := newTestCPU(t)
	c.sp = 0xBEEF
	loadProgram(c, 0x08, 0x00, 0xC1) // LD (0xC100), SP
	assert.Equal(t, 20, step(t, c))
	assert.Equal(t, uint8(0xEF), c.memory.Read(0xC100), "little endian: low byte first")
	assert.Equal(t, uint8(0xBE), c.memory.Read(0xC101))
}

func TestInterruptServicing(t *testing.T) {
	c := newTestCPU(t)
	c.sp = 0xFFFE
	c.ime = true
	c.memory.Write(addr.IE, 0x04)                      // timer enabled
	c.memory.RequestInterrupt(addr.TimerInterrupt)     // timer requested
	loadProgram(c, 0x00)

	cycles := step(t, c)

	assert.Equal(t, uint16(0x0051), c.pc, "timer vector 0x50 plus the fetched NOP")
	assert.False(t, c.ime)
	assert.Equal(t, uint8(0x00), c.memory.Read(addr.IF)&0x1F, "IF bit cleared")
	// 20 cycles of servicing plus the NOP that follows
	assert.Equal(t, 24, cycles)
	// old PC is on the stack
	assert.Equal(t, uint8(0xC0), c.memory.Read(0xFFFD))
	assert.Equal(t, uint8(0x00), c.memory.Read(0xFFFC))
}

func TestInterruptPriority(t *testing.T) {
	c := newTestCPU(t)
	c.sp = 0xFFFE
	c.ime = true
	c.memory.Write(addr.IE, 0x1F)
	c.memory.Write(addr.IF, 0x12) // STAT and joypad both pending
	loadProgram(c, 0x00)

	step(t, c)
	assert.Equal(t, uint16(0x0049), c.pc, "lowest-index pending interrupt (STAT) wins")
	assert.Equal(t, uint8(0x10), c.memory.Read(addr.IF)&0x1F, "only the serviced bit is cleared")
}

func TestHaltWakesWithoutIME(t *testing.T) {
	c := newTestCPU(t)
	c.ime = false
	loadProgram(c, 0x76, 0x00) // HALT; NOP
	step(t, c)
	assert.True(t, c.halted)

	// halting costs 4 cycles per tick while nothing is pending
	cycles := step(t, c)
	assert.Equal(t, 4, cycles)
	assert.True(t, c.halted)

	// a pending enabled interrupt wakes the CPU but is not serviced (no IME)
	c.memory.Write(addr.IE, 0x04)
	c.memory.RequestInterrupt(addr.TimerInterrupt)
	step(t, c)
	assert.False(t, c.halted)
	assert.Equal(t, uint8(0x04), c.memory.Read(addr.IF)&0x1F, "IF stays set")
}

func TestHaltBug(t *testing.T) {
	c := newTestCPU(t)
	c.ime = false
	c.memory.Write(addr.IE, 0x04)
	c.memory.RequestInterrupt(addr.TimerInterrupt)

	// HALT with IME off and an interrupt already pending: the next byte is
	// executed twice. INC B after the HALT therefore runs two times.
	loadProgram(c, 0x76, 0x04, 0x00) // HALT; INC B; NOP
	c.b = 0

	step(t, c) // HALT arms the bug, does not halt
	assert.False(t, c.halted)

	step(t, c) // INC B, PC stuck
	step(t, c) // INC B again
	assert.Equal(t, uint8(2), c.b)
}

func TestIllegalOpcode(t *testing.T) {
	c := newTestCPU(t)
	loadProgram(c, 0xD3)
	_, err := c.Exec()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIllegalOpcode))
}

func TestEIDelay(t *testing.T) {
	c := newTestCPU(t)
	c.sp = 0xFFFE
	c.memory.Write(addr.IE, 0x04)
	c.memory.RequestInterrupt(addr.TimerInterrupt)

	loadProgram(c, 0xFB, 0x00, 0x00) // EI; NOP; NOP
	step(t, c)                       // EI
	assert.False(t, c.ime)
	step(t, c) // the instruction after EI still runs with IME off
	assert.True(t, c.ime)

	step(t, c) // now the pending interrupt is serviced
	assert.Equal(t, uint16(0x0050+1), c.pc, "vector plus the fetched NOP")
}

func TestCBOpcodes(t *testing.T) {
	t.Run("BIT sets zero flag", func(t *testing.T) {
		c := newTestCPU(t)
		c.b = 0x00
		loadProgram(c, 0xCB, 0x40) // BIT 0, B
		assert.Equal(t, 8, step(t, c))
		assert.True(t, c.isSetFlag(zeroFlag))
		assert.True(t, c.isSetFlag(halfCarryFlag))
	})

	t.Run("SET and RES on (HL)", func(t *testing.T) {
		c := newTestCPU(t)
		c.setHL(0xC100)
		c.memory.Write(0xC100, 0x00)

		loadProgram(c, 0xCB, 0xC6) // SET 0, (HL)
		assert.Equal(t, 16, step(t, c))
		assert.Equal(t, uint8(0x01), c.memory.Read(0xC100))

		loadProgram(c, 0xCB, 0x86) // RES 0, (HL)
		step(t, c)
		assert.Equal(t, uint8(0x00), c.memory.Read(0xC100))
	})

	t.Run("SWAP", func(t *testing.T) {
		c := newTestCPU(t)
		c.a = 0xF1
		loadProgram(c, 0xCB, 0x37) // SWAP A
		step(t, c)
		assert.Equal(t, uint8(0x1F), c.a)
	})

	t.Run("SRL carries out bit 0", func(t *testing.T) {
		c := newTestCPU(t)
		c.a = 0x01
		loadProgram(c, 0xCB, 0x3F) // SRL A
		step(t, c)
		assert.Equal(t, uint8(0x00), c.a)
		assert.True(t, c.isSetFlag(zeroFlag))
		assert.True(t, c.isSetFlag(carryFlag))
	})
}

func TestRotateAResetsZero(t *testing.T) {
	c := newTestCPU(t)
	c.a = 0x80
	loadProgram(c, 0x07) // RLCA
	step(t, c)
	assert.Equal(t, uint8(0x01), c.a)
	assert.True(t, c.isSetFlag(carryFlag))
	assert.False(t, c.isSetFlag(zeroFlag), "RLCA always clears Z")
}

func TestStopSpeedSwitch(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x143] = 0x80 // CGB cart
	c, err := cart.New(rom, nil)
	require.NoError(t, err)
	cpu := New(memory.New(c))
	cpu.memory.Write(addr.LCDC, 0x00)

	cpu.memory.Write(addr.KEY1, 0x01) // arm the prepare bit
	loadProgram(cpu, 0x10, 0x00)      // STOP

	cycles := step(t, cpu)

	assert.True(t, cpu.memory.DoubleSpeed)
	assert.False(t, cpu.stopped, "speed switch exits STOP after the wake delay")
	// the 8192 T-cycle wake delay is reported at the doubled rate
	assert.GreaterOrEqual(t, cycles, 4096)

	// at double speed an opcode costs half as many frame-budget cycles, so
	// a frame holds twice as many instructions
	loadProgram(cpu, 0x00)
	assert.Equal(t, 2, step(t, cpu))
}

func TestMemoryAccessCycleCost(t *testing.T) {
	// every memory access inside an opcode costs exactly 4 T-cycles
	tests := []struct {
		name   string
		code   []byte
		cycles int
	}{
		{"NOP", []byte{0x00}, 4},
		{"LD B, n", []byte{0x06, 0x00}, 8},
		{"LD B, (HL)", []byte{0x46}, 8},
		{"INC (HL)", []byte{0x34}, 12},
		{"LD (HL), n", []byte{0x36, 0x7F}, 12},
		{"ADD HL, BC", []byte{0x09}, 8},
		{"RST 18H", []byte{0xDF}, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCPU(t)
			c.sp = 0xFFFE
			c.setHL(0xC200)
			loadProgram(c, tt.code...)
			assert.Equal(t, tt.cycles, step(t, c))
		})
	}
}

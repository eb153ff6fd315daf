package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-dotmatrix/dotmatrix/addr"
	"github.com/valerio/go-dotmatrix/dotmatrix/cart"
)

func newTestMMU(t *testing.T, rom []byte) *MMU {
	t.Helper()
	if rom == nil {
		rom = make([]byte, 0x8000)
	}
	c, err := cart.New(rom, nil)
	require.NoError(t, err)
	return New(c)
}

func TestWRAMAndHRAMRoundTrip(t *testing.T) {
	mmu := newTestMMU(t, nil)

	addresses := []uint16{0xC000, 0xCFFF, 0xD000, 0xDFFF, 0xFF80, 0xFFFE}
	for _, address := range addresses {
		mmu.Write(address, 0x5A)
		assert.Equal(t, uint8(0x5A), mmu.Read(address), "address 0x%04X", address)
	}
}

func TestEchoRAMMirrorsWRAM(t *testing.T) {
	mmu := newTestMMU(t, nil)

	mmu.Write(0xC123, 0x77)
	assert.Equal(t, uint8(0x77), mmu.Read(0xE123))

	mmu.Write(0xE456, 0x88)
	assert.Equal(t, uint8(0x88), mmu.Read(0xC456))
}

func TestUnusableRegion(t *testing.T) {
	mmu := newTestMMU(t, nil)
	mmu.Write(0xFEA0, 0xFF)
	assert.Equal(t, uint8(0x00), mmu.Read(0xFEA0))
	assert.Equal(t, uint8(0x00), mmu.Read(0xFEFF))
}

func TestIFUpperBitsReadAsOne(t *testing.T) {
	mmu := newTestMMU(t, nil)
	mmu.Write(addr.IF, 0x00)
	assert.Equal(t, uint8(0xE0), mmu.Read(addr.IF))

	mmu.RequestInterrupt(addr.VBlankInterrupt)
	assert.Equal(t, uint8(0xE1), mmu.Read(addr.IF))
}

func TestInterruptFlagsAreDeviceFlags(t *testing.T) {
	mmu := newTestMMU(t, nil)

	mmu.RequestInterrupt(addr.TimerInterrupt)
	mmu.RequestInterrupt(addr.JoypadInterrupt)
	assert.Equal(t, uint8(0x14), mmu.Read(addr.IF)&0x1F)

	// writing IF rewrites the device request flags
	mmu.Write(addr.IF, 0x01)
	assert.Equal(t, uint8(0x01), mmu.Read(addr.IF)&0x1F)
	assert.True(t, mmu.GPU().RequestVBlankInt)
}

func TestOAMDMATransfer(t *testing.T) {
	mmu := newTestMMU(t, nil)
	mmu.Write(addr.LCDC, 0x00) // LCD off keeps OAM readable

	for i := uint16(0); i < 0xA0; i++ {
		mmu.Write(0xC000+i, uint8(i))
	}

	mmu.Write(addr.DMA, 0xC0)
	assert.True(t, mmu.OamDma.Active())

	// mid-transfer, everything outside HRAM reads as open bus, the I/O
	// registers included
	mmu.Clock(4)
	assert.Equal(t, uint8(0xFF), mmu.Read(0xC000))
	assert.Equal(t, uint8(0xFF), mmu.Read(addr.LY))
	assert.Equal(t, uint8(0xFF), mmu.Read(addr.IE))

	// HRAM stays reachable
	mmu.Write(0xFF85, 0x42)
	assert.Equal(t, uint8(0x42), mmu.Read(0xFF85))

	// 160 M-cycles later the transfer is done
	mmu.Clock(636)
	assert.False(t, mmu.OamDma.Active())

	for i := uint16(0); i < 0xA0; i++ {
		assert.Equal(t, uint8(i), mmu.Read(0xFE00+i), "OAM byte %d", i)
	}
}

func TestWRAMBankingCGB(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x143] = 0x80
	mmu := newTestMMU(t, rom)

	mmu.Write(0xD000, 0x11) // bank 1 (default)
	mmu.Write(addr.SVBK, 0x02)
	mmu.Write(0xD000, 0x22)
	assert.Equal(t, uint8(0x22), mmu.Read(0xD000))

	mmu.Write(addr.SVBK, 0x01)
	assert.Equal(t, uint8(0x11), mmu.Read(0xD000))

	// bank 0 selects bank 1
	mmu.Write(addr.SVBK, 0x00)
	assert.Equal(t, uint8(0x11), mmu.Read(0xD000))

	// bank 0 at 0xC000 is never remapped
	mmu.Write(0xC000, 0x33)
	mmu.Write(addr.SVBK, 0x07)
	assert.Equal(t, uint8(0x33), mmu.Read(0xC000))
}

func TestWRAMBankingIgnoredOnDMG(t *testing.T) {
	mmu := newTestMMU(t, nil)
	mmu.Write(0xD000, 0x11)
	mmu.Write(addr.SVBK, 0x03)
	assert.Equal(t, uint8(0x11), mmu.Read(0xD000), "SVBK has no effect on DMG")
	assert.Equal(t, uint8(0xFF), mmu.Read(addr.SVBK))
}

func TestKEY1SpeedSwitch(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x143] = 0x80
	mmu := newTestMMU(t, rom)

	assert.Equal(t, uint8(0x7E), mmu.Read(addr.KEY1))

	mmu.Write(addr.KEY1, 0x01)
	assert.True(t, mmu.PrepareSpeedSwitch)
	assert.Equal(t, uint8(0x7F), mmu.Read(addr.KEY1))

	mmu.ToggleSpeed()
	assert.True(t, mmu.DoubleSpeed)
	assert.False(t, mmu.PrepareSpeedSwitch)
	assert.Equal(t, uint8(0xFE), mmu.Read(addr.KEY1))
}

func TestDoubleSpeedScalesPPUNotTimer(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x143] = 0x80
	mmu := newTestMMU(t, rom)
	mmu.DoubleSpeed = true

	scaled := mmu.Clock(8)
	assert.Equal(t, 4, scaled, "frame budget sees half the cycles in double speed")
}

func TestJoypadRegister(t *testing.T) {
	mmu := newTestMMU(t, nil)

	// nothing selected: low bits float high
	mmu.Write(addr.P1, 0x30)
	assert.Equal(t, uint8(0xFF), mmu.Read(addr.P1))

	mmu.HandleKeyPress(JoypadA)

	// select buttons (P15 low)
	mmu.Write(addr.P1, 0x10)
	assert.Equal(t, uint8(0xDE), mmu.Read(addr.P1))

	// select directions (P14 low): A is not a direction
	mmu.Write(addr.P1, 0x20)
	assert.Equal(t, uint8(0xEF), mmu.Read(addr.P1))

	mmu.HandleKeyRelease(JoypadA)
	mmu.Write(addr.P1, 0x10)
	assert.Equal(t, uint8(0xDF), mmu.Read(addr.P1))
}

func TestJoypadInterruptOnPress(t *testing.T) {
	mmu := newTestMMU(t, nil)

	// with buttons selected, pressing a button is a falling edge
	mmu.Write(addr.P1, 0x10)
	mmu.HandleKeyPress(JoypadStart)
	assert.Equal(t, uint8(0x10), mmu.Read(addr.IF)&0x1F)

	// releasing never raises an interrupt
	mmu.Write(addr.IF, 0x00)
	mmu.HandleKeyRelease(JoypadStart)
	assert.Equal(t, uint8(0x00), mmu.Read(addr.IF)&0x1F)
}

package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valerio/go-dotmatrix/dotmatrix/addr"
)

func newCGBTestMMU(t *testing.T) *MMU {
	t.Helper()
	rom := make([]byte, 0x8000)
	rom[0x143] = 0x80
	for i := 0; i < 0x100; i++ {
		rom[0x1000+i] = uint8(i)
	}
	return newTestMMU(t, rom)
}

func TestGeneralPurposeDMA(t *testing.T) {
	mmu := newCGBTestMMU(t)
	mmu.Write(addr.LCDC, 0x00)

	// source 0x1000, destination 0x8000, 2 blocks (32 bytes)
	mmu.Write(addr.HDMA1, 0x10)
	mmu.Write(addr.HDMA2, 0x00)
	mmu.Write(addr.HDMA3, 0x00)
	mmu.Write(addr.HDMA4, 0x00)
	mmu.Write(addr.HDMA5, 0x01)

	assert.Equal(t, GPDma, mmu.Hdma.Type)

	cycles := mmu.GDmaTick()
	assert.Equal(t, 64, cycles, "32 T-cycles per 16-byte block")
	assert.Equal(t, NoHdma, mmu.Hdma.Type)

	for i := uint16(0); i < 32; i++ {
		assert.Equal(t, uint8(i), mmu.Read(0x8000+i))
	}
	assert.Equal(t, uint8(0xFF), mmu.Read(addr.HDMA5), "idle reads 0xFF")
}

func TestHBlankDMATransfersOneBlockPerTick(t *testing.T) {
	mmu := newCGBTestMMU(t)
	mmu.Write(addr.LCDC, 0x00)

	mmu.Write(addr.HDMA1, 0x10)
	mmu.Write(addr.HDMA2, 0x00)
	mmu.Write(addr.HDMA3, 0x00)
	mmu.Write(addr.HDMA4, 0x00)
	mmu.Write(addr.HDMA5, 0x81) // bit 7: H-Blank DMA, 2 blocks

	assert.Equal(t, HBlankDma, mmu.Hdma.Type)
	assert.True(t, mmu.Hdma.NewHdma)
	assert.Equal(t, uint8(0x01), mmu.Read(addr.HDMA5), "remaining blocks minus one, bit 7 low")

	cycles := mmu.HDmaTick()
	assert.Equal(t, 32, cycles)
	assert.Equal(t, HBlankDma, mmu.Hdma.Type, "one block left")
	assert.Equal(t, uint8(0x00), mmu.Read(addr.HDMA5))

	mmu.HDmaTick()
	assert.Equal(t, NoHdma, mmu.Hdma.Type)

	for i := uint16(0); i < 32; i++ {
		assert.Equal(t, uint8(i), mmu.Read(0x8000+i))
	}
}

func TestHBlankDMACancel(t *testing.T) {
	mmu := newCGBTestMMU(t)

	mmu.Write(addr.HDMA5, 0x85)
	assert.Equal(t, HBlankDma, mmu.Hdma.Type)

	// writing with bit 7 clear while active cancels
	mmu.Write(addr.HDMA5, 0x00)
	assert.Equal(t, NoHdma, mmu.Hdma.Type)
	assert.Equal(t, uint8(0xFF), mmu.Read(addr.HDMA5))
}

func TestHDMADestinationForcedIntoVRAM(t *testing.T) {
	mmu := newCGBTestMMU(t)
	mmu.Write(addr.LCDC, 0x00)

	// destination high byte 0xFF would land outside VRAM; the engine masks
	// it into the 0x8000-0x9FFF window
	mmu.Write(addr.HDMA1, 0x10)
	mmu.Write(addr.HDMA2, 0x00)
	mmu.Write(addr.HDMA3, 0xFF)
	mmu.Write(addr.HDMA4, 0x10)
	mmu.Write(addr.HDMA5, 0x00)
	mmu.GDmaTick()

	assert.Equal(t, uint8(0x00), mmu.Read(0x9F10))
	assert.Equal(t, uint8(0x0F), mmu.Read(0x9F1F))
}

func TestHDMARegistersIgnoredOnDMG(t *testing.T) {
	mmu := newTestMMU(t, nil)
	mmu.Write(addr.HDMA5, 0x01)
	assert.Equal(t, NoHdma, mmu.Hdma.Type)
	assert.Equal(t, uint8(0xFF), mmu.Read(addr.HDMA5))
}

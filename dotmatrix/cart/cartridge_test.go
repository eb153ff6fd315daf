package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headerROM(cartType, ramSize uint8) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[titleAddress:], "TESTCART")
	rom[cartridgeTypeAddress] = cartType
	rom[ramSizeAddress] = ramSize
	return rom
}

func TestCartridgeTooSmall(t *testing.T) {
	_, err := New(make([]byte, 0x100), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCartridgeTooSmall)
}

func TestHeaderSelectsMBC(t *testing.T) {
	tests := []struct {
		name     string
		cartType uint8
		want     any
	}{
		{"ROM only", 0x00, &MBC0{}},
		{"MBC1", 0x01, &MBC1{}},
		{"MBC1+RAM+BATTERY", 0x03, &MBC1{}},
		{"MBC3+TIMER+BATTERY", 0x0F, &MBC3{}},
		{"MBC3+RAM", 0x12, &MBC3{}},
		{"MBC5", 0x19, &MBC5{}},
		{"MBC5+RUMBLE", 0x1C, &MBC5{}},
		{"unknown falls back to ROM only", 0xFC, &MBC0{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(headerROM(tt.cartType, 0x02), nil)
			require.NoError(t, err)
			assert.IsType(t, tt.want, c.mbc)
		})
	}
}

func TestHeaderRAMSizes(t *testing.T) {
	tests := []struct {
		code uint8
		want int
	}{
		{0, 0},
		{1, 0x800},
		{2, 0x2000},
		{3, 0x8000},
		{4, 0x20000},
		{5, 0x10000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ramSizeBytes(tt.code), "code %d", tt.code)
	}
}

func TestCGBFlag(t *testing.T) {
	rom := headerROM(0x00, 0x00)
	c, err := New(rom, nil)
	require.NoError(t, err)
	assert.False(t, c.IsCGB())

	rom[cgbFlagAddress] = 0x80
	c, err = New(rom, nil)
	require.NoError(t, err)
	assert.True(t, c.IsCGB())
}

func TestTitleParsing(t *testing.T) {
	c, err := New(headerROM(0x00, 0x00), nil)
	require.NoError(t, err)
	assert.Equal(t, "TESTCART", c.Title())
}

func TestRAMRoundTripThroughCartridge(t *testing.T) {
	c, err := New(headerROM(0x03, 0x03), nil)
	require.NoError(t, err)

	c.Write(0x0000, 0x0A) // enable RAM
	c.Write(0xA000, 0x5C)
	assert.Equal(t, uint8(0x5C), c.Read(0xA000))

	snap := c.Snapshot()
	assert.Len(t, snap, 0x8000)
	assert.Equal(t, uint8(0x5C), snap[0])

	c.Write(0xA000, 0x00)
	c.Restore(snap)
	assert.Equal(t, uint8(0x5C), c.Read(0xA000))
}

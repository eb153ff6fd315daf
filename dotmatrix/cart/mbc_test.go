package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMBC1(t *testing.T) {
	t.Run("ROM Bank 0 (Fixed)", func(t *testing.T) {
		rom := make([]uint8, 0x8000)
		for i := range rom {
			rom[i] = uint8(i & 0xFF)
		}

		mbc := NewMBC1(rom, 0)

		for addr := uint16(0x0000); addr < 0x4000; addr += 0x101 {
			got := mbc.Read(addr)
			want := uint8(addr & 0xFF)
			if got != want {
				t.Errorf("Read(0x%04X) = 0x%02X; want 0x%02X", addr, got, want)
			}
		}
	})

	t.Run("ROM Bank Switching", func(t *testing.T) {
		// 4 banks (64KB), each filled with its bank number
		rom := make([]uint8, 0x10000)
		for i := range rom {
			rom[i] = uint8(i / 0x4000)
		}

		mbc := NewMBC1(rom, 0)

		tests := []struct {
			name     string
			bankNum  uint8
			wantByte uint8
		}{
			{"Default Bank (1)", 1, 1},
			{"Switch to Bank 2", 2, 2},
			{"Switch to Bank 3", 3, 3},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if tt.bankNum > 1 {
					mbc.Write(0x2000, tt.bankNum)
				}
				got := mbc.Read(0x4000)
				if got != tt.wantByte {
					t.Errorf("Bank %d: Read(0x4000) = 0x%02X; want 0x%02X",
						tt.bankNum, got, tt.wantByte)
				}
			})
		}
	})

	t.Run("Bank 0 select reads bank 1", func(t *testing.T) {
		rom := make([]uint8, 0x10000)
		for i := range rom {
			rom[i] = uint8(i / 0x4000)
		}
		mbc := NewMBC1(rom, 0)
		mbc.Write(0x2000, 0x00)
		assert.Equal(t, uint8(1), mbc.Read(0x4000))
	})

	t.Run("Upper bits extend ROM bank in mode 0", func(t *testing.T) {
		// 64 banks (1MB)
		rom := make([]uint8, 0x100000)
		for i := range rom {
			rom[i] = uint8(i / 0x4000)
		}
		mbc := NewMBC1(rom, 0)

		mbc.Write(0x2000, 0x01) // low bits = 1
		mbc.Write(0x4000, 0x01) // high bits = 1 -> bank 0x21
		assert.Equal(t, uint8(0x21), mbc.Read(0x4000))
	})

	t.Run("RAM Banking in mode 1", func(t *testing.T) {
		mbc := NewMBC1(make([]uint8, 0x8000), 0x8000) // 32KB RAM

		t.Run("RAM Disabled by Default", func(t *testing.T) {
			assert.Equal(t, uint8(0xFF), mbc.Read(0xA000))
		})

		mbc.Write(0x0000, 0x0A) // enable RAM
		mbc.Write(0x6000, 0x01) // mode 1: upper register selects the RAM bank

		mbc.Write(0x4000, 0x00)
		mbc.Write(0xA000, 0x11)
		mbc.Write(0x4000, 0x02)
		mbc.Write(0xA000, 0x22)

		mbc.Write(0x4000, 0x00)
		assert.Equal(t, uint8(0x11), mbc.Read(0xA000))
		mbc.Write(0x4000, 0x02)
		assert.Equal(t, uint8(0x22), mbc.Read(0xA000))

		mbc.Write(0x0000, 0x00) // disable
		assert.Equal(t, uint8(0xFF), mbc.Read(0xA000))
	})
}

func TestMBC3(t *testing.T) {
	rom := make([]uint8, 0x80000) // 32 banks
	for i := range rom {
		rom[i] = uint8(i / 0x4000)
	}

	t.Run("7-bit ROM banking", func(t *testing.T) {
		mbc := NewMBC3(rom, 0x8000, false, nil)
		mbc.Write(0x2000, 0x1F)
		assert.Equal(t, uint8(0x1F), mbc.Read(0x4000))

		mbc.Write(0x2000, 0x00)
		assert.Equal(t, uint8(0x01), mbc.Read(0x4000), "bank 0 maps to 1")
	})

	t.Run("RAM banks", func(t *testing.T) {
		mbc := NewMBC3(rom, 0x8000, false, nil)
		mbc.Write(0x0000, 0x0A)
		mbc.Write(0x4000, 0x00)
		mbc.Write(0xA000, 0xAA)
		mbc.Write(0x4000, 0x03)
		mbc.Write(0xA000, 0xBB)

		mbc.Write(0x4000, 0x00)
		assert.Equal(t, uint8(0xAA), mbc.Read(0xA000))
		mbc.Write(0x4000, 0x03)
		assert.Equal(t, uint8(0xBB), mbc.Read(0xA000))
	})

	t.Run("RTC latch", func(t *testing.T) {
		now := uint64(0)
		mbc := NewMBC3(rom, 0x8000, true, func() uint64 { return now })
		mbc.Write(0x0000, 0x0A)

		// 1 day, 2 hours, 3 minutes, 4 seconds after the baseline
		now = 24*3600 + 2*3600 + 3*60 + 4

		// latch sequence: write 0x00 then 0x01
		mbc.Write(0x6000, 0x00)
		mbc.Write(0x6000, 0x01)

		readRTC := func(reg uint8) uint8 {
			mbc.Write(0x4000, reg)
			return mbc.Read(0xA000)
		}

		assert.Equal(t, uint8(4), readRTC(0x08), "seconds")
		assert.Equal(t, uint8(3), readRTC(0x09), "minutes")
		assert.Equal(t, uint8(2), readRTC(0x0A), "hours")
		assert.Equal(t, uint8(1), readRTC(0x0B), "days low")

		// registers shadow until the next latch
		now += 10
		assert.Equal(t, uint8(4), readRTC(0x08))
		mbc.Write(0x6000, 0x00)
		mbc.Write(0x6000, 0x01)
		assert.Equal(t, uint8(14), readRTC(0x08))
	})

	t.Run("snapshot carries RTC state", func(t *testing.T) {
		mbc := NewMBC3(rom, 0x2000, true, nil)
		mbc.Write(0x0000, 0x0A)
		mbc.Write(0x4000, 0x00)
		mbc.Write(0xA000, 0x42)
		mbc.rtc.t0 = 0x0102030405060708

		snap := mbc.Snapshot()
		assert.Len(t, snap, 0x2000+13)

		restored := NewMBC3(rom, 0x2000, true, nil)
		restored.Restore(snap)
		restored.Write(0x0000, 0x0A)
		restored.Write(0x4000, 0x00)
		assert.Equal(t, uint8(0x42), restored.Read(0xA000))
		assert.Equal(t, uint64(0x0102030405060708), restored.rtc.t0)
	})
}

func TestMBC5(t *testing.T) {
	rom := make([]uint8, 0x400000) // 256 banks
	for i := range rom {
		rom[i] = uint8((i / 0x4000) & 0xFF)
	}

	t.Run("9-bit bank number", func(t *testing.T) {
		mbc := NewMBC5(rom, 0)
		mbc.Write(0x2000, 0x45)
		assert.Equal(t, uint8(0x45), mbc.Read(0x4000))

		// high bit write wraps past the 256 banks present, landing on bank 0x45
		mbc.Write(0x3000, 0x01)
		assert.Equal(t, uint8(0x45), mbc.Read(0x4000))
	})

	t.Run("bank 0 is selectable", func(t *testing.T) {
		mbc := NewMBC5(rom, 0)
		mbc.Write(0x2000, 0x00)
		assert.Equal(t, uint8(0x00), mbc.Read(0x4000), "MBC5 has no bank-0 quirk")
	})
}

package cart

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const titleLength = 11

const (
	titleAddress         = 0x134
	cgbFlagAddress       = 0x143
	cartridgeTypeAddress = 0x147
	romSizeAddress       = 0x148
	ramSizeAddress       = 0x149
	versionNumberAddress = 0x14C
)

// ErrCartridgeTooSmall is returned when the ROM image is too short to
// contain a full header.
var ErrCartridgeTooSmall = errors.New("cart: image smaller than cartridge header")

// ClockSource provides monotonic wall-clock seconds for the MBC3 RTC.
// Injected so hosts (and tests) control the passage of time.
type ClockSource func() uint64

func systemClock() uint64 {
	return uint64(time.Now().Unix())
}

// Cartridge holds a parsed ROM image and its bank controller.
type Cartridge struct {
	mbc MBC

	title   string
	version uint8
	cgb     bool
}

// New parses the cartridge header and builds the matching bank controller.
// Header byte 0x147 selects the MBC variant, 0x149 the external RAM size,
// 0x143 bit 7 the CGB mode.
func New(data []byte, clock ClockSource) (*Cartridge, error) {
	if len(data) < 0x150 {
		return nil, fmt.Errorf("%w: %d bytes", ErrCartridgeTooSmall, len(data))
	}
	if clock == nil {
		clock = systemClock
	}

	cartType := data[cartridgeTypeAddress]
	ramSize := ramSizeBytes(data[ramSizeAddress])

	var mbc MBC
	switch {
	case cartType == 0x00:
		mbc = NewMBC0(data)
	case cartType >= 0x01 && cartType <= 0x03:
		mbc = NewMBC1(data, ramSize)
	case cartType >= 0x0F && cartType <= 0x13:
		hasRTC := cartType == 0x0F || cartType == 0x10
		mbc = NewMBC3(data, ramSize, hasRTC, clock)
	case cartType >= 0x19 && cartType <= 0x1E:
		mbc = NewMBC5(data, ramSize)
	default:
		// uncommon mappers (MMM01, HuC...) fall back to a plain ROM mapping
		slog.Warn("Unknown cartridge type, falling back to ROM only", "type", fmt.Sprintf("0x%02X", cartType))
		mbc = NewMBC0(data)
	}

	cart := &Cartridge{
		mbc:     mbc,
		title:   titleString(data),
		version: data[versionNumberAddress],
		cgb:     data[cgbFlagAddress]&0x80 != 0,
	}

	slog.Debug("Cartridge loaded",
		"title", cart.title,
		"type", fmt.Sprintf("0x%02X", cartType),
		"cgb", cart.cgb,
		"ram", ramSize)

	return cart, nil
}

func titleString(data []byte) string {
	raw := data[titleAddress : titleAddress+titleLength]
	end := len(raw)
	for i, b := range raw {
		if b == 0 {
			end = i
			break
		}
	}
	return string(raw[:end])
}

// ramSizeBytes maps header byte 0x149 to the external RAM size.
func ramSizeBytes(code uint8) int {
	switch code {
	case 1:
		return 0x800
	case 2:
		return 0x2000
	case 3:
		return 0x8000
	case 4:
		return 0x20000
	case 5:
		return 0x10000
	default:
		return 0
	}
}

// IsCGB reports whether the header requests Game Boy Color mode.
func (c *Cartridge) IsCGB() bool {
	return c.cgb
}

// Title returns the header title string.
func (c *Cartridge) Title() string {
	return c.title
}

// Read dispatches a read in the 0x0000-0x7FFF / 0xA000-0xBFFF ranges.
func (c *Cartridge) Read(address uint16) uint8 {
	return c.mbc.Read(address)
}

// Write dispatches a write to the bank controller registers or external RAM.
func (c *Cartridge) Write(address uint16, value uint8) {
	c.mbc.Write(address, value)
}

// Snapshot returns the battery-backed state: the flat external RAM image,
// plus RTC registers and epoch baseline for MBC3 carts.
func (c *Cartridge) Snapshot() []byte {
	return c.mbc.Snapshot()
}

// Restore loads a snapshot previously produced by Snapshot. Oversized or
// truncated snapshots are applied as far as they go.
func (c *Cartridge) Restore(data []byte) {
	c.mbc.Restore(data)
}

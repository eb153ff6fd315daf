package memory

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-dotmatrix/dotmatrix/addr"
	"github.com/valerio/go-dotmatrix/dotmatrix/audio"
	"github.com/valerio/go-dotmatrix/dotmatrix/cart"
	"github.com/valerio/go-dotmatrix/dotmatrix/serial"
	"github.com/valerio/go-dotmatrix/dotmatrix/video"
)

type memRegion uint8

const (
	regionROM memRegion = iota
	regionVRAM
	regionExtRAM
	regionWRAM
	regionEcho
	regionOAM
	regionIO
)

const (
	wramBankSize  = 0x1000
	wramBankCount = 8
	hramSize      = 0x7F
)

// MMU is the 64 KiB address demultiplexer. It owns work RAM, high RAM, the
// interrupt latch registers and the DMA engines, and routes everything else
// to the component that owns the address. Devices raise interrupts through
// public request flags which the MMU assembles into IF on demand, so no
// component holds a reference back into the MMU.
type MMU struct {
	cart   *cart.Cartridge
	gpu    *video.GPU
	APU    *audio.APU
	timer  Timer
	joypad *Joypad
	serial *serial.LogSink

	wram     [wramBankCount][wramBankSize]byte
	wramBank uint8
	hram     [hramSize]byte
	ie       byte
	io       [0x80]byte // storage for otherwise unmapped I/O registers

	regionMap [256]memRegion

	cgb bool

	// CGB speed switch state (KEY1)
	DoubleSpeed        bool
	PrepareSpeedSwitch bool

	OamDma OamDMA
	Hdma   Hdma
}

// New wires up an MMU around the given cartridge. The CGB flag of the
// cartridge header decides which color-only registers respond.
func New(c *cart.Cartridge) *MMU {
	mmu := &MMU{
		cart:     c,
		gpu:      video.NewGPU(c.IsCGB()),
		APU:      audio.New(),
		joypad:   NewJoypad(),
		serial:   serial.NewLogSink(),
		wramBank: 1,
		cgb:      c.IsCGB(),
	}
	mmu.timer.SetSeed(0xABCC)
	initRegionMap(mmu)
	return mmu
}

func initRegionMap(m *MMU) {
	for i := 0x00; i <= 0x7F; i++ {
		m.regionMap[i] = regionROM
	}
	for i := 0x80; i <= 0x9F; i++ {
		m.regionMap[i] = regionVRAM
	}
	for i := 0xA0; i <= 0xBF; i++ {
		m.regionMap[i] = regionExtRAM
	}
	for i := 0xC0; i <= 0xDF; i++ {
		m.regionMap[i] = regionWRAM
	}
	for i := 0xE0; i <= 0xFD; i++ {
		m.regionMap[i] = regionEcho
	}
	m.regionMap[0xFE] = regionOAM
	m.regionMap[0xFF] = regionIO
}

// GPU exposes the PPU for the orchestrator and tests.
func (m *MMU) GPU() *video.GPU {
	return m.gpu
}

// Serial exposes the serial sink so hosts can read captured test-ROM output.
func (m *MMU) Serial() *serial.LogSink {
	return m.serial
}

// Cartridge exposes the cartridge for battery save handling.
func (m *MMU) Cartridge() *cart.Cartridge {
	return m.cart
}

// IsCGB reports whether the MMU runs with the CGB register set.
func (m *MMU) IsCGB() bool {
	return m.cgb
}

// Clock forwards elapsed T-cycles to every clocked device. The timer always
// receives the unscaled count (it runs at the real-time rate); the PPU and
// APU see half as many ticks in double-speed mode. Returns the scaled cycle
// count the caller should account against the frame budget.
func (m *MMU) Clock(cycles int) int {
	scaled := cycles
	if m.DoubleSpeed {
		scaled = cycles >> 1
	}

	m.timer.Tick(cycles)
	m.serial.Tick(cycles)
	m.gpu.Tick(scaled)
	m.APU.Tick(scaled)

	m.OamDma.Tick(cycles, m)
	m.gpu.OAMDMAActive = m.OamDma.Active()

	return scaled
}

// InHBlank reports whether the PPU is in H-Blank (gates H-Blank DMA).
func (m *MMU) InHBlank() bool {
	return m.gpu.InHBlank()
}

// GDmaTick drains a pending general-purpose DMA, returning consumed cycles.
func (m *MMU) GDmaTick() int {
	return m.Hdma.GPDmaTick(m)
}

// HDmaTick runs one H-Blank DMA block, returning consumed cycles.
func (m *MMU) HDmaTick() int {
	return m.Hdma.HdmaTick(m)
}

// ToggleSpeed performs the KEY1 speed switch.
func (m *MMU) ToggleSpeed() {
	m.DoubleSpeed = !m.DoubleSpeed
	m.PrepareSpeedSwitch = false
	slog.Debug("Speed switch", "double", m.DoubleSpeed)
}

// RequestInterrupt raises the request flag of the chosen interrupt.
func (m *MMU) RequestInterrupt(interrupt addr.Interrupt) {
	switch interrupt {
	case addr.VBlankInterrupt:
		m.gpu.RequestVBlankInt = true
	case addr.LCDSTATInterrupt:
		m.gpu.RequestLCDInt = true
	case addr.TimerInterrupt:
		m.timer.RequestTimerInt = true
	case addr.SerialInterrupt:
		m.serial.RequestSerialInt = true
	case addr.JoypadInterrupt:
		m.joypad.RequestJoypadInt = true
	default:
		panic(fmt.Sprintf("Unknown interrupt: 0x%02X", uint8(interrupt)))
	}
}

// interruptFlags assembles IF from the device request flags. The upper
// three bits of IF always read as 1.
func (m *MMU) interruptFlags() byte {
	flags := byte(0xE0)
	if m.gpu.RequestVBlankInt {
		flags |= 0x01
	}
	if m.gpu.RequestLCDInt {
		flags |= 0x02
	}
	if m.timer.RequestTimerInt {
		flags |= 0x04
	}
	if m.serial.RequestSerialInt {
		flags |= 0x08
	}
	if m.joypad.RequestJoypadInt {
		flags |= 0x10
	}
	return flags
}

// InterruptEnable returns IE for the CPU's interrupt poll. The latch lives
// on the CPU side of the bus, so an OAM DMA does not hide it.
func (m *MMU) InterruptEnable() byte {
	return m.ie
}

// RequestedInterrupts returns IF for the CPU's interrupt poll, assembled
// from the device request flags like a bus read but never DMA-blocked.
func (m *MMU) RequestedInterrupts() byte {
	return m.interruptFlags()
}

// AcknowledgeInterrupt clears the request flag of the interrupt the CPU is
// about to service.
func (m *MMU) AcknowledgeInterrupt(index uint8) {
	switch index {
	case 0:
		m.gpu.RequestVBlankInt = false
	case 1:
		m.gpu.RequestLCDInt = false
	case 2:
		m.timer.RequestTimerInt = false
	case 3:
		m.serial.RequestSerialInt = false
	case 4:
		m.joypad.RequestJoypadInt = false
	}
}

// setInterruptFlags decomposes an IF write back into the request flags.
func (m *MMU) setInterruptFlags(value byte) {
	m.gpu.RequestVBlankInt = value&0x01 != 0
	m.gpu.RequestLCDInt = value&0x02 != 0
	m.timer.RequestTimerInt = value&0x04 != 0
	m.serial.RequestSerialInt = value&0x08 != 0
	m.joypad.RequestJoypadInt = value&0x10 != 0
}

// dmaBlocked reports whether a CPU access is cut off by an OAM DMA in
// flight: only HRAM stays reachable.
func (m *MMU) dmaBlocked(address uint16) bool {
	return m.OamDma.Active() && (address < 0xFF80 || address > 0xFFFE)
}

func (m *MMU) Read(address uint16) byte {
	if m.dmaBlocked(address) {
		return 0xFF
	}
	return m.readInternal(address)
}

// readForDMA is the bus view of the DMA engines themselves: normal device
// semantics, no HRAM-only restriction.
func (m *MMU) readForDMA(address uint16) byte {
	return m.readInternal(address)
}

func (m *MMU) readInternal(address uint16) byte {
	switch m.regionMap[address>>8] {
	case regionROM, regionExtRAM:
		return m.cart.Read(address)
	case regionVRAM:
		return m.gpu.Read(address)
	case regionWRAM:
		return m.readWRAM(address)
	case regionEcho:
		return m.readWRAM(address - 0x2000)
	case regionOAM:
		if address <= addr.OAMEnd {
			return m.gpu.Read(address)
		}
		// unusable area 0xFEA0-0xFEFF
		return 0x00
	case regionIO:
		return m.readIO(address)
	default:
		panic(fmt.Sprintf("Attempted read at unmapped address: 0x%X", address))
	}
}

func (m *MMU) readWRAM(address uint16) byte {
	if address < 0xD000 {
		return m.wram[0][address-0xC000]
	}
	return m.wram[m.wramBank][address-0xD000]
}

func (m *MMU) writeWRAM(address uint16, value byte) {
	if address < 0xD000 {
		m.wram[0][address-0xC000] = value
	} else {
		m.wram[m.wramBank][address-0xD000] = value
	}
}

func (m *MMU) readIO(address uint16) byte {
	switch {
	case address == addr.P1:
		return m.joypad.Read()
	case address == addr.SB || address == addr.SC:
		return m.serial.Read(address)
	case address >= addr.DIV && address <= addr.TAC:
		return m.timer.Read(address)
	case address == addr.IF:
		return m.interruptFlags()
	case address >= addr.AudioStart && address <= addr.AudioEnd:
		return m.APU.ReadRegister(address)
	case address == addr.DMA:
		return 0xFF // write-only
	case address >= addr.LCDC && address <= addr.WX:
		return m.gpu.Read(address)
	case address == addr.KEY1:
		if !m.cgb {
			return 0xFF
		}
		value := byte(0x7E)
		if m.DoubleSpeed {
			value |= 0x80
		}
		if m.PrepareSpeedSwitch {
			value |= 0x01
		}
		return value
	case address == addr.VBK:
		return m.gpu.Read(address)
	case address >= addr.HDMA1 && address <= addr.HDMA4:
		return 0xFF
	case address == addr.HDMA5:
		if !m.cgb {
			return 0xFF
		}
		return m.Hdma.ReadProgress()
	case address >= addr.BCPS && address <= addr.OCPD:
		return m.gpu.Read(address)
	case address == addr.SVBK:
		if !m.cgb {
			return 0xFF
		}
		return 0xF8 | m.wramBank
	case address >= 0xFF80 && address <= 0xFFFE:
		return m.hram[address-0xFF80]
	case address == addr.IE:
		return m.ie
	default:
		return m.io[address-0xFF00]
	}
}

func (m *MMU) Write(address uint16, value byte) {
	if m.dmaBlocked(address) {
		return
	}
	m.writeInternal(address, value)
}

func (m *MMU) writeInternal(address uint16, value byte) {
	switch m.regionMap[address>>8] {
	case regionROM, regionExtRAM:
		m.cart.Write(address, value)
	case regionVRAM:
		m.gpu.Write(address, value)
	case regionWRAM:
		m.writeWRAM(address, value)
	case regionEcho:
		if address <= 0xFDFF {
			m.writeWRAM(address-0x2000, value)
		}
	case regionOAM:
		if address <= addr.OAMEnd {
			m.gpu.Write(address, value)
		}
		// unusable area: writes dropped
	case regionIO:
		m.writeIO(address, value)
	default:
		panic(fmt.Sprintf("Attempted write at unmapped address: 0x%X", address))
	}
}

func (m *MMU) writeIO(address uint16, value byte) {
	switch {
	case address == addr.P1:
		m.joypad.Write(value)
	case address == addr.SB || address == addr.SC:
		m.serial.Write(address, value)
	case address >= addr.DIV && address <= addr.TAC:
		m.timer.Write(address, value)
	case address == addr.IF:
		m.setInterruptFlags(value)
	case address >= addr.AudioStart && address <= addr.AudioEnd:
		m.APU.WriteRegister(address, value)
	case address == addr.DMA:
		m.OamDma.Start(value)
		m.gpu.OAMDMAActive = true
	case address >= addr.LCDC && address <= addr.WX:
		m.gpu.Write(address, value)
	case address == addr.KEY1:
		if m.cgb {
			m.PrepareSpeedSwitch = value&0x01 != 0
		}
	case address == addr.VBK:
		m.gpu.Write(address, value)
	case address >= addr.HDMA1 && address <= addr.HDMA5:
		if m.cgb {
			m.Hdma.WriteRegister(address, value)
		}
	case address >= addr.BCPS && address <= addr.OCPD:
		m.gpu.Write(address, value)
	case address == addr.SVBK:
		if m.cgb {
			m.wramBank = value & 0x07
			if m.wramBank == 0 {
				m.wramBank = 1
			}
		}
	case address >= 0xFF80 && address <= 0xFFFE:
		m.hram[address-0xFF80] = value
	case address == addr.IE:
		m.ie = value
	default:
		m.io[address-0xFF00] = value
	}
}

// HandleKeyPress feeds a key press into the joypad matrix.
func (m *MMU) HandleKeyPress(key JoypadKey) {
	m.joypad.Press(key)
}

// HandleKeyRelease feeds a key release into the joypad matrix.
func (m *MMU) HandleKeyRelease(key JoypadKey) {
	m.joypad.Release(key)
}

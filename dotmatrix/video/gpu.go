package video

import (
	"sort"

	"github.com/valerio/go-dotmatrix/dotmatrix/addr"
	"github.com/valerio/go-dotmatrix/dotmatrix/bit"
)

// Mode represents the PPU's current rendering stage.
// These values match the STAT register bits 1-0.
type Mode int

const (
	// HBlankMode (Mode 0): horizontal blank, CPU can access VRAM/OAM
	HBlankMode Mode = 0
	// VBlankMode (Mode 1): vertical blank, CPU can access VRAM/OAM
	VBlankMode Mode = 1
	// OamSearchMode (Mode 2): PPU is reading OAM, CPU cannot access OAM
	OamSearchMode Mode = 2
	// PixelTransferMode (Mode 3): PPU is reading VRAM, CPU cannot access VRAM/OAM
	PixelTransferMode Mode = 3
)

const (
	oamSearchCycles     = 80
	pixelTransferCycles = 172
	hblankCycles        = 204
	scanlineCycles      = 456
)

// pixelType classifies what the BG/window layer put at each column of the
// current scanline, which is what sprite priority resolution keys on.
type pixelType uint8

const (
	bgColor0 pixelType = iota
	bgColorOpaque
	bgPriorityOverride // CGB tile attribute bit 7
)

const (
	vramBankSize   = 0x2000
	oamSize        = 0xA0
	paletteRAMSize = 0x40
)

// GPU owns VRAM, OAM, the palette RAMs and every LCD register. It raises
// VBlank/STAT interrupts through public request flags that the MMU folds
// into IF.
type GPU struct {
	framebuffer *FrameBuffer
	cgb         bool

	vram     [2][vramBankSize]byte
	vramBank uint8
	oam      [oamSize]byte

	// CGB palette RAMs, little-endian 15-bit colors, with the BCPS/OCPS
	// auto-increment indices.
	bgpRAM      [paletteRAMSize]byte
	obpRAM      [paletteRAMSize]byte
	bgpIdx      uint8
	obpIdx      uint8
	bgpAutoIncr bool
	obpAutoIncr bool

	// registers
	lcdc byte
	stat byte // irq enable bits (6-3) and coincidence flag (2)
	scy  byte
	scx  byte
	ly   byte
	lyc  byte
	wy   byte
	wx   byte
	bgp  byte
	obp0 byte
	obp1 byte

	mode       Mode
	clock      int
	windowLine int

	rowTypes [FramebufferWidth]pixelType

	// Interrupt request flags, consumed by the MMU when IF is read.
	RequestVBlankInt bool
	RequestLCDInt    bool

	// OAMDMAActive relaxes the mode-based access blocks while the DMA engine
	// owns the bus.
	OAMDMAActive bool
}

// NewGPU creates a PPU in the post-boot state.
func NewGPU(cgb bool) *GPU {
	return &GPU{
		framebuffer: NewFrameBuffer(),
		cgb:         cgb,
		mode:        OamSearchMode,
	}
}

func (g *GPU) GetFrameBuffer() *FrameBuffer {
	return g.framebuffer
}

// Mode returns the current PPU mode.
func (g *GPU) Mode() Mode {
	return g.mode
}

// InHBlank reports whether the PPU is in horizontal blank, which gates
// H-Blank DMA blocks.
func (g *GPU) InHBlank() bool {
	return g.mode == HBlankMode
}

func (g *GPU) displayEnabled() bool {
	return bit.IsSet(7, g.lcdc)
}

// Tick advances the PPU state machine by the given number of T-cycles.
func (g *GPU) Tick(cycles int) {
	if !g.displayEnabled() {
		return
	}

	g.clock += cycles

	switch g.mode {
	case OamSearchMode:
		if g.clock >= oamSearchCycles {
			g.clock -= oamSearchCycles
			g.changeMode(PixelTransferMode)
		}
	case PixelTransferMode:
		if g.clock >= pixelTransferCycles {
			g.clock -= pixelTransferCycles
			g.changeMode(HBlankMode)
			g.drawScanline()
		}
	case HBlankMode:
		if g.clock >= hblankCycles {
			g.clock -= hblankCycles
			g.ly++
			g.checkCoincidence()

			if g.ly > 143 {
				g.changeMode(VBlankMode)
				g.RequestVBlankInt = true
			} else {
				g.changeMode(OamSearchMode)
			}
		}
	case VBlankMode:
		if g.clock >= scanlineCycles {
			g.clock -= scanlineCycles
			g.ly++
			g.checkCoincidence()

			// At line 153, V-Blank has already reached the top of the screen
			// and the line is treated as line 0 for LYC purposes.
			if g.ly == 153 {
				g.ly = 0
				g.checkCoincidence()
			}

			if g.ly == 1 {
				g.ly = 0
				g.windowLine = 0
				g.changeMode(OamSearchMode)
			}
		}
	}
}

func (g *GPU) changeMode(mode Mode) {
	g.mode = mode
	switch mode {
	case OamSearchMode:
		if bit.IsSet(5, g.stat) {
			g.RequestLCDInt = true
		}
	case HBlankMode:
		if bit.IsSet(3, g.stat) {
			g.RequestLCDInt = true
		}
	case VBlankMode:
		if bit.IsSet(4, g.stat) {
			g.RequestLCDInt = true
		}
	}
}

func (g *GPU) checkCoincidence() {
	if g.ly == g.lyc {
		g.stat = bit.Set(2, g.stat)
		if bit.IsSet(6, g.stat) {
			g.RequestLCDInt = true
		}
	} else {
		g.stat = bit.Reset(2, g.stat)
	}
}

// drawScanline rasterizes the whole current line at the PixelTransfer ->
// HBlank boundary: background/window first, then sprites on top.
func (g *GPU) drawScanline() {
	for i := range g.rowTypes {
		g.rowTypes[i] = bgColor0
	}

	g.drawLineBackground()
	g.drawLineSprites()
}

func (g *GPU) drawLineBackground() {
	// On DMG, LCDC bit 0 blanks the background layer entirely.
	if !g.cgb && !bit.IsSet(0, g.lcdc) {
		color := ByteToColor(g.bgp & 0x03)
		for i := 0; i < FramebufferWidth; i++ {
			g.framebuffer.SetPixel(uint(i), uint(g.ly), color)
		}
		g.updateWindowCounter()
		return
	}

	for i := 0; i < FramebufferWidth; i++ {
		if g.windowEnabled() && g.isWindowPixel(i) {
			g.putWindowPixel(i)
		} else {
			g.putBackgroundPixel(i)
		}
	}
	g.updateWindowCounter()
}

func (g *GPU) windowEnabled() bool {
	return bit.IsSet(5, g.lcdc) && g.wx < 167 && g.wy < 144
}

func (g *GPU) isWindowPixel(i int) bool {
	return int(g.wx) <= i+7 && g.wy <= g.ly
}

// updateWindowCounter advances the internal window line counter once per
// scanline that shows any window pixel. It is deliberately not LY-driven:
// hiding and re-showing the window resumes where it left off.
func (g *GPU) updateWindowCounter() {
	if g.windowEnabled() && g.wy <= g.ly {
		g.windowLine++
	}
}

func (g *GPU) bgTileMap() uint16 {
	if bit.IsSet(3, g.lcdc) {
		return addr.TileMap1
	}
	return addr.TileMap0
}

func (g *GPU) winTileMap() uint16 {
	if bit.IsSet(6, g.lcdc) {
		return addr.TileMap1
	}
	return addr.TileMap0
}

// tileDataAddr resolves a tile index through the LCDC bit 4 addressing mode:
// unsigned from 0x8000 or signed from 0x9000.
func (g *GPU) tileDataAddr(idx byte) uint16 {
	if bit.IsSet(4, g.lcdc) {
		return addr.TileData0 + uint16(idx)*16
	}
	return addr.TileData1 + uint16(int(int8(idx))+128)*16
}

func (g *GPU) putWindowPixel(i int) {
	tilemapOffset := uint16(g.windowLine/8)*32 + uint16(i+7-int(g.wx))/8
	tilemapAddr := g.winTileMap() + tilemapOffset
	tileIdx := g.vramByte(tilemapAddr, 0)

	tileAddr := g.tileDataAddr(tileIdx)
	row := uint16(g.windowLine % 8)
	col := uint8(i+7-int(g.wx)) % 8

	if g.cgb {
		g.putCGBBackgroundPixel(tileAddr, row, col, i, tilemapAddr)
	} else {
		g.putDMGBackgroundPixel(tileAddr, row, col, i)
	}
}

func (g *GPU) putBackgroundPixel(i int) {
	// the origin is translated to (SCX, SCY), wrapping at 256
	mapX := g.scx + uint8(i)
	mapY := g.scy + g.ly

	tilemapOffset := uint16(mapY/8)*32 + uint16(mapX)/8
	tilemapAddr := g.bgTileMap() + tilemapOffset
	tileIdx := g.vramByte(tilemapAddr, 0)

	tileAddr := g.tileDataAddr(tileIdx)
	row := uint16(mapY % 8)
	col := mapX % 8

	if g.cgb {
		g.putCGBBackgroundPixel(tileAddr, row, col, i, tilemapAddr)
	} else {
		g.putDMGBackgroundPixel(tileAddr, row, col, i)
	}
}

func (g *GPU) putDMGBackgroundPixel(tileAddr, row uint16, col uint8, i int) {
	low := g.vramByte(tileAddr+row*2, 0)
	high := g.vramByte(tileAddr+row*2+1, 0)

	value := tilePixelValue(low, high, col)
	if value == 0 {
		g.rowTypes[i] = bgColor0
	} else {
		g.rowTypes[i] = bgColorOpaque
	}

	color := ByteToColor((g.bgp >> (value * 2)) & 0x03)
	g.framebuffer.SetPixel(uint(i), uint(g.ly), color)
}

// bgAttr is a decoded CGB background attribute byte (VRAM bank 1).
type bgAttr struct {
	palette     uint8
	vramBank    uint8
	mirrorX     bool
	mirrorY     bool
	hasPriority bool
}

func decodeBgAttr(value byte) bgAttr {
	return bgAttr{
		palette:     value & 0x07,
		vramBank:    (value >> 3) & 0x01,
		mirrorX:     bit.IsSet(5, value),
		mirrorY:     bit.IsSet(6, value),
		hasPriority: bit.IsSet(7, value),
	}
}

func (g *GPU) putCGBBackgroundPixel(tileAddr, row uint16, col uint8, i int, tilemapAddr uint16) {
	attr := decodeBgAttr(g.vramByte(tilemapAddr, 1))

	if attr.mirrorY {
		row = 7 - row
	}
	if attr.mirrorX {
		col = 7 - col
	}

	low := g.vramByte(tileAddr+row*2, attr.vramBank)
	high := g.vramByte(tileAddr+row*2+1, attr.vramBank)

	value := tilePixelValue(low, high, col)
	switch {
	case value == 0:
		g.rowTypes[i] = bgColor0
	case attr.hasPriority:
		g.rowTypes[i] = bgPriorityOverride
	default:
		g.rowTypes[i] = bgColorOpaque
	}

	g.framebuffer.SetPixel(uint(i), uint(g.ly), g.cgbColor(g.bgpRAM[:], value, attr.palette))
}

// tilePixelValue combines the low/high tile bytes into a 2-bit color value
// for the pixel at the given column (0 = leftmost).
func tilePixelValue(low, high byte, col uint8) byte {
	idx := 7 - col
	return (bit.GetBitValue(idx, high) << 1) | bit.GetBitValue(idx, low)
}

// cgbColor looks up a 15-bit palette RAM entry and expands it to RGB8 using
// the same correction curve gambatte uses.
func (g *GPU) cgbColor(ram []byte, value byte, palette uint8) GBColor {
	idx := int(palette)*8 + int(value)*2
	raw := uint16(ram[idx+1])<<8 | uint16(ram[idx])

	r := uint32(raw & 0x1F)
	gr := uint32((raw >> 5) & 0x1F)
	b := uint32((raw >> 10) & 0x1F)

	return RGBToColor(
		uint8((r*13+gr*2+b)>>1),
		uint8((gr*3+b)<<1),
		uint8((r*3+gr*2+b*11)>>1),
	)
}

// sprite is a decoded OAM entry.
type sprite struct {
	index    int
	y        int
	x        int
	tile     uint16
	palette  uint8 // CGB palette number
	vramBank uint8
	obp1     bool
	mirrorX  bool
	mirrorY  bool
	above    bool // priority bit clear: sprite above BG
}

func (g *GPU) decodeSprite(index int) sprite {
	base := index * 4
	flags := g.oam[base+3]
	return sprite{
		index:    index,
		y:        int(g.oam[base]) - 16,
		x:        int(g.oam[base+1]) - 8,
		tile:     uint16(g.oam[base+2]),
		palette:  flags & 0x07,
		vramBank: (flags >> 3) & 0x01,
		obp1:     bit.IsSet(4, flags),
		mirrorX:  bit.IsSet(5, flags),
		mirrorY:  bit.IsSet(6, flags),
		above:    !bit.IsSet(7, flags),
	}
}

func (g *GPU) drawLineSprites() {
	if !bit.IsSet(1, g.lcdc) {
		return
	}

	height := 8
	if bit.IsSet(2, g.lcdc) {
		height = 16
	}

	line := int(g.ly)

	// OAM selection: scan in OAM order comparing LY to each sprite's Y range.
	// X does not affect selection, only the 10-sprite limit.
	var sprites []sprite
	for i := 0; i < 40 && len(sprites) < 10; i++ {
		s := g.decodeSprite(i)
		if line >= s.y && line < s.y+height {
			sprites = append(sprites, s)
		}
	}

	// Priority order: X then OAM index on DMG, OAM index alone on CGB.
	// Rendering back-to-front lets the highest priority sprite win the pixel.
	sort.SliceStable(sprites, func(a, b int) bool {
		if g.cgb {
			return sprites[a].index < sprites[b].index
		}
		if sprites[a].x != sprites[b].x {
			return sprites[a].x < sprites[b].x
		}
		return sprites[a].index < sprites[b].index
	})

	for i := len(sprites) - 1; i >= 0; i-- {
		g.drawSprite(sprites[i], height, line)
	}
}

func (g *GPU) drawSprite(s sprite, height, line int) {
	row := uint16(line - s.y)
	if s.mirrorY {
		row = uint16(height-1) - row
	}

	tile := s.tile
	if height == 16 {
		tile &= 0xFE
	}

	// sprites always use unsigned addressing from 0x8000; row 8-15 of a tall
	// sprite spills into the next tile naturally
	tileAddr := addr.TileData0 + tile*16 + row*2

	bank := uint8(0)
	if g.cgb {
		bank = s.vramBank
	}
	low := g.vramByte(tileAddr, bank)
	high := g.vramByte(tileAddr+1, bank)

	for j := 0; j < 8; j++ {
		col := s.x + j
		if col < 0 || col >= FramebufferWidth {
			continue
		}

		px := uint8(j)
		if s.mirrorX {
			px = uint8(7 - j)
		}
		value := tilePixelValue(low, high, px)
		if value == 0 {
			continue
		}

		// BG priority: an opaque BG pixel hides "behind BG" sprites, and a
		// CGB priority-override tile hides sprites outright. LCDC bit 0
		// clear on CGB drops all BG priority.
		belowBG := false
		if bit.IsSet(0, g.lcdc) {
			switch g.rowTypes[col] {
			case bgColorOpaque:
				belowBG = !s.above
			case bgPriorityOverride:
				belowBG = true
			}
		}
		if belowBG {
			continue
		}

		if g.cgb {
			g.framebuffer.SetPixel(uint(col), uint(line), g.cgbColor(g.obpRAM[:], value, s.palette))
		} else {
			palette := g.obp0
			if s.obp1 {
				palette = g.obp1
			}
			color := ByteToColor((palette >> (value * 2)) & 0x03)
			g.framebuffer.SetPixel(uint(col), uint(line), color)
		}
	}
}

func (g *GPU) vramByte(address uint16, bank uint8) byte {
	return g.vram[bank&1][address-addr.TileData0]
}

// Read handles CPU reads of VRAM, OAM and the LCD register file, observing
// the mode-based access blocks.
func (g *GPU) Read(address uint16) byte {
	switch {
	case address >= 0x8000 && address <= 0x9FFF:
		if g.mode == PixelTransferMode && g.displayEnabled() && !g.OAMDMAActive {
			return 0x00
		}
		return g.vram[g.vramBank][address-0x8000]
	case address >= addr.OAMStart && address <= addr.OAMEnd:
		if (g.mode == OamSearchMode || g.mode == PixelTransferMode) && g.displayEnabled() && !g.OAMDMAActive {
			return 0x00
		}
		return g.oam[address-addr.OAMStart]
	}

	switch address {
	case addr.LCDC:
		return g.lcdc
	case addr.STAT:
		return 0x80 | (g.stat & 0x7C) | byte(g.mode)
	case addr.SCY:
		return g.scy
	case addr.SCX:
		return g.scx
	case addr.LY:
		return g.ly
	case addr.LYC:
		return g.lyc
	case addr.BGP:
		return g.bgp
	case addr.OBP0:
		return g.obp0
	case addr.OBP1:
		return g.obp1
	case addr.WY:
		return g.wy
	case addr.WX:
		return g.wx
	case addr.VBK:
		if !g.cgb {
			return 0xFF
		}
		return 0xFE | g.vramBank
	case addr.BCPS:
		if !g.cgb {
			return 0xFF
		}
		value := g.bgpIdx
		if g.bgpAutoIncr {
			value |= 0x80
		}
		return value
	case addr.BCPD:
		if !g.cgb {
			return 0xFF
		}
		return g.bgpRAM[g.bgpIdx]
	case addr.OCPS:
		if !g.cgb {
			return 0xFF
		}
		value := g.obpIdx
		if g.obpAutoIncr {
			value |= 0x80
		}
		return value
	case addr.OCPD:
		if !g.cgb {
			return 0xFF
		}
		return g.obpRAM[g.obpIdx]
	default:
		return 0xFF
	}
}

// Write handles CPU writes of VRAM, OAM and the LCD register file.
func (g *GPU) Write(address uint16, value byte) {
	switch {
	case address >= 0x8000 && address <= 0x9FFF:
		if g.mode == PixelTransferMode && g.displayEnabled() && !g.OAMDMAActive {
			return
		}
		g.vram[g.vramBank][address-0x8000] = value
		return
	case address >= addr.OAMStart && address <= addr.OAMEnd:
		if (g.mode == OamSearchMode || g.mode == PixelTransferMode) && g.displayEnabled() && !g.OAMDMAActive {
			return
		}
		g.oam[address-addr.OAMStart] = value
		return
	}

	switch address {
	case addr.LCDC:
		wasEnabled := g.displayEnabled()
		g.lcdc = value
		if wasEnabled && !g.displayEnabled() {
			// Turning the LCD off parks the PPU in HBlank at line 0 and
			// blanks the screen.
			g.changeMode(HBlankMode)
			g.ly = 0
			g.windowLine = 0
			g.clock = 0
			g.framebuffer.Clear()
		} else if !wasEnabled && g.displayEnabled() {
			g.ly = 0
			g.windowLine = 0
			g.clock = 0
			g.changeMode(OamSearchMode)
			g.checkCoincidence()
		}
	case addr.STAT:
		// only the interrupt enable bits are writable
		g.stat = (g.stat & 0x07) | (value & 0x78)
	case addr.SCY:
		g.scy = value
	case addr.SCX:
		g.scx = value
	case addr.LY:
		// read-only
	case addr.LYC:
		g.lyc = value
		g.checkCoincidence()
	case addr.BGP:
		g.bgp = value
	case addr.OBP0:
		g.obp0 = value
	case addr.OBP1:
		g.obp1 = value
	case addr.WY:
		g.wy = value
	case addr.WX:
		g.wx = value
	case addr.VBK:
		if g.cgb {
			g.vramBank = value & 0x01
		}
	case addr.BCPS:
		g.bgpIdx = value & 0x3F
		g.bgpAutoIncr = value&0x80 != 0
	case addr.BCPD:
		// palette writes are blocked during pixel transfer, but the index
		// still auto-increments
		if g.mode != PixelTransferMode {
			g.bgpRAM[g.bgpIdx] = value
		}
		if g.bgpAutoIncr {
			g.bgpIdx = (g.bgpIdx + 1) % paletteRAMSize
		}
	case addr.OCPS:
		g.obpIdx = value & 0x3F
		g.obpAutoIncr = value&0x80 != 0
	case addr.OCPD:
		if g.mode != PixelTransferMode {
			g.obpRAM[g.obpIdx] = value
		}
		if g.obpAutoIncr {
			g.obpIdx = (g.obpIdx + 1) % paletteRAMSize
		}
	}
}

// WriteOAMDirect bypasses the mode-based block for the OAM-DMA engine.
func (g *GPU) WriteOAMDirect(offset uint16, value byte) {
	g.oam[offset%oamSize] = value
}

// WriteVRAMDirect bypasses the mode-based block for the HDMA engine; the
// destination is forced into the current VRAM bank.
func (g *GPU) WriteVRAMDirect(offset uint16, value byte) {
	g.vram[g.vramBank][offset%vramBankSize] = value
}

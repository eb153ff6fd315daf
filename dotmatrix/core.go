package dotmatrix

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/valerio/go-dotmatrix/dotmatrix/cart"
	"github.com/valerio/go-dotmatrix/dotmatrix/cpu"
	"github.com/valerio/go-dotmatrix/dotmatrix/memory"
	"github.com/valerio/go-dotmatrix/dotmatrix/timing"
	"github.com/valerio/go-dotmatrix/dotmatrix/video"
)

// DebuggerState represents the current debugger mode
type DebuggerState int

const (
	DebuggerRunning   DebuggerState = iota // Normal execution
	DebuggerPaused                         // Paused, waiting for commands
	DebuggerStep                           // Execute one instruction then pause
	DebuggerStepFrame                      // Execute one frame then pause
)

// Machine is the root struct and entry point for running the emulation.
// It owns the CPU and MMU and pumps the CPU until a frame's worth of
// T-cycles has elapsed; everything else is clocked from inside the CPU's
// memory accesses.
type Machine struct {
	cpu *cpu.CPU
	mmu *memory.MMU

	limiter timing.Limiter

	// Debugger state
	debuggerState    DebuggerState
	debuggerMutex    sync.RWMutex
	stepRequested    bool
	frameRequested   bool
	instructionCount uint64
	frameCount       uint64
}

// Option configures machine construction.
type Option func(*options)

type options struct {
	clock cart.ClockSource
}

// WithClock injects the wall-clock source used by MBC3's RTC.
func WithClock(clock cart.ClockSource) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// New builds a machine from a raw cartridge image. The header decides the
// operating mode (DMG/CGB) and the bank controller.
func New(rom []byte, opts ...Option) (*Machine, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c, err := cart.New(rom, o.clock)
	if err != nil {
		return nil, err
	}

	mmu := memory.New(c)
	m := &Machine{
		cpu:     cpu.New(mmu),
		mmu:     mmu,
		limiter: timing.NewNoOpLimiter(),
	}

	slog.Debug("Machine initialized", "title", c.Title(), "cgb", c.IsCGB())

	return m, nil
}

// NewWithFile builds a machine from a ROM file on disk.
func NewWithFile(path string) (*Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	slog.Debug("Loaded ROM data", "size", len(data))

	return New(data)
}

// RunUntilFrame advances emulation until at least one frame's worth of
// cycles (70224) has been consumed. A fatal CPU error (illegal opcode)
// stops the machine and is returned.
func (m *Machine) RunUntilFrame() error {
	m.debuggerMutex.RLock()
	state := m.debuggerState
	m.debuggerMutex.RUnlock()

	switch state {
	case DebuggerPaused:
		return nil
	case DebuggerStep:
		return m.runSingleStep()
	case DebuggerStepFrame:
		return m.runSingleFrame()
	}

	if err := m.runFrame(); err != nil {
		return err
	}

	// Log every 60 frames (once per second at 60 FPS) only when running
	if m.frameCount%60 == 0 {
		slog.Debug("Frame completed", "frame", m.frameCount, "pc", fmt.Sprintf("0x%04X", m.cpu.GetPC()))
	}
	return nil
}

func (m *Machine) runFrame() error {
	total := 0
	for total < timing.CyclesPerFrame {
		cycles, err := m.cpu.Exec()
		if err != nil {
			return err
		}
		m.instructionCount++
		total += cycles
	}
	m.frameCount++
	return nil
}

func (m *Machine) runSingleStep() error {
	m.debuggerMutex.Lock()
	requested := m.stepRequested
	m.stepRequested = false
	m.debuggerMutex.Unlock()

	if !requested {
		return nil
	}

	oldPC := m.cpu.GetPC()
	_, err := m.cpu.Exec()
	m.instructionCount++

	slog.Debug("Step executed", "pc", fmt.Sprintf("0x%04X", oldPC), "new_pc", fmt.Sprintf("0x%04X", m.cpu.GetPC()))

	m.SetDebuggerState(DebuggerPaused)
	return err
}

func (m *Machine) runSingleFrame() error {
	m.debuggerMutex.Lock()
	requested := m.frameRequested
	m.frameRequested = false
	m.debuggerMutex.Unlock()

	if !requested {
		return nil
	}

	if err := m.runFrame(); err != nil {
		return err
	}

	slog.Debug("Frame step completed", "frame", m.frameCount, "instructions", m.instructionCount)
	m.SetDebuggerState(DebuggerPaused)
	return nil
}

// GetCurrentFrame returns the live framebuffer. It is only consistent
// between RunUntilFrame calls.
func (m *Machine) GetCurrentFrame() *video.FrameBuffer {
	return m.mmu.GPU().GetFrameBuffer()
}

// Framebuffer returns the current frame as row-major RGBA8 bytes.
func (m *Machine) Framebuffer() []byte {
	return m.GetCurrentFrame().RGBA()
}

// AudioBuffer returns the next completed 735-sample buffer of the given
// tone channel (0-2), or nil when none is ready.
func (m *Machine) AudioBuffer(channel int) []float32 {
	return m.mmu.APU.Buffer(channel)
}

// Samples returns n interleaved stereo PCM frames from the master mix.
func (m *Machine) Samples(n int) []int16 {
	return m.mmu.APU.GetSamples(n)
}

func (m *Machine) HandleKeyPress(key memory.JoypadKey) {
	m.mmu.HandleKeyPress(key)
}

func (m *Machine) HandleKeyRelease(key memory.JoypadKey) {
	m.mmu.HandleKeyRelease(key)
}

// SaveRAM returns the battery-backed cartridge state for persistence.
func (m *Machine) SaveRAM() []byte {
	return m.mmu.Cartridge().Snapshot()
}

// LoadRAM restores battery-backed cartridge state.
func (m *Machine) LoadRAM(data []byte) {
	m.mmu.Cartridge().Restore(data)
}

// SerialOutput returns everything written to the serial port, which is how
// the blargg test ROMs report results.
func (m *Machine) SerialOutput() string {
	return m.mmu.Serial().Output()
}

func (m *Machine) GetCPU() *cpu.CPU {
	return m.cpu
}

func (m *Machine) GetMMU() *memory.MMU {
	return m.mmu
}

// Debugger control methods

func (m *Machine) SetDebuggerState(state DebuggerState) {
	m.debuggerMutex.Lock()
	defer m.debuggerMutex.Unlock()
	m.debuggerState = state
	slog.Debug("Debugger state changed", "state", state)
}

func (m *Machine) GetDebuggerState() DebuggerState {
	m.debuggerMutex.RLock()
	defer m.debuggerMutex.RUnlock()
	return m.debuggerState
}

func (m *Machine) DebuggerPause() {
	m.SetDebuggerState(DebuggerPaused)
	slog.Info("Emulator paused")
}

func (m *Machine) DebuggerResume() {
	m.SetDebuggerState(DebuggerRunning)
	slog.Info("Emulator resumed")
}

func (m *Machine) DebuggerStepInstruction() {
	m.debuggerMutex.Lock()
	defer m.debuggerMutex.Unlock()
	m.stepRequested = true
	m.debuggerState = DebuggerStep
}

func (m *Machine) DebuggerStepFrame() {
	m.debuggerMutex.Lock()
	defer m.debuggerMutex.Unlock()
	m.frameRequested = true
	m.debuggerState = DebuggerStepFrame
}

func (m *Machine) GetInstructionCount() uint64 {
	return m.instructionCount
}

func (m *Machine) GetFrameCount() uint64 {
	return m.frameCount
}

// SetFrameLimiter installs the pacing strategy used by interactive hosts.
func (m *Machine) SetFrameLimiter(limiter timing.Limiter) {
	m.limiter = limiter
}

// ResetFrameTiming resets the limiter, useful after a pause.
func (m *Machine) ResetFrameTiming() {
	m.limiter.Reset()
}

// WaitForNextFrame blocks according to the installed limiter.
func (m *Machine) WaitForNextFrame() {
	m.limiter.WaitForNextFrame()
}

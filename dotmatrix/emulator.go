package dotmatrix

import (
	"github.com/valerio/go-dotmatrix/dotmatrix/input/action"
	"github.com/valerio/go-dotmatrix/dotmatrix/memory"
	"github.com/valerio/go-dotmatrix/dotmatrix/timing"
	"github.com/valerio/go-dotmatrix/dotmatrix/video"
)

// Emulator is the surface backends drive: pump a frame, read it, feed input.
type Emulator interface {
	RunUntilFrame() error
	GetCurrentFrame() *video.FrameBuffer
	HandleAction(act action.Action, pressed bool)
	SetFrameLimiter(limiter timing.Limiter)
	ResetFrameTiming()
}

var _ Emulator = (*Machine)(nil)

// HandleAction routes an input action either to the joypad matrix or to an
// emulator-level control.
func (m *Machine) HandleAction(act action.Action, pressed bool) {
	if key, ok := actionToKey(act); ok {
		if pressed {
			m.HandleKeyPress(key)
		} else {
			m.HandleKeyRelease(key)
		}
		return
	}

	if !pressed {
		return
	}

	switch act {
	case action.EmulatorPauseToggle:
		if m.GetDebuggerState() == DebuggerPaused {
			m.DebuggerResume()
		} else {
			m.DebuggerPause()
		}
	case action.EmulatorStepInstruction:
		m.DebuggerStepInstruction()
	case action.EmulatorStepFrame:
		m.DebuggerStepFrame()
	case action.AudioToggleChannel1:
		m.mmu.APU.ToggleChannel(0)
	case action.AudioToggleChannel2:
		m.mmu.APU.ToggleChannel(1)
	case action.AudioToggleChannel3:
		m.mmu.APU.ToggleChannel(2)
	case action.AudioToggleChannel4:
		m.mmu.APU.ToggleChannel(3)
	}
}

func actionToKey(act action.Action) (memory.JoypadKey, bool) {
	switch act {
	case action.GBButtonA:
		return memory.JoypadA, true
	case action.GBButtonB:
		return memory.JoypadB, true
	case action.GBButtonStart:
		return memory.JoypadStart, true
	case action.GBButtonSelect:
		return memory.JoypadSelect, true
	case action.GBDPadUp:
		return memory.JoypadUp, true
	case action.GBDPadDown:
		return memory.JoypadDown, true
	case action.GBDPadLeft:
		return memory.JoypadLeft, true
	case action.GBDPadRight:
		return memory.JoypadRight, true
	default:
		return 0, false
	}
}

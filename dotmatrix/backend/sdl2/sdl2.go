//go:build sdl2

package sdl2

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/valerio/go-dotmatrix/dotmatrix/backend"
	"github.com/valerio/go-dotmatrix/dotmatrix/input/action"
	"github.com/valerio/go-dotmatrix/dotmatrix/input/event"
	"github.com/valerio/go-dotmatrix/dotmatrix/video"
)

const defaultScale = 4

// Backend implements the Backend interface using SDL2 bindings.
// Note: building this requires SDL2 development libraries installed.
// Default builds skip this and use a stubbed backend, see build tags (sdl2).
type Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	config   backend.BackendConfig

	audioDevice sdl.AudioDeviceID
	pixelBuffer []byte
	eventBuffer []backend.InputEvent
}

func New() *Backend {
	return &Backend{}
}

func (s *Backend) Init(config backend.BackendConfig) error {
	s.config = config

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	scale := config.Scale
	if scale <= 0 {
		scale = defaultScale
	}

	window, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(video.FramebufferWidth*scale), int32(video.FramebufferHeight*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("sdl window: %w", err)
	}
	s.window = window

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if config.VSync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	renderer, err := sdl.CreateRenderer(window, -1, flags)
	if err != nil {
		return fmt.Errorf("sdl renderer: %w", err)
	}
	s.renderer = renderer

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA8888, sdl.TEXTUREACCESS_STREAMING,
		int32(video.FramebufferWidth), int32(video.FramebufferHeight))
	if err != nil {
		return fmt.Errorf("sdl texture: %w", err)
	}
	s.texture = texture
	s.pixelBuffer = make([]byte, video.FramebufferSize*4)

	if config.APU != nil {
		if err := s.openAudio(); err != nil {
			slog.Warn("Audio device unavailable", "error", err)
		}
	}

	slog.Info("SDL2 backend initialized", "scale", scale, "vsync", config.VSync)
	return nil
}

func (s *Backend) openAudio() error {
	spec := &sdl.AudioSpec{
		Freq:     44100,
		Format:   sdl.AUDIO_S16SYS,
		Channels: 2,
		Samples:  1024,
	}
	device, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return err
	}
	s.audioDevice = device
	sdl.PauseAudioDevice(device, false)
	return nil
}

func (s *Backend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	s.eventBuffer = s.eventBuffer[:0]

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch tev := ev.(type) {
		case *sdl.QuitEvent:
			s.eventBuffer = append(s.eventBuffer, backend.InputEvent{Action: action.EmulatorQuit, Type: event.Press})
		case *sdl.KeyboardEvent:
			if act, ok := keyToAction(tev.Keysym.Sym); ok {
				kind := event.Press
				if tev.Type == sdl.KEYUP {
					kind = event.Release
				}
				if tev.Repeat == 0 {
					s.eventBuffer = append(s.eventBuffer, backend.InputEvent{Action: act, Type: kind})
				}
			}
		}
	}

	s.render(frame)
	s.pumpAudio()

	return s.eventBuffer, nil
}

func keyToAction(sym sdl.Keycode) (action.Action, bool) {
	switch sym {
	case sdl.K_UP:
		return action.GBDPadUp, true
	case sdl.K_DOWN:
		return action.GBDPadDown, true
	case sdl.K_LEFT:
		return action.GBDPadLeft, true
	case sdl.K_RIGHT:
		return action.GBDPadRight, true
	case sdl.K_z:
		return action.GBButtonA, true
	case sdl.K_x:
		return action.GBButtonB, true
	case sdl.K_RETURN:
		return action.GBButtonStart, true
	case sdl.K_BACKSPACE:
		return action.GBButtonSelect, true
	case sdl.K_p:
		return action.EmulatorPauseToggle, true
	case sdl.K_n:
		return action.EmulatorStepFrame, true
	case sdl.K_ESCAPE, sdl.K_q:
		return action.EmulatorQuit, true
	default:
		return 0, false
	}
}

func (s *Backend) render(frame *video.FrameBuffer) {
	pixels := frame.ToSlice()
	for i, pixel := range pixels {
		s.pixelBuffer[i*4] = byte(pixel)         // A
		s.pixelBuffer[i*4+1] = byte(pixel >> 8)  // B
		s.pixelBuffer[i*4+2] = byte(pixel >> 16) // G
		s.pixelBuffer[i*4+3] = byte(pixel >> 24) // R
	}

	s.texture.Update(nil, unsafe.Pointer(&s.pixelBuffer[0]), video.FramebufferWidth*4)
	s.renderer.Clear()
	s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()
}

// pumpAudio queues one frame (735 stereo samples) of mixed PCM on the device
// whenever no more than about 1/15 s of audio is still queued.
func (s *Backend) pumpAudio() {
	if s.audioDevice == 0 || s.config.APU == nil {
		return
	}

	queued := sdl.GetQueuedAudioSize(s.audioDevice)
	if queued > 44100/15*4 {
		return
	}

	samples := s.config.APU.GetSamples(735)
	buf := make([]byte, len(samples)*2)
	for i, sample := range samples {
		buf[i*2] = byte(sample)
		buf[i*2+1] = byte(uint16(sample) >> 8)
	}
	sdl.QueueAudio(s.audioDevice, buf)
}

func (s *Backend) Cleanup() error {
	if s.audioDevice != 0 {
		sdl.CloseAudioDevice(s.audioDevice)
	}
	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()
	return nil
}

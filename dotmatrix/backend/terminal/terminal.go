package terminal

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/valerio/go-dotmatrix/dotmatrix/backend"
	"github.com/valerio/go-dotmatrix/dotmatrix/input/action"
	"github.com/valerio/go-dotmatrix/dotmatrix/input/event"
	"github.com/valerio/go-dotmatrix/dotmatrix/video"
)

// Backend renders the framebuffer into a terminal using tcell. Each text
// cell shows two vertically stacked pixels through the upper half block
// glyph, so the 160x144 screen needs a 160x72 terminal.
type Backend struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	// keys currently held, so releases can be synthesized: terminals only
	// deliver key-down events
	held map[action.Action]int
}

const halfBlock = '▀'

// releaseFrames is how many Update calls a key stays pressed before a
// synthetic release, since terminals lack key-up events.
const releaseFrames = 6

func New() *Backend {
	return &Backend{
		held: make(map[action.Action]int),
	}
}

func (t *Backend) Init(config backend.BackendConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	screen.HideCursor()
	screen.Clear()

	t.screen = screen
	t.events = make(chan tcell.Event, 32)
	t.quit = make(chan struct{})

	go func() {
		for {
			select {
			case <-t.quit:
				return
			default:
			}
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case t.events <- ev:
			default:
				// drop events rather than stall the render loop
			}
		}
	}()

	slog.Info("Terminal backend initialized")
	return nil
}

func (t *Backend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	events := t.pollInput()
	t.render(frame)
	return events, nil
}

func (t *Backend) pollInput() []backend.InputEvent {
	var out []backend.InputEvent

	// age out held keys first
	for act, frames := range t.held {
		if frames <= 1 {
			delete(t.held, act)
			out = append(out, backend.InputEvent{Action: act, Type: event.Release})
		} else {
			t.held[act] = frames - 1
		}
	}

	for {
		select {
		case ev := <-t.events:
			switch tev := ev.(type) {
			case *tcell.EventKey:
				if act, ok := keyToAction(tev); ok {
					if act == action.EmulatorQuit || act == action.EmulatorPauseToggle || act == action.EmulatorStepFrame {
						out = append(out, backend.InputEvent{Action: act, Type: event.Press})
						continue
					}
					if _, already := t.held[act]; !already {
						out = append(out, backend.InputEvent{Action: act, Type: event.Press})
					}
					t.held[act] = releaseFrames
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return out
		}
	}
}

func keyToAction(ev *tcell.EventKey) (action.Action, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return action.GBDPadUp, true
	case tcell.KeyDown:
		return action.GBDPadDown, true
	case tcell.KeyLeft:
		return action.GBDPadLeft, true
	case tcell.KeyRight:
		return action.GBDPadRight, true
	case tcell.KeyEnter:
		return action.GBButtonStart, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return action.GBButtonSelect, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return action.EmulatorQuit, true
	}

	switch ev.Rune() {
	case 'z', 'Z':
		return action.GBButtonA, true
	case 'x', 'X':
		return action.GBButtonB, true
	case 'p', 'P':
		return action.EmulatorPauseToggle, true
	case 'n', 'N':
		return action.EmulatorStepFrame, true
	case 'q', 'Q':
		return action.EmulatorQuit, true
	}

	return 0, false
}

// render draws two scanlines per text row: the upper pixel as foreground of
// the half block, the lower one as background.
func (t *Backend) render(frame *video.FrameBuffer) {
	for y := 0; y < video.FramebufferHeight; y += 2 {
		for x := 0; x < video.FramebufferWidth; x++ {
			top := frame.GetPixel(uint(x), uint(y))
			bottom := frame.GetPixel(uint(x), uint(y+1))

			style := tcell.StyleDefault.
				Foreground(pixelColor(top)).
				Background(pixelColor(bottom))
			t.screen.SetContent(x, y/2, halfBlock, nil, style)
		}
	}
	t.screen.Show()
}

func pixelColor(pixel uint32) tcell.Color {
	r := int32(pixel >> 24 & 0xFF)
	g := int32(pixel >> 16 & 0xFF)
	b := int32(pixel >> 8 & 0xFF)
	return tcell.NewRGBColor(r, g, b)
}

func (t *Backend) Cleanup() error {
	if t.screen != nil {
		close(t.quit)
		t.screen.Fini()
	}
	return nil
}

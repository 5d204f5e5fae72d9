// Package termhost runs a blit pipeline in a terminal through tcell. Each
// character cell shows two framebuffer pixels stacked vertically using the
// upper half block glyph, so the framebuffer is cols × 2·rows pixels.
package termhost

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/blit"
)

const halfBlock = '▀'

// Host adapts a tcell.Screen into blit's Display, Keyboard and Pointer.
// All three share the screen's single event stream; whichever device is
// polled first routes pending events to the right buffer.
type Host struct {
	screen        tcell.Screen
	width, height int

	keys     []blit.KeyEvent
	pointer  blit.PointerState
	fresh    bool
	mouseX   int
	mouseY   int
	mouseSet bool
	closed   bool
}

// Open creates and initializes a terminal screen.
func Open() (*Host, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	return New(s), nil
}

// New wraps an initialized screen. The framebuffer resolution is fixed from
// the screen size at this point.
func New(s tcell.Screen) *Host {
	s.EnableMouse()
	s.HideCursor()
	s.Clear()
	cols, rows := s.Size()
	return &Host{screen: s, width: cols, height: rows * 2}
}

// Close restores the terminal. Later commits fail with ErrDeviceLost.
func (h *Host) Close() {
	if h.closed {
		return
	}
	h.closed = true
	h.screen.Fini()
}

// Resolution implements blit.Display.
func (h *Host) Resolution() (int, int) {
	return h.width, h.height
}

// Commit implements blit.Display.
func (h *Host) Commit(pixels []blit.RGB, width, height int) error {
	if h.closed {
		return blit.ErrDeviceLost
	}
	if len(pixels) != width*height {
		return fmt.Errorf("terminal commit %dx%d with %d pixels: %w", width, height, len(pixels), blit.ErrInvalidSize)
	}
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			top := pixels[y*width+x]
			var bottom blit.RGB
			if y+1 < height {
				bottom = pixels[(y+1)*width+x]
			}
			style := tcell.StyleDefault.
				Foreground(color(top)).
				Background(color(bottom))
			h.screen.SetContent(x, y/2, halfBlock, nil, style)
		}
	}
	h.screen.Show()
	return nil
}

func color(c blit.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Poll implements blit.Keyboard.
func (h *Host) Poll() (blit.KeyEvent, bool) {
	h.pump()
	if len(h.keys) == 0 {
		return blit.KeyEvent{}, false
	}
	ev := h.keys[0]
	copy(h.keys, h.keys[1:])
	h.keys = h.keys[:len(h.keys)-1]
	return ev, true
}

// PollState implements blit.Pointer. Relative motion is measured in
// framebuffer pixels, so vertical steps count double.
func (h *Host) PollState() (blit.PointerState, bool) {
	h.pump()
	if !h.fresh {
		return blit.PointerState{}, false
	}
	s := h.pointer
	h.pointer = blit.PointerState{Left: s.Left, Right: s.Right}
	h.fresh = false
	return s, true
}

// pump drains every event tcell has already read without blocking.
func (h *Host) pump() {
	if h.closed {
		return
	}
	for h.screen.HasPendingEvent() {
		switch ev := h.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if k, ok := keyEvent(ev); ok {
				h.keys = append(h.keys, k)
			}
		case *tcell.EventMouse:
			h.mouse(ev)
		case *tcell.EventResize:
			h.screen.Sync()
		case nil:
			return
		}
	}
}

func (h *Host) mouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	y *= 2
	if !h.mouseSet {
		h.mouseX, h.mouseY, h.mouseSet = x, y, true
	}
	btn := ev.Buttons()

	h.pointer.DX += x - h.mouseX
	h.pointer.DY += y - h.mouseY
	if btn&tcell.WheelUp != 0 {
		h.pointer.DZ++
	}
	if btn&tcell.WheelDown != 0 {
		h.pointer.DZ--
	}
	h.pointer.Left = btn&tcell.Button1 != 0
	h.pointer.Right = btn&tcell.Button2 != 0
	h.mouseX, h.mouseY = x, y
	h.fresh = true
}

var specialKeys = map[tcell.Key]blit.ScanCode{
	tcell.KeyUp:     blit.ScanUp,
	tcell.KeyDown:   blit.ScanDown,
	tcell.KeyLeft:   blit.ScanLeft,
	tcell.KeyRight:  blit.ScanRight,
	tcell.KeyHome:   blit.ScanHome,
	tcell.KeyEnd:    blit.ScanEnd,
	tcell.KeyPgUp:   blit.ScanPageUp,
	tcell.KeyPgDn:   blit.ScanPageDown,
	tcell.KeyInsert: blit.ScanInsert,
	tcell.KeyDelete: blit.ScanDelete,
	tcell.KeyEscape: blit.ScanEscape,
	tcell.KeyCtrlC:  blit.ScanEscape,
	tcell.KeyF1:     blit.ScanF1,
	tcell.KeyF2:     blit.ScanF2,
	tcell.KeyF3:     blit.ScanF3,
	tcell.KeyF4:     blit.ScanF4,
	tcell.KeyF5:     blit.ScanF5,
	tcell.KeyF6:     blit.ScanF6,
	tcell.KeyF7:     blit.ScanF7,
	tcell.KeyF8:     blit.ScanF8,
	tcell.KeyF9:     blit.ScanF9,
	tcell.KeyF10:    blit.ScanF10,
	tcell.KeyF11:    blit.ScanF11,
	tcell.KeyF12:    blit.ScanF12,
}

func keyEvent(ev *tcell.EventKey) (blit.KeyEvent, bool) {
	if ev.Key() == tcell.KeyRune {
		return blit.Char(ev.Rune()), true
	}
	if c, ok := specialKeys[ev.Key()]; ok {
		return blit.Special(c), true
	}
	return blit.KeyEvent{}, false
}

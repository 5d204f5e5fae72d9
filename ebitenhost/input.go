package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/blit"
)

var specialKeys = map[ebiten.Key]blit.ScanCode{
	ebiten.KeyArrowUp:    blit.ScanUp,
	ebiten.KeyArrowDown:  blit.ScanDown,
	ebiten.KeyArrowLeft:  blit.ScanLeft,
	ebiten.KeyArrowRight: blit.ScanRight,
	ebiten.KeyHome:       blit.ScanHome,
	ebiten.KeyEnd:        blit.ScanEnd,
	ebiten.KeyPageUp:     blit.ScanPageUp,
	ebiten.KeyPageDown:   blit.ScanPageDown,
	ebiten.KeyInsert:     blit.ScanInsert,
	ebiten.KeyDelete:     blit.ScanDelete,
	ebiten.KeyEscape:     blit.ScanEscape,
	ebiten.KeyF1:         blit.ScanF1,
	ebiten.KeyF2:         blit.ScanF2,
	ebiten.KeyF3:         blit.ScanF3,
	ebiten.KeyF4:         blit.ScanF4,
	ebiten.KeyF5:         blit.ScanF5,
	ebiten.KeyF6:         blit.ScanF6,
	ebiten.KeyF7:         blit.ScanF7,
	ebiten.KeyF8:         blit.ScanF8,
	ebiten.KeyF9:         blit.ScanF9,
	ebiten.KeyF10:        blit.ScanF10,
	ebiten.KeyF11:        blit.ScanF11,
	ebiten.KeyF12:        blit.ScanF12,
}

// scanCode maps an ebiten key to a blit scan code. Keys that produce text are
// reported through AppendInputChars instead and map to false here.
func scanCode(k ebiten.Key) (blit.ScanCode, bool) {
	c, ok := specialKeys[k]
	return c, ok
}

// Keyboard is a blit.Keyboard fed from ebiten's per-tick input state.
type Keyboard struct {
	pending []blit.KeyEvent
	keyBuf  []ebiten.Key
	charBuf []rune
}

// NewKeyboard returns an empty keyboard.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// capture snapshots this tick's presses. Called from Update before the
// pipeline ticks.
func (k *Keyboard) capture() {
	k.keyBuf = inpututil.AppendJustPressedKeys(k.keyBuf[:0])
	for _, key := range k.keyBuf {
		if c, ok := scanCode(key); ok {
			k.pending = append(k.pending, blit.Special(c))
		}
	}
	k.charBuf = ebiten.AppendInputChars(k.charBuf[:0])
	for _, r := range k.charBuf {
		k.pending = append(k.pending, blit.Char(r))
	}
}

// Poll implements blit.Keyboard.
func (k *Keyboard) Poll() (blit.KeyEvent, bool) {
	if len(k.pending) == 0 {
		return blit.KeyEvent{}, false
	}
	ev := k.pending[0]
	copy(k.pending, k.pending[1:])
	k.pending = k.pending[:len(k.pending)-1]
	return ev, true
}

// Pointer is a blit.Pointer reporting mouse movement relative to the
// previous tick, in framebuffer pixels.
type Pointer struct {
	lastX, lastY int
	primed       bool
	wheel        float64 // fractional scroll not yet reported
	sample       blit.PointerState
	fresh        bool
}

// NewPointer returns a pointer with no sample yet.
func NewPointer() *Pointer {
	return &Pointer{}
}

func (p *Pointer) capture() {
	x, y := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	p.update(x, y, wy,
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	)
}

// update folds one frame of raw mouse state into the pending sample. Wheel
// deltas are accumulated so trackpads reporting fractions still scroll.
func (p *Pointer) update(x, y int, wy float64, left, right bool) {
	if !p.primed {
		p.lastX, p.lastY, p.primed = x, y, true
	}
	p.wheel += wy
	dz := int(p.wheel)
	p.wheel -= float64(dz)

	s := blit.PointerState{
		DX:    x - p.lastX,
		DY:    y - p.lastY,
		DZ:    dz,
		Left:  left,
		Right: right,
	}
	p.lastX, p.lastY = x, y

	changed := s.DX != 0 || s.DY != 0 || s.DZ != 0 ||
		s.Left != p.sample.Left || s.Right != p.sample.Right
	if changed {
		p.sample = s
		p.fresh = true
	}
}

// PollState implements blit.Pointer.
func (p *Pointer) PollState() (blit.PointerState, bool) {
	if !p.fresh {
		return blit.PointerState{}, false
	}
	p.fresh = false
	return p.sample, true
}

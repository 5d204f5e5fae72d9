package blit

// --- Key events ---

// KeyKind distinguishes printable characters from special keys.
type KeyKind uint8

const (
	KeyPrintable KeyKind = iota // Rune holds the character
	KeySpecial                  // Code holds the scan code
)

// ScanCode identifies a non-printable key.
type ScanCode uint8

const (
	ScanNone ScanCode = iota
	ScanUp
	ScanDown
	ScanLeft
	ScanRight
	ScanHome
	ScanEnd
	ScanPageUp
	ScanPageDown
	ScanInsert
	ScanDelete
	ScanEscape
	ScanF1
	ScanF2
	ScanF3
	ScanF4
	ScanF5
	ScanF6
	ScanF7
	ScanF8
	ScanF9
	ScanF10
	ScanF11
	ScanF12
)

var scanNames = map[ScanCode]string{
	ScanUp: "up", ScanDown: "down", ScanLeft: "left", ScanRight: "right",
	ScanHome: "home", ScanEnd: "end", ScanPageUp: "pageup", ScanPageDown: "pagedown",
	ScanInsert: "insert", ScanDelete: "delete", ScanEscape: "escape",
	ScanF1: "f1", ScanF2: "f2", ScanF3: "f3", ScanF4: "f4", ScanF5: "f5", ScanF6: "f6",
	ScanF7: "f7", ScanF8: "f8", ScanF9: "f9", ScanF10: "f10", ScanF11: "f11", ScanF12: "f12",
}

// String returns the lower-case key name, or "none".
func (c ScanCode) String() string {
	if n, ok := scanNames[c]; ok {
		return n
	}
	return "none"
}

// ParseScanCode maps a key name as returned by String back to its code.
func ParseScanCode(name string) (ScanCode, bool) {
	for c, n := range scanNames {
		if n == name {
			return c, true
		}
	}
	return ScanNone, false
}

// KeyEvent is a single key press.
type KeyEvent struct {
	Kind KeyKind
	Rune rune
	Code ScanCode
}

// Char returns a printable key event.
func Char(r rune) KeyEvent {
	return KeyEvent{Kind: KeyPrintable, Rune: r}
}

// Special returns a special key event.
func Special(c ScanCode) KeyEvent {
	return KeyEvent{Kind: KeySpecial, Code: c}
}

// Keyboard is polled once per tick until it reports no pending event.
type Keyboard interface {
	Poll() (KeyEvent, bool)
}

// --- Pointer ---

// PointerState is one sample from a relative pointing device.
type PointerState struct {
	DX, DY, DZ  int
	Left, Right bool
}

// Pointer is polled once per tick. It reports false when the device has no
// new sample.
type Pointer interface {
	PollState() (PointerState, bool)
}

// PointerTracker accumulates relative pointer motion. X, Y and Z (scroll)
// are saturating running totals; Left and Right hold the latest sample only.
type PointerTracker struct {
	X, Y, Z     int
	Left, Right bool
}

// Apply folds one sample into the tracker.
func (t *PointerTracker) Apply(s PointerState) {
	t.X = saturatingAdd(t.X, s.DX)
	t.Y = saturatingAdd(t.Y, s.DY)
	t.Z = saturatingAdd(t.Z, s.DZ)
	t.Left = s.Left
	t.Right = s.Right
}

// --- Translation ---

// Steer sums the direction keys in events into a unit-step velocity delta.
// Presses add linearly; nothing is clamped here.
func Steer(events []KeyEvent) (dx, dy int) {
	for _, ev := range events {
		if ev.Kind != KeySpecial {
			continue
		}
		switch ev.Code {
		case ScanLeft:
			dx--
		case ScanRight:
			dx++
		case ScanUp:
			dy--
		case ScanDown:
			dy++
		}
	}
	return dx, dy
}

// BrightnessStep maps PageUp and PageDown to a one-level background change.
func BrightnessStep(ev KeyEvent) (int, bool) {
	if ev.Kind != KeySpecial {
		return 0, false
	}
	switch ev.Code {
	case ScanPageUp:
		return 1, true
	case ScanPageDown:
		return -1, true
	}
	return 0, false
}

// Palette maps the printable keys '1'..'5' to background colors.
func Palette(r rune) (RGB, bool) {
	switch r {
	case '1':
		return Black, true
	case '2':
		return White, true
	case '3':
		return RGB{128, 0, 0}, true
	case '4':
		return RGB{0, 128, 0}, true
	case '5':
		return RGB{0, 0, 128}, true
	}
	return RGB{}, false
}

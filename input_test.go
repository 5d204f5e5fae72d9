package blit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSteer(t *testing.T) {
	tests := []struct {
		name   string
		events []KeyEvent
		dx, dy int
	}{
		{"none", nil, 0, 0},
		{"left left right", []KeyEvent{Special(ScanLeft), Special(ScanLeft), Special(ScanRight)}, -1, 0},
		{"up down", []KeyEvent{Special(ScanUp), Special(ScanDown)}, 0, 0},
		{"down twice", []KeyEvent{Special(ScanDown), Special(ScanDown)}, 0, 2},
		{"printable ignored", []KeyEvent{Char('a'), Char('1'), Special(ScanRight)}, 1, 0},
		{"other special ignored", []KeyEvent{Special(ScanEscape), Special(ScanF1), Special(ScanUp)}, 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := Steer(tt.events)
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
		})
	}
}

func TestPalette(t *testing.T) {
	want := map[rune]RGB{
		'1': Black,
		'2': White,
		'3': {128, 0, 0},
		'4': {0, 128, 0},
		'5': {0, 0, 128},
	}
	for r, c := range want {
		got, ok := Palette(r)
		assert.True(t, ok, "%q", r)
		assert.Equal(t, c, got, "%q", r)
	}
	for _, r := range []rune{'0', '6', 'a', ' '} {
		_, ok := Palette(r)
		assert.False(t, ok, "%q", r)
	}
}

func TestPointerTracker(t *testing.T) {
	var tr PointerTracker
	tr.Apply(PointerState{DX: 3, DY: -2, DZ: 1, Left: true})
	tr.Apply(PointerState{DX: 1, DY: -1, Right: true})

	assert.Equal(t, 4, tr.X)
	assert.Equal(t, -3, tr.Y)
	assert.Equal(t, 1, tr.Z)
	// Buttons reflect the latest sample only.
	assert.False(t, tr.Left)
	assert.True(t, tr.Right)

	tr.X = math.MaxInt - 1
	tr.Apply(PointerState{DX: 10})
	assert.Equal(t, math.MaxInt, tr.X)
}

func TestScanCodeNames(t *testing.T) {
	for c := ScanUp; c <= ScanF12; c++ {
		name := c.String()
		assert.NotEqual(t, "none", name, "code %d", c)
		got, ok := ParseScanCode(name)
		assert.True(t, ok, name)
		assert.Equal(t, c, got, name)
	}
	assert.Equal(t, "none", ScanNone.String())
	_, ok := ParseScanCode("hyper")
	assert.False(t, ok)
}

func TestKeyConstructors(t *testing.T) {
	assert.Equal(t, KeyEvent{Kind: KeyPrintable, Rune: 'x'}, Char('x'))
	assert.Equal(t, KeyEvent{Kind: KeySpecial, Code: ScanHome}, Special(ScanHome))
}

func TestBrightnessStep(t *testing.T) {
	step, ok := BrightnessStep(Special(ScanPageUp))
	assert.True(t, ok)
	assert.Equal(t, 1, step)
	step, ok = BrightnessStep(Special(ScanPageDown))
	assert.True(t, ok)
	assert.Equal(t, -1, step)

	for _, ev := range []KeyEvent{Special(ScanUp), Special(ScanDown), Char('+')} {
		_, ok := BrightnessStep(ev)
		assert.False(t, ok, "%+v", ev)
	}
}

package termhost

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/blit"
)

func newSimHost(t *testing.T, cols, rows int) (*Host, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(cols, rows)
	h := New(s)
	t.Cleanup(h.Close)
	return h, s
}

func TestResolutionDoublesRows(t *testing.T) {
	h, _ := newSimHost(t, 10, 4)
	w, ht := h.Resolution()
	assert.Equal(t, 10, w)
	assert.Equal(t, 8, ht)
}

func TestCommitHalfBlocks(t *testing.T) {
	h, s := newSimHost(t, 2, 1)
	pixels := []blit.RGB{
		blit.Red, blit.Black,
		blit.White, blit.Red,
	}
	require.NoError(t, h.Commit(pixels, 2, 2))

	cells, w, _ := s.GetContents()
	require.Equal(t, 2, w)

	fg, bg, _ := cells[0].Style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), bg)
	assert.Equal(t, []rune{halfBlock}, cells[0].Runes)

	fg, bg, _ = cells[1].Style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), bg)
}

func TestCommitAfterClose(t *testing.T) {
	h, _ := newSimHost(t, 2, 1)
	h.Close()
	err := h.Commit(make([]blit.RGB, 4), 2, 2)
	assert.True(t, errors.Is(err, blit.ErrDeviceLost))
}

func TestKeyboardEvents(t *testing.T) {
	h, s := newSimHost(t, 4, 2)
	s.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, '3', tcell.ModNone)
	s.InjectKey(tcell.KeyTab, 0, tcell.ModNone) // unmapped, dropped

	var got []blit.KeyEvent
	for {
		ev, ok := h.Poll()
		if !ok {
			break
		}
		got = append(got, ev)
	}
	assert.Equal(t, []blit.KeyEvent{blit.Special(blit.ScanLeft), blit.Char('3')}, got)
}

func TestPointerDelta(t *testing.T) {
	h, s := newSimHost(t, 8, 4)
	s.InjectMouse(1, 1, tcell.ButtonNone, tcell.ModNone)
	s.InjectMouse(3, 2, tcell.Button1, tcell.ModNone)

	st, ok := h.PollState()
	require.True(t, ok)
	assert.Equal(t, 2, st.DX)
	assert.Equal(t, 2, st.DY, "one row is two framebuffer pixels")
	assert.True(t, st.Left)
	assert.False(t, st.Right)

	_, ok = h.PollState()
	assert.False(t, ok, "no new sample")
}

func TestKeyEventMapping(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	k, ok := keyEvent(ev)
	require.True(t, ok)
	assert.Equal(t, blit.Special(blit.ScanEscape), k)
}

package blit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestDisplayChains(t *testing.T) {
	a := NewDigestDisplay(2, 1)
	b := NewDigestDisplay(2, 1)
	w, h := a.Resolution()
	assert.Equal(t, 2, w)
	assert.Equal(t, 1, h)

	frame1 := []RGB{Red, Black}
	frame2 := []RGB{Black, Red}

	require.NoError(t, a.Commit(frame1, 2, 1))
	require.NoError(t, a.Commit(frame2, 2, 1))
	require.NoError(t, b.Commit(frame2, 2, 1))
	require.NoError(t, b.Commit(frame1, 2, 1))

	// Same frames in a different order give a different fingerprint.
	assert.NotEqual(t, a.Hash(), b.Hash())
	assert.Len(t, a.Hash(), 16)
	assert.Equal(t, 2, a.Frames())
	assert.Equal(t, frame2, a.LastFrame())

	b.Reset()
	require.NoError(t, b.Commit(frame1, 2, 1))
	require.NoError(t, b.Commit(frame2, 2, 1))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestDigestDisplayRejectsMismatch(t *testing.T) {
	d := NewDigestDisplay(2, 2)
	err := d.Commit(make([]RGB, 4), 4, 1)
	assert.ErrorIs(t, err, ErrDeviceLost)
	err = d.Commit(make([]RGB, 3), 2, 2)
	assert.ErrorIs(t, err, ErrDeviceLost)
	assert.Equal(t, 0, d.Frames())
}

func TestDigestLastFrameIsCopy(t *testing.T) {
	d := NewDigestDisplay(1, 1)
	px := []RGB{Red}
	require.NoError(t, d.Commit(px, 1, 1))
	px[0] = White
	got := d.LastFrame()
	assert.Equal(t, []RGB{Red}, got)
	got[0] = White
	assert.Equal(t, []RGB{Red}, d.LastFrame())
}

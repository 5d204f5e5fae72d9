package blit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFadeImmediate(t *testing.T) {
	f := newBackgroundFade(Black)
	assert.Equal(t, Black, f.Update())

	f.Start(White, 0, nil)
	assert.False(t, f.Active())
	assert.Equal(t, White, f.Update())
}

func TestFadeLinear(t *testing.T) {
	f := newBackgroundFade(Black)
	f.Start(RGB{200, 100, 0}, 4, nil)
	assert.True(t, f.Active())

	var got []RGB
	for i := 0; i < 4; i++ {
		got = append(got, f.Update())
	}
	assert.Equal(t, []RGB{
		{50, 25, 0},
		{100, 50, 0},
		{150, 75, 0},
		{200, 100, 0},
	}, got)
	assert.False(t, f.Active())
	assert.Equal(t, RGB{200, 100, 0}, f.Update())
}

func TestFadeRetargetsFromCurrent(t *testing.T) {
	f := newBackgroundFade(Black)
	f.Start(RGB{200, 0, 0}, 2, nil)
	assert.Equal(t, RGB{100, 0, 0}, f.Update())

	// A new target starts from wherever the blend currently is.
	f.Start(RGB{100, 0, 200}, 2, nil)
	assert.Equal(t, RGB{100, 0, 100}, f.Update())
	assert.Equal(t, RGB{100, 0, 200}, f.Update())
}

func TestFadeShiftDuringFade(t *testing.T) {
	f := newBackgroundFade(Black)
	f.Start(RGB{200, 200, 200}, 2, nil)
	f.Shift(-10)
	assert.Equal(t, RGB{95, 95, 95}, f.Update())
	assert.Equal(t, RGB{190, 190, 190}, f.Update())
}

package blit

import "math"

// Position is an entity's top-left pixel. Integrate keeps both coordinates
// inside [0, dimension-1].
type Position struct {
	X, Y int
}

// Velocity is a per-tick displacement in whole pixels.
type Velocity struct {
	DX, DY int
}

// Integrate returns p advanced by v, clamped per axis to [0, width-1] and
// [0, height-1]. The sum saturates instead of wrapping.
func Integrate(p Position, v Velocity, width, height int) Position {
	return Position{
		X: clampAxis(saturatingAdd(p.X, v.DX), width),
		Y: clampAxis(saturatingAdd(p.Y, v.DY), height),
	}
}

// Bounce applies the boundary rule to each axis independently. An axis
// reverses when the trailing edge (position + extent) reaches the far edge
// while moving forward, or when the position sits at 0 while moving backward.
// The returned Axis reports which components were negated.
//
// The rule is evaluated every tick, not only on the tick a boundary is first
// crossed: an entity pinned at an edge whose velocity is pushed outward again
// reverses again.
func Bounce(p Position, v Velocity, extentW, extentH, width, height int) (Velocity, Axis) {
	var flipped Axis
	if bounceAxis(p.X, v.DX, extentW, width) {
		v.DX = -v.DX
		flipped |= AxisX
	}
	if bounceAxis(p.Y, v.DY, extentH, height) {
		v.DY = -v.DY
		flipped |= AxisY
	}
	return v, flipped
}

func bounceAxis(pos, vel, extent, dim int) bool {
	switch {
	case vel > 0 && saturatingAdd(pos, extent) >= dim:
		return true
	case vel < 0 && pos == 0:
		return true
	}
	return false
}

func clampAxis(v, dim int) int {
	if v < 0 || dim <= 0 {
		return 0
	}
	if v > dim-1 {
		return dim - 1
	}
	return v
}

func saturatingAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	if b < 0 && a < math.MinInt-b {
		return math.MinInt
	}
	return a + b
}

package anim

// The interpolation hot path works in a fixed-point domain of 0..1024
// (10 fractional bits). Progress values may transiently exceed the
// domain maximum: overshoot curves rely on that.
const (
	resolution = 1024
	resShift   = 10
)

// remap maps v from [minIn, maxIn] onto [minOut, maxOut] with integer
// arithmetic, clamping at both ends. A degenerate input range maps
// everything to maxOut.
func remap(v, minIn, maxIn, minOut, maxOut int32) int32 {
	if v >= maxIn {
		return maxOut
	}
	if v <= minIn {
		return minOut
	}
	deltaIn := int64(maxIn - minIn)
	deltaOut := int64(maxOut - minOut)
	return int32(int64(v-minIn)*deltaOut/deltaIn) + minOut
}

// bezier3 evaluates the cubic Bézier polynomial
//
//	B(t) = (1-t)³u0 + 3(1-t)²t·u1 + 3(1-t)t²·u2 + t³u3
//
// with t and all control values in the 0..1024 fixed-point domain.
// Control values may exceed the domain, so intermediates are widened.
func bezier3(t, u0, u1, u2, u3 int32) int32 {
	tRem := int64(resolution - t)
	tRem2 := (tRem * tRem) >> resShift
	tRem3 := (tRem2 * tRem) >> resShift
	t2 := (int64(t) * int64(t)) >> resShift
	t3 := (t2 * int64(t)) >> resShift

	v1 := (tRem3 * int64(u0)) >> resShift
	v2 := (3 * tRem2 * int64(t) * int64(u1)) >> (2 * resShift)
	v3 := (3 * tRem * t2 * int64(u2)) >> (2 * resShift)
	v4 := (t3 * int64(u3)) >> resShift

	return int32(v1 + v2 + v3 + v4)
}

// cubicBezierY returns the Y coordinate of the cubic Bézier curve through
// (0,0), (x1,y1), (x2,y2), (1024,1024) at the given X. The curve's X
// component must be monotonic (0 <= x1, x2 <= 1024), so the parameter u
// with X(u) == x is found by bisection. Y control values may exceed 1024.
func cubicBezierY(x, x1, y1, x2, y2 int32) int32 {
	if x <= 0 {
		return 0
	}
	if x >= resolution {
		return resolution
	}

	lo, hi := int32(0), int32(resolution)
	var u int32
	// 1024 steps of resolution: 11 halvings pin u exactly.
	for range 11 {
		u = (lo + hi) / 2
		if bezier3(u, 0, x1, x2, resolution) < x {
			lo = u
		} else {
			hi = u
		}
	}

	return bezier3(hi, 0, y1, y2, resolution)
}

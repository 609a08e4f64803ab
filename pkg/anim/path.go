package anim

// PathKind discriminates the built-in easing shapes.
type PathKind int

const (
	// PathLinear interpolates at constant speed.
	PathLinear PathKind = iota
	// PathEaseIn starts slowly and accelerates.
	PathEaseIn
	// PathEaseOut starts quickly and decelerates.
	PathEaseOut
	// PathEaseInOut starts and ends slowly.
	PathEaseInOut
	// PathOvershoot runs past the end value and settles back.
	PathOvershoot
	// PathBounce hits the end value and bounces three times.
	PathBounce
	// PathStep jumps from start to end when the duration elapses.
	PathStep
	// PathBezier is a cubic Bézier curve with caller-supplied control
	// points in the 0..1024 fixed-point domain.
	PathBezier
	// PathCustom dispatches to a caller-supplied shape function.
	PathCustom
)

// PathFunc computes the current value for an animation. It must be pure:
// deterministic in the animation's elapsed time, duration and value
// bounds, and must not mutate the animation. It is never called with a
// negative elapsed time.
type PathFunc func(a *Animation) int32

// Path selects how elapsed time maps to a value. The zero value is the
// linear path. Construct custom Bézier shapes with [CubicBezier] or
// arbitrary shapes with [Custom].
type Path struct {
	Kind PathKind

	// Control points for PathBezier, in the 0..1024 domain. Y values
	// outside the domain are legal and produce overshoot.
	X1, Y1, X2, Y2 int32

	// Fn is the shape function for PathCustom.
	Fn PathFunc
}

// Fixed-point control points of the built-in cubic curves, the CSS
// ease-in / ease-out / ease-in-out constants truncated to 1/1024 units.
const (
	easeInX1, easeInY1, easeInX2, easeInY2             = 430, 0, 1024, 1024
	easeOutX1, easeOutY1, easeOutX2, easeOutY2         = 0, 0, 593, 1024
	easeInOutX1, easeInOutY1, easeInOutX2, easeInOutY2 = 430, 0, 593, 1024
	overshootX1, overshootY1, overshootX2, overshootY2 = 341, 0, 683, 1300
)

// Linear returns the constant-speed path.
func Linear() Path { return Path{Kind: PathLinear} }

// EaseIn returns a path that starts slowly and accelerates.
func EaseIn() Path { return Path{Kind: PathEaseIn} }

// EaseOut returns a path that starts quickly and decelerates.
func EaseOut() Path { return Path{Kind: PathEaseOut} }

// EaseInOut returns a path that starts and ends slowly.
func EaseInOut() Path { return Path{Kind: PathEaseInOut} }

// Overshoot returns a path that runs past the end value and settles back.
func Overshoot() Path { return Path{Kind: PathOvershoot} }

// Bounce returns a path that reaches the end value and bounces three
// times with decreasing amplitude.
func Bounce() Path { return Path{Kind: PathBounce} }

// Step returns a path that holds the start value and jumps to the end
// value when the duration elapses.
func Step() Path { return Path{Kind: PathStep} }

// CubicBezier returns a cubic Bézier path through control points
// (x1,y1) and (x2,y2) in the 0..1024 fixed-point domain. x1 and x2 must
// lie inside the domain; y1 and y2 may exceed it for overshoot effects.
func CubicBezier(x1, y1, x2, y2 int32) Path {
	return Path{Kind: PathBezier, X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Custom returns a path driven by an arbitrary shape function.
func Custom(fn PathFunc) Path { return Path{Kind: PathCustom, Fn: fn} }

// Eval samples the path outside any registry: it returns the value at
// the given elapsed time for an animation running from start to end over
// duration milliseconds. Elapsed is clamped to [0, duration]. Intended
// for tools and tests that inspect a curve directly.
func (p Path) Eval(elapsed, duration, start, end int32) int32 {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > duration {
		elapsed = duration
	}
	a := Animation{
		Path:       p,
		StartValue: start,
		EndValue:   end,
		Duration:   duration,
		elapsed:    elapsed,
	}
	return p.value(&a)
}

// value evaluates the path for the animation's current elapsed time.
// elapsed is already clamped to [0, Duration] by the sweep.
func (p Path) value(a *Animation) int32 {
	switch p.Kind {
	case PathLinear:
		step := remap(a.elapsed, 0, a.Duration, 0, resolution)
		v := int64(step) * int64(a.EndValue-a.StartValue)
		return int32(v>>resShift) + a.StartValue
	case PathEaseIn:
		return bezierValue(a, easeInX1, easeInY1, easeInX2, easeInY2)
	case PathEaseOut:
		return bezierValue(a, easeOutX1, easeOutY1, easeOutX2, easeOutY2)
	case PathEaseInOut:
		return bezierValue(a, easeInOutX1, easeInOutY1, easeInOutX2, easeInOutY2)
	case PathOvershoot:
		return bezierValue(a, overshootX1, overshootY1, overshootX2, overshootY2)
	case PathBounce:
		return bounceValue(a)
	case PathStep:
		if a.elapsed >= a.Duration {
			return a.EndValue
		}
		return a.StartValue
	case PathBezier:
		return bezierValue(a, p.X1, p.Y1, p.X2, p.Y2)
	case PathCustom:
		if p.Fn == nil {
			return a.StartValue
		}
		return p.Fn(a)
	default:
		return a.StartValue
	}
}

// bezierValue maps elapsed time through a cubic Bézier curve and scales
// the progress into the animation's value range. Progress beyond 1024
// (overshoot control points) scales through the same affine map.
func bezierValue(a *Animation, x1, y1, x2, y2 int32) int32 {
	t := remap(a.elapsed, 0, a.Duration, 0, resolution)
	step := cubicBezierY(t, x1, y1, x2, y2)

	v := int64(step) * int64(a.EndValue-a.StartValue)
	return int32(v>>resShift) + a.StartValue
}

// bounceValue is a fixed five-segment bounce: a full fall, then two
// rebounds at 1/20 and 1/40 of the value range. Segment boundaries are
// fractions of the 1024 domain; each segment is rescaled to the full
// domain before running through the shared falling curve.
func bounceValue(a *Animation) int32 {
	t := remap(a.elapsed, 0, a.Duration, 0, resolution)
	diff := a.EndValue - a.StartValue

	switch {
	case t < 408:
		// Fall to the end value.
		t = int32((int64(t) * 2500) >> resShift)
	case t < 614:
		// First bounce up.
		t -= 408
		t *= 5
		t = resolution - t
		diff /= 20
	case t < 819:
		// Fall back.
		t -= 614
		t *= 5
		diff /= 20
	case t < 921:
		// Second bounce up.
		t -= 819
		t *= 10
		t = resolution - t
		diff /= 40
	default:
		// Final fall.
		t -= 921
		t *= 10
		diff /= 40
	}

	if t > resolution {
		t = resolution
	}
	if t < 0 {
		t = 0
	}

	step := bezier3(t, resolution, 800, 500, 0)
	v := int64(step) * int64(diff)
	return a.EndValue - int32(v>>resShift)
}

package anim

import (
	"math"

	"github.com/tanema/gween/ease"
)

// PathFromEase adapts a gween easing function into a [Path], giving
// animations access to the gween catalog (ease.OutElastic, ease.InBack,
// and friends) through the custom-path variant.
//
// Unlike the built-in paths this goes through float math; the easing
// function receives the elapsed time, a 0-to-1 value range, and the
// duration, and its result is scaled into the animation's value range.
func PathFromEase(fn ease.TweenFunc) Path {
	return Custom(func(a *Animation) int32 {
		if a.Duration <= 0 {
			return a.EndValue
		}
		p := float64(fn(float32(a.elapsed), 0, 1, float32(a.Duration)))
		span := float64(a.EndValue - a.StartValue)
		return a.StartValue + int32(math.Round(p*span))
	})
}

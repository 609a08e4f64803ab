// Package anim is a property-animation engine: it advances a set of
// independently timed integer interpolations against a clock and delivers
// each computed value to a caller-supplied callback.
//
// # Core Components
//
//   - [Animation]: one scheduled interpolation. It doubles as the
//     descriptor passed to [Registry.Start]; build it with [New] and
//     override fields as needed.
//
//   - [Registry]: the owning collection of live animations. It drives the
//     periodic sweep, enforces the one-animation-per-(target, exec) rule,
//     and pauses its timer while empty.
//
//   - [Path]: the easing shape. Built-in variants ([Linear], [EaseIn],
//     [EaseOut], [EaseInOut], [Overshoot], [Bounce], [Step],
//     [CubicBezier]) use fixed-point integer math; [Custom] and
//     [PathFromEase] accept arbitrary shape functions.
//
// # Basic Usage
//
// Create a registry, start an animation, and drive the registry from your
// frame loop:
//
//	reg := anim.NewRegistry(anim.Config{})
//
//	a := anim.New()
//	a.Target = myLabel
//	a.Exec = func(target any, v int32) {
//	    target.(*Label).SetWidth(v)
//	}
//	a.Duration = 300
//	a.StartValue = 0
//	a.EndValue = 240
//	a.Path = anim.EaseOut()
//	reg.Start(a)
//
//	// once per frame:
//	reg.Step()
//
// # Reentrancy
//
// Every callback (Exec, GetValue, OnStart, OnReady, OnDelete) runs
// synchronously inside the sweep and may call back into the registry.
// Starting, deleting, or clearing animations from a callback is safe,
// even for the animation being processed. The registry is
// single-threaded; concurrent calls from multiple goroutines require
// external locking.
//
// Values, durations, and delays are int32; durations and delays are
// milliseconds. The interpolation hot path is pure integer arithmetic over
// a 0..1024 fixed-point domain.
package anim

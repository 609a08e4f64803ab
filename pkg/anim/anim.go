package anim

import (
	"reflect"
	"time"
)

// Version is the engine release version. Timeline files may declare a
// minimum required version against it (see the timeline package).
const Version = "v0.3.0"

const (
	// RepeatInfinite makes an animation repeat until it is deleted.
	RepeatInfinite = ^uint32(0)

	// DurationInfinite is returned by [Animation.RemainingTime] for
	// animations with infinite repeat.
	DurationInfinite = ^uint32(0)
)

// ExecFunc applies a computed value to the animated target. The engine
// never inspects target beyond identity comparison; it is handed back
// here untouched.
type ExecFunc func(target any, value int32)

// GetValueFunc returns the current value of the animated property. When
// set, the returned offset is folded into StartValue and EndValue at
// activation, turning the animation into a relative one.
type GetValueFunc func(a *Animation) int32

// Callback observes an animation lifecycle event.
type Callback func(a *Animation)

// Animation is one scheduled interpolation. It doubles as the descriptor
// passed to [Registry.Start], which copies it; the returned pointer is the
// live record, valid until the animation retires or is deleted.
//
// Descriptor fields must not be mutated on the live record while it is
// running, with one exception: the engine itself rewrites StartValue,
// EndValue, Duration and PlaybackDuration when a playback leg begins.
type Animation struct {
	// Target names the thing being animated. It is opaque to the engine
	// and used only for identity comparison, so it must be a comparable
	// value, typically a pointer. It is passed through to Exec.
	Target any

	// TargetSelf rebinds Target to the live record itself when the
	// animation starts. Useful for animations whose Exec closes over
	// everything it needs and wants the record as its handle.
	TargetSelf bool

	// Exec delivers each newly computed value. Optional: an animation
	// without Exec still runs its timing and lifecycle callbacks.
	//
	// Exec also gives the animation its identity: starting an animation
	// whose (Target, Exec) pair is already live replaces the old one.
	// Function identity is the code pointer, so two distinct closures
	// over the same function body compare equal.
	Exec ExecFunc

	// GetValue supplies a relative offset, read once at activation
	// (immediately if ApplyOnStart is set, otherwise when the delay
	// elapses). Optional.
	GetValue GetValueFunc

	// Path maps elapsed time to a value between StartValue and EndValue.
	Path Path

	// StartValue and EndValue bound the interpolation.
	StartValue int32
	EndValue   int32

	// Duration is the length of the forward leg in milliseconds.
	Duration int32

	// Delay postpones activation by the given milliseconds.
	Delay int32

	// RepeatCount is how many times the forward leg runs. Zero behaves
	// like one. RepeatInfinite repeats until deleted.
	RepeatCount uint32

	// RepeatDelay is the pause in milliseconds before each repeat.
	RepeatDelay int32

	// PlaybackDuration, when nonzero, runs the animation backwards for
	// that many milliseconds after every forward leg.
	PlaybackDuration int32

	// PlaybackDelay is the pause in milliseconds before each playback leg.
	PlaybackDelay int32

	// ApplyOnStart delivers StartValue (plus any GetValue offset)
	// through Exec immediately at Start rather than on the first sweep.
	ApplyOnStart bool

	// OnStart fires once, when the animation first becomes active
	// (after Delay). It does not fire again on repeats.
	OnStart Callback

	// OnReady fires each time a leg completes. On the final completion
	// it observes the animation already removed from the registry.
	OnReady Callback

	// OnDelete fires when the animation is removed, whether by
	// completion or by [Registry.Delete]. It does not fire on
	// [Registry.DeleteAll].
	OnDelete Callback

	elapsed      int32 // ms into the current leg; negative while delayed
	currentValue int32
	playbackNow  bool
	startCalled  bool
	runRound     bool
	lastRun      time.Time
	slot         int
	reg          *Registry
}

// New returns an animation descriptor with the engine defaults: a 500 ms
// linear run from 0 to 100, one repeat, value applied at start.
func New() Animation {
	return Animation{
		Duration:     500,
		StartValue:   0,
		EndValue:     100,
		RepeatCount:  1,
		Path:         Linear(),
		ApplyOnStart: true,
	}
}

// CurrentValue returns the last value delivered (or computed) for the
// animation.
func (a *Animation) CurrentValue() int32 { return a.currentValue }

// Elapsed returns the milliseconds spent in the current leg. It is
// negative while the animation is waiting out a delay.
func (a *Animation) Elapsed() int32 { return a.elapsed }

// InPlayback reports whether the animation is running its reverse leg.
func (a *Animation) InPlayback() bool { return a.playbackNow }

// RemainingTime returns the worst-case milliseconds until the animation
// retires, accounting for the current leg, a pending playback leg, and
// all remaining repeats with their delays. It returns [DurationInfinite]
// for infinite repeat.
func (a *Animation) RemainingTime() uint32 {
	if a.RepeatCount == RepeatInfinite {
		return DurationInfinite
	}

	remaining := int64(a.Duration) - int64(a.elapsed)
	if !a.playbackNow {
		remaining += int64(a.PlaybackDelay) + int64(a.PlaybackDuration)
	}

	if a.RepeatCount > 1 {
		cycle := int64(a.RepeatDelay) + int64(a.Duration) +
			int64(a.PlaybackDelay) + int64(a.PlaybackDuration)
		remaining += cycle * int64(a.RepeatCount-1)
	}

	if remaining < 0 {
		return 0
	}
	return uint32(remaining)
}

// SpeedToTime converts a speed in units per second into the duration in
// milliseconds needed to travel from start to end. It never returns 0.
func SpeedToTime(speed uint32, start, end int32) uint32 {
	if speed == 0 {
		speed = 1
	}
	d := uint64(abs32(end - start))
	t := uint32(d * 1000 / uint64(speed))
	if t == 0 {
		t = 1
	}
	return t
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// sameExec reports whether two exec callbacks are the same function.
// Go functions are not comparable with ==, so identity is the code
// pointer, mirroring function-pointer comparison in C-style engines.
func sameExec(a, b ExecFunc) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

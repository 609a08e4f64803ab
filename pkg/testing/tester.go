package testing

import (
	"time"

	"github.com/go-drift/motion/pkg/anim"
)

// DefaultPeriod is the sweep cadence a [Tester] uses unless configured
// otherwise.
const DefaultPeriod = 16 * time.Millisecond

// Tester couples a [anim.Registry] with a [FakeClock] and a scheduler it
// steps itself, so tests advance animations by pumping fake time instead
// of sleeping.
type Tester struct {
	Clock    *FakeClock
	Registry *anim.Registry

	scheduler *anim.LoopScheduler
	period    time.Duration
}

// NewTester creates a tester sweeping every [DefaultPeriod].
func NewTester() *Tester {
	return NewTesterPeriod(DefaultPeriod)
}

// NewTesterPeriod creates a tester sweeping every period.
func NewTesterPeriod(period time.Duration) *Tester {
	clk := NewFakeClock()
	sched := anim.NewLoopScheduler(clk)
	reg := anim.NewRegistry(anim.Config{
		Clock:     clk,
		Scheduler: sched,
		Period:    period,
	})
	return &Tester{
		Clock:     clk,
		Registry:  reg,
		scheduler: sched,
		period:    period,
	}
}

// Pump advances the clock by d, stepping the scheduler after every
// sweep period so each due sweep fires at its exact deadline. A partial
// trailing period advances the clock without forcing a sweep, matching
// how real time accrues between timer firings.
func (t *Tester) Pump(d time.Duration) {
	for d > 0 {
		step := t.period
		if step > d {
			step = d
		}
		t.Clock.Advance(step)
		t.scheduler.Step()
		d -= step
	}
}

// Settle pumps until the registry is empty or the timeout elapses, and
// reports whether it settled.
func (t *Tester) Settle(timeout time.Duration) bool {
	for waited := time.Duration(0); waited < timeout; waited += t.period {
		if t.Registry.CountRunning() == 0 {
			return true
		}
		t.Pump(t.period)
	}
	return t.Registry.CountRunning() == 0
}

// Recorder captures value deliveries for assertions. Use its Exec method
// as an animation's Exec callback.
type Recorder struct {
	Targets []any
	Values  []int32
}

// Exec records one delivery.
func (r *Recorder) Exec(target any, value int32) {
	r.Targets = append(r.Targets, target)
	r.Values = append(r.Values, value)
}

// Last returns the most recent value, or 0 when nothing was delivered.
func (r *Recorder) Last() int32 {
	if len(r.Values) == 0 {
		return 0
	}
	return r.Values[len(r.Values)-1]
}

// Count returns the number of deliveries.
func (r *Recorder) Count() int { return len(r.Values) }

// CountOf returns how many times value was delivered.
func (r *Recorder) CountOf(value int32) int {
	n := 0
	for _, v := range r.Values {
		if v == value {
			n++
		}
	}
	return n
}

// Reset clears all recorded deliveries.
func (r *Recorder) Reset() {
	r.Targets = nil
	r.Values = nil
}

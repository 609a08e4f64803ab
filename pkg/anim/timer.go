package anim

import (
	"sync"
	"time"
)

// DefaultPeriod is the sweep cadence used when [Config.Period] is zero.
const DefaultPeriod = 16 * time.Millisecond

// Timer is a recurring callback registration owned by a [Registry]. The
// registry pauses it while no animations are live and resumes it on the
// first insertion.
type Timer interface {
	Pause()
	Resume()
	// Running reports whether the timer is currently firing.
	Running() bool
}

// Scheduler creates recurring timers. It is the engine's only external
// timing collaborator: anything that can invoke a callback roughly every
// period (a frame loop, a time.Ticker goroutine, a test harness) can
// implement it.
type Scheduler interface {
	NewTimer(period time.Duration, fn func()) Timer
}

// LoopScheduler is a frame-stepped [Scheduler]: it fires no callbacks on
// its own, the embedder calls [LoopScheduler.Step] once per frame and
// every running timer whose period has elapsed fires there. This keeps
// all engine work on the caller's loop, which is what the reentrancy
// model assumes.
type LoopScheduler struct {
	mu     sync.Mutex
	clock  Clock
	timers map[*loopTimer]struct{}
}

// NewLoopScheduler returns a scheduler reading the given clock. A nil
// clock selects the system clock.
func NewLoopScheduler(clock Clock) *LoopScheduler {
	if clock == nil {
		clock = SystemClock()
	}
	return &LoopScheduler{
		clock:  clock,
		timers: make(map[*loopTimer]struct{}),
	}
}

// NewTimer registers a recurring callback. The timer starts running.
func (s *LoopScheduler) NewTimer(period time.Duration, fn func()) Timer {
	t := &loopTimer{
		sched:   s,
		period:  period,
		fn:      fn,
		running: true,
	}
	s.mu.Lock()
	t.last = s.clock.Now()
	s.timers[t] = struct{}{}
	s.mu.Unlock()
	return t
}

// Step fires every running timer whose period has elapsed since its last
// run. Callbacks execute outside the scheduler lock, so they may pause,
// resume, or create timers.
func (s *LoopScheduler) Step() {
	s.mu.Lock()
	if len(s.timers) == 0 {
		s.mu.Unlock()
		return
	}
	due := make([]*loopTimer, 0, len(s.timers))
	now := s.clock.Now()
	for t := range s.timers {
		if t.running && now.Sub(t.last) >= t.period {
			t.last = now
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	for _, t := range due {
		if t.Running() {
			t.fn()
		}
	}
}

type loopTimer struct {
	sched   *LoopScheduler
	period  time.Duration
	fn      func()
	last    time.Time
	running bool
}

func (t *loopTimer) Pause() {
	t.sched.mu.Lock()
	t.running = false
	t.sched.mu.Unlock()
}

// Resume restarts the timer. The period is measured from now, so a
// paused timer never fires a catch-up burst.
func (t *loopTimer) Resume() {
	t.sched.mu.Lock()
	if !t.running {
		t.running = true
		t.last = t.sched.clock.Now()
	}
	t.sched.mu.Unlock()
}

func (t *loopTimer) Running() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	return t.running
}

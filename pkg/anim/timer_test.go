package anim

import (
	"testing"
	"time"
)

func TestLoopSchedulerFiresOnPeriod(t *testing.T) {
	clk := newTestClock()
	sched := NewLoopScheduler(clk)

	fired := 0
	sched.NewTimer(10*time.Millisecond, func() { fired++ })

	sched.Step()
	if fired != 0 {
		t.Fatalf("timer fired with no time elapsed")
	}

	clk.advance(10)
	sched.Step()
	if fired != 1 {
		t.Fatalf("fired = %d after one period, want 1", fired)
	}

	// A long frame still produces a single firing; the scheduler does
	// not replay missed periods.
	clk.advance(35)
	sched.Step()
	if fired != 2 {
		t.Fatalf("fired = %d after a long frame, want 2", fired)
	}

	clk.advance(5)
	sched.Step()
	if fired != 2 {
		t.Fatalf("fired = %d before the next period, want 2", fired)
	}
}

func TestLoopSchedulerPauseResume(t *testing.T) {
	clk := newTestClock()
	sched := NewLoopScheduler(clk)

	fired := 0
	timer := sched.NewTimer(10*time.Millisecond, func() { fired++ })
	if !timer.Running() {
		t.Fatal("new timer not running")
	}

	timer.Pause()
	clk.advance(100)
	sched.Step()
	if fired != 0 {
		t.Fatalf("paused timer fired %d times", fired)
	}

	// Resume measures the period from now: no catch-up burst for the
	// time spent paused.
	timer.Resume()
	sched.Step()
	if fired != 0 {
		t.Fatal("resumed timer fired immediately")
	}

	clk.advance(10)
	sched.Step()
	if fired != 1 {
		t.Fatalf("fired = %d one period after resume, want 1", fired)
	}
}

func TestLoopSchedulerTimerCanPauseItself(t *testing.T) {
	clk := newTestClock()
	sched := NewLoopScheduler(clk)

	fired := 0
	var timer Timer
	timer = sched.NewTimer(10*time.Millisecond, func() {
		fired++
		timer.Pause()
	})

	clk.advance(10)
	sched.Step()
	clk.advance(10)
	sched.Step()
	if fired != 1 {
		t.Fatalf("fired = %d, want 1 (timer paused itself)", fired)
	}
}

func TestRegistryStepDrivesOwnedScheduler(t *testing.T) {
	clk := newTestClock()
	reg := NewRegistry(Config{Clock: clk, Period: 10 * time.Millisecond})
	rec := &recorder{}

	a := New()
	a.Target = new(int)
	a.Exec = rec.exec()
	a.Duration = 20
	reg.Start(a)

	for range 3 {
		clk.advance(10)
		reg.Step()
	}

	if rec.last() != 100 {
		t.Errorf("last value = %d, want 100", rec.last())
	}
	if reg.CountRunning() != 0 {
		t.Errorf("CountRunning() = %d, want 0", reg.CountRunning())
	}
}

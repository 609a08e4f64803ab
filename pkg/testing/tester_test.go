package testing_test

import (
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/anim"
	motiontest "github.com/go-drift/motion/pkg/testing"
)

func TestFakeClockAdvance(t *testing.T) {
	clk := motiontest.NewFakeClock()
	start := clk.Now()

	clk.Advance(25 * time.Millisecond)
	if got := clk.Now().Sub(start); got != 25*time.Millisecond {
		t.Fatalf("advanced %v, want 25ms", got)
	}

	exact := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	clk.Set(exact)
	if !clk.Now().Equal(exact) {
		t.Fatalf("Set: Now() = %v, want %v", clk.Now(), exact)
	}
}

func TestPumpSweepsEveryPeriod(t *testing.T) {
	tester := motiontest.NewTesterPeriod(10 * time.Millisecond)
	rec := &motiontest.Recorder{}

	a := anim.New()
	a.Target = new(int)
	a.Exec = rec.Exec
	a.Duration = 50
	a.ApplyOnStart = false
	tester.Registry.Start(a)

	tester.Pump(50 * time.Millisecond)

	// Five sweeps, one delivery each: 20, 40, 60, 80, 100.
	if rec.Count() != 5 {
		t.Fatalf("deliveries = %d, want 5; values %v", rec.Count(), rec.Values)
	}
	if rec.Last() != 100 {
		t.Errorf("Last() = %d, want 100", rec.Last())
	}
	if tester.Registry.CountRunning() != 0 {
		t.Errorf("CountRunning() = %d, want 0", tester.Registry.CountRunning())
	}
}

func TestSettle(t *testing.T) {
	tester := motiontest.NewTester()

	a := anim.New()
	a.Target = new(int)
	a.Exec = func(any, int32) {}
	a.Duration = 300
	tester.Registry.Start(a)

	if !tester.Settle(time.Second) {
		t.Fatal("registry did not settle within a second of fake time")
	}

	b := anim.New()
	b.Target = new(int)
	b.Exec = func(any, int32) {}
	b.Duration = 100
	b.RepeatCount = anim.RepeatInfinite
	tester.Registry.Start(b)

	if tester.Settle(500 * time.Millisecond) {
		t.Fatal("Settle reported true with an infinite animation live")
	}
}

func TestRecorder(t *testing.T) {
	rec := &motiontest.Recorder{}
	target := new(int)

	rec.Exec(target, 1)
	rec.Exec(target, 7)
	rec.Exec(target, 7)

	if rec.Count() != 3 {
		t.Errorf("Count() = %d, want 3", rec.Count())
	}
	if rec.Last() != 7 {
		t.Errorf("Last() = %d, want 7", rec.Last())
	}
	if rec.CountOf(7) != 2 {
		t.Errorf("CountOf(7) = %d, want 2", rec.CountOf(7))
	}
	if rec.Targets[0] != target {
		t.Error("target not recorded")
	}

	rec.Reset()
	if rec.Count() != 0 || rec.Last() != 0 {
		t.Error("Reset did not clear deliveries")
	}
}

package anim

import "testing"

func TestNewDefaults(t *testing.T) {
	a := New()
	if a.Duration != 500 {
		t.Errorf("Duration = %d, want 500", a.Duration)
	}
	if a.StartValue != 0 || a.EndValue != 100 {
		t.Errorf("value range = %d..%d, want 0..100", a.StartValue, a.EndValue)
	}
	if a.RepeatCount != 1 {
		t.Errorf("RepeatCount = %d, want 1", a.RepeatCount)
	}
	if a.Path.Kind != PathLinear {
		t.Errorf("Path.Kind = %v, want PathLinear", a.Path.Kind)
	}
	if !a.ApplyOnStart {
		t.Error("ApplyOnStart = false, want true")
	}
}

func TestSpeedToTime(t *testing.T) {
	tests := []struct {
		speed      uint32
		start, end int32
		want       uint32
	}{
		{1000, 0, 500, 500},
		{1000, 500, 0, 500},
		{500, 0, 100, 200},
		{1000000, 0, 1, 1}, // never 0
		{1, 0, 1, 1000},
	}
	for _, tc := range tests {
		if got := SpeedToTime(tc.speed, tc.start, tc.end); got != tc.want {
			t.Errorf("SpeedToTime(%d, %d, %d) = %d, want %d",
				tc.speed, tc.start, tc.end, got, tc.want)
		}
	}
}

func TestRemainingTime(t *testing.T) {
	a := New()
	a.Duration = 1000
	if got := a.RemainingTime(); got != 1000 {
		t.Errorf("single leg: RemainingTime() = %d, want 1000", got)
	}

	a.PlaybackDuration = 500
	a.PlaybackDelay = 100
	if got := a.RemainingTime(); got != 1600 {
		t.Errorf("with playback: RemainingTime() = %d, want 1600", got)
	}

	a.RepeatCount = 3
	a.RepeatDelay = 200
	// 1600 for the current cycle plus two full cycles of
	// 200+1000+100+500.
	if got := a.RemainingTime(); got != 1600+2*1800 {
		t.Errorf("with repeats: RemainingTime() = %d, want %d", got, 1600+2*1800)
	}

	a.RepeatCount = RepeatInfinite
	if got := a.RemainingTime(); got != DurationInfinite {
		t.Errorf("infinite repeat: RemainingTime() = %d, want DurationInfinite", got)
	}
}

func TestSameExec(t *testing.T) {
	var calls int
	f := func(any, int32) {}
	g := func(any, int32) { calls++ }
	_ = calls
	if !sameExec(f, f) {
		t.Error("sameExec(f, f) = false")
	}
	if sameExec(f, g) {
		t.Error("sameExec(f, g) = true")
	}
	if !sameExec(nil, nil) {
		t.Error("sameExec(nil, nil) = false")
	}
	if sameExec(f, nil) {
		t.Error("sameExec(f, nil) = true")
	}
}

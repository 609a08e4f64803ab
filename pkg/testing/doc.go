// Package testing provides deterministic test tooling for the Motion
// animation engine.
//
// Create a [Tester], start animations on its registry, and pump fake
// time through it:
//
//	func TestFade(t *testing.T) {
//	    mt := motiontest.NewTester()
//	    rec := &motiontest.Recorder{}
//
//	    a := anim.New()
//	    a.Target = mt
//	    a.Exec = rec.Exec
//	    a.Duration = 400
//	    mt.Registry.Start(a)
//
//	    mt.Pump(400 * time.Millisecond)
//	    if rec.Last() != 100 {
//	        t.Errorf("value = %d, want 100", rec.Last())
//	    }
//	}
//
// The tester owns a [FakeClock] and a LoopScheduler, so no real time
// passes and sweeps fire exactly on the configured period.
package testing

package anim

// tick is one sweep: it advances every live animation that has not yet
// run in this sweep, delivers changed values, and dispatches completed
// legs to the ready handler.
//
// Callbacks invoked from the sweep may start or delete animations,
// including the one being processed. The arena makes that safe without
// restarting: removals only nil out slots, and records inserted
// mid-sweep carry the current parity, so they are skipped until the next
// sweep no matter where their slot lands relative to the cursor.
func (r *Registry) tick() {
	// Flip the parity that separates "already ran this sweep" from
	// "not yet".
	r.runRound = !r.runRound
	r.changed = false

	for i := 0; i < len(r.slots); i++ {
		a := r.slots[i]
		if a == nil {
			continue
		}

		now := r.clock.Now()
		elaps := elapsedMS(a.lastRun, now)
		a.lastRun = now

		if a.runRound == r.runRound {
			continue
		}
		a.runRound = r.runRound

		// Crossing from a pending delay into the active range fires
		// OnStart exactly once, and folds in the deferred relative
		// offset unless it was already applied at Start.
		newElapsed := a.elapsed + elaps
		if !a.startCalled && a.elapsed <= 0 && newElapsed >= 0 {
			if !a.ApplyOnStart && a.GetValue != nil {
				ofs := a.GetValue(a)
				a.StartValue += ofs
				a.EndValue += ofs
			}
			if a.OnStart != nil {
				a.OnStart(a)
			}
			a.startCalled = true
			// OnStart (or GetValue) may have deleted this very record.
			if a.reg != r {
				continue
			}
		}

		a.elapsed = newElapsed
		if a.elapsed < 0 {
			continue
		}
		if a.elapsed > a.Duration {
			a.elapsed = a.Duration
		}

		v := a.Path.value(a)
		if v != a.currentValue {
			a.currentValue = v
			if a.Exec != nil {
				a.Exec(a.Target, v)
				// Exec may have deleted or replaced this very record;
				// a retired record must not reach the ready handler.
				if a.reg != r {
					continue
				}
			}
		}

		if a.elapsed >= a.Duration {
			r.ready(a)
		}
	}

	if r.changed {
		r.trimTail()
	}
}

// ready handles a completed leg: repeat, enter or leave playback, or
// retire the animation.
func (r *Registry) ready(a *Animation) {
	// A finished forward leg consumes one repeat.
	if !a.playbackNow && a.RepeatCount > 0 && a.RepeatCount != RepeatInfinite {
		a.RepeatCount--
	}

	// Retire when no repeats remain and there is no playback leg left
	// to run.
	if a.RepeatCount == 0 && (a.PlaybackDuration == 0 || a.playbackNow) {
		// Detach first so OnReady sees the animation as already gone:
		// a Get or CountRunning from inside it observes a consistent
		// registry.
		r.detach(a)
		if a.OnReady != nil {
			a.OnReady(a)
		}
		if a.OnDelete != nil {
			a.OnDelete(a)
		}
		return
	}

	a.elapsed = -a.RepeatDelay
	if a.PlaybackDuration != 0 {
		// Turning around uses the playback delay instead.
		if !a.playbackNow {
			a.elapsed = -a.PlaybackDelay
		}
		a.playbackNow = !a.playbackNow
		a.StartValue, a.EndValue = a.EndValue, a.StartValue
		a.Duration, a.PlaybackDuration = a.PlaybackDuration, a.Duration
	}

	// A leg completed without retiring the animation; OnReady observes
	// the record already reset for the next leg.
	if a.OnReady != nil {
		a.OnReady(a)
	}
}

// trimTail drops free slots from the end of the arena so a registry that
// emptied out does not keep its high-water mark forever.
func (r *Registry) trimTail() {
	n := len(r.slots)
	for n > 0 && r.slots[n-1] == nil {
		n--
	}
	if n == len(r.slots) {
		return
	}
	r.slots = r.slots[:n]
	free := r.free[:0]
	for _, i := range r.free {
		if i < n {
			free = append(free, i)
		}
	}
	r.free = free
}

package anim

import "time"

// Config configures a [Registry]. The zero value selects the system
// clock, an internally owned [LoopScheduler], [DefaultPeriod], and no
// animation cap.
type Config struct {
	// Clock is the time source for sweeps. Nil selects the system clock.
	Clock Clock

	// Scheduler supplies the recurring timer that drives sweeps. Nil
	// makes the registry own a [LoopScheduler]; drive it with
	// [Registry.Step].
	Scheduler Scheduler

	// Period is the sweep cadence. Zero selects [DefaultPeriod].
	Period time.Duration

	// MaxAnimations caps the number of live animations; Start returns
	// nil once the cap is reached. Zero means no cap.
	MaxAnimations int
}

// Registry owns every live [Animation]. An animation exists exactly as
// long as it is registered: retirement, deletion and replacement all go
// through the registry, never through the caller holding the pointer.
//
// Records live in a slot arena: slot indexes stay stable across inserts
// and removals, which is what lets callbacks mutate the registry while a
// sweep is walking it (see [Registry.RunNow]).
//
// Registries are independent; tests typically create their own with a
// fake clock. All methods must be called from a single goroutine.
type Registry struct {
	clock Clock
	timer Timer
	loop  *LoopScheduler // non-nil when the registry owns its scheduler
	max   int

	slots []*Animation // nil entries are free
	free  []int
	count int

	runRound bool // sweep parity
	changed  bool // an insert or removal happened since the flag was cleared
}

// NewRegistry creates an empty registry. Its timer starts paused and is
// resumed by the first Start.
func NewRegistry(cfg Config) *Registry {
	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock()
	}
	period := cfg.Period
	if period <= 0 {
		period = DefaultPeriod
	}

	r := &Registry{clock: clock, max: cfg.MaxAnimations}

	sched := cfg.Scheduler
	if sched == nil {
		r.loop = NewLoopScheduler(clock)
		sched = r.loop
	}
	r.timer = sched.NewTimer(period, r.tick)
	r.timer.Pause()

	return r
}

// Start copies the descriptor into the registry and returns the live
// record, valid until the animation retires or is deleted.
//
// If the descriptor has an Exec, any live animation with the same
// (Target, Exec) pair is deleted first: one animation per animated
// property. If ApplyOnStart is set, the GetValue offset is folded in and
// StartValue is delivered through Exec before Start returns.
//
// Start returns nil when [Config.MaxAnimations] is reached. It is safe
// to call from inside any animation callback.
func (r *Registry) Start(a Animation) *Animation {
	if a.Exec != nil {
		r.Delete(a.Target, a.Exec)
	}
	if r.max > 0 && r.count >= r.max {
		return nil
	}

	na := new(Animation)
	*na = a
	if a.TargetSelf {
		na.Target = na
	}
	na.reg = r
	na.runRound = r.runRound // skip the in-flight sweep
	na.lastRun = r.clock.Now()
	na.elapsed = -a.Delay
	na.playbackNow = false
	na.startCalled = false
	na.currentValue = 0

	if na.ApplyOnStart {
		if na.GetValue != nil {
			ofs := na.GetValue(na)
			na.StartValue += ofs
			na.EndValue += ofs
		}
		if na.Exec != nil && na.Target != nil {
			na.Exec(na.Target, na.StartValue)
		}
	}

	r.insert(na)
	r.markChanged()
	return na
}

// Delete removes every animation matching the target and exec callback
// and reports whether any was removed. A nil target matches every
// target; a nil exec matches every exec. Each removed animation gets its
// OnDelete callback.
//
// OnDelete may itself start or delete animations, so after every removal
// the scan restarts from the beginning; already-removed records cannot
// be visited twice.
func (r *Registry) Delete(target any, exec ExecFunc) bool {
	deleted := false
	for i := 0; i < len(r.slots); i++ {
		a := r.slots[i]
		if a == nil {
			continue
		}
		if (target == nil || a.Target == target) && (exec == nil || sameExec(a.Exec, exec)) {
			r.detach(a)
			if a.OnDelete != nil {
				a.OnDelete(a)
			}
			deleted = true
			i = -1
		}
	}
	return deleted
}

// DeleteAll removes every animation without invoking any callbacks.
func (r *Registry) DeleteAll() {
	for _, a := range r.slots {
		if a != nil {
			a.slot = -1
			a.reg = nil
		}
	}
	r.slots = nil
	r.free = nil
	r.count = 0
	r.markChanged()
	r.changed = false
}

// Get returns the first live animation of target whose exec matches, or
// nil. A nil exec matches any.
func (r *Registry) Get(target any, exec ExecFunc) *Animation {
	for _, a := range r.slots {
		if a == nil {
			continue
		}
		if a.Target == target && (exec == nil || sameExec(a.Exec, exec)) {
			return a
		}
	}
	return nil
}

// CountRunning returns the number of live animations.
func (r *Registry) CountRunning() int { return r.count }

// RunNow runs one sweep synchronously, outside the timer cadence.
func (r *Registry) RunNow() { r.tick() }

// Step advances the registry's internally owned scheduler; call it once
// per frame. It is a no-op when a [Config.Scheduler] was supplied; the
// embedder drives that scheduler itself.
func (r *Registry) Step() {
	if r.loop != nil {
		r.loop.Step()
	}
}

// Timer returns the registry's recurring timer.
func (r *Registry) Timer() Timer { return r.timer }

func (r *Registry) insert(a *Animation) {
	if n := len(r.free); n > 0 {
		i := r.free[n-1]
		r.free = r.free[:n-1]
		a.slot = i
		r.slots[i] = a
	} else {
		a.slot = len(r.slots)
		r.slots = append(r.slots, a)
	}
	r.count++
}

// detach unregisters a live record. The slot is nilled, never shifted,
// so sweep cursors stay valid.
func (r *Registry) detach(a *Animation) {
	r.slots[a.slot] = nil
	r.free = append(r.free, a.slot)
	a.slot = -1
	a.reg = nil
	r.count--
	r.markChanged()
}

// markChanged records a structural change and keeps the timer running
// exactly while animations are live.
func (r *Registry) markChanged() {
	r.changed = true
	if r.count == 0 {
		r.timer.Pause()
	} else {
		r.timer.Resume()
	}
}

package tween

import "time"

type state int

const (
	idle state = iota
	waiting
	running
	done
	cancelled
)

// Transition is one interpolation task. It does nothing until a Driver starts it; the
// driver then calls Update with eased progress on every tick until Duration elapses.
type Transition struct {
	Duration time.Duration
	Delay    time.Duration
	Ease     EaseFunc
	Update   func(progress float32)

	onStart    []func()
	onComplete []func()
	elapsed    time.Duration
	state      state
}

// New returns an unstarted transition calling update over d.
func New(d time.Duration, update func(progress float32)) *Transition {
	return &Transition{Duration: d, Ease: Linear, Update: update}
}

// WithEase sets the easing curve.
func (t *Transition) WithEase(e EaseFunc) *Transition {
	if e != nil {
		t.Ease = e
	}
	return t
}

// WithDelay postpones the start by d once the transition is started.
func (t *Transition) WithDelay(d time.Duration) *Transition {
	t.Delay = d
	return t
}

// OnStart adds a hook run on the first tick after the delay, before the first Update.
func (t *Transition) OnStart(fn func()) *Transition {
	t.onStart = append(t.onStart, fn)
	return t
}

// OnComplete adds a hook run after the final Update. Cancelled transitions never complete.
func (t *Transition) OnComplete(fn func()) *Transition {
	t.onComplete = append(t.onComplete, fn)
	return t
}

// Started reports whether the start hooks have run.
func (t *Transition) Started() bool {
	return t.state == running || t.state == done
}

// Done reports whether the transition reached its end.
func (t *Transition) Done() bool {
	return t.state == done
}

// Cancelled reports whether the transition was cancelled.
func (t *Transition) Cancelled() bool {
	return t.state == cancelled
}

// Cancel stops the transition where it is. The driver drops it on its next tick.
func (t *Transition) Cancel() {
	if t.state != done {
		t.state = cancelled
	}
}

// finished reports whether the driver should drop the transition.
func (t *Transition) finished() bool {
	return t.state == done || t.state == cancelled
}

// step advances by dt and reports whether the transition is finished.
func (t *Transition) step(dt time.Duration) bool {
	if t.finished() {
		return true
	}
	t.elapsed += dt
	if t.elapsed < t.Delay {
		return false
	}
	if t.state != running {
		t.state = running
		for _, fn := range t.onStart {
			fn()
		}
		// a start hook may cancel its own transition
		if t.state == cancelled {
			return true
		}
	}
	p := float32(1)
	if t.Duration > 0 {
		p = float32(t.elapsed-t.Delay) / float32(t.Duration)
		if p > 1 {
			p = 1
		}
	}
	ease := t.Ease
	if ease == nil {
		ease = Linear
	}
	if t.Update != nil {
		e := ease(p)
		if p >= 1 {
			e = 1
		}
		t.Update(e)
	}
	if p < 1 {
		return false
	}
	t.state = done
	for _, fn := range t.onComplete {
		fn()
	}
	return true
}

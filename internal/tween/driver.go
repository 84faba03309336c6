package tween

import "time"

// Driver advances transitions. It is not safe for concurrent use; the frame loop owns it.
type Driver struct {
	active  []*Transition
	pending []*Transition
	now     time.Duration
}

// NewDriver returns an idle driver.
func NewDriver() *Driver {
	return &Driver{}
}

// Start queues transitions. Each is first advanced on the tick after the call, so a
// transition started from a hook during a tick begins one tick after its trigger.
func (d *Driver) Start(ts ...*Transition) {
	for _, t := range ts {
		if t == nil || t.state == running || t.state == waiting {
			continue
		}
		t.state = waiting
		t.elapsed = 0
		d.pending = append(d.pending, t)
	}
}

// Run starts a sequence and returns it.
func (d *Driver) Run(s *Sequence) *Sequence {
	s.start(d)
	return s
}

// Tick advances every transition that was active or queued before the call by dt.
func (d *Driver) Tick(dt time.Duration) {
	d.now += dt
	d.active = append(d.active, d.pending...)
	d.pending = d.pending[:0]

	batch := d.active
	d.active = make([]*Transition, 0, len(batch))
	for _, t := range batch {
		if !t.step(dt) {
			d.active = append(d.active, t)
		}
	}
}

// Cancel cancels t whether it is queued or running.
func (d *Driver) Cancel(t *Transition) {
	t.Cancel()
}

// Len returns the number of transitions queued or running.
func (d *Driver) Len() int {
	n := 0
	for _, t := range d.active {
		if !t.finished() {
			n++
		}
	}
	for _, t := range d.pending {
		if !t.finished() {
			n++
		}
	}
	return n
}

// Idle reports whether nothing is left to animate.
func (d *Driver) Idle() bool {
	return d.Len() == 0
}

// Now returns the total time ticked.
func (d *Driver) Now() time.Duration {
	return d.now
}

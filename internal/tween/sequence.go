package tween

// Sequence is an ordered list of transitions where each step is started when the
// previous step starts, not when it completes.
type Sequence struct {
	steps      []*Transition
	onComplete []func()
	completed  bool
}

// NewSequence wraps steps. Nil steps are skipped.
func NewSequence(steps ...*Transition) *Sequence {
	s := &Sequence{}
	for _, t := range steps {
		if t != nil {
			s.steps = append(s.steps, t)
		}
	}
	return s
}

// Len returns the number of steps.
func (s *Sequence) Len() int {
	return len(s.steps)
}

// Steps returns the steps in order.
func (s *Sequence) Steps() []*Transition {
	return s.steps
}

// OnComplete adds a hook run once the last step completes.
func (s *Sequence) OnComplete(fn func()) *Sequence {
	s.onComplete = append(s.onComplete, fn)
	return s
}

// Done reports whether the last step completed.
func (s *Sequence) Done() bool {
	return s.completed
}

// Cancel stops every unfinished step. The completion hooks will not run.
func (s *Sequence) Cancel() {
	for _, t := range s.steps {
		t.Cancel()
	}
}

func (s *Sequence) start(d *Driver) {
	if len(s.steps) == 0 {
		s.complete()
		return
	}
	for i := 0; i < len(s.steps)-1; i++ {
		next := s.steps[i+1]
		s.steps[i].OnStart(func() { d.Start(next) })
	}
	s.steps[len(s.steps)-1].OnComplete(s.complete)
	d.Start(s.steps[0])
}

func (s *Sequence) complete() {
	if s.completed {
		return
	}
	s.completed = true
	for _, fn := range s.onComplete {
		fn()
	}
}

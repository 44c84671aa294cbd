package game

import "time"

// Task is a one-shot deferred callback driven by frame time.
// It fires at most once and never after it has been cancelled.
type Task struct {
	delay     time.Duration
	elapsed   time.Duration
	fn        func()
	fired     bool
	cancelled bool
}

func NewTask(delay time.Duration, fn func()) *Task {
	return &Task{
		delay: delay,
		fn:    fn,
	}
}

// Advance adds dt to the elapsed time and runs the callback once the delay
// has elapsed. It returns true only on the call that ran the callback.
func (t *Task) Advance(dt time.Duration) bool {
	if !t.Pending() {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.delay {
		return false
	}
	t.fired = true
	if t.fn != nil {
		t.fn()
	}
	return true
}

func (t *Task) Cancel() {
	t.cancelled = true
}

// Pending returns true if the task has neither fired nor been cancelled.
func (t *Task) Pending() bool {
	return !t.fired && !t.cancelled
}

// Remaining returns the time left before the task fires.
func (t *Task) Remaining() time.Duration {
	if !t.Pending() || t.elapsed >= t.delay {
		return 0
	}
	return t.delay - t.elapsed
}

package simulation

import (
	"time"

	"go.uber.org/zap"
)

// Task is a handle to deferred work owned by a Scheduler.
type Task struct {
	Name     string
	due      time.Time
	interval time.Duration // Zero for one-shot tasks
	fn       func() bool   // Returns true when a repeating task is finished
	done     bool
}

func (t *Task) String() string {
	return t.Name
}

// Cancel stops the task from running again. Cancelling a task that already
// ran or was cancelled is a no-op; a nil task is allowed.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.done = true
}

// Pending reports whether the task will still run.
func (t *Task) Pending() bool {
	return t != nil && !t.done
}

// Scheduler runs deferred callbacks on the tick goroutine.
//
// It has no timer of its own: Run is called once per tick with the current
// time and executes every task that is due, in scheduling order. Tasks added
// by a running callback are considered on the next Run at the earliest.
type Scheduler struct {
	clock Clock
	tasks []*Task
	log   *zap.SugaredLogger
}

// NewScheduler creates a scheduler reading time from clock
func NewScheduler(clock Clock, log *zap.SugaredLogger) *Scheduler {
	return &Scheduler{clock: clock, log: log}
}

// After runs fn once, on the first tick at or after delay from now.
func (s *Scheduler) After(name string, delay time.Duration, fn func()) *Task {
	return s.add(&Task{
		Name: name,
		due:  s.clock.Now().Add(delay),
		fn: func() bool {
			fn()
			return true
		},
	})
}

// Every polls fn at the given interval until it returns true or the task is
// cancelled. The first poll happens one interval from now.
func (s *Scheduler) Every(name string, interval time.Duration, fn func() bool) *Task {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return s.add(&Task{
		Name:     name,
		due:      s.clock.Now().Add(interval),
		interval: interval,
		fn:       fn,
	})
}

func (s *Scheduler) add(t *Task) *Task {
	s.tasks = append(s.tasks, t)
	s.log.Debugw("task added", "task", t.Name, "due", t.due)
	return t
}

// Run executes every task due at now and drops finished ones.
func (s *Scheduler) Run(now time.Time) (ran int) {
	current := s.tasks
	s.tasks = nil

	kept := current[:0:0]
	for _, t := range current {
		if t.done {
			continue
		}
		if now.Before(t.due) {
			kept = append(kept, t)
			continue
		}
		ran++
		if t.fn() || t.interval == 0 {
			t.done = true
			continue
		}
		// Drift-free rescheduling, skipping missed polls.
		for !now.Before(t.due) {
			t.due = t.due.Add(t.interval)
		}
		if !t.done {
			kept = append(kept, t)
		}
	}

	s.tasks = append(kept, s.tasks...)
	return ran
}

// Len returns the number of tasks still pending.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.tasks {
		if !t.done {
			n++
		}
	}
	return n
}

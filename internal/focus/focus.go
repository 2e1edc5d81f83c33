// Package focus abstracts the "is the user focused" signal that gates plant
// growth. Detection itself is an external concern with no portable
// implementation, so the package only defines the boundary and two simple
// implementations: a manual toggle and a timed session schedule.
package focus

import (
	"sync"
	"time"
)

// Signal reports whether the host is currently in a focus state.
// Implementations must be safe for concurrent use.
type Signal interface {
	Focused() bool
}

// Manual is a Signal toggled explicitly, typically by a key binding.
type Manual struct {
	mu sync.Mutex
	on bool
}

// NewManual creates a manual signal with the given initial state.
func NewManual(on bool) *Manual {
	return &Manual{on: on}
}

// Focused reports the current state.
func (m *Manual) Focused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.on
}

// Set forces the state.
func (m *Manual) Set(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.on = on
}

// Toggle flips the state and returns the new value.
func (m *Manual) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.on = !m.on
	return m.on
}

// Schedule is a Signal that is focused for a fixed window of time, modeling
// a pomodoro-style session.
type Schedule struct {
	Start    time.Time
	Duration time.Duration

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

// NewSchedule creates a session running from start for the given duration.
func NewSchedule(start time.Time, d time.Duration) *Schedule {
	return &Schedule{Start: start, Duration: d, now: time.Now}
}

// Focused reports whether the current time falls inside the session window.
func (s *Schedule) Focused() bool {
	nowFn := s.now
	if nowFn == nil {
		nowFn = time.Now
	}
	t := nowFn()
	return !t.Before(s.Start) && t.Before(s.Start.Add(s.Duration))
}

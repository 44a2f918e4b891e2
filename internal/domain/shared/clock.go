package shared

import "time"

// Clock abstracts time so retry backoff can be instant in tests
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// RealClock uses the actual system time
type RealClock struct{}

// Now returns the current system time in UTC
func (RealClock) Now() time.Time { return time.Now().UTC() }

// Sleep blocks for the given duration
func (RealClock) Sleep(d time.Duration) { time.Sleep(d) }

// NewRealClock creates a RealClock instance
func NewRealClock() Clock { return RealClock{} }

// MockClock is a controllable clock for tests. Sleep advances the clock
// without blocking and records each requested duration.
type MockClock struct {
	CurrentTime time.Time
	Slept       []time.Duration
}

// NewMockClock creates a MockClock starting at the given time, or at the
// current time when given the zero time.
func NewMockClock(start time.Time) *MockClock {
	if start.IsZero() {
		start = time.Now()
	}
	return &MockClock{CurrentTime: start}
}

// Now returns the mock's current time
func (m *MockClock) Now() time.Time { return m.CurrentTime }

// Sleep advances the mock clock instantly
func (m *MockClock) Sleep(d time.Duration) {
	m.Slept = append(m.Slept, d)
	m.CurrentTime = m.CurrentTime.Add(d)
}

// Advance moves the mock clock forward without recording a sleep
func (m *MockClock) Advance(d time.Duration) {
	m.CurrentTime = m.CurrentTime.Add(d)
}

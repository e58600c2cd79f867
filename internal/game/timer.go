package game

// Timer is a countdown budget for one level attempt. It owns its remaining
// seconds explicitly and carries no wall-clock dependency: the surrounding
// loop decides how often Tick is called.
type Timer struct {
	remaining int
	ticks     int
}

// NewTimer creates a timer with the given budget.
func NewTimer(minutes, seconds int) *Timer {
	t := &Timer{}
	t.Reset(minutes, seconds)
	return t
}

// Tick decrements the remaining time by one second, clamped at zero, and
// returns the new status. Once expired, further calls keep returning
// TimerExpired without going negative.
func (t *Timer) Tick() TimerStatus {
	t.ticks++
	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining == 0 {
		return TimerExpired
	}
	return TimerRunning
}

// Remaining returns the remaining budget as minutes and seconds.
func (t *Timer) Remaining() (minutes, seconds int) {
	return t.remaining / 60, t.remaining % 60
}

// RemainingSeconds returns the remaining budget in whole seconds.
func (t *Timer) RemainingSeconds() int { return t.remaining }

// Ticks returns how many times Tick has been called since the last Reset.
func (t *Timer) Ticks() int { return t.ticks }

// Reset reinitializes the timer for a new attempt. Negative inputs clamp
// to zero.
func (t *Timer) Reset(minutes, seconds int) {
	if minutes < 0 {
		minutes = 0
	}
	if seconds < 0 {
		seconds = 0
	}
	t.remaining = minutes*60 + seconds
	t.ticks = 0
}

package fishing

import (
	"fmt"
	"math"
)

// SessionTimer counts an amusement round down in simulated time.
type SessionTimer struct {
	total   float64
	elapsed float64
}

// NewSessionTimer creates a timer for a round of the given length.
func NewSessionTimer(minutes int) *SessionTimer {
	return &SessionTimer{total: float64(minutes) * 60}
}

// Advance adds dt and reports whether the timer ran out on this call.
func (t *SessionTimer) Advance(dt float64) bool {
	if t.Expired() {
		return false
	}
	t.elapsed += dt
	if t.elapsed >= t.total-1e-9 {
		t.elapsed = t.total
	}
	return t.Expired()
}

func (t *SessionTimer) Expired() bool      { return t.elapsed >= t.total }
func (t *SessionTimer) Elapsed() float64   { return t.elapsed }
func (t *SessionTimer) Remaining() float64 { return t.total - t.elapsed }

// String formats the remaining time as m:ss, rounding up so the clock only
// reads 0:00 once the round is over.
func (t *SessionTimer) String() string {
	return clock(math.Ceil(t.Remaining() - 1e-9))
}

func clock(seconds float64) string {
	s := int(math.Max(seconds, 0))
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

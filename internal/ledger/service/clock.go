package service

import (
	"sync"
	"time"
)

// NewMonotonicClock wraps now so successive readings never go backwards.
// Readings are truncated to microseconds to match what the stores keep.
func NewMonotonicClock(now func() time.Time) func() time.Time {
	var (
		mu   sync.Mutex
		last time.Time
	)
	return func() time.Time {
		t := now().Truncate(time.Microsecond)

		mu.Lock()
		defer mu.Unlock()
		if t.Before(last) {
			t = last
		}
		last = t
		return t
	}
}

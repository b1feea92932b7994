package touch

import "time"

// SetNow replaces the clock until the test ends.
func SetNow(t interface{ Cleanup(func()) }, fn func() time.Time) {
	old := now
	now = fn
	t.Cleanup(func() { now = old })
}

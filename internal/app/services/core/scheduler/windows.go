package scheduler

import "time"

// MeetLinkWindow selects appointments about to start: [now, now+span].
func MeetLinkWindow(now time.Time, span time.Duration) (time.Time, time.Time) {
	return now, now.Add(span)
}

// ReminderWindow is centered on now+lead with a symmetric tolerance.
// Duplicate suppression across ticks comes from the reminder sent-marker,
// not from the tolerance, so the tolerance may be wider than the tick
// interval.
func ReminderWindow(now time.Time, lead, tolerance time.Duration) (time.Time, time.Time) {
	center := now.Add(lead)
	return center.Add(-tolerance), center.Add(tolerance)
}

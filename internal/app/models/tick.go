package models

import "time"

// TickResult summarizes one scheduler tick. It lives only for the duration
// of the tick; it is logged and returned to the trigger caller, not stored.
type TickResult struct {
	StartedAt       time.Time  `json:"started_at"`
	ExecutionTimeMS int64      `json:"execution_time_ms"`
	MeetLink        TaskReport `json:"meet_link"`
	Reminder        TaskReport `json:"reminder"`
}

// Success reports whether both sub-tasks ran without a task-level error.
// Per-record failures do not make a tick unsuccessful.
func (t *TickResult) Success() bool {
	return t.MeetLink.Error == "" && t.Reminder.Error == ""
}

type TaskReport struct {
	Task      string        `json:"task"`
	Found     int           `json:"found"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Skipped   int           `json:"skipped"`
	Error     string        `json:"error,omitempty"`
	Failures  []TaskFailure `json:"failures,omitempty"`
}

type TaskFailure struct {
	AppointmentID string `json:"appointment_id"`
	UserID        string `json:"user_id,omitempty"`
	Reason        string `json:"reason"`
	Detail        string `json:"detail,omitempty"`
}

package responses

// TickResponse is the envelope returned by the scheduler trigger endpoint.
// It only ever carries aggregate counts; per-record detail stays in logs.
type TickResponse struct {
	Success       bool         `json:"success"`
	Message       string       `json:"message"`
	Timestamp     string       `json:"timestamp"`
	ExecutionTime int64        `json:"executionTime"`
	MeetLink      *TaskSummary `json:"meetLink,omitempty"`
	Reminder      *TaskSummary `json:"reminder,omitempty"`
	Error         string       `json:"error,omitempty"`
}

type TaskSummary struct {
	Found     int    `json:"found"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
	Skipped   int    `json:"skipped"`
	Error     string `json:"error,omitempty"`
}

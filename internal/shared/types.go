package shared

// Task types handled by the worker
const (
	TypeReportNewIsbns = "book:report_new_isbns"
)

// Queues
const (
	QueueDefault = "default"
	QueueReport  = "report"
)

// ReportNewIsbnsPayload is carried by scheduled report tasks.
// A zero window falls back to the worker's configured window.
type ReportNewIsbnsPayload struct {
	WindowSeconds int64 `json:"window_seconds"`
}

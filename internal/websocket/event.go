package websocket

type EventType string

const (
	EventReportCreated EventType = "report.created"
	EventReportStatus  EventType = "report.status"
)

type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload"`
	Meta    *EventMeta  `json:"meta,omitempty"`
}

type EventMeta struct {
	Timestamp int64 `json:"timestamp"`
}

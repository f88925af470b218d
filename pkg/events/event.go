package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "REPORT_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation every concrete event builds on.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Report lifecycle event types.
const (
	TypeReportRequested = "REPORT_REQUESTED"
	TypeReportCompleted = "REPORT_COMPLETED"
	TypeReportFailed    = "REPORT_FAILED"
)

// NewReportRequested marks the start of a generation run.
func NewReportRequested(sessionID, userID, companyName string) Event {
	return BaseEvent{
		Type: TypeReportRequested,
		Data: map[string]interface{}{
			"session_id":   sessionID,
			"user_id":      userID,
			"company_name": companyName,
		},
		OccurredAt: time.Now(),
	}
}

// NewReportCompleted marks a successful generation run.
func NewReportCompleted(sessionID, userID, companyName string, reportID uint) Event {
	return BaseEvent{
		Type: TypeReportCompleted,
		Data: map[string]interface{}{
			"session_id":   sessionID,
			"user_id":      userID,
			"company_name": companyName,
			"report_id":    reportID,
		},
		OccurredAt: time.Now(),
	}
}

// NewReportFailed marks a generation run the backend rejected or that
// errored out.
func NewReportFailed(sessionID, userID, companyName, reason string) Event {
	return BaseEvent{
		Type: TypeReportFailed,
		Data: map[string]interface{}{
			"session_id":   sessionID,
			"user_id":      userID,
			"company_name": companyName,
			"reason":       reason,
		},
		OccurredAt: time.Now(),
	}
}

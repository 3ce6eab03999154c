package events

import "time"

// All record-lifecycle events share one topic so the movement audit
// consumer sees them in order per employee.
const RecordLifecycleTopic = "archive.record.lifecycle.v1"

const (
	TypeEmployeeTerminated = "employee_terminated"
	TypeRecordArchived     = "record_archived"
	TypeLoanReturned       = "loan_returned"
)

type EmployeeTerminatedEvent struct {
	EventType       string    `json:"event_type"`
	EventID         string    `json:"event_id"`
	RequestID       string    `json:"request_id,omitempty"`
	EmployeeID      string    `json:"employee_id"`
	EmployeeName    string    `json:"employee_name"`
	TerminationDate string    `json:"termination_date"`
	FreedPosition   string    `json:"freed_position,omitempty"`
	Actor           string    `json:"actor"`
	OccurredAt      time.Time `json:"occurred_at"`
}

type RecordArchivedEvent struct {
	EventType    string    `json:"event_type"`
	EventID      string    `json:"event_id"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	BoxID        string    `json:"box_id"`
	BoxNumber    string    `json:"box_number"`
	Actor        string    `json:"actor"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type LoanReturnedEvent struct {
	EventType    string    `json:"event_type"`
	EventID      string    `json:"event_id"`
	RequestID    string    `json:"request_id,omitempty"`
	LoanID       string    `json:"loan_id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Requester    string    `json:"requester"`
	Actor        string    `json:"actor"`
	OccurredAt   time.Time `json:"occurred_at"`
}

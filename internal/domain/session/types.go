package session

type Status string

const (
	StatusIncomplete       Status = "incomplete"
	StatusReadyForComplete Status = "ready_for_complete"
	StatusCompleted        Status = "completed"
	// StatusCanceled is a synthetic response state for not-found and
	// expired lookups. It is never stored on a live session.
	StatusCanceled Status = "canceled"
)

type MessageType string

const (
	MessageTypeError MessageType = "error"
	MessageTypeInfo  MessageType = "info"
)

type Severity string

const (
	SeverityRecoverable        Severity = "recoverable"
	SeverityRequiresBuyerInput Severity = "requires_buyer_input"
)

const (
	CodeMissing        = "missing"
	CodeNotReady       = "not_ready"
	CodeOrderConfirmed = "order_confirmed"
)

type TotalType string

const (
	TotalTypeSubtotal TotalType = "subtotal"
	TotalTypeTax      TotalType = "tax"
	TotalTypeTotal    TotalType = "total"
)

// Message is a structured diagnostic surfaced to the caller. Messages are
// recomputed on every mutating operation, never accumulated.
type Message struct {
	Type     MessageType
	Code     string
	Severity Severity
	Content  string
	Path     string
}

type Total struct {
	Type   TotalType
	Amount int64
	Label  string
}

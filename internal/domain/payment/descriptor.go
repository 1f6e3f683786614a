package payment

import "encoding/json"

// HandlerDescriptor describes one payment handler for discovery
// responses. The engine never interprets the config blob; it is
// validated once at registration and passed through as opaque data.
type HandlerDescriptor struct {
	ID                string
	Name              string
	Version           string
	InstrumentSchemas []string
	Config            json.RawMessage
}

// Registry is the set of payment handlers this deployment advertises.
type Registry interface {
	Handlers() []HandlerDescriptor
}

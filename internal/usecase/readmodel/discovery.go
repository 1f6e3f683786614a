package readmodel

import "encoding/json"

type CapabilityRM struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// PaymentHandlerRM is a purely descriptive payment-handler descriptor.
// The config blob is validated once at startup and otherwise opaque.
type PaymentHandlerRM struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Version           string          `json:"version"`
	InstrumentSchemas []string        `json:"instrument_schemas"`
	Config            json.RawMessage `json:"config"`
}

type DiscoveryRM struct {
	Capability      CapabilityRM       `json:"capability"`
	PaymentHandlers []PaymentHandlerRM `json:"payment_handlers"`
}

package payment

import (
	"encoding/json"

	domain "checkout-service/internal/domain/payment"
	"checkout-service/internal/pkg/errs"

	"github.com/xeipuuv/gojsonschema"
)

// handlerConfigSchema constrains the descriptor config blobs this
// deployment will advertise. Beyond this startup check the blobs stay
// opaque to the engine.
const handlerConfigSchema = `{
	"type": "object",
	"required": ["mode"],
	"properties": {
		"mode": {"enum": ["test", "live"]},
		"capture": {"type": "string"},
		"statement_descriptor": {"type": "string", "maxLength": 22}
	},
	"additionalProperties": true
}`

type StaticRegistry struct {
	handlers []domain.HandlerDescriptor
}

// NewStaticRegistry validates every descriptor config against the
// handler config schema and fails startup on the first violation.
func NewStaticRegistry() (*StaticRegistry, error) {
	handlers := defaultHandlers()

	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(handlerConfigSchema))
	if err != nil {
		return nil, errs.Wrap(err, "failed to compile payment handler config schema")
	}
	for _, h := range handlers {
		result, err := schema.Validate(gojsonschema.NewBytesLoader(h.Config))
		if err != nil {
			return nil, errs.Wrap(err, "failed to validate payment handler config")
		}
		if !result.Valid() {
			return nil, errs.Newf("payment handler %q has invalid config: %v", h.ID, result.Errors())
		}
	}

	return &StaticRegistry{handlers: handlers}, nil
}

func (r *StaticRegistry) Handlers() []domain.HandlerDescriptor {
	out := make([]domain.HandlerDescriptor, len(r.handlers))
	copy(out, r.handlers)
	return out
}

func defaultHandlers() []domain.HandlerDescriptor {
	return []domain.HandlerDescriptor{
		{
			ID:      "mock_card",
			Name:    "Mock Card Processor",
			Version: "1.2.0",
			InstrumentSchemas: []string{
				"https://schemas.checkout.example.com/instruments/card-v1.json",
			},
			Config: json.RawMessage(`{"mode":"test","capture":"automatic","statement_descriptor":"FLOWER SHOP"}`),
		},
		{
			ID:      "store_credit",
			Name:    "Store Credit",
			Version: "0.9.1",
			InstrumentSchemas: []string{
				"https://schemas.checkout.example.com/instruments/store-credit-v1.json",
			},
			Config: json.RawMessage(`{"mode":"test"}`),
		},
	}
}

var _ domain.Registry = (*StaticRegistry)(nil)

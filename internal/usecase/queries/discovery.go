package queries

import (
	"context"

	"checkout-service/internal/domain/payment"
	"checkout-service/internal/usecase/readmodel"
)

const (
	capabilityName    = "checkout_session"
	capabilityVersion = "2026-01-01"
)

type DiscoveryQueries interface {
	Describe(ctx context.Context) *readmodel.DiscoveryRM
}

type discoveryQueriesImpl struct {
	registry payment.Registry
}

func NewDiscoveryQueries(registry payment.Registry) DiscoveryQueries {
	return &discoveryQueriesImpl{registry: registry}
}

func (q *discoveryQueriesImpl) Describe(_ context.Context) *readmodel.DiscoveryRM {
	handlers := q.registry.Handlers()
	rms := make([]readmodel.PaymentHandlerRM, 0, len(handlers))
	for _, h := range handlers {
		rms = append(rms, readmodel.PaymentHandlerRM{
			ID:                h.ID,
			Name:              h.Name,
			Version:           h.Version,
			InstrumentSchemas: h.InstrumentSchemas,
			Config:            h.Config,
		})
	}
	return &readmodel.DiscoveryRM{
		Capability:      readmodel.CapabilityRM{Name: capabilityName, Version: capabilityVersion},
		PaymentHandlers: rms,
	}
}

package queries

import (
	"context"

	"checkout-service/internal/domain/catalog"
	"checkout-service/internal/usecase/readmodel"
)

type CatalogQueries interface {
	ListProducts(ctx context.Context) []readmodel.ProductRM
}

type catalogQueriesImpl struct {
	catalog catalog.Catalog
}

func NewCatalogQueries(c catalog.Catalog) CatalogQueries {
	return &catalogQueriesImpl{catalog: c}
}

func (q *catalogQueriesImpl) ListProducts(_ context.Context) []readmodel.ProductRM {
	products := q.catalog.ListProducts()
	rms := make([]readmodel.ProductRM, 0, len(products))
	for _, p := range products {
		rms = append(rms, readmodel.FromProduct(p))
	}
	return rms
}

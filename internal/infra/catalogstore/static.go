package catalogstore

import "checkout-service/internal/domain/catalog"

// StaticCatalog is the fixed, read-only product list. Stock counts are
// advertised but never decremented; inventory is not this service's job.
type StaticCatalog struct {
	products []catalog.Product
	byID     map[string]catalog.Product
}

func NewStaticCatalog() *StaticCatalog {
	products := []catalog.Product{
		{ID: "1", Name: "Rose Bouquet", UnitPrice: 299, Stock: 120},
		{ID: "2", Name: "Tulip Bundle", UnitPrice: 499, Stock: 80},
		{ID: "3", Name: "Sunflower Bunch", UnitPrice: 349, Stock: 64},
		{ID: "4", Name: "Orchid Pot", UnitPrice: 1299, Stock: 25},
		{ID: "5", Name: "Wildflower Mix", UnitPrice: 599, Stock: 40},
	}

	byID := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &StaticCatalog{products: products, byID: byID}
}

func (c *StaticCatalog) ListProducts() []catalog.Product {
	out := make([]catalog.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *StaticCatalog) GetProduct(id string) (catalog.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

var _ catalog.Catalog = (*StaticCatalog)(nil)

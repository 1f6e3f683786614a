package readmodel

import "checkout-service/internal/domain/catalog"

type ProductRM struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Stock     int    `json:"stock"`
}

func FromProduct(p catalog.Product) ProductRM {
	return ProductRM{
		ID:        p.ID,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
		Stock:     p.Stock,
	}
}

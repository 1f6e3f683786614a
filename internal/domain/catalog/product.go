package catalog

// Product is an immutable catalog entry. Prices are integer minor
// currency units; IDs are unique and stable for the process lifetime.
type Product struct {
	ID        string
	Name      string
	UnitPrice int64
	Stock     int
}

type Catalog interface {
	ListProducts() []Product
	GetProduct(id string) (Product, bool)
}

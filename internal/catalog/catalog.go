package catalog

import (
	"context"
	"fmt"

	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Catalog is read-only product reference data.
type Catalog interface {
	Lookup(id int64) (domain.Product, bool)
	List(category domain.Category) []domain.Product
}

// Static is an immutable in-memory catalog, safe for concurrent use.
type Static struct {
	products []domain.Product
	byID     map[int64]int
}

func NewStatic(products []domain.Product) *Static {
	s := &Static{
		products: make([]domain.Product, len(products)),
		byID:     make(map[int64]int, len(products)),
	}
	copy(s.products, products)
	for i, p := range s.products {
		s.byID[p.ID] = i
	}
	return s
}

func (s *Static) Lookup(id int64) (domain.Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return s.products[i], true
}

// List returns products in catalog order. CategoryAll or an empty category returns everything.
func (s *Static) List(category domain.Category) []domain.Product {
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if category == "" || category == domain.CategoryAll || p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Default is the storefront's built-in product line.
func Default() *Static {
	return NewStatic([]domain.Product{
		{ID: 1, Name: "RTX 4090 Suprim X", Category: domain.CategoryGPU, Price: decimal.NewFromInt(1999), ImageURL: "/images/msi2.jpg", Spec: "24GB GDDR6X"},
		{ID: 2, Name: "RTX 4080 Gaming X", Category: domain.CategoryGPU, Price: decimal.NewFromInt(1199), ImageURL: "/images/msi4.jpg", Spec: "16GB GDDR6X"},
		{ID: 3, Name: "MPG Z790 Edge", Category: domain.CategoryMotherboard, Price: decimal.NewFromInt(449), ImageURL: "/images/msi1.jpg", Spec: "LGA1700 • DDR5"},
		{ID: 4, Name: "MPG B850 Edge", Category: domain.CategoryMotherboard, Price: decimal.NewFromInt(249), ImageURL: "/images/msi3.jpg", Spec: "AM5 • DDR5"},
		{ID: 5, Name: "GM41 Gaming Mouse", Category: domain.CategoryPeripheral, Price: decimal.NewFromInt(79), ImageURL: "/images/msi5.png", Spec: "26000 DPI"},
		{ID: 6, Name: "GK50Z RGB Keyboard", Category: domain.CategoryPeripheral, Price: decimal.NewFromInt(129), ImageURL: "/images/msi6.jpg", Spec: "Mechanical Switches"},
	})
}

type productLister interface {
	GetAllProducts(ctx context.Context) ([]*domain.Product, error)
}

// LoadStatic snapshots every product from repo. The catalog never changes
// for the lifetime of the process.
func LoadStatic(ctx context.Context, repo productLister) (*Static, error) {
	products, err := repo.GetAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	list := make([]domain.Product, 0, len(products))
	for _, p := range products {
		list = append(list, *p)
	}
	return NewStatic(list), nil
}

package domain

import "context"

// Category groups products. The product side holds the foreign key.
type Category struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Name     string    `json:"name" gorm:"not null"`
	ImageURL string    `json:"image_url"`
	Products []Product `json:"products,omitempty" gorm:"-"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// CategoryRepository defines the contract for category data access.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]Category, error)
	// FindInStockProducts returns the products eligible for the public
	// category overview, in category grouping order.
	FindInStockProducts(ctx context.Context) ([]Product, error)
}

// GroupProductsByCategory attaches products to their owning categories,
// preserving category order and product row order. Products without a known
// category are dropped, matching the public overview.
func GroupProductsByCategory(categories []Category, products []Product) []Category {
	index := make(map[uint]int, len(categories))
	grouped := make([]Category, len(categories))
	for i, cat := range categories {
		cat.Products = []Product{}
		grouped[i] = cat
		index[cat.ID] = i
	}

	for _, prod := range products {
		if prod.CategoryID == nil {
			continue
		}
		if i, ok := index[*prod.CategoryID]; ok {
			grouped[i].Products = append(grouped[i].Products, prod)
		}
	}

	return grouped
}

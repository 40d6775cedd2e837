package domain

import (
	"context"
	"time"
)

// Sort keys recognized by the product listing. Anything else falls back to
// newest-first.
const (
	SortNewest     = "newest"
	SortRatingDesc = "rating_desc"
)

// DefaultPageSize is the catalog listing page size.
const DefaultPageSize = 12

// Product represents a catalog item. Only products with stock > 0 are
// visible in the public listing.
type Product struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Description   string    `json:"description"`
	Price         float64   `json:"price" gorm:"not null"`
	DiscountPrice *float64  `json:"discount_price"`
	ImageURL      string    `json:"image_url"`
	Stock         int       `json:"stock" gorm:"not null;default:0"`
	Rating        float64   `json:"rating"`
	IsNew         bool      `json:"is_new"`
	CategoryID    *uint     `json:"category_id"`
	Category      *Category `json:"category,omitempty" gorm:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// OnSale reports whether the product has an active discount.
func (p *Product) OnSale() bool {
	return p.DiscountPrice != nil
}

// ProductFilter describes the optional listing predicate. Zero values mean
// "filter absent" and generate no SQL clause at all.
type ProductFilter struct {
	Search     string
	CategoryID uint
	OnSale     bool
}

// ProductRepository defines the contract for catalog data access. Every
// operation takes the request context so spans and cancellation propagate
// into the queries.
type ProductRepository interface {
	FindByID(ctx context.Context, id uint) (*Product, error)
	// CountProducts and FindProducts share one predicate; the listing
	// issues them back to back (count first, then the page).
	CountProducts(ctx context.Context, filter ProductFilter) (int64, error)
	FindProducts(ctx context.Context, filter ProductFilter, sortBy string, limit, offset int) ([]Product, error)
	FindFavorites(ctx context.Context, userID uint) ([]Product, error)
	AddFavorite(ctx context.Context, userID, productID uint) error
	RemoveFavorite(ctx context.Context, userID, productID uint) error
}

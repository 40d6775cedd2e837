package repository

import (
	"fmt"

	"github.com/merqado/storefront/internal/order/domain"
	"gorm.io/gorm"
)

// ErrInsufficientStock is returned when a checkout asks for more units than
// the catalog has.
var ErrInsufficientStock = fmt.Errorf("insufficient stock")

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Order{}, &domain.OrderItem{})
}

// CountByUser counts a user's orders.
func (r *GormOrderRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Order{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// FindPageByUser fetches one page of a user's orders, newest first.
func (r *GormOrderRepository) FindPageByUser(userID uint, limit, offset int) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	return orders, nil
}

// FindItemRows fetches the flat item/product join rows for a set of orders,
// one row per item, ordered by insertion within each order.
func (r *GormOrderRepository) FindItemRows(orderIDs []uint) ([]domain.ItemRow, error) {
	if len(orderIDs) == 0 {
		return []domain.ItemRow{}, nil
	}

	var rows []domain.ItemRow
	err := r.db.
		Table("order_items oi").
		Select("oi.order_id, oi.quantity, oi.price, p.id AS product_id, p.name AS product_name, p.image_url AS product_image_url").
		Joins("JOIN products p ON p.id = oi.product_id").
		Where("oi.order_id IN ?", orderIDs).
		Order("oi.order_id, oi.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find order items: %w", err)
	}
	return rows, nil
}

// Create persists an order and its items atomically. For each item it
// snapshots the effective price (discount price when present) and
// decrements stock, failing the whole transaction when stock runs short.
func (r *GormOrderRepository) Create(order *domain.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var total float64

		for i := range order.Items {
			item := &order.Items[i]

			var product struct {
				ID            uint
				Name          string
				ImageURL      string
				Price         float64
				DiscountPrice *float64
				Stock         int
			}
			err := tx.Table("products").
				Where("id = ?", item.ProductID).
				Take(&product).Error
			if err != nil {
				return fmt.Errorf("failed to load product %d: %w", item.ProductID, err)
			}

			if product.Stock < item.Quantity {
				return fmt.Errorf("%w for product %d", ErrInsufficientStock, item.ProductID)
			}

			item.Price = product.Price
			if product.DiscountPrice != nil {
				item.Price = *product.DiscountPrice
			}
			item.Product = &domain.ProductRef{
				ID:       product.ID,
				Name:     product.Name,
				ImageURL: product.ImageURL,
			}
			total += item.Price * float64(item.Quantity)

			err = tx.Table("products").
				Where("id = ?", item.ProductID).
				Update("stock", gorm.Expr("stock - ?", item.Quantity)).Error
			if err != nil {
				return fmt.Errorf("failed to decrement stock: %w", err)
			}
		}

		order.TotalPrice = total
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for i := range order.Items {
			order.Items[i].OrderID = order.ID
		}
		if err := tx.Create(&order.Items).Error; err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}

		return nil
	})
}

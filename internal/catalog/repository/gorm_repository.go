package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/merqado/storefront/internal/catalog/domain"
	"gorm.io/gorm"
)

// GormCatalogRepository implements the catalog repositories using GORM
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormCatalogRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Category{}, &domain.Product{}, &domain.Favorite{})
}

// escapeLike neutralizes LIKE metacharacters in user-supplied search terms
// so they match literally. The pattern is executed with ESCAPE '\'.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}

// productQuery builds the shared listing predicate. Absent filters generate
// no clause; the stock floor always applies.
func (r *GormCatalogRepository) productQuery(ctx context.Context, filter domain.ProductFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&domain.Product{}).Where("products.stock > 0")

	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		query = query.Where(`products.name ILIKE ? ESCAPE '\'`, pattern)
	}
	if filter.CategoryID != 0 {
		query = query.Where("products.category_id = ?", filter.CategoryID)
	}
	if filter.OnSale {
		query = query.Where("products.discount_price IS NOT NULL")
	}

	return query
}

// CountProducts counts the rows matching the listing predicate.
func (r *GormCatalogRepository) CountProducts(ctx context.Context, filter domain.ProductFilter) (int64, error) {
	var count int64
	if err := r.productQuery(ctx, filter).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// productRow is the flat shape of one listing row: product columns plus the
// left-joined category columns.
type productRow struct {
	ID               uint
	Name             string
	Description      string
	Price            float64
	DiscountPrice    *float64
	ImageURL         string
	Stock            int
	Rating           float64
	IsNew            bool
	CategoryID       *uint
	CreatedAt        time.Time
	CategoryName     *string
	CategoryImageURL *string
}

func (row productRow) toProduct() domain.Product {
	product := domain.Product{
		ID:            row.ID,
		Name:          row.Name,
		Description:   row.Description,
		Price:         row.Price,
		DiscountPrice: row.DiscountPrice,
		ImageURL:      row.ImageURL,
		Stock:         row.Stock,
		Rating:        row.Rating,
		IsNew:         row.IsNew,
		CategoryID:    row.CategoryID,
		CreatedAt:     row.CreatedAt,
	}
	if row.CategoryID != nil && row.CategoryName != nil {
		category := &domain.Category{ID: *row.CategoryID, Name: *row.CategoryName}
		if row.CategoryImageURL != nil {
			category.ImageURL = *row.CategoryImageURL
		}
		product.Category = category
	}
	return product
}

// FindProducts fetches one page of the listing with the category attached,
// in a single joined query.
func (r *GormCatalogRepository) FindProducts(ctx context.Context, filter domain.ProductFilter, sortBy string, limit, offset int) ([]domain.Product, error) {
	orderBy := "products.created_at DESC"
	if sortBy == domain.SortRatingDesc {
		orderBy = "products.rating DESC"
	}

	var rows []productRow
	err := r.productQuery(ctx, filter).
		Select("products.*, categories.name AS category_name, categories.image_url AS category_image_url").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Order(orderBy).
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toProduct())
	}
	return products, nil
}

// FindByID retrieves a single product with its category.
func (r *GormCatalogRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var row productRow
	err := r.db.WithContext(ctx).Model(&domain.Product{}).
		Select("products.*, categories.name AS category_name, categories.image_url AS category_image_url").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Where("products.id = ?", id).
		Take(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	product := row.toProduct()
	return &product, nil
}

// FindAll retrieves every category.
func (r *GormCatalogRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to find categories: %w", err)
	}
	return categories, nil
}

// FindInStockProducts retrieves the products shown on the category overview.
func (r *GormCatalogRepository) FindInStockProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).
		Select("id", "name", "image_url", "category_id").
		Where("stock > 0").
		Order("id").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find in-stock products: %w", err)
	}
	return products, nil
}

// FindFavorites retrieves the products a user has favorited.
func (r *GormCatalogRepository) FindFavorites(ctx context.Context, userID uint) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Model(&domain.Product{}).
		Joins("JOIN favorites ON favorites.product_id = products.id").
		Where("favorites.user_id = ?", userID).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find favorites: %w", err)
	}
	return products, nil
}

// AddFavorite marks a product as favorite. Adding twice is a no-op.
func (r *GormCatalogRepository) AddFavorite(ctx context.Context, userID, productID uint) error {
	favorite := domain.Favorite{UserID: userID, ProductID: productID}
	err := r.db.WithContext(ctx).Where(favorite).FirstOrCreate(&favorite).Error
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite unmarks a product. Missing rows report gorm.ErrRecordNotFound.
func (r *GormCatalogRepository) RemoveFavorite(ctx context.Context, userID, productID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&domain.Favorite{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/merqado/storefront/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// GormCatalogRepositoryWithTracing wraps GormCatalogRepository with tracing.
// The read operations open a span under the request context, so catalog
// queries show up as children of the GraphQL request trace.
type GormCatalogRepositoryWithTracing struct {
	*GormCatalogRepository
}

// NewGormCatalogRepositoryWithTracing creates a new repository with tracing
func NewGormCatalogRepositoryWithTracing(db *gorm.DB) *GormCatalogRepositoryWithTracing {
	return &GormCatalogRepositoryWithTracing{
		GormCatalogRepository: NewGormCatalogRepository(db),
	}
}

// CountProducts with tracing
func (r *GormCatalogRepositoryWithTracing) CountProducts(ctx context.Context, filter domain.ProductFilter) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.CountProducts",
		trace.WithAttributes(
			attribute.String("filter.search", filter.Search),
			attribute.Int("filter.category_id", int(filter.CategoryID)),
			attribute.Bool("filter.on_sale", filter.OnSale),
		),
	)
	defer span.End()

	count, err := r.GormCatalogRepository.CountProducts(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int64("result.count", count))
	return count, nil
}

// FindProducts with tracing
func (r *GormCatalogRepositoryWithTracing) FindProducts(ctx context.Context, filter domain.ProductFilter, sortBy string, limit, offset int) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindProducts",
		trace.WithAttributes(
			attribute.String("query.sort_by", sortBy),
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	products, err := r.GormCatalogRepository.FindProducts(ctx, filter, sortBy, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

// FindByID with tracing
func (r *GormCatalogRepositoryWithTracing) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindProductByID",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
		),
	)
	defer span.End()

	product, err := r.GormCatalogRepository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return product, nil
}

// FindFavorites with tracing
func (r *GormCatalogRepositoryWithTracing) FindFavorites(ctx context.Context, userID uint) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindFavorites",
		trace.WithAttributes(
			attribute.Int("user.id", int(userID)),
		),
	)
	defer span.End()

	products, err := r.GormCatalogRepository.FindFavorites(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

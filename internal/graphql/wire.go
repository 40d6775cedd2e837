//go:build wireinject
// +build wireinject

package graphql

import (
	"database/sql"

	"github.com/google/wire"
	"gorm.io/gorm"

	catalogrepo "github.com/merqado/storefront/internal/catalog/repository"
	dashboarddomain "github.com/merqado/storefront/internal/dashboard/domain"
	dashboardrepo "github.com/merqado/storefront/internal/dashboard/repository"
	orderdomain "github.com/merqado/storefront/internal/order/domain"
	orderrepo "github.com/merqado/storefront/internal/order/repository"
	ordercommand "github.com/merqado/storefront/internal/order/usecase/command"
	userdomain "github.com/merqado/storefront/internal/user/domain"
	userrepo "github.com/merqado/storefront/internal/user/repository"
)

// ProvideCatalogRepository provides the catalog repository
func ProvideCatalogRepository(db *gorm.DB) CatalogRepository {
	return catalogrepo.NewGormCatalogRepository(db)
}

// ProvideOrderRepository provides the order repository
func ProvideOrderRepository(db *gorm.DB) orderdomain.OrderRepository {
	return orderrepo.NewGormOrderRepository(db)
}

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) userdomain.UserRepository {
	return userrepo.NewGormUserRepository(db)
}

// ProvideTestRunRepository provides the dashboard repository
func ProvideTestRunRepository(db *sql.DB) dashboarddomain.TestRunRepository {
	return dashboardrepo.NewPostgresTestRunRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCatalogRepository,
	ProvideOrderRepository,
	ProvideUserRepository,
	ProvideTestRunRepository,
)

var SchemaSet = wire.NewSet(
	NewResolver,
	NewSchema,
)

// InitializeHandler initializes the GraphQL handler with all dependencies
func InitializeHandler(db *gorm.DB, sqlDB *sql.DB, publisher ordercommand.OrderEventPublisher) (*Handler, error) {
	wire.Build(
		RepositorySet,
		SchemaSet,
		NewHandler,
	)
	return nil, nil
}

package graphql

import (
	catalogdomain "github.com/merqado/storefront/internal/catalog/domain"
	catalogcommand "github.com/merqado/storefront/internal/catalog/usecase/command"
	catalogquery "github.com/merqado/storefront/internal/catalog/usecase/query"
	dashboarddomain "github.com/merqado/storefront/internal/dashboard/domain"
	dashboardquery "github.com/merqado/storefront/internal/dashboard/usecase/query"
	orderdomain "github.com/merqado/storefront/internal/order/domain"
	ordercommand "github.com/merqado/storefront/internal/order/usecase/command"
	orderquery "github.com/merqado/storefront/internal/order/usecase/query"
	userdomain "github.com/merqado/storefront/internal/user/domain"
	usercommand "github.com/merqado/storefront/internal/user/usecase/command"
	userquery "github.com/merqado/storefront/internal/user/usecase/query"
)

// CatalogRepository is the combined catalog contract the resolver needs.
type CatalogRepository interface {
	catalogdomain.ProductRepository
	catalogdomain.CategoryRepository
}

// Resolver bundles the usecase handlers behind the schema fields.
type Resolver struct {
	// Query handlers
	listProducts   *catalogquery.ListProductsHandler
	getProduct     *catalogquery.GetProductHandler
	listCategories *catalogquery.ListCategoriesHandler
	listFavorites  *catalogquery.ListFavoritesHandler
	listOrders     *orderquery.ListOrdersHandler
	listUsers      *userquery.ListUsersHandler
	getProfile     *userquery.GetProfileHandler
	getDashboard   *dashboardquery.GetDashboardHandler

	// Command handlers
	registerUser   *usercommand.RegisterUserHandler
	loginUser      *usercommand.LoginUserHandler
	toggleFavorite *catalogcommand.ToggleFavoriteHandler
	createOrder    *ordercommand.CreateOrderHandler
}

// NewResolver creates a resolver over the storefront repositories. The
// publisher may be nil.
func NewResolver(
	catalogRepo CatalogRepository,
	orderRepo orderdomain.OrderRepository,
	userRepo userdomain.UserRepository,
	dashboardRepo dashboarddomain.TestRunRepository,
	publisher ordercommand.OrderEventPublisher,
) *Resolver {
	return &Resolver{
		listProducts:   catalogquery.NewListProductsHandler(catalogRepo),
		getProduct:     catalogquery.NewGetProductHandler(catalogRepo),
		listCategories: catalogquery.NewListCategoriesHandler(catalogRepo),
		listFavorites:  catalogquery.NewListFavoritesHandler(catalogRepo),
		listOrders:     orderquery.NewListOrdersHandler(orderRepo),
		listUsers:      userquery.NewListUsersHandler(userRepo),
		getProfile:     userquery.NewGetProfileHandler(userRepo),
		getDashboard:   dashboardquery.NewGetDashboardHandler(dashboardRepo),
		registerUser:   usercommand.NewRegisterUserHandler(userRepo),
		loginUser:      usercommand.NewLoginUserHandler(userRepo),
		toggleFavorite: catalogcommand.NewToggleFavoriteHandler(catalogRepo),
		createOrder:    ordercommand.NewCreateOrderHandler(orderRepo, publisher),
	}
}

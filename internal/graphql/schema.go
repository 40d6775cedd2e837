package graphql

import (
	gql "github.com/graphql-go/graphql"

	catalogcommand "github.com/merqado/storefront/internal/catalog/usecase/command"
	catalogquery "github.com/merqado/storefront/internal/catalog/usecase/query"
	dashboardquery "github.com/merqado/storefront/internal/dashboard/usecase/query"
	orderdomain "github.com/merqado/storefront/internal/order/domain"
	ordercommand "github.com/merqado/storefront/internal/order/usecase/command"
	orderquery "github.com/merqado/storefront/internal/order/usecase/query"
	usercommand "github.com/merqado/storefront/internal/user/usecase/command"
	userquery "github.com/merqado/storefront/internal/user/usecase/query"
)

// Argument readers. graphql-go hands coerced values over as interface{};
// absent optional arguments read as the zero value.

func stringArg(args map[string]interface{}, name string) string {
	v, _ := args[name].(string)
	return v
}

func intArg(args map[string]interface{}, name string) int {
	v, _ := args[name].(int)
	return v
}

func boolArg(args map[string]interface{}, name string) bool {
	v, _ := args[name].(bool)
	return v
}

// NewSchema builds the storefront schema around a resolver.
func NewSchema(r *Resolver) (gql.Schema, error) {
	categoryType := gql.NewObject(gql.ObjectConfig{
		Name: "Category",
		Fields: gql.Fields{
			"id":        &gql.Field{Type: gql.Int},
			"name":      &gql.Field{Type: gql.String},
			"image_url": &gql.Field{Type: gql.String},
		},
	})

	productType := gql.NewObject(gql.ObjectConfig{
		Name: "Product",
		Fields: gql.Fields{
			"id":             &gql.Field{Type: gql.Int},
			"name":           &gql.Field{Type: gql.String},
			"description":    &gql.Field{Type: gql.String},
			"price":          &gql.Field{Type: gql.Float},
			"discount_price": &gql.Field{Type: gql.Float},
			"image_url":      &gql.Field{Type: gql.String},
			"stock":          &gql.Field{Type: gql.Int},
			"rating":         &gql.Field{Type: gql.Float},
			"is_new":         &gql.Field{Type: gql.Boolean},
			"category":       &gql.Field{Type: categoryType},
			"created_at":     &gql.Field{Type: gql.DateTime},
		},
	})

	categoryType.AddFieldConfig("products", &gql.Field{Type: gql.NewList(productType)})

	productPageType := gql.NewObject(gql.ObjectConfig{
		Name: "ProductPage",
		Fields: gql.Fields{
			"products":   &gql.Field{Type: gql.NewList(productType)},
			"totalPages": &gql.Field{Type: gql.Int},
		},
	})

	categoryPageType := gql.NewObject(gql.ObjectConfig{
		Name: "CategoryPage",
		Fields: gql.Fields{
			"categories": &gql.Field{Type: gql.NewList(categoryType)},
			"totalPages": &gql.Field{Type: gql.Int},
		},
	})

	userType := gql.NewObject(gql.ObjectConfig{
		Name: "User",
		Fields: gql.Fields{
			"id":         &gql.Field{Type: gql.Int},
			"name":       &gql.Field{Type: gql.String},
			"username":   &gql.Field{Type: gql.String},
			"role":       &gql.Field{Type: gql.String},
			"age":        &gql.Field{Type: gql.Int},
			"city":       &gql.Field{Type: gql.String},
			"state":      &gql.Field{Type: gql.String},
			"created_at": &gql.Field{Type: gql.DateTime},
		},
	})

	userPageType := gql.NewObject(gql.ObjectConfig{
		Name: "UserPage",
		Fields: gql.Fields{
			"users":      &gql.Field{Type: gql.NewList(userType)},
			"totalPages": &gql.Field{Type: gql.Int},
		},
	})

	loginResponseType := gql.NewObject(gql.ObjectConfig{
		Name: "LoginResponse",
		Fields: gql.Fields{
			"token": &gql.Field{Type: gql.String},
			"user":  &gql.Field{Type: userType},
		},
	})

	shippingAddressType := gql.NewObject(gql.ObjectConfig{
		Name: "ShippingAddress",
		Fields: gql.Fields{
			"street":     &gql.Field{Type: gql.String},
			"number":     &gql.Field{Type: gql.String},
			"complement": &gql.Field{Type: gql.String},
			"city":       &gql.Field{Type: gql.String},
			"state":      &gql.Field{Type: gql.String},
			"zip_code":   &gql.Field{Type: gql.String},
		},
	})

	productRefType := gql.NewObject(gql.ObjectConfig{
		Name: "ProductRef",
		Fields: gql.Fields{
			"id":        &gql.Field{Type: gql.Int},
			"name":      &gql.Field{Type: gql.String},
			"image_url": &gql.Field{Type: gql.String},
		},
	})

	orderItemType := gql.NewObject(gql.ObjectConfig{
		Name: "OrderItem",
		Fields: gql.Fields{
			"quantity":          &gql.Field{Type: gql.Int},
			"price_at_purchase": &gql.Field{Type: gql.Float},
			"product":           &gql.Field{Type: productRefType},
		},
	})

	orderType := gql.NewObject(gql.ObjectConfig{
		Name: "Order",
		Fields: gql.Fields{
			"id":               &gql.Field{Type: gql.Int},
			"order_number":     &gql.Field{Type: gql.String},
			"total_price":      &gql.Field{Type: gql.Float},
			"payment_method":   &gql.Field{Type: gql.String},
			"shipping_address": &gql.Field{Type: shippingAddressType},
			"items":            &gql.Field{Type: gql.NewList(orderItemType)},
			"created_at":       &gql.Field{Type: gql.DateTime},
		},
	})

	orderPageType := gql.NewObject(gql.ObjectConfig{
		Name: "OrderPage",
		Fields: gql.Fields{
			"orders":     &gql.Field{Type: gql.NewList(orderType)},
			"totalCount": &gql.Field{Type: gql.Int},
			"totalPages": &gql.Field{Type: gql.Int},
		},
	})

	testCaseType := gql.NewObject(gql.ObjectConfig{
		Name: "TestCaseResult",
		Fields: gql.Fields{
			"id":            &gql.Field{Type: gql.Int},
			"name":          &gql.Field{Type: gql.String},
			"status":        &gql.Field{Type: gql.String},
			"duration_ms":   &gql.Field{Type: gql.Int},
			"error_message": &gql.Field{Type: gql.String},
		},
	})

	testRunType := gql.NewObject(gql.ObjectConfig{
		Name: "TestRun",
		Fields: gql.Fields{
			"id":           &gql.Field{Type: gql.Int},
			"suite":        &gql.Field{Type: gql.String},
			"status":       &gql.Field{Type: gql.String},
			"total_tests":  &gql.Field{Type: gql.Int},
			"passed_tests": &gql.Field{Type: gql.Int},
			"failed_tests": &gql.Field{Type: gql.Int},
			"duration_ms":  &gql.Field{Type: gql.Int},
			"created_at":   &gql.Field{Type: gql.DateTime},
			"testCases":    &gql.Field{Type: gql.NewList(testCaseType)},
		},
	})

	dashboardType := gql.NewObject(gql.ObjectConfig{
		Name: "TestDashboardData",
		Fields: gql.Fields{
			"latestRun":      &gql.Field{Type: testRunType},
			"historicalRuns": &gql.Field{Type: gql.NewList(testRunType)},
		},
	})

	orderItemInput := gql.NewInputObject(gql.InputObjectConfig{
		Name: "OrderItemInput",
		Fields: gql.InputObjectConfigFieldMap{
			"productId": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.Int)},
			"quantity":  &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.Int)},
		},
	})

	addressInput := gql.NewInputObject(gql.InputObjectConfig{
		Name: "ShippingAddressInput",
		Fields: gql.InputObjectConfigFieldMap{
			"street":     &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"number":     &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"complement": &gql.InputObjectFieldConfig{Type: gql.String},
			"city":       &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"state":      &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"zip_code":   &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		},
	})

	queryType := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"products": &gql.Field{
				Type: productPageType,
				Args: gql.FieldConfigArgument{
					"search":     &gql.ArgumentConfig{Type: gql.String},
					"categoryId": &gql.ArgumentConfig{Type: gql.Int},
					"onSale":     &gql.ArgumentConfig{Type: gql.Boolean},
					"sortBy":     &gql.ArgumentConfig{Type: gql.String},
					"page":       &gql.ArgumentConfig{Type: gql.Int},
					"limit":      &gql.ArgumentConfig{Type: gql.Int},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					page, err := r.listProducts.Handle(p.Context, catalogquery.ListProductsQuery{
						Search:     stringArg(p.Args, "search"),
						CategoryID: uint(intArg(p.Args, "categoryId")),
						OnSale:     boolArg(p.Args, "onSale"),
						SortBy:     stringArg(p.Args, "sortBy"),
						Page:       intArg(p.Args, "page"),
						Limit:      intArg(p.Args, "limit"),
					})
					if err != nil {
						return nil, resolverError(p.Context, err)
					}
					return page, nil
				},
			},
			"product": &gql.Field{
				Type: productType,
				Args: gql.FieldConfigArgument{
					"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					product, err := r.getProduct.Handle(p.Context, catalogquery.GetProductQuery{
						ID: uint(intArg(p.Args, "id")),
					})
					if err != nil {
						return nil, resolverError(p.Context, err)
					}
					return product, nil
				},
			},
			"categories": &gql.Field{
				Type: categoryPageType,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					page, err := r.listCategories.Handle(p.Context, catalogquery.ListCategoriesQuery{})
					if err != nil {
						return nil, resolverError(p.Context, err)
					}
					return page, nil
				},
			},
			"users": &gql.Field{
				Type: userPageType,
				Args: gql.FieldConfigArgument{
					"page":  &gql.ArgumentConfig{Type: gql.Int},
					"limit": &gql.ArgumentConfig{Type: gql.Int},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					if _, err := RequireAdmin(p.Context); err != nil {
						return nil, resolverError(p.Context, err)
					}
					page, err := r.listUsers.Handle(userquery.ListUsersQuery{
						Page:  intArg(p.Args, "page"),
						Limit: intArg(p.Args, "limit"),
					})
					if err != nil {
						return nil, resolverError(p.Context, err)
					}
					return page, nil
				},
			},
			"profile": &gql.Field{
				Type: userType,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					viewer, err := RequireViewer(p.Context)
					if err != nil {
						return nil, resolverError(p.Context, err)
					}
					user, err := r.getProfile.Handle(userquery.GetProfileQuery{UserID: viewer.ID})
					if err != nil {
						return nil, resolverError(p.Context, err)
					}
					return user, nil
				},
			},
			"orders": &gql.Field{
				Type: orderPageType,
				Args: gql.FieldConfigArgument{
					"page":  &gql.ArgumentConfig{Type: gql.Int},
					"limit": &gql.ArgumentConfig{Type: gql.Int},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					viewer, err := RequireViewer(p.Context)
					if err != nil {
						return nil, resolverError(p.Context, err)
					}
					page, err := r.listOrders.Handle(orderquery.ListOrdersQuery{
						UserID: viewer.ID,
						Page:   intArg(p.Args, "page"),
						Limit:  intArg(p.Args, "limit"),
					})
					if err != nil {
						return nil, resolverError(p.Context, err)
					}
					return page, nil
				},
			},
			"favorites": &gql.Field{
				Type: gql.NewList(productType),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					viewer, err := RequireViewer(p.Context)
					if err != nil {
						return nil, resolverError(p.Context, err)
					}
					products, err := r.listFavorites.Handle(p.Context, catalogquery.ListFavoritesQuery{UserID: viewer.ID})
					if err != nil {
						return nil, resolverError(p.Context, err)
					}
					return products, nil
				},
			},
			"testDashboardData": &gql.Field{
				Type: dashboardType,
				Args: gql.FieldConfigArgument{
					"limit": &gql.ArgumentConfig{Type: gql.Int},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					if _, err := RequireAdmin(p.Context); err != nil {
						return nil, resolverError(p.Context, err)
					}
					data, err := r.getDashboard.Handle(p.Context, dashboardquery.GetDashboardQuery{
						Limit: intArg(p.Args, "limit"),
					})
					if err != nil {
						return nil, resolverError(p.Context, err)
					}
					return data, nil
				},
			},
		},
	})

	mutationType := gql.NewObject(gql.ObjectConfig{
		Name: "Mutation",
		Fields: gql.Fields{
			"login": &gql.Field{
				Type: loginResponseType,
				Args: gql.FieldConfigArgument{
					"username": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"password": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					response, err := r.loginUser.Handle(usercommand.LoginUserCommand{
						Username: stringArg(p.Args, "username"),
						Password: stringArg(p.Args, "password"),
					})
					if err != nil {
						return nil, resolverError(p.Context, err)
					}
					return response, nil
				},
			},
			"register": &gql.Field{
				Type: userType,
				Args: gql.FieldConfigArgument{
					"name":     &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"username": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"password": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"age":      &gql.ArgumentConfig{Type: gql.Int},
					"city":     &gql.ArgumentConfig{Type: gql.String},
					"state":    &gql.ArgumentConfig{Type: gql.String},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					user, err := r.registerUser.Handle(usercommand.RegisterUserCommand{
						Name:     stringArg(p.Args, "name"),
						Username: stringArg(p.Args, "username"),
						Password: stringArg(p.Args, "password"),
						Age:      intArg(p.Args, "age"),
						City:     stringArg(p.Args, "city"),
						State:    stringArg(p.Args, "state"),
					})
					if err != nil {
						return nil, resolverError(p.Context, err)
					}
					return user, nil
				},
			},
			"addFavorite": &gql.Field{
				Type: gql.Boolean,
				Args: gql.FieldConfigArgument{
					"productId": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					viewer, err := RequireViewer(p.Context)
					if err != nil {
						return nil, resolverError(p.Context, err)
					}
					err = r.toggleFavorite.HandleAdd(p.Context, catalogcommand.AddFavoriteCommand{
						UserID:    viewer.ID,
						ProductID: uint(intArg(p.Args, "productId")),
					})
					if err != nil {
						return nil, resolverError(p.Context, err)
					}
					return true, nil
				},
			},
			"removeFavorite": &gql.Field{
				Type: gql.Boolean,
				Args: gql.FieldConfigArgument{
					"productId": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					viewer, err := RequireViewer(p.Context)
					if err != nil {
						return nil, resolverError(p.Context, err)
					}
					err = r.toggleFavorite.HandleRemove(p.Context, catalogcommand.RemoveFavoriteCommand{
						UserID:    viewer.ID,
						ProductID: uint(intArg(p.Args, "productId")),
					})
					if err != nil {
						return nil, resolverError(p.Context, err)
					}
					return true, nil
				},
			},
			"checkout": &gql.Field{
				Type: orderType,
				Args: gql.FieldConfigArgument{
					"items":           &gql.ArgumentConfig{Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(orderItemInput)))},
					"paymentMethod":   &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"shippingAddress": &gql.ArgumentConfig{Type: gql.NewNonNull(addressInput)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					viewer, err := RequireViewer(p.Context)
					if err != nil {
						return nil, resolverError(p.Context, err)
					}

					cmd := ordercommand.CreateOrderCommand{
						UserID:          viewer.ID,
						PaymentMethod:   stringArg(p.Args, "paymentMethod"),
						ShippingAddress: parseAddressInput(p.Args["shippingAddress"]),
						Items:           parseItemInputs(p.Args["items"]),
					}

					order, err := r.createOrder.Handle(p.Context, cmd)
					if err != nil {
						return nil, resolverError(p.Context, err)
					}
					return order, nil
				},
			},
		},
	})

	return gql.NewSchema(gql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func parseItemInputs(raw interface{}) []ordercommand.CreateOrderItem {
	list, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	items := make([]ordercommand.CreateOrderItem, 0, len(list))
	for _, entry := range list {
		fields, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		items = append(items, ordercommand.CreateOrderItem{
			ProductID: uint(intArg(fields, "productId")),
			Quantity:  intArg(fields, "quantity"),
		})
	}
	return items
}

func parseAddressInput(raw interface{}) orderdomain.ShippingAddress {
	fields, ok := raw.(map[string]interface{})
	if !ok {
		return orderdomain.ShippingAddress{}
	}
	return orderdomain.ShippingAddress{
		Street:     stringArg(fields, "street"),
		Number:     stringArg(fields, "number"),
		Complement: stringArg(fields, "complement"),
		City:       stringArg(fields, "city"),
		State:      stringArg(fields, "state"),
		ZipCode:    stringArg(fields, "zip_code"),
	}
}

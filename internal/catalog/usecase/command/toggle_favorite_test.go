package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/merqado/storefront/internal/catalog/domain"
	"github.com/merqado/storefront/pkg/apperrors"
)

// fakeFavoriteRepo holds favorites as user/product pairs.
type fakeFavoriteRepo struct {
	products  []domain.Product
	favorites map[[2]uint]bool
	err       error
}

func newFakeFavoriteRepo(products ...domain.Product) *fakeFavoriteRepo {
	return &fakeFavoriteRepo{products: products, favorites: map[[2]uint]bool{}}
}

func (f *fakeFavoriteRepo) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFavoriteRepo) CountProducts(ctx context.Context, filter domain.ProductFilter) (int64, error) {
	return 0, nil
}

func (f *fakeFavoriteRepo) FindProducts(ctx context.Context, filter domain.ProductFilter, sortBy string, limit, offset int) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeFavoriteRepo) FindFavorites(ctx context.Context, userID uint) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeFavoriteRepo) AddFavorite(ctx context.Context, userID, productID uint) error {
	if f.err != nil {
		return f.err
	}
	f.favorites[[2]uint{userID, productID}] = true
	return nil
}

func (f *fakeFavoriteRepo) RemoveFavorite(ctx context.Context, userID, productID uint) error {
	if f.err != nil {
		return f.err
	}
	key := [2]uint{userID, productID}
	if !f.favorites[key] {
		return gorm.ErrRecordNotFound
	}
	delete(f.favorites, key)
	return nil
}

func TestAddFavorite(t *testing.T) {
	repo := newFakeFavoriteRepo(domain.Product{ID: 42, Name: "Mug"})
	handler := NewToggleFavoriteHandler(repo)

	err := handler.HandleAdd(context.Background(), AddFavoriteCommand{UserID: 7, ProductID: 42})
	require.NoError(t, err)
	assert.True(t, repo.favorites[[2]uint{7, 42}])
}

func TestAddFavoriteUnknownProduct(t *testing.T) {
	handler := NewToggleFavoriteHandler(newFakeFavoriteRepo())

	err := handler.HandleAdd(context.Background(), AddFavoriteCommand{UserID: 7, ProductID: 99})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAddFavoriteTwiceSucceeds(t *testing.T) {
	repo := newFakeFavoriteRepo(domain.Product{ID: 42})
	handler := NewToggleFavoriteHandler(repo)

	cmd := AddFavoriteCommand{UserID: 7, ProductID: 42}
	require.NoError(t, handler.HandleAdd(context.Background(), cmd))
	assert.NoError(t, handler.HandleAdd(context.Background(), cmd))
}

func TestRemoveFavorite(t *testing.T) {
	repo := newFakeFavoriteRepo(domain.Product{ID: 42})
	handler := NewToggleFavoriteHandler(repo)

	require.NoError(t, handler.HandleAdd(context.Background(), AddFavoriteCommand{UserID: 7, ProductID: 42}))
	require.NoError(t, handler.HandleRemove(context.Background(), RemoveFavoriteCommand{UserID: 7, ProductID: 42}))
	assert.Empty(t, repo.favorites)
}

func TestRemoveFavoriteAbsent(t *testing.T) {
	handler := NewToggleFavoriteHandler(newFakeFavoriteRepo(domain.Product{ID: 42}))

	err := handler.HandleRemove(context.Background(), RemoveFavoriteCommand{UserID: 7, ProductID: 42})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestToggleFavoriteMissingProductID(t *testing.T) {
	handler := NewToggleFavoriteHandler(newFakeFavoriteRepo())

	assert.Error(t, handler.HandleAdd(context.Background(), AddFavoriteCommand{UserID: 7}))
	assert.Error(t, handler.HandleRemove(context.Background(), RemoveFavoriteCommand{UserID: 7}))
}

func TestToggleFavoriteRepoError(t *testing.T) {
	repo := newFakeFavoriteRepo(domain.Product{ID: 42})
	repo.err = errors.New("connection refused")
	handler := NewToggleFavoriteHandler(repo)

	err := handler.HandleAdd(context.Background(), AddFavoriteCommand{UserID: 7, ProductID: 42})
	require.Error(t, err)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", apperrors.Code(err))
}

package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/merqado/storefront/internal/user/domain"
	"github.com/merqado/storefront/pkg/apperrors"
)

type fakeUserRepo struct {
	users []domain.User
	err   error
}

func (f *fakeUserRepo) Create(user *domain.User) error { return f.err }

func (f *fakeUserRepo) FindByID(id uint) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByUsername(username string) (*domain.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindAll(limit, offset int) ([]domain.User, error) {
	return f.users, f.err
}

func (f *fakeUserRepo) Count() (int64, error) {
	return int64(len(f.users)), f.err
}

func TestGetProfile(t *testing.T) {
	repo := &fakeUserRepo{users: []domain.User{{ID: 7, Username: "ana", City: "Recife"}}}
	handler := NewGetProfileHandler(repo)

	user, err := handler.Handle(GetProfileQuery{UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, "ana", user.Username)
}

func TestGetProfileMissingRow(t *testing.T) {
	// A valid token can outlive its user row; that reads as not-found,
	// not as a server failure.
	handler := NewGetProfileHandler(&fakeUserRepo{})

	_, err := handler.Handle(GetProfileQuery{UserID: 7})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "NOT_FOUND", apperrors.Code(err))
}

func TestGetProfileRepoError(t *testing.T) {
	handler := NewGetProfileHandler(&fakeUserRepo{err: errors.New("connection refused")})

	_, err := handler.Handle(GetProfileQuery{UserID: 7})
	require.Error(t, err)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", apperrors.Code(err))
}

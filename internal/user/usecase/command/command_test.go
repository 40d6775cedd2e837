package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/merqado/storefront/internal/user/domain"
	"github.com/merqado/storefront/pkg/auth"
)

type fakeUserRepo struct {
	users   map[string]*domain.User
	created *domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(user *domain.User) error {
	user.ID = uint(len(f.users) + 1)
	f.users[user.Username] = user
	f.created = user
	return nil
}

func (f *fakeUserRepo) FindByID(id uint) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByUsername(username string) (*domain.User, error) {
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindAll(limit, offset int) ([]domain.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Count() (int64, error) {
	return int64(len(f.users)), nil
}

func TestRegisterUser(t *testing.T) {
	repo := newFakeUserRepo()
	handler := NewRegisterUserHandler(repo)

	user, err := handler.Handle(RegisterUserCommand{
		Name:     "Ana Lima",
		Username: "ana",
		Password: "secret123",
		City:     "Recife",
		State:    "PE",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RoleUser, user.Role, "self registration never grants admin")
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")
	assert.True(t, auth.CheckPassword(user.Password, "secret123"))
}

func TestRegisterUserValidation(t *testing.T) {
	tests := []struct {
		name string
		cmd  RegisterUserCommand
	}{
		{"missing name", RegisterUserCommand{Username: "ana", Password: "secret123"}},
		{"missing username", RegisterUserCommand{Name: "Ana", Password: "secret123"}},
		{"short password", RegisterUserCommand{Name: "Ana", Username: "ana", Password: "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewRegisterUserHandler(newFakeUserRepo())
			_, err := handler.Handle(tt.cmd)
			assert.Error(t, err)
		})
	}
}

func TestRegisterUserDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	handler := NewRegisterUserHandler(repo)

	_, err := handler.Handle(RegisterUserCommand{Name: "Ana", Username: "ana", Password: "secret123"})
	require.NoError(t, err)

	_, err = handler.Handle(RegisterUserCommand{Name: "Other Ana", Username: "ana", Password: "secret456"})
	assert.EqualError(t, err, "username already taken")
}

func TestLoginUser(t *testing.T) {
	repo := newFakeUserRepo()
	register := NewRegisterUserHandler(repo)
	_, err := register.Handle(RegisterUserCommand{Name: "Ana", Username: "ana", Password: "secret123"})
	require.NoError(t, err)

	handler := NewLoginUserHandler(repo)
	response, err := handler.Handle(LoginUserCommand{Username: "ana", Password: "secret123"})
	require.NoError(t, err)

	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "ana", response.User.Username)

	claims, err := auth.ValidateToken(response.Token)
	require.NoError(t, err)
	assert.Equal(t, response.User.ID, claims.UserID)
}

func TestLoginUserBadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	register := NewRegisterUserHandler(repo)
	_, err := register.Handle(RegisterUserCommand{Name: "Ana", Username: "ana", Password: "secret123"})
	require.NoError(t, err)

	handler := NewLoginUserHandler(repo)

	// Unknown user and wrong password answer identically
	_, errUnknown := handler.Handle(LoginUserCommand{Username: "ghost", Password: "secret123"})
	_, errWrongPw := handler.Handle(LoginUserCommand{Username: "ana", Password: "wrong"})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

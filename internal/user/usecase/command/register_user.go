package command

import (
	"fmt"
	"strings"

	"github.com/merqado/storefront/internal/user/domain"
	"github.com/merqado/storefront/pkg/auth"
)

// RegisterUserCommand represents the command to register a user
type RegisterUserCommand struct {
	Name     string
	Username string
	Password string
	Age      int
	City     string
	State    string
}

// RegisterUserHandler handles user registration command
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle executes the register user command. New accounts always get the
// ordinary role.
func (h *RegisterUserHandler) Handle(cmd RegisterUserCommand) (*domain.User, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(cmd.Username) == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(cmd.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}

	if _, err := h.repo.FindByUsername(cmd.Username); err == nil {
		return nil, fmt.Errorf("username already taken")
	}

	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:     cmd.Name,
		Username: cmd.Username,
		Password: hash,
		Role:     domain.RoleUser,
		Age:      cmd.Age,
		City:     cmd.City,
		State:    cmd.State,
	}

	if err := h.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return user, nil
}

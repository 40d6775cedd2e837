package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/merqado/storefront/internal/catalog/domain"
	"github.com/merqado/storefront/pkg/apperrors"
	"gorm.io/gorm"
)

// AddFavoriteCommand represents the command to favorite a product
type AddFavoriteCommand struct {
	UserID    uint
	ProductID uint
}

// RemoveFavoriteCommand represents the command to unfavorite a product
type RemoveFavoriteCommand struct {
	UserID    uint
	ProductID uint
}

// ToggleFavoriteHandler handles both favorite commands
type ToggleFavoriteHandler struct {
	repo domain.ProductRepository
}

// NewToggleFavoriteHandler creates a new favorite command handler
func NewToggleFavoriteHandler(repo domain.ProductRepository) *ToggleFavoriteHandler {
	return &ToggleFavoriteHandler{repo: repo}
}

// HandleAdd favorites a product. The product must exist; re-adding an
// existing favorite succeeds silently.
func (h *ToggleFavoriteHandler) HandleAdd(ctx context.Context, cmd AddFavoriteCommand) error {
	if cmd.ProductID == 0 {
		return fmt.Errorf("product_id is required")
	}

	if _, err := h.repo.FindByID(ctx, cmd.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return apperrors.Server(err)
	}

	if err := h.repo.AddFavorite(ctx, cmd.UserID, cmd.ProductID); err != nil {
		return apperrors.Server(err)
	}
	return nil
}

// HandleRemove unfavorites a product.
func (h *ToggleFavoriteHandler) HandleRemove(ctx context.Context, cmd RemoveFavoriteCommand) error {
	if cmd.ProductID == 0 {
		return fmt.Errorf("product_id is required")
	}

	if err := h.repo.RemoveFavorite(ctx, cmd.UserID, cmd.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return apperrors.Server(err)
	}
	return nil
}

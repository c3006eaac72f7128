package usecase

import (
	"context"
	"fmt"

	"preloved-backend/internal/domain"
	"preloved-backend/internal/pricing"
	"preloved-backend/internal/session"
	"preloved-backend/pkg/logger"
)

type CartUsecase struct {
	catalog  domain.CatalogRepository
	sessions *session.Manager
	calc     *pricing.Calculator
}

func NewCartUsecase(catalog domain.CatalogRepository, sessions *session.Manager, calc *pricing.Calculator) *CartUsecase {
	return &CartUsecase{
		catalog:  catalog,
		sessions: sessions,
		calc:     calc,
	}
}

// GetCart returns the session's cart lines in insertion order along with
// derived totals.
func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) *domain.Cart {
	lines := u.sessions.Get(sessionID).Lines()
	return &domain.Cart{
		Lines:  lines,
		Totals: u.calc.Totals(lines),
	}
}

// AddToCart adds quantity of a listing to the session's cart. An existing
// line for the same listing is incremented; otherwise a new line snapshots
// the listing as it is right now.
func (u *CartUsecase) AddToCart(ctx context.Context, sessionID, listingID string, quantity int) (*domain.Cart, error) {
	listing, err := u.catalog.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", listingID, err)
	}

	state := u.sessions.Get(sessionID)
	line := state.AddLine(*listing, quantity)
	logger.WithContext(ctx).Debug().
		Str("listing_id", listingID).
		Str("line_id", line.ID).
		Int("quantity", line.Quantity).
		Msg("cart line upserted")

	return u.GetCart(ctx, sessionID), nil
}

// UpdateQuantity overwrites a line's quantity; zero or below removes the
// line. A missing line is a no-op, matching idempotent deletion semantics.
func (u *CartUsecase) UpdateQuantity(ctx context.Context, sessionID, lineID string, quantity int) *domain.Cart {
	u.sessions.Get(sessionID).SetQuantity(lineID, quantity)
	return u.GetCart(ctx, sessionID)
}

// RemoveLine deletes a cart line. Removing an unknown line is a no-op.
func (u *CartUsecase) RemoveLine(ctx context.Context, sessionID, lineID string) *domain.Cart {
	u.sessions.Get(sessionID).RemoveLine(lineID)
	return u.GetCart(ctx, sessionID)
}

package usecase

import (
	"context"
	"fmt"

	"preloved-backend/internal/domain"
	"preloved-backend/internal/session"
)

type FavoritesUsecase struct {
	catalog  domain.CatalogRepository
	sessions *session.Manager
}

func NewFavoritesUsecase(catalog domain.CatalogRepository, sessions *session.Manager) *FavoritesUsecase {
	return &FavoritesUsecase{
		catalog:  catalog,
		sessions: sessions,
	}
}

// Toggle flips the favorite state of a listing and returns the new
// membership. The listing must exist in the catalog.
func (u *FavoritesUsecase) Toggle(ctx context.Context, sessionID, listingID string) (bool, error) {
	if _, err := u.catalog.GetByID(ctx, listingID); err != nil {
		return false, fmt.Errorf("listing %s: %w", listingID, err)
	}
	return u.sessions.Get(sessionID).ToggleFavorite(listingID), nil
}

func (u *FavoritesUsecase) IsFavorite(ctx context.Context, sessionID, listingID string) bool {
	return u.sessions.Get(sessionID).IsFavorite(listingID)
}

func (u *FavoritesUsecase) FavoriteIDs(ctx context.Context, sessionID string) []string {
	return u.sessions.Get(sessionID).FavoriteIDs()
}

// ListFavorites resolves the favorite set against the live catalog. Listings
// removed from the catalog since being favorited are skipped.
func (u *FavoritesUsecase) ListFavorites(ctx context.Context, sessionID string) ([]domain.Listing, error) {
	ids := u.sessions.Get(sessionID).FavoriteIDs()
	listings := make([]domain.Listing, 0, len(ids))
	for _, id := range ids {
		l, err := u.catalog.GetByID(ctx, id)
		if err != nil {
			continue
		}
		listings = append(listings, *l)
	}
	return listings, nil
}

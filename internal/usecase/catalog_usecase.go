package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"preloved-backend/config"
	"preloved-backend/internal/domain"
	"preloved-backend/internal/session"
	"preloved-backend/pkg/cache"

	"github.com/google/uuid"
)

type CatalogUsecase struct {
	repo     domain.CatalogRepository
	sessions *session.Manager
	cache    cache.CacheService
	cfg      *config.Config
}

func NewCatalogUsecase(repo domain.CatalogRepository, sessions *session.Manager, cache cache.CacheService, cfg *config.Config) *CatalogUsecase {
	return &CatalogUsecase{
		repo:     repo,
		sessions: sessions,
		cache:    cache,
		cfg:      cfg,
	}
}

// ListListings returns the listings satisfying every active predicate of the
// filter, preserving catalog order. An empty result is a valid state, not an
// error; the presentation layer renders it as its own empty state.
func (u *CatalogUsecase) ListListings(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if filter.IsZero() {
		return all, nil
	}

	filtered := make([]domain.Listing, 0, len(all))
	for _, l := range all {
		if filter.Matches(l) {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

// ApplyFilter stores the criteria as the session's current filter and
// returns the matching listings.
func (u *CatalogUsecase) ApplyFilter(ctx context.Context, sessionID string, filter domain.ListingFilter) ([]domain.Listing, error) {
	u.sessions.Get(sessionID).SetFilter(filter)
	return u.ListListings(ctx, filter)
}

// BrowseSession lists listings using the session's stored filter.
func (u *CatalogUsecase) BrowseSession(ctx context.Context, sessionID string) ([]domain.Listing, error) {
	return u.ListListings(ctx, u.sessions.Get(sessionID).Filter())
}

// ClearFilter resets every criteria field of the session to its default.
func (u *CatalogUsecase) ClearFilter(sessionID string) {
	u.sessions.Get(sessionID).ClearFilter()
}

func (u *CatalogUsecase) CurrentFilter(sessionID string) domain.ListingFilter {
	return u.sessions.Get(sessionID).Filter()
}

func (u *CatalogUsecase) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	key := fmt.Sprintf("listing:id:%s", id)
	if val, found := u.cache.Get(key); found {
		return val.(*domain.Listing), nil
	}

	listing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.cache.Set(key, listing, u.cfg.CacheListingTTL)
	return listing, nil
}

// ListSellerListings backs the dashboard's "my listings" view.
func (u *CatalogUsecase) ListSellerListings(ctx context.Context, sellerID string) ([]domain.Listing, error) {
	return u.repo.GetBySeller(ctx, sellerID)
}

func (u *CatalogUsecase) GetSeller(ctx context.Context, id string) (*domain.Seller, error) {
	return u.repo.GetSeller(ctx, id)
}

type CategoryOption struct {
	Value domain.Category `json:"value"`
	Label string          `json:"label"`
}

func (u *CatalogUsecase) Categories() []CategoryOption {
	opts := make([]CategoryOption, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		opts = append(opts, CategoryOption{Value: c, Label: domain.CategoryLabels[c]})
	}
	return opts
}

// SubmitListing validates a draft and appends it to the catalog. Violations
// are reported per field and block creation entirely; no partial listing is
// ever stored.
func (u *CatalogUsecase) SubmitListing(ctx context.Context, sellerID string, draft domain.ListingDraft) (*domain.Listing, error) {
	fields := make(map[string]string)

	title := strings.TrimSpace(draft.Title)
	if title == "" {
		fields["title"] = "title is required"
	}
	description := strings.TrimSpace(draft.Description)
	if description == "" {
		fields["description"] = "description is required"
	}
	if !draft.Category.Valid() {
		fields["category"] = "category must be one of the known categories"
	}
	price, err := domain.ParseMoney(draft.Price)
	if err != nil {
		fields["price"] = "price must be a non-negative number"
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	now := time.Now()
	listing := &domain.Listing{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Price:       price,
		Category:    draft.Category,
		ImageURL:    draft.ImageURL,
		SellerID:    sellerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.repo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	return listing, nil
}

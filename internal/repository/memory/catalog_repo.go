package memory

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"preloved-backend/internal/domain"

	"github.com/goccy/go-json"
)

//go:embed seed.json
var seedData []byte

type seedFile struct {
	Sellers  []domain.Seller  `json:"sellers"`
	Listings []domain.Listing `json:"listings"`
}

// CatalogRepository holds the listing collection in memory. Listings are
// immutable once loaded; Create appends new submissions. The insertion order
// of the backing slice is the catalog's canonical order.
type CatalogRepository struct {
	mu       sync.RWMutex
	listings []domain.Listing
	sellers  map[string]domain.Seller
}

// NewCatalogRepository returns an empty catalog.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		sellers: make(map[string]domain.Seller),
	}
}

// NewSeededCatalogRepository loads the embedded demo catalog. It stands in
// for the data-source collaborator until a real backend exists.
func NewSeededCatalogRepository() (*CatalogRepository, error) {
	var seed seedFile
	if err := json.Unmarshal(seedData, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse catalog seed: %w", err)
	}

	repo := NewCatalogRepository()
	for _, s := range seed.Sellers {
		repo.sellers[s.ID] = s
	}
	for _, l := range seed.Listings {
		if s, ok := repo.sellers[l.SellerID]; ok {
			seller := s
			l.Seller = &seller
		}
		repo.listings = append(repo.listings, l)
	}
	return repo, nil
}

// List returns the full collection in catalog order. The returned slice is a
// copy; callers may filter it freely.
func (r *CatalogRepository) List(ctx context.Context) ([]domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Listing, len(r.listings))
	copy(out, r.listings)
	return out, nil
}

func (r *CatalogRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.listings {
		if l.ID == id {
			found := l
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *CatalogRepository) GetBySeller(ctx context.Context, sellerID string) ([]domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Listing
	for _, l := range r.listings {
		if l.SellerID == sellerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *CatalogRepository) GetSeller(ctx context.Context, id string) (*domain.Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if s, ok := r.sellers[id]; ok {
		found := s
		return &found, nil
	}
	return nil, domain.ErrNotFound
}

// Create appends a new listing. The seller summary is attached when the
// seller is known; unknown sellers are registered with a minimal summary so
// later submissions resolve consistently.
func (r *CatalogRepository) Create(ctx context.Context, listing *domain.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sellers[listing.SellerID]; ok {
		seller := s
		listing.Seller = &seller
	} else if listing.Seller != nil {
		r.sellers[listing.Seller.ID] = *listing.Seller
	}
	r.listings = append(r.listings, *listing)
	return nil
}

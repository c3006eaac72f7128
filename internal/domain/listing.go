package domain

import (
	"context"
	"strings"
	"time"
)

type Category string

// Valid reports whether c is one of the closed category set.
// The "all" sentinel is not a valid listing category.
func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Seller is the public summary of a user embedded in listings.
type Seller struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	DisplayName *string   `json:"displayName"`
	AvatarURL   *string   `json:"avatarUrl"`
	JoinedAt    time.Time `json:"joinedAt"`
}

// Listing is a single item offered for sale. Listings are immutable once
// loaded into the catalog; only listing submission creates new ones.
type Listing struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       Money     `json:"price"`
	Category    Category  `json:"category"`
	ImageURL    *string   `json:"imageUrl"`
	SellerID    string    `json:"sellerId"`
	Seller      *Seller   `json:"seller,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListingDraft carries the raw field values of a submission form.
// Price stays a string until validation parses it.
type ListingDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Category    Category `json:"category"`
	ImageURL    *string  `json:"imageUrl"`
}

// ListingFilter is the combined search/category/price criteria applied to the
// catalog. The zero value matches every listing.
type ListingFilter struct {
	Query    string   `json:"query"`
	Category Category `json:"category"`
	MinPrice *Money   `json:"minPrice"`
	MaxPrice *Money   `json:"maxPrice"`
}

// Matches reports whether l satisfies every active predicate. Predicates are
// combined with AND, so MinPrice > MaxPrice matches nothing.
func (f ListingFilter) Matches(l Listing) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(l.Title), q) &&
			!strings.Contains(strings.ToLower(l.Description), q) {
			return false
		}
	}
	if f.Category != "" && f.Category != CategoryAll && l.Category != f.Category {
		return false
	}
	if f.MinPrice != nil && l.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && l.Price > *f.MaxPrice {
		return false
	}
	return true
}

// IsZero reports whether no predicate is active.
func (f ListingFilter) IsZero() bool {
	return strings.TrimSpace(f.Query) == "" &&
		(f.Category == "" || f.Category == CategoryAll) &&
		f.MinPrice == nil && f.MaxPrice == nil
}

// --- Interfaces ---

// CatalogRepository supplies the listing collection. Implementations return
// listings already validated (non-negative price, category in the closed set).
type CatalogRepository interface {
	List(ctx context.Context) ([]Listing, error)
	GetByID(ctx context.Context, id string) (*Listing, error)
	GetBySeller(ctx context.Context, sellerID string) ([]Listing, error)
	GetSeller(ctx context.Context, id string) (*Seller, error)
	Create(ctx context.Context, listing *Listing) error
}

package usecase

import (
	"context"
	"testing"
	"time"

	"preloved-backend/internal/domain"
	infracache "preloved-backend/internal/infrastructure/cache"
	"preloved-backend/internal/pricing"
	memrepo "preloved-backend/internal/repository/memory"
	"preloved-backend/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCartUsecase(t *testing.T) *CartUsecase {
	t.Helper()

	repo := memrepo.NewCatalogRepository()
	for _, l := range testListings(t) {
		listing := l
		require.NoError(t, repo.Create(context.Background(), &listing))
	}

	sessions := session.NewManager(infracache.NewMemoryCache(time.Minute, time.Minute), time.Minute)
	calc := pricing.NewCalculator(domain.Money(5000), domain.Money(599))
	return NewCartUsecase(repo, sessions, calc)
}

func TestAddToCartMergesQuantity(t *testing.T) {
	uc := newTestCartUsecase(t)
	ctx := context.Background()

	cart, err := uc.AddToCart(ctx, "s1", "1", 1)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)

	// Adding the same listing again increments the existing line
	cart, err = uc.AddToCart(ctx, "s1", "1", 2)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.Equal(t, "1", cart.Lines[0].ListingID)
}

func TestAddToCartUnknownListing(t *testing.T) {
	uc := newTestCartUsecase(t)

	_, err := uc.AddToCart(context.Background(), "s1", "missing", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	cart := uc.GetCart(context.Background(), "s1")
	assert.Empty(t, cart.Lines)
}

func TestAddToCartSnapshotsListing(t *testing.T) {
	uc := newTestCartUsecase(t)

	cart, err := uc.AddToCart(context.Background(), "s1", "2", 1)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)

	line := cart.Lines[0]
	assert.Equal(t, "iPhone 12 Pro", line.Listing.Title)
	assert.Equal(t, domain.Money(59900), line.Listing.Price)
	assert.NotEmpty(t, line.ID)
	assert.False(t, line.AddedAt.IsZero())
}

func TestUpdateQuantity(t *testing.T) {
	uc := newTestCartUsecase(t)
	ctx := context.Background()

	cart, err := uc.AddToCart(ctx, "s1", "1", 2)
	require.NoError(t, err)
	lineID := cart.Lines[0].ID

	t.Run("Overwrite", func(t *testing.T) {
		cart := uc.UpdateQuantity(ctx, "s1", lineID, 5)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 5, cart.Lines[0].Quantity)
	})

	t.Run("ZeroRemovesLine", func(t *testing.T) {
		cart := uc.UpdateQuantity(ctx, "s1", lineID, 0)
		assert.Empty(t, cart.Lines)
	})

	t.Run("UnknownLineIsNoop", func(t *testing.T) {
		cart := uc.UpdateQuantity(ctx, "s1", "nope", 7)
		assert.Empty(t, cart.Lines)
	})
}

func TestRemoveLineIdempotent(t *testing.T) {
	uc := newTestCartUsecase(t)
	ctx := context.Background()

	cart, err := uc.AddToCart(ctx, "s1", "1", 1)
	require.NoError(t, err)
	lineID := cart.Lines[0].ID

	cart = uc.RemoveLine(ctx, "s1", lineID)
	assert.Empty(t, cart.Lines)

	// Removing again (or a line that never existed) leaves the cart unchanged
	cart = uc.RemoveLine(ctx, "s1", lineID)
	assert.Empty(t, cart.Lines)
}

func TestCartInsertionOrder(t *testing.T) {
	uc := newTestCartUsecase(t)
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, "s1", "1", 1)
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, "s1", "2", 1)
	require.NoError(t, err)
	cart, err := uc.AddToCart(ctx, "s1", "3", 1)
	require.NoError(t, err)

	// Mutating the middle line must not reorder the rest
	cart = uc.UpdateQuantity(ctx, "s1", cart.Lines[1].ID, 4)
	require.Len(t, cart.Lines, 3)
	assert.Equal(t, "1", cart.Lines[0].ListingID)
	assert.Equal(t, "2", cart.Lines[1].ListingID)
	assert.Equal(t, "3", cart.Lines[2].ListingID)

	cart = uc.RemoveLine(ctx, "s1", cart.Lines[0].ID)
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "2", cart.Lines[0].ListingID)
	assert.Equal(t, "3", cart.Lines[1].ListingID)
}

func TestCartTotals(t *testing.T) {
	uc := newTestCartUsecase(t)
	ctx := context.Background()

	t.Run("EmptyCart", func(t *testing.T) {
		cart := uc.GetCart(ctx, "empty")
		assert.Equal(t, domain.Money(0), cart.Totals.Subtotal)
		assert.Equal(t, domain.Money(599), cart.Totals.ShippingFee)
		assert.Equal(t, domain.Money(599), cart.Totals.Total)
	})

	t.Run("FreeShippingAboveThreshold", func(t *testing.T) {
		cart, err := uc.AddToCart(ctx, "s1", "2", 1) // 599.00
		require.NoError(t, err)
		assert.Equal(t, domain.Money(59900), cart.Totals.Subtotal)
		assert.Equal(t, domain.Money(0), cart.Totals.ShippingFee)
		assert.Equal(t, domain.Money(59900), cart.Totals.Total)
	})
}

func TestCartSessionIsolation(t *testing.T) {
	uc := newTestCartUsecase(t)
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, "alice", "1", 2)
	require.NoError(t, err)

	bob := uc.GetCart(ctx, "bob")
	assert.Empty(t, bob.Lines)

	alice := uc.GetCart(ctx, "alice")
	require.Len(t, alice.Lines, 1)
	assert.Equal(t, 2, alice.Lines[0].Quantity)
}

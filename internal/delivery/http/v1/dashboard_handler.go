package v1

import (
	"errors"
	"net/http"

	"preloved-backend/internal/delivery/http/middleware"
	"preloved-backend/internal/domain"
	"preloved-backend/internal/usecase"
	"preloved-backend/pkg/utils"
)

// DashboardHandler aggregates the views of the user dashboard: profile,
// own listings, favorites and the cart summary.
type DashboardHandler struct {
	catalogUC   *usecase.CatalogUsecase
	cartUC      *usecase.CartUsecase
	favoritesUC *usecase.FavoritesUsecase
}

func NewDashboardHandler(catalogUC *usecase.CatalogUsecase, cartUC *usecase.CartUsecase, favoritesUC *usecase.FavoritesUsecase) *DashboardHandler {
	return &DashboardHandler{
		catalogUC:   catalogUC,
		cartUC:      cartUC,
		favoritesUC: favoritesUC,
	}
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)
	userID := middleware.UserID(r)

	profile, err := h.catalogUC.GetSeller(r.Context(), userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	myListings, err := h.catalogUC.ListSellerListings(r.Context(), userID)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	favorites, err := h.favoritesUC.ListFavorites(r.Context(), sessionID)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	cart := h.cartUC.GetCart(r.Context(), sessionID)

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"profile":   profile,
		"listings":  myListings,
		"favorites": favorites,
		"cart": map[string]interface{}{
			"lineCount": len(cart.Lines),
			"totals":    cart.Totals,
		},
	})
}

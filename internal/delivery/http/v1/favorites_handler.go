package v1

import (
	"errors"
	"net/http"

	"preloved-backend/internal/delivery/http/middleware"
	"preloved-backend/internal/domain"
	"preloved-backend/internal/usecase"
	"preloved-backend/pkg/utils"

	"github.com/goccy/go-json"
)

type FavoritesHandler struct {
	usecase *usecase.FavoritesUsecase
}

func NewFavoritesHandler(usecase *usecase.FavoritesUsecase) *FavoritesHandler {
	return &FavoritesHandler{usecase: usecase}
}

func (h *FavoritesHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)

	listings, err := h.usecase.ListFavorites(r.Context(), sessionID)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"ids":      h.usecase.FavoriteIDs(r.Context(), sessionID),
		"listings": listings,
	})
}

type toggleFavoriteReq struct {
	ListingID string `json:"listingId"`
}

func (h *FavoritesHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var req toggleFavoriteReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.ListingID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Listing ID required")
		return
	}

	favorite, err := h.usecase.Toggle(r.Context(), middleware.SessionID(r), req.ListingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Listing not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"listingId": req.ListingID,
		"favorite":  favorite,
	})
}

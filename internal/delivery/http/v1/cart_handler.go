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

type CartHandler struct {
	cartUC          *usecase.CartUsecase
	maxCartQuantity int
}

func NewCartHandler(uc *usecase.CartUsecase, maxCartQuantity int) *CartHandler {
	return &CartHandler{
		cartUC:          uc,
		maxCartQuantity: maxCartQuantity,
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart := h.cartUC.GetCart(r.Context(), middleware.SessionID(r))
	utils.WriteJSON(w, http.StatusOK, cart)
}

type addToCartReq struct {
	ListingID string `json:"listingId"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.ListingID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Listing ID required")
		return
	}

	// An omitted quantity means one. The store itself has no upper bound;
	// this boundary rejects absurd requests early.
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		utils.WriteError(w, http.StatusBadRequest, "Quantity must be positive")
		return
	}
	if req.Quantity > h.maxCartQuantity {
		utils.WriteError(w, http.StatusBadRequest, "Quantity exceeds maximum limit")
		return
	}

	cart, err := h.cartUC.AddToCart(r.Context(), middleware.SessionID(r), req.ListingID, req.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Listing not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, cart)
}

type updateCartReq struct {
	LineID   string `json:"lineId"`
	Quantity int    `json:"quantity"`
}

// UpdateCart overwrites a line's quantity. Zero or below removes the line;
// an unknown line leaves the cart unchanged.
func (h *CartHandler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	var req updateCartReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.LineID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Line ID required")
		return
	}
	if req.Quantity > h.maxCartQuantity {
		utils.WriteError(w, http.StatusBadRequest, "Quantity exceeds maximum limit")
		return
	}

	cart := h.cartUC.UpdateQuantity(r.Context(), middleware.SessionID(r), req.LineID, req.Quantity)
	utils.WriteJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	lineID := r.PathValue("lineId")
	if lineID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Line ID required")
		return
	}

	cart := h.cartUC.RemoveLine(r.Context(), middleware.SessionID(r), lineID)
	utils.WriteJSON(w, http.StatusOK, cart)
}

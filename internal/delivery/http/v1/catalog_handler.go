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

type CatalogHandler struct {
	catalogUC *usecase.CatalogUsecase
}

func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: uc}
}

// ListListings serves the filtered catalog. Query parameters update the
// session's filter criteria; a request without any parameters reuses the
// criteria stored on the session.
func (h *CatalogHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)

	var (
		listings []domain.Listing
		filter   domain.ListingFilter
		err      error
	)

	if r.URL.RawQuery == "" {
		filter = h.catalogUC.CurrentFilter(sessionID)
		listings, err = h.catalogUC.BrowseSession(r.Context(), sessionID)
	} else {
		filter, err = parseFilter(r)
		if err != nil {
			utils.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		listings, err = h.catalogUC.ApplyFilter(r.Context(), sessionID, filter)
	}
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"data":   listings,
		"count":  len(listings),
		"filter": filter,
	})
}

func parseFilter(r *http.Request) (domain.ListingFilter, error) {
	query := r.URL.Query()

	filter := domain.ListingFilter{
		Query:    query.Get("q"),
		Category: domain.CategoryAll,
	}

	if c := query.Get("category"); c != "" {
		category := domain.Category(c)
		if category != domain.CategoryAll && !category.Valid() {
			return filter, errors.New("unknown category")
		}
		filter.Category = category
	}
	if v := query.Get("min_price"); v != "" {
		m, err := domain.ParseMoney(v)
		if err != nil {
			return filter, errors.New("min_price must be a non-negative number")
		}
		filter.MinPrice = &m
	}
	if v := query.Get("max_price"); v != "" {
		m, err := domain.ParseMoney(v)
		if err != nil {
			return filter, errors.New("max_price must be a non-negative number")
		}
		filter.MaxPrice = &m
	}
	return filter, nil
}

// ClearFilters resets the session's filter criteria to their defaults.
func (h *CatalogHandler) ClearFilters(w http.ResponseWriter, r *http.Request) {
	h.catalogUC.ClearFilter(middleware.SessionID(r))
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Filters cleared"})
}

func (h *CatalogHandler) GetFilters(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.catalogUC.CurrentFilter(middleware.SessionID(r)))
}

func (h *CatalogHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Listing ID required")
		return
	}

	listing, err := h.catalogUC.GetListing(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Listing not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, listing)
}

func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.catalogUC.Categories())
}

// CreateListing accepts a submission draft. Validation failures come back
// with one message per offending field.
func (h *CatalogHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	var draft domain.ListingDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	listing, err := h.catalogUC.SubmitListing(r.Context(), middleware.UserID(r), draft)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			utils.WriteFieldErrors(w, http.StatusUnprocessableEntity, vErr.Fields)
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusCreated, listing)
}

package handlers

import (
	"errors"
	"net/http"

	"imovelBack/internal/models"
	"imovelBack/internal/services"
)

type SearchHandler struct {
	Service *services.SearchService
}

// Search handles GET /api/search. All filters are optional; malformed numeric
// parameters are rejected before the query runs.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	params, err := parseSearchParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.Service.Search(r.Context(), params)
	if err != nil {
		var failure *models.SearchFailure
		if errors.As(err, &failure) {
			respondError(w, http.StatusInternalServerError, "search failed")
			return
		}
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *SearchHandler) GetPropertyTypes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.Service.GetAvailablePropertyTypes(r.Context()))
}

func (h *SearchHandler) GetPriceRange(w http.ResponseWriter, r *http.Request) {
	propertyType := r.URL.Query().Get("type")
	respondJSON(w, http.StatusOK, h.Service.GetPriceRange(r.Context(), propertyType))
}

func (h *SearchHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.Service.GetAvailableCities(r.Context()))
}

func parseSearchParams(r *http.Request) (models.SearchParams, error) {
	var (
		params models.SearchParams
		err    error
	)

	params.Type = r.URL.Query().Get("type")
	params.City = r.URL.Query().Get("city")
	params.State = r.URL.Query().Get("state")
	params.Status = r.URL.Query().Get("status")
	params.SortBy = r.URL.Query().Get("sortBy")
	params.SortOrder = r.URL.Query().Get("sortOrder")
	params.Amenities = queryList(r, "amenities")

	if params.PriceMin, err = queryFloat(r, "priceMin"); err != nil {
		return params, errors.New("invalid priceMin")
	}
	if params.PriceMax, err = queryFloat(r, "priceMax"); err != nil {
		return params, errors.New("invalid priceMax")
	}
	if params.AreaMin, err = queryFloat(r, "areaMin"); err != nil {
		return params, errors.New("invalid areaMin")
	}
	if params.AreaMax, err = queryFloat(r, "areaMax"); err != nil {
		return params, errors.New("invalid areaMax")
	}
	if params.BedroomsMin, err = queryInt(r, "bedroomsMin"); err != nil {
		return params, errors.New("invalid bedroomsMin")
	}
	if params.BedroomsMax, err = queryInt(r, "bedroomsMax"); err != nil {
		return params, errors.New("invalid bedroomsMax")
	}
	if params.BathroomsMin, err = queryInt(r, "bathroomsMin"); err != nil {
		return params, errors.New("invalid bathroomsMin")
	}
	if params.BathroomsMax, err = queryInt(r, "bathroomsMax"); err != nil {
		return params, errors.New("invalid bathroomsMax")
	}
	if params.ParkingSpacesMin, err = queryInt(r, "parkingSpacesMin"); err != nil {
		return params, errors.New("invalid parkingSpacesMin")
	}
	if params.Page, err = queryInt(r, "page"); err != nil {
		return params, errors.New("invalid page")
	}
	if params.Limit, err = queryInt(r, "limit"); err != nil {
		return params, errors.New("invalid limit")
	}
	return params, nil
}

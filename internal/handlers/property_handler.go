package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"imovelBack/internal/models"
	"imovelBack/internal/services"
	"imovelBack/utils"
)

const (
	maxImageCount = 10
	maxImageSize  = 5 << 20
	maxFormMemory = 32 << 20
)

type PropertyHandler struct {
	Service *services.PropertyService
}

func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PropertyType == "" {
		respondError(w, http.StatusBadRequest, "propertyType is required")
		return
	}
	if err := services.ValidateCreateProperty(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	property, err := h.Service.CreateProperty(r.Context(), userID(r), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, property)
}

// ListProperties is the plain public listing. The full filter vocabulary
// lives on the search endpoint; this one takes only the common filters.
func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid page")
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	priceMin, err := queryFloat(r, "priceMin")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid priceMin")
		return
	}
	priceMax, err := queryFloat(r, "priceMax")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid priceMax")
		return
	}
	bedroomsMin, err := queryInt(r, "bedroomsMin")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid bedroomsMin")
		return
	}
	bathroomsMin, err := queryInt(r, "bathroomsMin")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid bathroomsMin")
		return
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	q := models.PropertyQuery{
		PropertyType: strings.ToUpper(r.URL.Query().Get("type")),
		City:         r.URL.Query().Get("city"),
		State:        r.URL.Query().Get("state"),
		PriceMin:     priceMin,
		PriceMax:     priceMax,
		BedroomsMin:  bedroomsMin,
		BathroomsMin: bathroomsMin,
		SortBy:       r.URL.Query().Get("sortBy"),
		SortOrder:    r.URL.Query().Get("sortOrder"),
		Limit:        limit,
		Offset:       (page - 1) * limit,
	}

	properties, total, err := h.Service.ListProperties(r.Context(), q)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	pages := 0
	if total > 0 {
		pages = (total + limit - 1) / limit
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"properties": properties,
		"pagination": models.Pagination{Page: page, Limit: limit, Total: total, Pages: pages},
	})
}

func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "missing property id")
		return
	}

	property, err := h.Service.GetProperty(r.Context(), id, userID(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) MyProperties(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid limit")
		return
	}

	properties, err := h.Service.ListByOwner(r.Context(), userID(r), limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, properties)
}

func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "missing property id")
		return
	}

	var req models.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	property, err := h.Service.UpdateProperty(r.Context(), id, userID(r), userRole(r), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		respondError(w, http.StatusBadRequest, "status is required")
		return
	}

	property, err := h.Service.UpdateStatus(r.Context(), id, userID(r), userRole(r), req.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if err := h.Service.DeleteProperty(r.Context(), id, userID(r), userRole(r)); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "property deleted"})
}

// UploadImages accepts up to 10 jpeg/png/webp files of 5MB each under the
// "images" form field and attaches them to the listing.
func (h *PropertyHandler) UploadImages(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "missing property id")
		return
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	fileHeaders := r.MultipartForm.File["images"]
	if len(fileHeaders) == 0 {
		respondError(w, http.StatusBadRequest, "no images provided")
		return
	}
	if len(fileHeaders) > maxImageCount {
		respondError(w, http.StatusBadRequest, "too many images, maximum is 10")
		return
	}

	var files []utils.ImageUpload
	for _, fh := range fileHeaders {
		if fh.Size > maxImageSize {
			respondError(w, http.StatusBadRequest, "image too large, maximum is 5MB")
			return
		}

		f, err := fh.Open()
		if err != nil {
			respondError(w, http.StatusBadRequest, "unable to read image")
			return
		}
		data, err := io.ReadAll(io.LimitReader(f, maxImageSize+1))
		f.Close()
		if err != nil || int64(len(data)) > maxImageSize {
			respondError(w, http.StatusBadRequest, "unable to read image")
			return
		}

		contentType := fh.Header.Get("Content-Type")
		if contentType == "" {
			contentType = http.DetectContentType(data)
		}
		files = append(files, utils.ImageUpload{
			FileName:    fh.Filename,
			ContentType: contentType,
			Data:        data,
		})
	}

	property, err := h.Service.AttachImages(r.Context(), id, userID(r), userRole(r), files)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if err := h.Service.AddFavorite(r.Context(), userID(r), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "added to favorites"})
}

func (h *PropertyHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if err := h.Service.RemoveFavorite(r.Context(), userID(r), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "removed from favorites"})
}

func (h *PropertyHandler) MyFavorites(w http.ResponseWriter, r *http.Request) {
	properties, err := h.Service.GetFavorites(r.Context(), userID(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, properties)
}

// CreateLead registers a contact request for a listing. Authentication is
// optional; logged in users get linked to the lead.
func (h *PropertyHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	var req struct {
		Name    string  `json:"name"`
		Email   string  `json:"email"`
		Phone   *string `json:"phone,omitempty"`
		Message string  `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		respondError(w, http.StatusBadRequest, "name, email and message are required")
		return
	}

	lead := models.Lead{
		PropertyID: id,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
	}
	if uid := userID(r); uid != "" {
		lead.UserID = &uid
	}

	created, err := h.Service.CreateLead(r.Context(), lead)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

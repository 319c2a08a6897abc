package handlers

import (
	"encoding/json"
	"net/http"

	"imovelBack/internal/models"
	"imovelBack/internal/services"
)

type CompanyHandler struct {
	Service *services.CompanyService
}

func (h *CompanyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.LicenseNumber == "" || req.Email == "" {
		respondError(w, http.StatusBadRequest, "name, licenseNumber and email are required")
		return
	}

	company, err := h.Service.CreateCompany(r.Context(), userID(r), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, company)
}

func (h *CompanyHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "missing company id")
		return
	}

	company, err := h.Service.GetCompany(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
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

	filter := models.CompanyListFilter{
		Type:   r.URL.Query().Get("type"),
		Search: r.URL.Query().Get("search"),
		Page:   page,
		Limit:  limit,
	}
	if raw := r.URL.Query().Get("verified"); raw != "" {
		verified := raw == "true"
		filter.Verified = &verified
	}

	companies, total, err := h.Service.ListCompanies(r.Context(), filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"companies": companies,
		"total":     total,
	})
}

func (h *CompanyHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	var req models.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	company, err := h.Service.UpdateCompany(r.Context(), id, userID(r), userRole(r), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if err := h.Service.DeleteCompany(r.Context(), id, userRole(r)); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "company deleted"})
}

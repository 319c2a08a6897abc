package handlers

import (
	"encoding/json"
	"net/http"

	"imovelBack/internal/models"
	"imovelBack/internal/services"
)

type AdminHandler struct {
	Service *services.AdminService
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.Service.Dashboard(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dashboard)
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
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

	filter := models.AdminUserFilter{
		Role:   r.URL.Query().Get("role"),
		Search: r.URL.Query().Get("search"),
		Page:   page,
		Limit:  limit,
	}
	if raw := r.URL.Query().Get("verified"); raw != "" {
		verified := raw == "true"
		filter.Verified = &verified
	}

	users, pagination, err := h.Service.ListUsers(r.Context(), filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"users":      users,
		"pagination": pagination,
	})
}

func (h *AdminHandler) VerifyUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.Service.VerifyUser(r.Context(), getParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteUser(r.Context(), getParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}

func (h *AdminHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
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

	filter := models.AdminPropertyFilter{
		Status:       r.URL.Query().Get("status"),
		PropertyType: r.URL.Query().Get("type"),
		OwnerID:      r.URL.Query().Get("ownerId"),
		Search:       r.URL.Query().Get("search"),
		Page:         page,
		Limit:        limit,
	}

	properties, pagination, err := h.Service.ListProperties(r.Context(), filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"properties": properties,
		"pagination": pagination,
	})
}

func (h *AdminHandler) SetPropertyStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		respondError(w, http.StatusBadRequest, "status is required")
		return
	}

	property, err := h.Service.SetPropertyStatus(r.Context(), getParam(r, "id"), req.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, property)
}

func (h *AdminHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteProperty(r.Context(), getParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "property deleted"})
}

func (h *AdminHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
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

	leads, pagination, err := h.Service.ListLeads(r.Context(), page, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"leads":      leads,
		"pagination": pagination,
	})
}
